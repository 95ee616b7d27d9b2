package service

import (
	"context"
	"fmt"

	"codex-service/internal/core/logger"
	"codex-service/internal/features/orders/domain"
	"codex-service/internal/features/orders/ports"

	"go.uber.org/zap"
)

// OrderService turns the open orders of the shop into the list Codex drivers can deliver.
type OrderService struct {
	// provider is the interface for fetching order data from external sources.
	provider ports.OrderProvider
	logger   *zap.Logger
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(provider ports.OrderProvider) *OrderService {
	return &OrderService{
		provider: provider,
		logger:   logger.Named("orders"),
	}
}

// ListEligibleOrders fetches every open order, drops the ineligible ones and normalizes the rest.
// Fetch order (newest first) is preserved. The result is never nil.
func (s *OrderService) ListEligibleOrders(ctx context.Context) ([]domain.EligibleOrder, error) {
	orders, err := s.provider.FetchOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	eligible := make([]domain.EligibleOrder, 0, len(orders))
	for _, order := range orders {
		if reason := Evaluate(order); !reason.Eligible() {
			s.logger.Info("Order excluded",
				zap.String("order_id", order.ID),
				zap.String("reason", string(reason)),
			)
			continue
		}
		eligible = append(eligible, ToEligibleOrder(order))
	}

	s.logger.Debug("Eligible orders resolved",
		zap.Int("fetched", len(orders)),
		zap.Int("eligible", len(eligible)),
	)

	return eligible, nil
}
