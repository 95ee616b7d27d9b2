package ports

import (
	"context"

	"codex-service/internal/features/orders/domain"
)

// OrderProvider retrieves open orders from the commerce platform.
// This is a Secondary Port (Driven Port).
type OrderProvider interface {
	// FetchOrders returns every open order, newest first. Any failure aborts
	// the whole fetch; no partial result is returned.
	FetchOrders(ctx context.Context) ([]domain.Order, error)
}

// OrderService exposes the eligible-order listing to handlers.
// This is a Primary Port (Driving Port).
type OrderService interface {
	ListEligibleOrders(ctx context.Context) ([]domain.EligibleOrder, error)
}
