package service

import (
	"strings"

	"codex-service/internal/core/logger"
	"codex-service/internal/features/orders/domain"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CODAmount returns the amount to collect on delivery in shop currency.
// It is zero unless payment is pending. Unparseable or negative balances are
// logged and treated as zero; the result is never negative.
func CODAmount(order domain.Order) decimal.Decimal {
	if order.FinancialStatus != domain.FinancialStatusPending {
		return decimal.Zero
	}

	if order.OutstandingBalance == nil {
		return decimal.Zero
	}

	raw := strings.TrimSpace(order.OutstandingBalance.Amount)
	if raw == "" {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		logger.Named("orders").Warn("Unparseable outstanding balance",
			zap.String("order_id", order.ID),
			zap.String("amount", raw),
			zap.Error(err),
		)
		return decimal.Zero
	}

	if amount.IsNegative() {
		logger.Named("orders").Warn("Negative outstanding balance",
			zap.String("order_id", order.ID),
			zap.String("amount", raw),
		)
		return decimal.Zero
	}

	return amount
}
