package service

import (
	"strings"
	"unicode"

	"codex-service/internal/features/orders/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// riyadhVariants are the spellings of Riyadh accepted in city or province, already folded.
var riyadhVariants = []string{"riyadh", "ar riyadh", "ar-riyadh", "الرياض"}

// Evaluate returns the first eligibility rule the order fails, or ReasonNone.
func Evaluate(order domain.Order) domain.ExclusionReason {
	switch order.FinancialStatus {
	case domain.FinancialStatusPaid, domain.FinancialStatusPending:
	default:
		return domain.ReasonFinancialStatusUnsupported
	}

	switch order.FulfillmentStatus {
	case domain.FulfillmentStatusUnfulfilled, domain.FulfillmentStatusPartiallyFulfilled:
	default:
		return domain.ReasonFulfillmentUnsupported
	}

	addr := order.ShippingAddress
	if addr == nil {
		return domain.ReasonMissingShippingAddress
	}

	if strings.TrimSpace(addr.Phone) == "" {
		return domain.ReasonMissingPhone
	}

	if !inRiyadh(addr.City) && !inRiyadh(addr.Province) {
		return domain.ReasonOutsideRiyadh
	}

	if !hasFulfillableItem(order.LineItems) {
		return domain.ReasonNoFulfillableItems
	}

	if order.FinancialStatus == domain.FinancialStatusPending {
		if !hasCODGateway(order.PaymentGatewayNames) {
			return domain.ReasonPendingWithoutCODGateway
		}
		if CODAmount(order).IsZero() {
			return domain.ReasonCODAmountMissing
		}
	}

	return domain.ReasonNone
}

// inRiyadh reports whether the text names Riyadh, ignoring case and diacritics.
func inRiyadh(text string) bool {
	folded := fold(text)
	if folded == "" {
		return false
	}
	for _, variant := range riyadhVariants {
		if strings.Contains(folded, variant) {
			return true
		}
	}
	return false
}

// fold decomposes text, drops combining marks (Latin accents and Arabic harakat) and case-folds it.
// Transformers keep internal state, so a fresh chain is built per call.
func fold(text string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), cases.Fold())
	folded, _, err := transform.String(t, strings.TrimSpace(text))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(text))
	}
	return folded
}

// hasFulfillableItem reports whether any line item can be delivered by a Codex driver.
func hasFulfillableItem(items []domain.LineItem) bool {
	for _, item := range items {
		if !item.RequiresShipping {
			continue
		}
		if item.FulfillmentServiceType != domain.FulfillmentServiceManual {
			continue
		}
		if item.FulfillableQuantity != nil && *item.FulfillableQuantity > 0 {
			return true
		}
	}
	return false
}

// hasCODGateway reports whether any payment gateway looks like cash on delivery.
func hasCODGateway(gateways []string) bool {
	for _, name := range gateways {
		lower := strings.ToLower(name)
		if strings.Contains(lower, "cash") && strings.Contains(lower, "delivery") {
			return true
		}
	}
	return false
}
