package domain

// ExclusionReason names the first eligibility rule an order failed.
// The zero value means the order is eligible.
type ExclusionReason string

const (
	ReasonNone                       ExclusionReason = ""
	ReasonFinancialStatusUnsupported ExclusionReason = "financial_status_not_supported"
	ReasonFulfillmentUnsupported     ExclusionReason = "fulfillment_status_not_supported"
	ReasonMissingShippingAddress     ExclusionReason = "missing_shipping_address"
	ReasonMissingPhone               ExclusionReason = "missing_phone"
	ReasonOutsideRiyadh              ExclusionReason = "outside_riyadh"
	ReasonNoFulfillableItems         ExclusionReason = "no_fulfillable_items"
	ReasonPendingWithoutCODGateway   ExclusionReason = "pending_without_cod_gateway"
	ReasonCODAmountMissing           ExclusionReason = "cod_amount_missing"
)

// Eligible reports whether no rule excluded the order.
func (r ExclusionReason) Eligible() bool {
	return r == ReasonNone
}
