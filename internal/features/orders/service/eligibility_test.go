package service

import (
	"testing"

	"codex-service/internal/features/orders/domain"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// paidOrder returns an order that passes every rule; tests break one thing at a time.
func paidOrder() domain.Order {
	return domain.Order{
		ID:                  "gid://shopify/Order/1001",
		Name:                "#1001",
		FinancialStatus:     domain.FinancialStatusPaid,
		FulfillmentStatus:   domain.FulfillmentStatusUnfulfilled,
		PaymentGatewayNames: []string{"shopify_payments"},
		OutstandingBalance:  &domain.Money{Amount: "0.00", CurrencyCode: "SAR"},
		ShippingAddress: &domain.ShippingAddress{
			Name:      "Reem Alharbi",
			Phone:     "+966500000001",
			Address1:  "King Fahd Road",
			Address2:  "Building 12",
			City:      "Riyadh",
			Province:  "Riyadh Province",
			Country:   "Saudi Arabia",
			Zip:       "12271",
			Latitude:  floatPtr(24.7136),
			Longitude: floatPtr(46.6753),
		},
		LineItems: []domain.LineItem{{
			ID:                     "gid://shopify/LineItem/1",
			Title:                  "Abaya",
			RequiresShipping:       true,
			FulfillableQuantity:    intPtr(1),
			FulfillmentServiceType: domain.FulfillmentServiceManual,
		}},
		CustomerDisplayName: "Reem A.",
	}
}

// pendingCODOrder returns an eligible cash-on-delivery order.
func pendingCODOrder() domain.Order {
	order := paidOrder()
	order.FinancialStatus = domain.FinancialStatusPending
	order.PaymentGatewayNames = []string{"Cash on Delivery (COD)"}
	order.OutstandingBalance = &domain.Money{Amount: "249.00", CurrencyCode: "SAR"}
	return order
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(o *domain.Order)
		want   domain.ExclusionReason
	}{
		{name: "PaidEligible", mutate: func(o *domain.Order) {}, want: domain.ReasonNone},
		{name: "PartiallyFulfilledEligible", mutate: func(o *domain.Order) {
			o.FulfillmentStatus = domain.FulfillmentStatusPartiallyFulfilled
		}, want: domain.ReasonNone},
		{name: "Refunded", mutate: func(o *domain.Order) {
			o.FinancialStatus = "REFUNDED"
		}, want: domain.ReasonFinancialStatusUnsupported},
		{name: "EmptyFinancialStatus", mutate: func(o *domain.Order) {
			o.FinancialStatus = ""
		}, want: domain.ReasonFinancialStatusUnsupported},
		{name: "Fulfilled", mutate: func(o *domain.Order) {
			o.FulfillmentStatus = "FULFILLED"
		}, want: domain.ReasonFulfillmentUnsupported},
		{name: "NoShippingAddress", mutate: func(o *domain.Order) {
			o.ShippingAddress = nil
		}, want: domain.ReasonMissingShippingAddress},
		{name: "EmptyPhone", mutate: func(o *domain.Order) {
			o.ShippingAddress.Phone = ""
		}, want: domain.ReasonMissingPhone},
		{name: "BlankPhone", mutate: func(o *domain.Order) {
			o.ShippingAddress.Phone = "   "
		}, want: domain.ReasonMissingPhone},
		{name: "Jeddah", mutate: func(o *domain.Order) {
			o.ShippingAddress.City = "Jeddah"
			o.ShippingAddress.Province = "Makkah"
		}, want: domain.ReasonOutsideRiyadh},
		{name: "RiyadhOnlyInProvince", mutate: func(o *domain.Order) {
			o.ShippingAddress.City = "Diriyah Gate"
			o.ShippingAddress.Province = "Ar Riyadh"
		}, want: domain.ReasonNone},
		{name: "ArabicCity", mutate: func(o *domain.Order) {
			o.ShippingAddress.City = "الرياض"
			o.ShippingAddress.Province = ""
		}, want: domain.ReasonNone},
		{name: "ArabicCityWithHarakat", mutate: func(o *domain.Order) {
			o.ShippingAddress.City = "الرِّيَاض"
			o.ShippingAddress.Province = ""
		}, want: domain.ReasonNone},
		{name: "AccentedLatin", mutate: func(o *domain.Order) {
			o.ShippingAddress.City = "Riyâdh"
			o.ShippingAddress.Province = ""
		}, want: domain.ReasonNone},
		{name: "NoLineItems", mutate: func(o *domain.Order) {
			o.LineItems = nil
		}, want: domain.ReasonNoFulfillableItems},
		{name: "ZeroQuantity", mutate: func(o *domain.Order) {
			o.LineItems[0].FulfillableQuantity = intPtr(0)
		}, want: domain.ReasonNoFulfillableItems},
		{name: "UnknownQuantity", mutate: func(o *domain.Order) {
			o.LineItems[0].FulfillableQuantity = nil
		}, want: domain.ReasonNoFulfillableItems},
		{name: "NotRequiringShipping", mutate: func(o *domain.Order) {
			o.LineItems[0].RequiresShipping = false
		}, want: domain.ReasonNoFulfillableItems},
		{name: "ThirdPartyFulfillment", mutate: func(o *domain.Order) {
			o.LineItems[0].FulfillmentServiceType = "THIRD_PARTY"
		}, want: domain.ReasonNoFulfillableItems},
		{name: "LowercaseManualIsNotManual", mutate: func(o *domain.Order) {
			o.LineItems[0].FulfillmentServiceType = "manual"
		}, want: domain.ReasonNoFulfillableItems},
		{name: "OneFulfillableAmongMany", mutate: func(o *domain.Order) {
			o.LineItems = append([]domain.LineItem{{Title: "Gift card", FulfillableQuantity: intPtr(1)}}, o.LineItems...)
		}, want: domain.ReasonNone},
		{name: "PendingWithoutGateways", mutate: func(o *domain.Order) {
			o.FinancialStatus = domain.FinancialStatusPending
			o.PaymentGatewayNames = nil
			o.OutstandingBalance = &domain.Money{Amount: "100.00"}
		}, want: domain.ReasonPendingWithoutCODGateway},
		{name: "PendingWithOnlyCash", mutate: func(o *domain.Order) {
			o.FinancialStatus = domain.FinancialStatusPending
			o.PaymentGatewayNames = []string{"Cash"}
			o.OutstandingBalance = &domain.Money{Amount: "100.00"}
		}, want: domain.ReasonPendingWithoutCODGateway},
		{name: "PendingUppercaseGateway", mutate: func(o *domain.Order) {
			o.FinancialStatus = domain.FinancialStatusPending
			o.PaymentGatewayNames = []string{"CASH ON DELIVERY"}
			o.OutstandingBalance = &domain.Money{Amount: "100.00"}
		}, want: domain.ReasonNone},
		{name: "PendingZeroAmount", mutate: func(o *domain.Order) {
			o.FinancialStatus = domain.FinancialStatusPending
			o.PaymentGatewayNames = []string{"Cash on Delivery"}
			o.OutstandingBalance = &domain.Money{Amount: "0.00"}
		}, want: domain.ReasonCODAmountMissing},
		{name: "PendingMissingAmount", mutate: func(o *domain.Order) {
			o.FinancialStatus = domain.FinancialStatusPending
			o.PaymentGatewayNames = []string{"Cash on Delivery"}
			o.OutstandingBalance = nil
		}, want: domain.ReasonCODAmountMissing},
		{name: "PendingGarbageAmount", mutate: func(o *domain.Order) {
			o.FinancialStatus = domain.FinancialStatusPending
			o.PaymentGatewayNames = []string{"Cash on Delivery"}
			o.OutstandingBalance = &domain.Money{Amount: "two hundred"}
		}, want: domain.ReasonCODAmountMissing},
		{name: "PaidIgnoresGateway", mutate: func(o *domain.Order) {
			o.PaymentGatewayNames = []string{"Visa"}
		}, want: domain.ReasonNone},
		{name: "FirstFailingRuleWins", mutate: func(o *domain.Order) {
			o.FulfillmentStatus = "FULFILLED"
			o.ShippingAddress = nil
			o.LineItems = nil
		}, want: domain.ReasonFulfillmentUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := paidOrder()
			tt.mutate(&order)
			assert.Equal(t, tt.want, Evaluate(order))
		})
	}
}

func TestEvaluate_RiyadhCaseVariants(t *testing.T) {
	for _, city := range []string{"RIYADH", "Riyadh", "riyadh", " riyadh ", "AR-RIYADH", "Ar Riyadh", "North Riyadh District"} {
		t.Run(city, func(t *testing.T) {
			order := paidOrder()
			order.ShippingAddress.City = city
			order.ShippingAddress.Province = ""
			assert.Equal(t, domain.ReasonNone, Evaluate(order))
		})
	}
}

// TestEvaluate_Idempotent verifies repeated evaluation of the same order gives the same answer.
func TestEvaluate_Idempotent(t *testing.T) {
	orders := []domain.Order{paidOrder(), pendingCODOrder()}
	excluded := paidOrder()
	excluded.ShippingAddress.City = "Dammam"
	excluded.ShippingAddress.Province = ""
	orders = append(orders, excluded)

	for _, order := range orders {
		first := Evaluate(order)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, Evaluate(order))
		}
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, "riyadh", fold("RIYADH"))
	assert.Equal(t, "riyadh", fold("Riyâdh"))
	assert.Equal(t, "الرياض", fold("الرِّيَاض"))
	assert.Empty(t, fold("   "))
}
