package domain

// FinancialStatus is the payment state Shopify reports for an order.
type FinancialStatus string

const (
	// FinancialStatusPaid indicates the order has been paid in full.
	FinancialStatusPaid FinancialStatus = "PAID"
	// FinancialStatusPending indicates payment is still expected, e.g. on delivery.
	FinancialStatusPending FinancialStatus = "PENDING"
)

// FulfillmentStatus is the shipping state Shopify reports for an order.
type FulfillmentStatus string

const (
	// FulfillmentStatusUnfulfilled indicates nothing has shipped yet.
	FulfillmentStatusUnfulfilled FulfillmentStatus = "UNFULFILLED"
	// FulfillmentStatusPartiallyFulfilled indicates some items have shipped.
	FulfillmentStatusPartiallyFulfilled FulfillmentStatus = "PARTIALLY_FULFILLED"
)

// FulfillmentServiceManual is the only fulfillment service type handled by Codex drivers.
const FulfillmentServiceManual = "MANUAL"

// Order is an open Shopify order as returned by the Admin API.
// Optional upstream values are pointers; nil means the field was null or absent.
type Order struct {
	// ID is the Shopify global id (gid://shopify/Order/...).
	ID string
	// Name is the human-readable order number, e.g. "#1001".
	Name string
	// FinancialStatus is the display financial status.
	FinancialStatus FinancialStatus
	// FulfillmentStatus is the order fulfillment status.
	FulfillmentStatus FulfillmentStatus
	// PaymentGatewayNames lists the gateways used to pay for the order.
	PaymentGatewayNames []string
	// OutstandingBalance is the amount still owed, in shop currency.
	OutstandingBalance *Money
	// ShippingAddress is where the order is delivered.
	ShippingAddress *ShippingAddress
	// LineItems are the products in the order.
	LineItems []LineItem
	// CustomerDisplayName is the customer's name, empty for guest orders.
	CustomerDisplayName string
}

// Money is an amount as Shopify serializes it: a decimal string plus currency.
type Money struct {
	Amount       string
	CurrencyCode string
}

// ShippingAddress is the delivery address attached to an order.
type ShippingAddress struct {
	Name      string
	Phone     string
	Address1  string
	Address2  string
	City      string
	Province  string
	Country   string
	Zip       string
	Latitude  *float64
	Longitude *float64
}

// LineItem is a single product line of an order.
type LineItem struct {
	ID                     string
	Title                  string
	RequiresShipping       bool
	FulfillableQuantity    *int
	FulfillmentServiceType string
}
