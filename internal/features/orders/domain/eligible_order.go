package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// NotesCOD marks an order whose amount must be collected on delivery.
const NotesCOD = "COD"

// EligibleOrder is an order the Codex drivers can deliver.
type EligibleOrder struct {
	// OrderID is the Shopify order number, e.g. "#1001".
	OrderID string `json:"order_id"`
	// ShopOrderGID is the Shopify order global id.
	ShopOrderGID string `json:"shop_order_gid"`
	// Customer is who receives the order.
	Customer Customer `json:"customer"`
	// Address is where the order is delivered.
	Address Address `json:"address"`
	// CodSAR is the cash-on-delivery amount in SAR, zero unless payment is pending.
	CodSAR decimal.Decimal `json:"-" swaggertype:"number"`
	// Notes carries handling notes for the driver ("COD" or empty).
	Notes string `json:"notes"`
}

// Customer identifies the recipient.
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Address is the human-readable delivery address with optional coordinates.
type Address struct {
	Text string   `json:"text"`
	Lat  *float64 `json:"lat"`
	Lon  *float64 `json:"lon"`
}

// MarshalJSON writes cod_sar as a JSON number while keeping the exact decimal digits.
func (o EligibleOrder) MarshalJSON() ([]byte, error) {
	type plain EligibleOrder
	return json.Marshal(struct {
		plain
		CodSAR json.Number `json:"cod_sar"`
	}{
		plain:  plain(o),
		CodSAR: json.Number(o.CodSAR.String()),
	})
}

// UnmarshalJSON accepts cod_sar as a JSON number or string.
func (o *EligibleOrder) UnmarshalJSON(data []byte) error {
	type plain EligibleOrder
	aux := struct {
		*plain
		CodSAR decimal.Decimal `json:"cod_sar"`
	}{plain: (*plain)(o)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	o.CodSAR = aux.CodSAR
	return nil
}
