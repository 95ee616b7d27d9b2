package service

import (
	"strings"

	"codex-service/internal/features/orders/domain"
)

// addressSeparator is the Arabic comma used to join address parts.
const addressSeparator = "، "

// ToEligibleOrder maps an order that passed Evaluate to the driver-facing shape.
func ToEligibleOrder(order domain.Order) domain.EligibleOrder {
	amount := CODAmount(order)

	var notes string
	if amount.IsPositive() {
		notes = domain.NotesCOD
	}

	eligible := domain.EligibleOrder{
		OrderID:      order.Name,
		ShopOrderGID: order.ID,
		Customer:     domain.Customer{Name: strings.TrimSpace(order.CustomerDisplayName)},
		CodSAR:       amount,
		Notes:        notes,
	}

	if addr := order.ShippingAddress; addr != nil {
		if name := strings.TrimSpace(addr.Name); name != "" {
			eligible.Customer.Name = name
		}
		eligible.Customer.Phone = strings.TrimSpace(addr.Phone)
		eligible.Address = domain.Address{
			Text: joinAddress(addr.Address1, addr.Address2, addr.City, addr.Province),
			Lat:  addr.Latitude,
			Lon:  addr.Longitude,
		}
	}

	return eligible
}

func joinAddress(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, addressSeparator)
}
