package handler

import (
	"net/http"

	"codex-service/internal/core/logger"
	"codex-service/internal/features/orders/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests related to orders.
type OrderHandler struct {
	// service is the OrderService instance.
	service ports.OrderService
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(s ports.OrderService) *OrderHandler {
	return &OrderHandler{
		service: s,
	}
}

// ListEligible returns every open order a Codex driver can deliver right now.
// @Summary List eligible orders
// @Description Fetches all open Shopify orders and returns the ones eligible for Codex delivery in Riyadh, newest first.
// @Tags Codex
// @Produce json
// @Success 200 {array} domain.EligibleOrder
// @Failure 500 {object} ErrorResponse
// @Router /codex/eligible [get]
func (h *OrderHandler) ListEligible(c *fiber.Ctx) error {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}

	orders, err := h.service.ListEligibleOrders(c.UserContext())
	if err != nil {
		logger.Get().Error("Failed to list eligible orders",
			zap.String("ray_id", rayID),
			zap.Error(err),
		)

		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(orders)
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}
