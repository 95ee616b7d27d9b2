package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"codex-service/internal/features/orders/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderService is a mock implementation of ports.OrderService
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) ListEligibleOrders(ctx context.Context) ([]domain.EligibleOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EligibleOrder), args.Error(1)
}

func setupApp(service *MockOrderService) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	handler := NewOrderHandler(service)
	app.Get("/codex/eligible", handler.ListEligible)
	return app
}

func TestOrderHandler_ListEligible(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockOrderService)
		app := setupApp(mockService)

		lat, lon := 24.7136, 46.6753
		orders := []domain.EligibleOrder{
			{
				OrderID:      "#1002",
				ShopOrderGID: "gid://shopify/Order/2",
				Customer:     domain.Customer{Name: "Reem", Phone: "+966500000001"},
				Address:      domain.Address{Text: "King Fahd Road، Riyadh", Lat: &lat, Lon: &lon},
				CodSAR:       decimal.RequireFromString("249.00"),
				Notes:        domain.NotesCOD,
			},
			{
				OrderID:      "#1001",
				ShopOrderGID: "gid://shopify/Order/1",
				Customer:     domain.Customer{Name: "Omar", Phone: "+966500000002"},
				Address:      domain.Address{Text: "Olaya، الرياض"},
				CodSAR:       decimal.Zero,
			},
		}
		mockService.On("ListEligibleOrders", mock.Anything).Return(orders, nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/codex/eligible", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var payload []map[string]any
		require.NoError(t, json.Unmarshal(body, &payload))
		require.Len(t, payload, 2)
		assert.Equal(t, "#1002", payload[0]["order_id"])
		assert.Equal(t, 249.0, payload[0]["cod_sar"])
		assert.Equal(t, "COD", payload[0]["notes"])
		assert.Equal(t, 0.0, payload[1]["cod_sar"])
		assert.Nil(t, payload[1]["address"].(map[string]any)["lat"])
		mockService.AssertExpectations(t)
	})

	t.Run("EmptyList", func(t *testing.T) {
		mockService := new(MockOrderService)
		app := setupApp(mockService)

		mockService.On("ListEligibleOrders", mock.Anything).Return([]domain.EligibleOrder{}, nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/codex/eligible", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `[]`, string(body))
	})

	t.Run("UpstreamFailure", func(t *testing.T) {
		mockService := new(MockOrderService)
		app := setupApp(mockService)

		upstreamErr := &domain.ProtocolError{Messages: []string{"Access denied for orders field"}}
		mockService.On("ListEligibleOrders", mock.Anything).Return(nil, upstreamErr).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/codex/eligible", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var errResp ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
		assert.Equal(t, "Internal Server Error", errResp.Message)
		assert.Equal(t, "test-ray-id", errResp.RayID)
		mockService.AssertExpectations(t)
	})
}
