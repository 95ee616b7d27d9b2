package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"codex-service/internal/core/config"
	"codex-service/internal/core/httpclient"
	"codex-service/internal/core/logger"
	"codex-service/internal/core/proxy"
	"codex-service/internal/features/orders/domain"

	"github.com/go-playground/validator/v10"
	"github.com/imroc/req/v3"
	"go.uber.org/zap"
)

var errMissingData = errors.New("response has no data")

// ShopifyAdapter implements the OrderProvider interface using the Shopify Admin GraphQL API.
type ShopifyAdapter struct {
	// client is the HTTP client used for API requests.
	client *req.Client
	// config holds the shop, token and paging settings.
	config config.ShopifyConfig
	// endpoint is the versioned GraphQL URL of the shop.
	endpoint string
	// validate checks decoded payloads before they are mapped to the domain.
	validate *validator.Validate
	logger   *zap.Logger
}

// NewShopifyAdapter creates a new instance of ShopifyAdapter.
func NewShopifyAdapter(cfg config.ShopifyConfig, proxySettings proxy.Settings) *ShopifyAdapter {
	dialer := &net.Dialer{Timeout: cfg.ConnectTimeout()}

	client := req.C().
		SetTimeout(cfg.Timeout()).
		SetDial(dialer.DialContext).
		SetCommonHeaders(map[string]string{
			"X-Shopify-Access-Token": cfg.AccessToken,
			"Content-Type":           "application/json",
			"Accept":                 "application/json",
		})

	if proxySettings.HasProxy() {
		client.SetProxyURL(proxySettings.FullURL())
	}

	httpclient.Instrument(client.GetClient())

	return &ShopifyAdapter{
		client:   client,
		config:   cfg,
		endpoint: graphQLEndpoint(cfg),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger.Named("shopify"),
	}
}

// graphQLEndpoint builds https://{shop}/admin/api/{version}/graphql.json.
func graphQLEndpoint(cfg config.ShopifyConfig) string {
	shop := strings.TrimPrefix(cfg.ShopDomain, "https://")
	shop = strings.TrimPrefix(shop, "http://")
	shop = strings.TrimSuffix(shop, "/")
	return fmt.Sprintf("https://%s/admin/api/%s/graphql.json", shop, cfg.APIVersion)
}

// FetchOrders pages through all open orders, newest first.
// Paging stops when Shopify reports no next page or returns an empty page.
func (a *ShopifyAdapter) FetchOrders(ctx context.Context) ([]domain.Order, error) {
	var (
		cursor *string
		orders []domain.Order
	)

	for page := 1; ; page++ {
		var data ordersData
		variables := ordersVariables{Cursor: cursor, PageSize: a.config.PageSize}
		if err := a.execute(ctx, ordersQuery, variables, &data); err != nil {
			return nil, err
		}

		conn := data.Orders
		for _, edge := range conn.Edges {
			orders = append(orders, mapToDomain(edge.Node))
		}

		a.logger.Debug("Fetched orders page",
			zap.Int("page", page),
			zap.Int("orders", len(conn.Edges)),
			zap.Bool("has_next_page", conn.PageInfo.HasNextPage),
		)

		if !conn.PageInfo.HasNextPage || len(conn.Edges) == 0 {
			break
		}
		next := conn.Edges[len(conn.Edges)-1].Cursor
		cursor = &next
	}

	return orders, nil
}

// HealthCheck verifies that the shop is reachable and the access token is accepted.
func (a *ShopifyAdapter) HealthCheck(ctx context.Context) error {
	var data shopData
	if err := a.execute(ctx, shopQuery, nil, &data); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	a.logger.Info("Shopify shop reachable", zap.String("shop", data.Shop.Name))
	return nil
}

// execute posts one GraphQL operation and decodes its data into out.
func (a *ShopifyAdapter) execute(ctx context.Context, query string, variables any, out any) error {
	resp, err := a.client.R().
		SetContext(ctx).
		SetBodyJsonMarshal(graphQLRequest{Query: query, Variables: variables}).
		Post(a.endpoint)
	if err != nil {
		return &domain.TransportError{Err: err}
	}

	if !resp.IsSuccessState() {
		return &domain.TransportError{StatusCode: resp.StatusCode}
	}

	var envelope graphQLResponse
	if err := json.Unmarshal(resp.Bytes(), &envelope); err != nil {
		return &domain.ProtocolError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if envelope.Errors != nil {
		messages := envelope.Errors.messages()
		a.logger.Error("Shopify GraphQL returned errors", zap.Strings("errors", messages))
		return &domain.ProtocolError{Messages: messages}
	}

	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return &domain.ProtocolError{Err: errMissingData}
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return &domain.ProtocolError{Err: fmt.Errorf("failed to decode data: %w", err)}
	}

	if err := a.validate.Struct(out); err != nil {
		return &domain.ProtocolError{Err: fmt.Errorf("unexpected response shape: %w", err)}
	}

	return nil
}

// mapToDomain converts a raw GraphQL order node into a domain Order entity.
func mapToDomain(node orderNode) domain.Order {
	order := domain.Order{
		ID:                  node.ID,
		Name:                node.Name,
		FinancialStatus:     domain.FinancialStatus(node.DisplayFinancialStatus),
		FulfillmentStatus:   domain.FulfillmentStatus(node.FulfillmentStatus),
		PaymentGatewayNames: node.PaymentGatewayNames,
	}

	if node.TotalOutstandingSet != nil && node.TotalOutstandingSet.ShopMoney != nil {
		order.OutstandingBalance = &domain.Money{
			Amount:       string(node.TotalOutstandingSet.ShopMoney.Amount),
			CurrencyCode: node.TotalOutstandingSet.ShopMoney.CurrencyCode,
		}
	}

	if addr := node.ShippingAddress; addr != nil {
		order.ShippingAddress = &domain.ShippingAddress{
			Name:      addr.Name,
			Phone:     addr.Phone,
			Address1:  addr.Address1,
			Address2:  addr.Address2,
			City:      addr.City,
			Province:  addr.Province,
			Country:   addr.Country,
			Zip:       addr.Zip,
			Latitude:  addr.Latitude,
			Longitude: addr.Longitude,
		}
	}

	if node.LineItems != nil {
		order.LineItems = make([]domain.LineItem, 0, len(node.LineItems.Edges))
		for _, edge := range node.LineItems.Edges {
			item := edge.Node
			var serviceType string
			if item.FulfillmentService != nil {
				serviceType = item.FulfillmentService.Type
			}
			order.LineItems = append(order.LineItems, domain.LineItem{
				ID:                     item.ID,
				Title:                  item.Title,
				RequiresShipping:       item.RequiresShipping,
				FulfillableQuantity:    item.FulfillableQuantity.value,
				FulfillmentServiceType: serviceType,
			})
		}
	}

	if node.Customer != nil {
		order.CustomerDisplayName = node.Customer.DisplayName
	}

	return order
}

// internal structs for mapping

// graphQLRequest is the POST body of a GraphQL operation.
type graphQLRequest struct {
	Query     string `json:"query"`
	Variables any    `json:"variables,omitempty"`
}

// ordersVariables are the variables of the orders query. A nil cursor requests the first page.
type ordersVariables struct {
	Cursor   *string `json:"cursor"`
	PageSize int     `json:"pageSize"`
}

// graphQLResponse is the envelope of every GraphQL response.
type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors graphQLErrors   `json:"errors"`
}

// graphQLErrors is the top-level error list. A present but empty list still fails the request.
type graphQLErrors []struct {
	Message string `json:"message"`
}

func (e graphQLErrors) messages() []string {
	messages := make([]string, 0, len(e))
	for _, item := range e {
		if item.Message != "" {
			messages = append(messages, item.Message)
		}
	}
	if len(messages) == 0 {
		messages = append(messages, "unspecified GraphQL error")
	}
	return messages
}

// ordersData is the data payload of the orders query.
type ordersData struct {
	Orders *orderConnection `json:"orders" validate:"required"`
}

type orderConnection struct {
	Edges    []orderEdge `json:"edges" validate:"required,dive"`
	PageInfo *pageInfo   `json:"pageInfo" validate:"required"`
}

type orderEdge struct {
	Cursor string    `json:"cursor" validate:"required"`
	Node   orderNode `json:"node"`
}

type pageInfo struct {
	HasNextPage bool `json:"hasNextPage"`
}

// orderNode represents the JSON structure of an order node.
type orderNode struct {
	ID                     string              `json:"id" validate:"required"`
	Name                   string              `json:"name"`
	DisplayFinancialStatus string              `json:"displayFinancialStatus"`
	FulfillmentStatus      string              `json:"fulfillmentStatus"`
	PaymentGatewayNames    []string            `json:"paymentGatewayNames"`
	TotalOutstandingSet    *moneyBag           `json:"totalOutstandingSet"`
	ShippingAddress        *mailingAddress     `json:"shippingAddress"`
	LineItems              *lineItemConnection `json:"lineItems"`
	Customer               *customerNode       `json:"customer"`
}

type moneyBag struct {
	ShopMoney *moneyV2 `json:"shopMoney"`
}

type moneyV2 struct {
	Amount       scalarString `json:"amount"`
	CurrencyCode string       `json:"currencyCode"`
}

type mailingAddress struct {
	Name      string   `json:"name"`
	Phone     string   `json:"phone"`
	Address1  string   `json:"address1"`
	Address2  string   `json:"address2"`
	City      string   `json:"city"`
	Province  string   `json:"province"`
	Country   string   `json:"country"`
	Zip       string   `json:"zip"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type lineItemConnection struct {
	Edges []struct {
		Node lineItemNode `json:"node"`
	} `json:"edges"`
}

type lineItemNode struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	RequiresShipping    bool     `json:"requiresShipping"`
	FulfillableQuantity quantity `json:"fulfillableQuantity"`
	FulfillmentService  *struct {
		Type string `json:"type"`
	} `json:"fulfillmentService"`
}

type customerNode struct {
	DisplayName string `json:"displayName"`
}

// shopData is the data payload of the health check query.
type shopData struct {
	Shop *struct {
		Name string `json:"name" validate:"required"`
	} `json:"shop" validate:"required"`
}

// scalarString keeps a scalar's text whether Shopify sends it as a JSON string or number.
type scalarString string

// UnmarshalJSON stores strings unquoted and any other literal verbatim; null becomes empty.
func (s *scalarString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = ""
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = scalarString(str)
		return nil
	}
	*s = scalarString(b)
	return nil
}

// quantity is a leniently parsed integer. Numbers are truncated, numeric strings are
// parsed, and anything else leaves the value nil rather than failing the whole page.
type quantity struct {
	value *int
}

// UnmarshalJSON never returns an error; an unusable quantity is simply unknown.
func (q *quantity) UnmarshalJSON(b []byte) error {
	q.value = nil

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil
	}

	switch v := raw.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			n := int(i)
			q.value = &n
		} else if f, err := v.Float64(); err == nil {
			n := int(f)
			q.value = &n
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			q.value = &n
		}
	}
	return nil
}
