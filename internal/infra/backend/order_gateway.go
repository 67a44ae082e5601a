package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

type createOrderRequest struct {
	UserID entity.UserID `json:"userId"`
}

// NewOrderGateway exposes the client as the order port.
func NewOrderGateway(c *Client) service.OrderGateway {
	return c
}

// CreateOrder implements service.OrderGateway. The raw response is kept as the
// confirmation payload.
func (c *Client) CreateOrder(ctx context.Context, userID entity.UserID, idempotencyKey string) (*entity.OrderConfirmation, error) {
	var raw json.RawMessage
	err := c.do(ctx, http.MethodPost, "/api/orders", requestOptions{
		body:           createOrderRequest{UserID: userID},
		idempotencyKey: idempotencyKey,
	}, &raw)
	if err != nil {
		return nil, err
	}

	var confirmation entity.OrderConfirmation
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &confirmation); err != nil {
			return nil, errors.Wrap(err, "decode order confirmation")
		}
		confirmation.Payload = raw
	}

	return &confirmation, nil
}

// ListOrders implements service.OrderGateway.
func (c *Client) ListOrders(ctx context.Context, userID entity.UserID) ([]entity.Order, error) {
	var orders []entity.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", requestOptions{query: userQuery(userID)}, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []entity.Order{}
	}

	return orders, nil
}
