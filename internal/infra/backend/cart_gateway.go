package backend

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

type addToCartRequest struct {
	UserID    entity.UserID    `json:"userId"`
	ProductID entity.ProductID `json:"productId"`
	Quantity  int              `json:"quantity"`
}

type setQuantityRequest struct {
	NewQuantity int `json:"newQuantity"`
}

// NewCartGateway exposes the client as the cart port.
func NewCartGateway(c *Client) service.CartGateway {
	return c
}

// FetchCart implements service.CartGateway.
func (c *Client) FetchCart(ctx context.Context, userID entity.UserID) ([]entity.CartLine, error) {
	var lines []entity.CartLine
	if err := c.do(ctx, http.MethodGet, "/api/cart", requestOptions{query: userQuery(userID)}, &lines); err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []entity.CartLine{}
	}

	return lines, nil
}

// AddToCart implements service.CartGateway.
func (c *Client) AddToCart(ctx context.Context, userID entity.UserID, productID entity.ProductID, quantity int) error {
	return c.do(ctx, http.MethodPost, "/api/cart", requestOptions{
		body: addToCartRequest{UserID: userID, ProductID: productID, Quantity: quantity},
	}, nil)
}

// SetQuantity implements service.CartGateway.
func (c *Client) SetQuantity(ctx context.Context, userID entity.UserID, productID entity.ProductID, newQuantity int) error {
	return c.do(ctx, http.MethodPut, "/api/cart/item/"+productID.String(), requestOptions{
		query: userQuery(userID),
		body:  setQuantityRequest{NewQuantity: newQuantity},
	}, nil)
}

// RemoveItem implements service.CartGateway.
func (c *Client) RemoveItem(ctx context.Context, userID entity.UserID, productID entity.ProductID) error {
	return c.do(ctx, http.MethodDelete, "/api/cart/item/"+productID.String(), requestOptions{
		query: userQuery(userID),
	}, nil)
}
