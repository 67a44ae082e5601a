package entity

import (
	"github.com/shopspring/decimal"
)

// LineStatus tags whether a cart line mirrors the server or an optimistic guess.
type LineStatus string

const (
	LineConfirmed LineStatus = "confirmed"
	LinePending   LineStatus = "pending"
)

// CartLine is one product in the cart with its product fields denormalized.
type CartLine struct {
	ProductID     ProductID           `json:"product_id"`
	Quantity      int                 `json:"quantity"`
	Name          string              `json:"name"`
	Price         decimal.Decimal     `json:"price"`
	DiscountPrice decimal.NullDecimal `json:"discount_price"`
	IsOnSale      bool                `json:"is_on_sale,omitempty"`
	ImageURL      string              `json:"image_url,omitempty"`
	SupplierName  string              `json:"supplier_name,omitempty"`
	StockLevel    int                 `json:"stock_level"`
	Status        LineStatus          `json:"status"`
}

// UnitPrice is the price a line is charged at.
func (l *CartLine) UnitPrice() decimal.Decimal {
	if l.IsOnSale && l.DiscountPrice.Valid {
		return l.DiscountPrice.Decimal
	}

	return l.Price
}

// Subtotal is unit price times quantity.
func (l *CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// ActiveItem is the product the mini-cart popover currently points at.
type ActiveItem struct {
	ProductID       ProductID       `json:"product_id"`
	Name            string          `json:"name,omitempty"`
	Price           decimal.Decimal `json:"price"`
	ImageURL        string          `json:"image_url,omitempty"`
	Quantity        int             `json:"quantity"`
	ControlsVisible bool            `json:"controls_visible"`
}

// CartSnapshot is a read-only copy of the cart engine state.
type CartSnapshot struct {
	Items         []CartLine      `json:"items"`
	Loading       bool            `json:"loading"`
	Error         string          `json:"error,omitempty"`
	PendingUpdate bool            `json:"pending_update"`
	ActiveItem    *ActiveItem     `json:"active_item,omitempty"`
	Visible       bool            `json:"visible"`
	ItemCount     int             `json:"item_count"`
	Total         decimal.Decimal `json:"total"`
}

// IsEmpty reports whether the snapshot holds no lines.
func (s *CartSnapshot) IsEmpty() bool {
	return s == nil || len(s.Items) == 0
}

// Line returns the line for productID, if any.
func (s *CartSnapshot) Line(productID ProductID) (CartLine, bool) {
	if s == nil {
		return CartLine{}, false
	}
	for _, line := range s.Items {
		if line.ProductID == productID {
			return line, true
		}
	}

	return CartLine{}, false
}
