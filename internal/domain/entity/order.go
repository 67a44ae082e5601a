package entity

import (
	"github.com/shopspring/decimal"
)

// Order is a placed order as listed in the orders tab.
type Order struct {
	ID          int64           `json:"id"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	OrderDate   string          `json:"order_date,omitempty"`
	Items       []OrderItem     `json:"items"`
}

// OrderItem is one line of a placed order.
type OrderItem struct {
	ProductID          ProductID       `json:"product_id"`
	ProductName        string          `json:"product_name,omitempty"`
	Quantity           int             `json:"quantity"`
	PriceAtTimeOfOrder decimal.Decimal `json:"price_at_time_of_order"`
}
