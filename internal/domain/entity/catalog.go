package entity

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// ProductID identifies a product in the remote catalog.
type ProductID int64

// String renders the id for paths and query strings.
func (id ProductID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Product is a catalog product as served by the backend.
type Product struct {
	ID            ProductID           `json:"id"`
	Name          string              `json:"name"`
	Description   string              `json:"description,omitempty"`
	Category      string              `json:"category,omitempty"`
	Price         decimal.Decimal     `json:"price"`
	DiscountPrice decimal.NullDecimal `json:"discount_price"`
	IsOnSale      bool                `json:"is_on_sale,omitempty"`
	ImageURL      string              `json:"image_url,omitempty"`
	StockLevel    int                 `json:"stock_level"`
	SupplierID    int64               `json:"supplier_id,omitempty"`
	SupplierName  string              `json:"supplier_name,omitempty"`
}

// EffectivePrice is the discount price when the product is on sale.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.IsOnSale && p.DiscountPrice.Valid {
		return p.DiscountPrice.Decimal
	}

	return p.Price
}

// InStock reports whether the product can be ordered.
func (p *Product) InStock() bool {
	return p.StockLevel > 0
}

// ProductPage is one page of the city-scoped product listing.
type ProductPage struct {
	Items       []Product `json:"items"`
	CurrentPage int       `json:"currentPage"`
	TotalPages  int       `json:"totalPages"`
	TotalItems  int       `json:"totalItems"`
}

// HasMore reports whether a further page exists.
func (p *ProductPage) HasMore() bool {
	return p.CurrentPage < p.TotalPages
}

// ProductDetails wraps a product with availability and alternatives.
type ProductDetails struct {
	OriginalProduct *Product  `json:"originalProduct"`
	IsAvailable     bool      `json:"isAvailable"`
	Alternatives    []Product `json:"alternatives"`
}

// Deal is a supplier promotion.
type Deal struct {
	ID                 int64               `json:"id"`
	Title              string              `json:"title"`
	Description        string              `json:"description,omitempty"`
	DiscountPercentage decimal.NullDecimal `json:"discount_percentage"`
	StartDate          string              `json:"start_date,omitempty"`
	EndDate            string              `json:"end_date,omitempty"`
	ImageURL           string              `json:"image_url,omitempty"`
	ProductID          *ProductID          `json:"product_id,omitempty"`
	SupplierID         int64               `json:"supplier_id,omitempty"`
	SupplierName       string              `json:"supplier_name,omitempty"`
}

// Supplier is a marketplace seller.
type Supplier struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	Category    string              `json:"category,omitempty"`
	Location    string              `json:"location,omitempty"`
	Rating      decimal.NullDecimal `json:"rating"`
	Description string              `json:"description,omitempty"`
	ImageURL    string              `json:"image_url,omitempty"`
	Products    []Product           `json:"products,omitempty"`
}

// FeaturedItem is one slide of the featured carousel.
type FeaturedItem struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// SearchResults groups matches across the catalog.
type SearchResults struct {
	Products  ProductMatches `json:"products"`
	Deals     []Deal         `json:"deals"`
	Suppliers []Supplier     `json:"suppliers"`
}

// ProductMatches is the product part of a search result.
type ProductMatches struct {
	Items      []Product `json:"items"`
	TotalItems int       `json:"totalItems"`
}

// EmptySearchResults is returned for terms too short to search.
func EmptySearchResults() *SearchResults {
	return &SearchResults{
		Products:  ProductMatches{Items: []Product{}},
		Deals:     []Deal{},
		Suppliers: []Supplier{},
	}
}
