package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

type searchResponse struct {
	Results *entity.SearchResults `json:"results"`
}

// NewCatalogGateway exposes the client as the catalog port.
func NewCatalogGateway(c *Client) service.CatalogGateway {
	return c
}

func cityQuery(cityID entity.CityID) url.Values {
	return url.Values{"cityId": []string{cityID.String()}}
}

// ListCities implements service.CatalogGateway.
func (c *Client) ListCities(ctx context.Context) ([]entity.City, error) {
	var cities []entity.City
	if err := c.do(ctx, http.MethodGet, "/api/cities", requestOptions{}, &cities); err != nil {
		return nil, err
	}
	if cities == nil {
		cities = []entity.City{}
	}

	return cities, nil
}

// ListProducts implements service.CatalogGateway.
func (c *Client) ListProducts(ctx context.Context, cityID entity.CityID, page, limit int) (*entity.ProductPage, error) {
	query := cityQuery(cityID)
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var result entity.ProductPage
	if err := c.do(ctx, http.MethodGet, "/api/products", requestOptions{query: query}, &result); err != nil {
		return nil, err
	}
	if result.Items == nil {
		result.Items = []entity.Product{}
	}

	return &result, nil
}

// GetProduct implements service.CatalogGateway.
func (c *Client) GetProduct(ctx context.Context, productID entity.ProductID) (*entity.Product, error) {
	var product entity.Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+productID.String(), requestOptions{}, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

// GetFavoriteProductDetails implements service.CatalogGateway.
func (c *Client) GetFavoriteProductDetails(ctx context.Context, productID entity.ProductID) (*entity.ProductDetails, error) {
	var details entity.ProductDetails
	if err := c.do(ctx, http.MethodGet, "/api/favorites/product-details/"+productID.String(), requestOptions{}, &details); err != nil {
		return nil, err
	}
	if details.Alternatives == nil {
		details.Alternatives = []entity.Product{}
	}

	return &details, nil
}

// GetProductsBatch implements service.CatalogGateway.
func (c *Client) GetProductsBatch(ctx context.Context, productIDs []entity.ProductID) ([]entity.Product, error) {
	ids := make([]string, 0, len(productIDs))
	for _, id := range productIDs {
		ids = append(ids, id.String())
	}

	var products []entity.Product
	err := c.do(ctx, http.MethodGet, "/api/products/batch", requestOptions{
		query: url.Values{"ids": []string{strings.Join(ids, ",")}},
	}, &products)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []entity.Product{}
	}

	return products, nil
}

// ListDeals implements service.CatalogGateway.
func (c *Client) ListDeals(ctx context.Context, cityID entity.CityID) ([]entity.Deal, error) {
	var deals []entity.Deal
	if err := c.do(ctx, http.MethodGet, "/api/deals", requestOptions{query: cityQuery(cityID)}, &deals); err != nil {
		return nil, err
	}
	if deals == nil {
		deals = []entity.Deal{}
	}

	return deals, nil
}

// GetDeal implements service.CatalogGateway.
func (c *Client) GetDeal(ctx context.Context, dealID int64) (*entity.Deal, error) {
	var deal entity.Deal
	if err := c.do(ctx, http.MethodGet, "/api/deals/"+strconv.FormatInt(dealID, 10), requestOptions{}, &deal); err != nil {
		return nil, err
	}

	return &deal, nil
}

// ListSuppliers implements service.CatalogGateway.
func (c *Client) ListSuppliers(ctx context.Context, cityID entity.CityID) ([]entity.Supplier, error) {
	var suppliers []entity.Supplier
	if err := c.do(ctx, http.MethodGet, "/api/suppliers", requestOptions{query: cityQuery(cityID)}, &suppliers); err != nil {
		return nil, err
	}
	if suppliers == nil {
		suppliers = []entity.Supplier{}
	}

	return suppliers, nil
}

// GetSupplier implements service.CatalogGateway.
func (c *Client) GetSupplier(ctx context.Context, supplierID int64) (*entity.Supplier, error) {
	var supplier entity.Supplier
	if err := c.do(ctx, http.MethodGet, "/api/suppliers/"+strconv.FormatInt(supplierID, 10), requestOptions{}, &supplier); err != nil {
		return nil, err
	}

	return &supplier, nil
}

// ListFeaturedItems implements service.CatalogGateway.
func (c *Client) ListFeaturedItems(ctx context.Context) ([]entity.FeaturedItem, error) {
	var items []entity.FeaturedItem
	if err := c.do(ctx, http.MethodGet, "/api/featured-items", requestOptions{}, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []entity.FeaturedItem{}
	}

	return items, nil
}

// Search implements service.CatalogGateway.
func (c *Client) Search(ctx context.Context, term string, cityID entity.CityID, limit int) (*entity.SearchResults, error) {
	query := cityQuery(cityID)
	query.Set("searchTerm", term)
	query.Set("limit", strconv.Itoa(limit))

	var resp searchResponse
	if err := c.do(ctx, http.MethodGet, "/api/search", requestOptions{query: query}, &resp); err != nil {
		return nil, err
	}

	results := entity.EmptySearchResults()
	if resp.Results != nil {
		if resp.Results.Products.Items != nil {
			results.Products = resp.Results.Products
		}
		if resp.Results.Deals != nil {
			results.Deals = resp.Results.Deals
		}
		if resp.Results.Suppliers != nil {
			results.Suppliers = resp.Results.Suppliers
		}
	}

	return results, nil
}
