package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

type addFavoriteRequest struct {
	UserID    entity.UserID    `json:"userId"`
	ProductID entity.ProductID `json:"productId"`
}

// favoriteIDList accepts the shapes the favorites endpoint has served:
// a bare id array, an array of rows with product_id, or an object wrapping either.
type favoriteIDList []entity.ProductID

func (l *favoriteIDList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = favoriteIDList{}

		return nil
	}

	if data[0] == '{' {
		var wrapped struct {
			FavoriteIDs      json.RawMessage `json:"favoriteIds"`
			FavoriteIDsSnake json.RawMessage `json:"favorite_ids"`
			Items            json.RawMessage `json:"items"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return errors.Wrap(err, "decode favorites object")
		}
		for _, inner := range []json.RawMessage{wrapped.FavoriteIDs, wrapped.FavoriteIDsSnake, wrapped.Items} {
			if len(inner) > 0 {
				return l.UnmarshalJSON(inner)
			}
		}
		*l = favoriteIDList{}

		return nil
	}

	var ids []entity.ProductID
	if err := json.Unmarshal(data, &ids); err == nil {
		*l = ids

		return nil
	}

	var rows []struct {
		ProductID entity.ProductID `json:"product_id"`
	}
	if err := json.Unmarshal(data, &rows); err != nil {
		return errors.Wrap(err, "decode favorites list")
	}
	out := make(favoriteIDList, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ProductID)
	}
	*l = out

	return nil
}

// NewFavoritesGateway exposes the client as the favorites port.
func NewFavoritesGateway(c *Client) service.FavoritesGateway {
	return c
}

// ListFavoriteIDs implements service.FavoritesGateway.
func (c *Client) ListFavoriteIDs(ctx context.Context, userID entity.UserID) ([]entity.ProductID, error) {
	var ids favoriteIDList
	if err := c.do(ctx, http.MethodGet, "/api/favorites", requestOptions{query: userQuery(userID)}, &ids); err != nil {
		return nil, err
	}
	if ids == nil {
		return []entity.ProductID{}, nil
	}

	return ids, nil
}

// AddFavorite implements service.FavoritesGateway.
func (c *Client) AddFavorite(ctx context.Context, userID entity.UserID, productID entity.ProductID) error {
	return c.do(ctx, http.MethodPost, "/api/favorites", requestOptions{
		body: addFavoriteRequest{UserID: userID, ProductID: productID},
	}, nil)
}

// RemoveFavorite implements service.FavoritesGateway.
func (c *Client) RemoveFavorite(ctx context.Context, userID entity.UserID, productID entity.ProductID) error {
	return c.do(ctx, http.MethodDelete, "/api/favorites/"+productID.String(), requestOptions{
		query: userQuery(userID),
	}, nil)
}
