package backend

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// upsertProfileRequest flattens the update next to the user id, as the backend expects.
type upsertProfileRequest struct {
	UserID entity.UserID `json:"userId"`
	*service.ProfileUpdate
}

// NewProfileGateway exposes the client as the profile port.
func NewProfileGateway(c *Client) service.ProfileGateway {
	return c
}

// GetProfile implements service.ProfileGateway. A missing profile is not an error.
func (c *Client) GetProfile(ctx context.Context, userID entity.UserID) (*entity.Profile, error) {
	var profile entity.Profile
	err := c.do(ctx, http.MethodGet, "/api/user/profile", requestOptions{query: userQuery(userID)}, &profile)
	if IsNotFound(err) {
		return entity.DefaultProfile(userID), nil
	}
	if err != nil {
		return nil, err
	}
	if profile.UserID.IsZero() {
		profile.UserID = userID
	}

	return &profile, nil
}

// UpsertProfile implements service.ProfileGateway.
func (c *Client) UpsertProfile(ctx context.Context, userID entity.UserID, update *service.ProfileUpdate) (*entity.Profile, error) {
	if update == nil {
		update = &service.ProfileUpdate{}
	}

	var profile entity.Profile
	err := c.do(ctx, http.MethodPost, "/api/user/profile", requestOptions{
		body: upsertProfileRequest{UserID: userID, ProfileUpdate: update},
	}, &profile)
	if err != nil {
		return nil, err
	}
	if profile.UserID.IsZero() {
		profile.UserID = userID
	}

	return &profile, nil
}
