package entity

import (
	"strconv"
	"strings"
)

// CityID identifies a city served by the marketplace.
type CityID int64

// String renders the id for query strings.
func (id CityID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// City is one entry of the city list.
type City struct {
	ID   CityID `json:"id"`
	Name string `json:"name"`
}

// Profile is the server-side record attached 1:1 to a user.
type Profile struct {
	UserID           UserID  `json:"user_id"`
	SelectedCityID   *CityID `json:"selected_city_id"`
	SelectedCityName string  `json:"selected_city_name,omitempty"`
	FullName         string  `json:"full_name,omitempty"`
	PhoneNumber      string  `json:"phone_number,omitempty"`
	AddressLine1     string  `json:"address_line1,omitempty"`
	AddressLine2     string  `json:"address_line2,omitempty"`
	AddressCityText  string  `json:"address_city_text,omitempty"`
	// City is the free-text delivery city some backend versions return
	// instead of address_city_text.
	City string `json:"city,omitempty"`
}

// DefaultProfile is what a user without a stored profile starts with.
func DefaultProfile(userID UserID) *Profile {
	return &Profile{UserID: userID}
}

// HasCity reports whether the user went through city selection.
func (p *Profile) HasCity() bool {
	return p != nil && p.SelectedCityID != nil
}

// DeliveryCity returns the free-text delivery city.
func (p *Profile) DeliveryCity() string {
	if p == nil {
		return ""
	}
	if city := strings.TrimSpace(p.City); city != "" {
		return city
	}

	return strings.TrimSpace(p.AddressCityText)
}

// IsComplete reports whether an order can be placed without asking for an address.
func (p *Profile) IsComplete() bool {
	if p == nil {
		return false
	}

	return strings.TrimSpace(p.FullName) != "" &&
		strings.TrimSpace(p.PhoneNumber) != "" &&
		strings.TrimSpace(p.AddressLine1) != "" &&
		p.DeliveryCity() != ""
}

// Clone returns a deep copy.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	cloned := *p
	if p.SelectedCityID != nil {
		id := *p.SelectedCityID
		cloned.SelectedCityID = &id
	}

	return &cloned
}
