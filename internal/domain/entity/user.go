// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strconv"
	"strings"
)

// UserID is the Telegram numeric user id. The storefront treats it as opaque.
type UserID int64

// String renders the id the way the backend expects it in query strings.
func (id UserID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// IsZero reports whether no user is known.
func (id UserID) IsZero() bool {
	return id == 0
}

// ParseUserID parses a decimal user id.
func ParseUserID(s string) (UserID, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}

	return UserID(v), nil
}

// User is the Mini App user resolved at session start. Immutable for the session.
type User struct {
	ID           UserID `json:"id"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	Username     string `json:"username,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
}

// DisplayName joins first and last name.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}

	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
