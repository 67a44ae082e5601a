package entity

import (
	"encoding/json"
	"strings"
	"time"
)

// CheckoutState is a step of the checkout flow.
type CheckoutState string

const (
	CheckoutIdle              CheckoutState = "idle"
	CheckoutProfileCheck      CheckoutState = "profile_check"
	CheckoutAddressCollection CheckoutState = "address_collection"
	CheckoutOrderCreation     CheckoutState = "order_creation"
	CheckoutConfirmed         CheckoutState = "confirmed"
)

// Draft field names as the address form submits them.
const (
	DraftFieldFullName     = "fullName"
	DraftFieldPhoneNumber  = "phoneNumber"
	DraftFieldAddressLine1 = "addressLine1"
	DraftFieldAddressLine2 = "addressLine2"
	DraftFieldCity         = "city"
)

// AddressDraft is the delivery information form the user fills in before ordering.
type AddressDraft struct {
	FullName     string `json:"fullName" validate:"required,max=200"`
	PhoneNumber  string `json:"phoneNumber" validate:"required,max=50"`
	AddressLine1 string `json:"addressLine1" validate:"required,max=300"`
	AddressLine2 string `json:"addressLine2" validate:"max=300"`
	City         string `json:"city" validate:"required,max=100"`
}

// NewAddressDraft prefills the form from the stored profile, falling back to
// the Telegram display name and the selected city.
func NewAddressDraft(user *User, profile *Profile) *AddressDraft {
	draft := &AddressDraft{}
	if profile != nil {
		draft.FullName = profile.FullName
		draft.PhoneNumber = profile.PhoneNumber
		draft.AddressLine1 = profile.AddressLine1
		draft.AddressLine2 = profile.AddressLine2
		draft.City = profile.DeliveryCity()
		if draft.City == "" {
			draft.City = profile.SelectedCityName
		}
	}
	if strings.TrimSpace(draft.FullName) == "" {
		draft.FullName = user.DisplayName()
	}

	return draft
}

// SetField updates one form field by its submitted name.
func (d *AddressDraft) SetField(name, value string) bool {
	switch name {
	case DraftFieldFullName:
		d.FullName = value
	case DraftFieldPhoneNumber:
		d.PhoneNumber = value
	case DraftFieldAddressLine1:
		d.AddressLine1 = value
	case DraftFieldAddressLine2:
		d.AddressLine2 = value
	case DraftFieldCity:
		d.City = value
	default:
		return false
	}

	return true
}

// Normalize trims surrounding whitespace from every field.
func (d *AddressDraft) Normalize() {
	d.FullName = strings.TrimSpace(d.FullName)
	d.PhoneNumber = strings.TrimSpace(d.PhoneNumber)
	d.AddressLine1 = strings.TrimSpace(d.AddressLine1)
	d.AddressLine2 = strings.TrimSpace(d.AddressLine2)
	d.City = strings.TrimSpace(d.City)
}

// Clone returns a copy.
func (d *AddressDraft) Clone() *AddressDraft {
	if d == nil {
		return nil
	}
	cloned := *d

	return &cloned
}

// OrderConfirmation is what the backend answers to a successful order.
// Payload keeps the full response so the UI can show echoed fields.
type OrderConfirmation struct {
	OrderID int64           `json:"orderId"`
	Message string          `json:"message,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// CheckoutRecordStatus is the ledger state of one idempotency key.
type CheckoutRecordStatus string

const (
	CheckoutRecordPending   CheckoutRecordStatus = "pending"
	CheckoutRecordCompleted CheckoutRecordStatus = "completed"
)

// CheckoutRecord ties an idempotency key to the order it produced.
type CheckoutRecord struct {
	IdempotencyKey string
	UserID         UserID
	Status         CheckoutRecordStatus
	OrderID        int64
	Confirmation   *OrderConfirmation
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
