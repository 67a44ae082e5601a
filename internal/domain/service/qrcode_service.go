package service

import (
	"storefront/internal/domain/entity"
)

// QRCodeService defines the interface for order QR code generation and parsing
type QRCodeService interface {
	// GenerateOrderQR renders a PNG QR code identifying the order for pickup or delivery
	GenerateOrderQR(userID entity.UserID, orderID int64) ([]byte, error)

	// ParseOrderQR parses QR code data and returns the user and order it refers to
	ParseOrderQR(qrData string) (entity.UserID, int64, error)
}
