// Package qrcode renders the QR code shown on an order so staff can scan it
// at pickup or delivery.
package qrcode

import (
	"strconv"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256

	// Payload is "storefront:order:<userID>:<orderID>". Short text keeps the
	// code at a low QR version, which scans better on phone screens.
	payloadScheme = "storefront"
	payloadKind   = "order"
)

var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

type qrcodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR code service. Unknown levels fall back to M
// and non-positive sizes to 256px.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	level, ok := recoveryLevels[strings.ToUpper(errorCorrectionLevel)]
	if !ok {
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{size: size, level: level}
}

// GenerateOrderQR renders a PNG QR code for a placed order
func (s *qrcodeService) GenerateOrderQR(userID entity.UserID, orderID int64) ([]byte, error) {
	if userID.IsZero() || orderID <= 0 {
		return nil, errors.New("order QR needs a user and an order")
	}

	png, err := qrcode.Encode(orderPayload(userID, orderID), s.level, s.size)
	if err != nil {
		return nil, errors.Wrapf(err, "encode QR for order %d", orderID)
	}

	return png, nil
}

// ParseOrderQR reads the text of a scanned order code.
func (s *qrcodeService) ParseOrderQR(qrData string) (entity.UserID, int64, error) {
	parts := strings.Split(strings.TrimSpace(qrData), ":")
	if len(parts) != 4 || parts[0] != payloadScheme || parts[1] != payloadKind {
		return 0, 0, errors.Errorf("not an order QR code: %q", qrData)
	}

	userID, err := entity.ParseUserID(parts[2])
	if err != nil || userID.IsZero() {
		return 0, 0, errors.Errorf("order QR code has invalid user %q", parts[2])
	}

	orderID, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil || orderID <= 0 {
		return 0, 0, errors.Errorf("order QR code has invalid order %q", parts[3])
	}

	return userID, orderID, nil
}

func orderPayload(userID entity.UserID, orderID int64) string {
	return payloadScheme + ":" + payloadKind + ":" + userID.String() + ":" + strconv.FormatInt(orderID, 10)
}
