package qrcode

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService_Defaults(t *testing.T) {
	svc, ok := NewQRCodeService(0, "x").(*qrcodeService)
	require.True(t, ok)

	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, recoveryLevels["M"], svc.level)

	svc, ok = NewQRCodeService(128, "h").(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, 128, svc.size)
	assert.Equal(t, recoveryLevels["H"], svc.level)
}

func TestQRCodeService_GenerateOrderQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GenerateOrderQR(123456789, 991)
	require.NoError(t, err)
	require.Greater(t, len(png), 4)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])

	_, err = svc.GenerateOrderQR(0, 991)
	assert.Error(t, err)
}

func TestQRCodeService_ParseOrderQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	userID, orderID, err := svc.ParseOrderQR(orderPayload(42, 991))

	require.NoError(t, err)
	assert.Equal(t, entity.UserID(42), userID)
	assert.Equal(t, int64(991), orderID)
}

func TestQRCodeService_ParseOrderQR_Invalid(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	for _, data := range []string{
		"not-a-code",
		"storefront:deal:42:991",
		"storefront:order:abc:991",
		"storefront:order:42:0",
		"other:order:42:991",
	} {
		t.Run(data, func(t *testing.T) {
			_, _, err := svc.ParseOrderQR(data)
			assert.Error(t, err)
		})
	}
}
