package auth

import (
	"encoding/hex"
	"net/url"
	"strconv"
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBotToken = "123456:TEST-bot-token"

// signInitData builds init data the way the Telegram client does.
func signInitData(t *testing.T, botToken string, fields map[string]string) string {
	t.Helper()

	values := url.Values{}
	for k, v := range fields {
		values.Set(k, v)
	}

	secret := hmacSHA256([]byte(webAppDataKey), []byte(botToken))
	values.Set("hash", hex.EncodeToString(hmacSHA256(secret, []byte(dataCheckString(values)))))

	return values.Encode()
}

func TestTelegramVerifier_Verify_Success(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	verifier := newTelegramVerifier(testBotToken, time.Hour, func() time.Time { return now })

	initData := signInitData(t, testBotToken, map[string]string{
		"auth_date": strconv.FormatInt(now.Add(-time.Minute).Unix(), 10),
		"query_id":  "AAH",
		"user":      `{"id":777,"first_name":"Sara","last_name":"Ali","username":"sara","language_code":"ar"}`,
	})

	user, err := verifier.Verify(initData)

	require.NoError(t, err)
	assert.Equal(t, &entity.User{ID: 777, FirstName: "Sara", LastName: "Ali", Username: "sara", LanguageCode: "ar"}, user)
}

func TestTelegramVerifier_Verify_TamperedField(t *testing.T) {
	verifier := newTelegramVerifier(testBotToken, 0, time.Now)

	initData := signInitData(t, testBotToken, map[string]string{
		"auth_date": "1700000000",
		"user":      `{"id":777}`,
	})
	values, err := url.ParseQuery(initData)
	require.NoError(t, err)
	values.Set("user", `{"id":778}`)

	_, err = verifier.Verify(values.Encode())

	assert.ErrorIs(t, err, ErrInitDataBadHash)
}

func TestTelegramVerifier_Verify_WrongBotToken(t *testing.T) {
	verifier := newTelegramVerifier("other:token", 0, time.Now)

	initData := signInitData(t, testBotToken, map[string]string{
		"auth_date": "1700000000",
		"user":      `{"id":777}`,
	})

	_, err := verifier.Verify(initData)

	assert.ErrorIs(t, err, ErrInitDataBadHash)
}

func TestTelegramVerifier_Verify_Expired(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	verifier := newTelegramVerifier(testBotToken, time.Hour, func() time.Time { return now })

	initData := signInitData(t, testBotToken, map[string]string{
		"auth_date": strconv.FormatInt(now.Add(-2*time.Hour).Unix(), 10),
		"user":      `{"id":777}`,
	})

	_, err := verifier.Verify(initData)

	assert.ErrorIs(t, err, ErrInitDataExpired)
}

func TestTelegramVerifier_Verify_MissingHash(t *testing.T) {
	verifier := newTelegramVerifier(testBotToken, 0, time.Now)

	_, err := verifier.Verify("auth_date=1&user=%7B%22id%22%3A1%7D")

	assert.ErrorIs(t, err, ErrInitDataMissingHash)
}

func TestTelegramVerifier_Verify_NoUser(t *testing.T) {
	verifier := newTelegramVerifier(testBotToken, 0, time.Now)

	initData := signInitData(t, testBotToken, map[string]string{
		"auth_date": "1700000000",
	})

	_, err := verifier.Verify(initData)

	assert.ErrorIs(t, err, ErrInitDataNoUser)
}
