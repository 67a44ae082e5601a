package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// webAppDataKey is the constant Telegram mixes with the bot token to derive
// the init data signing key.
const webAppDataKey = "WebAppData"

var (
	ErrInitDataMissingHash = errors.New("init data has no hash")
	ErrInitDataBadHash     = errors.New("init data hash mismatch")
	ErrInitDataExpired     = errors.New("init data expired")
	ErrInitDataNoUser      = errors.New("init data has no user")
)

// telegramVerifier validates Mini App init data signed by the bot token.
type telegramVerifier struct {
	secretKey []byte
	maxAge    time.Duration
	now       func() time.Time
}

// telegramUser is the user object embedded in init data.
type telegramUser struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Username     string `json:"username"`
	LanguageCode string `json:"language_code"`
}

// NewTelegramVerifier is the constructor for telegramVerifier.
func NewTelegramVerifier(cfg *config.Config) service.IdentityVerifier {
	return newTelegramVerifier(cfg.Auth.BotToken, cfg.Auth.InitDataMaxAge, time.Now)
}

func newTelegramVerifier(botToken string, maxAge time.Duration, now func() time.Time) *telegramVerifier {
	return &telegramVerifier{
		secretKey: hmacSHA256([]byte(webAppDataKey), []byte(botToken)),
		maxAge:    maxAge,
		now:       now,
	}
}

// Verify checks the init data signature and extracts the user.
func (v *telegramVerifier) Verify(initData string) (*entity.User, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse init data")
	}

	hash := values.Get("hash")
	if hash == "" {
		return nil, ErrInitDataMissingHash
	}

	expected := hmacSHA256(v.secretKey, []byte(dataCheckString(values)))
	got, err := hex.DecodeString(hash)
	if err != nil || !hmac.Equal(expected, got) {
		return nil, ErrInitDataBadHash
	}

	if v.maxAge > 0 {
		authDate, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
		if err != nil {
			return nil, errors.Wrap(err, "invalid auth_date")
		}
		if v.now().Sub(time.Unix(authDate, 0)) > v.maxAge {
			return nil, ErrInitDataExpired
		}
	}

	rawUser := values.Get("user")
	if rawUser == "" {
		return nil, ErrInitDataNoUser
	}
	var tgUser telegramUser
	if err := json.Unmarshal([]byte(rawUser), &tgUser); err != nil {
		return nil, errors.Wrap(err, "failed to decode init data user")
	}
	if tgUser.ID == 0 {
		return nil, ErrInitDataNoUser
	}

	return &entity.User{
		ID:           entity.UserID(tgUser.ID),
		FirstName:    tgUser.FirstName,
		LastName:     tgUser.LastName,
		Username:     tgUser.Username,
		LanguageCode: tgUser.LanguageCode,
	}, nil
}

// dataCheckString joins every field but hash as sorted key=value lines.
func dataCheckString(values url.Values) string {
	keys := make([]string, 0, len(values))
	for key := range values {
		if key == "hash" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, key+"="+values.Get(key))
	}

	return strings.Join(lines, "\n")
}

func hmacSHA256(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)

	return mac.Sum(nil)
}
