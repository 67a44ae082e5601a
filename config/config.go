package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	configFileEnv             = "CONFIG_FILE"
	defaultMaxRequestBodySize = "100KB"
	defaultBackendTimeout     = 15 * time.Second
	defaultProductsPerPage    = 12
	defaultSearchLimit        = 10
	defaultSearchMinLength    = 3
	defaultSessionIdleTTL     = 2 * time.Hour
	defaultSweepInterval      = 10 * time.Minute
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// AllowedOrigins lists the origins the Mini App is served from. Empty allows any.
		AllowedOrigins []string `json:"allowedOrigins" yaml:"allowedOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Backend is the remote catalog/order service every storefront call goes to
	Backend BackendConfig `json:"backend" yaml:"backend"`

	Auth AuthConfig `json:"auth" yaml:"auth"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Session SessionConfig `json:"session" yaml:"session"`

	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`

	// Postgres backs the checkout ledger. Leave empty to keep the ledger in memory.
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// PubSub configuration for order events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for order confirmation codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

// BackendConfig defines how to reach the remote REST backend.
type BackendConfig struct {
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	UserAgent string        `json:"userAgent" yaml:"userAgent"`
}

// AuthConfig defines how Mini App users are identified
type AuthConfig struct {
	// BotToken signs the Telegram init data the Mini App forwards on session start
	BotToken string `json:"botToken" yaml:"botToken"`

	// AllowDevUser lets a session start without init data, as the placeholder local user
	AllowDevUser bool `json:"allowDevUser" yaml:"allowDevUser"`

	// InitDataMaxAge rejects init data older than this. Zero disables the check.
	InitDataMaxAge time.Duration `json:"initDataMaxAge" yaml:"initDataMaxAge"`

	TokenTTL time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
}

// SessionConfig controls the lifetime of per-user in-memory state
type SessionConfig struct {
	IdleTTL       time.Duration `json:"idleTtl" yaml:"idleTtl"`
	SweepInterval time.Duration `json:"sweepInterval" yaml:"sweepInterval"`
}

// CatalogConfig holds paging and search limits for catalog reads
type CatalogConfig struct {
	ProductsPerPage int `json:"productsPerPage" yaml:"productsPerPage"`
	SearchLimit     int `json:"searchLimit" yaml:"searchLimit"`
	SearchMinLength int `json:"searchMinLength" yaml:"searchMinLength"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// LoadWithEnv loads <currEnv>.yaml through koanf, then applies environment
// overrides. CONFIG_FILE, when set, names the file directly and skips the search.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	configFile, err := findConfigFile(currEnv, configPath)
	if err != nil {
		return nil, err
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override file values.
	// Example: BACKEND_BASEURL -> backend.baseUrl
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// findConfigFile returns the first <currEnv>.yaml found in the working
// directory or the given paths relative to it.
func findConfigFile(currEnv string, configPath []string) (string, error) {
	if explicit := os.Getenv(configFileEnv); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, "%s=%s", configFileEnv, explicit)
		}

		return explicit, nil
	}

	pwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "os.Getwd")
	}

	searchPaths := []string{defaultPath}
	for _, path := range configPath {
		searchPaths = append(searchPaths, filepath.Join(pwd, path))
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", currEnv)
}

// New loads config.yaml and fills defaults.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalize fills defaults and rejects configurations the service cannot run with.
func (cfg *Config) normalize() error {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	cfg.Backend.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.Backend.BaseURL), "/")
	if cfg.Backend.BaseURL == "" {
		return errors.New("backend.baseUrl is required")
	}
	if cfg.Backend.Timeout <= 0 {
		cfg.Backend.Timeout = defaultBackendTimeout
	}

	if cfg.Catalog.ProductsPerPage <= 0 {
		cfg.Catalog.ProductsPerPage = defaultProductsPerPage
	}
	if cfg.Catalog.SearchLimit <= 0 {
		cfg.Catalog.SearchLimit = defaultSearchLimit
	}
	if cfg.Catalog.SearchMinLength <= 0 {
		cfg.Catalog.SearchMinLength = defaultSearchMinLength
	}

	if cfg.Session.IdleTTL <= 0 {
		cfg.Session.IdleTTL = defaultSessionIdleTTL
	}
	if cfg.Session.SweepInterval <= 0 {
		cfg.Session.SweepInterval = defaultSweepInterval
	}

	if !cfg.Auth.AllowDevUser && strings.TrimSpace(cfg.Auth.BotToken) == "" {
		return errors.New("auth.botToken is required unless auth.allowDevUser is set")
	}

	return nil
}

// canonicalizeEnvKey maps an env var name onto the key path already present in
// the loaded file, so BACKEND_BASEURL lands on backend.baseUrl. Segments with no
// match in the file are kept lowercase.
func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	var path []string
	level := existing

	for _, segment := range strings.Split(strings.ToLower(rawKey), "_") {
		if segment == "" {
			continue
		}

		key, child := matchKey(level, segment)
		path = append(path, key)
		level = child
	}

	return strings.Join(path, ".")
}

// matchKey finds segment among the keys of level, ignoring case and
// punctuation. It returns segment itself and a nil child when nothing matches.
func matchKey(level map[string]any, segment string) (string, map[string]any) {
	want := foldKey(segment)
	for key, value := range level {
		if foldKey(key) == want {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return segment, nil
}

func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}
