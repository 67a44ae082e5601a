// Package backend is the REST client for the remote catalog and order service.
// A single Client implements every gateway port of the storefront.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/errors"

	"go.uber.org/fx"
)

const (
	defaultUserAgent = "storefront-bff/1.0"

	headerIdempotencyKey = "Idempotency-Key"

	// maxErrorBodySize caps how much of a failed response is read for its message.
	maxErrorBodySize = 64 << 10
)

// HTTPError is a non-2xx answer or a transport failure from the backend.
type HTTPError struct {
	StatusCode int // zero for transport failures
	Message    string
	Method     string
	Path       string
}

func (e *HTTPError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s: %s", e.Method, e.Path, e.Message)
	}

	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// UpstreamMessage is the message the backend gave for the failure.
func (e *HTTPError) UpstreamMessage() string {
	return e.Message
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var httpErr *HTTPError

	return errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound
}

// ErrorMessage returns the parsed backend message of err, or its plain text.
func ErrorMessage(err error) string {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Message
	}

	return err.Error()
}

// errorBody is what the backend puts in failed responses. Either field may be set.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Client talks to the backend under one configured base URL.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// Params holds dependencies for the backend client, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates the backend client from configuration.
func New(params Params) *Client {
	return NewClient(params.Config.Backend, params.Logger)
}

// NewClient creates a backend client for cfg.
func NewClient(cfg config.BackendConfig, logger *slog.Logger) *Client {
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

type requestOptions struct {
	query          url.Values
	body           any
	idempotencyKey string
}

// do sends one request and decodes a 2xx JSON body into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, opts requestOptions, out any) error {
	endpoint := c.baseURL + path
	if len(opts.query) > 0 {
		endpoint += "?" + opts.query.Encode()
	}

	var bodyReader io.Reader
	if opts.body != nil {
		payload, err := json.Marshal(opts.body)
		if err != nil {
			return errors.Wrap(err, "marshal request body")
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if opts.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if opts.idempotencyKey != "" {
		req.Header.Set(headerIdempotencyKey, opts.idempotencyKey)
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("Backend request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)

		return errors.WithStack(&HTTPError{Method: method, Path: path, Message: err.Error()})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		httpErr := parseErrorResponse(method, path, resp)
		logger.Warn("Backend returned error status",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("message", httpErr.Message),
		)

		return errors.WithStack(httpErr)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}

		return errors.Wrapf(err, "decode %s %s response", method, path)
	}

	return nil
}

// parseErrorResponse reads the backend error message, best effort.
func parseErrorResponse(method, path string, resp *http.Response) *HTTPError {
	httpErr := &HTTPError{
		StatusCode: resp.StatusCode,
		Method:     method,
		Path:       path,
		Message:    fmt.Sprintf("request failed with status %d", resp.StatusCode),
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil || len(raw) == 0 {
		return httpErr
	}

	var body errorBody
	if json.Unmarshal(raw, &body) == nil {
		switch {
		case body.Error != "":
			httpErr.Message = body.Error
		case body.Message != "":
			httpErr.Message = body.Message
		}
	}

	return httpErr
}

func userQuery(userID fmt.Stringer) url.Values {
	return url.Values{"userId": []string{userID.String()}}
}
