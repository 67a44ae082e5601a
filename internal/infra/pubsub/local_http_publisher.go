package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription  = "projects/local/subscriptions/order-placed-sub"
	localPublishTimout = 10 * time.Second
)

// localHTTPPublisher posts order events to an HTTP endpoint in the body shape
// of a Pub/Sub push subscription, so consumers can be developed without GCP.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PubSubPushMessage is the body Pub/Sub sends to push endpoints.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		OrderingKey string            `json:"orderingKey,omitempty"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPublishTimout},
		logger:     logger,
	}
}

func newPushMessage(msg *orderMessage, publishedAt time.Time) PubSubPushMessage {
	var push PubSubPushMessage
	push.Subscription = localSubscription
	push.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	push.Message.Attributes = msg.attributes
	push.Message.MessageID = msg.id
	push.Message.OrderingKey = msg.orderingKey
	push.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339Nano)

	return push
}

// PublishOrderPlaced posts the event and treats any non-2xx answer as a failure.
func (p *localHTTPPublisher) PublishOrderPlaced(ctx context.Context, event *service.OrderPlacedEvent) error {
	msg, err := encodeOrderPlaced(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(newPushMessage(msg, time.Now()))
	if err != nil {
		return errors.Wrap(err, "marshal push message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "post order event to %s", p.endpoint)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("event sink returned non-success status: %d", resp.StatusCode)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("Order event posted",
		slog.String("endpoint", p.endpoint),
		slog.String("event_id", event.EventID),
	)

	return nil
}

// Close is a no-op; the HTTP client holds no resources worth releasing.
func (p *localHTTPPublisher) Close() error {
	return nil
}
