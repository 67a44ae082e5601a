package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.OrderPlacedEvent {
	return &service.OrderPlacedEvent{
		RequestID:      "req-1",
		EventID:        "evt-1",
		OrderID:        991,
		UserID:         42,
		IdempotencyKey: "key-1",
		ItemCount:      2,
		Total:          "40.00",
		PlacedAt:       time.Unix(1_700_000_000, 0).UTC(),
	}
}

func TestLocalHTTPPublisher_PublishOrderPlaced(t *testing.T) {
	var received PubSubPushMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())

	require.NoError(t, publisher.PublishOrderPlaced(context.Background(), testEvent()))

	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "991", received.Message.Attributes["order_id"])
	assert.Equal(t, "42", received.Message.Attributes["user_id"])
	assert.Equal(t, EventTypeOrderPlaced, received.Message.Attributes["event_type"])
	assert.Equal(t, "42", received.Message.OrderingKey)
	assert.Equal(t, localSubscription, received.Subscription)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.OrderPlacedEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *testEvent(), decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())

	err := publisher.PublishOrderPlaced(context.Background(), testEvent())
	assert.Error(t, err)
}

func TestNewEventPublisher_Providers(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		noop    bool
		wantErr bool
	}{
		{name: "not configured", pubsub: nil, noop: true},
		{name: "empty provider", pubsub: &config.PubSubConfig{}, noop: true},
		{name: "local", pubsub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:9999/push"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: "google", TopicID: "orders"}, wantErr: true},
		{name: "unknown", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: testLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, publisher)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, publisher)
			if tt.noop {
				assert.NoError(t, publisher.PublishOrderPlaced(context.Background(), testEvent()))
			}
		})
	}
}
