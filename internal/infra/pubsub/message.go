package pubsub

import (
	"encoding/json"
	"strconv"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// EventTypeOrderPlaced is the event_type attribute of order placed messages.
const EventTypeOrderPlaced = "order.placed"

// orderMessage is an encoded OrderPlacedEvent ready for either transport.
type orderMessage struct {
	id         string
	data       []byte
	attributes map[string]string
	// orderingKey keeps one user's orders in sequence.
	orderingKey string
}

func encodeOrderPlaced(event *service.OrderPlacedEvent) (*orderMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "marshal order placed event")
	}

	userID := strconv.FormatInt(event.UserID, 10)
	attributes := map[string]string{
		"event_type":      EventTypeOrderPlaced,
		"event_id":        event.EventID,
		"order_id":        strconv.FormatInt(event.OrderID, 10),
		"user_id":         userID,
		"idempotency_key": event.IdempotencyKey,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &orderMessage{
		id:          event.EventID,
		data:        data,
		attributes:  attributes,
		orderingKey: userID,
	}, nil
}
