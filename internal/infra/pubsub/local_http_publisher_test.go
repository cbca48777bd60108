package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "gsale/internal/delivery/context"
	"gsale/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var received PubSubPushMessage
	var receivedHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedHeader = r.Header.Get(deliverycontext.HeaderXRequestID)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())

	event := entity.ProductReserved{
		ProductID: uuid.New(),
		BuyerID:   uuid.New(),
	}
	ctx := deliverycontext.WithRequestID(context.Background(), "req-123")

	require.NoError(t, publisher.Publish(ctx, event))

	assert.Equal(t, "req-123", receivedHeader)
	assert.Equal(t, event.EventType(), received.Message.Attributes["event_type"])
	assert.Equal(t, "req-123", received.Message.Attributes["request_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded entity.ProductReserved
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, event.ProductID, decoded.ProductID)
	assert.Equal(t, event.BuyerID, decoded.BuyerID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())

	err := publisher.Publish(context.Background(), entity.ProductSold{ProductID: uuid.New()})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "non-success status")
}
