package live

import (
	"encoding/json"
	"testing"
	"time"

	"eatkwik/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testOrder() *models.Order {
	return &models.Order{
		ID:          primitive.NewObjectID(),
		OrderNumber: "EK482910",
		Status:      models.StatusPlaced,
		TotalAmount: 1297,
	}
}

func TestPublishOrderEventReachesClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{Send: make(chan []byte, 10)}
	hub.register <- client

	order := testOrder()
	hub.PublishOrderEvent("order-created", order)

	select {
	case msg := <-client.Send:
		var event OrderEvent
		assert.NoError(t, json.Unmarshal(msg, &event))
		assert.Equal(t, "order-created", event.Event)
		assert.Equal(t, order.ID.Hex(), event.OrderID)
		assert.Equal(t, "EK482910", event.OrderNumber)
		assert.Equal(t, models.StatusPlaced, event.Status)
		assert.Equal(t, 1297.0, event.TotalAmount)
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func TestUnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{Send: make(chan []byte, 10)}
	hub.register <- client
	hub.unregister <- client

	select {
	case _, open := <-client.Send:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}
}

func TestPublishAfterStopDoesNotBlock(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	hub.Stop()

	done := make(chan struct{})
	go func() {
		hub.PublishOrderEvent("order-status-changed", testOrder())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked after stop")
	}
}
