package mq

import (
	"context"
	"encoding/json"
	"log"

	"eatkwik/models"
	"eatkwik/rdx"
)

const eventsChannel = "indexing-events"

// Notify broadcasts an event without indexing.
func Notify(eventName string, content models.Index) error {
	log.Println(eventName, "Notified", content)
	return nil
}

// Emit publishes indexing events to Redis for the worker to pick up.
func Emit(ctx context.Context, eventName string, content models.Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(context.Background(), eventsChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s event to Redis: %v", eventName, err)
	}
}

// StartIndexingWorker subscribes to write events and keeps the Redis-side
// catalog index in sync with the document store.
func StartIndexingWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, eventsChannel)
	ch := sub.Channel()

	log.Println("[IndexingWorker] Listening for indexing events...")

	for msg := range ch {
		var event models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[IndexingWorker] Failed to parse event: %v", err)
			continue
		}

		if err := applyIndexEvent(ctx, event); err != nil {
			log.Printf("[IndexingWorker] index error: %v", err)
		}
	}
}
