package mq

import (
	"context"
	"fmt"
	"strings"

	"eatkwik/db"
	"eatkwik/models"
	"eatkwik/rdx"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// applyIndexEvent mirrors menu catalog writes into Redis so search and
// autocomplete never touch Mongo.
func applyIndexEvent(ctx context.Context, event models.Index) error {
	if event.EntityType != "menuitem" {
		return nil
	}

	key := "search:menu:" + event.EntityId

	if event.Method == "DELETE" {
		return rdx.Conn.Del(ctx, key).Err()
	}

	oid, err := primitive.ObjectIDFromHex(event.EntityId)
	if err != nil {
		return fmt.Errorf("bad entity id %q: %w", event.EntityId, err)
	}

	var item models.MenuItem
	if err := db.MenuCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&item); err != nil {
		return fmt.Errorf("load menu item %s: %w", event.EntityId, err)
	}

	return rdx.Conn.HSet(ctx, key, map[string]any{
		"name":     item.Name,
		"category": item.Category,
		"tags":     strings.Join(item.Tags, ","),
	}).Err()
}
