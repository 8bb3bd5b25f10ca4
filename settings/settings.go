package settings

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"eatkwik/db"
	"eatkwik/globals"
	"eatkwik/models"
	"eatkwik/mq"
	"eatkwik/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultCategories seeds the managed category list from the stock catalog
// categories.
func DefaultCategories() []models.CategorySetting {
	categories := make([]models.CategorySetting, 0, len(models.MenuCategories))
	for _, name := range models.MenuCategories {
		categories = append(categories, models.CategorySetting{
			Name:      name,
			IsDefault: true,
			IsVisible: true,
			IsCustom:  false,
		})
	}
	return categories
}

func defaultSettings() models.Settings {
	now := time.Now()
	return models.Settings{
		ID:                    globals.SettingsID,
		RestaurantName:        "EatKwik Central Kitchen",
		RestaurantAddress:     "123 Food Street, Flavor Town",
		RestaurantContact:     "555-123-4567",
		AcceptingOnlineOrders: true,
		DeliveryRadius:        5,
		MinOrderValue:         10,
		ManagedCategories:     DefaultCategories(),
		UsePlaceholderData:    true,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

// getSingleton fetches the settings document, creating it on first read.
// Two concurrent cold reads both upsert on the fixed _id; Mongo resolves the
// race so exactly one document ever exists.
func getSingleton(ctx context.Context) (models.Settings, error) {
	var settings models.Settings
	err := db.SettingsCollection.FindOne(ctx, bson.M{"_id": globals.SettingsID}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		settings = defaultSettings()
		opts := options.Update().SetUpsert(true)
		if _, err := db.SettingsCollection.UpdateOne(ctx,
			bson.M{"_id": globals.SettingsID},
			bson.M{"$setOnInsert": settings},
			opts,
		); err != nil {
			return settings, err
		}
		// Re-read so a lost upsert race still returns the winner's document.
		err = db.SettingsCollection.FindOne(ctx, bson.M{"_id": globals.SettingsID}).Decode(&settings)
		return settings, err
	} else if err != nil {
		return settings, err
	}

	// Older documents may predate managed categories.
	if len(settings.ManagedCategories) == 0 {
		settings.ManagedCategories = DefaultCategories()
		_, err = db.SettingsCollection.UpdateOne(ctx,
			bson.M{"_id": globals.SettingsID},
			bson.M{"$set": bson.M{"managedCategories": settings.ManagedCategories}},
		)
	}
	return settings, err
}

// GetSettings returns the restaurant settings singleton.
func GetSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	settings, err := getSingleton(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Server error occurred while fetching settings.")
		return
	}
	utils.RespondSuccess(w, http.StatusOK, settings)
}

// UpdatePayload is the partial PUT /api/settings body.
type UpdatePayload struct {
	RestaurantName        *string                  `json:"restaurantName"`
	RestaurantAddress     *string                  `json:"restaurantAddress"`
	RestaurantContact     *string                  `json:"restaurantContact"`
	AcceptingOnlineOrders *bool                    `json:"acceptingOnlineOrders"`
	DeliveryRadius        *float64                 `json:"deliveryRadius"`
	MinOrderValue         *float64                 `json:"minOrderValue"`
	ManagedCategories     []models.CategorySetting `json:"managedCategories"`
	UsePlaceholderData    *bool                    `json:"usePlaceholderData"`
}

// ValidateUpdate checks only the fields present in a partial update.
func ValidateUpdate(p UpdatePayload) map[string]string {
	issues := map[string]string{}

	if p.RestaurantName != nil && strings.TrimSpace(*p.RestaurantName) == "" {
		issues["restaurantName"] = "Restaurant name cannot be empty."
	}
	if p.RestaurantAddress != nil && strings.TrimSpace(*p.RestaurantAddress) == "" {
		issues["restaurantAddress"] = "Restaurant address cannot be empty."
	}
	if p.RestaurantContact != nil && strings.TrimSpace(*p.RestaurantContact) == "" {
		issues["restaurantContact"] = "Restaurant contact cannot be empty."
	}
	if p.DeliveryRadius != nil && *p.DeliveryRadius < 0 {
		issues["deliveryRadius"] = "Delivery radius cannot be negative."
	}
	if p.MinOrderValue != nil && *p.MinOrderValue < 0 {
		issues["minOrderValue"] = "Minimum order value cannot be negative."
	}
	for _, c := range p.ManagedCategories {
		if strings.TrimSpace(c.Name) == "" {
			issues["managedCategories"] = "Category names cannot be empty."
			break
		}
	}

	return issues
}

// UpdateSettings applies a partial update to the singleton, creating it if a
// cold store is written before it is ever read.
func UpdateSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var payload UpdatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	if issues := ValidateUpdate(payload); len(issues) > 0 {
		utils.RespondIssues(w, "Invalid input data. Please check the fields.", issues)
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if payload.RestaurantName != nil {
		set["restaurantName"] = *payload.RestaurantName
	}
	if payload.RestaurantAddress != nil {
		set["restaurantAddress"] = *payload.RestaurantAddress
	}
	if payload.RestaurantContact != nil {
		set["restaurantContact"] = *payload.RestaurantContact
	}
	if payload.AcceptingOnlineOrders != nil {
		set["acceptingOnlineOrders"] = *payload.AcceptingOnlineOrders
	}
	if payload.DeliveryRadius != nil {
		set["deliveryRadius"] = *payload.DeliveryRadius
	}
	if payload.MinOrderValue != nil {
		set["minOrderValue"] = *payload.MinOrderValue
	}
	if payload.ManagedCategories != nil {
		set["managedCategories"] = payload.ManagedCategories
	}
	if payload.UsePlaceholderData != nil {
		set["usePlaceholderData"] = *payload.UsePlaceholderData
	}

	defaults := defaultSettings()
	res := db.SettingsCollection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": globals.SettingsID},
		bson.M{"$set": set, "$setOnInsert": bson.M{"createdAt": defaults.CreatedAt}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var updated models.Settings
	if err := res.Decode(&updated); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update settings. Please try again.")
		return
	}

	mq.Notify("settings-updated", models.Index{EntityType: "settings", EntityId: globals.SettingsID, Method: "PUT"})

	utils.RespondSuccess(w, http.StatusOK, updated)
}
