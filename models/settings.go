package models

import "time"

// CategorySetting is an admin-managed menu category with visibility flags.
type CategorySetting struct {
	Name      string `json:"name" bson:"name"`
	IsDefault bool   `json:"isDefault" bson:"isDefault"`
	IsVisible bool   `json:"isVisible" bson:"isVisible"`
	IsCustom  bool   `json:"isCustom" bson:"isCustom"`
}

// Settings is the restaurant configuration singleton. Exactly one document
// exists, keyed by a fixed _id.
type Settings struct {
	ID                    string            `json:"id" bson:"_id"`
	RestaurantName        string            `json:"restaurantName" bson:"restaurantName"`
	RestaurantAddress     string            `json:"restaurantAddress" bson:"restaurantAddress"`
	RestaurantContact     string            `json:"restaurantContact" bson:"restaurantContact"`
	AcceptingOnlineOrders bool              `json:"acceptingOnlineOrders" bson:"acceptingOnlineOrders"`
	DeliveryRadius        float64           `json:"deliveryRadius" bson:"deliveryRadius"`
	MinOrderValue         float64           `json:"minOrderValue" bson:"minOrderValue"`
	ManagedCategories     []CategorySetting `json:"managedCategories" bson:"managedCategories"`
	UsePlaceholderData    bool              `json:"usePlaceholderData" bson:"usePlaceholderData"`
	CreatedAt             time.Time         `json:"createdAt" bson:"createdAt"`
	UpdatedAt             time.Time         `json:"updatedAt" bson:"updatedAt"`
}
