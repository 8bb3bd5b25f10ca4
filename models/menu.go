package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuCategories are the default catalog categories seeded into settings.
var MenuCategories = []string{
	"Appetizers", "Main Courses", "Desserts", "Beverages",
	"Sides", "Salads", "Soups", "Sandwiches",
}

// Feedback is a single customer rating on a menu item.
type Feedback struct {
	ID        string    `json:"id" bson:"id"`
	UserID    string    `json:"userId" bson:"userId"`
	UserName  string    `json:"userName" bson:"userName"`
	Rating    int       `json:"rating" bson:"rating"`
	Comment   string    `json:"comment" bson:"comment"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// MenuItem struct for MongoDB documents
type MenuItem struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Category      string             `json:"category" bson:"category"`
	Price         float64            `json:"price" bson:"price"`
	Description   string             `json:"description" bson:"description"`
	Ingredients   []string           `json:"ingredients" bson:"ingredients"`
	Tags          []string           `json:"tags" bson:"tags"`
	Availability  bool               `json:"availability" bson:"availability"`
	ImageURL      string             `json:"imageUrl" bson:"imageUrl"`
	Feedbacks     []Feedback         `json:"feedbacks" bson:"feedbacks"`
	AverageRating float64            `json:"averageRating" bson:"averageRating"`
	PrepTime      *int               `json:"prepTime,omitempty" bson:"prepTime,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}
