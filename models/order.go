package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses, in lifecycle order.
const (
	StatusPlaced         = "Placed"
	StatusInPreparation  = "In Preparation"
	StatusReadyForPickup = "Ready for Pickup"
	StatusOutForDelivery = "Out for Delivery"
	StatusDelivered      = "Delivered"
	StatusCancelled      = "Cancelled"
)

var OrderStatuses = []string{
	StatusPlaced,
	StatusInPreparation,
	StatusReadyForPickup,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCancelled,
}

// OrderItem is a single line of an order. Name and priceAtOrder are
// denormalized from the menu item at the time the order was placed.
type OrderItem struct {
	MenuItemID     string  `json:"menuItemId" bson:"menuItemId"`
	Name           string  `json:"name" bson:"name"`
	Quantity       int     `json:"quantity" bson:"quantity"`
	PriceAtOrder   float64 `json:"priceAtOrder" bson:"priceAtOrder"`
	Customizations string  `json:"customizations,omitempty" bson:"customizations,omitempty"`
}

// Order struct for MongoDB documents
type Order struct {
	ID                    primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OrderNumber           string             `json:"orderNumber" bson:"orderNumber"`
	Items                 []OrderItem        `json:"items" bson:"items"`
	CustomerID            string             `json:"customerId,omitempty" bson:"customerId,omitempty"`
	CustomerName          string             `json:"customerName" bson:"customerName"`
	CustomerContact       string             `json:"customerContact" bson:"customerContact"`
	Status                string             `json:"status" bson:"status"`
	Notes                 string             `json:"notes,omitempty" bson:"notes,omitempty"`
	TotalAmount           float64            `json:"totalAmount" bson:"totalAmount"`
	DeliveryAddress       string             `json:"deliveryAddress,omitempty" bson:"deliveryAddress,omitempty"`
	EstimatedDeliveryTime string             `json:"estimatedDeliveryTime,omitempty" bson:"estimatedDeliveryTime,omitempty"`
	CreatedAt             time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt             time.Time          `json:"updatedAt" bson:"updatedAt"`
}
