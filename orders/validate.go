package orders

import (
	"fmt"
	"math"
	"strings"
	"time"

	"eatkwik/models"
)

// CreatePayload is the POST /api/orders body.
type CreatePayload struct {
	CustomerName          string             `json:"customerName"`
	CustomerContact       string             `json:"customerContact"`
	Status                string             `json:"status"`
	Notes                 string             `json:"notes"`
	DeliveryAddress       string             `json:"deliveryAddress"`
	Items                 []models.OrderItem `json:"items"`
	TotalAmount           float64            `json:"totalAmount"`
	CustomerID            string             `json:"customerId"`
	EstimatedDeliveryTime string             `json:"estimatedDeliveryTime"`
}

// UpdatePayload is the partial PUT /api/orders/:id body.
type UpdatePayload struct {
	CustomerName          *string            `json:"customerName"`
	CustomerContact       *string            `json:"customerContact"`
	Status                *string            `json:"status"`
	Notes                 *string            `json:"notes"`
	DeliveryAddress       *string            `json:"deliveryAddress"`
	Items                 []models.OrderItem `json:"items"`
	TotalAmount           *float64           `json:"totalAmount"`
	EstimatedDeliveryTime *string            `json:"estimatedDeliveryTime"`
}

// ComputeTotal is the authoritative order total: sum of quantity times the
// denormalized item price.
func ComputeTotal(items []models.OrderItem) float64 {
	total := 0.0
	for _, item := range items {
		total += float64(item.Quantity) * item.PriceAtOrder
	}
	return math.Round(total*100) / 100
}

// TotalsMatch compares a client-submitted total against the recomputed one,
// tolerating float rounding.
func TotalsMatch(submitted, computed float64) bool {
	return math.Abs(submitted-computed) < 0.005
}

func validateItems(items []models.OrderItem, issues map[string]string) {
	if len(items) == 0 {
		issues["items"] = "Order must have at least one item"
		return
	}
	for i, item := range items {
		if strings.TrimSpace(item.MenuItemID) == "" {
			issues[fmt.Sprintf("items.%d.menuItemId", i)] = "MenuItem ID is required"
		}
		if strings.TrimSpace(item.Name) == "" {
			issues[fmt.Sprintf("items.%d.name", i)] = "Item name is required"
		}
		if item.Quantity < 1 {
			issues[fmt.Sprintf("items.%d.quantity", i)] = "Quantity must be at least 1"
		}
		if item.PriceAtOrder <= 0 {
			issues[fmt.Sprintf("items.%d.priceAtOrder", i)] = "Price at order must be positive"
		}
	}
}

func validISOTime(s string) bool {
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

// ValidateCreate returns field-level issues for an order creation payload.
// The submitted totalAmount must equal the server-recomputed line total.
func ValidateCreate(p CreatePayload) map[string]string {
	issues := map[string]string{}

	if strings.TrimSpace(p.CustomerName) == "" {
		issues["customerName"] = "Customer name is required"
	}
	if strings.TrimSpace(p.CustomerContact) == "" {
		issues["customerContact"] = "Customer contact is required"
	}
	if p.Status != "" && !ValidStatus(p.Status) {
		issues["status"] = "Invalid order status"
	}
	validateItems(p.Items, issues)

	if p.TotalAmount <= 0 {
		issues["totalAmount"] = "Total amount must be positive"
	} else if _, bad := issues["items"]; !bad && !TotalsMatch(p.TotalAmount, ComputeTotal(p.Items)) {
		issues["totalAmount"] = "Total amount does not match sum of line items"
	}

	if p.EstimatedDeliveryTime != "" && !validISOTime(p.EstimatedDeliveryTime) {
		issues["estimatedDeliveryTime"] = "Invalid datetime"
	}

	return issues
}

// ValidateUpdate checks only the fields present in a partial update. Status
// transitions are checked separately against the stored order.
func ValidateUpdate(p UpdatePayload) map[string]string {
	issues := map[string]string{}

	if p.CustomerName != nil && strings.TrimSpace(*p.CustomerName) == "" {
		issues["customerName"] = "Customer name cannot be empty"
	}
	if p.CustomerContact != nil && strings.TrimSpace(*p.CustomerContact) == "" {
		issues["customerContact"] = "Customer contact cannot be empty"
	}
	if p.Status != nil && !ValidStatus(*p.Status) {
		issues["status"] = "Invalid order status"
	}
	if p.Items != nil {
		validateItems(p.Items, issues)
	}
	if p.TotalAmount != nil && *p.TotalAmount <= 0 {
		issues["totalAmount"] = "Total amount must be positive"
	}
	if p.EstimatedDeliveryTime != nil && *p.EstimatedDeliveryTime != "" && !validISOTime(*p.EstimatedDeliveryTime) {
		issues["estimatedDeliveryTime"] = "Invalid datetime"
	}

	return issues
}
