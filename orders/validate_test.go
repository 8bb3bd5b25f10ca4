package orders

import (
	"testing"

	"eatkwik/models"

	"github.com/stretchr/testify/assert"
)

func twoItems() []models.OrderItem {
	return []models.OrderItem{
		{MenuItemID: "abc123", Name: "Margherita Pizza", Quantity: 2, PriceAtOrder: 499},
		{MenuItemID: "def456", Name: "Caesar Salad", Quantity: 1, PriceAtOrder: 299},
	}
}

func TestComputeTotal(t *testing.T) {
	assert.Equal(t, 1297.0, ComputeTotal(twoItems()))
	assert.Equal(t, 0.0, ComputeTotal(nil))

	// fractional prices round to cents
	items := []models.OrderItem{{MenuItemID: "x", Name: "Tea", Quantity: 2, PriceAtOrder: 3.335}}
	assert.Equal(t, 6.67, ComputeTotal(items))
}

func TestTotalsMatch(t *testing.T) {
	assert.True(t, TotalsMatch(1297, 1297))
	assert.True(t, TotalsMatch(1297.001, 1297))
	assert.False(t, TotalsMatch(1296, 1297))
}

func TestValidateCreate(t *testing.T) {
	valid := CreatePayload{
		CustomerName:    "Asha",
		CustomerContact: "555-0101",
		Items:           twoItems(),
		TotalAmount:     1297,
	}

	tests := []struct {
		name   string
		mutate func(*CreatePayload)
		field  string
	}{
		{"valid payload", func(p *CreatePayload) {}, ""},
		{"missing name", func(p *CreatePayload) { p.CustomerName = " " }, "customerName"},
		{"missing contact", func(p *CreatePayload) { p.CustomerContact = "" }, "customerContact"},
		{"no items", func(p *CreatePayload) { p.Items = nil; p.TotalAmount = 1 }, "items"},
		{"zero quantity", func(p *CreatePayload) { p.Items[0].Quantity = 0 }, "items.0.quantity"},
		{"negative price", func(p *CreatePayload) { p.Items[1].PriceAtOrder = -1 }, "items.1.priceAtOrder"},
		{"unknown status", func(p *CreatePayload) { p.Status = "Beamed" }, "status"},
		{"zero total", func(p *CreatePayload) { p.TotalAmount = 0 }, "totalAmount"},
		{"mismatched total", func(p *CreatePayload) { p.TotalAmount = 999 }, "totalAmount"},
		{"bad delivery time", func(p *CreatePayload) { p.EstimatedDeliveryTime = "tomorrow" }, "estimatedDeliveryTime"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			payload := valid
			payload.Items = twoItems()
			testCase.mutate(&payload)

			issues := ValidateCreate(payload)
			if testCase.field == "" {
				assert.Empty(t, issues)
			} else {
				assert.Contains(t, issues, testCase.field)
			}
		})
	}
}

func TestValidateCreateAcceptsValidStatusAndTime(t *testing.T) {
	payload := CreatePayload{
		CustomerName:          "Asha",
		CustomerContact:       "555-0101",
		Status:                models.StatusPlaced,
		Items:                 twoItems(),
		TotalAmount:           1297,
		EstimatedDeliveryTime: "2026-09-01T19:30:00+05:30",
	}
	assert.Empty(t, ValidateCreate(payload))
}

func TestValidateUpdate(t *testing.T) {
	name := ""
	badStatus := "Vanished"
	goodStatus := models.StatusDelivered
	zero := 0.0

	assert.Contains(t, ValidateUpdate(UpdatePayload{CustomerName: &name}), "customerName")
	assert.Contains(t, ValidateUpdate(UpdatePayload{Status: &badStatus}), "status")
	assert.Contains(t, ValidateUpdate(UpdatePayload{TotalAmount: &zero}), "totalAmount")
	assert.Contains(t, ValidateUpdate(UpdatePayload{Items: []models.OrderItem{}}), "items")
	assert.Empty(t, ValidateUpdate(UpdatePayload{Status: &goodStatus}))
	assert.Empty(t, ValidateUpdate(UpdatePayload{}))
}
