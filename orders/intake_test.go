package orders

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eatkwik/models"
	"eatkwik/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func deliveryDraft() IntakeDraft {
	return IntakeDraft{
		OrderType:       OrderTypeDelivery,
		CustomerName:    "Asha",
		CustomerContact: "555-0101",
		DeliveryAddress: "42 Curry Lane, Flavor Town",
		Items: []models.OrderItem{
			{MenuItemID: "abc123", Name: "Margherita Pizza", Quantity: 2, PriceAtOrder: 499},
		},
	}
}

func TestValidateIntakeStep(t *testing.T) {
	tests := []struct {
		name   string
		step   int
		mutate func(*IntakeDraft)
		field  string
	}{
		{"step 1 requires order type", 1, func(d *IntakeDraft) { d.OrderType = "" }, "orderType"},
		{"step 1 rejects unknown type", 1, func(d *IntakeDraft) { d.OrderType = "DineIn" }, "orderType"},
		{"step 1 ignores later fields", 1, func(d *IntakeDraft) { d.CustomerName = ""; d.Items = nil }, ""},
		{"step 2 short name", 2, func(d *IntakeDraft) { d.CustomerName = "A" }, "customerName"},
		{"step 2 short contact", 2, func(d *IntakeDraft) { d.CustomerContact = "551" }, "customerContact"},
		{"step 2 delivery needs address", 2, func(d *IntakeDraft) { d.DeliveryAddress = "" }, "deliveryAddress"},
		{"step 2 takeout skips address", 2, func(d *IntakeDraft) {
			d.OrderType = OrderTypeTakeout
			d.DeliveryAddress = ""
		}, ""},
		{"step 2 ignores items", 2, func(d *IntakeDraft) { d.Items = nil }, ""},
		{"step 3 needs items", 3, func(d *IntakeDraft) { d.Items = nil }, "items"},
		{"step 3 unselected item", 3, func(d *IntakeDraft) { d.Items[0].MenuItemID = "" }, "items.0.menuItemId"},
		{"step 3 zero quantity", 3, func(d *IntakeDraft) { d.Items[0].Quantity = 0 }, "items.0.quantity"},
		{"step 3 still checks step 2", 3, func(d *IntakeDraft) { d.CustomerName = "" }, "customerName"},
		{"step 4 full review passes", 4, func(d *IntakeDraft) {}, ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			draft := deliveryDraft()
			testCase.mutate(&draft)

			issues := ValidateIntakeStep(testCase.step, draft)
			if testCase.field == "" {
				assert.Empty(t, issues)
			} else {
				assert.Contains(t, issues, testCase.field)
			}
		})
	}
}

func TestValidateIntakeEndpoint(t *testing.T) {
	router := httprouter.New()
	router.POST("/api/order-intake/validate", ValidateIntake)

	tests := []struct {
		name     string
		body     any
		wantCode int
		check    func(t *testing.T, env utils.Envelope)
	}{
		{
			name:     "valid review step returns total",
			body:     intakeRequest{Step: 4, Draft: deliveryDraft()},
			wantCode: http.StatusOK,
			check: func(t *testing.T, env utils.Envelope) {
				assert.True(t, env.Success)
				data := env.Data.(map[string]any)
				assert.Equal(t, float64(998), data["totalAmount"])
			},
		},
		{
			name: "step issues are reported per field",
			body: intakeRequest{Step: 2, Draft: IntakeDraft{
				OrderType: OrderTypeDelivery, CustomerName: "A",
			}},
			wantCode: http.StatusBadRequest,
			check: func(t *testing.T, env utils.Envelope) {
				assert.False(t, env.Success)
				assert.Contains(t, env.Issues, "customerName")
				assert.Contains(t, env.Issues, "deliveryAddress")
			},
		},
		{
			name:     "step out of range",
			body:     intakeRequest{Step: 7, Draft: deliveryDraft()},
			wantCode: http.StatusBadRequest,
			check:    func(t *testing.T, env utils.Envelope) { assert.False(t, env.Success) },
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			body, _ := json.Marshal(testCase.body)
			req := httptest.NewRequest("POST", "/api/order-intake/validate", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)
			assert.Equal(t, testCase.wantCode, w.Code)

			var env utils.Envelope
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
			testCase.check(t, env)
		})
	}
}
