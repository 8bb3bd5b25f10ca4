package orders

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"eatkwik/models"
	"eatkwik/utils"

	"github.com/julienschmidt/httprouter"
)

// The intake wizard walks customers through four steps: order type, contact
// details, line items, review.
const (
	IntakeStepOrderType = 1
	IntakeStepCustomer  = 2
	IntakeStepItems     = 3
	IntakeStepReview    = 4
)

const (
	OrderTypeTakeout  = "Takeout"
	OrderTypeDelivery = "Delivery"
)

// IntakeDraft is the in-progress order a client accumulates across steps.
type IntakeDraft struct {
	OrderType       string             `json:"orderType"`
	CustomerName    string             `json:"customerName"`
	CustomerContact string             `json:"customerContact"`
	DeliveryAddress string             `json:"deliveryAddress"`
	Items           []models.OrderItem `json:"items"`
	Notes           string             `json:"notes"`
}

// ValidateIntakeStep validates everything required up to and including the
// given step, so a later step never passes while an earlier one is broken.
// Returned issues are keyed by field path (e.g. "items.0.menuItemId").
func ValidateIntakeStep(step int, d IntakeDraft) map[string]string {
	issues := map[string]string{}

	if step >= IntakeStepOrderType {
		if d.OrderType != OrderTypeTakeout && d.OrderType != OrderTypeDelivery {
			issues["orderType"] = "Please select an order type."
		}
	}

	if step >= IntakeStepCustomer {
		if len(strings.TrimSpace(d.CustomerName)) < 2 {
			issues["customerName"] = "Name must be at least 2 characters."
		}
		if len(strings.TrimSpace(d.CustomerContact)) < 5 {
			issues["customerContact"] = "Contact information is required (min 5 chars)."
		}
		if d.OrderType == OrderTypeDelivery && len(strings.TrimSpace(d.DeliveryAddress)) < 5 {
			issues["deliveryAddress"] = "Delivery address is required for delivery (min 5 chars)."
		}
	}

	if step >= IntakeStepItems {
		if len(d.Items) == 0 {
			issues["items"] = "Order must contain at least one item."
		} else {
			for i, item := range d.Items {
				if strings.TrimSpace(item.MenuItemID) == "" {
					issues[fmt.Sprintf("items.%d.menuItemId", i)] = "Item selection is required."
				}
				if item.Quantity < 1 {
					issues[fmt.Sprintf("items.%d.quantity", i)] = "Quantity must be at least 1."
				}
			}
		}
	}

	return issues
}

type intakeRequest struct {
	Step  int         `json:"step"`
	Draft IntakeDraft `json:"draft"`
}

type intakeResult struct {
	Step        int     `json:"step"`
	Valid       bool    `json:"valid"`
	TotalAmount float64 `json:"totalAmount"`
}

// ValidateIntake lets clients run a wizard step through the same gating
// logic the server applies on submission. The running total is returned so
// the review step never computes money client-side.
func ValidateIntake(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req intakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	if req.Step < IntakeStepOrderType || req.Step > IntakeStepReview {
		utils.RespondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid intake step %d", req.Step))
		return
	}

	if issues := ValidateIntakeStep(req.Step, req.Draft); len(issues) > 0 {
		utils.RespondIssues(w, "Invalid input data", issues)
		return
	}

	utils.RespondSuccess(w, http.StatusOK, intakeResult{
		Step:        req.Step,
		Valid:       true,
		TotalAmount: ComputeTotal(req.Draft.Items),
	})
}
