package orders

import (
	"fmt"

	"eatkwik/models"
	"eatkwik/utils"
)

// transitions is the guarded lifecycle table: current status -> statuses an
// order may move to. Delivered and Cancelled are terminal.
var transitions = map[string][]string{
	models.StatusPlaced:         {models.StatusInPreparation, models.StatusCancelled},
	models.StatusInPreparation:  {models.StatusReadyForPickup, models.StatusOutForDelivery, models.StatusCancelled},
	models.StatusReadyForPickup: {models.StatusOutForDelivery, models.StatusDelivered, models.StatusCancelled},
	models.StatusOutForDelivery: {models.StatusDelivered, models.StatusCancelled},
	models.StatusDelivered:      {},
	models.StatusCancelled:      {},
}

// ValidStatus reports whether s is one of the six order statuses.
func ValidStatus(s string) bool {
	return utils.Contains(models.OrderStatuses, s)
}

// CanTransition returns nil when an order currently in from may be set to
// to. Re-setting the current status is treated as a no-op and allowed.
func CanTransition(from, to string) error {
	if !ValidStatus(to) {
		return fmt.Errorf("invalid order status %q", to)
	}
	if from == to {
		return nil
	}
	if utils.Contains(transitions[from], to) {
		return nil
	}
	return fmt.Errorf("cannot change order status from %q to %q", from, to)
}
