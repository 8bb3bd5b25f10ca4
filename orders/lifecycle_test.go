package orders

import (
	"testing"

	"eatkwik/models"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, s := range models.OrderStatuses {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("Teleported"))
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("placed"))
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"placed to preparation", models.StatusPlaced, models.StatusInPreparation, true},
		{"placed to cancelled", models.StatusPlaced, models.StatusCancelled, true},
		{"preparation to pickup", models.StatusInPreparation, models.StatusReadyForPickup, true},
		{"preparation to delivery", models.StatusInPreparation, models.StatusOutForDelivery, true},
		{"pickup to delivered", models.StatusReadyForPickup, models.StatusDelivered, true},
		{"delivery to delivered", models.StatusOutForDelivery, models.StatusDelivered, true},
		{"same status is a no-op", models.StatusDelivered, models.StatusDelivered, true},
		{"placed cannot skip to delivered", models.StatusPlaced, models.StatusDelivered, false},
		{"delivered cannot revert to placed", models.StatusDelivered, models.StatusPlaced, false},
		{"cancelled is terminal", models.StatusCancelled, models.StatusInPreparation, false},
		{"delivered cannot be cancelled", models.StatusDelivered, models.StatusCancelled, false},
		{"unknown target status", models.StatusPlaced, "Lost", false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := CanTransition(testCase.from, testCase.to)
			if testCase.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
