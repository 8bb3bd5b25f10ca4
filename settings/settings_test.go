package settings

import (
	"testing"

	"eatkwik/globals"
	"eatkwik/models"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCategories(t *testing.T) {
	categories := DefaultCategories()
	assert.Len(t, categories, len(models.MenuCategories))

	for i, c := range categories {
		assert.Equal(t, models.MenuCategories[i], c.Name)
		assert.True(t, c.IsDefault)
		assert.True(t, c.IsVisible)
		assert.False(t, c.IsCustom)
	}
}

func TestDefaultSettings(t *testing.T) {
	s := defaultSettings()
	assert.Equal(t, globals.SettingsID, s.ID)
	assert.Equal(t, "EatKwik Central Kitchen", s.RestaurantName)
	assert.True(t, s.AcceptingOnlineOrders)
	assert.True(t, s.UsePlaceholderData)
	assert.Len(t, s.ManagedCategories, 8)
}

func TestValidateUpdate(t *testing.T) {
	blank := ""
	negative := -1.0
	ok := 7.5

	assert.Empty(t, ValidateUpdate(UpdatePayload{}))
	assert.Empty(t, ValidateUpdate(UpdatePayload{DeliveryRadius: &ok}))
	assert.Contains(t, ValidateUpdate(UpdatePayload{RestaurantName: &blank}), "restaurantName")
	assert.Contains(t, ValidateUpdate(UpdatePayload{DeliveryRadius: &negative}), "deliveryRadius")
	assert.Contains(t, ValidateUpdate(UpdatePayload{MinOrderValue: &negative}), "minOrderValue")
	assert.Contains(t, ValidateUpdate(UpdatePayload{
		ManagedCategories: []models.CategorySetting{{Name: " "}},
	}), "managedCategories")
}
