package menu

import (
	"testing"

	"eatkwik/models"

	"github.com/stretchr/testify/assert"
)

func validCreate() CreatePayload {
	return CreatePayload{
		Name:        "Test Pizza",
		Category:    "Main Courses",
		Price:       499,
		Description: "desc",
		Ingredients: []string{"Dough"},
	}
}

func TestValidateCreate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreatePayload)
		field  string
	}{
		{"valid payload", func(p *CreatePayload) {}, ""},
		{"blank name", func(p *CreatePayload) { p.Name = "  " }, "name"},
		{"unknown category", func(p *CreatePayload) { p.Category = "Fusion" }, "category"},
		{"zero price", func(p *CreatePayload) { p.Price = 0 }, "price"},
		{"negative price", func(p *CreatePayload) { p.Price = -5 }, "price"},
		{"blank description", func(p *CreatePayload) { p.Description = "" }, "description"},
		{"no ingredients", func(p *CreatePayload) { p.Ingredients = nil }, "ingredients"},
		{"empty ingredient", func(p *CreatePayload) { p.Ingredients = []string{"Dough", " "} }, "ingredients"},
		{"bad image url", func(p *CreatePayload) { p.ImageURL = "not a url" }, "imageUrl"},
		{"negative prep time", func(p *CreatePayload) { n := -1; p.PrepTime = &n }, "prepTime"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			payload := validCreate()
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

func TestValidateCreateAcceptsAllDefaultCategories(t *testing.T) {
	for _, category := range models.MenuCategories {
		payload := validCreate()
		payload.Category = category
		assert.Empty(t, ValidateCreate(payload), category)
	}
}

func TestValidateUpdate(t *testing.T) {
	blank := " "
	negative := -1.0
	goodURL := "https://example.com/pizza.png"
	emptyURL := ""

	assert.Empty(t, ValidateUpdate(UpdatePayload{}))
	assert.Empty(t, ValidateUpdate(UpdatePayload{ImageURL: &goodURL}))
	assert.Empty(t, ValidateUpdate(UpdatePayload{ImageURL: &emptyURL}))
	assert.Contains(t, ValidateUpdate(UpdatePayload{Name: &blank}), "name")
	assert.Contains(t, ValidateUpdate(UpdatePayload{Price: &negative}), "price")
	assert.Contains(t, ValidateUpdate(UpdatePayload{Ingredients: []string{}}), "ingredients")
}

func TestBuildUpdate(t *testing.T) {
	name := "Paneer Tikka"
	price := 349.0
	availability := false

	set := BuildUpdate(UpdatePayload{
		Name:         &name,
		Price:        &price,
		Availability: &availability,
		Tags:         []string{"spicy"},
	})

	assert.Equal(t, name, set["name"])
	assert.Equal(t, price, set["price"])
	assert.Equal(t, false, set["availability"])
	assert.Equal(t, []string{"spicy"}, set["tags"])
	assert.NotContains(t, set, "description")
	assert.NotContains(t, set, "imageUrl")
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))

	feedbacks := []models.Feedback{{Rating: 5}, {Rating: 4}, {Rating: 3}}
	assert.Equal(t, 4.0, AverageRating(feedbacks))
}

func TestValidateFeedback(t *testing.T) {
	valid := FeedbackPayload{UserName: "Ravi", Rating: 4, Comment: "Great crust"}
	assert.Empty(t, ValidateFeedback(valid))

	assert.Contains(t, ValidateFeedback(FeedbackPayload{Rating: 4, Comment: "x"}), "userName")
	assert.Contains(t, ValidateFeedback(FeedbackPayload{UserName: "R", Rating: 0, Comment: "x"}), "rating")
	assert.Contains(t, ValidateFeedback(FeedbackPayload{UserName: "R", Rating: 6, Comment: "x"}), "rating")
	assert.Contains(t, ValidateFeedback(FeedbackPayload{UserName: "R", Rating: 3}), "comment")
}
