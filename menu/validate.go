package menu

import (
	"net/url"
	"strings"

	"eatkwik/models"
	"eatkwik/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// CreatePayload is the POST /api/menu-items body.
type CreatePayload struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Price        float64  `json:"price"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Tags         []string `json:"tags"`
	Availability *bool    `json:"availability"`
	ImageURL     string   `json:"imageUrl"`
	PrepTime     *int     `json:"prepTime"`
}

// UpdatePayload is the partial PUT /api/menu-items/:id body. Pointer fields
// distinguish "absent" from zero values.
type UpdatePayload struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	Price        *float64 `json:"price"`
	Description  *string  `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Tags         []string `json:"tags"`
	Availability *bool    `json:"availability"`
	ImageURL     *string  `json:"imageUrl"`
	PrepTime     *int     `json:"prepTime"`
}

func validImageURL(s string) bool {
	if s == "" {
		return true
	}
	u, err := url.ParseRequestURI(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// ValidateCreate returns field-level issues for a creation payload, empty
// when the payload is acceptable.
func ValidateCreate(p CreatePayload) map[string]string {
	issues := map[string]string{}

	if strings.TrimSpace(p.Name) == "" {
		issues["name"] = "Name is required"
	}
	if !utils.Contains(models.MenuCategories, p.Category) {
		issues["category"] = "Invalid category"
	}
	if p.Price <= 0 {
		issues["price"] = "Price must be positive"
	}
	if strings.TrimSpace(p.Description) == "" {
		issues["description"] = "Description is required"
	}
	if len(p.Ingredients) == 0 {
		issues["ingredients"] = "At least one ingredient required"
	} else {
		for _, ing := range p.Ingredients {
			if strings.TrimSpace(ing) == "" {
				issues["ingredients"] = "Ingredient cannot be empty"
				break
			}
		}
	}
	if !validImageURL(p.ImageURL) {
		issues["imageUrl"] = "Invalid URL"
	}
	if p.PrepTime != nil && *p.PrepTime < 0 {
		issues["prepTime"] = "Preparation time must be a non-negative integer"
	}

	return issues
}

// ValidateUpdate checks only the fields present in a partial update.
func ValidateUpdate(p UpdatePayload) map[string]string {
	issues := map[string]string{}

	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		issues["name"] = "Name cannot be empty"
	}
	if p.Category != nil && strings.TrimSpace(*p.Category) == "" {
		issues["category"] = "Category cannot be empty"
	}
	if p.Price != nil && *p.Price <= 0 {
		issues["price"] = "Price must be a positive number"
	}
	if p.Description != nil && strings.TrimSpace(*p.Description) == "" {
		issues["description"] = "Description cannot be empty"
	}
	if p.Ingredients != nil {
		if len(p.Ingredients) == 0 {
			issues["ingredients"] = "At least one ingredient required"
		} else {
			for _, ing := range p.Ingredients {
				if strings.TrimSpace(ing) == "" {
					issues["ingredients"] = "Ingredient cannot be empty"
					break
				}
			}
		}
	}
	if p.ImageURL != nil && !validImageURL(*p.ImageURL) {
		issues["imageUrl"] = "Invalid image URL"
	}
	if p.PrepTime != nil && *p.PrepTime < 0 {
		issues["prepTime"] = "Preparation time must be a non-negative integer"
	}

	return issues
}

// BuildUpdate turns a validated partial payload into a $set document.
func BuildUpdate(p UpdatePayload) bson.M {
	set := bson.M{}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Category != nil {
		set["category"] = *p.Category
	}
	if p.Price != nil {
		set["price"] = *p.Price
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Ingredients != nil {
		set["ingredients"] = p.Ingredients
	}
	if p.Tags != nil {
		set["tags"] = p.Tags
	}
	if p.Availability != nil {
		set["availability"] = *p.Availability
	}
	if p.ImageURL != nil {
		set["imageUrl"] = *p.ImageURL
	}
	if p.PrepTime != nil {
		set["prepTime"] = *p.PrepTime
	}
	return set
}
