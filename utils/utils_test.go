package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderNumber(t *testing.T) {
	n := GenerateOrderNumber()
	assert.Len(t, n, 8)
	assert.True(t, strings.HasPrefix(n, "EK"))
	for _, r := range n[2:] {
		assert.True(t, r >= '0' && r <= '9', string(r))
	}
}

func TestPlaceholderImageURL(t *testing.T) {
	url := PlaceholderImageURL("Test Pizza")
	assert.True(t, strings.HasPrefix(url, "https://placehold.co/600x400.png?text="))
	assert.Contains(t, url, "Test+Pizza")
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{}, SplitTags(""))
	assert.Equal(t, []string{"vegan", "spicy"}, SplitTags("Vegan, spicy, , VEGAN"))
}

func TestGenerateRandomString(t *testing.T) {
	a := GenerateRandomString(14)
	b := GenerateRandomString(14)
	assert.Len(t, a, 14)
	assert.NotEqual(t, a, b)
}
