package catalog

import (
	"strings"
	"testing"

	"funky-fusion/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductByID(t *testing.T) {
	product, ok := ProductByID(101)
	require.True(t, ok)
	assert.Equal(t, "Ribbon Rhinestone Necklace", product.Name)
	assert.Equal(t, 1200, product.Price)
	assert.Equal(t, domain.CategoryNecklaces, product.Category)

	_, ok = ProductByID(999)
	assert.False(t, ok, "unknown id should be reported as not found, not panic")
}

func TestProductsByCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     int
	}{
		{"necklaces", "necklaces", 7},
		{"earrings", "earrings", 7},
		{"bracelets", "bracelets", 2},
		{"case insensitive", "NECKLACES", 7},
		{"rings is empty, not an error", "rings", 0},
		{"unknown category", "hats", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := ProductsByCategory(tt.category)
			require.NotNil(t, products)
			assert.Len(t, products, tt.want)
		})
	}
}

func TestSearch(t *testing.T) {
	t.Run("empty query returns nothing", func(t *testing.T) {
		assert.Empty(t, Search(""))
		assert.Empty(t, Search("   "))
	})

	t.Run("matches across name, description and category", func(t *testing.T) {
		results := Search("necklace")

		require.NotEmpty(t, results)
		for _, p := range results {
			matches := strings.Contains(strings.ToLower(p.Name), "necklace") ||
				strings.Contains(strings.ToLower(p.Description), "necklace") ||
				strings.Contains(strings.ToLower(string(p.Category)), "necklace")
			assert.True(t, matches, "product %d should match the query", p.ID)
		}

		// Category match alone is enough: every necklace is returned even if
		// its name and description never mention the word.
		assert.GreaterOrEqual(t, len(results), len(ProductsByCategory("necklaces")))
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, Search("swan"), Search("SWAN"))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, Search("spaceship"))
	})
}

func TestCategoryDisplayName(t *testing.T) {
	assert.Equal(t, "Necklaces", CategoryDisplayName("necklaces"))
	assert.Equal(t, "Rings", CategoryDisplayName("RINGS"))
	// Unknown slugs pass through unchanged.
	assert.Equal(t, "charms", CategoryDisplayName("charms"))
}

func TestAllProductsIsACopy(t *testing.T) {
	products := AllProducts()
	require.NotEmpty(t, products)

	products[0].Name = "mutated"
	fresh := AllProducts()
	assert.NotEqual(t, "mutated", fresh[0].Name, "callers must not be able to mutate the catalog")
}
