// Package catalog holds the static Funky Fusion product list and read-only
// lookups over it. The catalog is fixed at compile time; nothing here mutates.
package catalog

import (
	"strings"

	"funky-fusion/internal/domain"
)

var allProducts = []domain.Product{
	// Necklaces
	{
		ID:          101,
		Name:        "Ribbon Rhinestone Necklace",
		Price:       1200,
		Image:       "/images/products/ribbon-necklace.jpeg",
		Category:    domain.CategoryNecklaces,
		Description: "A delicate ribbon-shaped rhinestone necklace with a gold-plated chain, perfect for formal occasions.",
		Stock:       15,
	},
	{
		ID:          102,
		Name:        "Bow Rhinestone Necklace",
		Price:       1100,
		Image:       "/images/products/bow-necklace.jpeg",
		Category:    domain.CategoryNecklaces,
		Description: "A stunning bow pendant adorned with sparkling rhinestones on a gold-plated chain.",
		Stock:       12,
	},
	{
		ID:          105,
		Name:        "Mountain Necklace",
		Price:       1150,
		Image:       "/images/products/mountain-necklace.jpeg",
		Category:    domain.CategoryNecklaces,
		Description: "A minimalist mountain range pendant on a dainty chain.",
		Stock:       7,
	},
	{
		ID:          106,
		Name:        "Yellow Green Butterfly Necklace",
		Price:       950,
		Image:       "/images/products/yellow-green-butterfly.jpeg",
		Category:    domain.CategoryNecklaces,
		Description: "A charming yellow-green butterfly pendant on a delicate chain.",
		Stock:       9,
	},
	{
		ID:          109,
		Name:        "Pink Cat Necklace",
		Price:       1050,
		Image:       "/images/products/pink-cat-necklace.jpeg",
		Category:    domain.CategoryNecklaces,
		Description: "An adorable pink cat pendant that's perfect for cat lovers.",
		Stock:       6,
	},
	{
		ID:          111,
		Name:        "Blue Butterfly Necklace",
		Price:       950,
		Image:       "/images/products/blue-butterfly.jpeg",
		Category:    domain.CategoryNecklaces,
		Description: "A serene blue butterfly pendant that adds elegance to any outfit.",
		Stock:       10,
	},
	{
		ID:          112,
		Name:        "Ship Anchor Necklace",
		Price:       1050,
		Image:       "/images/products/anchor-necklace.jpeg",
		Category:    domain.CategoryNecklaces,
		Description: "A nautical-inspired gold anchor pendant necklace, perfect for a maritime look.",
		Stock:       8,
	},

	// Earrings
	{
		ID:          201,
		Name:        "Swan Studs",
		Price:       850,
		Image:       "/images/products/swan-studs.jpeg",
		Category:    domain.CategoryEarrings,
		Description: "Elegant yellow swan stud earrings with gold detailing.",
		Stock:       20,
	},
	{
		ID:          202,
		Name:        "Black Swan Studs",
		Price:       850,
		Image:       "/images/products/black-swan-studs.jpeg",
		Category:    domain.CategoryEarrings,
		Description: "Sophisticated black swan stud earrings with gold accents.",
		Stock:       18,
	},
	{
		ID:          203,
		Name:        "Mickey Mouse Studs",
		Price:       900,
		Image:       "/images/products/mickey-mouse-studs.jpeg",
		Category:    domain.CategoryEarrings,
		Description: "Playful Mickey Mouse inspired stud earrings with pearl centers and rhinestone ears.",
		Stock:       15,
	},
	{
		ID:          204,
		Name:        "Daisy Studs",
		Price:       750,
		Image:       "/images/products/daisy-studs.jpeg",
		Category:    domain.CategoryEarrings,
		Description: "Charming daisy flower stud earrings with white petals and yellow centers.",
		Stock:       22,
	},
	{
		ID:          205,
		Name:        "Red Petal Studs",
		Price:       800,
		Image:       "/images/products/red-petal-studs.jpeg",
		Category:    domain.CategoryEarrings,
		Description: "Beautiful red flower petal stud earrings with gold centers.",
		Stock:       16,
	},
	{
		ID:          206,
		Name:        "Pink Daisy Earrings",
		Price:       950,
		Image:       "/images/products/pink-daisy-earrings.jpeg",
		Category:    domain.CategoryEarrings,
		Description: "Lovely pink and white daisy dangle earrings with silver hooks.",
		Stock:       12,
	},
	{
		ID:          207,
		Name:        "Sunflower Earrings",
		Price:       1000,
		Image:       "/images/products/sunflower-earrings.jpeg",
		Category:    domain.CategoryEarrings,
		Description: "Cheerful yellow sunflower dangle earrings with gold hooks.",
		Stock:       14,
	},

	// Bracelets
	{
		ID:          301,
		Name:        "Infinity Rhinestones Bracelet",
		Price:       1400,
		Image:       "/images/products/infinity-bracelet.jpeg",
		Category:    domain.CategoryBracelets,
		Description: "A stunning infinity symbol bracelet adorned with sparkling rhinestones.",
		Stock:       10,
	},
	{
		ID:          302,
		Name:        "Clover Rhinestone Bracelet",
		Price:       1350,
		Image:       "/images/products/clover-rhinestone-bracelet.jpeg",
		Category:    domain.CategoryBracelets,
		Description: "A lucky four-leaf clover bracelet embellished with rhinestones.",
		Stock:       8,
	},
}

var categoryDisplayNames = map[string]string{
	"necklaces": "Necklaces",
	"earrings":  "Earrings",
	"bracelets": "Bracelets",
	"rings":     "Rings",
}

// AllProducts returns a copy of the full catalog.
func AllProducts() []domain.Product {
	products := make([]domain.Product, len(allProducts))
	copy(products, allProducts)
	return products
}

// ProductByID looks a product up by id. A missing id is a normal outcome and
// is reported through the second return value.
func ProductByID(id int) (domain.Product, bool) {
	for _, p := range allProducts {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// ProductsByCategory returns every product in the given category, matched
// case-insensitively. A category with no products yields an empty slice, not
// an error (the rings category is still "coming soon").
func ProductsByCategory(category string) []domain.Product {
	category = strings.ToLower(category)
	products := []domain.Product{}
	for _, p := range allProducts {
		if strings.ToLower(string(p.Category)) == category {
			products = append(products, p)
		}
	}
	return products
}

// Search returns products whose name, description or category contains the
// query, case-insensitively. An empty or whitespace-only query returns no
// products rather than the whole catalog.
func Search(query string) []domain.Product {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return []domain.Product{}
	}

	products := []domain.Product{}
	for _, p := range allProducts {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) ||
			strings.Contains(strings.ToLower(string(p.Category)), term) {
			products = append(products, p)
		}
	}
	return products
}

// CategoryDisplayName maps a category slug to its human-readable label.
// Unknown slugs pass through unchanged.
func CategoryDisplayName(category string) string {
	if name, ok := categoryDisplayNames[strings.ToLower(category)]; ok {
		return name
	}
	return category
}
