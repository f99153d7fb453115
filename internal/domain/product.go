package domain

// Category is a product category slug.
type Category string

const (
	CategoryNecklaces Category = "necklaces"
	CategoryEarrings  Category = "earrings"
	CategoryBracelets Category = "bracelets"
	CategoryRings     Category = "rings"
)

// Product represents a product in the static catalog. Prices are in whole
// rupees; products are defined once and never mutated at runtime.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	Image       string   `json:"image"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Stock       int      `json:"stock"`
}
