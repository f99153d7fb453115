package domain

// CartItem is an entry in the shopping cart. Name, price, image and stock are
// copied from the product at add time and never refreshed against the catalog,
// so a cart keeps the prices the shopper saw. Stock is the quantity ceiling
// for this entry.
type CartItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
	Stock    int    `json:"stock"`
}

// LineTotal returns price * quantity for the entry.
func (i CartItem) LineTotal() int {
	return i.Price * i.Quantity
}
