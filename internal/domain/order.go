package domain

import "time"

// OrderStatus is the fulfillment state of an order. Orders are always created
// as processing.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// ShippingDetails is the checkout form snapshot frozen into an order. Orders
// are associated with users by shipping email, not by a foreign key.
type ShippingDetails struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
}

// Order is an immutable record of a completed checkout. ID and OrderNumber
// carry the same generated "FF-NNNNNN" value.
type Order struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	Date            time.Time       `json:"date"`
	OrderDate       time.Time       `json:"orderDate"`
	Items           []CartItem      `json:"items"`
	Subtotal        int             `json:"subtotal"`
	DeliveryCost    int             `json:"deliveryCost"`
	Total           int             `json:"total"`
	Status          OrderStatus     `json:"status"`
	ShippingDetails ShippingDetails `json:"shippingDetails"`
}
