package models

import "github.com/mvsaqua/aquastore-backend/pkg/enums"

// Product is a catalog entry. JSON field names match the persisted document
// layout, which predates this service.
type Product struct {
	ID          string  `json:"id"`
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	Stock       int     `json:"stock"`
	// Weight is in kilograms. Zero means unset; checkout substitutes the
	// 0.1 kg default.
	Weight   float64 `json:"weight"`
	Option   string  `json:"option,omitempty"`
	Featured bool    `json:"featured,omitempty"`
}

// CartItem is a product line with a quantity in [1, 50]. The embedded
// product is a snapshot, so it flattens into the same JSON shape the cart
// key has always stored.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Order is an immutable checkout record. Items are snapshots decoupled from
// the live catalog; later product edits or deletes never reach back into an
// order.
type Order struct {
	ID              string            `json:"id"`
	Date            string            `json:"date"`
	CustomerName    string            `json:"customerName"`
	CustomerEmail   string            `json:"customerEmail"`
	CustomerAddress string            `json:"customerAddress"`
	Items           []CartItem        `json:"items"`
	Subtotal        float64           `json:"subtotal"`
	ShippingCharge  float64           `json:"shippingCharge"`
	TotalWeight     float64           `json:"totalWeight"`
	Tax             float64           `json:"tax"`
	Total           float64           `json:"total"`
	Status          enums.OrderStatus `json:"status"`
}

// User is the signed-in identity persisted under its own key.
type User struct {
	UID   string     `json:"uid"`
	Email string     `json:"email"`
	Role  enums.Role `json:"role"`
}
