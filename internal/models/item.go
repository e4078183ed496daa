package models

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/rogerio-castellano/shop-inventory/internal/catalog"
)

// Item represents one stocked record in the inventory.
type Item struct {
	ID       int              `json:"id"`
	Category catalog.Category `json:"category"`
	Name     string           `json:"name"`
	Price    float64          `json:"price"`
	Quantity int              `json:"quantity"`
}

// Validate checks the simple range/format constraints on an item.
// Quantity is intentionally unconstrained and may be negative.
func (i Item) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required),
		validation.Field(&i.Price, validation.Min(0.0)),
	)
}
