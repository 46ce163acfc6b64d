package models

import "github.com/google/uuid"

type Item struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
}

// NewItem builds an Item with a freshly generated identifier. IDs are never
// reassigned after creation.
func NewItem(name, description string, price float64, quantity int) Item {
	return Item{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
	}
}
