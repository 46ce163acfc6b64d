package models

import "github.com/google/uuid"

type CreateItemRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Quantity    *int     `json:"quantity" binding:"required,gte=0"`
}

type ItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
}

type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

type CreateUserRequest struct {
	Email           string  `json:"email" binding:"required,email"`
	FirstName       string  `json:"first_name" binding:"required"`
	LastName        string  `json:"last_name" binding:"required"`
	HashedPassword  string  `json:"hashed_password" binding:"required"`
	ShippingAddress *string `json:"shipping_address"`
}

// UserResponse deliberately carries no password field.
type UserResponse struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	ShippingAddress *string   `json:"shipping_address,omitempty"`
}

type AddToCartRequest struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,gt=0"`
}

type CartItemResponse struct {
	ItemID   uuid.UUID `json:"item_id"`
	Quantity int       `json:"quantity"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
