package models

import "github.com/google/uuid"

type User struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	HashedPassword  string    `json:"-"`
	ShippingAddress *string   `json:"shipping_address,omitempty"`
}

// CartItem is identified by its (UserID, ItemID) pair; there is at most one
// row per pair and quantity accumulates on repeated adds.
type CartItem struct {
	UserID   uuid.UUID `json:"user_id"`
	ItemID   uuid.UUID `json:"item_id"`
	Quantity int       `json:"quantity"`
}

// NewUser builds a User with a freshly generated identifier. The password is
// stored verbatim; hashing is the caller's responsibility.
func NewUser(email, firstName, lastName, hashedPassword string, shippingAddress *string) User {
	return User{
		ID:              uuid.New(),
		Email:           email,
		FirstName:       firstName,
		LastName:        lastName,
		HashedPassword:  hashedPassword,
		ShippingAddress: shippingAddress,
	}
}
