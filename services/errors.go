package services

import "errors"

// The services layer is the single place repository outcomes become named
// business errors; controllers map these onto HTTP status codes.
var (
	ErrItemExists   = errors.New("item with this name already exists")
	ErrUserExists   = errors.New("user with this email already exists")
	ErrUserNotFound = errors.New("user not found")
	// ErrCartEmpty covers both an empty cart and a missing user; the two are
	// deliberately not distinguished. See DESIGN.md.
	ErrCartEmpty = errors.New("cart is empty or user not found")
)
