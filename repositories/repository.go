package repositories

import (
	"errors"
	"fmt"

	"shop-api/models"

	"github.com/google/uuid"
)

// Storage-level failures. Business-rule errors are raised by the services
// layer, never here.
var (
	ErrDuplicateKey = errors.New("duplicate key")
	ErrUserMissing  = errors.New("user does not exist")
)

type ItemRepository interface {
	SaveItem(item models.Item) (models.Item, error)
	FindItemByName(name string) (*models.Item, error)
	FindItemByID(id uuid.UUID) (*models.Item, error)
	GetAllItems() ([]models.Item, error)
}

type UserRepository interface {
	SaveUser(user models.User) (models.User, error)
	FindUserByID(id uuid.UUID) (*models.User, error)
	FindUserByEmail(email string) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	AddCartItem(cartItem models.CartItem) error
	FindCartItemsForUser(userID uuid.UUID) ([]models.CartItem, error)
}

// New resolves a repository mode to a pair of implementations. The set of
// modes is closed; an unrecognized value is a configuration error.
func New(mode string) (ItemRepository, UserRepository, error) {
	switch mode {
	case "memory":
		return NewMemoryItemRepository(), NewMemoryUserRepository(), nil
	case "sql":
		return NewSQLItemRepository(), NewSQLUserRepository(), nil
	default:
		return nil, nil, fmt.Errorf("unknown repository mode: %q", mode)
	}
}
