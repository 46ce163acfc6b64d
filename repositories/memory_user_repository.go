package repositories

import (
	"sync"

	"shop-api/models"

	"github.com/google/uuid"
)

// User and cart storage is shared across every MemoryUserRepository instance
// for the lifetime of the process, same as item storage.
var (
	userMu          sync.RWMutex
	userStorage     = make(map[uuid.UUID]models.User)
	userOrder       []uuid.UUID
	cartItemStorage = make(map[uuid.UUID][]models.CartItem)
)

// ResetUserStorage clears the shared user and cart storage. Tests use it
// between cases.
func ResetUserStorage() {
	userMu.Lock()
	defer userMu.Unlock()
	userStorage = make(map[uuid.UUID]models.User)
	userOrder = nil
	cartItemStorage = make(map[uuid.UUID][]models.CartItem)
}

type MemoryUserRepository struct{}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{}
}

func (r *MemoryUserRepository) SaveUser(user models.User) (models.User, error) {
	userMu.Lock()
	defer userMu.Unlock()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if _, exists := userStorage[user.ID]; !exists {
		userOrder = append(userOrder, user.ID)
	}
	userStorage[user.ID] = user
	return user, nil
}

func (r *MemoryUserRepository) FindUserByID(id uuid.UUID) (*models.User, error) {
	userMu.RLock()
	defer userMu.RUnlock()

	if user, ok := userStorage[id]; ok {
		found := user
		return &found, nil
	}
	return nil, nil
}

func (r *MemoryUserRepository) FindUserByEmail(email string) (*models.User, error) {
	userMu.RLock()
	defer userMu.RUnlock()

	for _, user := range userStorage {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) GetAllUsers() ([]models.User, error) {
	userMu.RLock()
	defer userMu.RUnlock()

	users := make([]models.User, 0, len(userOrder))
	for _, id := range userOrder {
		users = append(users, userStorage[id])
	}
	return users, nil
}

// AddCartItem inserts a cart row, or accumulates quantity when the (user,
// item) pair already has one.
func (r *MemoryUserRepository) AddCartItem(cartItem models.CartItem) error {
	userMu.Lock()
	defer userMu.Unlock()

	if _, ok := userStorage[cartItem.UserID]; !ok {
		return ErrUserMissing
	}

	existing := cartItemStorage[cartItem.UserID]
	for i, ci := range existing {
		if ci.ItemID == cartItem.ItemID {
			existing[i].Quantity += cartItem.Quantity
			return nil
		}
	}
	cartItemStorage[cartItem.UserID] = append(existing, cartItem)
	return nil
}

func (r *MemoryUserRepository) FindCartItemsForUser(userID uuid.UUID) ([]models.CartItem, error) {
	userMu.RLock()
	defer userMu.RUnlock()

	stored := cartItemStorage[userID]
	cartItems := make([]models.CartItem, len(stored))
	copy(cartItems, stored)
	return cartItems, nil
}
