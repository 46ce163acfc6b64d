package repositories

import (
	"testing"

	"shop-api/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(email string) models.User {
	return models.NewUser(email, "Test", "User", "hashedpassword123", nil)
}

func TestMemoryUserRepository_SaveAndFind(t *testing.T) {
	ResetUserStorage()
	repo := NewMemoryUserRepository()

	saved, err := repo.SaveUser(newTestUser("a@example.com"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.ID)

	byID, err := repo.FindUserByID(saved.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "a@example.com", byID.Email)

	byEmail, err := repo.FindUserByEmail("a@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, saved.ID, byEmail.ID)

	missing, err := repo.FindUserByEmail("b@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	all, err := repo.GetAllUsers()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemoryUserRepository_AddCartItemRequiresUser(t *testing.T) {
	ResetUserStorage()
	repo := NewMemoryUserRepository()

	err := repo.AddCartItem(models.CartItem{
		UserID:   uuid.New(),
		ItemID:   uuid.New(),
		Quantity: 1,
	})
	assert.ErrorIs(t, err, ErrUserMissing)
}

func TestMemoryUserRepository_AddCartItemAccumulates(t *testing.T) {
	ResetUserStorage()
	repo := NewMemoryUserRepository()

	user, err := repo.SaveUser(newTestUser("cart@example.com"))
	require.NoError(t, err)

	itemID := uuid.New()
	require.NoError(t, repo.AddCartItem(models.CartItem{UserID: user.ID, ItemID: itemID, Quantity: 2}))
	require.NoError(t, repo.AddCartItem(models.CartItem{UserID: user.ID, ItemID: itemID, Quantity: 3}))

	cartItems, err := repo.FindCartItemsForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, cartItems, 1)
	assert.Equal(t, 5, cartItems[0].Quantity)
}

func TestMemoryUserRepository_DistinctItemsGetDistinctRows(t *testing.T) {
	ResetUserStorage()
	repo := NewMemoryUserRepository()

	user, err := repo.SaveUser(newTestUser("rows@example.com"))
	require.NoError(t, err)

	require.NoError(t, repo.AddCartItem(models.CartItem{UserID: user.ID, ItemID: uuid.New(), Quantity: 1}))
	require.NoError(t, repo.AddCartItem(models.CartItem{UserID: user.ID, ItemID: uuid.New(), Quantity: 1}))

	cartItems, err := repo.FindCartItemsForUser(user.ID)
	require.NoError(t, err)
	assert.Len(t, cartItems, 2)
}

func TestMemoryUserRepository_EmptyCartIsNotAnError(t *testing.T) {
	ResetUserStorage()
	repo := NewMemoryUserRepository()

	// Missing user and empty cart look the same at this layer.
	cartItems, err := repo.FindCartItemsForUser(uuid.New())
	require.NoError(t, err)
	assert.Empty(t, cartItems)
}
