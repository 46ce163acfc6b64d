package services

import (
	"encoding/json"
	"testing"

	"shop-api/models"
	"shop-api/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	repositories.ResetUserStorage()
	return NewUserService(repositories.NewMemoryUserRepository())
}

func userRequest(email string) models.CreateUserRequest {
	address := "123 Main St"
	return models.CreateUserRequest{
		Email:           email,
		FirstName:       "Test",
		LastName:        "User",
		HashedPassword:  "hashedpassword123",
		ShippingAddress: &address,
	}
}

func TestCreateUser(t *testing.T) {
	svc := newUserService(t)

	resp, err := svc.CreateUser(userRequest("test@example.com"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, "test@example.com", resp.Email)
	assert.Equal(t, "Test", resp.FirstName)
	assert.Equal(t, "User", resp.LastName)
	require.NotNil(t, resp.ShippingAddress)
	assert.Equal(t, "123 Main St", *resp.ShippingAddress)
}

func TestCreateUser_ResponseNeverCarriesPassword(t *testing.T) {
	svc := newUserService(t)

	resp, err := svc.CreateUser(userRequest("secret@example.com"))
	require.NoError(t, err)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "password")
	assert.NotContains(t, string(body), "hashedpassword123")
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.CreateUser(userRequest("dup@example.com"))
	require.NoError(t, err)

	_, err = svc.CreateUser(userRequest("dup@example.com"))
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestGetUserByID(t *testing.T) {
	svc := newUserService(t)

	created, err := svc.CreateUser(userRequest("find@example.com"))
	require.NoError(t, err)

	found, err := svc.GetUserByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, found.Email)

	_, err = svc.GetUserByID(uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddItemToCart_UserMissing(t *testing.T) {
	repositories.ResetUserStorage()
	repo := repositories.NewMemoryUserRepository()
	svc := NewUserService(repo)

	missingID := uuid.New()
	_, err := svc.AddItemToCart(missingID, models.AddToCartRequest{ItemID: uuid.New(), Quantity: 1})
	assert.ErrorIs(t, err, ErrUserNotFound)

	cartItems, err := repo.FindCartItemsForUser(missingID)
	require.NoError(t, err)
	assert.Empty(t, cartItems)
}

func TestAddItemToCart_AccumulatesQuantity(t *testing.T) {
	svc := newUserService(t)

	user, err := svc.CreateUser(userRequest("cart@example.com"))
	require.NoError(t, err)

	itemID := uuid.New()
	_, err = svc.AddItemToCart(user.ID, models.AddToCartRequest{ItemID: itemID, Quantity: 2})
	require.NoError(t, err)
	_, err = svc.AddItemToCart(user.ID, models.AddToCartRequest{ItemID: itemID, Quantity: 3})
	require.NoError(t, err)

	cartItems, err := svc.ListCartItems(user.ID)
	require.NoError(t, err)
	require.Len(t, cartItems, 1)
	assert.Equal(t, itemID, cartItems[0].ItemID)
	assert.Equal(t, 5, cartItems[0].Quantity)
}

func TestListCartItems_EmptyCartIsNotFound(t *testing.T) {
	svc := newUserService(t)

	user, err := svc.CreateUser(userRequest("empty@example.com"))
	require.NoError(t, err)

	// Empty cart and missing user produce the same outcome on purpose.
	_, err = svc.ListCartItems(user.ID)
	assert.ErrorIs(t, err, ErrCartEmpty)

	_, err = svc.ListCartItems(uuid.New())
	assert.ErrorIs(t, err, ErrCartEmpty)
}
