package services

import (
	"fmt"
	"testing"

	"shop-api/models"
	"shop-api/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItemService(t *testing.T) *ItemService {
	t.Helper()
	repositories.ResetItemStorage()
	return NewItemService(repositories.NewMemoryItemRepository())
}

func itemRequest(name string, price float64, quantity int) models.CreateItemRequest {
	return models.CreateItemRequest{
		Name:        name,
		Description: "Test Desc",
		Price:       &price,
		Quantity:    &quantity,
	}
}

func TestCreateItem(t *testing.T) {
	svc := newItemService(t)

	resp, err := svc.CreateItem(itemRequest("Test Item", 10.5, 100))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, "Test Item", resp.Name)
	assert.Equal(t, 10.5, resp.Price)
	assert.Equal(t, 100, resp.Quantity)
}

func TestCreateItem_DuplicateName(t *testing.T) {
	svc := newItemService(t)

	_, err := svc.CreateItem(itemRequest("Test Item", 10.5, 100))
	require.NoError(t, err)

	_, err = svc.CreateItem(itemRequest("Test Item", 1.0, 1))
	assert.ErrorIs(t, err, ErrItemExists)

	// The failed create must not have written anything.
	list, err := svc.ListItems()
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
}

func TestCreateItem_IdentifiersAreUniqueAndStable(t *testing.T) {
	repositories.ResetItemStorage()
	repo := repositories.NewMemoryItemRepository()
	svc := NewItemService(repo)

	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 10; i++ {
		resp, err := svc.CreateItem(itemRequest(fmt.Sprintf("Item %d", i), 1.0, 1))
		require.NoError(t, err)
		assert.False(t, seen[resp.ID], "identifier reused")
		seen[resp.ID] = true

		found, err := repo.FindItemByID(resp.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, resp.ID, found.ID)
	}
}

func TestListItems(t *testing.T) {
	svc := newItemService(t)

	for i := 0; i < 3; i++ {
		_, err := svc.CreateItem(itemRequest(fmt.Sprintf("Item %d", i), float64(i)+0.5, i+1))
		require.NoError(t, err)
	}

	list, err := svc.ListItems()
	require.NoError(t, err)
	require.Len(t, list.Items, 3)
	for i, item := range list.Items {
		assert.Equal(t, fmt.Sprintf("Item %d", i), item.Name)
		assert.Equal(t, float64(i)+0.5, item.Price)
		assert.Equal(t, i+1, item.Quantity)
	}
}
