package repositories

import (
	"sync"

	"shop-api/models"

	"github.com/google/uuid"
)

// Item storage is shared across every MemoryItemRepository instance for the
// lifetime of the process, not scoped per instance. The mutex keeps map
// access safe; it does not make a caller's check-then-save sequence atomic,
// so two concurrent creates with the same name can both pass the existence
// check. Known gap, accepted for the no-database mode.
var (
	itemMu      sync.RWMutex
	itemStorage = make(map[uuid.UUID]models.Item)
	// itemOrder preserves insertion order for listings.
	itemOrder []uuid.UUID
)

// ResetItemStorage clears the shared item storage. Tests use it between cases.
func ResetItemStorage() {
	itemMu.Lock()
	defer itemMu.Unlock()
	itemStorage = make(map[uuid.UUID]models.Item)
	itemOrder = nil
}

type MemoryItemRepository struct{}

func NewMemoryItemRepository() *MemoryItemRepository {
	return &MemoryItemRepository{}
}

func (r *MemoryItemRepository) SaveItem(item models.Item) (models.Item, error) {
	itemMu.Lock()
	defer itemMu.Unlock()

	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if _, exists := itemStorage[item.ID]; !exists {
		itemOrder = append(itemOrder, item.ID)
	}
	itemStorage[item.ID] = item
	return item, nil
}

func (r *MemoryItemRepository) FindItemByName(name string) (*models.Item, error) {
	itemMu.RLock()
	defer itemMu.RUnlock()

	for _, item := range itemStorage {
		if item.Name == name {
			found := item
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryItemRepository) FindItemByID(id uuid.UUID) (*models.Item, error) {
	itemMu.RLock()
	defer itemMu.RUnlock()

	if item, ok := itemStorage[id]; ok {
		found := item
		return &found, nil
	}
	return nil, nil
}

func (r *MemoryItemRepository) GetAllItems() ([]models.Item, error) {
	itemMu.RLock()
	defer itemMu.RUnlock()

	items := make([]models.Item, 0, len(itemOrder))
	for _, id := range itemOrder {
		items = append(items, itemStorage[id])
	}
	return items, nil
}
