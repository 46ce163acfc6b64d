package services

import (
	"errors"

	"shop-api/models"
	"shop-api/repositories"
)

type ItemService struct {
	itemRepo repositories.ItemRepository
}

func NewItemService(itemRepo repositories.ItemRepository) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
	}
}

func (s *ItemService) CreateItem(req models.CreateItemRequest) (*models.ItemResponse, error) {
	existing, err := s.itemRepo.FindItemByName(req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrItemExists
	}

	item := models.NewItem(req.Name, req.Description, *req.Price, *req.Quantity)
	saved, err := s.itemRepo.SaveItem(item)
	if err != nil {
		// The schema's unique constraint can still fire when two creates
		// race past the pre-check; same outcome either way.
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrItemExists
		}
		return nil, err
	}

	resp := itemToResponse(saved)
	return &resp, nil
}

func (s *ItemService) ListItems() (*models.ListItemsResponse, error) {
	items, err := s.itemRepo.GetAllItems()
	if err != nil {
		return nil, err
	}

	responses := make([]models.ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, itemToResponse(item))
	}
	return &models.ListItemsResponse{Items: responses}, nil
}

func itemToResponse(item models.Item) models.ItemResponse {
	return models.ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Quantity:    item.Quantity,
	}
}
