package repositories

import (
	"context"
	"errors"

	"shop-api/config"
	"shop-api/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SQLItemRepository struct{}

func NewSQLItemRepository() *SQLItemRepository {
	return &SQLItemRepository{}
}

func (r *SQLItemRepository) SaveItem(item models.Item) (models.Item, error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}

	query := `
		INSERT INTO items (id, name, description, price, quantity)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := config.DB.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.Price, item.Quantity,
	)
	if err != nil {
		return models.Item{}, translateError(err)
	}
	return item, nil
}

func (r *SQLItemRepository) FindItemByName(name string) (*models.Item, error) {
	query := `SELECT id, name, description, price, quantity FROM items WHERE name = $1`

	var item models.Item
	err := config.DB.QueryRow(context.Background(), query, name).Scan(
		&item.ID, &item.Name, &item.Description, &item.Price, &item.Quantity,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *SQLItemRepository) FindItemByID(id uuid.UUID) (*models.Item, error) {
	query := `SELECT id, name, description, price, quantity FROM items WHERE id = $1`

	var item models.Item
	err := config.DB.QueryRow(context.Background(), query, id).Scan(
		&item.ID, &item.Name, &item.Description, &item.Price, &item.Quantity,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *SQLItemRepository) GetAllItems() ([]models.Item, error) {
	query := `SELECT id, name, description, price, quantity FROM items`

	rows, err := config.DB.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
