package repositories

import (
	"context"
	"errors"

	"shop-api/config"
	"shop-api/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type SQLUserRepository struct{}

func NewSQLUserRepository() *SQLUserRepository {
	return &SQLUserRepository{}
}

func (r *SQLUserRepository) SaveUser(user models.User) (models.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	query := `
		INSERT INTO users (id, email, first_name, last_name, hashed_password, shipping_address)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := config.DB.Exec(context.Background(), query,
		user.ID, user.Email, user.FirstName, user.LastName, user.HashedPassword, user.ShippingAddress,
	)
	if err != nil {
		return models.User{}, translateError(err)
	}
	return user, nil
}

func (r *SQLUserRepository) FindUserByID(id uuid.UUID) (*models.User, error) {
	query := `SELECT id, email, first_name, last_name, hashed_password, shipping_address
	          FROM users WHERE id = $1`

	var user models.User
	err := config.DB.QueryRow(context.Background(), query, id).Scan(
		&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.HashedPassword, &user.ShippingAddress,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *SQLUserRepository) FindUserByEmail(email string) (*models.User, error) {
	query := `SELECT id, email, first_name, last_name, hashed_password, shipping_address
	          FROM users WHERE email = $1`

	var user models.User
	err := config.DB.QueryRow(context.Background(), query, email).Scan(
		&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.HashedPassword, &user.ShippingAddress,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *SQLUserRepository) GetAllUsers() ([]models.User, error) {
	query := `SELECT id, email, first_name, last_name, hashed_password, shipping_address FROM users`

	rows, err := config.DB.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.HashedPassword, &user.ShippingAddress); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// AddCartItem upserts on the (user_id, item_id) primary key so a repeated add
// accumulates quantity instead of inserting a duplicate row. A missing user
// trips the foreign key and comes back as ErrUserMissing.
func (r *SQLUserRepository) AddCartItem(cartItem models.CartItem) error {
	query := `
		INSERT INTO cart_items (user_id, item_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, item_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
	`
	_, err := config.DB.Exec(context.Background(), query,
		cartItem.UserID, cartItem.ItemID, cartItem.Quantity,
	)
	if err != nil {
		return translateError(err)
	}
	return nil
}

func (r *SQLUserRepository) FindCartItemsForUser(userID uuid.UUID) ([]models.CartItem, error) {
	query := `SELECT user_id, item_id, quantity FROM cart_items WHERE user_id = $1`

	rows, err := config.DB.Query(context.Background(), query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cartItems := []models.CartItem{}
	for rows.Next() {
		var ci models.CartItem
		if err := rows.Scan(&ci.UserID, &ci.ItemID, &ci.Quantity); err != nil {
			return nil, err
		}
		cartItems = append(cartItems, ci)
	}
	return cartItems, rows.Err()
}

// translateError maps postgres constraint violations onto the storage errors
// the services layer knows how to interpret.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return ErrDuplicateKey
		case "23503":
			return ErrUserMissing
		}
	}
	return err
}
