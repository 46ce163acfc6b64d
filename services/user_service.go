package services

import (
	"errors"

	"shop-api/models"
	"shop-api/repositories"

	"github.com/google/uuid"
)

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

func (s *UserService) CreateUser(req models.CreateUserRequest) (*models.UserResponse, error) {
	existing, err := s.userRepo.FindUserByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	user := models.NewUser(req.Email, req.FirstName, req.LastName, req.HashedPassword, req.ShippingAddress)
	saved, err := s.userRepo.SaveUser(user)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	resp := userToResponse(saved)
	return &resp, nil
}

func (s *UserService) GetUserByID(id uuid.UUID) (*models.UserResponse, error) {
	user, err := s.userRepo.FindUserByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	resp := userToResponse(*user)
	return &resp, nil
}

func (s *UserService) AddItemToCart(userID uuid.UUID, req models.AddToCartRequest) (*models.MessageResponse, error) {
	user, err := s.userRepo.FindUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	cartItem := models.CartItem{
		UserID:   userID,
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
	}
	if err := s.userRepo.AddCartItem(cartItem); err != nil {
		if errors.Is(err, repositories.ErrUserMissing) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &models.MessageResponse{Message: "Item added to cart successfully"}, nil
}

func (s *UserService) ListCartItems(userID uuid.UUID) ([]models.CartItemResponse, error) {
	cartItems, err := s.userRepo.FindCartItemsForUser(userID)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ErrCartEmpty
	}

	responses := make([]models.CartItemResponse, 0, len(cartItems))
	for _, ci := range cartItems {
		responses = append(responses, models.CartItemResponse{
			ItemID:   ci.ItemID,
			Quantity: ci.Quantity,
		})
	}
	return responses, nil
}

func userToResponse(user models.User) models.UserResponse {
	return models.UserResponse{
		ID:              user.ID,
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		ShippingAddress: user.ShippingAddress,
	}
}
