package service

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/pokedex-labs/pokedex-api/internal/database/models"
	"github.com/pokedex-labs/pokedex-api/internal/database/repository"
	"github.com/pokedex-labs/pokedex-api/internal/security"
)

// UserService defines the interface for user business logic
type UserService interface {
	Register(name, email, password string) (*models.User, error)
	GetUser(id uuid.UUID) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register hashes the password and persists the new user. The
// plaintext secret never reaches the repository.
func (s *userService) Register(name, email, password string) (*models.User, error) {
	s.logger.Info("📝 [UserService] Creating user", "email", email)

	hashedPassword, err := security.HashPassword(password)
	if err != nil {
		s.logger.Error("❌ [UserService] Failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		s.logger.Error("❌ [UserService] Failed to create user", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [UserService] User created", "user_id", user.ID)
	return user, nil
}

func (s *userService) GetUser(id uuid.UUID) (*models.User, error) {
	return s.userRepo.FindByID(id)
}
