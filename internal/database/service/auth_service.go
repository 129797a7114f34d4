package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pokedex-labs/pokedex-api/internal/config"
	"github.com/pokedex-labs/pokedex-api/internal/database/models"
	"github.com/pokedex-labs/pokedex-api/internal/database/repository"
	"github.com/pokedex-labs/pokedex-api/internal/security"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Login(email, password string) (*models.User, *AccessToken, error)
	ValidateAccessToken(tokenString string) (uuid.UUID, error)
	GetCurrentUser(tokenString string) (*models.User, error)
}

// AccessToken represents an issued bearer token
type AccessToken struct {
	Token     string
	ExpiresIn int64
}

type authService struct {
	userRepo  repository.UserRepository
	jwtSecret string
	cfg       *config.Config
	logger    *slog.Logger
}

// NewAuthService creates a new authentication service instance
func NewAuthService(userRepo repository.UserRepository, cfg *config.Config, logger *slog.Logger) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: cfg.JWTSecret,
		cfg:       cfg,
		logger:    logger,
	}
}

func (s *authService) Login(email, password string) (*models.User, *AccessToken, error) {
	s.logger.Info("🔐 [AuthService] Login attempt", "email", email)

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Warn("⚠️ [AuthService] User not found", "email", email)
			return nil, nil, ErrInvalidCredentials
		}
		s.logger.Error("❌ [AuthService] Database error", "error", err)
		return nil, nil, err
	}

	if !security.CheckPassword(user.Password, password) {
		s.logger.Warn("⚠️ [AuthService] Invalid password", "email", email)
		return nil, nil, ErrInvalidCredentials
	}

	token, err := s.generateAccessToken(user.ID)
	if err != nil {
		s.logger.Error("❌ [AuthService] Failed to generate token", "error", err)
		return nil, nil, err
	}

	s.logger.Info("✅ [AuthService] User logged in successfully", "user_id", user.ID)
	return user, &AccessToken{Token: token, ExpiresIn: s.cfg.AccessTokenExpiration}, nil
}

// ValidateAccessToken checks the token signature and expiry and
// returns the subject user id.
func (s *authService) ValidateAccessToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}

	subject, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return userID, nil
}

// GetCurrentUser resolves a bearer token to an existing user. A token
// whose subject no longer exists is treated as invalid.
func (s *authService) GetCurrentUser(tokenString string) (*models.User, error) {
	userID, err := s.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	return user, nil
}

func (s *authService) generateAccessToken(userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"type":    "access",
		"exp":     time.Now().Add(time.Duration(s.cfg.AccessTokenExpiration) * time.Second).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// Service errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
