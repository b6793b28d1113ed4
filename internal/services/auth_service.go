package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"restaurant_api/internal/models"
	"restaurant_api/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenStore holds issued bearer tokens. Satisfied by the redis client.
type TokenStore interface {
	SetToken(token string, userID uint, ttl time.Duration) error
	GetToken(token string) (uint, error)
	DeleteToken(token string) error
}

type AuthService interface {
	Register(username, email, password string) (*models.User, error)
	Login(username, password string) (string, error)
	Logout(token string) error
	Authenticate(token string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenStore
	tokenTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenStore, tokenTTL time.Duration) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens, tokenTTL: tokenTTL}
}

func (s *authService) Register(username, email, password string) (*models.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: username or email already taken", ErrValidation)
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		return "", err
	}
	if err := s.tokens.SetToken(token, user.ID, s.tokenTTL); err != nil {
		return "", err
	}
	return token, nil
}

func (s *authService) Logout(token string) error {
	return s.tokens.DeleteToken(token)
}

// Authenticate resolves a bearer token to its user, roles loaded.
func (s *authService) Authenticate(token string) (*models.User, error) {
	userID, err := s.tokens.GetToken(token)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
