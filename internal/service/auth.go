package service

import (
	"errors"
	"fmt"

	"github.com/accrypt/accrypt-go/internal/crypto"
	"github.com/accrypt/accrypt-go/internal/model"
	"github.com/accrypt/accrypt-go/internal/repository"
)

var (
	ErrMissingRegisterFields = errors.New("missing username, password, or email")
	ErrMissingLoginFields    = errors.New("missing username or password")
	ErrUserExists            = errors.New("user already exists")
	ErrInvalidCredentials    = errors.New("invalid username or password")
)

// AuthService handles registration and login business logic.
type AuthService struct {
	store *repository.UserStore
}

// NewAuthService creates a new AuthService backed by the given store.
func NewAuthService(store *repository.UserStore) *AuthService {
	return &AuthService{store: store}
}

// Register creates a new user account, storing a salted digest of the
// password instead of the plaintext.
func (s *AuthService) Register(req model.RegisterRequest) error {
	if req.Username == "" || req.Password == "" || req.Email == "" {
		return ErrMissingRegisterFields
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.store.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return ErrUserExists
		}
		return err
	}

	return nil
}

// Login verifies a username/password pair. An unknown username and a
// wrong password both return ErrInvalidCredentials so the caller cannot
// tell which part failed.
func (s *AuthService) Login(req model.LoginRequest) error {
	if req.Username == "" || req.Password == "" {
		return ErrMissingLoginFields
	}

	user, err := s.store.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return err
	}
	if !match {
		return ErrInvalidCredentials
	}

	return nil
}

// Seed inserts an account directly, for the startup demonstration user.
// Duplicate seeds are ignored.
func (s *AuthService) Seed(username, password, email string) error {
	err := s.Register(model.RegisterRequest{Username: username, Password: password, Email: email})
	if errors.Is(err, ErrUserExists) {
		return nil
	}
	return err
}
