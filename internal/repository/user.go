package repository

import (
	"errors"
	"sync"

	"github.com/accrypt/accrypt-go/internal/model"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserStore holds user accounts in memory for the process lifetime.
// It is safe for concurrent use; the mutex guards the check-then-insert
// in Create so two registrations of the same username cannot both win.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]model.User
}

// NewUserStore creates an empty in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]model.User)}
}

// Create inserts a new user. Returns ErrDuplicateUsername when the
// username is already taken.
func (s *UserStore) Create(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Username]; exists {
		return ErrDuplicateUsername
	}

	s.users[user.Username] = *user
	return nil
}

// GetByUsername retrieves a user by username. Returns ErrUserNotFound
// when no such user exists.
func (s *UserStore) GetByUsername(username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}

	return &user, nil
}

// Count returns the number of stored users.
func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
