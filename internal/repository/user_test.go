package repository

import (
	"errors"
	"sync"
	"testing"

	"github.com/accrypt/accrypt-go/internal/model"
)

func TestCreateAndGet(t *testing.T) {
	store := NewUserStore()

	user := &model.User{Username: "alice", Email: "alice@example.com", PasswordHash: "digest"}
	if err := store.Create(user); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	got, err := store.GetByUsername("alice")
	if err != nil {
		t.Fatalf("GetByUsername() unexpected error: %v", err)
	}
	if got.Email != "alice@example.com" || got.PasswordHash != "digest" {
		t.Errorf("GetByUsername() = %+v, want stored fields back", got)
	}
}

func TestGetUnknownUser(t *testing.T) {
	store := NewUserStore()

	_, err := store.GetByUsername("nobody")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetByUsername() error = %v, want ErrUserNotFound", err)
	}
}

func TestCreateDuplicate(t *testing.T) {
	store := NewUserStore()

	if err := store.Create(&model.User{Username: "bob"}); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	err := store.Create(&model.User{Username: "bob"})
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Errorf("Create() duplicate error = %v, want ErrDuplicateUsername", err)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	store := NewUserStore()
	if err := store.Create(&model.User{Username: "carol", Email: "carol@example.com"}); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	first, _ := store.GetByUsername("carol")
	first.Email = "mutated@example.com"

	second, _ := store.GetByUsername("carol")
	if second.Email != "carol@example.com" {
		t.Error("GetByUsername() leaked shared memory: mutation visible across calls")
	}
}

// Concurrent registrations of the same username must admit exactly one.
func TestConcurrentCreateSameUsername(t *testing.T) {
	store := NewUserStore()

	const attempts = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	var successes, duplicates int

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.Create(&model.User{Username: "raced"})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrDuplicateUsername):
				duplicates++
			default:
				t.Errorf("Create() unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if successes != 1 {
		t.Errorf("expected exactly 1 successful insert, got %d", successes)
	}
	if duplicates != attempts-1 {
		t.Errorf("expected %d duplicate errors, got %d", attempts-1, duplicates)
	}
	if store.Count() != 1 {
		t.Errorf("Count() = %d, want 1", store.Count())
	}
}
