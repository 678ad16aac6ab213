package service

import (
	"errors"
	"testing"

	"github.com/accrypt/accrypt-go/internal/model"
	"github.com/accrypt/accrypt-go/internal/repository"
)

func newTestAuthService() *AuthService {
	return NewAuthService(repository.NewUserStore())
}

func TestRegisterMissingFields(t *testing.T) {
	svc := newTestAuthService()

	for _, req := range []model.RegisterRequest{
		{Username: "", Password: "pw", Email: "a@b.c"},
		{Username: "u", Password: "", Email: "a@b.c"},
		{Username: "u", Password: "pw", Email: ""},
		{},
	} {
		if err := svc.Register(req); !errors.Is(err, ErrMissingRegisterFields) {
			t.Errorf("Register(%+v) error = %v, want ErrMissingRegisterFields", req, err)
		}
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestAuthService()

	err := svc.Register(model.RegisterRequest{Username: "alice", Password: "s3cret", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	if err := svc.Login(model.LoginRequest{Username: "alice", Password: "s3cret"}); err != nil {
		t.Errorf("Login() unexpected error: %v", err)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	svc := newTestAuthService()

	req := model.RegisterRequest{Username: "bob", Password: "pw", Email: "bob@example.com"}
	if err := svc.Register(req); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if err := svc.Register(req); !errors.Is(err, ErrUserExists) {
		t.Errorf("Register() duplicate error = %v, want ErrUserExists", err)
	}
}

func TestRegisterStoresDigestNotPlaintext(t *testing.T) {
	store := repository.NewUserStore()
	svc := NewAuthService(store)

	if err := svc.Register(model.RegisterRequest{Username: "carol", Password: "plaintext", Email: "c@d.e"}); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	user, err := store.GetByUsername("carol")
	if err != nil {
		t.Fatalf("GetByUsername() unexpected error: %v", err)
	}
	if user.PasswordHash == "plaintext" || user.PasswordHash == "" {
		t.Errorf("stored hash %q must be a non-empty digest, not the plaintext", user.PasswordHash)
	}
}

func TestLoginMissingFields(t *testing.T) {
	svc := newTestAuthService()

	for _, req := range []model.LoginRequest{
		{Username: "", Password: "pw"},
		{Username: "u", Password: ""},
		{},
	} {
		if err := svc.Login(req); !errors.Is(err, ErrMissingLoginFields) {
			t.Errorf("Login(%+v) error = %v, want ErrMissingLoginFields", req, err)
		}
	}
}

// Unknown users and wrong passwords must be indistinguishable.
func TestLoginFailuresIndistinguishable(t *testing.T) {
	svc := newTestAuthService()

	if err := svc.Register(model.RegisterRequest{Username: "dave", Password: "right", Email: "d@e.f"}); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	unknownErr := svc.Login(model.LoginRequest{Username: "nobody", Password: "whatever"})
	wrongPwErr := svc.Login(model.LoginRequest{Username: "dave", Password: "wrong"})

	if !errors.Is(unknownErr, ErrInvalidCredentials) {
		t.Errorf("Login(unknown user) error = %v, want ErrInvalidCredentials", unknownErr)
	}
	if !errors.Is(wrongPwErr, ErrInvalidCredentials) {
		t.Errorf("Login(wrong password) error = %v, want ErrInvalidCredentials", wrongPwErr)
	}
	if unknownErr.Error() != wrongPwErr.Error() {
		t.Error("unknown-user and wrong-password errors must be identical")
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	svc := newTestAuthService()

	if err := svc.Seed("demo", "pw", "demo@example.com"); err != nil {
		t.Fatalf("Seed() unexpected error: %v", err)
	}
	if err := svc.Seed("demo", "pw", "demo@example.com"); err != nil {
		t.Errorf("Seed() repeat error = %v, want nil", err)
	}
}
