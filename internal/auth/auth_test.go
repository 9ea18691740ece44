package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/robalobadob/kelime/internal/db"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	sqlDB, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("db.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := db.Migrate(sqlDB); err != nil {
		t.Fatalf("db.Migrate() error = %v", err)
	}
	return NewService(sqlDB, "test-secret", time.Hour).WithCost(bcrypt.MinCost)
}

func TestService_SignupLogin(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	u, err := s.Signup(ctx, "  oyuncu_1 ", "parola123")
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if u.Username != "oyuncu_1" || u.ID == "" {
		t.Errorf("Signup() = %+v", u)
	}

	got, err := s.Login(ctx, "OYUNCU_1", "parola123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("Login() ID = %q, want %q", got.ID, u.ID)
	}

	if _, err := s.Login(ctx, "oyuncu_1", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login(wrong password) error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := s.Login(ctx, "nobody", "parola123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login(unknown) error = %v, want ErrInvalidCredentials", err)
	}

	byID, err := s.FindByID(ctx, u.ID)
	if err != nil || byID.Username != "oyuncu_1" {
		t.Errorf("FindByID() = %+v, %v", byID, err)
	}
	if _, err := s.FindByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID(missing) error = %v, want ErrNotFound", err)
	}
}

func TestService_SignupValidation(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	if _, err := s.Signup(ctx, "taken", "parola123"); err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "short username", username: "ab", password: "parola123", wantErr: ErrInvalidSignup},
		{name: "bad characters", username: "çağrı", password: "parola123", wantErr: ErrInvalidSignup},
		{name: "short password", username: "player", password: "kisa", wantErr: ErrInvalidSignup},
		{name: "duplicate, other case", username: "TAKEN", password: "parola123", wantErr: ErrUsernameTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Signup(ctx, tt.username, tt.password); !errors.Is(err, tt.wantErr) {
				t.Errorf("Signup() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestService_Tokens(t *testing.T) {
	s := newTestService(t)
	u := &User{ID: "id-1", Username: "ada"}

	tok, exp, err := s.SignToken(u)
	if err != nil {
		t.Fatalf("SignToken() error = %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Errorf("expiry %v is not in the future", exp)
	}

	c, err := s.ParseToken(tok)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if c.ID != "id-1" || c.Username != "ada" {
		t.Errorf("ParseToken() = %+v", c)
	}

	other := NewService(nil, "other-secret", time.Hour)
	if _, err := other.ParseToken(tok); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ParseToken(wrong secret) error = %v, want ErrInvalidToken", err)
	}

	expired := NewService(nil, "test-secret", -time.Minute)
	old, _, _ := expired.SignToken(u)
	if _, err := s.ParseToken(old); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ParseToken(expired) error = %v, want ErrInvalidToken", err)
	}

	if _, err := s.ParseToken("garbage"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ParseToken(garbage) error = %v, want ErrInvalidToken", err)
	}
}
