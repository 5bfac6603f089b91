package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/platformly/admin-api/internal/core/domain"
)

type stubTenantRepo struct {
	tenants map[string]*domain.Tenant
	err     error
}

func newStubTenantRepo(ids ...string) *stubTenantRepo {
	r := &stubTenantRepo{tenants: make(map[string]*domain.Tenant)}
	for _, id := range ids {
		r.tenants[id] = &domain.Tenant{ID: id, Name: "tenant " + id, Active: true}
	}
	return r
}

func (r *stubTenantRepo) FindByID(_ context.Context, id string) (*domain.Tenant, error) {
	if r.err != nil {
		return nil, r.err
	}
	t, ok := r.tenants[id]
	if !ok {
		return nil, domain.ErrTenantNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTenantRepo) List(_ context.Context) ([]domain.Tenant, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]domain.Tenant, 0, len(r.tenants))
	for _, t := range r.tenants {
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTenantRepo) Create(_ context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	clone := *tenant
	r.tenants[clone.ID] = &clone
	return &clone, nil
}

func TestAuthService_Register_Success(t *testing.T) {
	users := newStubUserRepo()
	tenants := newStubTenantRepo("abc-1")
	svc := NewAuthService(users, tenants, "secret", time.Hour)

	user, err := svc.Register(context.Background(), "alice@example.com", "pass123", "Alice", "abc-1")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil {
		t.Fatalf("expected user, got nil")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.TenantID != "abc-1" {
		t.Fatalf("unexpected tenant id: %s", user.TenantID)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubTenantRepo("abc-1"), "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "", "pass", "", "abc-1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob@example.com", "pass", "Bob", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty tenant, got %v", err)
	}
}

func TestAuthService_Register_UnknownTenant(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubTenantRepo("abc-1"), "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "bob@example.com", "pass", "Bob", "nope"); err != domain.ErrTenantNotFound {
		t.Fatalf("expected ErrTenantNotFound, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubTenantRepo("abc-1"), "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "bob@example.com", "pass", "Bob", "abc-1")
	if _, err := svc.Register(context.Background(), "bob@example.com", "pass2", "Bob", "abc-1"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubTenantRepo("abc-1"), "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "carol@example.com", "s3cret", "Carol", "abc-1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Email != "carol@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	// The minted token must round-trip through the gate's parser.
	sub, err := ParseSessionToken("secret", token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if sub != user.ID {
		t.Fatalf("expected subject %q, got %q", user.ID, sub)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubTenantRepo("abc-1"), "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "dave@example.com", "right", "Dave", "abc-1")
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubTenantRepo("abc-1"), "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "nobody@example.com", "pass"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
