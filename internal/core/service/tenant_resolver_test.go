package service

import (
	"context"
	"errors"
	"testing"

	"github.com/platformly/admin-api/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
	err   error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = user.Email
	}
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) add(id, tenantID string) {
	r.users[id] = &domain.User{ID: id, Email: id + "@example.com", TenantID: tenantID}
}

func newResolver(users *stubUserRepo, platformValue string) *UserTenantResolver {
	settings := newStubSettingRepo()
	if platformValue != "" {
		settings.setPlatformID(platformValue)
	}
	return NewTenantResolver(users, NewPlatformRegistry(settings))
}

func TestTenantResolver_PlatformUser(t *testing.T) {
	users := newStubUserRepo()
	users.add("u1", "abc-1")
	resolver := newResolver(users, "abc-1")

	class, err := resolver.ResolveUserTenant(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ResolveUserTenant returned error: %v", err)
	}
	if !class.IsPlatform {
		t.Fatalf("expected platform classification")
	}
	if class.TenantID != "abc-1" {
		t.Fatalf("unexpected tenant id: %q", class.TenantID)
	}
}

func TestTenantResolver_ClientUser(t *testing.T) {
	users := newStubUserRepo()
	users.add("u2", "def-2")
	resolver := newResolver(users, "abc-1")

	class, err := resolver.ResolveUserTenant(context.Background(), "u2")
	if err != nil {
		t.Fatalf("ResolveUserTenant returned error: %v", err)
	}
	if class.IsPlatform {
		t.Fatalf("expected client classification")
	}
}

func TestTenantResolver_NormalizedComparison(t *testing.T) {
	// "ABC-1 ", "abc-1" and " abc-1" must all classify as equal.
	for _, tenantID := range []string{"ABC-1 ", "abc-1", " abc-1"} {
		users := newStubUserRepo()
		users.add("u1", tenantID)
		resolver := newResolver(users, "abc-1")

		class, err := resolver.ResolveUserTenant(context.Background(), "u1")
		if err != nil {
			t.Fatalf("tenant %q: unexpected error: %v", tenantID, err)
		}
		if !class.IsPlatform {
			t.Fatalf("tenant %q: expected platform classification", tenantID)
		}
		// The original, non-normalized id is what comes back.
		if class.TenantID != tenantID {
			t.Fatalf("tenant %q: expected original id preserved, got %q", tenantID, class.TenantID)
		}
	}
}

func TestTenantResolver_UnknownUser(t *testing.T) {
	resolver := newResolver(newStubUserRepo(), "abc-1")

	if _, err := resolver.ResolveUserTenant(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestTenantResolver_PlatformNotConfigured(t *testing.T) {
	users := newStubUserRepo()
	users.add("u1", "abc-1")
	users.add("u2", "def-2")
	resolver := newResolver(users, "")

	// Every user fails the same way when the setting row is missing.
	for _, id := range []string{"u1", "u2"} {
		if _, err := resolver.ResolveUserTenant(context.Background(), id); !errors.Is(err, domain.ErrPlatformNotConfigured) {
			t.Fatalf("user %s: expected ErrPlatformNotConfigured, got %v", id, err)
		}
	}
}
