package service

import (
	"context"

	"github.com/platformly/admin-api/internal/core/domain"
	"github.com/platformly/admin-api/internal/core/ports"
)

// UserTenantResolver classifies a user as platform or client by comparing the
// user's tenant id against the registry's platform tenant id.
type UserTenantResolver struct {
	users    ports.UserRepository
	registry ports.PlatformRegistry
}

func NewTenantResolver(users ports.UserRepository, registry ports.PlatformRegistry) *UserTenantResolver {
	return &UserTenantResolver{users: users, registry: registry}
}

// ResolveUserTenant returns the user's tenant id (original form) and whether
// that tenant is the platform tenant. Both sides of the comparison are
// normalized identically: trimmed and lowercased. Identifiers arrive from
// different code paths with inconsistent casing, so the comparison is
// uniformly case-insensitive.
func (r *UserTenantResolver) ResolveUserTenant(ctx context.Context, userID string) (domain.TenantClass, error) {
	user, err := r.users.FindByID(ctx, userID)
	if err != nil {
		return domain.TenantClass{}, err
	}

	platformID, err := r.registry.PlatformTenantID(ctx)
	if err != nil {
		return domain.TenantClass{}, err
	}

	return domain.TenantClass{
		TenantID:   user.TenantID,
		IsPlatform: domain.NormalizeTenantID(user.TenantID) == domain.NormalizeTenantID(platformID),
	}, nil
}
