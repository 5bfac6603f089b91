package ports

import (
	"context"

	"github.com/platformly/admin-api/internal/core/domain"
)

// TenantService defines the platform-scoped read operations over tenants.
type TenantService interface {
	GetTenant(ctx context.Context, id string) (*domain.Tenant, error)
	ListTenants(ctx context.Context) ([]domain.Tenant, error)
}
