package ports

import (
	"context"

	"github.com/platformly/admin-api/internal/core/domain"
)

// UserRepository defines the persistence interface for users. The resolver
// only ever reads; Create exists for the registration flow.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// TenantRepository defines the persistence interface for tenants.
type TenantRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Tenant, error)
	List(ctx context.Context) ([]domain.Tenant, error)
	Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
}

// SettingRepository defines the persistence interface for settings.
// FindByKey is a global lookup by key alone, not scoped to a tenant.
type SettingRepository interface {
	FindByKey(ctx context.Context, key string) (*domain.Setting, error)
	Upsert(ctx context.Context, setting *domain.Setting) error
}

// AuditRepository persists authorization audit entries.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}
