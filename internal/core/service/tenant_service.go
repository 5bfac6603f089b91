package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/platformly/admin-api/internal/core/domain"
	"github.com/platformly/admin-api/internal/core/ports"
)

// TenantAdminService exposes the platform-scoped read surface over tenants.
// Access control happens upstream at the gate middleware; this service only
// performs lookups.
type TenantAdminService struct {
	tenants ports.TenantRepository
	logger  zerolog.Logger
}

func NewTenantService(tenants ports.TenantRepository, logger zerolog.Logger) *TenantAdminService {
	return &TenantAdminService{tenants: tenants, logger: logger}
}

func (s *TenantAdminService) GetTenant(ctx context.Context, id string) (*domain.Tenant, error) {
	tenant, err := s.tenants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return tenant, nil
}

func (s *TenantAdminService) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	tenants, err := s.tenants.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list tenants")
		return nil, err
	}
	return tenants, nil
}
