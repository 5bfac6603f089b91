package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/platformly/admin-api/internal/core/domain"
	"github.com/platformly/admin-api/internal/core/ports"
)

// SettingsPlatformRegistry resolves the platform tenant id from the settings
// store. It is a pure read; callers that want caching wrap it (see the redis
// PlatformIDCache decorator).
type SettingsPlatformRegistry struct {
	settings ports.SettingRepository
}

func NewPlatformRegistry(settings ports.SettingRepository) *SettingsPlatformRegistry {
	return &SettingsPlatformRegistry{settings: settings}
}

// PlatformTenantID looks up the platform_company_id setting row by key alone
// and extracts its value. A missing row, or a row whose value yields nothing
// usable, means the platform is not configured — never that any particular
// user is or is not platform.
func (r *SettingsPlatformRegistry) PlatformTenantID(ctx context.Context) (string, error) {
	setting, err := r.settings.FindByKey(ctx, domain.PlatformTenantKey)
	if err != nil {
		if errors.Is(err, domain.ErrSettingNotFound) {
			return "", domain.ErrPlatformNotConfigured
		}
		return "", fmt.Errorf("read platform setting: %w", err)
	}

	id, ok := setting.Value.Text()
	if !ok {
		return "", domain.ErrPlatformNotConfigured
	}
	return id, nil
}
