package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/platformly/admin-api/internal/api/middleware"
	"github.com/platformly/admin-api/internal/core/domain"
	"github.com/platformly/admin-api/internal/core/ports"
)

// CacheInvalidator drops any cached copy of the platform tenant id after the
// setting row changes.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// SettingHandler manages the platform-tenant setting row. Reads go through
// the registry so callers observe exactly what the gate observes.
type SettingHandler struct {
	settings   ports.SettingRepository
	registry   ports.PlatformRegistry
	gate       ports.AuthzService
	cache      CacheInvalidator
	cookieName string
	logger     zerolog.Logger
}

func NewSettingHandler(settings ports.SettingRepository, registry ports.PlatformRegistry, gate ports.AuthzService, cache CacheInvalidator, cookieName string, logger zerolog.Logger) *SettingHandler {
	if cookieName == "" {
		cookieName = "session"
	}
	return &SettingHandler{settings: settings, registry: registry, gate: gate, cache: cache, cookieName: cookieName, logger: logger}
}

type platformSettingResponse struct {
	TenantID string `json:"tenant_id"`
}

type updatePlatformSettingRequest struct {
	TenantID string `json:"tenant_id" validate:"required"`
}

// GetPlatformTenant handles GET /v1/settings/platform-tenant.
//
// @Summary      Read the configured platform tenant id
// @Tags         settings
// @Produce      json
// @Success      200  {object}  platformSettingResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /v1/settings/platform-tenant [get]
func (h *SettingHandler) GetPlatformTenant(c echo.Context) error {
	id, err := h.registry.PlatformTenantID(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, platformSettingResponse{TenantID: id})
}

// UpdatePlatformTenant handles PUT /v1/settings/platform-tenant.
//
// The route is not behind the PlatformOnly middleware: when no platform
// tenant is configured yet, no request could ever pass it, and the first
// platform admin could never be designated. Authorization is therefore
// checked inline — a platform user may always rewrite the setting, and any
// authenticated known user may perform the initial write while the setting
// row is still missing.
//
// @Summary      Set the platform tenant id
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      updatePlatformSettingRequest  true  "Platform tenant id"
// @Success      200   {object}  platformSettingResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/settings/platform-tenant [put]
func (h *SettingHandler) UpdatePlatformTenant(c echo.Context) error {
	ctx := c.Request().Context()

	dec, err := h.gate.Authorize(ctx, middleware.BuildRequestInfo(c, h.cookieName))
	if err != nil {
		return err
	}
	switch {
	case dec.Allowed:
	case dec.Reason == domain.ReasonPlatformNotConfigured:
		// Bootstrap: the caller authenticated and resolved to a real user.
	case dec.Reason == domain.ReasonUnauthenticated:
		return domain.ErrUnauthenticated
	case dec.Reason == domain.ReasonUserNotFound:
		return domain.ErrUserNotFound
	default:
		return domain.ErrForbidden
	}

	var req updatePlatformSettingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	setting := &domain.Setting{
		TenantID:  req.TenantID,
		Key:       domain.PlatformTenantKey,
		Value:     domain.SettingValue{Kind: domain.SettingString, Str: req.TenantID},
		UpdatedAt: time.Now().UTC(),
	}
	if err := h.settings.Upsert(ctx, setting); err != nil {
		return err
	}

	if h.cache != nil {
		if err := h.cache.Invalidate(ctx); err != nil && !errors.Is(err, context.Canceled) {
			// Stale reads self-heal when the cache TTL lapses.
			h.logger.Warn().Err(err).Msg("platform id cache invalidation failed")
		}
	}

	return c.JSON(http.StatusOK, platformSettingResponse{TenantID: req.TenantID})
}
