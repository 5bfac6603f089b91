package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/platformly/admin-api/internal/core/domain"
	"github.com/platformly/admin-api/internal/core/ports"
)

// TenantHandler serves the platform-scoped tenant read endpoints. Routes are
// registered behind the PlatformOnly middleware; by the time a request lands
// here the caller is known to belong to the platform tenant.
type TenantHandler struct {
	service ports.TenantService
}

func NewTenantHandler(service ports.TenantService) *TenantHandler {
	return &TenantHandler{service: service}
}

type listTenantsResponse struct {
	Items []domain.Tenant `json:"items"`
	Total int             `json:"total"`
}

// List handles GET /v1/tenants.
//
// @Summary      List all tenants
// @Tags         tenants
// @Produce      json
// @Success      200  {object}  listTenantsResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /v1/tenants [get]
func (h *TenantHandler) List(c echo.Context) error {
	tenants, err := h.service.ListTenants(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listTenantsResponse{Items: tenants, Total: len(tenants)})
}

// Get handles GET /v1/tenants/:id.
//
// @Summary      Get a tenant by id
// @Tags         tenants
// @Produce      json
// @Param        id   path      string  true  "Tenant id"
// @Success      200  {object}  domain.Tenant
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/tenants/{id} [get]
func (h *TenantHandler) Get(c echo.Context) error {
	tenant, err := h.service.GetTenant(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tenant)
}
