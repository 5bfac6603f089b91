package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/platformly/admin-api/internal/api/middleware"
	"github.com/platformly/admin-api/internal/core/ports"
)

// AuthzHandler exposes the gate for introspection. The endpoint runs the same
// decision function platform-scoped routes consult and reports the outcome
// instead of enforcing it, which makes identity wiring debuggable from curl.
type AuthzHandler struct {
	gate       ports.AuthzService
	cookieName string
}

func NewAuthzHandler(gate ports.AuthzService, cookieName string) *AuthzHandler {
	if cookieName == "" {
		cookieName = "session"
	}
	return &AuthzHandler{gate: gate, cookieName: cookieName}
}

type checkRequest struct {
	// UserID optionally names the user to check explicitly, taking
	// precedence over header, body and session extraction.
	UserID string `json:"check_user_id,omitempty"`
}

// Check handles POST /v1/authz/check.
//
// @Summary      Run the platform authorization check and report the decision
// @Tags         authz
// @Accept       json
// @Produce      json
// @Param        body  body      checkRequest  false  "Optional explicit user id"
// @Success      200   {object}  domain.Decision
// @Failure      500   {object}  map[string]string
// @Router       /v1/authz/check [post]
func (h *AuthzHandler) Check(c echo.Context) error {
	info := middleware.BuildRequestInfo(c, h.cookieName)

	var req checkRequest
	if err := c.Bind(&req); err == nil && req.UserID != "" {
		info.ExplicitUserID = req.UserID
	}

	dec, err := h.gate.Authorize(c.Request().Context(), info)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dec)
}
