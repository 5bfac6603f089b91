package domain

import (
	"errors"
	"time"
)

var ErrTenantNotFound = errors.New("tenant not found")
var ErrForbidden = errors.New("access forbidden")

// Tenant is an isolated customer account. Exactly one tenant in the system is
// distinguished as the platform tenant; the distinction lives in the settings
// store, not on the tenant record itself.
type Tenant struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email,omitempty"`
	Address      string    `json:"address,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TenantClass is the result of resolving a user's tenant against the platform
// tenant. TenantID carries the user's original identifier, not the normalized
// form used for comparison.
type TenantClass struct {
	TenantID   string `json:"tenant_id"`
	IsPlatform bool   `json:"is_platform"`
}
