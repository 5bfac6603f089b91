package domain

import "time"

// Reason classifies why a Decision denied a request. Empty for a plain
// allow, and for a deny caused only by the caller belonging to a client
// tenant rather than the platform tenant.
type Reason string

const (
	ReasonUnauthenticated       Reason = "unauthenticated"
	ReasonUserNotFound          Reason = "user_not_found"
	ReasonPlatformNotConfigured Reason = "platform_not_configured"
)

// Decision is the outcome of an authorization check at the request boundary.
type Decision struct {
	Allowed  bool   `json:"allowed"`
	TenantID string `json:"tenant_id,omitempty"`
	Reason   Reason `json:"reason,omitempty"`
}

// IdentitySource names where the gate found the user identifier.
type IdentitySource string

const (
	SourceExplicit IdentitySource = "explicit"
	SourceHeader   IdentitySource = "header"
	SourceBody     IdentitySource = "body"
	SourceSession  IdentitySource = "session"
	SourceNone     IdentitySource = "none"
)

// AuditEntry records one authorization decision for the async audit trail.
type AuditEntry struct {
	ID       string         `json:"id"`
	UserID   string         `json:"user_id,omitempty"`
	TenantID string         `json:"tenant_id,omitempty"`
	Allowed  bool           `json:"allowed"`
	Reason   Reason         `json:"reason,omitempty"`
	Source   IdentitySource `json:"source"`
	Path     string         `json:"path,omitempty"`
	At       time.Time      `json:"at"`
}
