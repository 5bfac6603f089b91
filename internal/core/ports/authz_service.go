package ports

import (
	"context"
	"net/http"

	"github.com/platformly/admin-api/internal/core/domain"
)

// RequestInfo is the transport-agnostic view of an inbound request handed to
// the Authorization Gate. The HTTP middleware builds one per request; tests
// and programmatic callers construct it directly.
type RequestInfo struct {
	// ExplicitUserID is a caller-supplied identity for programmatic calls.
	// When set it wins over every other source.
	ExplicitUserID string
	// Header is consulted for the configured user-id header.
	Header http.Header
	// Method gates whether Body is inspected at all.
	Method string
	// Body is the raw request body, if any. A JSON object with a user_id
	// field is accepted; anything unparseable is ignored.
	Body []byte
	// SessionToken is the raw session cookie value, if present.
	SessionToken string
	// Path is recorded on the audit trail only; it plays no part in the
	// decision.
	Path string
}

// PlatformRegistry resolves the identifier of the platform tenant.
type PlatformRegistry interface {
	// PlatformTenantID returns domain.ErrPlatformNotConfigured when the
	// setting row is missing or yields no usable value.
	PlatformTenantID(ctx context.Context) (string, error)
}

// TenantResolver classifies a user as belonging to the platform tenant or to
// a client tenant.
type TenantResolver interface {
	ResolveUserTenant(ctx context.Context, userID string) (domain.TenantClass, error)
}

// AuthzService is the Authorization Gate consulted by platform-scoped routes.
type AuthzService interface {
	// Authorize extracts an identity from req, resolves its tenant, and
	// returns a Decision. Expected conditions (no identity, unknown user,
	// unconfigured platform) come back inside the Decision; a non-nil error
	// means the underlying store read itself failed.
	Authorize(ctx context.Context, req RequestInfo) (domain.Decision, error)
}

// AuditSink receives authorization decisions for asynchronous recording.
// Implementations must never block the request path.
type AuditSink interface {
	Record(entry domain.AuditEntry)
}
