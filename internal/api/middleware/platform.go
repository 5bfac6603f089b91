package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/platformly/admin-api/internal/api/metrics"
	"github.com/platformly/admin-api/internal/core/domain"
	"github.com/platformly/admin-api/internal/core/ports"
)

// Context keys set by PlatformOnly for downstream handlers.
const (
	ContextTenantID = "tenant_id"
	ContextDecision = "authz_decision"
)

// Options carries the request-shape configuration for the gate middleware.
type Options struct {
	// SessionCookie is the name of the session cookie. Defaults to "session".
	SessionCookie string
}

// PlatformOnly gates a route group on the Authorization Gate: only users
// belonging to the platform tenant proceed. The middleware assembles the
// transport view of the request (header map, body, session cookie) and maps
// the Decision to HTTP:
//
//	unauthenticated          → 401
//	unknown user             → 404
//	platform not configured  → 500
//	client tenant            → 403
func PlatformOnly(gate ports.AuthzService, opts Options) echo.MiddlewareFunc {
	cookieName := opts.SessionCookie
	if cookieName == "" {
		cookieName = "session"
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := BuildRequestInfo(c, cookieName)

			start := time.Now()
			dec, err := gate.Authorize(c.Request().Context(), req)
			metrics.AuthzDuration.Observe(time.Since(start).Seconds())
			if err != nil {
				metrics.AuthzDecisionsTotal.WithLabelValues("deny", "store_error").Inc()
				return err
			}
			countDecision(dec)

			if !dec.Allowed {
				return decisionError(dec)
			}

			c.Set(ContextTenantID, dec.TenantID)
			c.Set(ContextDecision, dec)
			return next(c)
		}
	}
}

// BuildRequestInfo snapshots the parts of the request the gate inspects. The
// body is read and restored so downstream binding still works. Handlers that
// consult the gate outside the middleware (introspection, bootstrap) use the
// same builder so every route sees identical extraction behavior.
func BuildRequestInfo(c echo.Context, cookieName string) ports.RequestInfo {
	r := c.Request()

	var body []byte
	if r.Body != nil && r.Body != http.NoBody {
		body, _ = io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))
	}

	var sessionToken string
	if cookie, err := c.Cookie(cookieName); err == nil {
		sessionToken = cookie.Value
	}

	return ports.RequestInfo{
		Header:       r.Header,
		Method:       r.Method,
		Body:         body,
		SessionToken: sessionToken,
		Path:         c.Path(),
	}
}

func countDecision(dec domain.Decision) {
	if dec.Allowed {
		metrics.AuthzDecisionsTotal.WithLabelValues("allow", "none").Inc()
		return
	}
	reason := string(dec.Reason)
	if reason == "" {
		reason = "client_tenant"
	}
	metrics.AuthzDecisionsTotal.WithLabelValues("deny", reason).Inc()
}

// decisionError maps a deny Decision to the domain error the central error
// handler translates to a status code.
func decisionError(dec domain.Decision) error {
	switch dec.Reason {
	case domain.ReasonUnauthenticated:
		return domain.ErrUnauthenticated
	case domain.ReasonUserNotFound:
		return domain.ErrUserNotFound
	case domain.ReasonPlatformNotConfigured:
		return domain.ErrPlatformNotConfigured
	default:
		return domain.ErrForbidden
	}
}
