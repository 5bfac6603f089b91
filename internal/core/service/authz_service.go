package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/platformly/admin-api/internal/core/domain"
	"github.com/platformly/admin-api/internal/core/ports"
)

// DefaultUserIDHeader carries a caller-asserted identity on trusted
// server-to-server calls. It is as authoritative as the session cookie, so
// only trusted infrastructure may be allowed to set it.
const DefaultUserIDHeader = "X-User-Id"

// GateService is the Authorization Gate: the single request-boundary decision
// function every platform-scoped route consults.
type GateService struct {
	resolver   ports.TenantResolver
	jwtSecret  string
	headerName string
	audit      ports.AuditSink
	logger     zerolog.Logger
}

// NewGateService builds the gate. audit may be nil to disable the audit
// trail; headerName falls back to DefaultUserIDHeader when empty.
func NewGateService(resolver ports.TenantResolver, jwtSecret, headerName string, audit ports.AuditSink, logger zerolog.Logger) *GateService {
	if headerName == "" {
		headerName = DefaultUserIDHeader
	}
	return &GateService{
		resolver:   resolver,
		jwtSecret:  jwtSecret,
		headerName: headerName,
		audit:      audit,
		logger:     logger,
	}
}

// Authorize resolves an identity from req and classifies it against the
// platform tenant. Identity extraction order, first match wins:
//
//  1. explicit caller-supplied user id,
//  2. the configured user-id header,
//  3. a user_id field on a JSON body (body-carrying methods only; parse
//     failures count as "not found"),
//  4. the session cookie token.
//
// Expected conditions are returned inside the Decision; a non-nil error means
// the underlying store read failed and maps to a 500 at the route.
func (s *GateService) Authorize(ctx context.Context, req ports.RequestInfo) (domain.Decision, error) {
	userID, source := s.extractUserID(req)

	var dec domain.Decision
	switch {
	case userID == "":
		dec = domain.Decision{Allowed: false, Reason: domain.ReasonUnauthenticated}
	default:
		class, err := s.resolver.ResolveUserTenant(ctx, userID)
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			dec = domain.Decision{Allowed: false, Reason: domain.ReasonUserNotFound}
		case errors.Is(err, domain.ErrPlatformNotConfigured):
			// Operator-facing fault: every platform-scoped request fails
			// identically until the setting row exists.
			s.logger.Error().Str("user_id", userID).Msg("platform tenant not configured")
			dec = domain.Decision{Allowed: false, Reason: domain.ReasonPlatformNotConfigured}
		case err != nil:
			return domain.Decision{}, err
		default:
			dec = domain.Decision{Allowed: class.IsPlatform, TenantID: class.TenantID}
		}
	}

	if s.audit != nil {
		s.audit.Record(domain.AuditEntry{
			ID:       uuid.NewString(),
			UserID:   userID,
			TenantID: dec.TenantID,
			Allowed:  dec.Allowed,
			Reason:   dec.Reason,
			Source:   source,
			Path:     req.Path,
			At:       time.Now().UTC(),
		})
	}

	return dec, nil
}

func (s *GateService) extractUserID(req ports.RequestInfo) (string, domain.IdentitySource) {
	if id := strings.TrimSpace(req.ExplicitUserID); id != "" {
		return id, domain.SourceExplicit
	}

	if req.Header != nil {
		if id := strings.TrimSpace(req.Header.Get(s.headerName)); id != "" {
			return id, domain.SourceHeader
		}
	}

	if methodHasBody(req.Method) && len(req.Body) > 0 {
		var payload struct {
			UserID string `json:"user_id"`
		}
		// A body that is not JSON, or carries no user_id, is simply not an
		// identity source; it is never a fatal condition here.
		if err := json.Unmarshal(req.Body, &payload); err == nil {
			if id := strings.TrimSpace(payload.UserID); id != "" {
				return id, domain.SourceBody
			}
		}
	}

	if req.SessionToken != "" {
		if id, err := ParseSessionToken(s.jwtSecret, req.SessionToken); err == nil {
			return id, domain.SourceSession
		}
	}

	return "", domain.SourceNone
}

func methodHasBody(method string) bool {
	switch method {
	case "POST", "PUT", "PATCH", "DELETE":
		return true
	}
	return false
}

// ParseSessionToken verifies an HS256 session token and returns the subject
// user id.
func ParseSessionToken(secret, token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrUnauthenticated
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", domain.ErrUnauthenticated
	}
	return sub, nil
}
