package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/platformly/admin-api/internal/core/domain"
)

func TestAuthzHandler_Check_ReportsDecision(t *testing.T) {
	gate := &stubGate{dec: domain.Decision{Allowed: true, TenantID: "abc-1"}}
	h := NewAuthzHandler(gate, "session")

	c, rec := newTestContext(t, http.MethodPost, "/v1/authz/check", `{}`)
	if err := h.Check(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var dec domain.Decision
	if err := json.Unmarshal(rec.Body.Bytes(), &dec); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !dec.Allowed || dec.TenantID != "abc-1" {
		t.Fatalf("unexpected decision %+v", dec)
	}
}

func TestAuthzHandler_Check_DenyIsStill200(t *testing.T) {
	// Introspection reports the decision, it does not enforce it.
	gate := &stubGate{dec: domain.Decision{Allowed: false, Reason: domain.ReasonUnauthenticated}}
	h := NewAuthzHandler(gate, "session")

	c, rec := newTestContext(t, http.MethodPost, "/v1/authz/check", `{}`)
	if err := h.Check(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var dec domain.Decision
	if err := json.Unmarshal(rec.Body.Bytes(), &dec); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if dec.Allowed || dec.Reason != domain.ReasonUnauthenticated {
		t.Fatalf("unexpected decision %+v", dec)
	}
}
