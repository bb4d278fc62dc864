// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/omnaris/scan-service/internal/logging"
	"github.com/omnaris/scan-service/internal/monitoring"
	"github.com/omnaris/scan-service/internal/tracing"
	"github.com/omnaris/scan-service/internal/types"
)

func TestHTTPMiddlewareResolvesIdentity(t *testing.T) {
	m := NewMiddleware(tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	var got types.Identity
	handler := m.HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(AccountHeader, "acct-1")
	req.Header.Set(UserHeader, "user-1")
	req.Header.Set(RoleHeader, types.RoleAdmin)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.AccountID != "acct-1" || got.UserID != "user-1" || !got.IsAdmin() {
		t.Errorf("unexpected identity: %+v", got)
	}
}

func TestHTTPMiddlewareRejectsAnonymous(t *testing.T) {
	m := NewMiddleware(tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	handler := m.HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}
