// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"net/http"

	"github.com/omnaris/scan-service/internal/logging"
	"github.com/omnaris/scan-service/internal/monitoring"
	"github.com/omnaris/scan-service/internal/tracing"
	"github.com/omnaris/scan-service/internal/types"
)

const (
	// AccountHeader carries the account ID resolved by the upstream session layer.
	AccountHeader = "X-Authenticated-Account-Id"
	// UserHeader carries the user ID resolved by the upstream session layer.
	UserHeader = "X-Authenticated-User-Id"
	// RoleHeader carries the role resolved by the upstream session layer.
	RoleHeader = "X-Authenticated-User-Role"
)

type contextKey struct{}

var identityContextKey contextKey

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HTTPMiddleware resolves the caller identity from the trusted upstream
// headers and rejects requests carrying none.
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		id := types.Identity{
			AccountID: r.Header.Get(AccountHeader),
			UserID:    r.Header.Get(UserHeader),
			Role:      r.Header.Get(RoleHeader),
		}

		if id.AccountID == "" || id.UserID == "" {
			http.Error(w, "unauthenticated", http.StatusUnauthorized)
			return
		}

		ctx = ContextWithIdentity(ctx, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ContextWithIdentity returns a new context carrying the identity.
func ContextWithIdentity(ctx context.Context, id types.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}

// FromContext extracts the caller identity from the context.
func FromContext(ctx context.Context) (types.Identity, bool) {
	id, ok := ctx.Value(identityContextKey).(types.Identity)
	return id, ok
}
