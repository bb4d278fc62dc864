// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/omnaris/scan-service/internal/identity"
	"github.com/omnaris/scan-service/internal/logging"
	"github.com/omnaris/scan-service/internal/monitoring"
	"github.com/omnaris/scan-service/internal/tracing"
)

// APIRegistrar mounts a handler group under the versioned API prefix.
type APIRegistrar interface {
	Routes(r chi.Router)
}

func NewRouter(
	identityMdw *identity.Middleware,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
	unauthenticated []func(r chi.Router),
	apis ...APIRegistrar,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	router.Route("/api/v0", func(r chi.Router) {
		for _, register := range unauthenticated {
			register(r)
		}
		r.Group(func(r chi.Router) {
			r.Use(identityMdw.HTTPMiddleware)
			for _, api := range apis {
				api.Routes(r)
			}
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
