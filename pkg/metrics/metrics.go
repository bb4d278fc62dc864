// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package metrics

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/omnaris/scan-service/internal/logging"
)

type API struct {
	logger logging.LoggerInterface
}

func NewAPI(logger logging.LoggerInterface) *API {
	a := new(API)
	a.logger = logger
	return a
}

func (a *API) RegisterEndpoints(router chi.Router) {
	router.Get("/metrics", promhttp.Handler().ServeHTTP)
}
