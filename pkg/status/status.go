// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/omnaris/scan-service/internal/logging"
	"github.com/omnaris/scan-service/internal/monitoring"
	"github.com/omnaris/scan-service/internal/tracing"
	"github.com/omnaris/scan-service/internal/version"
	"github.com/omnaris/scan-service/pkg/web"
)

type API struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger
	return a
}

func (a *API) RegisterEndpoints(router chi.Router) {
	router.Get("/status", a.alive)
	router.Get("/version", a.version)
}

type statusBody struct {
	Status  string `json:"status"`
	BuildID string `json:"buildID"`
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	web.JSON(w, http.StatusOK, statusBody{Status: "ok", BuildID: version.Version})
}

type versionBody struct {
	Version string `json:"version"`
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	web.JSON(w, http.StatusOK, versionBody{Version: version.Version})
}
