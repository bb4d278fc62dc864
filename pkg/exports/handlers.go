// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package exports

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/omnaris/scan-service/internal/identity"
	"github.com/omnaris/scan-service/internal/logging"
	"github.com/omnaris/scan-service/internal/types"
	"github.com/omnaris/scan-service/pkg/web"
)

type Handler struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewHandler(service ServiceInterface, logger logging.LoggerInterface) *Handler {
	h := new(Handler)
	h.service = service
	h.logger = logger
	return h
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/exports", h.listExports)
	r.Post("/exports", h.buildExport)
	r.Get("/exports/{exportID}", h.getExport)
	r.Get("/exports/{exportID}/download", h.downloadExport)
	r.Post("/exports/{exportID}/email", h.deliverExport)
	r.Get("/deliveries", h.listDeliveries)
}

type exportView struct {
	ID            string     `json:"id"`
	CreatedAt     time.Time  `json:"created_at"`
	CreatedBy     string     `json:"created_by,omitempty"`
	CreatedByName string     `json:"created_by_name,omitempty"`
	Format        string     `json:"format"`
	Status        string     `json:"status"`
	Params        string     `json:"params"`
	FromTS        *time.Time `json:"from_ts,omitempty"`
	ToTS          *time.Time `json:"to_ts,omitempty"`
	ScanCount     int64      `json:"scan_count"`
}

func newExportView(e *types.Export) exportView {
	v := exportView{
		ID:            e.ID,
		CreatedAt:     e.CreatedAt,
		CreatedByName: e.CreatedByName,
		Format:        e.Format,
		Status:        e.Status,
		Params:        e.Params,
		FromTS:        e.FromTS,
		ToTS:          e.ToTS,
		ScanCount:     e.ScanCount,
	}
	if e.CreatedBy != nil {
		v.CreatedBy = *e.CreatedBy
	}
	return v
}

type deliveryView struct {
	ID             string    `json:"id"`
	ExportID       string    `json:"export_id,omitempty"`
	ToEmail        string    `json:"to_email"`
	Status         string    `json:"status"`
	Provider       string    `json:"provider"`
	MessageID      string    `json:"message_id,omitempty"`
	Error          string    `json:"error,omitempty"`
	CostMicrounits int64     `json:"cost_microunits"`
	SentAt         time.Time `json:"sent_at"`
}

func newDeliveryView(d *types.DeliveryRecord) deliveryView {
	v := deliveryView{
		ID:             d.ID,
		ToEmail:        d.ToEmail,
		Status:         d.Status,
		Provider:       d.Provider,
		CostMicrounits: d.CostMicrounits,
		SentAt:         d.SentAt,
	}
	if d.ExportID != nil {
		v.ExportID = *d.ExportID
	}
	if d.MessageID != nil {
		v.MessageID = *d.MessageID
	}
	if d.Error != nil {
		v.Error = *d.Error
	}
	return v
}

func (h *Handler) buildExport(w http.ResponseWriter, r *http.Request) {
	id, ok := identity.FromContext(r.Context())
	if !ok {
		web.Error(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var filter Filter
	if err := web.DecodeBody(r, &filter); err != nil {
		web.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	export, err := h.service.BuildExport(r.Context(), id, filter)
	if err != nil {
		h.writeError(w, err)
		return
	}
	web.JSON(w, http.StatusCreated, newExportView(export))
}

func (h *Handler) listExports(w http.ResponseWriter, r *http.Request) {
	id, ok := identity.FromContext(r.Context())
	if !ok {
		web.Error(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	list, err := h.service.ListExports(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	views := make([]exportView, 0, len(list))
	for _, e := range list {
		views = append(views, newExportView(e))
	}
	web.JSON(w, http.StatusOK, views)
}

func (h *Handler) getExport(w http.ResponseWriter, r *http.Request) {
	id, ok := identity.FromContext(r.Context())
	if !ok {
		web.Error(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	export, err := h.service.GetExport(r.Context(), id, chi.URLParam(r, "exportID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	web.JSON(w, http.StatusOK, newExportView(export))
}

func (h *Handler) downloadExport(w http.ResponseWriter, r *http.Request) {
	id, ok := identity.FromContext(r.Context())
	if !ok {
		web.Error(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	artifact, err := h.service.DownloadExport(r.Context(), id, chi.URLParam(r, "exportID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact.Data)
}

type deliverRequest struct {
	Email string `json:"email"`
}

func (h *Handler) deliverExport(w http.ResponseWriter, r *http.Request) {
	id, ok := identity.FromContext(r.Context())
	if !ok {
		web.Error(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req deliverRequest
	if err := web.DecodeBody(r, &req); err != nil {
		web.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.service.DeliverExport(r.Context(), id, chi.URLParam(r, "exportID"), req.Email)
	if err != nil {
		h.writeError(w, err)
		return
	}
	web.JSON(w, http.StatusOK, newDeliveryView(rec))
}

func (h *Handler) listDeliveries(w http.ResponseWriter, r *http.Request) {
	id, ok := identity.FromContext(r.Context())
	if !ok {
		web.Error(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	list, err := h.service.ListDeliveries(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	views := make([]deliveryView, 0, len(list))
	for _, d := range list {
		views = append(views, newDeliveryView(d))
	}
	web.JSON(w, http.StatusOK, views)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidFilter), errors.Is(err, ErrInvalidEmail):
		web.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrEmptySelection):
		web.Error(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrInsufficientTokens):
		web.Error(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, ErrNotFound):
		web.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrPermissionDenied):
		web.Error(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrDeliveryFailed):
		web.Error(w, http.StatusBadGateway, err.Error())
	default:
		h.logger.Errorf("export request failed: %v", err)
		web.Error(w, http.StatusInternalServerError, "internal error")
	}
}
