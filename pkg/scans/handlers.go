// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package scans

import (
	"errors"
	"net/http"
	"strconv"
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
	r.Get("/forms", h.listForms)
	r.Post("/scans", h.submitScan)
	r.Get("/scans", h.listScans)
}

type scanView struct {
	ID          string        `json:"id"`
	FormKey     string        `json:"form_key"`
	Data        types.Payload `json:"data"`
	User        string        `json:"user,omitempty"`
	ScannedAt   time.Time     `json:"scanned_at"`
	ExportID    string        `json:"export_id,omitempty"`
	EmailStatus string        `json:"email_status,omitempty"`
}

func newScanView(s *types.Scan) scanView {
	v := scanView{
		ID:        s.ID,
		FormKey:   s.FormKey,
		Data:      s.Payload,
		User:      s.Username,
		ScannedAt: s.ScannedAt,
	}
	if s.ExportID != nil {
		v.ExportID = *s.ExportID
	}
	if s.LastEmailStatus != nil {
		v.EmailStatus = *s.LastEmailStatus
	}
	return v
}

func (h *Handler) listForms(w http.ResponseWriter, r *http.Request) {
	if _, ok := identity.FromContext(r.Context()); !ok {
		web.Error(w, http.StatusUnauthorized, "unauthenticated")
		return
	}
	web.JSON(w, http.StatusOK, h.service.ListForms(r.Context()))
}

type submitRequest struct {
	FormKey string            `json:"form_key"`
	Values  map[string]string `json:"values"`
}

func (h *Handler) submitScan(w http.ResponseWriter, r *http.Request) {
	id, ok := identity.FromContext(r.Context())
	if !ok {
		web.Error(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req submitRequest
	if err := web.DecodeBody(r, &req); err != nil {
		web.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	scan, err := h.service.SubmitScan(r.Context(), id, req.FormKey, req.Values)
	if err != nil {
		h.writeError(w, err)
		return
	}
	web.JSON(w, http.StatusCreated, newScanView(scan))
}

type scanPageView struct {
	Scans    []scanView `json:"scans"`
	Total    int64      `json:"total"`
	Page     int64      `json:"page"`
	PageSize int64      `json:"page_size"`
	FormKeys []string   `json:"form_keys"`
}

func (h *Handler) listScans(w http.ResponseWriter, r *http.Request) {
	id, ok := identity.FromContext(r.Context())
	if !ok {
		web.Error(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	q := r.URL.Query()
	filter := ListFilter{
		FormKey:  q.Get("form_key"),
		FromDate: q.Get("from_date"),
		ToDate:   q.Get("to_date"),
	}
	filter.Page, _ = strconv.ParseInt(q.Get("page"), 10, 64)
	filter.PageSize, _ = strconv.ParseInt(q.Get("page_size"), 10, 64)

	page, err := h.service.ListScans(r.Context(), id, filter)
	if err != nil {
		h.writeError(w, err)
		return
	}

	view := scanPageView{
		Scans:    make([]scanView, 0, len(page.Scans)),
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
		FormKeys: page.FormKeys,
	}
	for _, s := range page.Scans {
		view.Scans = append(view.Scans, newScanView(s))
	}
	web.JSON(w, http.StatusOK, view)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnknownForm), errors.Is(err, ErrMissingField), errors.Is(err, ErrInvalidFilter):
		web.Error(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Errorf("scan request failed: %v", err)
		web.Error(w, http.StatusInternalServerError, "internal error")
	}
}
