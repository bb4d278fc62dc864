// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package activity

import (
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
	r.Get("/activity", h.getOverview)
}

type statsView struct {
	TotalScans    int64 `json:"total_scans"`
	TodayScans    int64 `json:"today_scans"`
	WeekScans     int64 `json:"week_scans"`
	ExportedScans int64 `json:"exported_scans"`
}

type formCountView struct {
	FormKey   string `json:"form_key"`
	ScanCount int64  `json:"scan_count"`
}

type userCountView struct {
	Username  string `json:"username"`
	ScanCount int64  `json:"scan_count"`
}

type dayCountView struct {
	Day       string `json:"day"`
	ScanCount int64  `json:"scan_count"`
}

type recentScanView struct {
	ID        string        `json:"id"`
	FormKey   string        `json:"form_key"`
	Data      types.Payload `json:"data"`
	User      string        `json:"user,omitempty"`
	ScannedAt time.Time     `json:"scanned_at"`
}

type overviewView struct {
	Stats   statsView        `json:"stats"`
	PerForm []formCountView  `json:"per_form"`
	PerUser []userCountView  `json:"per_user,omitempty"`
	PerDay  []dayCountView   `json:"per_day"`
	Recent  []recentScanView `json:"recent"`
}

func (h *Handler) getOverview(w http.ResponseWriter, r *http.Request) {
	id, ok := identity.FromContext(r.Context())
	if !ok {
		web.Error(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	overview, err := h.service.GetOverview(r.Context(), id)
	if err != nil {
		h.logger.Errorf("activity request failed: %v", err)
		web.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	view := overviewView{
		Stats: statsView{
			TotalScans:    overview.Stats.TotalScans,
			TodayScans:    overview.Stats.TodayScans,
			WeekScans:     overview.Stats.WeekScans,
			ExportedScans: overview.Stats.ExportedScans,
		},
		PerForm: make([]formCountView, 0, len(overview.PerForm)),
		PerDay:  make([]dayCountView, 0, len(overview.PerDay)),
		Recent:  make([]recentScanView, 0, len(overview.Recent)),
	}
	for _, c := range overview.PerForm {
		view.PerForm = append(view.PerForm, formCountView{FormKey: c.FormKey, ScanCount: c.ScanCount})
	}
	for _, c := range overview.PerUser {
		view.PerUser = append(view.PerUser, userCountView{Username: c.Username, ScanCount: c.ScanCount})
	}
	for _, c := range overview.PerDay {
		view.PerDay = append(view.PerDay, dayCountView{Day: c.Day, ScanCount: c.ScanCount})
	}
	for _, s := range overview.Recent {
		view.Recent = append(view.Recent, recentScanView{
			ID:        s.ID,
			FormKey:   s.FormKey,
			Data:      s.Payload,
			User:      s.Username,
			ScannedAt: s.ScannedAt,
		})
	}
	web.JSON(w, http.StatusOK, view)
}
