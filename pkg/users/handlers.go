// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"errors"
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
	r.Get("/users", h.listUsers)
	r.Post("/users", h.createUser)
	r.Get("/users/{userID}", h.getUser)
	r.Patch("/users/{userID}/role", h.updateRole)
	r.Post("/users/{userID}/toggle-active", h.toggleActive)
	r.Delete("/users/{userID}", h.deleteUser)
	r.Patch("/users/{userID}/scanner-mode", h.updateScannerMode)
	r.Patch("/account/billing-email", h.updateBillingEmail)
}

type userView struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	ScannerMode string    `json:"scanner_mode"`
	Active      bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func newUserView(u *types.User) userView {
	return userView{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		ScannerMode: u.ScannerMode,
		Active:      u.Active,
		CreatedAt:   u.CreatedAt,
	}
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	id, ok := identity.FromContext(r.Context())
	if !ok {
		web.Error(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	list, err := h.service.ListUsers(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	views := make([]userView, 0, len(list))
	for _, u := range list {
		views = append(views, newUserView(u))
	}
	web.JSON(w, http.StatusOK, views)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := identity.FromContext(r.Context())
	if !ok {
		web.Error(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	u, err := h.service.GetUser(r.Context(), id, chi.URLParam(r, "userID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	web.JSON(w, http.StatusOK, newUserView(u))
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	id, ok := identity.FromContext(r.Context())
	if !ok {
		web.Error(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req CreateRequest
	if err := web.DecodeBody(r, &req); err != nil {
		web.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.service.CreateUser(r.Context(), id, req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	web.JSON(w, http.StatusCreated, newUserView(u))
}

type roleRequest struct {
	Role string `json:"role"`
}

func (h *Handler) updateRole(w http.ResponseWriter, r *http.Request) {
	id, ok := identity.FromContext(r.Context())
	if !ok {
		web.Error(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req roleRequest
	if err := web.DecodeBody(r, &req); err != nil {
		web.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.UpdateRole(r.Context(), id, chi.URLParam(r, "userID"), req.Role); err != nil {
		h.writeError(w, err)
		return
	}
	web.JSON(w, http.StatusNoContent, nil)
}

func (h *Handler) toggleActive(w http.ResponseWriter, r *http.Request) {
	id, ok := identity.FromContext(r.Context())
	if !ok {
		web.Error(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	if err := h.service.ToggleActive(r.Context(), id, chi.URLParam(r, "userID")); err != nil {
		h.writeError(w, err)
		return
	}
	web.JSON(w, http.StatusNoContent, nil)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := identity.FromContext(r.Context())
	if !ok {
		web.Error(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	if err := h.service.DeleteUser(r.Context(), id, chi.URLParam(r, "userID")); err != nil {
		h.writeError(w, err)
		return
	}
	web.JSON(w, http.StatusNoContent, nil)
}

type scannerModeRequest struct {
	ScannerMode string `json:"scanner_mode"`
}

func (h *Handler) updateScannerMode(w http.ResponseWriter, r *http.Request) {
	id, ok := identity.FromContext(r.Context())
	if !ok {
		web.Error(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req scannerModeRequest
	if err := web.DecodeBody(r, &req); err != nil {
		web.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.UpdateScannerMode(r.Context(), id, chi.URLParam(r, "userID"), req.ScannerMode); err != nil {
		h.writeError(w, err)
		return
	}
	web.JSON(w, http.StatusNoContent, nil)
}

type billingEmailRequest struct {
	Email string `json:"email"`
}

func (h *Handler) updateBillingEmail(w http.ResponseWriter, r *http.Request) {
	id, ok := identity.FromContext(r.Context())
	if !ok {
		web.Error(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req billingEmailRequest
	if err := web.DecodeBody(r, &req); err != nil {
		web.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.UpdateBillingEmail(r.Context(), id, req.Email); err != nil {
		h.writeError(w, err)
		return
	}
	web.JSON(w, http.StatusNoContent, nil)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		web.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDuplicateUser):
		web.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrNotFound):
		web.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrPermissionDenied):
		web.Error(w, http.StatusForbidden, err.Error())
	default:
		h.logger.Errorf("user request failed: %v", err)
		web.Error(w, http.StatusInternalServerError, "internal error")
	}
}
