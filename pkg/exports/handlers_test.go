// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package exports

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/omnaris/scan-service/internal/identity"
	"github.com/omnaris/scan-service/internal/logging"
	"github.com/omnaris/scan-service/internal/types"
)

func newTestRouter(service ServiceInterface) http.Handler {
	mux := chi.NewMux()
	mux.Route("/api/v0", NewHandler(service, logging.NewNoopLogger()).Routes)
	return mux
}

func doRequest(t *testing.T, handler http.Handler, method, target, body string, id *types.Identity) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	if id != nil {
		req = req.WithContext(identity.ContextWithIdentity(req.Context(), *id))
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandler_BuildExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().BuildExport(gomock.Any(), adminID, Filter{FormKey: "barcode_only"}).
		Return(&types.Export{ID: "exp-1", Status: types.ExportStatusReady, ScanCount: 4}, nil)

	rec := doRequest(t, newTestRouter(mockService), http.MethodPost, "/api/v0/exports", `{"form_key":"barcode_only"}`, &adminID)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var view exportView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if view.ID != "exp-1" || view.ScanCount != 4 {
		t.Errorf("unexpected body %+v", view)
	}
}

func TestHandler_BuildExportErrors(t *testing.T) {
	testCases := []struct {
		name         string
		serviceErr   error
		expectedCode int
	}{
		{"empty selection", ErrEmptySelection, http.StatusUnprocessableEntity},
		{"invalid filter", ErrInvalidFilter, http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockService.EXPECT().BuildExport(gomock.Any(), adminID, gomock.Any()).Return(nil, tc.serviceErr)

			rec := doRequest(t, newTestRouter(mockService), http.MethodPost, "/api/v0/exports", `{}`, &adminID)
			if rec.Code != tc.expectedCode {
				t.Errorf("expected %d, got %d", tc.expectedCode, rec.Code)
			}
		})
	}
}

func TestHandler_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := doRequest(t, newTestRouter(NewMockServiceInterface(ctrl)), http.MethodGet, "/api/v0/exports", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestHandler_DownloadExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().DownloadExport(gomock.Any(), workerID, "exp-1").Return(&Artifact{
		Export:   &types.Export{ID: "exp-1"},
		Filename: "export_exp-1_1700000000.csv",
		Data:     []byte("ID,Date,Form,User,Data\n"),
	}, nil)

	rec := doRequest(t, newTestRouter(mockService), http.MethodGet, "/api/v0/exports/exp-1/download", "", &workerID)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv; charset=utf-8" {
		t.Errorf("unexpected content type %s", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "export_exp-1_1700000000.csv") {
		t.Errorf("unexpected disposition %s", cd)
	}
}

func TestHandler_DeliverExport(t *testing.T) {
	testCases := []struct {
		name         string
		serviceErr   error
		expectedCode int
	}{
		{"delivered", nil, http.StatusOK},
		{"invalid email", ErrInvalidEmail, http.StatusBadRequest},
		{"insufficient tokens", ErrInsufficientTokens, http.StatusPaymentRequired},
		{"not found", ErrNotFound, http.StatusNotFound},
		{"provider failure", ErrDeliveryFailed, http.StatusBadGateway},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			call := mockService.EXPECT().DeliverExport(gomock.Any(), workerID, "exp-1", "ops@example.com")
			if tc.serviceErr != nil {
				call.Return(nil, tc.serviceErr)
			} else {
				call.Return(&types.DeliveryRecord{ID: "ev-1", Status: types.DeliveryStatusSent}, nil)
			}

			rec := doRequest(t, newTestRouter(mockService), http.MethodPost, "/api/v0/exports/exp-1/email", `{"email":"ops@example.com"}`, &workerID)
			if rec.Code != tc.expectedCode {
				t.Errorf("expected %d, got %d: %s", tc.expectedCode, rec.Code, rec.Body.String())
			}
		})
	}
}
