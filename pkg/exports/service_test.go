// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package exports

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/omnaris/scan-service/internal/logging"
	"github.com/omnaris/scan-service/internal/mailer"
	"github.com/omnaris/scan-service/internal/storage"
	"github.com/omnaris/scan-service/internal/tracing"
	"github.com/omnaris/scan-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package exports -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package exports -destination ./mock_mailer.go -source=../../internal/mailer/interfaces.go

var (
	adminID  = types.Identity{AccountID: "acc-1", UserID: "user-admin", Role: types.RoleAdmin}
	workerID = types.Identity{AccountID: "acc-1", UserID: "user-worker", Role: types.RoleWorker}
)

// passthroughTx runs the callback directly, standing in for a database
// transaction in service tests.
type passthroughTx struct{}

func (passthroughTx) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func newTestService(st StorageInterface, mail mailer.EmailProviderInterface) *Service {
	return NewService(st, passthroughTx{}, mail, logging.NewNoopLogger(), tracing.NewNoopTracer())
}

func TestService_BuildExport(t *testing.T) {
	dbErr := errors.New("db error")
	scanIDs := []string{"scan-1", "scan-2", "scan-3"}

	testCases := []struct {
		name        string
		id          types.Identity
		filter      Filter
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:   "admin captures all matching scans",
			id:     adminID,
			filter: Filter{FormKey: "barcode_location", FromDate: "2026-03-01", ToDate: "2026-03-05"},
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().SelectUnexportedScanIDs(gomock.Any(), "acc-1", gomock.Any(), "").Return(scanIDs, nil)
				st.EXPECT().CreateExport(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e *types.Export) (*types.Export, error) {
						if e.Status != types.ExportStatusReady {
							t.Errorf("expected status %q, got %q", types.ExportStatusReady, e.Status)
						}
						if e.ScanCount != 3 {
							t.Errorf("expected scan count 3, got %d", e.ScanCount)
						}
						if e.FromTS == nil || e.ToTS == nil {
							t.Fatal("expected widened date bounds")
						}
						if got := e.FromTS.Format(time.RFC3339); got != "2026-03-01T00:00:00Z" {
							t.Errorf("unexpected from bound %s", got)
						}
						if got := e.ToTS.Format(time.RFC3339); got != "2026-03-05T23:59:59Z" {
							t.Errorf("unexpected to bound %s", got)
						}
						if !strings.Contains(e.Params, `"form_key":"barcode_location"`) {
							t.Errorf("unexpected params %s", e.Params)
						}
						out := *e
						out.ID = "exp-1"
						return &out, nil
					})
				st.EXPECT().LinkExportScans(gomock.Any(), "exp-1", scanIDs).Return(nil)
				st.EXPECT().ClaimScans(gomock.Any(), "acc-1", scanIDs, "exp-1").Return(nil)
			},
		},
		{
			name:   "worker selection is owner scoped",
			id:     workerID,
			filter: Filter{},
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().SelectUnexportedScanIDs(gomock.Any(), "acc-1", gomock.Any(), "user-worker").Return(scanIDs, nil)
				st.EXPECT().CreateExport(gomock.Any(), gomock.Any()).Return(&types.Export{ID: "exp-1", ScanCount: 3}, nil)
				st.EXPECT().LinkExportScans(gomock.Any(), "exp-1", scanIDs).Return(nil)
				st.EXPECT().ClaimScans(gomock.Any(), "acc-1", scanIDs, "exp-1").Return(nil)
			},
		},
		{
			name:   "no matching scans",
			id:     adminID,
			filter: Filter{FormKey: "barcode_only"},
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().SelectUnexportedScanIDs(gomock.Any(), "acc-1", gomock.Any(), "").Return([]string{}, nil)
			},
			expectedErr: ErrEmptySelection,
		},
		{
			name:        "malformed from date",
			id:          adminID,
			filter:      Filter{FromDate: "03/01/2026"},
			setupMocks:  func(st *MockStorageInterface) {},
			expectedErr: ErrInvalidFilter,
		},
		{
			name:        "inverted date range",
			id:          adminID,
			filter:      Filter{FromDate: "2026-03-05", ToDate: "2026-03-01"},
			setupMocks:  func(st *MockStorageInterface) {},
			expectedErr: ErrInvalidFilter,
		},
		{
			name:   "claim conflict aborts the build",
			id:     adminID,
			filter: Filter{},
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().SelectUnexportedScanIDs(gomock.Any(), "acc-1", gomock.Any(), "").Return(scanIDs, nil)
				st.EXPECT().CreateExport(gomock.Any(), gomock.Any()).Return(&types.Export{ID: "exp-1"}, nil)
				st.EXPECT().LinkExportScans(gomock.Any(), "exp-1", scanIDs).Return(nil)
				st.EXPECT().ClaimScans(gomock.Any(), "acc-1", scanIDs, "exp-1").Return(storage.ErrScanAlreadyClaimed)
			},
			expectedErr: storage.ErrScanAlreadyClaimed,
		},
		{
			name: "selection error",
			id:   adminID,
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().SelectUnexportedScanIDs(gomock.Any(), "acc-1", gomock.Any(), "").Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			s := newTestService(mockStorage, NewMockEmailProviderInterface(ctrl))

			export, err := s.BuildExport(context.Background(), tc.id, tc.filter)
			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
			if tc.expectedErr == nil && export == nil {
				t.Error("expected an export, got nil")
			}
		})
	}
}

func TestService_GetExportNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().GetExportByID(gomock.Any(), "acc-1", "exp-404", "user-worker").Return(nil, storage.ErrNotFound)

	s := newTestService(mockStorage, NewMockEmailProviderInterface(ctrl))

	if _, err := s.GetExport(context.Background(), workerID, "exp-404"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected %v, got %v", ErrNotFound, err)
	}
}

func TestService_DownloadExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	export := &types.Export{ID: "exp-1", AccountID: "acc-1", ScanCount: 1}
	userID := "user-worker"
	scans := []*types.Scan{{
		ID:        "scan-1",
		AccountID: "acc-1",
		UserID:    &userID,
		Username:  "alice",
		FormKey:   "barcode_only",
		Payload:   types.Payload{{Key: "barcode", Value: "4006381333931"}},
		ScannedAt: time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC),
	}}

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().GetExportByID(gomock.Any(), "acc-1", "exp-1", "").Return(export, nil)
	mockStorage.EXPECT().ListScansByExportID(gomock.Any(), "acc-1", "exp-1").Return(scans, nil)

	s := newTestService(mockStorage, NewMockEmailProviderInterface(ctrl))

	artifact, err := s.DownloadExport(context.Background(), adminID, "exp-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.HasPrefix(artifact.Filename, "export_exp-1_") || !strings.HasSuffix(artifact.Filename, ".csv") {
		t.Errorf("unexpected fallback filename %s", artifact.Filename)
	}
	if !bytes.HasPrefix(artifact.Data, []byte("ID,Date,Form,User,Data\n")) {
		t.Errorf("unexpected csv header in %q", artifact.Data)
	}
	if !bytes.Contains(artifact.Data, []byte("barcode: 4006381333931")) {
		t.Errorf("expected flattened payload in %q", artifact.Data)
	}
}

func TestService_DeliverExportPreconditions(t *testing.T) {
	testCases := []struct {
		name        string
		email       string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:        "missing email",
			email:       "",
			setupMocks:  func(st *MockStorageInterface) {},
			expectedErr: ErrInvalidEmail,
		},
		{
			name:        "email without at sign",
			email:       "not-an-address",
			setupMocks:  func(st *MockStorageInterface) {},
			expectedErr: ErrInvalidEmail,
		},
		{
			name:  "empty balance short-circuits before the export is touched",
			email: "ops@example.com",
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(&types.Account{ID: "acc-1", Tokens: 0}, nil)
			},
			expectedErr: ErrInsufficientTokens,
		},
		{
			name:  "unknown export",
			email: "ops@example.com",
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(&types.Account{ID: "acc-1", Tokens: 5}, nil)
				st.EXPECT().GetExportByID(gomock.Any(), "acc-1", "exp-1", "").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			// No provider interaction is expected on any precondition failure.
			mockMail := NewMockEmailProviderInterface(ctrl)

			s := newTestService(mockStorage, mockMail)

			if _, err := s.DeliverExport(context.Background(), adminID, "exp-1", tc.email); !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_DeliverExportSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	export := &types.Export{ID: "exp-1", AccountID: "acc-1", Status: types.ExportStatusReady, ScanCount: 2}
	scans := []*types.Scan{
		{ID: "scan-1", FormKey: "barcode_only", Payload: types.Payload{{Key: "barcode", Value: "111"}}},
		{ID: "scan-2", FormKey: "barcode_only", Payload: types.Payload{{Key: "barcode", Value: "222"}}},
	}

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(&types.Account{ID: "acc-1", Tokens: 3}, nil)
	mockStorage.EXPECT().GetExportByID(gomock.Any(), "acc-1", "exp-1", "").Return(export, nil)
	mockStorage.EXPECT().ListScansByExportID(gomock.Any(), "acc-1", "exp-1").Return(scans, nil)

	mockMail := NewMockEmailProviderInterface(ctrl)
	mockMail.EXPECT().Name().Return("resend").AnyTimes()
	mockMail.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg *mailer.Message) (string, error) {
			if msg.To != "ops@example.com" {
				t.Errorf("unexpected recipient %s", msg.To)
			}
			if msg.Subject != "Scan Export #exp-1" {
				t.Errorf("unexpected subject %s", msg.Subject)
			}
			if len(msg.Attachments) != 1 || msg.Attachments[0].ContentType != "text/csv" {
				t.Fatalf("expected one csv attachment, got %+v", msg.Attachments)
			}
			return "msg-42", nil
		})

	mockStorage.EXPECT().UpdateScanDelivery(gomock.Any(), "acc-1", "exp-1", "ops@example.com", types.DeliveryStatusSent, gomock.Any()).Return(nil)
	mockStorage.EXPECT().CreateDeliveryRecord(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *types.DeliveryRecord) (*types.DeliveryRecord, error) {
			if rec.Status != types.DeliveryStatusSent {
				t.Errorf("expected status %q, got %q", types.DeliveryStatusSent, rec.Status)
			}
			if rec.MessageID == nil || *rec.MessageID != "msg-42" {
				t.Errorf("expected provider message id, got %v", rec.MessageID)
			}
			if rec.Error != nil {
				t.Errorf("expected no error detail, got %v", *rec.Error)
			}
			out := *rec
			out.ID = "ev-1"
			return &out, nil
		})
	mockStorage.EXPECT().SpendToken(gomock.Any(), "acc-1").Return(nil)
	mockStorage.EXPECT().MarkExportSent(gomock.Any(), "acc-1", "exp-1").Return(nil)

	s := newTestService(mockStorage, mockMail)

	rec, err := s.DeliverExport(context.Background(), adminID, "exp-1", "ops@example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.ID != "ev-1" {
		t.Errorf("unexpected record %+v", rec)
	}
}

func TestService_DeliverExportProviderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	export := &types.Export{ID: "exp-1", AccountID: "acc-1", Status: types.ExportStatusReady, ScanCount: 1}
	scans := []*types.Scan{{ID: "scan-1", FormKey: "barcode_only", Payload: types.Payload{{Key: "barcode", Value: "111"}}}}

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(&types.Account{ID: "acc-1", Tokens: 1}, nil)
	mockStorage.EXPECT().GetExportByID(gomock.Any(), "acc-1", "exp-1", "").Return(export, nil)
	mockStorage.EXPECT().ListScansByExportID(gomock.Any(), "acc-1", "exp-1").Return(scans, nil)

	mockMail := NewMockEmailProviderInterface(ctrl)
	mockMail.EXPECT().Name().Return("resend").AnyTimes()
	mockMail.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", errors.New("451 rate limited"))

	// The failure is recorded with the provider detail, and no token is spent.
	mockStorage.EXPECT().UpdateScanDelivery(gomock.Any(), "acc-1", "exp-1", "ops@example.com", types.DeliveryStatusFailed, gomock.Any()).Return(nil)
	mockStorage.EXPECT().CreateDeliveryRecord(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *types.DeliveryRecord) (*types.DeliveryRecord, error) {
			if rec.Status != types.DeliveryStatusFailed {
				t.Errorf("expected status %q, got %q", types.DeliveryStatusFailed, rec.Status)
			}
			if rec.Error == nil || *rec.Error != "451 rate limited" {
				t.Errorf("expected provider detail, got %v", rec.Error)
			}
			return rec, nil
		})

	s := newTestService(mockStorage, mockMail)

	_, err := s.DeliverExport(context.Background(), adminID, "exp-1", "ops@example.com")
	if !errors.Is(err, ErrDeliveryFailed) {
		t.Errorf("expected %v, got %v", ErrDeliveryFailed, err)
	}
	if strings.Contains(err.Error(), "rate limited") {
		t.Errorf("provider detail leaked into caller error: %v", err)
	}
}

func TestService_ListDeliveries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	records := []*types.DeliveryRecord{{ID: "ev-1", Status: types.DeliveryStatusSent}}
	mockStorage.EXPECT().ListDeliveryRecords(gomock.Any(), "acc-1").Return(records, nil)

	s := newTestService(mockStorage, NewMockEmailProviderInterface(ctrl))

	got, err := s.ListDeliveries(context.Background(), adminID)
	if err != nil || len(got) != 1 {
		t.Fatalf("expected one record, got %v, %v", got, err)
	}

	if _, err := s.ListDeliveries(context.Background(), workerID); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("expected %v, got %v", ErrPermissionDenied, err)
	}
}
