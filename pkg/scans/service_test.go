// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package scans

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/omnaris/scan-service/internal/logging"
	"github.com/omnaris/scan-service/internal/tracing"
	"github.com/omnaris/scan-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package scans -destination ./mock_interfaces.go -source=./interfaces.go

var (
	adminID  = types.Identity{AccountID: "acc-1", UserID: "user-admin", Role: types.RoleAdmin}
	workerID = types.Identity{AccountID: "acc-1", UserID: "user-worker", Role: types.RoleWorker}
)

func newTestService(st StorageInterface) *Service {
	return NewService(st, logging.NewNoopLogger(), tracing.NewNoopTracer())
}

func TestService_SubmitScan(t *testing.T) {
	testCases := []struct {
		name        string
		formKey     string
		values      map[string]string
		setupMocks  func(*MockStorageInterface)
		expected    types.Payload
		expectedErr error
	}{
		{
			name:    "single field form",
			formKey: "barcode_only",
			values:  map[string]string{"barcode": " 4006381333931 "},
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().CreateScan(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, s *types.Scan) (*types.Scan, error) {
						out := *s
						out.ID = "scan-1"
						return &out, nil
					})
			},
			expected: types.Payload{{Key: "barcode", Value: "4006381333931"}},
		},
		{
			name:    "two field form keeps layout order",
			formKey: "barcode_location",
			values:  map[string]string{"location": "aisle 7", "barcode": "111", "extra": "dropped"},
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().CreateScan(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, s *types.Scan) (*types.Scan, error) {
						return s, nil
					})
			},
			expected: types.Payload{{Key: "barcode", Value: "111"}, {Key: "location", Value: "aisle 7"}},
		},
		{
			name:        "unknown form",
			formKey:     "pallet_count",
			values:      map[string]string{"barcode": "111"},
			setupMocks:  func(st *MockStorageInterface) {},
			expectedErr: ErrUnknownForm,
		},
		{
			name:        "blank required field",
			formKey:     "barcode_location",
			values:      map[string]string{"barcode": "111", "location": "   "},
			setupMocks:  func(st *MockStorageInterface) {},
			expectedErr: ErrMissingField,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			s := newTestService(mockStorage)

			scan, err := s.SubmitScan(context.Background(), workerID, tc.formKey, tc.values)
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
			if tc.expectedErr != nil {
				return
			}
			if len(scan.Payload) != len(tc.expected) {
				t.Fatalf("expected payload %v, got %v", tc.expected, scan.Payload)
			}
			for i, f := range tc.expected {
				if scan.Payload[i] != f {
					t.Errorf("field %d: expected %v, got %v", i, f, scan.Payload[i])
				}
			}
			if scan.UserID == nil || *scan.UserID != workerID.UserID {
				t.Errorf("expected scan attributed to %s, got %v", workerID.UserID, scan.UserID)
			}
		})
	}
}

func TestService_ListScans(t *testing.T) {
	dbErr := errors.New("db error")
	stored := []*types.Scan{{ID: "scan-1"}, {ID: "scan-2"}}

	testCases := []struct {
		name        string
		id          types.Identity
		filter      ListFilter
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:   "admin sees the whole account",
			id:     adminID,
			filter: ListFilter{FormKey: "barcode_only", Page: 2, PageSize: 10},
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().ListUnexportedScans(gomock.Any(), "acc-1", gomock.Any(), "", int64(2), int64(10)).Return(stored, nil)
				st.EXPECT().CountUnexportedScans(gomock.Any(), "acc-1", gomock.Any(), "").Return(int64(12), nil)
				st.EXPECT().ListFormKeys(gomock.Any(), "acc-1").Return([]string{"barcode_only"}, nil)
			},
		},
		{
			name: "worker is scoped to own scans",
			id:   workerID,
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().ListUnexportedScans(gomock.Any(), "acc-1", gomock.Any(), "user-worker", int64(0), int64(0)).Return(stored, nil)
				st.EXPECT().CountUnexportedScans(gomock.Any(), "acc-1", gomock.Any(), "user-worker").Return(int64(2), nil)
				st.EXPECT().ListFormKeys(gomock.Any(), "acc-1").Return([]string{"barcode_only"}, nil)
			},
		},
		{
			name:        "malformed date",
			id:          adminID,
			filter:      ListFilter{FromDate: "yesterday"},
			setupMocks:  func(st *MockStorageInterface) {},
			expectedErr: ErrInvalidFilter,
		},
		{
			name: "storage error",
			id:   adminID,
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().ListUnexportedScans(gomock.Any(), "acc-1", gomock.Any(), "", int64(0), int64(0)).Return(nil, dbErr)
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

			s := newTestService(mockStorage)

			page, err := s.ListScans(context.Background(), tc.id, tc.filter)
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
			if tc.expectedErr == nil && page.Total < int64(len(page.Scans)) {
				t.Errorf("total %d smaller than page %d", page.Total, len(page.Scans))
			}
		})
	}
}

func TestService_ListForms(t *testing.T) {
	s := newTestService(nil)

	got := s.ListForms(context.Background())
	if len(got) != 2 {
		t.Fatalf("expected 2 forms, got %d", len(got))
	}
	if got[0].Key != "barcode_only" || got[1].Key != "barcode_location" {
		t.Errorf("unexpected registry order: %+v", got)
	}
	if len(got[1].Fields) != 2 || got[1].Fields[0] != "barcode" {
		t.Errorf("unexpected fields for %s: %v", got[1].Key, got[1].Fields)
	}
}
