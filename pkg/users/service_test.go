// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/omnaris/scan-service/internal/logging"
	"github.com/omnaris/scan-service/internal/storage"
	"github.com/omnaris/scan-service/internal/tracing"
	"github.com/omnaris/scan-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package users -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package users -destination ./mock_hash.go -source=../../internal/hash/hash.go

var (
	adminID  = types.Identity{AccountID: "acc-1", UserID: "user-admin", Role: types.RoleAdmin}
	workerID = types.Identity{AccountID: "acc-1", UserID: "user-worker", Role: types.RoleWorker}
)

func newTestService(st StorageInterface, hasher *MockPasswordHasherInterface) *Service {
	return NewService(st, hasher, logging.NewNoopLogger(), tracing.NewNoopTracer())
}

func TestService_CreateUser(t *testing.T) {
	valid := CreateRequest{
		Username: "carol",
		Email:    "Carol@Example.com",
		Password: "hunter22",
		Role:     types.RoleWorker,
	}

	testCases := []struct {
		name        string
		id          types.Identity
		req         CreateRequest
		setupMocks  func(*MockStorageInterface, *MockPasswordHasherInterface)
		expectedErr error
	}{
		{
			name: "success normalizes email and defaults scanner mode",
			id:   adminID,
			req:  valid,
			setupMocks: func(st *MockStorageInterface, h *MockPasswordHasherInterface) {
				st.EXPECT().UsernameOrEmailExists(gomock.Any(), "acc-1", "carol", "carol@example.com").Return(false, nil)
				h.EXPECT().Hash("hunter22").Return("$2a$12$hash", nil)
				st.EXPECT().CreateUser(gomock.Any(), gomock.Any(), "$2a$12$hash").DoAndReturn(
					func(_ context.Context, u *types.User, _ string) (*types.User, error) {
						if u.Email != "carol@example.com" {
							t.Errorf("email not normalized: %s", u.Email)
						}
						if u.ScannerMode != types.ScannerModeKeyboard {
							t.Errorf("expected default scanner mode, got %s", u.ScannerMode)
						}
						if !u.Active {
							t.Error("expected new user to be active")
						}
						out := *u
						out.ID = "user-new"
						return &out, nil
					})
			},
		},
		{
			name:        "worker cannot create users",
			id:          workerID,
			req:         valid,
			setupMocks:  func(st *MockStorageInterface, h *MockPasswordHasherInterface) {},
			expectedErr: ErrPermissionDenied,
		},
		{
			name:        "short password",
			id:          adminID,
			req:         CreateRequest{Username: "carol", Email: "carol@example.com", Password: "abc", Role: types.RoleWorker},
			setupMocks:  func(st *MockStorageInterface, h *MockPasswordHasherInterface) {},
			expectedErr: ErrInvalidRequest,
		},
		{
			name:        "unknown role",
			id:          adminID,
			req:         CreateRequest{Username: "carol", Email: "carol@example.com", Password: "hunter22", Role: "owner"},
			setupMocks:  func(st *MockStorageInterface, h *MockPasswordHasherInterface) {},
			expectedErr: ErrInvalidRequest,
		},
		{
			name: "duplicate username",
			id:   adminID,
			req:  valid,
			setupMocks: func(st *MockStorageInterface, h *MockPasswordHasherInterface) {
				st.EXPECT().UsernameOrEmailExists(gomock.Any(), "acc-1", "carol", "carol@example.com").Return(true, nil)
			},
			expectedErr: ErrDuplicateUser,
		},
		{
			name: "constraint race surfaces as duplicate",
			id:   adminID,
			req:  valid,
			setupMocks: func(st *MockStorageInterface, h *MockPasswordHasherInterface) {
				st.EXPECT().UsernameOrEmailExists(gomock.Any(), "acc-1", "carol", "carol@example.com").Return(false, nil)
				h.EXPECT().Hash("hunter22").Return("$2a$12$hash", nil)
				st.EXPECT().CreateUser(gomock.Any(), gomock.Any(), "$2a$12$hash").Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: ErrDuplicateUser,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockHasher := NewMockPasswordHasherInterface(ctrl)
			tc.setupMocks(mockStorage, mockHasher)

			s := newTestService(mockStorage, mockHasher)

			u, err := s.CreateUser(context.Background(), tc.id, tc.req)
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
			if tc.expectedErr == nil && u.ID == "" {
				t.Error("expected created user with an id")
			}
		})
	}
}

func TestService_ManageUser(t *testing.T) {
	testCases := []struct {
		name        string
		run         func(*Service) error
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "admin changes another user's role",
			run: func(s *Service) error {
				return s.UpdateRole(context.Background(), adminID, "user-worker", types.RoleAdmin)
			},
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().UpdateUserRole(gomock.Any(), "acc-1", "user-worker", types.RoleAdmin).Return(nil)
			},
		},
		{
			name: "admin cannot change its own role",
			run: func(s *Service) error {
				return s.UpdateRole(context.Background(), adminID, adminID.UserID, types.RoleWorker)
			},
			setupMocks:  func(st *MockStorageInterface) {},
			expectedErr: ErrPermissionDenied,
		},
		{
			name: "invalid role is rejected before the policy check",
			run: func(s *Service) error {
				return s.UpdateRole(context.Background(), adminID, "user-worker", "root")
			},
			setupMocks:  func(st *MockStorageInterface) {},
			expectedErr: ErrInvalidRequest,
		},
		{
			name: "admin cannot deactivate itself",
			run: func(s *Service) error {
				return s.ToggleActive(context.Background(), adminID, adminID.UserID)
			},
			setupMocks:  func(st *MockStorageInterface) {},
			expectedErr: ErrPermissionDenied,
		},
		{
			name: "worker cannot delete anyone",
			run: func(s *Service) error {
				return s.DeleteUser(context.Background(), workerID, "user-admin")
			},
			setupMocks:  func(st *MockStorageInterface) {},
			expectedErr: ErrPermissionDenied,
		},
		{
			name: "delete of a missing user",
			run: func(s *Service) error {
				return s.DeleteUser(context.Background(), adminID, "user-gone")
			},
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().SoftDeleteUser(gomock.Any(), "acc-1", "user-gone").Return(storage.ErrNotFound)
			},
			expectedErr: ErrNotFound,
		},
		{
			name: "worker updates own scanner mode",
			run: func(s *Service) error {
				return s.UpdateScannerMode(context.Background(), workerID, workerID.UserID, types.ScannerModePhysical)
			},
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().UpdateScannerMode(gomock.Any(), "acc-1", "user-worker", types.ScannerModePhysical).Return(nil)
			},
		},
		{
			name: "worker cannot update another user's scanner mode",
			run: func(s *Service) error {
				return s.UpdateScannerMode(context.Background(), workerID, "user-admin", types.ScannerModePhysical)
			},
			setupMocks:  func(st *MockStorageInterface) {},
			expectedErr: ErrPermissionDenied,
		},
		{
			name: "billing email is admin only",
			run: func(s *Service) error {
				return s.UpdateBillingEmail(context.Background(), workerID, "billing@example.com")
			},
			setupMocks:  func(st *MockStorageInterface) {},
			expectedErr: ErrPermissionDenied,
		},
		{
			name: "billing email update",
			run: func(s *Service) error {
				return s.UpdateBillingEmail(context.Background(), adminID, "Billing@Example.com")
			},
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().UpdateBillingEmail(gomock.Any(), "acc-1", "billing@example.com").Return(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			s := newTestService(mockStorage, NewMockPasswordHasherInterface(ctrl))

			if err := tc.run(s); !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_GetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().GetUserByID(gomock.Any(), "acc-1", "user-worker").Return(&types.User{ID: "user-worker"}, nil)

	s := newTestService(mockStorage, NewMockPasswordHasherInterface(ctrl))

	// A worker fetches itself.
	u, err := s.GetUser(context.Background(), workerID, "user-worker")
	if err != nil || u.ID != "user-worker" {
		t.Fatalf("expected own user, got %v, %v", u, err)
	}

	// A worker fetching a peer gets not-found, not forbidden.
	if _, err := s.GetUser(context.Background(), workerID, "user-admin"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected %v, got %v", ErrNotFound, err)
	}
}

func TestService_ListUsersRequiresAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)

	s := newTestService(mockStorage, NewMockPasswordHasherInterface(ctrl))

	if _, err := s.ListUsers(context.Background(), workerID); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("expected %v, got %v", ErrPermissionDenied, err)
	}
}
