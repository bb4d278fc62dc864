// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/omnaris/scan-service/internal/authorization"
	"github.com/omnaris/scan-service/internal/hash"
	"github.com/omnaris/scan-service/internal/logging"
	"github.com/omnaris/scan-service/internal/storage"
	"github.com/omnaris/scan-service/internal/tracing"
	"github.com/omnaris/scan-service/internal/types"
)

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("user not found")
	ErrDuplicateUser    = errors.New("username or email already in use")
	ErrInvalidRequest   = errors.New("invalid request")
)

// CreateRequest carries a new worker or admin account member.
type CreateRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=64"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Role        string `json:"role" validate:"required,oneof=admin worker"`
	ScannerMode string `json:"scanner_mode" validate:"omitempty,oneof=keyboard physical"`
}

type Service struct {
	storage  StorageInterface
	hasher   hash.PasswordHasherInterface
	validate *validator.Validate
	logger   logging.LoggerInterface
	tracer   tracing.TracingInterface
}

var _ ServiceInterface = (*Service)(nil)

func NewService(st StorageInterface, hasher hash.PasswordHasherInterface, logger logging.LoggerInterface, tracer tracing.TracingInterface) *Service {
	s := new(Service)
	s.storage = st
	s.hasher = hasher
	s.validate = validator.New(validator.WithRequiredStructEnabled())
	s.logger = logger
	s.tracer = tracer
	return s
}

func (s *Service) ListUsers(ctx context.Context, id types.Identity) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.ListUsers")
	defer span.End()

	if !id.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	return s.storage.ListUsers(ctx, id.AccountID)
}

// GetUser returns a member of the caller's account. Workers can only fetch
// themselves.
func (s *Service) GetUser(ctx context.Context, id types.Identity, userID string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.GetUser")
	defer span.End()

	if !authorization.CanAccess(id, id.AccountID, userID) {
		return nil, ErrNotFound
	}
	u, err := s.storage.GetUserByID(ctx, id.AccountID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) CreateUser(ctx context.Context, id types.Identity, req CreateRequest) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.CreateUser")
	defer span.End()

	if !id.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.ScannerMode == "" {
		req.ScannerMode = types.ScannerModeKeyboard
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	taken, err := s.storage.UsernameOrEmailExists(ctx, id.AccountID, req.Username, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check uniqueness: %w", err)
	}
	if taken {
		return nil, ErrDuplicateUser
	}

	credentialHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash credential: %w", err)
	}

	u, err := s.storage.CreateUser(ctx, &types.User{
		AccountID:   id.AccountID,
		Username:    req.Username,
		Email:       req.Email,
		Role:        req.Role,
		ScannerMode: req.ScannerMode,
		Active:      true,
	}, credentialHash)
	if err != nil {
		// The uniqueness pre-check races with concurrent creates, the
		// constraint is authoritative.
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Infof("created %s user %s in account %s", u.Role, u.ID, id.AccountID)
	return u, nil
}

func (s *Service) UpdateRole(ctx context.Context, id types.Identity, userID, role string) error {
	ctx, span := s.tracer.Start(ctx, "users.UpdateRole")
	defer span.End()

	if role != types.RoleAdmin && role != types.RoleWorker {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidRequest, role)
	}
	if !authorization.CanManageUser(id, id.AccountID, userID) {
		return ErrPermissionDenied
	}
	return s.translateNotFound(s.storage.UpdateUserRole(ctx, id.AccountID, userID, role))
}

func (s *Service) ToggleActive(ctx context.Context, id types.Identity, userID string) error {
	ctx, span := s.tracer.Start(ctx, "users.ToggleActive")
	defer span.End()

	if !authorization.CanManageUser(id, id.AccountID, userID) {
		return ErrPermissionDenied
	}
	return s.translateNotFound(s.storage.ToggleUserActive(ctx, id.AccountID, userID))
}

func (s *Service) DeleteUser(ctx context.Context, id types.Identity, userID string) error {
	ctx, span := s.tracer.Start(ctx, "users.DeleteUser")
	defer span.End()

	if !authorization.CanManageUser(id, id.AccountID, userID) {
		return ErrPermissionDenied
	}
	if err := s.translateNotFound(s.storage.SoftDeleteUser(ctx, id.AccountID, userID)); err != nil {
		return err
	}
	s.logger.Infof("soft deleted user %s in account %s", userID, id.AccountID)
	return nil
}

// UpdateScannerMode changes how a user's capture device is interpreted.
// Every user may change their own mode, admins may change anyone else's.
func (s *Service) UpdateScannerMode(ctx context.Context, id types.Identity, userID, mode string) error {
	ctx, span := s.tracer.Start(ctx, "users.UpdateScannerMode")
	defer span.End()

	if mode != types.ScannerModeKeyboard && mode != types.ScannerModePhysical {
		return fmt.Errorf("%w: unknown scanner mode %q", ErrInvalidRequest, mode)
	}
	if id.UserID != userID && !authorization.CanManageUser(id, id.AccountID, userID) {
		return ErrPermissionDenied
	}
	return s.translateNotFound(s.storage.UpdateScannerMode(ctx, id.AccountID, userID, mode))
}

func (s *Service) UpdateBillingEmail(ctx context.Context, id types.Identity, email string) error {
	ctx, span := s.tracer.Start(ctx, "users.UpdateBillingEmail")
	defer span.End()

	if !id.IsAdmin() {
		return ErrPermissionDenied
	}
	email = strings.TrimSpace(strings.ToLower(email))
	if err := s.validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return s.translateNotFound(s.storage.UpdateBillingEmail(ctx, id.AccountID, email))
}

func (s *Service) translateNotFound(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
