// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"

	"github.com/omnaris/scan-service/internal/types"
)

type ServiceInterface interface {
	ListUsers(ctx context.Context, id types.Identity) ([]*types.User, error)
	GetUser(ctx context.Context, id types.Identity, userID string) (*types.User, error)
	CreateUser(ctx context.Context, id types.Identity, req CreateRequest) (*types.User, error)
	UpdateRole(ctx context.Context, id types.Identity, userID, role string) error
	ToggleActive(ctx context.Context, id types.Identity, userID string) error
	DeleteUser(ctx context.Context, id types.Identity, userID string) error
	UpdateScannerMode(ctx context.Context, id types.Identity, userID, mode string) error
	UpdateBillingEmail(ctx context.Context, id types.Identity, email string) error
}

type StorageInterface interface {
	CreateUser(ctx context.Context, u *types.User, credentialHash string) (*types.User, error)
	GetUserByID(ctx context.Context, accountID, userID string) (*types.User, error)
	ListUsers(ctx context.Context, accountID string) ([]*types.User, error)
	UsernameOrEmailExists(ctx context.Context, accountID, username, email string) (bool, error)
	UpdateUserRole(ctx context.Context, accountID, userID, role string) error
	ToggleUserActive(ctx context.Context, accountID, userID string) error
	SoftDeleteUser(ctx context.Context, accountID, userID string) error
	UpdateScannerMode(ctx context.Context, accountID, userID, mode string) error
	UpdateBillingEmail(ctx context.Context, accountID, email string) error
}
