// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/omnaris/scan-service/internal/types"
)

type StorageInterface interface {
	// accounts
	GetAccountByID(ctx context.Context, accountID string) (*types.Account, error)
	UpdateBillingEmail(ctx context.Context, accountID, email string) error
	SpendToken(ctx context.Context, accountID string) error

	// users
	CreateUser(ctx context.Context, u *types.User, credentialHash string) (*types.User, error)
	GetUserByID(ctx context.Context, accountID, userID string) (*types.User, error)
	ListUsers(ctx context.Context, accountID string) ([]*types.User, error)
	UsernameOrEmailExists(ctx context.Context, accountID, username, email string) (bool, error)
	UpdateUserRole(ctx context.Context, accountID, userID, role string) error
	ToggleUserActive(ctx context.Context, accountID, userID string) error
	SoftDeleteUser(ctx context.Context, accountID, userID string) error
	UpdateScannerMode(ctx context.Context, accountID, userID, mode string) error

	// scans
	CreateScan(ctx context.Context, scan *types.Scan) (*types.Scan, error)
	ListUnexportedScans(ctx context.Context, accountID string, filter types.ScanFilter, ownerID string, page, size int64) ([]*types.Scan, error)
	CountUnexportedScans(ctx context.Context, accountID string, filter types.ScanFilter, ownerID string) (int64, error)
	ListFormKeys(ctx context.Context, accountID string) ([]string, error)
	SelectUnexportedScanIDs(ctx context.Context, accountID string, filter types.ScanFilter, ownerID string) ([]string, error)
	ClaimScans(ctx context.Context, accountID string, scanIDs []string, exportID string) error
	ListScansByExportID(ctx context.Context, accountID, exportID string) ([]*types.Scan, error)
	UpdateScanDelivery(ctx context.Context, accountID, exportID, email, status string, when time.Time) error

	// exports
	CreateExport(ctx context.Context, e *types.Export) (*types.Export, error)
	GetExportByID(ctx context.Context, accountID, exportID, ownerID string) (*types.Export, error)
	ListExports(ctx context.Context, accountID, ownerID string) ([]*types.Export, error)
	LinkExportScans(ctx context.Context, exportID string, scanIDs []string) error
	MarkExportSent(ctx context.Context, accountID, exportID string) error

	// deliveries
	CreateDeliveryRecord(ctx context.Context, rec *types.DeliveryRecord) (*types.DeliveryRecord, error)
	ListDeliveryRecords(ctx context.Context, accountID string) ([]*types.DeliveryRecord, error)

	// activity
	GetActivityStats(ctx context.Context, accountID, ownerID string) (*types.ActivityStats, error)
	CountScansPerForm(ctx context.Context, accountID, ownerID string) ([]*types.FormScanCount, error)
	CountScansPerUser(ctx context.Context, accountID string) ([]*types.UserScanCount, error)
	CountScansPerDay(ctx context.Context, accountID, ownerID string, days int) ([]*types.DayScanCount, error)
	ListRecentScans(ctx context.Context, accountID, ownerID string, limit uint64) ([]*types.Scan, error)
}
