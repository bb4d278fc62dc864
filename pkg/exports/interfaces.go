// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package exports

import (
	"context"
	"time"

	"github.com/omnaris/scan-service/internal/types"
)

type ServiceInterface interface {
	BuildExport(ctx context.Context, id types.Identity, filter Filter) (*types.Export, error)
	ListExports(ctx context.Context, id types.Identity) ([]*types.Export, error)
	GetExport(ctx context.Context, id types.Identity, exportID string) (*types.Export, error)
	DownloadExport(ctx context.Context, id types.Identity, exportID string) (*Artifact, error)
	DeliverExport(ctx context.Context, id types.Identity, exportID, destination string) (*types.DeliveryRecord, error)
	ListDeliveries(ctx context.Context, id types.Identity) ([]*types.DeliveryRecord, error)
}

type StorageInterface interface {
	GetAccountByID(ctx context.Context, accountID string) (*types.Account, error)
	SpendToken(ctx context.Context, accountID string) error

	SelectUnexportedScanIDs(ctx context.Context, accountID string, filter types.ScanFilter, ownerID string) ([]string, error)
	ClaimScans(ctx context.Context, accountID string, scanIDs []string, exportID string) error
	ListScansByExportID(ctx context.Context, accountID, exportID string) ([]*types.Scan, error)
	UpdateScanDelivery(ctx context.Context, accountID, exportID, email, status string, when time.Time) error

	CreateExport(ctx context.Context, e *types.Export) (*types.Export, error)
	GetExportByID(ctx context.Context, accountID, exportID, ownerID string) (*types.Export, error)
	ListExports(ctx context.Context, accountID, ownerID string) ([]*types.Export, error)
	LinkExportScans(ctx context.Context, exportID string, scanIDs []string) error
	MarkExportSent(ctx context.Context, accountID, exportID string) error

	CreateDeliveryRecord(ctx context.Context, rec *types.DeliveryRecord) (*types.DeliveryRecord, error)
	ListDeliveryRecords(ctx context.Context, accountID string) ([]*types.DeliveryRecord, error)
}

// TxRunnerInterface runs a function inside one storage transaction.
type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
