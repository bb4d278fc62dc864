// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package activity

import (
	"context"

	"github.com/omnaris/scan-service/internal/types"
)

type ServiceInterface interface {
	GetOverview(ctx context.Context, id types.Identity) (*Overview, error)
}

type StorageInterface interface {
	GetActivityStats(ctx context.Context, accountID, ownerID string) (*types.ActivityStats, error)
	CountScansPerForm(ctx context.Context, accountID, ownerID string) ([]*types.FormScanCount, error)
	CountScansPerUser(ctx context.Context, accountID string) ([]*types.UserScanCount, error)
	CountScansPerDay(ctx context.Context, accountID, ownerID string, days int) ([]*types.DayScanCount, error)
	ListRecentScans(ctx context.Context, accountID, ownerID string, limit uint64) ([]*types.Scan, error)
}
