// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package scans

import (
	"context"

	"github.com/omnaris/scan-service/internal/types"
)

type ServiceInterface interface {
	ListForms(ctx context.Context) []Form
	SubmitScan(ctx context.Context, id types.Identity, formKey string, values map[string]string) (*types.Scan, error)
	ListScans(ctx context.Context, id types.Identity, filter ListFilter) (*ScanPage, error)
}

type StorageInterface interface {
	CreateScan(ctx context.Context, s *types.Scan) (*types.Scan, error)
	ListUnexportedScans(ctx context.Context, accountID string, filter types.ScanFilter, ownerID string, page, size int64) ([]*types.Scan, error)
	CountUnexportedScans(ctx context.Context, accountID string, filter types.ScanFilter, ownerID string) (int64, error)
	ListFormKeys(ctx context.Context, accountID string) ([]string, error)
}
