// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package activity

import (
	"context"
	"fmt"

	"github.com/omnaris/scan-service/internal/authorization"
	"github.com/omnaris/scan-service/internal/logging"
	"github.com/omnaris/scan-service/internal/tracing"
	"github.com/omnaris/scan-service/internal/types"
)

const (
	trendDays        = 30
	recentScansLimit = 10
)

// Overview is everything the activity page shows in one response. PerUser is
// only populated for admins.
type Overview struct {
	Stats   *types.ActivityStats
	PerForm []*types.FormScanCount
	PerUser []*types.UserScanCount
	PerDay  []*types.DayScanCount
	Recent  []*types.Scan
}

type Service struct {
	storage StorageInterface
	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
}

var _ ServiceInterface = (*Service)(nil)

func NewService(st StorageInterface, logger logging.LoggerInterface, tracer tracing.TracingInterface) *Service {
	s := new(Service)
	s.storage = st
	s.logger = logger
	s.tracer = tracer
	return s
}

func (s *Service) GetOverview(ctx context.Context, id types.Identity) (*Overview, error) {
	ctx, span := s.tracer.Start(ctx, "activity.GetOverview")
	defer span.End()

	ownerID := authorization.OwnerScope(id)

	stats, err := s.storage.GetActivityStats(ctx, id.AccountID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}
	perForm, err := s.storage.CountScansPerForm(ctx, id.AccountID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count per form: %w", err)
	}
	perDay, err := s.storage.CountScansPerDay(ctx, id.AccountID, ownerID, trendDays)
	if err != nil {
		return nil, fmt.Errorf("failed to count per day: %w", err)
	}
	recent, err := s.storage.ListRecentScans(ctx, id.AccountID, ownerID, recentScansLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent scans: %w", err)
	}

	overview := &Overview{
		Stats:   stats,
		PerForm: perForm,
		PerDay:  perDay,
		Recent:  recent,
	}
	if id.IsAdmin() {
		overview.PerUser, err = s.storage.CountScansPerUser(ctx, id.AccountID)
		if err != nil {
			return nil, fmt.Errorf("failed to count per user: %w", err)
		}
	}
	return overview, nil
}
