// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/omnaris/scan-service/internal/types"
)

// liveScans narrows a statistics query to non-deleted, account-scoped scans,
// owner scoped when ownerID is set.
func liveScans(q sq.SelectBuilder, accountID, ownerID string) sq.SelectBuilder {
	q = q.Where(sq.Eq{"s.account_id": accountID, "s.deleted_at": nil})
	if ownerID != "" {
		q = q.Where(sq.Eq{"s.user_id": ownerID})
	}
	return q
}

func (s *Storage) GetActivityStats(ctx context.Context, accountID, ownerID string) (*types.ActivityStats, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetActivityStats")
	defer span.End()

	var stats types.ActivityStats
	err := liveScans(
		s.db.Statement(ctx).
			Select(
				"COUNT(*)",
				"COUNT(*) FILTER (WHERE s.scanned_at::date = CURRENT_DATE)",
				"COUNT(*) FILTER (WHERE s.scanned_at >= CURRENT_DATE - INTERVAL '7 days')",
				"COUNT(*) FILTER (WHERE s.export_id IS NOT NULL)",
			).
			From("scans s"),
		accountID, ownerID,
	).
		QueryRowContext(ctx).
		Scan(&stats.TotalScans, &stats.TodayScans, &stats.WeekScans, &stats.ExportedScans)

	if err != nil {
		return nil, fmt.Errorf("failed to get activity stats: %w", err)
	}

	return &stats, nil
}

func (s *Storage) CountScansPerForm(ctx context.Context, accountID, ownerID string) ([]*types.FormScanCount, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountScansPerForm")
	defer span.End()

	rows, err := liveScans(
		s.db.Statement(ctx).
			Select("s.form_key", "COUNT(*)").
			From("scans s"),
		accountID, ownerID,
	).
		GroupBy("s.form_key").
		OrderBy("COUNT(*) DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count scans per form: %w", err)
	}
	defer rows.Close()

	var counts []*types.FormScanCount
	for rows.Next() {
		var c types.FormScanCount
		if err := rows.Scan(&c.FormKey, &c.ScanCount); err != nil {
			return nil, fmt.Errorf("failed to scan form count: %w", err)
		}
		counts = append(counts, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return counts, nil
}

func (s *Storage) CountScansPerUser(ctx context.Context, accountID string) ([]*types.UserScanCount, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountScansPerUser")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("u.username", "COUNT(s.id)").
		From("users u").
		LeftJoin("scans s ON u.id = s.user_id AND s.deleted_at IS NULL").
		Where(sq.Eq{"u.account_id": accountID, "u.deleted_at": nil}).
		GroupBy("u.id", "u.username").
		OrderBy("COUNT(s.id) DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count scans per user: %w", err)
	}
	defer rows.Close()

	var counts []*types.UserScanCount
	for rows.Next() {
		var c types.UserScanCount
		if err := rows.Scan(&c.Username, &c.ScanCount); err != nil {
			return nil, fmt.Errorf("failed to scan user count: %w", err)
		}
		counts = append(counts, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return counts, nil
}

func (s *Storage) CountScansPerDay(ctx context.Context, accountID, ownerID string, days int) ([]*types.DayScanCount, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountScansPerDay")
	defer span.End()

	rows, err := liveScans(
		s.db.Statement(ctx).
			Select("to_char(s.scanned_at::date, 'YYYY-MM-DD')", "COUNT(*)").
			From("scans s"),
		accountID, ownerID,
	).
		Where(sq.Expr("s.scanned_at >= CURRENT_DATE - make_interval(days => ?)", days)).
		GroupBy("s.scanned_at::date").
		OrderBy("s.scanned_at::date ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count scans per day: %w", err)
	}
	defer rows.Close()

	var counts []*types.DayScanCount
	for rows.Next() {
		var c types.DayScanCount
		if err := rows.Scan(&c.Day, &c.ScanCount); err != nil {
			return nil, fmt.Errorf("failed to scan day count: %w", err)
		}
		counts = append(counts, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return counts, nil
}

func (s *Storage) ListRecentScans(ctx context.Context, accountID, ownerID string, limit uint64) ([]*types.Scan, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRecentScans")
	defer span.End()

	rows, err := liveScans(
		s.db.Statement(ctx).
			Select(scanColumns...).
			From("scans s").
			LeftJoin("users u ON s.user_id = u.id"),
		accountID, ownerID,
	).
		OrderBy("s.scanned_at DESC").
		Limit(limit).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent scans: %w", err)
	}
	defer rows.Close()

	return collectScans(rows)
}
