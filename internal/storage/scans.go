// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/omnaris/scan-service/internal/db"
	"github.com/omnaris/scan-service/internal/types"
)

var scanColumns = []string{
	"s.id", "s.account_id", "s.user_id", "s.form_key", "s.data", "s.scanned_at",
	"s.last_sent_to_email", "s.last_email_status", "s.last_email_sent_at", "s.export_id",
	"COALESCE(u.username, '')",
}

func (s *Storage) CreateScan(ctx context.Context, scan *types.Scan) (*types.Scan, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateScan")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate scan ID: %w", err)
	}

	data, err := json.Marshal(scan.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize scan payload: %w", err)
	}

	var created types.Scan
	created.Payload = scan.Payload
	err = s.db.Statement(ctx).
		Insert("scans").
		Columns("id", "account_id", "user_id", "form_key", "data").
		Values(id.String(), scan.AccountID, scan.UserID, scan.FormKey, string(data)).
		Suffix("RETURNING id, account_id, user_id, form_key, scanned_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.AccountID, &created.UserID, &created.FormKey, &created.ScannedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert scan: %w", err)
	}

	return &created, nil
}

// unexportedScans builds the shared selection predicate for scans that are
// live, unclaimed, account scoped, and optionally owner scoped/filtered.
// ownerID is empty for admin callers.
func unexportedScans(q sq.SelectBuilder, accountID string, filter types.ScanFilter, ownerID string) sq.SelectBuilder {
	q = q.Where(sq.Eq{"s.account_id": accountID, "s.deleted_at": nil, "s.export_id": nil})

	if filter.FormKey != "" {
		q = q.Where(sq.Eq{"s.form_key": filter.FormKey})
	}
	if ownerID != "" {
		q = q.Where(sq.Eq{"s.user_id": ownerID})
	}
	if filter.From != nil {
		q = q.Where(sq.GtOrEq{"s.scanned_at": *filter.From})
	}
	if filter.To != nil {
		q = q.Where(sq.LtOrEq{"s.scanned_at": *filter.To})
	}

	return q
}

func (s *Storage) ListUnexportedScans(ctx context.Context, accountID string, filter types.ScanFilter, ownerID string, page, size int64) ([]*types.Scan, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUnexportedScans")
	defer span.End()

	pageSize := db.PageSize(size)
	query := unexportedScans(
		s.db.Statement(ctx).
			Select(scanColumns...).
			From("scans s").
			LeftJoin("users u ON s.user_id = u.id"),
		accountID, filter, ownerID,
	).
		OrderBy("s.scanned_at DESC").
		Limit(pageSize).
		Offset(db.Offset(page, pageSize))

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	return collectScans(rows)
}

func (s *Storage) CountUnexportedScans(ctx context.Context, accountID string, filter types.ScanFilter, ownerID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountUnexportedScans")
	defer span.End()

	var count int64
	err := unexportedScans(
		s.db.Statement(ctx).Select("COUNT(*)").From("scans s"),
		accountID, filter, ownerID,
	).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count scans: %w", err)
	}

	return count, nil
}

func (s *Storage) ListFormKeys(ctx context.Context, accountID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListFormKeys")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("DISTINCT form_key").
		From("scans").
		Where(sq.Eq{"account_id": accountID, "deleted_at": nil}).
		OrderBy("form_key").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list form keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("failed to scan form key: %w", err)
		}
		keys = append(keys, k)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return keys, nil
}

func (s *Storage) SelectUnexportedScanIDs(ctx context.Context, accountID string, filter types.ScanFilter, ownerID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.SelectUnexportedScanIDs")
	defer span.End()

	rows, err := unexportedScans(
		s.db.Statement(ctx).Select("s.id").From("scans s"),
		accountID, filter, ownerID,
	).
		OrderBy("s.scanned_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to select scan IDs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan ID: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ids, nil
}

// ClaimScans assigns the export reference on the selected scans. The update
// re-checks export_id IS NULL so a scan can be claimed exactly once; a
// shortfall in affected rows means a concurrent build won the race and the
// caller must abort its transaction.
func (s *Storage) ClaimScans(ctx context.Context, accountID string, scanIDs []string, exportID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.ClaimScans")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("scans").
		Set("export_id", exportID).
		Where(sq.Eq{"account_id": accountID, "id": scanIDs, "export_id": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to claim scans: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows != int64(len(scanIDs)) {
		return ErrScanAlreadyClaimed
	}

	return nil
}

func (s *Storage) ListScansByExportID(ctx context.Context, accountID, exportID string) ([]*types.Scan, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListScansByExportID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(scanColumns...).
		From("scans s").
		LeftJoin("users u ON s.user_id = u.id").
		Join("export_scans es ON s.id = es.scan_id").
		Where(sq.Eq{"es.export_id": exportID, "s.account_id": accountID}).
		OrderBy("s.scanned_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list export scans: %w", err)
	}
	defer rows.Close()

	return collectScans(rows)
}

func (s *Storage) UpdateScanDelivery(ctx context.Context, accountID, exportID, email, status string, when time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateScanDelivery")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("scans").
		Set("last_sent_to_email", email).
		Set("last_email_status", status).
		Set("last_email_sent_at", when).
		Where(sq.Eq{"account_id": accountID}).
		Where(sq.Expr("id IN (SELECT scan_id FROM export_scans WHERE export_id = ?)", exportID)).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update scan delivery tracking: %w", err)
	}

	return nil
}

func collectScans(rows *sql.Rows) ([]*types.Scan, error) {
	var scans []*types.Scan
	for rows.Next() {
		var sc types.Scan
		var data []byte
		if err := rows.Scan(&sc.ID, &sc.AccountID, &sc.UserID, &sc.FormKey, &data, &sc.ScannedAt,
			&sc.LastSentToEmail, &sc.LastEmailStatus, &sc.LastEmailSentAt, &sc.ExportID, &sc.Username); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		if err := json.Unmarshal(data, &sc.Payload); err != nil {
			return nil, fmt.Errorf("failed to parse scan payload: %w", err)
		}
		scans = append(scans, &sc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return scans, nil
}
