// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/omnaris/scan-service/internal/types"
)

var exportColumns = []string{
	"e.id", "e.account_id", "e.created_by", "e.created_at", "e.format", "e.filename",
	"e.params_json", "e.from_ts", "e.to_ts", "e.scan_count", "e.status", "e.error",
	"COALESCE(u.username, '')",
}

func (s *Storage) CreateExport(ctx context.Context, e *types.Export) (*types.Export, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateExport")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate export ID: %w", err)
	}

	var created types.Export
	err = s.db.Statement(ctx).
		Insert("exports").
		Columns("id", "account_id", "created_by", "format", "filename", "params_json", "from_ts", "to_ts", "scan_count", "status").
		Values(id.String(), e.AccountID, e.CreatedBy, e.Format, e.Filename, e.Params, e.FromTS, e.ToTS, e.ScanCount, e.Status).
		Suffix("RETURNING id, account_id, created_by, created_at, format, filename, params_json, from_ts, to_ts, scan_count, status").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.AccountID, &created.CreatedBy, &created.CreatedAt, &created.Format,
			&created.Filename, &created.Params, &created.FromTS, &created.ToTS, &created.ScanCount, &created.Status)

	if err != nil {
		return nil, fmt.Errorf("failed to insert export: %w", err)
	}

	return &created, nil
}

// GetExportByID loads one live export in the account. A non-empty ownerID
// restricts the lookup to exports created by that user; absence and lack of
// authorization are deliberately the same ErrNotFound.
func (s *Storage) GetExportByID(ctx context.Context, accountID, exportID, ownerID string) (*types.Export, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetExportByID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(exportColumns...).
		From("exports e").
		LeftJoin("users u ON e.created_by = u.id").
		Where(sq.Eq{"e.id": exportID, "e.account_id": accountID, "e.deleted_at": nil})

	if ownerID != "" {
		query = query.Where(sq.Eq{"e.created_by": ownerID})
	}

	var e types.Export
	err := query.
		QueryRowContext(ctx).
		Scan(&e.ID, &e.AccountID, &e.CreatedBy, &e.CreatedAt, &e.Format, &e.Filename,
			&e.Params, &e.FromTS, &e.ToTS, &e.ScanCount, &e.Status, &e.Error, &e.CreatedByName)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get export: %w", err)
	}

	return &e, nil
}

func (s *Storage) ListExports(ctx context.Context, accountID, ownerID string) ([]*types.Export, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListExports")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(exportColumns...).
		From("exports e").
		LeftJoin("users u ON e.created_by = u.id").
		Where(sq.Eq{"e.account_id": accountID, "e.deleted_at": nil})

	if ownerID != "" {
		query = query.Where(sq.Eq{"e.created_by": ownerID})
	}

	rows, err := query.
		OrderBy("e.created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exports: %w", err)
	}
	defer rows.Close()

	var exports []*types.Export
	for rows.Next() {
		var e types.Export
		if err := rows.Scan(&e.ID, &e.AccountID, &e.CreatedBy, &e.CreatedAt, &e.Format, &e.Filename,
			&e.Params, &e.FromTS, &e.ToTS, &e.ScanCount, &e.Status, &e.Error, &e.CreatedByName); err != nil {
			return nil, fmt.Errorf("failed to scan export: %w", err)
		}
		exports = append(exports, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return exports, nil
}

func (s *Storage) LinkExportScans(ctx context.Context, exportID string, scanIDs []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.LinkExportScans")
	defer span.End()

	if len(scanIDs) == 0 {
		return nil
	}

	insert := s.db.Statement(ctx).
		Insert("export_scans").
		Columns("export_id", "scan_id")

	for _, scanID := range scanIDs {
		insert = insert.Values(exportID, scanID)
	}

	if _, err := insert.ExecContext(ctx); err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to link export scans: %w", err)
	}

	return nil
}

// MarkExportSent transitions a ready export to sent. Exports already sent
// stay sent; the statement is a no-op for them.
func (s *Storage) MarkExportSent(ctx context.Context, accountID, exportID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkExportSent")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("exports").
		Set("status", types.ExportStatusSent).
		Where(sq.Eq{"id": exportID, "account_id": accountID, "status": types.ExportStatusReady}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to mark export sent: %w", err)
	}

	return nil
}
