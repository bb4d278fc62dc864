// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/omnaris/scan-service/internal/types"
)

const defaultDeliveryCostMicrounits = 1_000_000

// CreateDeliveryRecord appends one audit entry. Records are never updated
// or deleted.
func (s *Storage) CreateDeliveryRecord(ctx context.Context, rec *types.DeliveryRecord) (*types.DeliveryRecord, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateDeliveryRecord")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate delivery record ID: %w", err)
	}

	cost := rec.CostMicrounits
	if cost == 0 {
		cost = defaultDeliveryCostMicrounits
	}

	var created types.DeliveryRecord
	err = s.db.Statement(ctx).
		Insert("email_events").
		Columns("id", "account_id", "scan_id", "export_id", "to_email", "status", "provider", "message_id", "error", "cost_microunits").
		Values(id.String(), rec.AccountID, rec.ScanID, rec.ExportID, rec.ToEmail, rec.Status, rec.Provider, rec.MessageID, rec.Error, cost).
		Suffix("RETURNING id, account_id, scan_id, export_id, to_email, status, provider, message_id, error, cost_microunits, sent_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.AccountID, &created.ScanID, &created.ExportID, &created.ToEmail,
			&created.Status, &created.Provider, &created.MessageID, &created.Error, &created.CostMicrounits, &created.SentAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert delivery record: %w", err)
	}

	return &created, nil
}

func (s *Storage) ListDeliveryRecords(ctx context.Context, accountID string) ([]*types.DeliveryRecord, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListDeliveryRecords")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "account_id", "scan_id", "export_id", "to_email", "status", "provider", "message_id", "error", "cost_microunits", "sent_at").
		From("email_events").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("sent_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list delivery records: %w", err)
	}
	defer rows.Close()

	var records []*types.DeliveryRecord
	for rows.Next() {
		var r types.DeliveryRecord
		if err := rows.Scan(&r.ID, &r.AccountID, &r.ScanID, &r.ExportID, &r.ToEmail, &r.Status,
			&r.Provider, &r.MessageID, &r.Error, &r.CostMicrounits, &r.SentAt); err != nil {
			return nil, fmt.Errorf("failed to scan delivery record: %w", err)
		}
		records = append(records, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}
