// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/omnaris/scan-service/internal/types"
)

func (s *Storage) GetAccountByID(ctx context.Context, accountID string) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAccountByID")
	defer span.End()

	var a types.Account
	err := s.db.Statement(ctx).
		Select("id", "name", "billing_email", "token", "is_active", "tokens", "created_at", "deleted_at").
		From("accounts").
		Where(sq.Eq{"id": accountID, "deleted_at": nil}).
		QueryRowContext(ctx).
		Scan(&a.ID, &a.Name, &a.BillingEmail, &a.AccessToken, &a.Active, &a.Tokens, &a.CreatedAt, &a.DeletedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &a, nil
}

func (s *Storage) UpdateBillingEmail(ctx context.Context, accountID, email string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateBillingEmail")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("accounts").
		Set("billing_email", email).
		Where(sq.Eq{"id": accountID, "deleted_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update billing email: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// SpendToken decrements the account token balance by one. The balance check
// and the decrement are a single conditional statement so concurrent spends
// cannot both pass a separate balance read.
func (s *Storage) SpendToken(ctx context.Context, accountID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SpendToken")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("accounts").
		Set("tokens", sq.Expr("tokens - 1")).
		Where(sq.Eq{"id": accountID, "deleted_at": nil}).
		Where(sq.GtOrEq{"tokens": 1}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to spend token: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrInsufficientBalance
	}

	return nil
}
