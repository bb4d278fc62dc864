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

const userColumns = "id, account_id, username, email, role, scanner_mode, is_active, created_at, updated_at"

func (s *Storage) CreateUser(ctx context.Context, u *types.User, credentialHash string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	var created types.User
	err = s.db.Statement(ctx).
		Insert("users").
		Columns("id", "account_id", "username", "email", "password", "role", "scanner_mode").
		Values(id.String(), u.AccountID, u.Username, u.Email, credentialHash, u.Role, u.ScannerMode).
		Suffix("RETURNING "+userColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.AccountID, &created.Username, &created.Email, &created.Role,
			&created.ScannerMode, &created.Active, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetUserByID(ctx context.Context, accountID, userID string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	var u types.User
	err := s.db.Statement(ctx).
		Select("id", "account_id", "username", "email", "role", "scanner_mode", "is_active", "created_at", "updated_at").
		From("users").
		Where(sq.Eq{"id": userID, "account_id": accountID, "deleted_at": nil}).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.AccountID, &u.Username, &u.Email, &u.Role, &u.ScannerMode, &u.Active, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

func (s *Storage) ListUsers(ctx context.Context, accountID string) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUsers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "account_id", "username", "email", "role", "scanner_mode", "is_active", "created_at", "updated_at").
		From("users").
		Where(sq.Eq{"account_id": accountID, "deleted_at": nil}).
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*types.User
	for rows.Next() {
		var u types.User
		if err := rows.Scan(&u.ID, &u.AccountID, &u.Username, &u.Email, &u.Role, &u.ScannerMode, &u.Active, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}

func (s *Storage) UsernameOrEmailExists(ctx context.Context, accountID, username, email string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UsernameOrEmailExists")
	defer span.End()

	var count int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("users").
		Where(sq.Eq{"account_id": accountID, "deleted_at": nil}).
		Where(sq.Or{sq.Eq{"username": username}, sq.Eq{"email": email}}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return count > 0, nil
}

func (s *Storage) UpdateUserRole(ctx context.Context, accountID, userID, role string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUserRole")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("role", role).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userID, "account_id": accountID, "deleted_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update user role: %w", err)
	}

	return checkAffected(res.RowsAffected())
}

func (s *Storage) ToggleUserActive(ctx context.Context, accountID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.ToggleUserActive")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("is_active", sq.Expr("NOT is_active")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userID, "account_id": accountID, "deleted_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to toggle user status: %w", err)
	}

	return checkAffected(res.RowsAffected())
}

func (s *Storage) SoftDeleteUser(ctx context.Context, accountID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SoftDeleteUser")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("deleted_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userID, "account_id": accountID, "deleted_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return checkAffected(res.RowsAffected())
}

func (s *Storage) UpdateScannerMode(ctx context.Context, accountID, userID, mode string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateScannerMode")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("scanner_mode", mode).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userID, "account_id": accountID, "deleted_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update scanner mode: %w", err)
	}

	return checkAffected(res.RowsAffected())
}

func checkAffected(rows int64, err error) error {
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
