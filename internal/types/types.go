// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleWorker = "worker"
)

const (
	ScannerModeKeyboard = "keyboard"
	ScannerModePhysical = "physical"
)

const (
	ExportStatusBuilding = "building"
	ExportStatusReady    = "ready"
	ExportStatusFailed   = "failed"
	ExportStatusSent     = "sent"

	ExportFormatCSV = "csv"
)

const (
	DeliveryStatusQueued   = "queued"
	DeliveryStatusSent     = "sent"
	DeliveryStatusFailed   = "failed"
	DeliveryStatusCanceled = "canceled"
)

// Identity is the authenticated caller, resolved upstream by the session
// layer. The core trusts it completely.
type Identity struct {
	AccountID string
	UserID    string
	Role      string
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

type Account struct {
	ID           string     `db:"id"`
	Name         string     `db:"name"`
	BillingEmail string     `db:"billing_email"`
	AccessToken  string     `db:"token"`
	Active       bool       `db:"is_active"`
	Tokens       int64      `db:"tokens"`
	CreatedAt    time.Time  `db:"created_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

type User struct {
	ID          string     `db:"id"`
	AccountID   string     `db:"account_id"`
	Username    string     `db:"username"`
	Email       string     `db:"email"`
	Role        string     `db:"role"`
	ScannerMode string     `db:"scanner_mode"`
	Active      bool       `db:"is_active"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

type Scan struct {
	ID              string     `db:"id"`
	AccountID       string     `db:"account_id"`
	UserID          *string    `db:"user_id"`
	FormKey         string     `db:"form_key"`
	Payload         Payload    `db:"data"`
	ScannedAt       time.Time  `db:"scanned_at"`
	LastSentToEmail *string    `db:"last_sent_to_email"`
	LastEmailStatus *string    `db:"last_email_status"`
	LastEmailSentAt *time.Time `db:"last_email_sent_at"`
	ExportID        *string    `db:"export_id"`
	DeletedAt       *time.Time `db:"deleted_at"`

	// Username is joined from the creating user, "" when the user is gone.
	Username string `db:"-"`
}

type Export struct {
	ID        string     `db:"id"`
	AccountID string     `db:"account_id"`
	CreatedBy *string    `db:"created_by"`
	CreatedAt time.Time  `db:"created_at"`
	Format    string     `db:"format"`
	Filename  string     `db:"filename"`
	Params    string     `db:"params_json"`
	FromTS    *time.Time `db:"from_ts"`
	ToTS      *time.Time `db:"to_ts"`
	ScanCount int64      `db:"scan_count"`
	Status    string     `db:"status"`
	Error     *string    `db:"error"`
	DeletedAt *time.Time `db:"deleted_at"`

	// CreatedByName is joined from the creating user.
	CreatedByName string `db:"-"`
}

// DeliveryRecord is one append-only audit entry for an email attempt.
type DeliveryRecord struct {
	ID             string    `db:"id"`
	AccountID      string    `db:"account_id"`
	ScanID         *string   `db:"scan_id"`
	ExportID       *string   `db:"export_id"`
	ToEmail        string    `db:"to_email"`
	Status         string    `db:"status"`
	Provider       string    `db:"provider"`
	MessageID      *string   `db:"message_id"`
	Error          *string   `db:"error"`
	CostMicrounits int64     `db:"cost_microunits"`
	SentAt         time.Time `db:"sent_at"`
}

// ScanFilter selects unexported scans. From and To are inclusive, already
// widened to full-day bounds by the caller.
type ScanFilter struct {
	FormKey string
	From    *time.Time
	To      *time.Time
}

// ActivityStats is the account-scoped summary shown on the activity page.
type ActivityStats struct {
	TotalScans    int64
	TodayScans    int64
	WeekScans     int64
	ExportedScans int64
}

type FormScanCount struct {
	FormKey   string
	ScanCount int64
}

type UserScanCount struct {
	Username  string
	ScanCount int64
}

type DayScanCount struct {
	Day       string
	ScanCount int64
}
