// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package exports

import (
	"errors"
)

// Closed outcome set for the export operations. The presentation layer maps
// these to user messages; free-text provider detail stays in the audit log.
var (
	ErrInvalidFilter      = errors.New("invalid export filter")
	ErrEmptySelection     = errors.New("no scans found for export")
	ErrInvalidEmail       = errors.New("a valid email address is required")
	ErrInsufficientTokens = errors.New("insufficient tokens")
	ErrNotFound           = errors.New("export not found")
	ErrDeliveryFailed     = errors.New("failed to send email")
	ErrPermissionDenied   = errors.New("permission denied")
)
