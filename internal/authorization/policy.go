// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package authorization holds the single access predicate applied to every
// account-scoped resource. Role scoping is not re-derived per endpoint.
package authorization

import (
	"github.com/omnaris/scan-service/internal/types"
)

// CanAccess reports whether the identity may see or act on a resource owned
// by resourceOwnerID inside resourceAccountID. Cross-account access is
// always denied; within the account admins see everything and workers only
// their own records.
func CanAccess(id types.Identity, resourceAccountID, resourceOwnerID string) bool {
	if id.AccountID != resourceAccountID {
		return false
	}
	return id.IsAdmin() || id.UserID == resourceOwnerID
}

// CanManageUser reports whether the identity may alter the target user's
// role or active flag, or delete it. The self check runs before the generic
// policy: an admin never manages itself, so an account cannot lose its last
// working administrator by accident.
func CanManageUser(id types.Identity, targetAccountID, targetUserID string) bool {
	if id.UserID == targetUserID {
		return false
	}
	return id.AccountID == targetAccountID && id.IsAdmin()
}

// OwnerScope returns the owner predicate for listing queries: empty for
// admins (no restriction), the caller's own ID otherwise.
func OwnerScope(id types.Identity) string {
	if id.IsAdmin() {
		return ""
	}
	return id.UserID
}
