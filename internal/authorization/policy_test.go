// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"testing"

	"github.com/omnaris/scan-service/internal/types"
)

func TestCanAccess(t *testing.T) {
	admin := types.Identity{AccountID: "acct-1", UserID: "u-admin", Role: types.RoleAdmin}
	worker := types.Identity{AccountID: "acct-1", UserID: "u-worker", Role: types.RoleWorker}

	testCases := []struct {
		name      string
		identity  types.Identity
		accountID string
		ownerID   string
		expected  bool
	}{
		{"admin same account any owner", admin, "acct-1", "u-worker", true},
		{"admin other account denied", admin, "acct-2", "u-admin", false},
		{"worker own record", worker, "acct-1", "u-worker", true},
		{"worker other record denied", worker, "acct-1", "u-admin", false},
		{"worker other account own id denied", worker, "acct-2", "u-worker", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanAccess(tc.identity, tc.accountID, tc.ownerID); got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestCanManageUser(t *testing.T) {
	admin := types.Identity{AccountID: "acct-1", UserID: "u-admin", Role: types.RoleAdmin}
	worker := types.Identity{AccountID: "acct-1", UserID: "u-worker", Role: types.RoleWorker}

	testCases := []struct {
		name     string
		identity types.Identity
		account  string
		target   string
		expected bool
	}{
		{"admin manages other user", admin, "acct-1", "u-worker", true},
		{"admin never manages itself", admin, "acct-1", "u-admin", false},
		{"worker manages nobody", worker, "acct-1", "u-admin", false},
		{"admin other account denied", admin, "acct-2", "u-x", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanManageUser(tc.identity, tc.account, tc.target); got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestOwnerScope(t *testing.T) {
	admin := types.Identity{AccountID: "a", UserID: "u1", Role: types.RoleAdmin}
	worker := types.Identity{AccountID: "a", UserID: "u2", Role: types.RoleWorker}

	if OwnerScope(admin) != "" {
		t.Error("admin scope should be unrestricted")
	}
	if OwnerScope(worker) != "u2" {
		t.Error("worker scope should be its own user ID")
	}
}
