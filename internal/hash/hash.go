// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package hash wraps credential hashing. Verification happens in the
// upstream session layer; the core only ever writes hashes.
package hash

import (
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

type PasswordHasherInterface interface {
	Hash(password string) (string, error)
}

var _ PasswordHasherInterface = (*BcryptHasher)(nil)

type BcryptHasher struct{}

func NewBcryptHasher() *BcryptHasher {
	return new(BcryptHasher)
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
