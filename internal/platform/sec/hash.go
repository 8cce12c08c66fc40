// Copyright (c) 2026 ERP Cell. All rights reserved.

// Package sec provides the security primitives for ERP Cell: password
// hashing, opaque session tokens, roles, and the authenticated Identity.
//
// # Architecture
//
// This package isolates security-sensitive code from the domain logic. It has
// no storage or transport dependencies and is injected into the application
// layer through plain function calls.
package sec

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plain-text password using the bcrypt algorithm.
//
// bcrypt embeds a fresh random salt into every hash, so two calls with the
// same plaintext always produce different strings. Stored hashes must only
// ever be compared via [CheckPasswordHash], never for string equality.
func HashPassword(plainTextPassword string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckPasswordHash compares a plain-text password with its hashed version.
//
// A malformed or truncated stored hash is treated as a verification failure,
// not an error: bcrypt.CompareHashAndPassword returns a non-nil error for
// both cases and this function never panics on untrusted input.
func CheckPasswordHash(plainTextPassword, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	return err == nil
}
