// Copyright (c) 2026 ERP Cell. All rights reserved.

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erpcell/erpcell/internal/platform/sec"
)

/*
TestHashPassword_RoundTrip verifies that a hash verifies against its own plaintext.
*/
func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := sec.HashPassword("student123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, sec.CheckPasswordHash("student123", hash))
	assert.False(t, sec.CheckPasswordHash("student124", hash))
}

/*
TestHashPassword_SaltedHashesDiffer verifies that bcrypt salts each hash:
the same plaintext must never produce the same stored string, yet both
must still verify.
*/
func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, err := sec.HashPassword("faculty123")
	require.NoError(t, err)

	second, err := sec.HashPassword("faculty123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, sec.CheckPasswordHash("faculty123", first))
	assert.True(t, sec.CheckPasswordHash("faculty123", second))
}

/*
TestCheckPasswordHash_MalformedHash verifies that garbage stored hashes fail
verification without panicking. Seeded sentinel values hit this path if
placeholder resolution has not run.
*/
func TestCheckPasswordHash_MalformedHash(t *testing.T) {
	assert.False(t, sec.CheckPasswordHash("student123", "hashed_pass_aarav_sharma"))
	assert.False(t, sec.CheckPasswordHash("student123", ""))
	assert.False(t, sec.CheckPasswordHash("", ""))
}
