// Copyright (c) 2026 ERP Cell. All rights reserved.

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erpcell/erpcell/internal/platform/sec"
)

/*
TestGenerateSecureToken verifies length and uniqueness of session tokens.
*/
func TestGenerateSecureToken(t *testing.T) {
	first, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)

	second, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)

	// 32 random bytes hex-encoded -> 64 characters
	assert.Len(t, first, 64)
	assert.Len(t, second, 64)
	assert.NotEqual(t, first, second)
}

/*
TestHashToken verifies the digest is deterministic and never the raw token.
*/
func TestHashToken(t *testing.T) {
	token := "opaque-session-token"

	digest := sec.HashToken(token)
	assert.Len(t, digest, 64) // SHA-256 hex
	assert.NotEqual(t, token, digest)
	assert.Equal(t, digest, sec.HashToken(token))

	assert.NotEqual(t, digest, sec.HashToken("opaque-session-token2"))
}

/*
TestRole covers validity and the absence of a role hierarchy.
*/
func TestRole(t *testing.T) {
	assert.True(t, sec.RoleFaculty.Valid())
	assert.True(t, sec.RoleStudent.Valid())
	assert.False(t, sec.Role("Admin").Valid())
	assert.False(t, sec.Role("").Valid())

	// Equality only: Faculty is not a superset of Student.
	assert.True(t, sec.RoleFaculty.Is(sec.RoleFaculty))
	assert.False(t, sec.RoleFaculty.Is(sec.RoleStudent))
}

/*
TestIdentity_LandingPath verifies the post-login redirect hint per role.
*/
func TestIdentity_LandingPath(t *testing.T) {
	student := &sec.Identity{Role: sec.RoleStudent}
	faculty := &sec.Identity{Role: sec.RoleFaculty}
	unknown := &sec.Identity{Role: sec.Role("Ghost")}

	assert.Equal(t, "/student/dashboard", student.LandingPath())
	assert.Equal(t, "/faculty/dashboard", faculty.LandingPath())
	assert.Equal(t, "/", unknown.LandingPath())

	assert.True(t, student.IsStudent())
	assert.False(t, student.IsFaculty())
}
