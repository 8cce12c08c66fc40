// Copyright (c) 2026 ERP Cell. All rights reserved.

package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erpcell/erpcell/internal/platform/sec"
	"github.com/erpcell/erpcell/internal/users/auth"
)

func int64Ptr(i int64) *int64 { return &i }

/*
TestCredential_Validate covers the exactly-one-reference invariant and the
role/reference agreement checks.
*/
func TestCredential_Validate(t *testing.T) {
	tests := []struct {
		name       string
		credential auth.Credential
		isValid    bool
	}{
		{
			name: "student_with_student_ref",
			credential: auth.Credential{
				UserID: 1, Role: sec.RoleStudent, StudentRefID: int64Ptr(10),
			},
			isValid: true,
		},
		{
			name: "faculty_with_faculty_ref",
			credential: auth.Credential{
				UserID: 2, Role: sec.RoleFaculty, FacultyRefID: int64Ptr(20),
			},
			isValid: true,
		},
		{
			name: "both_refs_set",
			credential: auth.Credential{
				UserID: 3, Role: sec.RoleStudent,
				StudentRefID: int64Ptr(10), FacultyRefID: int64Ptr(20),
			},
			isValid: false,
		},
		{
			name:       "no_refs_set",
			credential: auth.Credential{UserID: 4, Role: sec.RoleStudent},
			isValid:    false,
		},
		{
			name: "student_role_with_faculty_ref",
			credential: auth.Credential{
				UserID: 5, Role: sec.RoleStudent, FacultyRefID: int64Ptr(20),
			},
			isValid: false,
		},
		{
			name: "unknown_role",
			credential: auth.Credential{
				UserID: 6, Role: sec.Role("Admin"), StudentRefID: int64Ptr(10),
			},
			isValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.credential.Validate()
			if tt.isValid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

/*
TestCredential_Identity verifies that the principal carries the role-scoped
reference ID.
*/
func TestCredential_Identity(t *testing.T) {
	student := auth.Credential{
		UserID: 1, Username: "aarav_sharma",
		Role: sec.RoleStudent, StudentRefID: int64Ptr(10),
	}

	identity, err := student.Identity()
	require.NoError(t, err)
	assert.Equal(t, int64(1), identity.UserID)
	assert.Equal(t, int64(10), identity.RefID)
	assert.True(t, identity.IsStudent())

	// A corrupt record must refuse to build a principal.
	corrupt := auth.Credential{UserID: 2, Role: sec.RoleFaculty}
	_, err = corrupt.Identity()
	assert.Error(t, err)
}

/*
TestCredential_HasPlaceholderHash distinguishes seed-time sentinels from
real bcrypt hashes.
*/
func TestCredential_HasPlaceholderHash(t *testing.T) {
	sentinel := auth.Credential{PasswordHash: "hashed_pass_aarav_sharma"}
	assert.True(t, sentinel.HasPlaceholderHash())

	real := auth.Credential{PasswordHash: "$2a$10$abcdefghijklmnopqrstuv"}
	assert.False(t, real.HasPlaceholderHash())
}
