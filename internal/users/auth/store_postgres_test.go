// Copyright (c) 2026 ERP Cell. All rights reserved.

package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erpcell/erpcell/internal/platform/apperr"
	"github.com/erpcell/erpcell/internal/platform/sec"
	"github.com/erpcell/erpcell/internal/users/auth"
)

const credentialColumnsPattern = `SELECT user_id, username, password_hash, user_role, student_ref_id, faculty_ref_id`

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err, "failed to create mock")
	t.Cleanup(mock.Close)
	return mock
}

func TestPostgresCredentialRepository_FindByUsername(t *testing.T) {
	studentRef := int64(10)

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		want      *auth.Credential
		wantErr   bool
	}{
		{
			name: "found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"user_id", "username", "password_hash", "user_role", "student_ref_id", "faculty_ref_id"}).
					AddRow(int64(1), "aarav_sharma", "$2a$10$hash", sec.RoleStudent, &studentRef, (*int64)(nil))
				mock.ExpectQuery(credentialColumnsPattern).
					WithArgs("aarav_sharma").
					WillReturnRows(rows)
			},
			want: &auth.Credential{
				UserID:       1,
				Username:     "aarav_sharma",
				PasswordHash: "$2a$10$hash",
				Role:         sec.RoleStudent,
				StudentRefID: &studentRef,
			},
		},
		{
			name: "absent is nil not error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"user_id", "username", "password_hash", "user_role", "student_ref_id", "faculty_ref_id"})
				mock.ExpectQuery(credentialColumnsPattern).
					WithArgs("no_such_user").
					WillReturnRows(rows)
			},
			want: nil,
		},
		{
			name: "database error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(credentialColumnsPattern).
					WithArgs("aarav_sharma").
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			tt.setupMock(mock)

			repository := auth.NewCredentialRepository(mock)

			username := "aarav_sharma"
			if tt.want == nil && !tt.wantErr {
				username = "no_such_user"
			}

			got, err := repository.FindByUsername(context.Background(), username)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
		})
	}
}

func TestPostgresCredentialRepository_Create(t *testing.T) {
	facultyRef := int64(20)

	t.Run("assigns user id", func(t *testing.T) {
		mock := newMockPool(t)

		mock.ExpectQuery(`INSERT INTO user_credentials`).
			WithArgs("meera_iyer", "$2a$10$hash", sec.RoleFaculty, (*int64)(nil), &facultyRef).
			WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow(int64(7)))

		repository := auth.NewCredentialRepository(mock)
		userID, err := repository.Create(context.Background(), &auth.Credential{
			Username:     "meera_iyer",
			PasswordHash: "$2a$10$hash",
			Role:         sec.RoleFaculty,
			FacultyRefID: &facultyRef,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), userID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid credential never reaches the database", func(t *testing.T) {
		mock := newMockPool(t)

		repository := auth.NewCredentialRepository(mock)
		_, err := repository.Create(context.Background(), &auth.Credential{
			Username:     "meera_iyer",
			PasswordHash: "$2a$10$hash",
			Role:         sec.RoleFaculty,
			// No reference set: violates the exactly-one-ref invariant.
		})

		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresCredentialRepository_UpdatePasswordHash(t *testing.T) {
	mock := newMockPool(t)

	mock.ExpectExec(`UPDATE user_credentials`).
		WithArgs(int64(1), "$2a$10$newhash").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repository := auth.NewCredentialRepository(mock)
	err := repository.UpdatePasswordHash(context.Background(), 1, "$2a$10$newhash")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCredentialRepository_ListPlaceholderCredentials(t *testing.T) {
	studentRef := int64(10)
	facultyRef := int64(20)

	mock := newMockPool(t)

	rows := pgxmock.NewRows([]string{"user_id", "username", "password_hash", "user_role", "student_ref_id", "faculty_ref_id"}).
		AddRow(int64(1), "aarav_sharma", "hashed_pass_aarav_sharma", sec.RoleStudent, &studentRef, (*int64)(nil)).
		AddRow(int64(2), "meera_iyer", "hashed_pass_meera_iyer", sec.RoleFaculty, (*int64)(nil), &facultyRef)
	mock.ExpectQuery(credentialColumnsPattern).
		WithArgs("hashed_pass_%").
		WillReturnRows(rows)

	repository := auth.NewCredentialRepository(mock)
	pending, err := repository.ListPlaceholderCredentials(context.Background())

	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.True(t, pending[0].HasPlaceholderHash())
	assert.True(t, pending[1].HasPlaceholderHash())
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Conflict mapping is exercised indirectly: a unique violation coming back
// from the driver must surface as CONFLICT, not INTERNAL_ERROR.
func TestPostgresCredentialRepository_Create_DuplicateUsername(t *testing.T) {
	studentRef := int64(10)
	mock := newMockPool(t)

	mock.ExpectQuery(`INSERT INTO user_credentials`).
		WithArgs("aarav_sharma", "$2a$10$hash", sec.RoleStudent, &studentRef, (*int64)(nil)).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	repository := auth.NewCredentialRepository(mock)
	_, err := repository.Create(context.Background(), &auth.Credential{
		Username:     "aarav_sharma",
		PasswordHash: "$2a$10$hash",
		Role:         sec.RoleStudent,
		StudentRefID: &studentRef,
	})

	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
