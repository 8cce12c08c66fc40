// Copyright (c) 2026 ERP Cell. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/erpcell/erpcell/internal/platform/constants"
	"github.com/erpcell/erpcell/internal/platform/dberr"
	"github.com/erpcell/erpcell/internal/platform/postgres"
)

// # Credential Repository

// PostgresCredentialRepository implements CredentialRepository using pgx.
type PostgresCredentialRepository struct {
	db postgres.Querier
}

// NewCredentialRepository creates a new PostgreSQL implementation of the CredentialRepository.
func NewCredentialRepository(db postgres.Querier) *PostgresCredentialRepository {
	return &PostgresCredentialRepository{db: db}
}

const credentialColumns = `user_id, username, password_hash, user_role, student_ref_id, faculty_ref_id`

/*
FindByUsername retrieves a credential record by its unique username.

Description: Exact, case-sensitive lookup — the username column is matched as
stored, with no folding.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - *Credential: Hydrated record, or nil if no row matches
  - error: Database errors
*/
func (repository *PostgresCredentialRepository) FindByUsername(context context.Context, username string) (*Credential, error) {
	const query = `
		SELECT ` + credentialColumns + `
		FROM user_credentials
		WHERE username = $1`

	return repository.scanOne(repository.db.QueryRow(context, query, username))
}

/*
FindByID retrieves a credential record by its primary key.

Parameters:
  - context: context.Context
  - userID: int64

Returns:
  - *Credential: Hydrated record, or nil if no row matches
  - error: Database errors
*/
func (repository *PostgresCredentialRepository) FindByID(context context.Context, userID int64) (*Credential, error) {
	const query = `
		SELECT ` + credentialColumns + `
		FROM user_credentials
		WHERE user_id = $1`

	return repository.scanOne(repository.db.QueryRow(context, query, userID))
}

/*
Create persists a new credential record and returns the assigned user ID.

Description: Called at account-provisioning time, in the same flow that
creates the student or faculty entity.

Parameters:
  - context: context.Context
  - credential: *Credential

Returns:
  - int64: Assigned user ID
  - error: Constraint violations or connectivity errors
*/
func (repository *PostgresCredentialRepository) Create(context context.Context, credential *Credential) (int64, error) {
	if err := credential.Validate(); err != nil {
		return 0, err
	}

	const query = `
		INSERT INTO user_credentials (username, password_hash, user_role, student_ref_id, faculty_ref_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id`

	var userID int64
	err := repository.db.QueryRow(context, query,
		credential.Username,
		credential.PasswordHash,
		credential.Role,
		credential.StudentRefID,
		credential.FacultyRefID,
	).Scan(&userID)

	if err != nil {
		// Duplicate usernames surface as CONFLICT, not a 500.
		return 0, dberr.Wrap(err)
	}

	return userID, nil
}

/*
UpdatePasswordHash updates only the password hash for a specific credential.

Parameters:
  - context: context.Context
  - userID: int64
  - newHash: string

Returns:
  - error: Execution errors
*/
func (repository *PostgresCredentialRepository) UpdatePasswordHash(context context.Context, userID int64, newHash string) error {
	const query = `
		UPDATE user_credentials
		SET password_hash = $2
		WHERE user_id = $1`

	_, err := repository.db.Exec(context, query, userID, newHash)
	if err != nil {
		return fmt.Errorf("postgres_credential_repo_update_password_failed: %w", err)
	}

	return nil
}

/*
ListPlaceholderCredentials returns all credentials still carrying the
seed-time sentinel hash.

Parameters:
  - context: context.Context

Returns:
  - []*Credential: Records awaiting placeholder resolution
  - error: Database errors
*/
func (repository *PostgresCredentialRepository) ListPlaceholderCredentials(context context.Context) ([]*Credential, error) {
	const query = `
		SELECT ` + credentialColumns + `
		FROM user_credentials
		WHERE password_hash LIKE $1`

	rows, err := repository.db.Query(context, query, constants.PlaceholderHashPrefix+"%")
	if err != nil {
		return nil, fmt.Errorf("postgres_credential_repo_list_placeholder_failed: %w", err)
	}
	defer rows.Close()

	var credentials []*Credential
	for rows.Next() {
		credential := &Credential{}
		if err := rows.Scan(
			&credential.UserID,
			&credential.Username,
			&credential.PasswordHash,
			&credential.Role,
			&credential.StudentRefID,
			&credential.FacultyRefID,
		); err != nil {
			return nil, fmt.Errorf("postgres_credential_repo_scan_failed: %w", err)
		}
		credentials = append(credentials, credential)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_credential_repo_rows_failed: %w", err)
	}

	return credentials, nil
}

// scanOne hydrates a single credential, translating pgx.ErrNoRows into the
// explicit (nil, nil) absence contract.
func (repository *PostgresCredentialRepository) scanOne(row pgx.Row) (*Credential, error) {
	credential := &Credential{}
	err := row.Scan(
		&credential.UserID,
		&credential.Username,
		&credential.PasswordHash,
		&credential.Role,
		&credential.StudentRefID,
		&credential.FacultyRefID,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("postgres_credential_repo_find_failed: %w", err)
	}

	return credential, nil
}
