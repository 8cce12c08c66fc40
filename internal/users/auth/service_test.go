// Copyright (c) 2026 ERP Cell. All rights reserved.

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erpcell/erpcell/internal/platform/apperr"
	"github.com/erpcell/erpcell/internal/platform/sec"
	"github.com/erpcell/erpcell/internal/users/auth"
)

// # In-Memory Fakes

// fakeCredentialRepository is an in-memory CredentialRepository. Setting
// failIfQueried makes any storage access fail the test, proving that
// validation rejects bad input before the database is touched.
type fakeCredentialRepository struct {
	t             *testing.T
	byUsername    map[string]*auth.Credential
	byID          map[int64]*auth.Credential
	failIfQueried bool
	updatedHashes map[int64]string
}

func newFakeCredentials(t *testing.T, credentials ...*auth.Credential) *fakeCredentialRepository {
	repository := &fakeCredentialRepository{
		t:             t,
		byUsername:    make(map[string]*auth.Credential),
		byID:          make(map[int64]*auth.Credential),
		updatedHashes: make(map[int64]string),
	}
	for _, credential := range credentials {
		repository.byUsername[credential.Username] = credential
		repository.byID[credential.UserID] = credential
	}
	return repository
}

func (repository *fakeCredentialRepository) guard() {
	if repository.failIfQueried {
		repository.t.Fatal("storage accessed before validation passed")
	}
}

func (repository *fakeCredentialRepository) FindByUsername(_ context.Context, username string) (*auth.Credential, error) {
	repository.guard()
	return repository.byUsername[username], nil
}

func (repository *fakeCredentialRepository) FindByID(_ context.Context, userID int64) (*auth.Credential, error) {
	repository.guard()
	return repository.byID[userID], nil
}

func (repository *fakeCredentialRepository) Create(_ context.Context, credential *auth.Credential) (int64, error) {
	repository.guard()
	credential.UserID = int64(len(repository.byID) + 1)
	repository.byUsername[credential.Username] = credential
	repository.byID[credential.UserID] = credential
	return credential.UserID, nil
}

func (repository *fakeCredentialRepository) UpdatePasswordHash(_ context.Context, userID int64, newHash string) error {
	repository.guard()
	repository.updatedHashes[userID] = newHash
	if credential, ok := repository.byID[userID]; ok {
		credential.PasswordHash = newHash
	}
	return nil
}

func (repository *fakeCredentialRepository) ListPlaceholderCredentials(_ context.Context) ([]*auth.Credential, error) {
	repository.guard()
	var pending []*auth.Credential
	for _, credential := range repository.byID {
		if credential.HasPlaceholderHash() {
			pending = append(pending, credential)
		}
	}
	return pending, nil
}

// fakeSessionRepository is an in-memory SessionRepository.
type fakeSessionRepository struct {
	sessions map[string]int64
}

func newFakeSessions() *fakeSessionRepository {
	return &fakeSessionRepository{sessions: make(map[string]int64)}
}

func (repository *fakeSessionRepository) Create(_ context.Context, token string, userID int64, _ time.Duration) error {
	repository.sessions[token] = userID
	return nil
}

func (repository *fakeSessionRepository) Resolve(_ context.Context, token string) (int64, bool, error) {
	userID, found := repository.sessions[token]
	return userID, found, nil
}

func (repository *fakeSessionRepository) Delete(_ context.Context, token string) error {
	delete(repository.sessions, token)
	return nil
}

// # Fixtures

func studentCredential(t *testing.T, username, password string) *auth.Credential {
	t.Helper()
	hash, err := sec.HashPassword(password)
	require.NoError(t, err)

	refID := int64(10)
	return &auth.Credential{
		UserID:       1,
		Username:     username,
		PasswordHash: hash,
		Role:         sec.RoleStudent,
		StudentRefID: &refID,
	}
}

// # Login

/*
TestService_Login_Success verifies the full happy path: session minted,
identity hydrated, role-based redirect set.
*/
func TestService_Login_Success(t *testing.T) {
	credentials := newFakeCredentials(t, studentCredential(t, "aarav_sharma", "student123"))
	sessions := newFakeSessions()
	service := auth.NewService(credentials, sessions, 12*time.Hour)

	result, err := service.Login(context.Background(), auth.LoginInput{
		Username: "  aarav_sharma  ", // input is trimmed before lookup
		Password: "student123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "aarav_sharma", result.Identity.Username)
	assert.Equal(t, int64(10), result.Identity.RefID)
	assert.Equal(t, "/student/dashboard", result.RedirectTo)
	assert.WithinDuration(t, time.Now().Add(12*time.Hour), result.ExpiresAt, time.Minute)

	// The minted session must resolve back to the same user.
	userID, found := sessions.sessions[result.Token]
	assert.True(t, found)
	assert.Equal(t, int64(1), userID)
}

/*
TestService_Login_ValidationBeforeStorage proves that malformed input never
reaches the credential store.
*/
func TestService_Login_ValidationBeforeStorage(t *testing.T) {
	credentials := newFakeCredentials(t)
	credentials.failIfQueried = true
	service := auth.NewService(credentials, newFakeSessions(), time.Hour)

	tests := []struct {
		name  string
		input auth.LoginInput
	}{
		{"empty_username", auth.LoginInput{Username: "", Password: "student123"}},
		{"short_username", auth.LoginInput{Username: "ab", Password: "student123"}},
		{"username_with_space", auth.LoginInput{Username: "a b", Password: "student123"}},
		{"empty_password", auth.LoginInput{Username: "aarav_sharma", Password: ""}},
		{"short_password", auth.LoginInput{Username: "aarav_sharma", Password: "12345"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(context.Background(), tt.input)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}
}

/*
TestService_Login_IndistinguishableFailures verifies that an unknown username
and a wrong password return the same error, so account existence cannot be
probed through the login endpoint.
*/
func TestService_Login_IndistinguishableFailures(t *testing.T) {
	credentials := newFakeCredentials(t, studentCredential(t, "aarav_sharma", "student123"))
	service := auth.NewService(credentials, newFakeSessions(), time.Hour)

	_, unknownUserErr := service.Login(context.Background(), auth.LoginInput{
		Username: "no_such_user", Password: "student123",
	})
	_, wrongPasswordErr := service.Login(context.Background(), auth.LoginInput{
		Username: "aarav_sharma", Password: "wrong-password",
	})

	require.Error(t, unknownUserErr)
	require.Error(t, wrongPasswordErr)
	assert.Equal(t, "INVALID_CREDENTIALS", apperr.As(unknownUserErr).Code)
	assert.Equal(t, apperr.As(unknownUserErr).Code, apperr.As(wrongPasswordErr).Code)
	assert.Equal(t, apperr.As(unknownUserErr).Message, apperr.As(wrongPasswordErr).Message)
}

// # Session Resolution

/*
TestService_Resolve covers live sessions, unknown tokens, and sessions whose
credential has since been deleted.
*/
func TestService_Resolve(t *testing.T) {
	credential := studentCredential(t, "aarav_sharma", "student123")
	credentials := newFakeCredentials(t, credential)
	sessions := newFakeSessions()
	service := auth.NewService(credentials, sessions, time.Hour)

	result, err := service.Login(context.Background(), auth.LoginInput{
		Username: "aarav_sharma", Password: "student123",
	})
	require.NoError(t, err)

	// Live session resolves to a full identity.
	identity, err := service.Resolve(context.Background(), result.Token)
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, credential.UserID, identity.UserID)

	// Unknown token is anonymous, not an error.
	identity, err = service.Resolve(context.Background(), "no-such-token")
	require.NoError(t, err)
	assert.Nil(t, identity)

	// A session that outlived its credential record is also anonymous.
	delete(credentials.byID, credential.UserID)
	identity, err = service.Resolve(context.Background(), result.Token)
	require.NoError(t, err)
	assert.Nil(t, identity)
}

/*
TestService_Logout verifies the session is destroyed and that logout is
idempotent.
*/
func TestService_Logout(t *testing.T) {
	credentials := newFakeCredentials(t, studentCredential(t, "aarav_sharma", "student123"))
	sessions := newFakeSessions()
	service := auth.NewService(credentials, sessions, time.Hour)

	result, err := service.Login(context.Background(), auth.LoginInput{
		Username: "aarav_sharma", Password: "student123",
	})
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), result.Token))
	assert.Empty(t, sessions.sessions)

	// Logging out again, or with an empty token, succeeds silently.
	assert.NoError(t, service.Logout(context.Background(), result.Token))
	assert.NoError(t, service.Logout(context.Background(), ""))
}

// # Authorization

func TestService_RequireRole(t *testing.T) {
	service := auth.NewService(newFakeCredentials(t), newFakeSessions(), time.Hour)

	faculty := &sec.Identity{UserID: 1, Role: sec.RoleFaculty}
	student := &sec.Identity{UserID: 2, Role: sec.RoleStudent}

	assert.NoError(t, service.RequireRole(faculty, sec.RoleFaculty))

	err := service.RequireRole(nil, sec.RoleFaculty)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)

	err = service.RequireRole(student, sec.RoleFaculty)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	// No hierarchy: Faculty does not implicitly hold the Student role.
	err = service.RequireRole(faculty, sec.RoleStudent)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
}

func TestService_RequireSelfOrFaculty(t *testing.T) {
	service := auth.NewService(newFakeCredentials(t), newFakeSessions(), time.Hour)

	faculty := &sec.Identity{UserID: 1, Role: sec.RoleFaculty, RefID: 5}
	student := &sec.Identity{UserID: 2, Role: sec.RoleStudent, RefID: 10}

	// Faculty may access any student record.
	assert.NoError(t, service.RequireSelfOrFaculty(faculty, 99))

	// Students may access only their own record.
	assert.NoError(t, service.RequireSelfOrFaculty(student, 10))

	err := service.RequireSelfOrFaculty(student, 11)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	err = service.RequireSelfOrFaculty(nil, 10)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}

// # Password Management

/*
TestService_ChangePassword verifies re-verification of the current password
and that existing sessions stay valid after the change.
*/
func TestService_ChangePassword(t *testing.T) {
	credential := studentCredential(t, "aarav_sharma", "student123")
	credentials := newFakeCredentials(t, credential)
	sessions := newFakeSessions()
	service := auth.NewService(credentials, sessions, time.Hour)

	result, err := service.Login(context.Background(), auth.LoginInput{
		Username: "aarav_sharma", Password: "student123",
	})
	require.NoError(t, err)
	identity := result.Identity

	// Wrong current password is rejected without touching the stored hash.
	err = service.ChangePassword(context.Background(), identity, "wrong-password", "newpassword1")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
	assert.Empty(t, credentials.updatedHashes)

	// Correct current password replaces the hash.
	err = service.ChangePassword(context.Background(), identity, "student123", "newpassword1")
	require.NoError(t, err)
	assert.True(t, sec.CheckPasswordHash("newpassword1", credential.PasswordHash))
	assert.False(t, sec.CheckPasswordHash("student123", credential.PasswordHash))

	// Sessions are bound to the user ID, not the hash; the old session lives on.
	resolved, err := service.Resolve(context.Background(), result.Token)
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, identity.UserID, resolved.UserID)

	// A too-short new password never reaches the store.
	err = service.ChangePassword(context.Background(), identity, "newpassword1", "short")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

// # Placeholder Resolution

/*
TestService_ResolvePlaceholders verifies the seed-time sentinel conversion:
after resolution the role's default password logs in, and an unconfigured
role aborts the procedure.
*/
func TestService_ResolvePlaceholders(t *testing.T) {
	studentRef := int64(10)
	facultyRef := int64(20)

	seededStudent := &auth.Credential{
		UserID: 1, Username: "aarav_sharma",
		PasswordHash: "hashed_pass_aarav_sharma",
		Role:         sec.RoleStudent, StudentRefID: &studentRef,
	}
	seededFaculty := &auth.Credential{
		UserID: 2, Username: "meera_iyer",
		PasswordHash: "hashed_pass_meera_iyer",
		Role:         sec.RoleFaculty, FacultyRefID: &facultyRef,
	}

	credentials := newFakeCredentials(t, seededStudent, seededFaculty)
	service := auth.NewService(credentials, newFakeSessions(), time.Hour)

	defaults := map[sec.Role]string{
		sec.RoleStudent: "student123",
		sec.RoleFaculty: "faculty123",
	}

	resolved, err := service.ResolvePlaceholders(context.Background(), defaults)
	require.NoError(t, err)
	assert.Equal(t, 2, resolved)

	// Resolved accounts can now log in with the role default.
	_, err = service.Login(context.Background(), auth.LoginInput{
		Username: "aarav_sharma", Password: "student123",
	})
	assert.NoError(t, err)
	_, err = service.Login(context.Background(), auth.LoginInput{
		Username: "meera_iyer", Password: "faculty123",
	})
	assert.NoError(t, err)

	// Running again is a no-op: nothing matches the sentinel prefix anymore.
	resolved, err = service.ResolvePlaceholders(context.Background(), defaults)
	require.NoError(t, err)
	assert.Zero(t, resolved)
}

func TestService_ResolvePlaceholders_UnknownRoleAborts(t *testing.T) {
	studentRef := int64(10)
	seeded := &auth.Credential{
		UserID: 1, Username: "aarav_sharma",
		PasswordHash: "hashed_pass_aarav_sharma",
		Role:         sec.RoleStudent, StudentRefID: &studentRef,
	}

	credentials := newFakeCredentials(t, seeded)
	service := auth.NewService(credentials, newFakeSessions(), time.Hour)

	// Faculty default only — the seeded Student credential has no entry.
	_, err := service.ResolvePlaceholders(context.Background(), map[sec.Role]string{
		sec.RoleFaculty: "faculty123",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no default password configured")
	// The sentinel must remain untouched so a restart can retry.
	assert.True(t, seeded.HasPlaceholderHash())
}
