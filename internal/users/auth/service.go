// Copyright (c) 2026 ERP Cell. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/erpcell/erpcell/internal/platform/apperr"
	"github.com/erpcell/erpcell/internal/platform/constants"
	"github.com/erpcell/erpcell/internal/platform/ctxutil"
	"github.com/erpcell/erpcell/internal/platform/sec"
	"github.com/erpcell/erpcell/internal/platform/validate"
)

// # Service

// Service implements the authentication and access-control use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, login, or
// authorization logic must be reviewed by the security team.
type Service struct {
	credentials CredentialRepository
	sessions    SessionRepository
	sessionTTL  time.Duration
}

// NewService creates a new authentication service.
func NewService(credentials CredentialRepository, sessions SessionRepository, sessionTTL time.Duration) *Service {
	return &Service{
		credentials: credentials,
		sessions:    sessions,
		sessionTTL:  sessionTTL,
	}
}

// # Input / Output Types

// LoginInput is the payload for the login operation.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	// Token is the opaque session token to hand to the client. It is never
	// persisted in plain form.
	Token      string
	Identity   *sec.Identity
	RedirectTo string
	ExpiresAt  time.Time
}

// # Authentication

/*
Login verifies a username/password pair and establishes a new session.

Description: Input is trimmed and validated before any storage access — a
malformed payload never reaches the database. An unknown username and a wrong
password produce the same INVALID_CREDENTIALS error so that account existence
cannot be probed.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginResult: Session token, identity, and role-based landing path
  - error: VALIDATION_ERROR, INVALID_CREDENTIALS, or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginResult, error) {
	// ── 1. Sanitize & Validate ──────────────────────────────────────────────
	input.Username = validate.Sanitize(input.Username)

	validator := &validate.Validator{}
	validator.Username(FieldUsername, input.Username)
	validator.Password(FieldPassword, input.Password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// ── 2. Load Credential ──────────────────────────────────────────────────
	credential, err := service.credentials.FindByUsername(context, input.Username)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if credential == nil {
		return nil, apperr.InvalidCredentials()
	}

	// ── 3. Verify Password ──────────────────────────────────────────────────
	if !sec.CheckPasswordHash(input.Password, credential.PasswordHash) {
		return nil, apperr.InvalidCredentials()
	}

	identity, err := credential.Identity()
	if err != nil {
		return nil, apperr.Internal(err)
	}

	// ── 4. Establish Session ────────────────────────────────────────────────
	token, err := sec.GenerateSecureToken(constants.SessionTokenLength)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if err := service.sessions.Create(context, token, credential.UserID, service.sessionTTL); err != nil {
		return nil, apperr.Internal(err)
	}

	ctxutil.GetLogger(context).Info("user logged in",
		"user_id", identity.UserID,
		"role", string(identity.Role),
	)

	return &LoginResult{
		Token:      token,
		Identity:   identity,
		RedirectTo: identity.LandingPath(),
		ExpiresAt:  time.Now().Add(service.sessionTTL),
	}, nil
}

/*
Logout destroys the session bound to a token.

Description: Idempotent — logging out an already-expired or unknown session
succeeds silently.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - error: Session store failures
*/
func (service *Service) Logout(context context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := service.sessions.Delete(context, token); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

/*
Resolve maps a session token to a live identity.

Description: Implements the middleware identity-resolution contract. The
credential record is re-fetched on every call, so role or reference changes
take effect on the very next request. A missing session or a session whose
credential has since vanished both resolve to (nil, nil) — anonymous, not an
error.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - *sec.Identity: The authenticated principal, or nil for no session
  - error: Storage failures only
*/
func (service *Service) Resolve(context context.Context, token string) (*sec.Identity, error) {
	userID, found, err := service.sessions.Resolve(context, token)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	credential, err := service.credentials.FindByID(context, userID)
	if err != nil {
		return nil, err
	}
	if credential == nil {
		// Session outlived its credential record. Treat as anonymous.
		return nil, nil
	}

	return credential.Identity()
}

// # Authorization

/*
RequireRole enforces an exact role match for an identity.

Parameters:
  - identity: *sec.Identity (nil means anonymous)
  - role: sec.Role

Returns:
  - error: UNAUTHORIZED for anonymous callers, FORBIDDEN on role mismatch
*/
func (service *Service) RequireRole(identity *sec.Identity, role sec.Role) error {
	if identity == nil {
		return apperr.Unauthorized("Authentication required")
	}
	if !identity.Role.Is(role) {
		return apperr.Forbidden("Insufficient permissions")
	}
	return nil
}

/*
RequireSelfOrFaculty allows faculty unconditionally, and students only for
their own record.

Description: The self check compares the identity's role-scoped reference ID
against the target record — a student can read record targetRefID only when
it is their own student row.

Parameters:
  - identity: *sec.Identity (nil means anonymous)
  - targetRefID: int64

Returns:
  - error: UNAUTHORIZED for anonymous callers, FORBIDDEN otherwise
*/
func (service *Service) RequireSelfOrFaculty(identity *sec.Identity, targetRefID int64) error {
	if identity == nil {
		return apperr.Unauthorized("Authentication required")
	}
	if identity.IsFaculty() {
		return nil
	}
	if identity.IsStudent() && identity.RefID == targetRefID {
		return nil
	}
	return apperr.Forbidden("Insufficient permissions")
}

// # Password Management

/*
ChangePassword replaces the caller's password after re-verifying the current one.

Description: The new password is validated first; the current password is then
checked against the stored hash, so a forgotten session cookie cannot be used
to silently take over an account. Existing sessions remain valid — the session
store binds tokens to the user ID, not to the hash.

Parameters:
  - context: context.Context
  - identity: *sec.Identity
  - currentPassword: string
  - newPassword: string

Returns:
  - error: VALIDATION_ERROR, UNAUTHORIZED on a wrong current password, or
    internal failures
*/
func (service *Service) ChangePassword(context context.Context, identity *sec.Identity, currentPassword, newPassword string) error {
	if identity == nil {
		return apperr.Unauthorized("Authentication required")
	}

	validator := &validate.Validator{}
	validator.Required(FieldCurrentPassword, currentPassword)
	validator.Password(FieldNewPassword, newPassword)
	if err := validator.Err(); err != nil {
		return err
	}

	credential, err := service.credentials.FindByID(context, identity.UserID)
	if err != nil {
		return apperr.Internal(err)
	}
	if credential == nil {
		return apperr.Unauthorized("Authentication required")
	}

	if !sec.CheckPasswordHash(currentPassword, credential.PasswordHash) {
		return apperr.Unauthorized("Current password is incorrect")
	}

	newHash, err := sec.HashPassword(newPassword)
	if err != nil {
		return apperr.Internal(err)
	}
	if err := service.credentials.UpdatePasswordHash(context, credential.UserID, newHash); err != nil {
		return apperr.Internal(err)
	}

	ctxutil.GetLogger(context).Info("password changed", "user_id", credential.UserID)

	return nil
}

// # Placeholder Resolution

/*
ResolvePlaceholders converts seed-time sentinel hashes into real bcrypt hashes
of the per-role default password.

Description: Runs once at startup, before the server accepts traffic. A
credential whose role has no entry in defaults aborts the whole procedure —
serving with unresolved placeholders would leave accounts permanently unable
to log in.

Parameters:
  - context: context.Context
  - defaults: map[sec.Role]string — default plaintext password per role

Returns:
  - int: Number of credentials resolved
  - error: Unknown role, hashing, or persistence failures
*/
func (service *Service) ResolvePlaceholders(context context.Context, defaults map[sec.Role]string) (int, error) {
	pending, err := service.credentials.ListPlaceholderCredentials(context)
	if err != nil {
		return 0, fmt.Errorf("auth: listing placeholder credentials: %w", err)
	}

	resolved := 0
	for _, credential := range pending {
		defaultPassword, ok := defaults[credential.Role]
		if !ok {
			return resolved, fmt.Errorf("auth: no default password configured for role %q (credential %d)",
				credential.Role, credential.UserID)
		}

		hash, err := sec.HashPassword(defaultPassword)
		if err != nil {
			return resolved, fmt.Errorf("auth: hashing default password for credential %d: %w",
				credential.UserID, err)
		}
		if err := service.credentials.UpdatePasswordHash(context, credential.UserID, hash); err != nil {
			return resolved, fmt.Errorf("auth: persisting resolved hash for credential %d: %w",
				credential.UserID, err)
		}
		resolved++
	}

	if resolved > 0 {
		ctxutil.GetLogger(context).Info("placeholder credentials resolved", "count", resolved)
	}

	return resolved, nil
}
