// Copyright (c) 2026 ERP Cell. All rights reserved.

package auth

import (
	"context"
	"fmt"

	"github.com/erpcell/erpcell/internal/platform/apperr"
	"github.com/erpcell/erpcell/internal/platform/sec"
	"github.com/erpcell/erpcell/internal/platform/validate"
)

// # Credential Provisioning

// Provisioner creates login credentials for newly registered students and
// faculty members. New accounts start with the role's default password, which
// the user is expected to change on first login.
type Provisioner struct {
	credentials CredentialRepository
	defaults    map[sec.Role]string
}

// NewProvisioner constructs a [Provisioner].
//
// defaults maps each role to its default plaintext password (the same map
// used by [Service.ResolvePlaceholders]).
func NewProvisioner(credentials CredentialRepository, defaults map[sec.Role]string) *Provisioner {
	return &Provisioner{credentials: credentials, defaults: defaults}
}

/*
ProvisionCredential creates a credential for a freshly created entity row.

Parameters:
  - context: context.Context
  - username: string
  - role: sec.Role
  - refID: int64 (student or faculty row ID, per role)

Returns:
  - int64: Assigned user ID
  - error: VALIDATION_ERROR, CONFLICT on duplicate username, or internal failures
*/
func (provisioner *Provisioner) ProvisionCredential(context context.Context, username string, role sec.Role, refID int64) (int64, error) {
	username = validate.Sanitize(username)

	validator := &validate.Validator{}
	validator.Username(FieldUsername, username)
	validator.ID("ref_id", refID)
	if err := validator.Err(); err != nil {
		return 0, err
	}

	defaultPassword, ok := provisioner.defaults[role]
	if !ok {
		return 0, apperr.Internal(fmt.Errorf("auth: no default password configured for role %q", role))
	}
	hash, err := sec.HashPassword(defaultPassword)
	if err != nil {
		return 0, apperr.Internal(err)
	}

	credential := &Credential{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	switch role {
	case sec.RoleStudent:
		credential.StudentRefID = &refID
	case sec.RoleFaculty:
		credential.FacultyRefID = &refID
	}

	return provisioner.credentials.Create(context, credential)
}
