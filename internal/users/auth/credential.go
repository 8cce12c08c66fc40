// Copyright (c) 2026 ERP Cell. All rights reserved.

/*
Package auth implements the credential, session, and access-control layer.

It defines the core domain entities (Credential, Identity) and logic for
authentication, authorization, and the seed-time placeholder password
resolution procedure.

# Architecture

This layer is the "Truth" of the system. A request is either Anonymous or
Authenticated(Identity); there are no other states. Identities are rebuilt
from a freshly loaded credential record on every session resolution, so a
role or reference change takes effect on the very next request.
*/
package auth

import (
	"fmt"
	"strings"

	"github.com/erpcell/erpcell/internal/platform/constants"
	"github.com/erpcell/erpcell/internal/platform/sec"
)

// # Domain Entities

// Credential is the persisted record mapping a username to a password hash
// and role. It is created when a student or faculty entity is provisioned and
// mutated only by password changes.
//
// # Invariant
//
// Exactly one of StudentRefID/FacultyRefID is set, and it must agree with
// Role. [Credential.Identity] refuses to build a principal from a record
// that violates this.
type Credential struct {
	UserID       int64    `json:"user_id"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"` // Explicitly omitted from JSON for security.
	Role         sec.Role `json:"role"`
	StudentRefID *int64   `json:"student_ref_id,omitempty"`
	FacultyRefID *int64   `json:"faculty_ref_id,omitempty"`
}

// Validate checks the role/reference consistency invariant.
//
// It fails loudly instead of trusting a loosely-shaped row: a credential with
// both references, neither, or a reference that disagrees with its role is
// corrupt data, not a recoverable condition.
func (c *Credential) Validate() error {
	if !c.Role.Valid() {
		return fmt.Errorf("auth: credential %d has unknown role %q", c.UserID, c.Role)
	}

	hasStudent := c.StudentRefID != nil
	hasFaculty := c.FacultyRefID != nil

	if hasStudent == hasFaculty {
		return fmt.Errorf("auth: credential %d must have exactly one of student/faculty reference", c.UserID)
	}
	if c.Role == sec.RoleStudent && !hasStudent {
		return fmt.Errorf("auth: credential %d has role Student but a faculty reference", c.UserID)
	}
	if c.Role == sec.RoleFaculty && !hasFaculty {
		return fmt.Errorf("auth: credential %d has role Faculty but a student reference", c.UserID)
	}

	return nil
}

// Identity constructs the authenticated principal for this credential.
//
// The returned value is immutable for the lifetime of a request and carries
// the role-scoped reference ID (student row or faculty row).
func (c *Credential) Identity() (*sec.Identity, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	refID := int64(0)
	switch c.Role {
	case sec.RoleStudent:
		refID = *c.StudentRefID
	case sec.RoleFaculty:
		refID = *c.FacultyRefID
	}

	return &sec.Identity{
		UserID:   c.UserID,
		Username: c.Username,
		Role:     c.Role,
		RefID:    refID,
	}, nil
}

// HasPlaceholderHash reports whether the stored hash is still the seed-time
// sentinel rather than a real bcrypt hash.
func (c *Credential) HasPlaceholderHash() bool {
	return strings.HasPrefix(c.PasswordHash, constants.PlaceholderHashPrefix)
}
