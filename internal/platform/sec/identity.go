// Copyright (c) 2026 ERP Cell. All rights reserved.

package sec

// # Authenticated Principal

// Identity is the resolved, authenticated principal for a single request.
//
// It is constructed on every successful login or session resolution from a
// freshly loaded credential record and is immutable for the lifetime of the
// request. It is never persisted.
type Identity struct {
	// UserID is the primary key of the underlying credential record.
	UserID int64 `json:"user_id"`

	// Username is the login name, exactly as stored.
	Username string `json:"username"`

	// Role is the authorization level (Student or Faculty).
	Role Role `json:"role"`

	// RefID is the role-scoped reference: the student row ID for Students,
	// the faculty row ID for Faculty.
	RefID int64 `json:"ref_id"`
}

// IsStudent reports whether the principal holds the Student role.
func (i *Identity) IsStudent() bool { return i.Role == RoleStudent }

// IsFaculty reports whether the principal holds the Faculty role.
func (i *Identity) IsFaculty() bool { return i.Role == RoleFaculty }

// LandingPath returns the role-specific area a client should be sent to
// after login. It is advisory for the caller, never an authorization decision.
func (i *Identity) LandingPath() string {
	switch i.Role {
	case RoleStudent:
		return "/student/dashboard"
	case RoleFaculty:
		return "/faculty/dashboard"
	default:
		return "/"
	}
}
