// Copyright (c) 2026 ERP Cell. All rights reserved.

package sec

// # User Roles

// Role represents the authorization level granted to a credential record.
type Role string

const (
	// Administers all academic records (acts as the system administrator)
	RoleFaculty Role = "Faculty"

	// Limited to their own records (attendance, fees, results, profile)
	RoleStudent Role = "Student"
)

// Valid reports whether the role is one of the two recognized values.
func (r Role) Valid() bool {
	return r == RoleFaculty || r == RoleStudent
}

// Is reports whether the role exactly matches the target role.
//
// There is no role hierarchy in this system: Faculty is not a superset of
// Student. Route guards compare for equality only.
func (r Role) Is(target Role) bool {
	return r == target
}
