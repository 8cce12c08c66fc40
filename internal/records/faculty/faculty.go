// Copyright (c) 2026 ERP Cell. All rights reserved.

// Package faculty manages faculty member records and their linked login
// accounts. It mirrors the student module's provisioning flow with the
// Faculty role and default password.
package faculty

import "time"

// Faculty represents a faculty member's information record.
type Faculty struct {
	ID           int64     `json:"faculty_id"`
	Code         string    `json:"faculty_code"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Gender       string    `json:"gender"`
	DepartmentID int64     `json:"dept_id"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	HireDate     string    `json:"hire_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Joined on reads.
	DepartmentName *string `json:"dept_name,omitempty"`
	Username       *string `json:"username,omitempty"`
}

// Filter holds the parameters for a paginated faculty search.
type Filter struct {
	Query        string
	DepartmentID int64 // 0 means all departments
}

var AllowedGenders = []string{"Male", "Female", "Other"}

const (
	FieldCode        = "faculty_code"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldGender      = "gender"
	FieldDepartment  = "dept_id"
	FieldEmail       = "email"
	FieldPhoneNumber = "phone_number"
	FieldHireDate    = "hire_date"
	FieldUsername    = "username"
)
