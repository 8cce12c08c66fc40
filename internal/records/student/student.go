// Copyright (c) 2026 ERP Cell. All rights reserved.

/*
Package student manages student records and their linked login accounts.

# Architecture

Creating a student is a two-step flow: the info row is inserted first, then a
login credential referencing it is provisioned with the role's default
password. Deleting a student cascades to the credential and all dependent
records (attendance, fees, results, book issues) at the schema level.

Calendar dates (birth, enrollment) travel as "YYYY-MM-DD" strings end to end;
they are validated by the shared date rule and cast at the SQL boundary.
*/
package student

import "time"

// Student represents an enrolled student's information record.
type Student struct {
	ID             int64     `json:"student_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	DateOfBirth    string    `json:"date_of_birth"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phone_number"`
	EnrollmentDate string    `json:"enrollment_date"`
	Gender         string    `json:"gender"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Username is joined from the linked credential on list/get reads.
	Username *string `json:"username,omitempty"`
}

// Filter holds the parameters for a paginated student search.
type Filter struct {
	Query string // Matches against first name, last name, and email.
}

// Genders accepted on student records.
var AllowedGenders = []string{"Male", "Female", "Other"}

const (
	FieldFirstName      = "first_name"
	FieldLastName       = "last_name"
	FieldDateOfBirth    = "date_of_birth"
	FieldEmail          = "email"
	FieldPhoneNumber    = "phone_number"
	FieldEnrollmentDate = "enrollment_date"
	FieldGender         = "gender"
	FieldUsername       = "username"
)
