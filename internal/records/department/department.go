// Copyright (c) 2026 ERP Cell. All rights reserved.

// Package department manages academic departments, the organizational unit
// that faculty, subjects, and timetables hang off.
package department

import "time"

// Department represents an academic department.
type Department struct {
	ID        int64     `json:"dept_id"`
	Name      string    `json:"dept_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Aggregates populated on list reads only.
	FacultyCount int `json:"faculty_count"`
	SubjectCount int `json:"subject_count"`
}

const (
	FieldName = "dept_name"
)
