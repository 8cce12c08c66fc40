// Copyright (c) 2026 ERP Cell. All rights reserved.

// Package subject manages the course catalog.
package subject

import "time"

// Subject represents a course offered by a department.
type Subject struct {
	ID        int64     `json:"subject_id"`
	Code      string    `json:"subject_code"`
	Name      string    `json:"subject_name"`
	Credits   int       `json:"credits"`
	DeptID    int64     `json:"dept_id"`
	Semester  int       `json:"semester"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	DeptName *string `json:"dept_name,omitempty"`
}

// Filter narrows subject listings.
type Filter struct {
	DeptID   int64 // 0 means all
	Semester int   // 0 means all
}

const (
	FieldCode     = "subject_code"
	FieldName     = "subject_name"
	FieldCredits  = "credits"
	FieldDept     = "dept_id"
	FieldSemester = "semester"

	maxCredits  = 10
	maxSemester = 8
)
