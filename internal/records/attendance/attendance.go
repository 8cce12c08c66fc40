// Copyright (c) 2026 ERP Cell. All rights reserved.

/*
Package attendance records per-class attendance and aggregates it into
per-subject summaries.

Marking is idempotent per (student, subject, date): re-submitting a sheet for
the same class overwrites the previous statuses instead of duplicating rows.
*/
package attendance

// Statuses a student can be marked with.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

var AllowedStatuses = []string{StatusPresent, StatusAbsent}

// Entry is a single student's attendance record for one class.
type Entry struct {
	ID        int64  `json:"attendance_id"`
	StudentID int64  `json:"student_id"`
	SubjectID int64  `json:"subject_id"`
	Date      string `json:"attendance_date"`
	Status    string `json:"status"`

	// StudentName is joined on sheet reads.
	StudentName *string `json:"student_name,omitempty"`
}

// SubjectSummary aggregates one student's attendance for a single subject.
type SubjectSummary struct {
	SubjectID      int64   `json:"subject_id"`
	SubjectName    string  `json:"subject_name"`
	TotalClasses   int     `json:"total_classes"`
	ClassesPresent int     `json:"classes_present"`
	Percentage     float64 `json:"percentage"`
}

const (
	FieldSubject = "subject_id"
	FieldStudent = "student_id"
	FieldDate    = "attendance_date"
	FieldStatus  = "status"
	FieldEntries = "entries"
)
