// Copyright (c) 2026 ERP Cell. All rights reserved.

package attendance

import "context"

type Repository interface {
	// UpsertEntries writes a full attendance sheet for one subject/date.
	// Existing rows for the same (student, subject, date) are overwritten.
	UpsertEntries(context context.Context, entries []*Entry) error

	// GetSheet returns the recorded entries for a subject on a given date,
	// with student names joined for display.
	GetSheet(context context.Context, subjectID int64, date string) ([]*Entry, error)

	// SummarizeStudent aggregates a student's attendance per subject.
	SummarizeStudent(context context.Context, studentID int64) ([]*SubjectSummary, error)
}
