// Copyright (c) 2026 ERP Cell. All rights reserved.

package result

import "context"

type Repository interface {
	// UpsertResult writes a student's result for a subject, overwriting any
	// earlier entry for the same (student, subject).
	UpsertResult(context context.Context, r *Result) error

	// ListByStudent returns a student's results, newest exam first.
	// semester filters when > 0.
	ListByStudent(context context.Context, studentID int64, semester int) ([]*Result, error)

	// ListBySubject returns every student's result for a subject.
	ListBySubject(context context.Context, subjectID int64) ([]*Result, error)
}
