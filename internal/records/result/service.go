// Copyright (c) 2026 ERP Cell. All rights reserved.

package result

import (
	"context"
	"log/slog"

	"github.com/erpcell/erpcell/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// EnterInput is the payload for entering or correcting a student's marks.
// Grade is intentionally absent: it is derived, never supplied.
type EnterInput struct {
	StudentID      int64  `json:"student_id"`
	SubjectID      int64  `json:"subject_id"`
	ExamDate       string `json:"exam_date"`
	TheoryMarks    *int   `json:"theory_marks"`
	PracticalMarks *int   `json:"practical_marks"`
	Semester       int    `json:"semester"`
}

/*
EnterMarks records a student's marks for a subject and derives the grade.

Description: Marks are bounded to [0, 100] per component; at least one
component must be present. Re-entering marks for the same student and subject
overwrites the earlier result.

Returns:
  - *Result: The stored result with derived grade
  - error: VALIDATION_ERROR or storage failures
*/
func (service *Service) EnterMarks(context context.Context, input EnterInput) (*Result, error) {
	validator := &validate.Validator{}
	validator.ID(FieldStudent, input.StudentID)
	validator.ID(FieldSubject, input.SubjectID)
	validator.Date(FieldExamDate, input.ExamDate)
	validator.Marks(FieldTheory, input.TheoryMarks)
	validator.Marks(FieldPractical, input.PracticalMarks)
	validator.Custom(FieldTheory, input.TheoryMarks == nil && input.PracticalMarks == nil,
		"At least one marks component is required")
	validator.Range(FieldSemester, input.Semester, 1, maxSemester)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	record := &Result{
		StudentID:      input.StudentID,
		SubjectID:      input.SubjectID,
		ExamDate:       input.ExamDate,
		TheoryMarks:    input.TheoryMarks,
		PracticalMarks: input.PracticalMarks,
		Semester:       input.Semester,
		Grade:          DeriveGrade(average(input.TheoryMarks, input.PracticalMarks)),
	}

	if err := service.repo.UpsertResult(context, record); err != nil {
		return nil, err
	}

	service.logger.Info("marks_entered",
		slog.Int64("student_id", record.StudentID),
		slog.Int64("subject_id", record.SubjectID),
		slog.String("grade", record.Grade),
	)
	return record, nil
}

// StudentResults returns a student's results, optionally filtered by semester.
func (service *Service) StudentResults(context context.Context, studentID int64, semester int) ([]*Result, error) {
	return service.repo.ListByStudent(context, studentID, semester)
}

// SubjectResults returns all recorded results for a subject.
func (service *Service) SubjectResults(context context.Context, subjectID int64) ([]*Result, error) {
	return service.repo.ListBySubject(context, subjectID)
}

// average computes the mean of the components that are present. Validation
// guarantees at least one is.
func average(theory, practical *int) float64 {
	sum, n := 0, 0
	if theory != nil {
		sum += *theory
		n++
	}
	if practical != nil {
		sum += *practical
		n++
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
