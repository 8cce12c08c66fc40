// Copyright (c) 2026 ERP Cell. All rights reserved.

package attendance

import (
	"context"
	"log/slog"

	"github.com/erpcell/erpcell/internal/platform/validate"
	"github.com/erpcell/erpcell/pkg/slice"
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

// MarkInput is a full attendance sheet for one class session.
type MarkInput struct {
	SubjectID int64        `json:"subject_id"`
	Date      string       `json:"attendance_date"`
	Entries   []MarkStatus `json:"entries"`
}

// MarkStatus is one student's status within a sheet.
type MarkStatus struct {
	StudentID int64  `json:"student_id"`
	Status    string `json:"status"`
}

/*
MarkSheet records attendance for every listed student in one class session.

Description: The whole sheet is validated before any row is written.
Re-submitting the same subject/date overwrites earlier statuses.

Returns:
  - int: Number of entries written
  - error: VALIDATION_ERROR or storage failures
*/
func (service *Service) MarkSheet(context context.Context, input MarkInput) (int, error) {
	validator := &validate.Validator{}
	validator.ID(FieldSubject, input.SubjectID)
	validator.Date(FieldDate, input.Date)
	validator.Custom(FieldEntries, len(input.Entries) == 0, "At least one entry is required")
	for _, status := range input.Entries {
		validator.ID(FieldStudent, status.StudentID)
		validator.OneOf(FieldStatus, status.Status, AllowedStatuses...)
	}
	if err := validator.Err(); err != nil {
		return 0, err
	}

	entries := slice.Map(input.Entries, func(status MarkStatus) *Entry {
		return &Entry{
			StudentID: status.StudentID,
			SubjectID: input.SubjectID,
			Date:      input.Date,
			Status:    status.Status,
		}
	})

	if err := service.repo.UpsertEntries(context, entries); err != nil {
		return 0, err
	}

	service.logger.Info("attendance_marked",
		slog.Int64("subject_id", input.SubjectID),
		slog.String("date", input.Date),
		slog.Int("entries", len(entries)),
	)
	return len(entries), nil
}

// GetSheet returns the recorded sheet for a subject and date.
func (service *Service) GetSheet(context context.Context, subjectID int64, date string) ([]*Entry, error) {
	validator := &validate.Validator{}
	validator.ID(FieldSubject, subjectID)
	validator.Date(FieldDate, date)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.repo.GetSheet(context, subjectID, date)
}

// StudentSummary returns a student's per-subject attendance aggregation.
func (service *Service) StudentSummary(context context.Context, studentID int64) ([]*SubjectSummary, error) {
	return service.repo.SummarizeStudent(context, studentID)
}
