// Copyright (c) 2026 ERP Cell. All rights reserved.

package timetable

import (
	"context"
	"log/slog"
	"time"

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

func (service *Service) ListEntries(context context.Context, filter Filter) ([]*Entry, error) {
	return service.repo.ListEntries(context, filter)
}

func (service *Service) CreateEntry(context context.Context, entry *Entry) error {
	entry.Location = validate.Sanitize(entry.Location)

	validator := &validate.Validator{}
	validator.ID(FieldSubject, entry.SubjectID)
	validator.ID(FieldFaculty, entry.FacultyID)
	validator.OneOf(FieldDay, entry.DayOfWeek, AllowedDays...)
	validator.Custom(FieldStart, !validClockTime(entry.StartTime), "Must be a valid time in HH:MM format")
	validator.Custom(FieldEnd, !validClockTime(entry.EndTime), "Must be a valid time in HH:MM format")
	validator.Required(FieldLocation, entry.Location).MaxLen(FieldLocation, entry.Location, 100)
	if !validator.HasErrors() {
		validator.Custom(FieldEnd, entry.EndTime <= entry.StartTime, "End time must be after start time")
	}
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateEntry(context, entry); err != nil {
		return err
	}

	service.logger.Info("timetable_entry_created",
		slog.Int64("subject_id", entry.SubjectID),
		slog.String("day", entry.DayOfWeek),
	)
	return nil
}

func (service *Service) DeleteEntry(context context.Context, id int64) error {
	if err := service.repo.DeleteEntry(context, id); err != nil {
		return err
	}

	service.logger.Warn("timetable_entry_deleted", slog.Int64("entry_id", id))
	return nil
}

// validClockTime accepts 24h HH:MM wall-clock strings. Lexicographic
// comparison of two valid values matches chronological order.
func validClockTime(value string) bool {
	_, err := time.Parse("15:04", value)
	return err == nil
}
