// Copyright (c) 2026 ERP Cell. All rights reserved.

package subject

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

func (service *Service) ListSubjects(context context.Context, filter Filter) ([]*Subject, error) {
	return service.repo.ListSubjects(context, filter)
}

func (service *Service) GetSubject(context context.Context, id int64) (*Subject, error) {
	return service.repo.GetSubject(context, id)
}

func (service *Service) CreateSubject(context context.Context, subject *Subject) error {
	if err := validateSubject(subject); err != nil {
		return err
	}

	if err := service.repo.CreateSubject(context, subject); err != nil {
		return err
	}

	service.logger.Info("subject_created", slog.String("code", subject.Code))
	return nil
}

func (service *Service) UpdateSubject(context context.Context, id int64, subject *Subject) error {
	subject.ID = id
	if err := validateSubject(subject); err != nil {
		return err
	}

	if err := service.repo.UpdateSubject(context, subject); err != nil {
		return err
	}

	service.logger.Info("subject_updated", slog.Int64("subject_id", subject.ID))
	return nil
}

func (service *Service) DeleteSubject(context context.Context, id int64) error {
	if err := service.repo.DeleteSubject(context, id); err != nil {
		return err
	}

	service.logger.Warn("subject_deleted", slog.Int64("subject_id", id))
	return nil
}

func validateSubject(subject *Subject) error {
	subject.Code = validate.Sanitize(subject.Code)
	subject.Name = validate.Sanitize(subject.Name)

	validator := &validate.Validator{}
	validator.Required(FieldCode, subject.Code).MaxLen(FieldCode, subject.Code, 20)
	validator.Required(FieldName, subject.Name).MaxLen(FieldName, subject.Name, 100)
	validator.Range(FieldCredits, subject.Credits, 1, maxCredits)
	validator.ID(FieldDept, subject.DeptID)
	validator.Range(FieldSemester, subject.Semester, 1, maxSemester)
	return validator.Err()
}
