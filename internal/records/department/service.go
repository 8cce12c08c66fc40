// Copyright (c) 2026 ERP Cell. All rights reserved.

package department

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

func (service *Service) ListDepartments(context context.Context) ([]*Department, error) {
	return service.repo.ListDepartments(context)
}

func (service *Service) GetDepartment(context context.Context, id int64) (*Department, error) {
	return service.repo.GetDepartment(context, id)
}

func (service *Service) CreateDepartment(context context.Context, department *Department) error {
	department.Name = validate.Sanitize(department.Name)

	validator := &validate.Validator{}
	validator.Required(FieldName, department.Name).MaxLen(FieldName, department.Name, 100)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateDepartment(context, department); err != nil {
		return err
	}

	service.logger.Info("department_created", slog.String("name", department.Name))
	return nil
}

func (service *Service) UpdateDepartment(context context.Context, id int64, department *Department) error {
	department.ID = id
	department.Name = validate.Sanitize(department.Name)

	validator := &validate.Validator{}
	validator.Required(FieldName, department.Name).MaxLen(FieldName, department.Name, 100)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpdateDepartment(context, department); err != nil {
		return err
	}

	service.logger.Info("department_updated", slog.Int64("dept_id", department.ID))
	return nil
}

func (service *Service) DeleteDepartment(context context.Context, id int64) error {
	if err := service.repo.DeleteDepartment(context, id); err != nil {
		return err
	}

	service.logger.Warn("department_deleted", slog.Int64("dept_id", id))
	return nil
}
