// Copyright (c) 2026 ERP Cell. All rights reserved.

package faculty

import (
	"context"
	"log/slog"

	"github.com/erpcell/erpcell/internal/platform/sec"
	"github.com/erpcell/erpcell/internal/platform/validate"
)

// CredentialProvisioner creates a login account for a newly added faculty member.
type CredentialProvisioner interface {
	ProvisionCredential(ctx context.Context, username string, role sec.Role, refID int64) (int64, error)
}

type Service struct {
	repo        Repository
	provisioner CredentialProvisioner
	logger      *slog.Logger
}

func NewService(repo Repository, provisioner CredentialProvisioner, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		provisioner: provisioner,
		logger:      logger,
	}
}

// CreateInput is the payload for registering a new faculty member.
type CreateInput struct {
	Faculty
	LoginUsername string `json:"username"`
}

func (service *Service) ListFaculty(context context.Context, filter Filter, limit, offset int) ([]*Faculty, int, error) {
	return service.repo.ListFaculty(context, filter, limit, offset)
}

func (service *Service) GetFaculty(context context.Context, id int64) (*Faculty, error) {
	return service.repo.GetFaculty(context, id)
}

// CreateFaculty registers a new faculty member and provisions their login
// account with the Faculty default password.
func (service *Service) CreateFaculty(context context.Context, input CreateInput) (*Faculty, error) {
	record := input.Faculty
	sanitize(&record)
	input.LoginUsername = validate.Sanitize(input.LoginUsername)

	validator := &validate.Validator{}
	validateRecord(validator, &record)
	validator.Username(FieldUsername, input.LoginUsername)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.CreateFaculty(context, &record); err != nil {
		return nil, err
	}

	userID, err := service.provisioner.ProvisionCredential(context, input.LoginUsername, sec.RoleFaculty, record.ID)
	if err != nil {
		if cleanupErr := service.repo.DeleteFaculty(context, record.ID); cleanupErr != nil {
			service.logger.Error("faculty_cleanup_failed",
				slog.Int64("faculty_id", record.ID),
				slog.String("error", cleanupErr.Error()),
			)
		}
		return nil, err
	}

	record.Username = &input.LoginUsername

	service.logger.Info("faculty_created",
		slog.Int64("faculty_id", record.ID),
		slog.Int64("user_id", userID),
	)
	return &record, nil
}

func (service *Service) UpdateFaculty(context context.Context, id int64, record *Faculty) error {
	record.ID = id
	sanitize(record)

	validator := &validate.Validator{}
	validateRecord(validator, record)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpdateFaculty(context, record); err != nil {
		return err
	}

	service.logger.Info("faculty_updated", slog.Int64("faculty_id", record.ID))
	return nil
}

func (service *Service) DeleteFaculty(context context.Context, id int64) error {
	if err := service.repo.DeleteFaculty(context, id); err != nil {
		return err
	}

	service.logger.Warn("faculty_deleted", slog.Int64("faculty_id", id))
	return nil
}

func validateRecord(validator *validate.Validator, record *Faculty) {
	validator.Required(FieldCode, record.Code).MaxLen(FieldCode, record.Code, 20)
	validator.PersonName(FieldFirstName, record.FirstName)
	validator.PersonName(FieldLastName, record.LastName)
	validator.OneOf(FieldGender, record.Gender, AllowedGenders...)
	validator.ID(FieldDepartment, record.DepartmentID)
	validator.Email(FieldEmail, record.Email)
	validator.Phone(FieldPhoneNumber, record.PhoneNumber)
	validator.Date(FieldHireDate, record.HireDate)
}

func sanitize(record *Faculty) {
	record.Code = validate.Sanitize(record.Code)
	record.FirstName = validate.Sanitize(record.FirstName)
	record.LastName = validate.Sanitize(record.LastName)
	record.Email = validate.Sanitize(record.Email)
	record.PhoneNumber = validate.Sanitize(record.PhoneNumber)
}
