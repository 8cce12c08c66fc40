// Copyright (c) 2026 ERP Cell. All rights reserved.

package student

import (
	"context"
	"log/slog"

	"github.com/erpcell/erpcell/internal/platform/sec"
	"github.com/erpcell/erpcell/internal/platform/validate"
)

// CredentialProvisioner creates a login account for a newly added student.
//
// Implemented by the auth provisioner; the local interface keeps this package
// decoupled and lets tests substitute a fake.
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

// CreateInput is the payload for registering a new student.
//
// Username belongs to the credential, not the info row, so it rides alongside
// the embedded record fields.
type CreateInput struct {
	Student
	LoginUsername string `json:"username"`
}

func (service *Service) ListStudents(context context.Context, filter Filter, limit, offset int) ([]*Student, int, error) {
	return service.repo.ListStudents(context, filter, limit, offset)
}

func (service *Service) GetStudent(context context.Context, id int64) (*Student, error) {
	return service.repo.GetStudent(context, id)
}

/*
CreateStudent registers a new student and provisions their login account.

Description: The info row is inserted first; the credential (default password,
Student role) is created referencing it. A duplicate username or email
surfaces as CONFLICT.

Returns:
  - *Student: The created record with assigned ID
  - error: VALIDATION_ERROR, CONFLICT, or internal failures
*/
func (service *Service) CreateStudent(context context.Context, input CreateInput) (*Student, error) {
	record := input.Student
	sanitize(&record)
	input.LoginUsername = validate.Sanitize(input.LoginUsername)

	validator := &validate.Validator{}
	validateRecord(validator, &record)
	validator.Username(FieldUsername, input.LoginUsername)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.CreateStudent(context, &record); err != nil {
		return nil, err
	}

	userID, err := service.provisioner.ProvisionCredential(context, input.LoginUsername, sec.RoleStudent, record.ID)
	if err != nil {
		// Roll the orphaned info row back so the username can be retried.
		if cleanupErr := service.repo.DeleteStudent(context, record.ID); cleanupErr != nil {
			service.logger.Error("student_cleanup_failed",
				slog.Int64("student_id", record.ID),
				slog.String("error", cleanupErr.Error()),
			)
		}
		return nil, err
	}

	record.Username = &input.LoginUsername

	service.logger.Info("student_created",
		slog.Int64("student_id", record.ID),
		slog.Int64("user_id", userID),
	)
	return &record, nil
}

func (service *Service) UpdateStudent(context context.Context, id int64, record *Student) error {
	record.ID = id
	sanitize(record)

	validator := &validate.Validator{}
	validateRecord(validator, record)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpdateStudent(context, record); err != nil {
		return err
	}

	service.logger.Info("student_updated", slog.Int64("student_id", record.ID))
	return nil
}

func (service *Service) DeleteStudent(context context.Context, id int64) error {
	if err := service.repo.DeleteStudent(context, id); err != nil {
		return err
	}

	service.logger.Warn("student_deleted", slog.Int64("student_id", id))
	return nil
}

// validateRecord applies the shared rule set for create and update.
func validateRecord(validator *validate.Validator, record *Student) {
	validator.PersonName(FieldFirstName, record.FirstName)
	validator.PersonName(FieldLastName, record.LastName)
	validator.Email(FieldEmail, record.Email)
	validator.Phone(FieldPhoneNumber, record.PhoneNumber)
	validator.Date(FieldDateOfBirth, record.DateOfBirth)
	validator.Date(FieldEnrollmentDate, record.EnrollmentDate)
	validator.OneOf(FieldGender, record.Gender, AllowedGenders...)
}

func sanitize(record *Student) {
	record.FirstName = validate.Sanitize(record.FirstName)
	record.LastName = validate.Sanitize(record.LastName)
	record.Email = validate.Sanitize(record.Email)
	record.PhoneNumber = validate.Sanitize(record.PhoneNumber)
}
