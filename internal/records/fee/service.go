// Copyright (c) 2026 ERP Cell. All rights reserved.

package fee

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

// RecordFee creates a new fee charge for a student. A fee recorded as Paid
// must carry a paid date; Pending fees must not.
func (service *Service) RecordFee(context context.Context, fee *Fee) error {
	fee.Description = validate.Sanitize(fee.Description)
	amount := fee.Amount

	validator := &validate.Validator{}
	validator.ID(FieldStudent, fee.StudentID)
	validator.Required(FieldDescription, fee.Description).MaxLen(FieldDescription, fee.Description, 200)
	validator.Amount(FieldAmount, &amount)
	validator.OneOf(FieldStatus, fee.Status, AllowedStatuses...)
	if fee.Status == StatusPaid {
		validator.Custom(FieldPaidDate, fee.PaidDate == nil, "Paid date is required for paid fees")
		if fee.PaidDate != nil {
			validator.Date(FieldPaidDate, *fee.PaidDate)
		}
	} else {
		validator.Custom(FieldPaidDate, fee.PaidDate != nil, "Paid date is only allowed for paid fees")
	}
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateFee(context, fee); err != nil {
		return err
	}

	service.logger.Info("fee_recorded",
		slog.Int64("student_id", fee.StudentID),
		slog.Float64("amount", fee.Amount),
		slog.String("status", fee.Status),
	)
	return nil
}

// SettleFee marks a pending fee as paid on the given date.
func (service *Service) SettleFee(context context.Context, id int64, paidDate string) (*Fee, error) {
	validator := &validate.Validator{}
	validator.Date(FieldPaidDate, paidDate)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	fee, err := service.repo.MarkPaid(context, id, paidDate)
	if err != nil {
		return nil, err
	}

	service.logger.Info("fee_settled", slog.Int64("fee_id", fee.ID))
	return fee, nil
}

// StudentHistory returns a student's fee records and paid/due totals.
func (service *Service) StudentHistory(context context.Context, studentID int64) (*History, error) {
	return service.repo.ListByStudent(context, studentID)
}
