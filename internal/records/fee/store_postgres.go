// Copyright (c) 2026 ERP Cell. All rights reserved.

package fee

import (
	"context"

	"github.com/erpcell/erpcell/internal/platform/dberr"
	"github.com/erpcell/erpcell/internal/platform/postgres"
)

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const feeColumns = `fee_id, student_id, description, amount, status, paid_date::text, created_at`

func (repository *PostgresRepository) CreateFee(context context.Context, f *Fee) error {
	const query = `
		INSERT INTO fees (student_id, description, amount, status, paid_date, created_at)
		VALUES ($1, $2, $3, $4, $5::date, NOW())
		RETURNING fee_id, created_at`

	err := repository.db.QueryRow(context, query,
		f.StudentID, f.Description, f.Amount, f.Status, f.PaidDate,
	).Scan(&f.ID, &f.CreatedAt)
	return dberr.Wrap(err)
}

func (repository *PostgresRepository) GetFee(context context.Context, id int64) (*Fee, error) {
	const query = `SELECT ` + feeColumns + ` FROM fees WHERE fee_id = $1`

	f := &Fee{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&f.ID, &f.StudentID, &f.Description, &f.Amount, &f.Status, &f.PaidDate, &f.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	return f, nil
}

func (repository *PostgresRepository) MarkPaid(context context.Context, id int64, paidDate string) (*Fee, error) {
	const query = `
		UPDATE fees
		SET status = 'Paid', paid_date = $2::date
		WHERE fee_id = $1
		RETURNING ` + feeColumns

	f := &Fee{}
	err := repository.db.QueryRow(context, query, id, paidDate).Scan(
		&f.ID, &f.StudentID, &f.Description, &f.Amount, &f.Status, &f.PaidDate, &f.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	return f, nil
}

func (repository *PostgresRepository) ListByStudent(context context.Context, studentID int64) (*History, error) {
	const query = `
		SELECT ` + feeColumns + `
		FROM fees
		WHERE student_id = $1
		ORDER BY status, paid_date DESC NULLS LAST, fee_id DESC`

	rows, err := repository.db.Query(context, query, studentID)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	defer rows.Close()

	history := &History{Fees: []*Fee{}}
	for rows.Next() {
		f := &Fee{}
		if err := rows.Scan(
			&f.ID, &f.StudentID, &f.Description, &f.Amount, &f.Status, &f.PaidDate, &f.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err)
		}

		switch f.Status {
		case StatusPaid:
			history.TotalPaid += f.Amount
		default:
			history.TotalDue += f.Amount
		}
		history.Fees = append(history.Fees, f)
	}

	return history, rows.Err()
}
