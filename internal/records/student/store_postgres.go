// Copyright (c) 2026 ERP Cell. All rights reserved.

package student

import (
	"context"
	"strconv"

	"github.com/erpcell/erpcell/internal/platform/dberr"
	"github.com/erpcell/erpcell/internal/platform/postgres"
)

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const studentColumns = `
	s.student_id, s.first_name, s.last_name, s.date_of_birth::text, s.email,
	s.phone_number, s.enrollment_date::text, s.gender, s.created_at, s.updated_at`

func (repository *PostgresRepository) ListStudents(context context.Context, f Filter, limit, offset int) ([]*Student, int, error) {
	query := `
		SELECT ` + studentColumns + `, u.username
		FROM students s
		LEFT JOIN user_credentials u ON u.student_ref_id = s.student_id`
	countQuery := `SELECT count(*) FROM students s`

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		clause := ` WHERE (s.first_name ILIKE $1 OR s.last_name ILIKE $1 OR s.email ILIKE $1)`
		query += clause
		countQuery += clause
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	query += ` ORDER BY s.student_id DESC LIMIT $` + itos(len(args)+1) + ` OFFSET $` + itos(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err)
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err)
	}
	defer rows.Close()

	var students []*Student
	for rows.Next() {
		s := &Student{}
		if err := rows.Scan(
			&s.ID, &s.FirstName, &s.LastName, &s.DateOfBirth, &s.Email,
			&s.PhoneNumber, &s.EnrollmentDate, &s.Gender, &s.CreatedAt, &s.UpdatedAt,
			&s.Username,
		); err != nil {
			return nil, 0, dberr.Wrap(err)
		}
		students = append(students, s)
	}

	return students, total, rows.Err()
}

func (repository *PostgresRepository) GetStudent(context context.Context, id int64) (*Student, error) {
	query := `
		SELECT ` + studentColumns + `, u.username
		FROM students s
		LEFT JOIN user_credentials u ON u.student_ref_id = s.student_id
		WHERE s.student_id = $1`

	s := &Student{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&s.ID, &s.FirstName, &s.LastName, &s.DateOfBirth, &s.Email,
		&s.PhoneNumber, &s.EnrollmentDate, &s.Gender, &s.CreatedAt, &s.UpdatedAt,
		&s.Username,
	)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	return s, nil
}

func (repository *PostgresRepository) CreateStudent(context context.Context, s *Student) error {
	const query = `
		INSERT INTO students
			(first_name, last_name, date_of_birth, email, phone_number, enrollment_date, gender, created_at, updated_at)
		VALUES ($1, $2, $3::date, $4, $5, $6::date, $7, NOW(), NOW())
		RETURNING student_id, created_at, updated_at`

	err := repository.db.QueryRow(context, query,
		s.FirstName, s.LastName, s.DateOfBirth, s.Email,
		s.PhoneNumber, s.EnrollmentDate, s.Gender,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	return dberr.Wrap(err)
}

func (repository *PostgresRepository) UpdateStudent(context context.Context, s *Student) error {
	const query = `
		UPDATE students
		SET first_name = $2, last_name = $3, date_of_birth = $4::date, email = $5,
		    phone_number = $6, enrollment_date = $7::date, gender = $8, updated_at = NOW()
		WHERE student_id = $1
		RETURNING updated_at`

	err := repository.db.QueryRow(context, query,
		s.ID, s.FirstName, s.LastName, s.DateOfBirth, s.Email,
		s.PhoneNumber, s.EnrollmentDate, s.Gender,
	).Scan(&s.UpdatedAt)
	return dberr.Wrap(err)
}

func (repository *PostgresRepository) DeleteStudent(context context.Context, id int64) error {
	// Dependent rows (credential, attendance, fees, results, issues) are
	// removed by ON DELETE CASCADE.
	const query = `DELETE FROM students WHERE student_id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err)
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func itos(i int) string {
	return strconv.Itoa(i)
}
