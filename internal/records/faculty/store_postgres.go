// Copyright (c) 2026 ERP Cell. All rights reserved.

package faculty

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

const facultyColumns = `
	f.faculty_id, f.faculty_code, f.first_name, f.last_name, f.gender, f.dept_id,
	f.email, f.phone_number, f.hire_date::text, f.created_at, f.updated_at`

func (repository *PostgresRepository) ListFaculty(context context.Context, f Filter, limit, offset int) ([]*Faculty, int, error) {
	query := `
		SELECT ` + facultyColumns + `, d.dept_name, u.username
		FROM faculty f
		LEFT JOIN departments d ON d.dept_id = f.dept_id
		LEFT JOIN user_credentials u ON u.faculty_ref_id = f.faculty_id
		WHERE 1=1`
	countQuery := `SELECT count(*) FROM faculty f WHERE 1=1`

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		placeholder := "$" + strconv.Itoa(len(args)+1)
		clause := ` AND (f.first_name ILIKE ` + placeholder +
			` OR f.last_name ILIKE ` + placeholder +
			` OR f.faculty_code ILIKE ` + placeholder + `)`
		query += clause
		countQuery += clause
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	if f.DepartmentID > 0 {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		clause := ` AND f.dept_id = ` + placeholder
		query += clause
		countQuery += clause
		args = append(args, f.DepartmentID)
		countArgs = append(countArgs, f.DepartmentID)
	}

	query += ` ORDER BY f.faculty_id DESC LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
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

	var members []*Faculty
	for rows.Next() {
		member := &Faculty{}
		if err := rows.Scan(
			&member.ID, &member.Code, &member.FirstName, &member.LastName, &member.Gender,
			&member.DepartmentID, &member.Email, &member.PhoneNumber, &member.HireDate,
			&member.CreatedAt, &member.UpdatedAt,
			&member.DepartmentName, &member.Username,
		); err != nil {
			return nil, 0, dberr.Wrap(err)
		}
		members = append(members, member)
	}

	return members, total, rows.Err()
}

func (repository *PostgresRepository) GetFaculty(context context.Context, id int64) (*Faculty, error) {
	query := `
		SELECT ` + facultyColumns + `, d.dept_name, u.username
		FROM faculty f
		LEFT JOIN departments d ON d.dept_id = f.dept_id
		LEFT JOIN user_credentials u ON u.faculty_ref_id = f.faculty_id
		WHERE f.faculty_id = $1`

	member := &Faculty{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&member.ID, &member.Code, &member.FirstName, &member.LastName, &member.Gender,
		&member.DepartmentID, &member.Email, &member.PhoneNumber, &member.HireDate,
		&member.CreatedAt, &member.UpdatedAt,
		&member.DepartmentName, &member.Username,
	)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	return member, nil
}

func (repository *PostgresRepository) CreateFaculty(context context.Context, member *Faculty) error {
	const query = `
		INSERT INTO faculty
			(faculty_code, first_name, last_name, gender, dept_id, email, phone_number, hire_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::date, NOW(), NOW())
		RETURNING faculty_id, created_at, updated_at`

	err := repository.db.QueryRow(context, query,
		member.Code, member.FirstName, member.LastName, member.Gender,
		member.DepartmentID, member.Email, member.PhoneNumber, member.HireDate,
	).Scan(&member.ID, &member.CreatedAt, &member.UpdatedAt)
	return dberr.Wrap(err)
}

func (repository *PostgresRepository) UpdateFaculty(context context.Context, member *Faculty) error {
	const query = `
		UPDATE faculty
		SET faculty_code = $2, first_name = $3, last_name = $4, gender = $5, dept_id = $6,
		    email = $7, phone_number = $8, hire_date = $9::date, updated_at = NOW()
		WHERE faculty_id = $1
		RETURNING updated_at`

	err := repository.db.QueryRow(context, query,
		member.ID, member.Code, member.FirstName, member.LastName, member.Gender,
		member.DepartmentID, member.Email, member.PhoneNumber, member.HireDate,
	).Scan(&member.UpdatedAt)
	return dberr.Wrap(err)
}

func (repository *PostgresRepository) DeleteFaculty(context context.Context, id int64) error {
	const query = `DELETE FROM faculty WHERE faculty_id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err)
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
