// Copyright (c) 2026 ERP Cell. All rights reserved.

package department

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

func (repository *PostgresRepository) ListDepartments(context context.Context) ([]*Department, error) {
	const query = `
		SELECT d.dept_id, d.dept_name, d.created_at, d.updated_at,
		       (SELECT count(*) FROM faculty f WHERE f.dept_id = d.dept_id) AS faculty_count,
		       (SELECT count(*) FROM subjects s WHERE s.dept_id = d.dept_id) AS subject_count
		FROM departments d
		ORDER BY d.dept_id`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	defer rows.Close()

	var departments []*Department
	for rows.Next() {
		d := &Department{}
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt, &d.FacultyCount, &d.SubjectCount); err != nil {
			return nil, dberr.Wrap(err)
		}
		departments = append(departments, d)
	}

	return departments, rows.Err()
}

func (repository *PostgresRepository) GetDepartment(context context.Context, id int64) (*Department, error) {
	const query = `
		SELECT dept_id, dept_name, created_at, updated_at
		FROM departments
		WHERE dept_id = $1`

	d := &Department{}
	err := repository.db.QueryRow(context, query, id).Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	return d, nil
}

func (repository *PostgresRepository) CreateDepartment(context context.Context, d *Department) error {
	const query = `
		INSERT INTO departments (dept_name, created_at, updated_at)
		VALUES ($1, NOW(), NOW())
		RETURNING dept_id, created_at, updated_at`

	err := repository.db.QueryRow(context, query, d.Name).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	return dberr.Wrap(err)
}

func (repository *PostgresRepository) UpdateDepartment(context context.Context, d *Department) error {
	const query = `
		UPDATE departments
		SET dept_name = $2, updated_at = NOW()
		WHERE dept_id = $1
		RETURNING updated_at`

	err := repository.db.QueryRow(context, query, d.ID, d.Name).Scan(&d.UpdatedAt)
	return dberr.Wrap(err)
}

func (repository *PostgresRepository) DeleteDepartment(context context.Context, id int64) error {
	const query = `DELETE FROM departments WHERE dept_id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err)
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
