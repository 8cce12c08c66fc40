// Copyright (c) 2026 ERP Cell. All rights reserved.

package subject

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

const subjectColumns = `
	s.subject_id, s.subject_code, s.subject_name, s.credits, s.dept_id, s.semester,
	s.created_at, s.updated_at`

func (repository *PostgresRepository) ListSubjects(context context.Context, f Filter) ([]*Subject, error) {
	query := `
		SELECT ` + subjectColumns + `, d.dept_name
		FROM subjects s
		LEFT JOIN departments d ON d.dept_id = s.dept_id
		WHERE 1=1`

	args := []any{}
	if f.DeptID > 0 {
		query += ` AND s.dept_id = $` + strconv.Itoa(len(args)+1)
		args = append(args, f.DeptID)
	}
	if f.Semester > 0 {
		query += ` AND s.semester = $` + strconv.Itoa(len(args)+1)
		args = append(args, f.Semester)
	}
	query += ` ORDER BY s.subject_code`

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	defer rows.Close()

	var subjects []*Subject
	for rows.Next() {
		s := &Subject{}
		if err := rows.Scan(
			&s.ID, &s.Code, &s.Name, &s.Credits, &s.DeptID, &s.Semester,
			&s.CreatedAt, &s.UpdatedAt, &s.DeptName,
		); err != nil {
			return nil, dberr.Wrap(err)
		}
		subjects = append(subjects, s)
	}

	return subjects, rows.Err()
}

func (repository *PostgresRepository) GetSubject(context context.Context, id int64) (*Subject, error) {
	query := `
		SELECT ` + subjectColumns + `, d.dept_name
		FROM subjects s
		LEFT JOIN departments d ON d.dept_id = s.dept_id
		WHERE s.subject_id = $1`

	s := &Subject{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&s.ID, &s.Code, &s.Name, &s.Credits, &s.DeptID, &s.Semester,
		&s.CreatedAt, &s.UpdatedAt, &s.DeptName,
	)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	return s, nil
}

func (repository *PostgresRepository) CreateSubject(context context.Context, s *Subject) error {
	const query = `
		INSERT INTO subjects (subject_code, subject_name, credits, dept_id, semester, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING subject_id, created_at, updated_at`

	err := repository.db.QueryRow(context, query,
		s.Code, s.Name, s.Credits, s.DeptID, s.Semester,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	return dberr.Wrap(err)
}

func (repository *PostgresRepository) UpdateSubject(context context.Context, s *Subject) error {
	const query = `
		UPDATE subjects
		SET subject_code = $2, subject_name = $3, credits = $4, dept_id = $5, semester = $6, updated_at = NOW()
		WHERE subject_id = $1
		RETURNING updated_at`

	err := repository.db.QueryRow(context, query,
		s.ID, s.Code, s.Name, s.Credits, s.DeptID, s.Semester,
	).Scan(&s.UpdatedAt)
	return dberr.Wrap(err)
}

func (repository *PostgresRepository) DeleteSubject(context context.Context, id int64) error {
	const query = `DELETE FROM subjects WHERE subject_id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err)
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
