// Copyright (c) 2026 ERP Cell. All rights reserved.

package result

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

const resultColumns = `
	r.result_id, r.student_id, r.subject_id, r.exam_date::text,
	r.theory_marks, r.practical_marks, r.grade, r.semester, r.created_at, r.updated_at`

func (repository *PostgresRepository) UpsertResult(context context.Context, r *Result) error {
	const query = `
		INSERT INTO results
			(student_id, subject_id, exam_date, theory_marks, practical_marks, grade, semester, created_at, updated_at)
		VALUES ($1, $2, $3::date, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (student_id, subject_id)
		DO UPDATE SET exam_date = EXCLUDED.exam_date,
		              theory_marks = EXCLUDED.theory_marks,
		              practical_marks = EXCLUDED.practical_marks,
		              grade = EXCLUDED.grade,
		              semester = EXCLUDED.semester,
		              updated_at = NOW()
		RETURNING result_id, created_at, updated_at`

	err := repository.db.QueryRow(context, query,
		r.StudentID, r.SubjectID, r.ExamDate, r.TheoryMarks, r.PracticalMarks, r.Grade, r.Semester,
	).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	return dberr.Wrap(err)
}

func (repository *PostgresRepository) ListByStudent(context context.Context, studentID int64, semester int) ([]*Result, error) {
	query := `
		SELECT ` + resultColumns + `, s.subject_name
		FROM results r
		JOIN subjects s ON s.subject_id = r.subject_id
		WHERE r.student_id = $1`

	args := []any{studentID}
	if semester > 0 {
		query += ` AND r.semester = $` + strconv.Itoa(len(args)+1)
		args = append(args, semester)
	}
	query += ` ORDER BY r.exam_date DESC`

	return repository.queryResults(context, query, args...)
}

func (repository *PostgresRepository) ListBySubject(context context.Context, subjectID int64) ([]*Result, error) {
	const query = `
		SELECT ` + resultColumns + `, s.subject_name
		FROM results r
		JOIN subjects s ON s.subject_id = r.subject_id
		WHERE r.subject_id = $1
		ORDER BY r.student_id`

	return repository.queryResults(context, query, subjectID)
}

func (repository *PostgresRepository) queryResults(context context.Context, query string, args ...any) ([]*Result, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	defer rows.Close()

	var results []*Result
	for rows.Next() {
		r := &Result{}
		if err := rows.Scan(
			&r.ID, &r.StudentID, &r.SubjectID, &r.ExamDate,
			&r.TheoryMarks, &r.PracticalMarks, &r.Grade, &r.Semester,
			&r.CreatedAt, &r.UpdatedAt, &r.SubjectName,
		); err != nil {
			return nil, dberr.Wrap(err)
		}
		results = append(results, r)
	}

	return results, rows.Err()
}
