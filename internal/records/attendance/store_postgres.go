// Copyright (c) 2026 ERP Cell. All rights reserved.

package attendance

import (
	"context"
	"math"

	"github.com/erpcell/erpcell/internal/platform/dberr"
	"github.com/erpcell/erpcell/internal/platform/postgres"
)

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) UpsertEntries(context context.Context, entries []*Entry) error {
	const query = `
		INSERT INTO attendance (student_id, subject_id, attendance_date, status)
		VALUES ($1, $2, $3::date, $4)
		ON CONFLICT (student_id, subject_id, attendance_date)
		DO UPDATE SET status = EXCLUDED.status
		RETURNING attendance_id`

	for _, entry := range entries {
		err := repository.db.QueryRow(context, query,
			entry.StudentID, entry.SubjectID, entry.Date, entry.Status,
		).Scan(&entry.ID)
		if err != nil {
			return dberr.Wrap(err)
		}
	}
	return nil
}

func (repository *PostgresRepository) GetSheet(context context.Context, subjectID int64, date string) ([]*Entry, error) {
	const query = `
		SELECT a.attendance_id, a.student_id, a.subject_id, a.attendance_date::text, a.status,
		       s.first_name || ' ' || s.last_name AS student_name
		FROM attendance a
		JOIN students s ON s.student_id = a.student_id
		WHERE a.subject_id = $1 AND a.attendance_date = $2::date
		ORDER BY s.last_name, s.first_name`

	rows, err := repository.db.Query(context, query, subjectID, date)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry := &Entry{}
		if err := rows.Scan(
			&entry.ID, &entry.StudentID, &entry.SubjectID, &entry.Date, &entry.Status,
			&entry.StudentName,
		); err != nil {
			return nil, dberr.Wrap(err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (repository *PostgresRepository) SummarizeStudent(context context.Context, studentID int64) ([]*SubjectSummary, error) {
	const query = `
		SELECT sub.subject_id, sub.subject_name,
		       count(a.status) AS total_classes,
		       count(*) FILTER (WHERE a.status = 'Present') AS classes_present
		FROM subjects sub
		JOIN attendance a ON a.subject_id = sub.subject_id
		WHERE a.student_id = $1
		GROUP BY sub.subject_id, sub.subject_name
		ORDER BY sub.subject_name`

	rows, err := repository.db.Query(context, query, studentID)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	defer rows.Close()

	var summaries []*SubjectSummary
	for rows.Next() {
		summary := &SubjectSummary{}
		if err := rows.Scan(
			&summary.SubjectID, &summary.SubjectName,
			&summary.TotalClasses, &summary.ClassesPresent,
		); err != nil {
			return nil, dberr.Wrap(err)
		}

		if summary.TotalClasses > 0 {
			raw := float64(summary.ClassesPresent) / float64(summary.TotalClasses) * 100
			summary.Percentage = math.Round(raw*100) / 100
		}
		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}
