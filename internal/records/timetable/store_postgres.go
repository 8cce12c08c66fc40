// Copyright (c) 2026 ERP Cell. All rights reserved.

package timetable

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

func (repository *PostgresRepository) ListEntries(context context.Context, f Filter) ([]*Entry, error) {
	query := `
		SELECT t.entry_id, t.subject_id, t.faculty_id, t.day_of_week,
		       t.start_time::text, t.end_time::text, t.location,
		       s.subject_name, fc.first_name || ' ' || fc.last_name AS faculty_name
		FROM timetable t
		JOIN subjects s ON s.subject_id = t.subject_id
		JOIN faculty fc ON fc.faculty_id = t.faculty_id
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
	if f.Day != "" {
		query += ` AND t.day_of_week = $` + strconv.Itoa(len(args)+1)
		args = append(args, f.Day)
	}
	if f.FacultyID > 0 {
		query += ` AND t.faculty_id = $` + strconv.Itoa(len(args)+1)
		args = append(args, f.FacultyID)
	}

	query += ` ORDER BY array_position(ARRAY['Monday','Tuesday','Wednesday','Thursday','Friday','Saturday'], t.day_of_week), t.start_time`

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		if err := rows.Scan(
			&e.ID, &e.SubjectID, &e.FacultyID, &e.DayOfWeek,
			&e.StartTime, &e.EndTime, &e.Location,
			&e.SubjectName, &e.FacultyName,
		); err != nil {
			return nil, dberr.Wrap(err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (repository *PostgresRepository) CreateEntry(context context.Context, e *Entry) error {
	const query = `
		INSERT INTO timetable (subject_id, faculty_id, day_of_week, start_time, end_time, location)
		VALUES ($1, $2, $3, $4::time, $5::time, $6)
		RETURNING entry_id`

	err := repository.db.QueryRow(context, query,
		e.SubjectID, e.FacultyID, e.DayOfWeek, e.StartTime, e.EndTime, e.Location,
	).Scan(&e.ID)
	return dberr.Wrap(err)
}

func (repository *PostgresRepository) DeleteEntry(context context.Context, id int64) error {
	const query = `DELETE FROM timetable WHERE entry_id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err)
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
