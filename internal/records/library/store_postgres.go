// Copyright (c) 2026 ERP Cell. All rights reserved.

package library

import (
	"context"

	"github.com/erpcell/erpcell/internal/platform/apperr"
	"github.com/erpcell/erpcell/internal/platform/dberr"
	"github.com/erpcell/erpcell/internal/platform/postgres"
)

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListBooks(context context.Context, search string) ([]*Book, error) {
	query := `
		SELECT book_id, book_title, book_author, total_copies, available_copies, created_at, updated_at
		FROM library_books`

	args := []any{}
	if search != "" {
		query += ` WHERE book_title ILIKE $1 OR book_author ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY book_title`

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	defer rows.Close()

	var books []*Book
	for rows.Next() {
		b := &Book{}
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.TotalCopies, &b.AvailableCopies,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err)
		}
		books = append(books, b)
	}

	return books, rows.Err()
}

func (repository *PostgresRepository) CreateBook(context context.Context, b *Book) error {
	const query = `
		INSERT INTO library_books (book_title, book_author, total_copies, available_copies, created_at, updated_at)
		VALUES ($1, $2, $3, $3, NOW(), NOW())
		RETURNING book_id, available_copies, created_at, updated_at`

	err := repository.db.QueryRow(context, query, b.Title, b.Author, b.TotalCopies).
		Scan(&b.ID, &b.AvailableCopies, &b.CreatedAt, &b.UpdatedAt)
	return dberr.Wrap(err)
}

func (repository *PostgresRepository) ReserveCopy(context context.Context, bookID int64) error {
	// The available_copies > 0 guard makes the decrement race-safe: two
	// issues of the last copy cannot both pass it.
	const query = `
		UPDATE library_books
		SET available_copies = available_copies - 1, updated_at = NOW()
		WHERE book_id = $1 AND available_copies > 0`

	cmd, err := repository.db.Exec(context, query, bookID)
	if err != nil {
		return dberr.Wrap(err)
	}
	if cmd.RowsAffected() == 0 {
		return apperr.Conflict("No copies of this book are available")
	}
	return nil
}

func (repository *PostgresRepository) ReleaseCopy(context context.Context, bookID int64) error {
	const query = `
		UPDATE library_books
		SET available_copies = available_copies + 1, updated_at = NOW()
		WHERE book_id = $1`

	_, err := repository.db.Exec(context, query, bookID)
	return dberr.Wrap(err)
}

const issueColumns = `
	i.issue_id, i.book_id, i.student_id, i.issue_date::text, i.due_date::text,
	i.return_date::text, i.status`

func (repository *PostgresRepository) CreateIssue(context context.Context, issue *Issue) error {
	const query = `
		INSERT INTO book_issues (book_id, student_id, issue_date, due_date, status)
		VALUES ($1, $2, $3::date, $4::date, 'Issued')
		RETURNING issue_id, status`

	err := repository.db.QueryRow(context, query,
		issue.BookID, issue.StudentID, issue.IssueDate, issue.DueDate,
	).Scan(&issue.ID, &issue.Status)
	return dberr.Wrap(err)
}

func (repository *PostgresRepository) GetIssue(context context.Context, id int64) (*Issue, error) {
	const query = `
		SELECT ` + issueColumns + `
		FROM book_issues i
		WHERE i.issue_id = $1`

	issue := &Issue{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&issue.ID, &issue.BookID, &issue.StudentID, &issue.IssueDate, &issue.DueDate,
		&issue.ReturnDate, &issue.Status,
	)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	return issue, nil
}

func (repository *PostgresRepository) CloseIssue(context context.Context, id int64, returnDate string) (*Issue, error) {
	// Guarded on status so a double return cannot release two copies.
	const query = `
		UPDATE book_issues i
		SET return_date = $2::date, status = 'Returned'
		WHERE i.issue_id = $1 AND i.status = 'Issued'
		RETURNING ` + issueColumns

	issue := &Issue{}
	err := repository.db.QueryRow(context, query, id, returnDate).Scan(
		&issue.ID, &issue.BookID, &issue.StudentID, &issue.IssueDate, &issue.DueDate,
		&issue.ReturnDate, &issue.Status,
	)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	return issue, nil
}

func (repository *PostgresRepository) ListIssuesByStudent(context context.Context, studentID int64) ([]*Issue, error) {
	const query = `
		SELECT ` + issueColumns + `, b.book_title, b.book_author
		FROM book_issues i
		JOIN library_books b ON b.book_id = i.book_id
		WHERE i.student_id = $1
		ORDER BY i.issue_date DESC`

	rows, err := repository.db.Query(context, query, studentID)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	defer rows.Close()

	var issues []*Issue
	for rows.Next() {
		issue := &Issue{}
		if err := rows.Scan(
			&issue.ID, &issue.BookID, &issue.StudentID, &issue.IssueDate, &issue.DueDate,
			&issue.ReturnDate, &issue.Status,
			&issue.BookTitle, &issue.BookAuthor,
		); err != nil {
			return nil, dberr.Wrap(err)
		}
		issues = append(issues, issue)
	}

	return issues, rows.Err()
}
