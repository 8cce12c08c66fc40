// Copyright (c) 2026 ERP Cell. All rights reserved.

package library

import (
	"context"
	"log/slog"
	"time"

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

// IssueInput is the payload for lending a book to a student.
type IssueInput struct {
	BookID    int64  `json:"book_id"`
	StudentID int64  `json:"student_id"`
	IssueDate string `json:"issue_date"`
	DueDate   string `json:"due_date"`
}

func (service *Service) ListBooks(context context.Context, search string) ([]*Book, error) {
	return service.repo.ListBooks(context, validate.Sanitize(search))
}

func (service *Service) AddBook(context context.Context, book *Book) error {
	book.Title = validate.Sanitize(book.Title)
	book.Author = validate.Sanitize(book.Author)

	validator := &validate.Validator{}
	validator.Required(FieldTitle, book.Title).MaxLen(FieldTitle, book.Title, 200)
	validator.Required(FieldAuthor, book.Author).MaxLen(FieldAuthor, book.Author, 100)
	validator.Range(FieldTotalCopies, book.TotalCopies, 1, maxCopies)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateBook(context, book); err != nil {
		return err
	}

	service.logger.Info("book_added",
		slog.String("title", book.Title),
		slog.Int("copies", book.TotalCopies),
	)
	return nil
}

/*
IssueBook lends a copy of a book to a student.

Description: A copy is reserved first; the issue row is only written once the
reservation succeeds. The due date must not precede the issue date.

Returns:
  - *Issue: The created lending record
  - error: VALIDATION_ERROR, CONFLICT when no copies remain, or storage failures
*/
func (service *Service) IssueBook(context context.Context, input IssueInput) (*Issue, error) {
	validator := &validate.Validator{}
	validator.ID(FieldBook, input.BookID)
	validator.ID(FieldStudent, input.StudentID)
	validator.Date(FieldIssueDate, input.IssueDate)
	validator.Date(FieldDueDate, input.DueDate)
	if !validator.HasErrors() {
		issued, _ := time.Parse("2006-01-02", input.IssueDate)
		due, _ := time.Parse("2006-01-02", input.DueDate)
		validator.Custom(FieldDueDate, due.Before(issued), "Due date cannot precede the issue date")
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.ReserveCopy(context, input.BookID); err != nil {
		return nil, err
	}

	issue := &Issue{
		BookID:    input.BookID,
		StudentID: input.StudentID,
		IssueDate: input.IssueDate,
		DueDate:   input.DueDate,
	}
	if err := service.repo.CreateIssue(context, issue); err != nil {
		// Hand the reserved copy back so the counter stays consistent.
		if releaseErr := service.repo.ReleaseCopy(context, input.BookID); releaseErr != nil {
			service.logger.Error("copy_release_failed",
				slog.Int64("book_id", input.BookID),
				slog.String("error", releaseErr.Error()),
			)
		}
		return nil, err
	}

	service.logger.Info("book_issued",
		slog.Int64("book_id", issue.BookID),
		slog.Int64("student_id", issue.StudentID),
	)
	return issue, nil
}

/*
ReturnBook closes an open issue and releases the copy.

Description: Closing is guarded on the Issued status, so returning the same
issue twice reports NOT_FOUND on the second attempt and never double-releases.
*/
func (service *Service) ReturnBook(context context.Context, issueID int64, returnDate string) (*Issue, error) {
	validator := &validate.Validator{}
	validator.Date(FieldReturnDate, returnDate)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	issue, err := service.repo.CloseIssue(context, issueID, returnDate)
	if err != nil {
		return nil, err
	}

	if err := service.repo.ReleaseCopy(context, issue.BookID); err != nil {
		return nil, err
	}

	service.logger.Info("book_returned", slog.Int64("issue_id", issue.ID))
	return issue, nil
}

// StudentIssues returns a student's lending history, newest first.
func (service *Service) StudentIssues(context context.Context, studentID int64) ([]*Issue, error) {
	return service.repo.ListIssuesByStudent(context, studentID)
}
