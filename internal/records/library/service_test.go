// Copyright (c) 2026 ERP Cell. All rights reserved.

package library_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erpcell/erpcell/internal/platform/apperr"
	"github.com/erpcell/erpcell/internal/records/library"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeRepository tracks copy accounting so the compensation paths are observable.
type fakeRepository struct {
	available      int
	reserveErr     error
	createIssueErr error
	closeIssueErr  error
	issues         map[int64]*library.Issue
	nextIssueID    int64
}

func newFakeRepository(available int) *fakeRepository {
	return &fakeRepository{
		available: available,
		issues:    make(map[int64]*library.Issue),
	}
}

func (repository *fakeRepository) ListBooks(_ context.Context, _ string) ([]*library.Book, error) {
	return nil, nil
}

func (repository *fakeRepository) CreateBook(_ context.Context, _ *library.Book) error {
	return nil
}

func (repository *fakeRepository) ReserveCopy(_ context.Context, _ int64) error {
	if repository.reserveErr != nil {
		return repository.reserveErr
	}
	if repository.available <= 0 {
		return apperr.Conflict("No copies of this book are available")
	}
	repository.available--
	return nil
}

func (repository *fakeRepository) ReleaseCopy(_ context.Context, _ int64) error {
	repository.available++
	return nil
}

func (repository *fakeRepository) CreateIssue(_ context.Context, issue *library.Issue) error {
	if repository.createIssueErr != nil {
		return repository.createIssueErr
	}
	repository.nextIssueID++
	issue.ID = repository.nextIssueID
	issue.Status = library.StatusIssued
	repository.issues[issue.ID] = issue
	return nil
}

func (repository *fakeRepository) GetIssue(_ context.Context, id int64) (*library.Issue, error) {
	issue, ok := repository.issues[id]
	if !ok {
		return nil, apperr.NotFound("Issue")
	}
	return issue, nil
}

func (repository *fakeRepository) CloseIssue(_ context.Context, id int64, returnDate string) (*library.Issue, error) {
	if repository.closeIssueErr != nil {
		return nil, repository.closeIssueErr
	}
	issue, ok := repository.issues[id]
	if !ok || issue.Status != library.StatusIssued {
		// Guarded close: absent or already-returned rows are not found.
		return nil, apperr.NotFound("Issue")
	}
	issue.Status = library.StatusReturned
	issue.ReturnDate = &returnDate
	return issue, nil
}

func (repository *fakeRepository) ListIssuesByStudent(_ context.Context, _ int64) ([]*library.Issue, error) {
	return nil, nil
}

/*
TestService_IssueBook covers the happy path and copy accounting.
*/
func TestService_IssueBook(t *testing.T) {
	repo := newFakeRepository(1)
	service := library.NewService(repo, discardLogger())

	issue, err := service.IssueBook(context.Background(), library.IssueInput{
		BookID:    1,
		StudentID: 10,
		IssueDate: "2026-03-01",
		DueDate:   "2026-03-15",
	})

	require.NoError(t, err)
	assert.Equal(t, library.StatusIssued, issue.Status)
	assert.Zero(t, repo.available, "issuing must consume the copy")

	// The last copy is gone; the next issue attempt reports a conflict.
	_, err = service.IssueBook(context.Background(), library.IssueInput{
		BookID:    1,
		StudentID: 11,
		IssueDate: "2026-03-01",
		DueDate:   "2026-03-15",
	})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
}

/*
TestService_IssueBook_ReleasesCopyOnFailure verifies the compensation path:
when the issue row cannot be written, the reserved copy is handed back.
*/
func TestService_IssueBook_ReleasesCopyOnFailure(t *testing.T) {
	repo := newFakeRepository(3)
	repo.createIssueErr = errors.New("write failed")
	service := library.NewService(repo, discardLogger())

	_, err := service.IssueBook(context.Background(), library.IssueInput{
		BookID:    1,
		StudentID: 10,
		IssueDate: "2026-03-01",
		DueDate:   "2026-03-15",
	})

	require.Error(t, err)
	assert.Equal(t, 3, repo.available, "failed issue must not leak a reserved copy")
}

func TestService_IssueBook_Validation(t *testing.T) {
	repo := newFakeRepository(5)
	service := library.NewService(repo, discardLogger())

	tests := []struct {
		name  string
		input library.IssueInput
	}{
		{"missing_book", library.IssueInput{StudentID: 10, IssueDate: "2026-03-01", DueDate: "2026-03-15"}},
		{"bad_issue_date", library.IssueInput{BookID: 1, StudentID: 10, IssueDate: "01/03/2026", DueDate: "2026-03-15"}},
		{"due_before_issue", library.IssueInput{BookID: 1, StudentID: 10, IssueDate: "2026-03-15", DueDate: "2026-03-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.IssueBook(context.Background(), tt.input)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
			assert.Equal(t, 5, repo.available, "invalid input must not reserve a copy")
		})
	}
}

/*
TestService_ReturnBook verifies the guarded close: the first return succeeds
and releases the copy, the second reports NOT_FOUND without double-releasing.
*/
func TestService_ReturnBook(t *testing.T) {
	repo := newFakeRepository(1)
	service := library.NewService(repo, discardLogger())

	issue, err := service.IssueBook(context.Background(), library.IssueInput{
		BookID:    1,
		StudentID: 10,
		IssueDate: "2026-03-01",
		DueDate:   "2026-03-15",
	})
	require.NoError(t, err)
	require.Zero(t, repo.available)

	returned, err := service.ReturnBook(context.Background(), issue.ID, "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, library.StatusReturned, returned.Status)
	require.NotNil(t, returned.ReturnDate)
	assert.Equal(t, "2026-03-10", *returned.ReturnDate)
	assert.Equal(t, 1, repo.available, "return must release the copy")

	// Second return: the status guard reports the issue as not found.
	_, err = service.ReturnBook(context.Background(), issue.ID, "2026-03-11")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	assert.Equal(t, 1, repo.available, "a second return must not release again")
}

func TestService_AddBook_Validation(t *testing.T) {
	repo := newFakeRepository(0)
	service := library.NewService(repo, discardLogger())

	err := service.AddBook(context.Background(), &library.Book{
		Title:       "   ",
		Author:      "Kernighan & Ritchie",
		TotalCopies: 5,
	})

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}
