// Copyright (c) 2026 ERP Cell. All rights reserved.

package library

import "context"

type Repository interface {
	ListBooks(context context.Context, query string) ([]*Book, error)
	CreateBook(context context.Context, b *Book) error

	// ReserveCopy atomically decrements a book's available count. Returns
	// CONFLICT when no copies are left.
	ReserveCopy(context context.Context, bookID int64) error
	// ReleaseCopy increments a book's available count back.
	ReleaseCopy(context context.Context, bookID int64) error

	CreateIssue(context context.Context, issue *Issue) error
	GetIssue(context context.Context, id int64) (*Issue, error)
	CloseIssue(context context.Context, id int64, returnDate string) (*Issue, error)
	ListIssuesByStudent(context context.Context, studentID int64) ([]*Issue, error)
}
