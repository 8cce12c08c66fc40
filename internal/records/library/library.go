// Copyright (c) 2026 ERP Cell. All rights reserved.

/*
Package library manages the book catalog and per-student lending.

# Availability

Copies are tracked as a counter on the book row. Issuing decrements it with a
guarded update (no copies, no issue) so concurrent issues of the last copy
cannot both succeed; returning increments it back.
*/
package library

import "time"

// Issue statuses.
const (
	StatusIssued   = "Issued"
	StatusReturned = "Returned"
)

// Book represents a title in the library catalog.
type Book struct {
	ID              int64     `json:"book_id"`
	Title           string    `json:"book_title"`
	Author          string    `json:"book_author"`
	TotalCopies     int       `json:"total_copies"`
	AvailableCopies int       `json:"available_copies"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Issue represents one lending of a book to a student.
type Issue struct {
	ID         int64   `json:"issue_id"`
	BookID     int64   `json:"book_id"`
	StudentID  int64   `json:"student_id"`
	IssueDate  string  `json:"issue_date"`
	DueDate    string  `json:"due_date"`
	ReturnDate *string `json:"return_date"`
	Status     string  `json:"status"`

	// Joined on reads.
	BookTitle  *string `json:"book_title,omitempty"`
	BookAuthor *string `json:"book_author,omitempty"`
}

const (
	FieldTitle       = "book_title"
	FieldAuthor      = "book_author"
	FieldTotalCopies = "total_copies"
	FieldBook        = "book_id"
	FieldStudent     = "student_id"
	FieldIssueDate   = "issue_date"
	FieldDueDate     = "due_date"
	FieldReturnDate  = "return_date"

	maxCopies = 1000
)
