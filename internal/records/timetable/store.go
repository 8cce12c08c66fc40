// Copyright (c) 2026 ERP Cell. All rights reserved.

package timetable

import "context"

type Repository interface {
	ListEntries(context context.Context, f Filter) ([]*Entry, error)
	CreateEntry(context context.Context, e *Entry) error
	DeleteEntry(context context.Context, id int64) error
}
