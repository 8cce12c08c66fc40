// Copyright (c) 2026 ERP Cell. All rights reserved.

package subject

import "context"

type Repository interface {
	ListSubjects(context context.Context, f Filter) ([]*Subject, error)
	GetSubject(context context.Context, id int64) (*Subject, error)
	CreateSubject(context context.Context, s *Subject) error
	UpdateSubject(context context.Context, s *Subject) error
	DeleteSubject(context context.Context, id int64) error
}
