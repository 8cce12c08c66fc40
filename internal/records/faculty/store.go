// Copyright (c) 2026 ERP Cell. All rights reserved.

package faculty

import "context"

type Repository interface {
	ListFaculty(context context.Context, f Filter, limit, offset int) ([]*Faculty, int, error)
	GetFaculty(context context.Context, id int64) (*Faculty, error)
	CreateFaculty(context context.Context, member *Faculty) error
	UpdateFaculty(context context.Context, member *Faculty) error
	DeleteFaculty(context context.Context, id int64) error
}
