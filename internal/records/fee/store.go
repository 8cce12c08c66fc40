// Copyright (c) 2026 ERP Cell. All rights reserved.

package fee

import "context"

type Repository interface {
	CreateFee(context context.Context, f *Fee) error
	GetFee(context context.Context, id int64) (*Fee, error)
	MarkPaid(context context.Context, id int64, paidDate string) (*Fee, error)
	ListByStudent(context context.Context, studentID int64) (*History, error)
}
