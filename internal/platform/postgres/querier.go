// Copyright (c) 2026 ERP Cell. All rights reserved.

package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the narrow query surface repositories depend on.
//
// [*pgxpool.Pool] satisfies it in production; pgxmock satisfies it in unit
// tests. Repositories never need pool management methods.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
