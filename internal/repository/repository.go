// Package repository provides PostgreSQL persistence for the storefront.
// Queries are handwritten pgx; every mutation that touches user-owned
// rows carries the owner in its WHERE clause so ownership is enforced in
// the same atomic statement as the write.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgxpool.Pool used by queries. pgxmock satisfies
// it, which keeps repository tests off a live database.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Queries bundles all storefront queries over a single connection source.
type Queries struct {
	db DBTX
}

// New creates a Queries instance backed by db.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}
