package repository

import (
	"context"
	"database/sql"
	"time"
)

// Querier is satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Component represents a components row.
type Component struct {
	ID         string
	Name       string
	Kind       string
	Title      string
	Body       string
	LinkHref   *string
	LinkText   *string
	LinkTarget *string
	Variant    string
	Position   int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Item represents an items row.
type Item struct {
	ID          string
	ComponentID string
	Position    int
	Title       string
	Body        string
	ImageSrc    *string
	ImageAlt    *string
	LinkHref    *string
	LinkText    *string
	LinkTarget  *string
}
