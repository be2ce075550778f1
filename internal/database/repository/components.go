package repository

import (
	"context"
	"database/sql"
)

// ComponentRepo handles components.
type ComponentRepo struct {
	db Querier
}

func NewComponentRepo(db Querier) *ComponentRepo {
	return &ComponentRepo{db: db}
}

const componentColumns = `id, name, kind, title, body, link_href, link_text, link_target, variant, position, created_at, updated_at`

func (r *ComponentRepo) Upsert(ctx context.Context, c Component) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO components(id, name, kind, title, body, link_href, link_text, link_target, variant, position)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 kind=excluded.kind,
	 title=excluded.title,
	 body=excluded.body,
	 link_href=excluded.link_href,
	 link_text=excluded.link_text,
	 link_target=excluded.link_target,
	 variant=excluded.variant,
	 position=excluded.position,
	 updated_at=CURRENT_TIMESTAMP;
	`, c.ID, c.Name, c.Kind, c.Title, c.Body, c.LinkHref, c.LinkText, c.LinkTarget, c.Variant, c.Position)
	return err
}

func (r *ComponentRepo) List(ctx context.Context) ([]Component, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+componentColumns+` FROM components ORDER BY position, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Component
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ByName returns nil when no component matches.
func (r *ComponentRepo) ByName(ctx context.Context, name string) (*Component, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+componentColumns+` FROM components WHERE name = ?`, name)
	c, err := scanComponent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *ComponentRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM components`).Scan(&n)
	return n, err
}

// DeleteAll removes every component; items go with them via cascade.
func (r *ComponentRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM components`)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanComponent(s scanner) (Component, error) {
	var c Component
	err := s.Scan(&c.ID, &c.Name, &c.Kind, &c.Title, &c.Body, &c.LinkHref, &c.LinkText, &c.LinkTarget,
		&c.Variant, &c.Position, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}
