package repository

import (
	"context"
)

// ItemRepo handles component items.
type ItemRepo struct {
	db Querier
}

func NewItemRepo(db Querier) *ItemRepo { return &ItemRepo{db: db} }

// ReplaceForComponent swaps the full item list of a component. Positions are
// rewritten from slice order. Run it inside a transaction to keep the swap
// atomic.
func (r *ItemRepo) ReplaceForComponent(ctx context.Context, componentID string, items []Item) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE component_id = ?`, componentID); err != nil {
		return err
	}
	for idx, it := range items {
		_, err := r.db.ExecContext(ctx, `
		INSERT INTO items(id, component_id, position, title, body, image_src, image_alt, link_href, link_text, link_target)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, it.ID, componentID, idx, it.Title, it.Body, it.ImageSrc, it.ImageAlt, it.LinkHref, it.LinkText, it.LinkTarget)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *ItemRepo) ListForComponent(ctx context.Context, componentID string) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, component_id, position, title, body, image_src, image_alt, link_href, link_text, link_target
	FROM items WHERE component_id = ? ORDER BY position`, componentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.ComponentID, &it.Position, &it.Title, &it.Body, &it.ImageSrc, &it.ImageAlt,
			&it.LinkHref, &it.LinkText, &it.LinkTarget); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
