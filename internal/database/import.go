package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/showcase/internal/content"
	"github.com/jask/showcase/internal/database/repository"
)

// ImportPage replaces the stored page with page in a single transaction.
func ImportPage(ctx context.Context, db *sql.DB, page content.Page) error {
	if err := page.Validate(); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		comps := repository.NewComponentRepo(tx)
		items := repository.NewItemRepo(tx)
		if err := comps.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clear components: %w", err)
		}
		for pos, c := range page.Components {
			row, rows := toRows(c, pos)
			if err := comps.Upsert(ctx, row); err != nil {
				return fmt.Errorf("store %s: %w", c.Name, err)
			}
			if err := items.ReplaceForComponent(ctx, c.ID, rows); err != nil {
				return fmt.Errorf("store %s items: %w", c.Name, err)
			}
		}
		return nil
	})
}
