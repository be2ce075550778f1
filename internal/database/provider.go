package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jask/showcase/internal/content"
	"github.com/jask/showcase/internal/database/repository"
)

// Provider serves stored components as content records.
type Provider struct {
	components *repository.ComponentRepo
	items      *repository.ItemRepo
}

func NewProvider(db *sql.DB) *Provider {
	return &Provider{
		components: repository.NewComponentRepo(db),
		items:      repository.NewItemRepo(db),
	}
}

func (p *Provider) Components(ctx context.Context) ([]content.Component, error) {
	rows, err := p.components.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}
	out := make([]content.Component, 0, len(rows))
	for _, row := range rows {
		c, err := p.hydrate(ctx, row)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (p *Provider) Component(ctx context.Context, name string) (content.Component, error) {
	row, err := p.components.ByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return content.Component{}, fmt.Errorf("component %q: %w", name, err)
	}
	if row == nil {
		// Fall back to the full list so the error can carry a suggestion.
		all, err := p.Components(ctx)
		if err != nil {
			return content.Component{}, err
		}
		return content.Find(all, name)
	}
	return p.hydrate(ctx, *row)
}

func (p *Provider) hydrate(ctx context.Context, row repository.Component) (content.Component, error) {
	items, err := p.items.ListForComponent(ctx, row.ID)
	if err != nil {
		return content.Component{}, fmt.Errorf("items for %s: %w", row.Name, err)
	}
	return fromRows(row, items), nil
}

func fromRows(row repository.Component, items []repository.Item) content.Component {
	c := content.Component{
		ID:      row.ID,
		Name:    row.Name,
		Kind:    content.Kind(row.Kind),
		Title:   row.Title,
		Body:    row.Body,
		Link:    linkFrom(row.LinkHref, row.LinkText, row.LinkTarget),
		Variant: content.ParseVariant(row.Variant),
	}
	for _, it := range items {
		item := content.Item{
			ID:    it.ID,
			Title: it.Title,
			Body:  it.Body,
			Link:  linkFrom(it.LinkHref, it.LinkText, it.LinkTarget),
		}
		if it.ImageSrc != nil && *it.ImageSrc != "" {
			item.Image = &content.Image{Src: *it.ImageSrc, Alt: deref(it.ImageAlt)}
		}
		c.Items = append(c.Items, item)
	}
	return c
}

func toRows(c content.Component, position int) (repository.Component, []repository.Item) {
	row := repository.Component{
		ID:       c.ID,
		Name:     c.Name,
		Kind:     string(c.Kind),
		Title:    c.Title,
		Body:     c.Body,
		Variant:  string(c.Variant),
		Position: position,
	}
	row.LinkHref, row.LinkText, row.LinkTarget = linkCols(c.Link)
	items := make([]repository.Item, 0, len(c.Items))
	for idx, it := range c.Items {
		ri := repository.Item{ID: it.ID, ComponentID: c.ID, Position: idx, Title: it.Title, Body: it.Body}
		if it.Image != nil {
			ri.ImageSrc = ptr(it.Image.Src)
			ri.ImageAlt = ptr(it.Image.Alt)
		}
		ri.LinkHref, ri.LinkText, ri.LinkTarget = linkCols(it.Link)
		items = append(items, ri)
	}
	return row, items
}

func linkFrom(href, text, target *string) *content.Link {
	if href == nil && text == nil && target == nil {
		return nil
	}
	return &content.Link{Href: deref(href), Text: deref(text), Target: deref(target)}
}

func linkCols(l *content.Link) (href, text, target *string) {
	if l == nil {
		return nil, nil, nil
	}
	return ptr(l.Href), ptr(l.Text), ptr(l.Target)
}

func ptr(s string) *string { return &s }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
