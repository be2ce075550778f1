package content

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/agnivade/levenshtein"
)

var ErrNotFound = errors.New("component not found")

// Provider supplies validated components to the terminal components.
type Provider interface {
	Components(ctx context.Context) ([]Component, error)
	Component(ctx context.Context, name string) (Component, error)
}

// NotFoundError names the missing component and the closest known name.
type NotFoundError struct {
	Name       string
	Suggestion string
}

func (e *NotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("component %q not found (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("component %q not found", e.Name)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Find looks up a component by case-insensitive name.
func Find(components []Component, name string) (Component, error) {
	want := strings.TrimSpace(name)
	names := make([]string, 0, len(components))
	for _, c := range components {
		if strings.EqualFold(c.Name, want) {
			return c, nil
		}
		names = append(names, c.Name)
	}
	return Component{}, &NotFoundError{Name: want, Suggestion: Suggest(want, names)}
}

// Suggest returns the candidate closest to name by edit distance, or "" when
// nothing is close enough to be a plausible typo.
func Suggest(name string, candidates []string) string {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return ""
	}
	best := ""
	bestDist := -1
	for _, cand := range candidates {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(cand))
		if bestDist < 0 || d < bestDist {
			best, bestDist = cand, d
		}
	}
	limit := len(needle) / 3
	if limit < 2 {
		limit = 2
	}
	if bestDist < 0 || bestDist > limit {
		return ""
	}
	return best
}

// StaticProvider serves a fixed page.
type StaticProvider struct {
	Page Page
}

func NewStaticProvider(components ...Component) *StaticProvider {
	return &StaticProvider{Page: Page{Components: components}}
}

func (p *StaticProvider) Components(ctx context.Context) ([]Component, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]Component(nil), p.Page.Components...), nil
}

func (p *StaticProvider) Component(ctx context.Context, name string) (Component, error) {
	if err := ctx.Err(); err != nil {
		return Component{}, err
	}
	return Find(p.Page.Components, name)
}

// FileProvider reads a layout document from disk on every call.
type FileProvider struct {
	Path string
}

func (p FileProvider) Load(ctx context.Context) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return Page{}, fmt.Errorf("read layout: %w", err)
	}
	page, err := Decode(data)
	if err != nil {
		return Page{}, fmt.Errorf("%s: %w", p.Path, err)
	}
	return page, nil
}

func (p FileProvider) Components(ctx context.Context) ([]Component, error) {
	page, err := p.Load(ctx)
	if err != nil {
		return nil, err
	}
	return page.Components, nil
}

func (p FileProvider) Component(ctx context.Context, name string) (Component, error) {
	page, err := p.Load(ctx)
	if err != nil {
		return Component{}, err
	}
	return Find(page.Components, name)
}
