package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/showcase/internal/content"
)

// Promo is a static title/body/link block.
type Promo struct {
	comp   content.Component
	styles Styles
}

func NewPromo(c content.Component, cfg WidgetConfig) *Promo {
	return &Promo{comp: c, styles: StylesFor(cfg.Palette, c.Variant)}
}

func (m *Promo) Name() string                     { return m.comp.Name }
func (m *Promo) Kind() content.Kind               { return content.KindPromo }
func (m *Promo) Init() tea.Cmd                    { return nil }
func (m *Promo) Update(tea.Msg) (Widget, tea.Cmd) { return m, nil }
func (m *Promo) Focus() tea.Cmd                   { return nil }
func (m *Promo) Blur()                            {}
func (m *Promo) Close()                           {}

func (m *Promo) View(width int) string {
	inner := innerWidth(width)
	st := m.styles
	return renderFrame(st, width, joinLines(
		st.Title.Render(truncate(m.comp.Title, inner)),
		st.Body.Render(truncate(m.comp.Body, inner)),
		renderLink(st, m.comp.Link, inner),
	))
}
