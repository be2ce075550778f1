package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/showcase/internal/content"
)

const linkColumnWidth = 22

// LinkList lays its items out in as many columns as the width allows.
type LinkList struct {
	comp   content.Component
	styles Styles
}

func NewLinkList(c content.Component, cfg WidgetConfig) *LinkList {
	return &LinkList{comp: c, styles: StylesFor(cfg.Palette, c.Variant)}
}

func (m *LinkList) Name() string                     { return m.comp.Name }
func (m *LinkList) Kind() content.Kind               { return content.KindLinkList }
func (m *LinkList) Init() tea.Cmd                    { return nil }
func (m *LinkList) Update(tea.Msg) (Widget, tea.Cmd) { return m, nil }
func (m *LinkList) Focus() tea.Cmd                   { return nil }
func (m *LinkList) Blur()                            {}
func (m *LinkList) Close()                           {}

// Columns is how many columns fit in width, between 1 and 4.
func Columns(width int) int {
	n := innerWidth(width) / linkColumnWidth
	if n < 1 {
		return 1
	}
	if n > 4 {
		return 4
	}
	return n
}

func (m *LinkList) View(width int) string {
	st := m.styles
	inner := innerWidth(width)
	header := st.Title.Render(truncate(m.comp.Title, inner))

	cols := content.SplitColumns(m.comp.Items, Columns(width))
	rendered := make([]string, 0, len(cols))
	for _, col := range cols {
		lines := make([]string, 0, len(col))
		for _, item := range col {
			// Entries without an href render as plain text.
			if item.Link.Visible() {
				lines = append(lines, st.Link.Render(truncate(item.Title, linkColumnWidth-2)))
			} else {
				lines = append(lines, st.Muted.Render(truncate(item.Title, linkColumnWidth-2)))
			}
		}
		rendered = append(rendered, lipgloss.NewStyle().Width(linkColumnWidth).Render(joinLines(lines...)))
	}
	return renderFrame(st, width, joinLines(header, "", lipgloss.JoinHorizontal(lipgloss.Top, rendered...)))
}
