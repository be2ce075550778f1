package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/jask/showcase/internal/content"
	"github.com/jask/showcase/internal/nav"
)

// TabBarRow is the line, relative to the widget's top edge, that holds the
// clickable tab labels (the frame border sits above it).
const TabBarRow = 1

type tabZone struct {
	start, end int
}

// Tabs renders a tab bar with a single visible panel. Below the narrow width
// the bar collapses into a select control that shares the same state.
type Tabs struct {
	comp        content.Component
	ctrl        *nav.Tabs
	width       int
	narrowWidth int
	zones       []tabZone
	styles      Styles
	keys        KeyMap
	log         *zap.Logger
}

func NewTabs(c content.Component, cfg WidgetConfig) *Tabs {
	return &Tabs{
		comp:        c,
		ctrl:        nav.NewTabs(len(c.Items)),
		narrowWidth: cfg.NarrowWidth,
		styles:      StylesFor(cfg.Palette, c.Variant),
		keys:        cfg.Keys,
		log:         cfg.logger().With(zap.String("component", c.Name)),
	}
}

func (m *Tabs) Name() string       { return m.comp.Name }
func (m *Tabs) Kind() content.Kind { return content.KindTabs }
func (m *Tabs) Active() int        { return m.ctrl.Active() }
func (m *Tabs) Init() tea.Cmd      { return nil }
func (m *Tabs) Focus() tea.Cmd     { return nil }
func (m *Tabs) Blur()              {}
func (m *Tabs) Close()             {}

// Narrow reports whether the select control replaces the tab bar.
func (m *Tabs) Narrow() bool {
	return m.width > 0 && m.width < m.narrowWidth
}

func (m *Tabs) Update(msg tea.Msg) (Widget, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		m.handleKey(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == TabBarRow {
			m.Click(msg.X)
		}
	}
	return m, nil
}

func (m *Tabs) handleKey(msg tea.KeyMsg) {
	prev := m.ctrl.Active()
	if m.Narrow() {
		// The select control steps without wrapping, like a native select.
		switch {
		case key.Matches(msg, m.keys.SelectUp):
			m.ctrl.Select(prev - 1)
		case key.Matches(msg, m.keys.SelectDown):
			m.ctrl.Select(prev + 1)
		}
	}
	k := nav.ParseKey(msg.String())
	switch {
	case key.Matches(msg, m.keys.Prev):
		k = nav.KeyArrowLeft
	case key.Matches(msg, m.keys.Next):
		k = nav.KeyArrowRight
	case key.Matches(msg, m.keys.First):
		k = nav.KeyHome
	case key.Matches(msg, m.keys.Last):
		k = nav.KeyEnd
	}
	if k != nav.KeyNone {
		m.ctrl.HandleKey(k)
	} else if idx, ok := digitIndex(msg.String()); ok {
		m.ctrl.Select(idx)
	}
	if m.ctrl.Active() != prev {
		m.log.Debug("tab selected", zap.Int("index", m.ctrl.Active()))
	}
}

// Click selects the tab label under column x of the tab bar.
func (m *Tabs) Click(x int) bool {
	if m.Narrow() {
		return false
	}
	for i, z := range m.zones {
		if x >= z.start && x < z.end {
			return m.ctrl.Select(i)
		}
	}
	return false
}

func (m *Tabs) View(width int) string {
	m.width = width
	st := m.styles
	inner := innerWidth(width)
	if len(m.comp.Items) == 0 {
		m.zones = nil
		return renderFrame(st, width, joinLines(st.Title.Render(truncate(m.comp.Title, inner)), st.Muted.Render("no tabs")))
	}

	var control string
	if m.Narrow() {
		m.zones = nil
		control = m.selectView(inner)
	} else {
		control = m.barView(inner)
	}
	return renderFrame(st, width, joinLines(control, "", m.panelView(inner)))
}

// barView renders the labels and records their click zones in widget
// coordinates (border and padding shift them two columns right). Zones are
// clipped to the visible bar; a label cut off entirely gets an empty zone.
func (m *Tabs) barView(inner int) string {
	const sep = " "
	m.zones = m.zones[:0]
	x := 2
	labels := make([]string, 0, len(m.comp.Items))
	for i, item := range m.comp.Items {
		text := " " + item.Title + " "
		var label string
		if m.ctrl.IsActive(i) {
			label = m.styles.TabActive.Render(text)
		} else {
			label = m.styles.TabIdle.Render(text)
		}
		w := ansi.StringWidth(text)
		m.zones = append(m.zones, tabZone{start: x, end: x + w})
		x += w + len(sep)
		labels = append(labels, label)
	}
	bar := strings.Join(labels, sep)

	limit := 2 + inner
	if ansi.StringWidth(bar) > inner {
		// The last visible column holds the ellipsis.
		limit--
	}
	for i := range m.zones {
		m.zones[i].start = min(m.zones[i].start, limit)
		m.zones[i].end = min(m.zones[i].end, limit)
	}
	return truncate(bar, inner)
}

func (m *Tabs) selectView(inner int) string {
	active := m.ctrl.Active()
	text := fmt.Sprintf("▾ %s (%d/%d)", m.comp.Items[active].Title, active+1, len(m.comp.Items))
	return m.styles.TabActive.Render(truncate(text, inner))
}

// panelView renders only the active panel; the others stay hidden.
func (m *Tabs) panelView(inner int) string {
	item := m.comp.Items[m.ctrl.Active()]
	return joinLines(
		m.styles.Title.Render(truncate(item.Title, inner)),
		m.styles.Body.Render(truncate(item.Body, inner)),
		renderLink(m.styles, item.Link, inner),
	)
}
