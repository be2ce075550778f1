package tui

import (
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/jask/showcase/internal/content"
)

// Widget is one gallery component. Only the focused widget receives keys;
// every widget sees other messages so it can pick out its own ticks.
type Widget interface {
	Name() string
	Kind() content.Kind
	Init() tea.Cmd
	Update(msg tea.Msg) (Widget, tea.Cmd)
	View(width int) string
	Focus() tea.Cmd
	Blur()
	Close()
}

// WidgetConfig carries the shared settings every widget is built with.
type WidgetConfig struct {
	Palette     Palette
	Keys        KeyMap
	Logger      *zap.Logger
	Interval    time.Duration
	Autoplay    bool
	NarrowWidth int
}

func (c WidgetConfig) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

var lastID atomic.Int64

func nextID() int64 { return lastID.Add(1) }

// NewWidget picks the widget for a component's kind.
func NewWidget(c content.Component, cfg WidgetConfig) Widget {
	switch c.Kind {
	case content.KindCarousel:
		return NewCarousel(c, cfg)
	case content.KindTabs:
		return NewTabs(c, cfg)
	case content.KindLinkList:
		return NewLinkList(c, cfg)
	default:
		return NewPromo(c, cfg)
	}
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

func innerWidth(width int) int {
	// Rounded border plus one column of padding on each side.
	w := width - 4
	if w < 1 {
		w = 1
	}
	return w
}

func renderLink(st Styles, l *content.Link, width int) string {
	if !l.Visible() {
		return ""
	}
	label := l.Label()
	if label != l.Href {
		label += " (" + l.Href + ")"
	}
	return st.Link.Render(truncate("→ "+label, width))
}

func joinLines(lines ...string) string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}

func renderFrame(st Styles, width int, body string) string {
	w := width - 2
	if w < 3 {
		w = 3
	}
	return st.Frame.Width(w).Render(body)
}
