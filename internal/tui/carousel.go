package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/showcase/internal/content"
	"github.com/jask/showcase/internal/nav"
)

// carouselTickMsg drives auto-advance. A tick only counts when both id and
// gen match the receiving carousel, so pausing, blurring or closing strands
// any tick already in flight.
type carouselTickMsg struct {
	id  int64
	gen int
}

// Carousel shows one slide at a time and auto-advances while playing.
type Carousel struct {
	id       int64
	gen      int
	armed    bool
	focused  bool
	comp     content.Component
	ctrl     *nav.Carousel
	interval time.Duration
	styles   Styles
	keys     KeyMap
	log      *zap.Logger
}

func NewCarousel(c content.Component, cfg WidgetConfig) *Carousel {
	ctrl := nav.NewCarousel(len(c.Items), nav.WithAutoplay(cfg.Autoplay), nav.WithInterval(cfg.Interval))
	return &Carousel{
		id:       nextID(),
		comp:     c,
		ctrl:     ctrl,
		interval: ctrl.Interval(),
		styles:   StylesFor(cfg.Palette, c.Variant),
		keys:     cfg.Keys,
		log:      cfg.logger().With(zap.String("component", c.Name)),
	}
}

func (m *Carousel) Name() string       { return m.comp.Name }
func (m *Carousel) Kind() content.Kind { return content.KindCarousel }

// State exposes the controller state for the host and tests.
func (m *Carousel) State() nav.CarouselState { return m.ctrl.State() }

func (m *Carousel) Init() tea.Cmd { return nil }

func (m *Carousel) Focus() tea.Cmd {
	m.focused = true
	return m.arm()
}

// Blur strands the pending tick; the play flag is kept for the next Focus.
func (m *Carousel) Blur() {
	m.focused = false
	m.disarm()
}

func (m *Carousel) Close() {
	m.focused = false
	m.disarm()
	m.ctrl.Close()
}

func (m *Carousel) Update(msg tea.Msg) (Widget, tea.Cmd) {
	switch msg := msg.(type) {
	case carouselTickMsg:
		if msg.id != m.id || msg.gen != m.gen || !m.armed {
			return m, nil
		}
		m.armed = false
		m.ctrl.Advance()
		m.log.Debug("carousel advanced", zap.Int("index", m.ctrl.Index()))
		return m, m.arm()
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Carousel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Prev):
		m.ctrl.Previous()
	case key.Matches(msg, m.keys.Next):
		m.ctrl.Next()
	case key.Matches(msg, m.keys.First):
		m.ctrl.GoTo(0)
	case key.Matches(msg, m.keys.Last):
		m.ctrl.GoTo(m.ctrl.Count() - 1)
	case key.Matches(msg, m.keys.TogglePlay):
		playing := m.ctrl.TogglePlay()
		m.log.Debug("carousel play toggled", zap.Bool("playing", playing))
		m.disarm()
		return m.arm()
	default:
		if idx, ok := digitIndex(msg.String()); ok {
			if !m.ctrl.GoTo(idx) {
				m.log.Debug("carousel jump ignored", zap.Int("index", idx))
			}
		}
	}
	return nil
}

// arm schedules the next tick when the carousel is focused, playing and has
// more than one slide. At most one tick is ever live.
func (m *Carousel) arm() tea.Cmd {
	if m.armed || !m.focused || !m.ctrl.Playing() || m.ctrl.Count() <= 1 {
		return nil
	}
	m.gen++
	m.armed = true
	id, gen := m.id, m.gen
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return carouselTickMsg{id: id, gen: gen}
	})
}

func (m *Carousel) disarm() {
	if m.armed {
		m.gen++
		m.armed = false
	}
}

func (m *Carousel) View(width int) string {
	inner := innerWidth(width)
	st := m.styles
	header := st.Title.Render(truncate(m.comp.Title, inner))

	if len(m.comp.Items) == 0 {
		return renderFrame(st, width, joinLines(header, st.Muted.Render("no slides")))
	}

	state := m.ctrl.State()
	slide := m.comp.Items[state.Index]
	lines := []string{
		header,
		"",
		st.Title.Render(truncate(slide.Title, inner)),
		st.Body.Render(truncate(slide.Body, inner)),
	}
	if slide.Image != nil {
		lines = append(lines, st.Muted.Render(truncate("[image: "+firstNonEmpty(slide.Image.Alt, slide.Image.Src)+"]", inner)))
	}
	lines = append(lines, renderLink(st, slide.Link, inner), "", m.indicator(state))
	return renderFrame(st, width, joinLines(lines...))
}

func (m *Carousel) indicator(state nav.CarouselState) string {
	st := m.styles
	dots := make([]string, len(m.comp.Items))
	for i := range dots {
		if i == state.Index {
			dots[i] = st.DotActive.Render("●")
		} else {
			dots[i] = st.Dot.Render("○")
		}
	}
	mode := "⏸ paused"
	if state.Playing {
		mode = "▶ playing"
	}
	return fmt.Sprintf("%s  %s  %d/%d", strings.Join(dots, " "), st.Muted.Render(mode), state.Index+1, len(m.comp.Items))
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
