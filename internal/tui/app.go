package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jask/showcase/internal/content"
	"github.com/jask/showcase/internal/nav"
)

// headerHeight is the number of lines above the active widget.
const headerHeight = 2

// Config holds the gallery settings.
type Config struct {
	Theme       string
	Interval    time.Duration
	Autoplay    bool
	NarrowWidth int
	// Start names the component focused first; empty means the first one.
	Start string
}

// App hosts the gallery: one component is active at a time.
type App struct {
	ctx      context.Context
	provider content.Provider
	cfg      Config
	widgets  []Widget
	active   int
	palette  Palette
	keys     KeyMap
	log      *zap.Logger
	width    int
	status   string
	err      error
	loaded   bool
}

type componentsMsg []content.Component

type errMsg struct{ err error }

func New(ctx context.Context, provider content.Provider, cfg Config, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		ctx:      ctx,
		provider: provider,
		cfg:      cfg,
		palette:  PaletteByName(cfg.Theme),
		keys:     DefaultKeyMap(),
		log:      logger,
		width:    80,
	}
}

func (a *App) Init() tea.Cmd {
	return a.loadComponents()
}

func (a *App) loadComponents() tea.Cmd {
	return func() tea.Msg {
		list, err := a.provider.Components(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return componentsMsg(list)
	}
}

// Active returns the focused widget, or nil before content has loaded.
func (a *App) Active() Widget {
	if len(a.widgets) == 0 {
		return nil
	}
	return a.widgets[a.active]
}

func (a *App) Widgets() []Widget { return a.widgets }

func (a *App) Err() error { return a.err }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case componentsMsg:
		return a, a.mount(m)
	case errMsg:
		a.err = m.err
		a.log.Error("load components", zap.Error(m.err))
		return a, nil
	case tea.WindowSizeMsg:
		a.width = m.Width
		return a, a.broadcast(m)
	case tea.KeyMsg:
		return a.handleKey(m)
	case tea.MouseMsg:
		if w := a.Active(); w != nil {
			m.Y -= headerHeight
			next, cmd := w.Update(m)
			a.widgets[a.active] = next
			return a, cmd
		}
		return a, nil
	}
	return a, a.broadcast(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.Close()
		return a, tea.Quit
	case key.Matches(msg, a.keys.NextComponent):
		return a, a.switchTo(a.active + 1)
	case key.Matches(msg, a.keys.PrevComponent):
		return a, a.switchTo(a.active - 1)
	}
	w := a.Active()
	if w == nil {
		return a, nil
	}
	next, cmd := w.Update(msg)
	a.widgets[a.active] = next
	return a, cmd
}

func (a *App) mount(list []content.Component) tea.Cmd {
	for _, w := range a.widgets {
		w.Close()
	}
	wcfg := WidgetConfig{
		Palette:     a.palette,
		Keys:        a.keys,
		Logger:      a.log,
		Interval:    a.cfg.Interval,
		Autoplay:    a.cfg.Autoplay,
		NarrowWidth: a.cfg.NarrowWidth,
	}
	a.widgets = make([]Widget, 0, len(list))
	cmds := make([]tea.Cmd, 0, len(list)+1)
	for _, c := range list {
		w := NewWidget(c, wcfg)
		a.widgets = append(a.widgets, w)
		cmds = append(cmds, w.Init())
	}
	a.loaded = true
	a.active = 0
	if a.cfg.Start != "" {
		if c, err := content.Find(list, a.cfg.Start); err != nil {
			a.status = err.Error()
		} else {
			for i, w := range a.widgets {
				if w.Name() == c.Name {
					a.active = i
				}
			}
		}
	}
	a.log.Debug("components mounted", zap.Int("count", len(a.widgets)))
	if w := a.Active(); w != nil {
		cmds = append(cmds, w.Focus())
	}
	return tea.Batch(cmds...)
}

func (a *App) switchTo(index int) tea.Cmd {
	if len(a.widgets) <= 1 {
		return nil
	}
	a.widgets[a.active].Blur()
	a.active = nav.Wrap(index, len(a.widgets))
	a.status = ""
	a.log.Debug("component focused", zap.String("name", a.widgets[a.active].Name()))
	return a.widgets[a.active].Focus()
}

func (a *App) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(a.widgets))
	for i, w := range a.widgets {
		next, cmd := w.Update(msg)
		a.widgets[i] = next
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Close releases every widget. Carousels stop auto-advancing for good.
func (a *App) Close() {
	for _, w := range a.widgets {
		w.Close()
	}
}

func (a *App) View() string {
	st := StylesFor(a.palette, content.VariantDefault)
	if a.err != nil {
		return st.Error.Render("error: "+a.err.Error()) + "\n"
	}
	if !a.loaded {
		return st.Muted.Render("loading…") + "\n"
	}
	if len(a.widgets) == 0 {
		return st.Muted.Render("no components to show") + "\n"
	}

	names := make([]string, len(a.widgets))
	for i, w := range a.widgets {
		if i == a.active {
			names[i] = st.TabActive.Render(" " + w.Name() + " ")
		} else {
			names[i] = st.TabIdle.Render(" " + w.Name() + " ")
		}
	}
	header := truncate(strings.Join(names, st.Muted.Render("·")), a.width)

	active := a.Active()
	parts := []string{header, "", active.View(a.width), a.helpView(active)}
	if a.status != "" {
		parts = append(parts, st.Error.Render(truncate(a.status, a.width)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *App) helpView(w Widget) string {
	st := StylesFor(a.palette, content.VariantDefault)
	bindings := a.keys.HelpFor(string(w.Kind()))
	items := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		items = append(items, h.Key+" "+h.Desc)
	}
	return st.Muted.Render(truncate(strings.Join(items, " • "), a.width))
}
