package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/showcase/internal/content"
)

type failingProvider struct{}

func (failingProvider) Components(context.Context) ([]content.Component, error) {
	return nil, errors.New("database is locked")
}

func (failingProvider) Component(context.Context, string) (content.Component, error) {
	return content.Component{}, errors.New("database is locked")
}

func galleryProvider() *content.StaticProvider {
	promo := content.Component{
		ID: "promo", Name: "SignupPromo", Kind: content.KindPromo, Variant: content.VariantAccent,
		Title: "Join the club", Body: "Early access.", Link: &content.Link{Href: "/join", Text: "Sign up"},
	}
	return content.NewStaticProvider(heroComponent(), tabsComponent(), promo)
}

func startApp(t *testing.T, p content.Provider, cfg Config) *App {
	t.Helper()
	a := New(context.Background(), p, cfg, nil)
	cmd := a.Init()
	if cmd == nil {
		t.Fatalf("Init should load components")
	}
	a.Update(cmd())
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return a
}

func appConfig() Config {
	return Config{Theme: "mocha", Interval: time.Second, Autoplay: true, NarrowWidth: 60}
}

func TestAppMountsAndFocusesFirst(t *testing.T) {
	a := startApp(t, galleryProvider(), appConfig())
	if got := len(a.Widgets()); got != 3 {
		t.Fatalf("widgets = %d, want 3", got)
	}
	if a.Active().Name() != "HeroCarousel" {
		t.Fatalf("active = %s, want HeroCarousel", a.Active().Name())
	}
	view := a.View()
	if !strings.Contains(view, "Spring collection") || !strings.Contains(view, "space play/pause") {
		t.Fatalf("unexpected view:\n%s", view)
	}
}

func TestAppCyclesComponentsWithWraparound(t *testing.T) {
	a := startApp(t, galleryProvider(), appConfig())
	a.Update(tea.KeyMsg{Type: tea.KeyTab})
	if a.Active().Name() != "ProductTabs" {
		t.Fatalf("tab -> %s, want ProductTabs", a.Active().Name())
	}
	a.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	a.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if a.Active().Name() != "SignupPromo" {
		t.Fatalf("shift+tab from first -> %s, want SignupPromo", a.Active().Name())
	}
	a.Update(tea.KeyMsg{Type: tea.KeyTab})
	if a.Active().Name() != "HeroCarousel" {
		t.Fatalf("tab from last -> %s, want HeroCarousel", a.Active().Name())
	}
}

func TestAppSwitchingAwayStopsCarousel(t *testing.T) {
	a := startApp(t, galleryProvider(), appConfig())
	hero := a.Widgets()[0].(*Carousel)
	pending := carouselTickMsg{id: hero.id, gen: hero.gen}

	a.Update(tea.KeyMsg{Type: tea.KeyTab})
	a.Update(pending)
	if hero.State().Index != 0 {
		t.Fatalf("unfocused carousel advanced")
	}

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if cmd == nil {
		t.Fatalf("refocusing a playing carousel should schedule a tick")
	}
	a.Update(carouselTickMsg{id: hero.id, gen: hero.gen})
	if hero.State().Index != 1 {
		t.Fatalf("focused carousel index = %d, want 1", hero.State().Index)
	}
}

func TestAppQuitClosesWidgets(t *testing.T) {
	a := startApp(t, galleryProvider(), appConfig())
	hero := a.Widgets()[0].(*Carousel)
	pending := carouselTickMsg{id: hero.id, gen: hero.gen}

	_, cmd := a.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatalf("quit should return tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("quit command did not produce QuitMsg")
	}
	a.Update(pending)
	if st := hero.State(); st.Index != 0 || st.Playing {
		t.Fatalf("closed carousel state = %+v", st)
	}
}

func TestAppRoutesKeysToActiveOnly(t *testing.T) {
	a := startApp(t, galleryProvider(), appConfig())
	a.Update(tea.KeyMsg{Type: tea.KeyTab})
	a.Update(tea.KeyMsg{Type: tea.KeyRight})

	tabs := a.Widgets()[1].(*Tabs)
	hero := a.Widgets()[0].(*Carousel)
	if tabs.Active() != 1 {
		t.Fatalf("tabs active = %d, want 1", tabs.Active())
	}
	if hero.State().Index != 0 {
		t.Fatalf("inactive carousel received a key")
	}
}

func TestAppTranslatesMouseIntoWidget(t *testing.T) {
	cfg := appConfig()
	cfg.Start = "ProductTabs"
	a := startApp(t, galleryProvider(), cfg)
	a.View()
	a.Update(tea.MouseMsg{X: 21, Y: headerHeight + TabBarRow, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := a.Widgets()[1].(*Tabs).Active(); got != 2 {
		t.Fatalf("clicked tab = %d, want 2", got)
	}
}

func TestAppStartSuggestsOnTypo(t *testing.T) {
	cfg := appConfig()
	cfg.Start = "ProductTab"
	a := startApp(t, galleryProvider(), cfg)
	if a.Active().Name() != "HeroCarousel" {
		t.Fatalf("unknown start should fall back to the first component")
	}
	if view := a.View(); !strings.Contains(view, `did you mean "ProductTabs"`) {
		t.Fatalf("missing suggestion:\n%s", view)
	}
}

func TestAppProviderError(t *testing.T) {
	a := startApp(t, failingProvider{}, appConfig())
	if a.Err() == nil || a.Active() != nil {
		t.Fatalf("expected load error and no widgets")
	}
	if view := a.View(); !strings.Contains(view, "database is locked") {
		t.Fatalf("error not shown:\n%s", view)
	}
	a.Update(tea.KeyMsg{Type: tea.KeyTab})
	a.Update(tea.KeyMsg{Type: tea.KeyRight})
}

func TestAppEmptyGallery(t *testing.T) {
	a := startApp(t, content.NewStaticProvider(), appConfig())
	if view := a.View(); !strings.Contains(view, "no components") {
		t.Fatalf("empty view mismatch:\n%s", view)
	}
	a.Update(tea.KeyMsg{Type: tea.KeyTab})
}
