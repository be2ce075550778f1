package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/showcase/internal/content"
)

func TestCarouselFocusArmsSingleTick(t *testing.T) {
	m := NewCarousel(heroComponent(), testConfig())
	if cmd := m.Focus(); cmd == nil {
		t.Fatalf("focused playing carousel should schedule a tick")
	}
	if cmd := m.Focus(); cmd != nil {
		t.Fatalf("second focus must not arm a second tick")
	}
}

func TestCarouselTickAdvancesAndRearms(t *testing.T) {
	m := NewCarousel(heroComponent(), testConfig())
	m.Focus()
	_, cmd := m.Update(carouselTickMsg{id: m.id, gen: m.gen})
	if got := m.State().Index; got != 1 {
		t.Fatalf("index after tick = %d, want 1", got)
	}
	if cmd == nil {
		t.Fatalf("tick should re-arm the timer")
	}
	m.Update(carouselTickMsg{id: m.id, gen: m.gen})
	m.Update(carouselTickMsg{id: m.id, gen: m.gen})
	if got := m.State().Index; got != 0 {
		t.Fatalf("tick from last slide = %d, want 0", got)
	}
}

func TestCarouselIgnoresForeignAndStaleTicks(t *testing.T) {
	m := NewCarousel(heroComponent(), testConfig())
	m.Focus()
	stale := carouselTickMsg{id: m.id, gen: m.gen}
	m.Update(carouselTickMsg{id: m.id + 1000, gen: m.gen})
	if m.State().Index != 0 {
		t.Fatalf("foreign tick advanced carousel")
	}

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m.Update(stale)
	if m.State().Index != 0 {
		t.Fatalf("stale tick advanced carousel")
	}
}

func TestCarouselPauseCancelsTick(t *testing.T) {
	m := NewCarousel(heroComponent(), testConfig())
	m.Focus()
	pending := carouselTickMsg{id: m.id, gen: m.gen}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if cmd != nil {
		t.Fatalf("pausing should not schedule a tick")
	}
	if m.State().Playing {
		t.Fatalf("space should pause")
	}
	m.Update(pending)
	if m.State().Index != 0 {
		t.Fatalf("paused carousel advanced")
	}

	_, cmd = m.Update(keyRunes("p"))
	if cmd == nil || !m.State().Playing {
		t.Fatalf("resuming should schedule a tick")
	}
}

func TestCarouselBlurAndCloseStopAdvances(t *testing.T) {
	m := NewCarousel(heroComponent(), testConfig())
	m.Focus()
	pending := carouselTickMsg{id: m.id, gen: m.gen}

	m.Blur()
	m.Update(pending)
	if m.State().Index != 0 {
		t.Fatalf("blurred carousel advanced")
	}
	if !m.State().Playing {
		t.Fatalf("blur should keep the play flag")
	}

	m.Focus()
	pending = carouselTickMsg{id: m.id, gen: m.gen}
	m.Close()
	m.Update(pending)
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.State().Index != 0 {
		t.Fatalf("closed carousel advanced to %d", m.State().Index)
	}
	if cmd := m.Focus(); cmd != nil {
		t.Fatalf("closed carousel must not re-arm")
	}
}

func TestCarouselKeys(t *testing.T) {
	m := NewCarousel(heroComponent(), testConfig())
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.State().Index; got != 2 {
		t.Fatalf("left from 0 = %d, want 2", got)
	}
	m.Update(keyRunes("l"))
	if got := m.State().Index; got != 0 {
		t.Fatalf("l from 2 = %d, want 0", got)
	}
	m.Update(keyRunes("2"))
	if got := m.State().Index; got != 1 {
		t.Fatalf("jump to 2 = %d, want index 1", got)
	}
	m.Update(keyRunes("9"))
	if got := m.State().Index; got != 1 {
		t.Fatalf("out-of-range jump moved to %d", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	if got := m.State().Index; got != 2 {
		t.Fatalf("end = %d, want 2", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyHome})
	if got := m.State().Index; got != 0 {
		t.Fatalf("home = %d, want 0", got)
	}
}

func TestCarouselSingleSlideNeverTicks(t *testing.T) {
	c := heroComponent()
	c.Items = c.Items[:1]
	m := NewCarousel(c, testConfig())
	if cmd := m.Focus(); cmd != nil {
		t.Fatalf("single slide carousel scheduled a tick")
	}
}

func TestCarouselAutoplayOff(t *testing.T) {
	cfg := testConfig()
	cfg.Autoplay = false
	m := NewCarousel(heroComponent(), cfg)
	if cmd := m.Focus(); cmd != nil {
		t.Fatalf("autoplay off scheduled a tick")
	}
	if !strings.Contains(m.View(60), "paused") {
		t.Fatalf("view should show paused marker")
	}
}

func TestCarouselViewShowsOneSlide(t *testing.T) {
	m := NewCarousel(heroComponent(), testConfig())
	view := m.View(60)
	if !strings.Contains(view, "Spring collection") || strings.Contains(view, "Free shipping") {
		t.Fatalf("view should render only the active slide:\n%s", view)
	}
	if !strings.Contains(view, "Shop now") {
		t.Fatalf("visible link missing:\n%s", view)
	}
	if got := countOf(view, "●"); got != 1 {
		t.Fatalf("filled dots = %d, want 1", got)
	}
	if got := countOf(view, "○"); got != 2 {
		t.Fatalf("empty dots = %d, want 2", got)
	}
	if !strings.Contains(view, "1/3") {
		t.Fatalf("position marker missing:\n%s", view)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	view = m.View(60)
	if strings.Contains(view, "Details") {
		t.Fatalf("link without href must not render:\n%s", view)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if view = m.View(60); !strings.Contains(view, "Gift card") {
		t.Fatalf("image alt missing:\n%s", view)
	}
}

func TestCarouselEmpty(t *testing.T) {
	m := NewCarousel(content.Component{Name: "Empty", Kind: content.KindCarousel}, testConfig())
	if cmd := m.Focus(); cmd != nil {
		t.Fatalf("empty carousel scheduled a tick")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(keyRunes("1"))
	if !strings.Contains(m.View(40), "no slides") {
		t.Fatalf("empty view mismatch")
	}
}
