package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/showcase/internal/content"
)

func testConfig() WidgetConfig {
	return WidgetConfig{
		Palette:     Mocha,
		Keys:        DefaultKeyMap(),
		Interval:    time.Second,
		Autoplay:    true,
		NarrowWidth: 60,
	}
}

func heroComponent() content.Component {
	return content.Component{
		ID: "hero", Name: "HeroCarousel", Kind: content.KindCarousel, Title: "Featured",
		Items: []content.Item{
			{ID: "s1", Title: "Spring collection", Body: "New arrivals.", Link: &content.Link{Href: "/spring", Text: "Shop now"}},
			{ID: "s2", Title: "Free shipping", Body: "Orders over 50.", Link: &content.Link{Text: "Details"}},
			{ID: "s3", Title: "Gift cards", Body: "Send one today.", Image: &content.Image{Src: "/gift.png", Alt: "Gift card"}},
		},
	}
}

func tabsComponent() content.Component {
	return content.Component{
		ID: "tabs", Name: "ProductTabs", Kind: content.KindTabs, Title: "Products",
		Items: []content.Item{
			{ID: "t1", Title: "Shoes", Body: "Running and trail."},
			{ID: "t2", Title: "Jackets", Body: "Rain shells."},
			{ID: "t3", Title: "Bags", Body: "Daypacks."},
		},
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func countOf(s, sub string) int { return strings.Count(s, sub) }
