package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/showcase/internal/content"
)

// ---------------------------------------------------------------------------
// Catppuccin palettes as true-color hex values.
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

type Palette struct {
	Name     string
	Accent   lipgloss.Color
	Focus    lipgloss.Color
	Success  lipgloss.Color
	Error    lipgloss.Color
	Text     lipgloss.Color
	Subtext  lipgloss.Color
	Overlay  lipgloss.Color
	Surface  lipgloss.Color
	Base     lipgloss.Color
	Mantle   lipgloss.Color
	Link     lipgloss.Color
	Contrast lipgloss.Color
}

var Mocha = Palette{
	Name:     "mocha",
	Accent:   "#f5c2e7",
	Focus:    "#b4befe",
	Success:  "#a6e3a1",
	Error:    "#f38ba8",
	Text:     "#cdd6f4",
	Subtext:  "#a6adc8",
	Overlay:  "#6c7086",
	Surface:  "#313244",
	Base:     "#1e1e2e",
	Mantle:   "#181825",
	Link:     "#89b4fa",
	Contrast: "#11111b",
}

var Latte = Palette{
	Name:     "latte",
	Accent:   "#ea76cb",
	Focus:    "#7287fd",
	Success:  "#40a02b",
	Error:    "#d20f39",
	Text:     "#4c4f69",
	Subtext:  "#6c6f85",
	Overlay:  "#9ca0b0",
	Surface:  "#ccd0da",
	Base:     "#eff1f5",
	Mantle:   "#e6e9ef",
	Link:     "#1e66f5",
	Contrast: "#dce0e8",
}

// PaletteByName falls back to Mocha for unknown names.
func PaletteByName(name string) Palette {
	if strings.EqualFold(strings.TrimSpace(name), Latte.Name) {
		return Latte
	}
	return Mocha
}

// Styles is the resolved style set for one component variant.
type Styles struct {
	Frame     lipgloss.Style
	Title     lipgloss.Style
	Body      lipgloss.Style
	Link      lipgloss.Style
	Muted     lipgloss.Style
	TabActive lipgloss.Style
	TabIdle   lipgloss.Style
	Dot       lipgloss.Style
	DotActive lipgloss.Style
	Error     lipgloss.Style
}

// StylesFor switches colors by component variant: dark inverts the frame
// background, accent swaps the border and title to the accent color.
func StylesFor(p Palette, v content.Variant) Styles {
	border := p.Overlay
	title := p.Text
	bg := lipgloss.Color("")
	switch v {
	case content.VariantDark:
		bg = p.Mantle
		border = p.Focus
	case content.VariantAccent:
		border = p.Accent
		title = p.Accent
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
	if bg != "" {
		frame = frame.Background(bg)
	}

	return Styles{
		Frame:     frame,
		Title:     lipgloss.NewStyle().Foreground(title).Bold(true),
		Body:      lipgloss.NewStyle().Foreground(p.Text),
		Link:      lipgloss.NewStyle().Foreground(p.Link).Underline(true),
		Muted:     lipgloss.NewStyle().Foreground(p.Subtext),
		TabActive: lipgloss.NewStyle().Foreground(p.Contrast).Background(p.Focus).Bold(true),
		TabIdle:   lipgloss.NewStyle().Foreground(p.Subtext),
		Dot:       lipgloss.NewStyle().Foreground(p.Overlay),
		DotActive: lipgloss.NewStyle().Foreground(p.Accent),
		Error:     lipgloss.NewStyle().Foreground(p.Error),
	}
}
