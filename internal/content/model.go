// Package content decodes CMS layout data into validated component records.
//
// Raw layout JSON is only touched in decode.go; everything else in the
// module works on the types declared here.
package content

import "strings"

// Kind identifies which terminal component renders a record.
type Kind string

const (
	KindCarousel Kind = "carousel"
	KindTabs     Kind = "tabs"
	KindPromo    Kind = "promo"
	KindLinkList Kind = "linklist"
)

func (k Kind) Valid() bool {
	switch k {
	case KindCarousel, KindTabs, KindPromo, KindLinkList:
		return true
	}
	return false
}

// Variant is a presentation theme switch carried by a component.
type Variant string

const (
	VariantDefault Variant = "default"
	VariantDark    Variant = "dark"
	VariantAccent  Variant = "accent"
)

// ParseVariant maps unknown or empty names to VariantDefault.
func ParseVariant(s string) Variant {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case VariantDark:
		return VariantDark
	case VariantAccent:
		return VariantAccent
	default:
		return VariantDefault
	}
}

type Link struct {
	Href   string `json:"href"`
	Text   string `json:"text,omitempty"`
	Target string `json:"target,omitempty"`
}

// Visible reports whether the link should be rendered at all. A link without
// an href is never shown, whatever its text.
func (l *Link) Visible() bool {
	return l != nil && strings.TrimSpace(l.Href) != ""
}

// Label is the text to show for a visible link, falling back to the href.
func (l *Link) Label() string {
	if l == nil {
		return ""
	}
	if t := strings.TrimSpace(l.Text); t != "" {
		return t
	}
	return strings.TrimSpace(l.Href)
}

type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

// Item is one slide, tab or list entry.
type Item struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
	Image *Image `json:"image,omitempty"`
	Link  *Link  `json:"link,omitempty"`
}

type Component struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Kind    Kind    `json:"kind"`
	Title   string  `json:"title,omitempty"`
	Body    string  `json:"body,omitempty"`
	Link    *Link   `json:"link,omitempty"`
	Variant Variant `json:"variant"`
	Items   []Item  `json:"items,omitempty"`
}

// Page is an ordered set of components.
type Page struct {
	Name       string
	Components []Component
}

// Names returns component names in page order.
func (p Page) Names() []string {
	out := make([]string, 0, len(p.Components))
	for _, c := range p.Components {
		out = append(out, c.Name)
	}
	return out
}
