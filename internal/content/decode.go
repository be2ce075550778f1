package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidComponent = errors.New("invalid component")
	ErrUnknownKind      = errors.New("unknown component kind")
)

type rawPage struct {
	Name       string            `json:"name"`
	Components []json.RawMessage `json:"components"`
}

type rawComponent struct {
	UID           string                     `json:"uid"`
	ComponentName string                     `json:"componentName"`
	Params        map[string]string          `json:"params"`
	Fields        map[string]json.RawMessage `json:"fields"`
}

type rawItem struct {
	ID     string                     `json:"id"`
	Fields map[string]json.RawMessage `json:"fields"`
}

type rawValue struct {
	Value json.RawMessage `json:"value"`
}

// Decode parses a layout document of the form
//
//	{"name": "home", "components": [{"componentName": "HeroCarousel", "fields": {...}}]}
func Decode(data []byte) (Page, error) {
	var raw rawPage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Page{}, fmt.Errorf("decode page: %w", err)
	}
	page := Page{Name: strings.TrimSpace(raw.Name)}
	for i, rc := range raw.Components {
		c, err := DecodeComponent(rc)
		if err != nil {
			return Page{}, fmt.Errorf("component %d: %w", i, err)
		}
		page.Components = append(page.Components, c)
	}
	if err := page.Validate(); err != nil {
		return Page{}, err
	}
	return page, nil
}

// Validate reports components that would collide in storage: names and ids
// must both be unique, compared case-insensitively.
func (p Page) Validate() error {
	names := make(map[string]bool, len(p.Components))
	ids := make(map[string]bool, len(p.Components))
	for i, c := range p.Components {
		name := strings.ToLower(c.Name)
		if names[name] {
			return fmt.Errorf("component %d: duplicate name %q: %w", i, c.Name, ErrInvalidComponent)
		}
		names[name] = true
		id := strings.ToLower(c.ID)
		if ids[id] {
			return fmt.Errorf("component %d (%s): duplicate uid %q: %w", i, c.Name, c.ID, ErrInvalidComponent)
		}
		ids[id] = true
	}
	return nil
}

// DecodeComponent validates one raw component. The kind comes from the
// "kind" param when present and is otherwise inferred from the component name.
func DecodeComponent(data json.RawMessage) (Component, error) {
	var rc rawComponent
	if err := json.Unmarshal(data, &rc); err != nil {
		return Component{}, fmt.Errorf("%w: %v", ErrInvalidComponent, err)
	}
	name := strings.TrimSpace(rc.ComponentName)
	if name == "" {
		return Component{}, fmt.Errorf("%w: componentName is required", ErrInvalidComponent)
	}

	kind := Kind(strings.ToLower(strings.TrimSpace(rc.Params["kind"])))
	if kind == "" {
		kind = InferKind(name)
	}
	if !kind.Valid() {
		return Component{}, fmt.Errorf("%s: %w %q", name, ErrUnknownKind, kind)
	}

	c := Component{
		ID:      strings.TrimSpace(rc.UID),
		Name:    name,
		Kind:    kind,
		Variant: ParseVariant(rc.Params["variant"]),
	}
	if c.ID == "" {
		c.ID = StableID(name)
	}

	var err error
	if c.Title, err = textField(rc.Fields, "title"); err != nil {
		return Component{}, fmt.Errorf("%s: %w", name, err)
	}
	if c.Body, err = textField(rc.Fields, "body"); err != nil {
		return Component{}, fmt.Errorf("%s: %w", name, err)
	}
	if c.Link, err = linkField(rc.Fields, "link"); err != nil {
		return Component{}, fmt.Errorf("%s: %w", name, err)
	}

	if rawItems, ok := rc.Fields["items"]; ok && !isNull(rawItems) {
		var items []rawItem
		if err := json.Unmarshal(rawItems, &items); err != nil {
			return Component{}, fmt.Errorf("%s: items: %w: %v", name, ErrInvalidComponent, err)
		}
		for i, ri := range items {
			item, err := decodeItem(name, i, ri)
			if err != nil {
				return Component{}, fmt.Errorf("%s: item %d: %w", name, i, err)
			}
			c.Items = append(c.Items, item)
		}
	}
	return c, nil
}

// InferKind guesses a kind from a component name such as "HeroCarousel" or
// "FooterLinkList". It returns "" when nothing matches.
func InferKind(name string) Kind {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "carousel"), strings.Contains(n, "slider"):
		return KindCarousel
	case strings.Contains(n, "tab"):
		return KindTabs
	case strings.Contains(n, "promo"), strings.Contains(n, "hero"):
		return KindPromo
	case strings.Contains(n, "linklist"), strings.Contains(n, "footer"), strings.Contains(n, "navigation"):
		return KindLinkList
	}
	return ""
}

// StableID derives a deterministic id from the given parts.
func StableID(parts ...string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("showcase:"+strings.Join(parts, "/"))).String()
}

func decodeItem(component string, idx int, ri rawItem) (Item, error) {
	item := Item{ID: strings.TrimSpace(ri.ID)}
	if item.ID == "" {
		item.ID = StableID(component, strconv.Itoa(idx))
	}
	var err error
	if item.Title, err = textField(ri.Fields, "title"); err != nil {
		return Item{}, err
	}
	if item.Body, err = textField(ri.Fields, "body"); err != nil {
		return Item{}, err
	}
	if item.Link, err = linkField(ri.Fields, "link"); err != nil {
		return Item{}, err
	}
	if item.Image, err = imageField(ri.Fields, "image"); err != nil {
		return Item{}, err
	}
	return item, nil
}

func fieldValue(fields map[string]json.RawMessage, name string) (json.RawMessage, error) {
	raw, ok := fields[name]
	if !ok || isNull(raw) {
		return nil, nil
	}
	var v rawValue
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("field %s: %w: %v", name, ErrInvalidComponent, err)
	}
	if isNull(v.Value) {
		return nil, nil
	}
	return v.Value, nil
}

func textField(fields map[string]json.RawMessage, name string) (string, error) {
	val, err := fieldValue(fields, name)
	if err != nil || val == nil {
		return "", err
	}
	var s string
	if err := json.Unmarshal(val, &s); err == nil {
		return strings.TrimSpace(s), nil
	}
	// Numbers and booleans show up in single-line text fields.
	var scalar any
	if err := json.Unmarshal(val, &scalar); err != nil {
		return "", fmt.Errorf("field %s: %w: %v", name, ErrInvalidComponent, err)
	}
	switch scalar.(type) {
	case float64, bool:
		return fmt.Sprint(scalar), nil
	}
	return "", fmt.Errorf("field %s: %w: expected text", name, ErrInvalidComponent)
}

func linkField(fields map[string]json.RawMessage, name string) (*Link, error) {
	val, err := fieldValue(fields, name)
	if err != nil || val == nil {
		return nil, err
	}
	var l Link
	if err := json.Unmarshal(val, &l); err != nil {
		return nil, fmt.Errorf("field %s: %w: %v", name, ErrInvalidComponent, err)
	}
	l.Href = strings.TrimSpace(l.Href)
	l.Text = strings.TrimSpace(l.Text)
	return &l, nil
}

func imageField(fields map[string]json.RawMessage, name string) (*Image, error) {
	val, err := fieldValue(fields, name)
	if err != nil || val == nil {
		return nil, err
	}
	var img Image
	if err := json.Unmarshal(val, &img); err != nil {
		return nil, fmt.Errorf("field %s: %w: %v", name, ErrInvalidComponent, err)
	}
	if strings.TrimSpace(img.Src) == "" {
		return nil, nil
	}
	return &img, nil
}

func isNull(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}
