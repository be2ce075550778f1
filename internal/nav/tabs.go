package nav

// Key is a navigation key understood by Tabs.
type Key int

const (
	KeyNone Key = iota
	KeyArrowRight
	KeyArrowLeft
	KeyHome
	KeyEnd
)

func (k Key) String() string {
	switch k {
	case KeyArrowRight:
		return "ArrowRight"
	case KeyArrowLeft:
		return "ArrowLeft"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	default:
		return "None"
	}
}

// ParseKey accepts both DOM key names and bubbletea key strings.
func ParseKey(name string) Key {
	switch name {
	case "ArrowRight", "right":
		return KeyArrowRight
	case "ArrowLeft", "left":
		return KeyArrowLeft
	case "Home", "home":
		return KeyHome
	case "End", "end":
		return KeyEnd
	default:
		return KeyNone
	}
}

// Tabs owns the active index for a fixed set of tabs, each mapped 1:1 to a
// panel. A Tabs with no tabs is inert.
type Tabs struct {
	count  int
	active int
}

// NewTabs returns a controller over count tabs with the first one active.
// A negative count is treated as zero.
func NewTabs(count int) *Tabs {
	if count < 0 {
		count = 0
	}
	return &Tabs{count: count}
}

// Count is the number of tabs.
func (t *Tabs) Count() int { return t.count }

// Active returns the active index, or -1 when there are no tabs.
func (t *Tabs) Active() int {
	if t.count == 0 {
		return -1
	}
	return t.active
}

// IsActive reports whether index is the active tab.
func (t *Tabs) IsActive(index int) bool {
	return t.count > 0 && index == t.active
}

// States reports per-tab activation. Exactly one entry is true when the set is
// non-empty.
func (t *Tabs) States() []bool {
	out := make([]bool, t.count)
	if t.count > 0 {
		out[t.active] = true
	}
	return out
}

// Select activates index directly. Out-of-range indices are ignored.
func (t *Tabs) Select(index int) bool {
	if !InRange(index, t.count) || index == t.active {
		return false
	}
	t.active = index
	return true
}

// HandleKey applies keyboard navigation and reports whether the active tab
// changed.
func (t *Tabs) HandleKey(k Key) bool {
	if t.count == 0 {
		return false
	}
	prev := t.active
	switch k {
	case KeyArrowRight:
		t.active = Wrap(t.active+1, t.count)
	case KeyArrowLeft:
		t.active = Wrap(t.active-1, t.count)
	case KeyHome:
		t.active = 0
	case KeyEnd:
		t.active = t.count - 1
	}
	return t.active != prev
}
