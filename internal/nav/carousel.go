package nav

import (
	"sync"
	"time"
)

// DefaultInterval is the auto-advance period used when none is configured.
const DefaultInterval = 5 * time.Second

// CarouselState is the observable state of a Carousel.
type CarouselState struct {
	Index   int
	Playing bool
}

// Carousel owns the current slide index and the auto-advance timer for a
// fixed, ordered set of slides.
//
// All operations are silent no-ops on invalid input. Timer callbacks and caller
// operations are serialized on the carousel's mutex.
type Carousel struct {
	mu       sync.Mutex
	count    int
	index    int
	playing  bool
	closed   bool
	interval time.Duration
	sched    Scheduler
	stop     func()
	gen      uint64
	onChange func(CarouselState)
}

// CarouselOption configures a Carousel at construction.
type CarouselOption func(*Carousel)

// WithAutoplay sets the initial play state. Carousels start playing by default.
func WithAutoplay(on bool) CarouselOption {
	return func(c *Carousel) { c.playing = on }
}

// WithInterval sets the auto-advance period. Non-positive values fall back
// to DefaultInterval.
func WithInterval(d time.Duration) CarouselOption {
	return func(c *Carousel) { c.interval = d }
}

// WithScheduler installs the timer source for auto-advance. Without one the
// play flag is tracked but nothing advances on its own; the caller drives
// Advance instead.
func WithScheduler(s Scheduler) CarouselOption {
	return func(c *Carousel) { c.sched = s }
}

// WithOnChange registers a callback fired after every state change, outside
// the carousel's lock.
func WithOnChange(fn func(CarouselState)) CarouselOption {
	return func(c *Carousel) { c.onChange = fn }
}

// NewCarousel returns a carousel over count slides positioned on the first
// slide. It starts playing unless WithAutoplay(false) is given, and arms the
// scheduler when one is installed and there is more than one slide.
func NewCarousel(count int, opts ...CarouselOption) *Carousel {
	if count < 0 {
		count = 0
	}
	c := &Carousel{count: count, playing: true, interval: DefaultInterval}
	for _, opt := range opts {
		opt(c)
	}
	if c.interval <= 0 {
		c.interval = DefaultInterval
	}
	c.mu.Lock()
	if c.playing {
		c.armLocked()
	}
	c.mu.Unlock()
	return c
}

// Count is the number of slides.
func (c *Carousel) Count() int { return c.count }

// Interval is the auto-advance period.
func (c *Carousel) Interval() time.Duration { return c.interval }

// Index is the current slide.
func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Playing reports whether auto-advance is on.
func (c *Carousel) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

// State returns a consistent snapshot of index and play flag.
func (c *Carousel) State() CarouselState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// Next advances one slide, wrapping from the last slide to the first.
func (c *Carousel) Next() { c.step(1, false) }

// Previous moves back one slide, wrapping from the first slide to the last.
func (c *Carousel) Previous() { c.step(-1, false) }

// Advance is Next for callers that own the timer themselves. It does nothing
// while paused.
func (c *Carousel) Advance() { c.step(1, true) }

// GoTo jumps directly to index. Out-of-range indices are rejected and leave
// the state unchanged.
func (c *Carousel) GoTo(index int) bool {
	c.mu.Lock()
	if c.closed || !InRange(index, c.count) {
		c.mu.Unlock()
		return false
	}
	changed := c.index != index
	c.index = index
	st := c.stateLocked()
	c.mu.Unlock()
	if changed {
		c.notify(st)
	}
	return true
}

// TogglePlay flips the play state and returns the new value. Resuming arms a
// fresh timer; pausing cancels the current one.
func (c *Carousel) TogglePlay() bool {
	c.mu.Lock()
	if c.closed {
		playing := c.playing
		c.mu.Unlock()
		return playing
	}
	c.playing = !c.playing
	stop := c.disarmLocked()
	if c.playing {
		c.armLocked()
	}
	st := c.stateLocked()
	c.mu.Unlock()

	if stop != nil {
		stop()
	}
	c.notify(st)
	return st.Playing
}

// Close releases the auto-advance timer. After Close returns the timer never
// calls Next again and every other operation is a no-op. Close is idempotent.
func (c *Carousel) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.playing = false
	stop := c.disarmLocked()
	c.mu.Unlock()

	if stop != nil {
		stop()
	}
}

func (c *Carousel) step(delta int, onlyPlaying bool) {
	c.mu.Lock()
	if c.closed || c.count <= 1 || (onlyPlaying && !c.playing) {
		c.mu.Unlock()
		return
	}
	c.index = Wrap(c.index+delta, c.count)
	st := c.stateLocked()
	c.mu.Unlock()
	c.notify(st)
}

func (c *Carousel) tick(gen uint64) {
	c.mu.Lock()
	if c.closed || !c.playing || gen != c.gen || c.count <= 1 {
		c.mu.Unlock()
		return
	}
	c.index = Wrap(c.index+1, c.count)
	st := c.stateLocked()
	c.mu.Unlock()
	c.notify(st)
}

func (c *Carousel) armLocked() {
	if c.sched == nil || c.count <= 1 {
		return
	}
	c.gen++
	gen := c.gen
	c.stop = c.sched.Every(c.interval, func() { c.tick(gen) })
}

// disarmLocked detaches the current timer and returns its stop func, which
// the caller must run after releasing the lock. Bumping gen makes any tick
// already waiting on the lock drop itself.
func (c *Carousel) disarmLocked() func() {
	c.gen++
	stop := c.stop
	c.stop = nil
	return stop
}

func (c *Carousel) stateLocked() CarouselState {
	return CarouselState{Index: c.index, Playing: c.playing}
}

func (c *Carousel) notify(st CarouselState) {
	if c.onChange != nil {
		c.onChange(st)
	}
}
