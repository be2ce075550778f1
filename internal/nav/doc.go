// Package nav holds the index state machines behind the carousel and tab
// components.
//
// Allowed here:
// - index arithmetic, play/pause state, auto-advance timer ownership
//
// Not allowed here:
// - rendering, key binding tables, content decoding
package nav
