package nav

// Wrap maps index onto [0, count) cyclically, so Wrap(-1, 3) == 2 and
// Wrap(3, 3) == 0. It returns 0 when count <= 0.
func Wrap(index, count int) int {
	if count <= 0 {
		return 0
	}
	return ((index % count) + count) % count
}

// InRange reports whether index addresses an element of a count-long set.
func InRange(index, count int) bool {
	return index >= 0 && index < count
}
