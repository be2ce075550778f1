package content

// SplitColumns distributes items over n columns in order. Earlier columns take
// the remainder, so 5 items over 2 columns split 3/2. n <= 0 yields a single
// column; columns never outnumber items.
func SplitColumns(items []Item, n int) [][]Item {
	if len(items) == 0 {
		return nil
	}
	if n <= 0 {
		n = 1
	}
	if n > len(items) {
		n = len(items)
	}
	base := len(items) / n
	extra := len(items) % n
	out := make([][]Item, 0, n)
	start := 0
	for col := 0; col < n; col++ {
		size := base
		if col < extra {
			size++
		}
		out = append(out, items[start:start+size])
		start += size
	}
	return out
}
