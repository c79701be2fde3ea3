package search

// NaiveIndex returns the offset of the first occurrence of pattern in text or
// -1. It compares one byte at a time and, on a mismatch inside a partial
// match, restarts from the byte after the partial match's start. This is the
// classic O(n·m) scan, kept as the baseline the vectorized scanner is
// measured against.
//
// An empty pattern matches at offset 0.
func NaiveIndex(text, pattern []byte) int {
	if len(pattern) == 0 {
		return 0
	}

	start, j := -1, 0
	for i := 0; i < len(text); i++ {
		if text[i] == pattern[j] {
			if start < 0 {
				start = i
			}
			j++
			if j == len(pattern) {
				return start
			}
		} else if start >= 0 {
			// the loop increment moves on to start+1
			i = start
			start, j = -1, 0
		}
	}
	return NotFound
}
