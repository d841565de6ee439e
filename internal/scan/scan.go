// Package scan implements the quoting-aware scanning primitives shared by
// the line parser and the command tokenizer: counting, locating, and
// splitting on a delimiter byte while honoring quoted spans and
// backslash escapes.
//
// The three exported functions (Count, Position, Split) are pure
// functions over a byte slice; none of them allocate more than the
// result requires. They all share a single cursor that walks the input
// once and reports, for every byte, whether it sits inside a quoted
// span and whether it is escaped — mirrored on the single-pass cursor
// idiom used by the corpus's recursive-descent scanners.
package scan

// Walk advances over s once, calling yield for every byte with its
// index, whether it is currently inside a quoted span (opened by ' or
// "), and whether it is immediately preceded by an unescaped backslash.
// Iteration stops early if yield returns false.
//
// Quote tracking: a ' opens/closes "in-single" unless already inside a
// double-quoted span (and vice versa) — the opposite quote character is
// literal inside a span. Mismatched quotes are tolerated: the state
// simply remains true until the end of the string.
func Walk(s []byte, yield func(b byte, idx int, quoted, escaped bool) bool) {
	var inSingle, inDouble bool
	prevBackslash := false
	for i := 0; i < len(s); i++ {
		b := s[i]
		quoted := inSingle || inDouble
		escaped := i > 0 && prevBackslash

		if !yield(b, i, quoted, escaped) {
			return
		}

		switch b {
		case '\'':
			if !inDouble {
				inSingle = !inSingle
			}
		case '"':
			if !inSingle {
				inDouble = !inDouble
			}
		}
		prevBackslash = b == '\\' && !prevBackslash
	}
}

// counts reports whether the occurrence of c at position idx (with the
// given quoted/escaped state) should count as a real delimiter hit.
func counts(quoted, escaped, ignoreEscapes bool) bool {
	return ignoreEscapes || (!quoted && !escaped)
}

// Count returns the number of occurrences of c in s that count as real
// delimiter hits under the quoting/escape rules above.
func Count(s []byte, c byte, ignoreEscapes bool) int {
	n := 0
	Walk(s, func(b byte, idx int, quoted, escaped bool) bool {
		if b == c && counts(quoted, escaped, ignoreEscapes) {
			n++
		}
		return true
	})
	return n
}

// Position returns the byte offset of the n-th (0-based) counted
// occurrence of c in s, or ok=false if there is no such occurrence.
func Position(s []byte, c byte, n int, ignoreEscapes bool) (pos int, ok bool) {
	if n < 0 {
		return 0, false
	}
	seen := 0
	found := -1
	Walk(s, func(b byte, idx int, quoted, escaped bool) bool {
		if b == c && counts(quoted, escaped, ignoreEscapes) {
			if seen == n {
				found = idx
				return false
			}
			seen++
		}
		return true
	})
	if found < 0 {
		return 0, false
	}
	return found, true
}

// Split returns the n-th segment of s (the bytes strictly between the
// (n-1)-th and n-th counted occurrence of c, or from the start/to the
// end at the boundaries). If wantRest is true, rest holds everything
// after the n-th occurrence (or nil, with restOk false, if there is no
// n-th occurrence — the segment then runs to the end of s).
//
// An empty segment is legal and yields an empty, non-nil slice.
func Split(s []byte, c byte, n int, ignoreEscapes, wantRest bool) (segment []byte, rest []byte, restOk bool) {
	start := 0
	if n > 0 {
		p, ok := Position(s, c, n-1, ignoreEscapes)
		if !ok {
			// fewer than n occurrences: the n-th segment is empty and
			// there is no rest.
			return []byte{}, nil, false
		}
		start = p + 1
	}

	end := len(s)
	if p, ok := Position(s, c, n, ignoreEscapes); ok {
		end = p
		if wantRest {
			rest = s[p+1:]
			restOk = true
		}
	}
	if start > end {
		start = end
	}
	segment = s[start:end]
	return segment, rest, restOk
}
