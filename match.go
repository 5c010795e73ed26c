package tagtext

import "strings"

// MatchCloseTag returns the offset of the close tag that pairs with the open
// tag at start, or NotFound.
//
// Nesting is tracked by type: every later "<type" counts as a re-open and
// every "</type" as a close, whatever parameter follows, so "<kw-a>" is
// closed by "</kw-b>". Tags of other types are ignored.
func MatchCloseTag(s string, start int) int {
	if start < 0 || start >= len(s) || s[start] != '<' {
		return NotFound
	}
	end := SkipTag(s, start)
	if end == NotFound {
		return NotFound
	}
	typ := TagTypeAt(s, start)
	openPrefix := "<" + typ
	closePrefix := "</" + typ
	depth := 1
	for i := end; i < len(s); i++ {
		j := strings.IndexByte(s[i:], '<')
		if j < 0 {
			break
		}
		i += j
		rest := s[i:]
		switch {
		case strings.HasPrefix(rest, closePrefix):
			depth--
			if depth == 0 {
				return i
			}
		case strings.HasPrefix(rest, openPrefix):
			depth++
		}
	}
	return NotFound
}

// LastStartTagBefore returns the offset of the last occurrence of tag (a full
// token such as "<b>") that begins at or before start.
func LastStartTagBefore(s, tag string, start int) int {
	if tag == "" || start < 0 {
		return NotFound
	}
	start = min(start, len(s))
	limit := start + len(tag)
	if limit > len(s) {
		limit = len(s)
	}
	return strings.LastIndex(s[:limit], tag)
}

// InTag reports the offset of the nearest tag before start that encloses the
// whole range [start, end), or NotFound. Only the nearest candidate is
// considered: if it closes before end the result is NotFound even when an
// outer tag of the same name would enclose the range. An unclosed candidate
// extends to the end of s.
func InTag(s, tag string, start, end int) int {
	if start > end {
		start, end = end, start
	}
	open := LastStartTagBefore(s, tag, start)
	if open == NotFound {
		return NotFound
	}
	if closeAt := MatchCloseTag(s, open); closeAt != NotFound && closeAt < end {
		return NotFound
	}
	return open
}
