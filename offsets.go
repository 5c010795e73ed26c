package tagtext

// ContentIndex converts a tagged offset into a content position: the number
// of content bytes that precede pos. For well-formed input content positions
// are offsets into UntagNoEscape(s).
func ContentIndex(s string, pos int) int {
	n := 0
	sc := scanner{s: s}
	for {
		tok, ok := sc.next()
		if !ok || tok.Start >= pos {
			return n
		}
		if tok.Kind != tokenText {
			continue
		}
		if tok.End > pos {
			return n + pos - tok.Start
		}
		n += tok.End - tok.Start
	}
}

// TaggedIndex converts a content position into a tagged offset. The offset
// lands after any tags that precede the content byte, so text inserted there
// takes on the formatting open at that byte. Positions at or past the end of
// the content map to just after the last content byte, or to len(s) when s
// has no content.
func TaggedIndex(s string, contentPos int) int {
	if contentPos < 0 {
		contentPos = 0
	}
	n := 0
	last := len(s)
	sc := scanner{s: s}
	for {
		tok, ok := sc.next()
		if !ok {
			return last
		}
		if tok.Kind != tokenText {
			continue
		}
		size := tok.End - tok.Start
		if contentPos < n+size {
			return tok.Start + contentPos - n
		}
		n += size
		last = tok.End
	}
}

// contentRange maps the content range [start, end) onto tagged offsets. A
// non-empty range ends right after its last content byte so tags that follow
// it stay outside the range.
func contentRange(s string, start, end int) (int, int) {
	if start > end {
		start, end = end, start
	}
	n := contentLen(s)
	start, end = clamp(start, 0, n), clamp(end, 0, n)
	from := TaggedIndex(s, start)
	if end <= start {
		return from, from
	}
	return from, TaggedIndex(s, end-1) + 1
}

func contentLen(s string) int {
	return ContentIndex(s, len(s))
}
