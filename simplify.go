package tagtext

import "strings"

// AntiTag returns the logical opposite of a tag token: "<b>" becomes "</b>"
// and "</b>" becomes "<b>".
func AntiTag(tag string) string {
	if strings.HasPrefix(tag, "</") {
		return "<" + tag[2:]
	}
	if strings.HasPrefix(tag, "<") {
		return "</" + tag[1:]
	}
	if strings.HasPrefix(tag, "/") {
		return tag[1:]
	}
	return "/" + tag
}

// isAntiTag reports whether b == AntiTag(a) for tag tokens a and b.
func isAntiTag(a, b string) bool {
	if strings.HasPrefix(a, "</") {
		return len(b) == len(a)-1 && b[0] == '<' && b[1:] == a[2:]
	}
	return len(b) == len(a)+1 && strings.HasPrefix(b, "</") && b[2:] == a[1:]
}

// tagSet is an ordered buffer of tag tokens in which opposite tags cancel.
type tagSet []string

func (ts tagSet) contains(tag string) bool {
	for i := len(ts) - 1; i >= 0; i-- {
		if ts[i] == tag {
			return true
		}
	}
	return false
}

func (ts tagSet) containsAnti(tag string) bool {
	return ts.indexAnti(tag) >= 0
}

func (ts tagSet) indexAnti(tag string) int {
	for i := len(ts) - 1; i >= 0; i-- {
		if isAntiTag(tag, ts[i]) {
			return i
		}
	}
	return -1
}

// addOrCancel removes the opposite of tag when it is buffered and appends
// tag otherwise.
func (ts *tagSet) addOrCancel(tag string) {
	if i := ts.indexAnti(tag); i >= 0 {
		*ts = append((*ts)[:i], (*ts)[i+1:]...)
		return
	}
	*ts = append(*ts, tag)
}

func (ts *tagSet) flush(b *strings.Builder) {
	for _, tag := range *ts {
		b.WriteString(tag)
	}
	*ts = (*ts)[:0]
}

// SimplifyTaggedMerge drops pairs of opposite tags that are separated only
// by other tags. Tags between two content runs are held back until content
// arrives, so "<b></b>" and "</b><b>" both vanish.
func SimplifyTaggedMerge(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var waiting tagSet
	sc := scanner{s: s}
	for {
		tok, ok := sc.next()
		if !ok {
			break
		}
		if tok.Kind == tokenText {
			waiting.flush(&b)
			b.WriteString(tok.Text)
			continue
		}
		waiting.addOrCancel(tok.Text)
	}
	waiting.flush(&b)
	return b.String()
}

// SimplifyTaggedOverlap drops re-opens of bold, italic and symbol tags that
// are already open, together with the closes that pair with them. Other tags
// and all content pass through unchanged.
func SimplifyTaggedOverlap(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var open tagSet
	sc := scanner{s: s}
	for {
		tok, ok := sc.next()
		if !ok {
			break
		}
		if tok.IsTag() && categorize(tok.Type()).mergeable() {
			if open.contains(tok.Text) {
				open.addOrCancel(tok.Text)
				continue
			}
			open.addOrCancel(tok.Text)
			if open.containsAnti(tok.Text) {
				continue
			}
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}

// SimplifyTagged canonicalizes s by merging adjacent opposite tags and then
// removing overlapping style tags. It is idempotent.
func SimplifyTagged(s string) string {
	return SimplifyTaggedOverlap(SimplifyTaggedMerge(s))
}
