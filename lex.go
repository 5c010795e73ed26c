package tagtext

import "strings"

// NotFound is returned by index lookups that find nothing.
const NotFound = -1

// TagAt returns the text of the tag starting at pos, without the angle
// brackets. It returns "" when pos does not hold '<' or the tag never ends.
func TagAt(s string, pos int) string {
	if pos < 0 || pos >= len(s) || s[pos] != '<' {
		return ""
	}
	end := strings.IndexByte(s[pos+1:], '>')
	if end < 0 {
		return ""
	}
	return s[pos+1 : pos+1+end]
}

// TagTypeAt is like TagAt but stops at the first '-', yielding the tag type
// without its parameter.
func TagTypeAt(s string, pos int) string {
	if pos < 0 || pos >= len(s) || s[pos] != '<' {
		return ""
	}
	end := strings.IndexAny(s[pos+1:], ">-")
	if end < 0 {
		return ""
	}
	return s[pos+1 : pos+1+end]
}

// SkipTag returns the offset just past the next '>' at or after pos, or
// NotFound.
func SkipTag(s string, pos int) int {
	if pos < 0 || pos >= len(s) {
		return NotFound
	}
	end := strings.IndexByte(s[pos:], '>')
	if end < 0 {
		return NotFound
	}
	return pos + end + 1
}
