package tagtext

import "strings"

// EscapedLT stands in for a literal '<' in tagged text. It is a single byte
// so byte offsets into tagged text and into its plain rendition line up.
const EscapedLT = '\x01'

const escapedLTString = string(EscapedLT)

// Escape converts plain text to tagged text by replacing every '<' with EscapedLT.
func Escape(s string) string {
	return strings.ReplaceAll(s, "<", escapedLTString)
}

// Untag strips all tags and turns EscapedLT back into '<'.
func Untag(s string) string {
	return untag(s, true)
}

// UntagNoEscape strips all tags but leaves EscapedLT in place, so the result
// can be fed back through Escape without losing literal '<' characters.
func UntagNoEscape(s string) string {
	return untag(s, false)
}

func untag(s string, unescape bool) string {
	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inTag:
			if c == '>' {
				inTag = false
			}
		case c == '<':
			inTag = true
		case c == EscapedLT && unescape:
			b.WriteByte('<')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
