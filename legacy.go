package tagtext

import "strings"

// FixOldTags rewrites text that closes every tag with the anonymous </> into
// text with typed close tags. Tags whose type does not start with "kw" or
// "atom" are dropped while their content is kept.
//
// A </> with nothing open is ignored. Typed close tags already present pop
// the stack like </> and are kept only when their open tag was kept.
func FixOldTags(s string) string {
	tokens := Tokens(s)

	keep := make([]bool, len(tokens))
	for i, tok := range tokens {
		if tok.Kind == tokenOpen {
			keep[i] = categorize(tok.Type()).semantic()
		}
	}

	var b strings.Builder
	b.Grow(len(s))
	var stack []string
	pop := func() (string, bool) {
		if len(stack) == 0 {
			return "", false
		}
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return name, true
	}
	for i, tok := range tokens {
		switch tok.Kind {
		case tokenText:
			b.WriteString(tok.Text)
		case tokenOpen:
			if !keep[i] {
				stack = append(stack, "")
				continue
			}
			stack = append(stack, tok.Name())
			b.WriteString(tok.Text)
		case tokenLegacyClose:
			if name, ok := pop(); ok && name != "" {
				b.WriteString("</")
				b.WriteString(name)
				b.WriteByte('>')
			}
		case tokenClose:
			name, ok := pop()
			if !ok {
				ok = categorize(tok.Type()).semantic()
				name = tok.Name()
			}
			if ok && name != "" {
				b.WriteString(tok.Text)
			}
		}
	}
	return b.String()
}
