package tagtext

import "strings"

// Token is one lexical unit of a tagged string: a tag or a run of content.
type Token struct {
	Kind  tokenKind
	Start int
	End   int
	Text  string
}

type tokenKind uint8

// TokenKind is the exported alias of tokenKind for callers walking tokens.
type TokenKind = tokenKind

const (
	tokenText tokenKind = iota
	tokenOpen
	tokenClose
	tokenLegacyClose
)

const (
	// TokenText is a run of content. An unterminated '<' and everything
	// after it is reported as content.
	TokenText tokenKind = tokenText
	// TokenOpen is an open tag such as <b> or <kw-1>.
	TokenOpen tokenKind = tokenOpen
	// TokenClose is a typed close tag such as </b>.
	TokenClose tokenKind = tokenClose
	// TokenLegacyClose is the anonymous close tag </>.
	TokenLegacyClose tokenKind = tokenLegacyClose
)

// IsTag reports whether the token is a tag rather than content.
func (t Token) IsTag() bool {
	return t.Kind != tokenText
}

// Name returns the tag name without angle brackets or the leading '/' of a
// close tag. It is empty for content and for </>.
func (t Token) Name() string {
	switch t.Kind {
	case tokenOpen:
		return t.Text[1 : len(t.Text)-1]
	case tokenClose, tokenLegacyClose:
		return t.Text[2 : len(t.Text)-1]
	}
	return ""
}

// Type returns the part of the tag name before an optional -param suffix.
func (t Token) Type() string {
	return tagType(t.Name())
}

// Tokens splits s into tags and content runs in source order.
func Tokens(s string) []Token {
	var out []Token
	sc := scanner{s: s}
	for {
		tok, ok := sc.next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}

type scanner struct {
	s   string
	pos int
}

func (sc *scanner) next() (Token, bool) {
	if sc.pos >= len(sc.s) {
		return Token{}, false
	}
	start := sc.pos
	if sc.s[start] == '<' {
		if j := strings.IndexByte(sc.s[start+1:], '>'); j >= 0 {
			end := start + j + 2
			sc.pos = end
			text := sc.s[start:end]
			return Token{Kind: classifyTag(text), Start: start, End: end, Text: text}, true
		}
		sc.pos = len(sc.s)
		return Token{Kind: tokenText, Start: start, End: len(sc.s), Text: sc.s[start:]}, true
	}
	end := len(sc.s)
	if j := strings.IndexByte(sc.s[start:], '<'); j >= 0 {
		end = start + j
	}
	sc.pos = end
	return Token{Kind: tokenText, Start: start, End: end, Text: sc.s[start:end]}, true
}

func classifyTag(text string) tokenKind {
	switch {
	case text == "</>":
		return tokenLegacyClose
	case len(text) > 2 && text[1] == '/':
		return tokenClose
	}
	return tokenOpen
}

func tagType(name string) string {
	if i := strings.IndexByte(name, '-'); i >= 0 {
		return name[:i]
	}
	return name
}
