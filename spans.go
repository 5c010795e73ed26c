package tagtext

import "strings"

// Span is one well-nested tag pair located by Parse. Offsets are bytes into
// the tagged text: Open is the '<' of the open tag, ContentStart and
// ContentEnd bound the enclosed text, and Close is just past the close tag.
type Span struct {
	Name         string
	Type         string
	Open         int
	ContentStart int
	ContentEnd   int
	Close        int
}

// Parse returns the tag spans of s ordered by their open tag. It applies the
// same strict rules as Validate and returns its error.
func Parse(s string) ([]Span, error) {
	return parse(s, true)
}

type frame struct {
	name string
	open int
	span int
}

func parse(s string, collect bool) ([]Span, error) {
	var (
		stack []frame
		spans []Span
	)
	for i := 0; i < len(s); {
		j := strings.IndexByte(s[i:], '<')
		if j < 0 {
			break
		}
		i += j
		k := strings.IndexAny(s[i+1:], "<>")
		if k < 0 {
			return nil, malformedTag(i, s[i+1:], "unterminated tag")
		}
		end := i + 1 + k
		if s[end] == '<' {
			return nil, malformedTag(i, s[i+1:end], "'<' inside tag")
		}
		end++
		inner := s[i+1 : end-1]
		switch {
		case inner == "/":
			return nil, malformedTag(i, inner, "anonymous close tag")
		case strings.HasPrefix(inner, "/"):
			name := inner[1:]
			if err := checkTagName(i, name); err != nil {
				return nil, err
			}
			if len(stack) == 0 {
				return nil, malformedTag(i, name, "close tag without open tag")
			}
			top := stack[len(stack)-1]
			if top.name != name {
				return nil, malformedTag(i, name, "close tag does not match "+top.name)
			}
			stack = stack[:len(stack)-1]
			if collect {
				spans[top.span].ContentEnd = i
				spans[top.span].Close = end
			}
		default:
			if err := checkTagName(i, inner); err != nil {
				return nil, err
			}
			f := frame{name: inner, open: i, span: -1}
			if collect {
				f.span = len(spans)
				spans = append(spans, Span{
					Name:         inner,
					Type:         tagType(inner),
					Open:         i,
					ContentStart: end,
				})
			}
			stack = append(stack, f)
		}
		i = end
	}
	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return nil, malformedTag(top.open, top.name, "unclosed tag")
	}
	return spans, nil
}

func checkTagName(offset int, name string) error {
	if name == "" {
		return malformedTag(offset, name, "empty tag name")
	}
	if strings.Count(name, "-") > 1 {
		return malformedTag(offset, name, "more than one '-' in tag name")
	}
	return nil
}

// ActiveTags returns the names of the tags open at offset pos, outermost
// first. Only tags that end at or before pos count. A close tag removes the
// innermost open tag of the same name and </> removes the innermost tag;
// close tags with no partner are ignored.
func ActiveTags(s string, pos int) []string {
	var stack []string
	sc := scanner{s: s}
	for {
		tok, ok := sc.next()
		if !ok || tok.End > pos {
			break
		}
		switch tok.Kind {
		case tokenOpen:
			stack = append(stack, tok.Name())
		case tokenLegacyClose:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case tokenClose:
			name := tok.Name()
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i] == name {
					stack = append(stack[:i], stack[i+1:]...)
					break
				}
			}
		}
	}
	return stack
}
