package tagtext

import "strings"

// tagCategory classifies tag types for the simplification and legacy passes.
type tagCategory uint8

const (
	categoryOther tagCategory = iota
	categoryBold
	categoryItalic
	categorySymbol
	categoryKeyword
	categoryAtom
)

func categorize(typ string) tagCategory {
	switch typ {
	case "b":
		return categoryBold
	case "i":
		return categoryItalic
	case "sym":
		return categorySymbol
	}
	switch {
	case strings.HasPrefix(typ, "kw"):
		return categoryKeyword
	case strings.HasPrefix(typ, "atom"):
		return categoryAtom
	}
	return categoryOther
}

// mergeable reports whether redundant tags of this category may be dropped.
// Only presentation styles qualify.
func (c tagCategory) mergeable() bool {
	switch c {
	case categoryBold, categoryItalic, categorySymbol:
		return true
	}
	return false
}

// semantic reports whether the category survives legacy conversion.
func (c tagCategory) semantic() bool {
	switch c {
	case categoryKeyword, categoryAtom:
		return true
	}
	return false
}
