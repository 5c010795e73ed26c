package tagtext

import (
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	rangeOrderCode  = "RANGE_ORDER"
	rangeBoundsCode = "RANGE_BOUNDS"
)

// GetTags concatenates the tags that start inside [start, end): close tags
// (including </>) when closeTags is set, open tags otherwise.
func GetTags(s string, start, end int, closeTags bool) string {
	start, end = normalizeRange(len(s), start, end)
	var b strings.Builder
	sc := scanner{s: s, pos: start}
	for {
		tok, ok := sc.next()
		if !ok || tok.Start >= end {
			break
		}
		if !tok.IsTag() {
			continue
		}
		if (tok.Kind != tokenOpen) == closeTags {
			b.WriteString(tok.Text)
		}
	}
	return b.String()
}

// TaggedSubstrReplace replaces [start, end) of s with the plain text
// replacement and keeps the tags balanced: close tags found in the range are
// written before the replacement and open tags found in the range after it,
// then the result is simplified. An open/close pair that lies entirely inside
// the range is removed with it.
//
// Reversed bounds are swapped and out-of-range bounds clamped. Bounds that
// fall inside a tag are widened to cover the whole tag.
func TaggedSubstrReplace(s string, start, end int, replacement string) string {
	start, end = normalizeRange(len(s), start, end)
	start, end = widenToTags(s, start, end)
	closes, opens := seamTags(s, start, end)

	var b strings.Builder
	b.Grow(len(s) + len(replacement))
	b.WriteString(s[:start])
	for _, tag := range closes {
		b.WriteString(tag)
	}
	b.WriteString(Escape(replacement))
	for _, tag := range opens {
		b.WriteString(tag)
	}
	b.WriteString(s[end:])
	return SimplifyTagged(b.String())
}

// seamTags returns the close tags of [start, end) whose open tag lies before
// the range and the open tags whose close tag lies after it, in source order.
func seamTags(s string, start, end int) (closes, opens []string) {
	var pending tagSet
	sc := scanner{s: s, pos: start}
	for {
		tok, ok := sc.next()
		if !ok || tok.Start >= end {
			break
		}
		switch tok.Kind {
		case tokenOpen:
			pending = append(pending, tok.Text)
		case tokenClose, tokenLegacyClose:
			if i := pending.indexAnti(tok.Text); i >= 0 {
				pending = append(pending[:i], pending[i+1:]...)
				continue
			}
			pending = append(pending, tok.Text)
		}
	}
	for _, tag := range pending {
		if strings.HasPrefix(tag, "</") {
			closes = append(closes, tag)
		} else {
			opens = append(opens, tag)
		}
	}
	return closes, opens
}

func normalizeRange(n, start, end int) (int, int) {
	if start > end {
		start, end = end, start
	}
	return clamp(start, 0, n), clamp(end, 0, n)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// widenToTags moves a bound that sits inside a terminated tag to the tag's
// edge: start to its '<', end past its '>'.
func widenToTags(s string, start, end int) (int, int) {
	if lt, stop := enclosingTag(s, start); lt >= 0 {
		start = lt
		if end < stop {
			end = stop
		}
	}
	if _, stop := enclosingTag(s, end); stop >= 0 {
		end = stop
	}
	return start, end
}

// enclosingTag returns the bounds of the tag strictly containing pos, or -1s.
func enclosingTag(s string, pos int) (int, int) {
	lt := strings.LastIndexByte(s[:pos], '<')
	if lt < 0 || strings.IndexByte(s[lt:pos], '>') >= 0 {
		return -1, -1
	}
	stop := SkipTag(s, lt)
	if stop == NotFound || stop <= pos {
		return -1, -1
	}
	return lt, stop
}

// ReplaceRequest configures Replace.
type ReplaceRequest struct {
	Input       string
	Start       int
	End         int
	Replacement string
	Options     []ReplaceOption
}

// Replace is the checked entry point for TaggedSubstrReplace. Options select
// content offsets and strict bound checking; see WithStrictBounds and
// WithContentOffsets.
func Replace(req ReplaceRequest) (string, error) {
	cfg := replaceConfig{}
	for _, opt := range req.Options {
		if opt != nil {
			opt(&cfg)
		}
	}
	start, end := req.Start, req.End
	if cfg.strictBounds {
		limit := len(req.Input)
		if cfg.contentOffsets {
			limit = contentLen(req.Input)
		}
		if start > end {
			return "", goerrors.Wrap(ErrRangeOrder, goerrors.CategoryBadInput, "replace: start after end").
				WithTextCode(rangeOrderCode).
				WithMetadata(map[string]any{"start": start, "end": end})
		}
		if start < 0 || end > limit {
			return "", goerrors.Wrap(ErrRangeBounds, goerrors.CategoryBadInput, "replace: range outside input").
				WithTextCode(rangeBoundsCode).
				WithMetadata(map[string]any{"start": start, "end": end, "limit": limit})
		}
	}
	if cfg.contentOffsets {
		start, end = contentRange(req.Input, start, end)
	}
	return TaggedSubstrReplace(req.Input, start, end, req.Replacement), nil
}
