package tagtext

import (
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestGetTags(t *testing.T) {
	s := "a<x>b</x>c"
	if got := GetTags(s, 0, 10, false); got != "<x>" {
		t.Fatalf("open tags: got %q want %q", got, "<x>")
	}
	if got := GetTags(s, 0, 10, true); got != "</x>" {
		t.Fatalf("close tags: got %q want %q", got, "</x>")
	}
	if got := GetTags(s, 2, 10, false); got != "" {
		t.Fatalf("tag starting before the range should be skipped, got %q", got)
	}
	if got := GetTags(s, 0, 5, true); got != "" {
		t.Fatalf("close tag after the range should be skipped, got %q", got)
	}
	if got := GetTags("<a>x</><b><c>", 0, 99, true); got != "</>" {
		t.Fatalf("legacy close: got %q", got)
	}
	if got := GetTags("<a>x</><b><c>", 0, 99, false); got != "<a><b><c>" {
		t.Fatalf("open tags in order: got %q", got)
	}
}

func TestTaggedSubstrReplace(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		src         string
		start, end  int
		replacement string
		want        string
	}{
		{name: "insert inside span", src: "<b>hello</b>", start: 4, end: 4, replacement: "X", want: "<b>hXello</b>"},
		{name: "bound inside open tag", src: "<b>hello</b>", start: 1, end: 1, replacement: "X", want: "X<b>hello</b>"},
		{name: "range leaves span", src: "<b>hello</b> world", start: 5, end: 12, replacement: "p, big", want: "<b>he</b>p, big world"},
		{name: "reversed bounds", src: "<b>hello</b> world", start: 12, end: 5, replacement: "p, big", want: "<b>he</b>p, big world"},
		{name: "contained span removed", src: "a<i>b</i>c", start: 0, end: 10, replacement: "X", want: "X"},
		{name: "range enters span", src: "a<i>b</i>c", start: 1, end: 5, replacement: "X", want: "aXc"},
		{name: "seam across spans", src: "<b>ab</b><b>cd</b>", start: 4, end: 12, replacement: "X", want: "<b>a</b>X<b>cd</b>"},
		{name: "seam merges", src: "<b>ab</b><b>cd</b>", start: 4, end: 13, replacement: "", want: "<b>ad</b>"},
		{name: "escapes replacement", src: "<b>x</b>", start: 4, end: 4, replacement: "<", want: "<b>x\x01</b>"},
		{name: "clamped", src: "ab", start: -3, end: 99, replacement: "z", want: "z"},
		{name: "delete", src: "<kw-1>if</kw-1> x", start: 6, end: 8, replacement: "", want: " x"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := TaggedSubstrReplace(tc.src, tc.start, tc.end, tc.replacement)
			if got != tc.want {
				t.Fatalf("TaggedSubstrReplace(%q, %d, %d, %q)\nwant: %q\n got: %q", tc.src, tc.start, tc.end, tc.replacement, tc.want, got)
			}
		})
	}
}

func TestTaggedSubstrReplaceKeepsEnclosingSpan(t *testing.T) {
	for _, pos := range []int{1, 4} {
		out := TaggedSubstrReplace("<b>hello</b>", pos, pos, "X")
		spans, err := Parse(out)
		if err != nil {
			t.Fatalf("pos %d: parse %q: %v", pos, out, err)
		}
		if len(spans) != 1 || spans[0].Name != "b" {
			t.Fatalf("pos %d: expected a single b span in %q, got %+v", pos, out, spans)
		}
	}
}

func TestReplaceContentOffsets(t *testing.T) {
	tests := []struct {
		src        string
		start, end int
		repl       string
		want       string
	}{
		{src: "<b>hello</b>", start: 1, end: 1, repl: "X", want: "<b>hXello</b>"},
		{src: "<b>hello</b>", start: 1, end: 4, repl: "ipp", want: "<b>hippo</b>"},
		{src: "<b>he</b>llo", start: 1, end: 2, repl: "X", want: "<b>hX</b>llo"},
		{src: "<b>he</b>llo", start: 2, end: 2, repl: "X", want: "<b>he</b>Xllo"},
		{src: "<b>hi</b>", start: 2, end: 2, repl: "!", want: "<b>hi!</b>"},
	}
	for _, tc := range tests {
		got, err := Replace(ReplaceRequest{
			Input:       tc.src,
			Start:       tc.start,
			End:         tc.end,
			Replacement: tc.repl,
			Options:     []ReplaceOption{WithContentOffsets(true), WithStrictBounds(true)},
		})
		if err != nil {
			t.Fatalf("Replace(%q, %d, %d): %v", tc.src, tc.start, tc.end, err)
		}
		if got != tc.want {
			t.Fatalf("Replace(%q, %d, %d, %q)\nwant: %q\n got: %q", tc.src, tc.start, tc.end, tc.repl, tc.want, got)
		}
	}
}

func TestReplaceStrictBounds(t *testing.T) {
	_, err := Replace(ReplaceRequest{
		Input:   "<b>hello</b>",
		Start:   5,
		End:     3,
		Options: []ReplaceOption{WithStrictBounds(true)},
	})
	if !errors.Is(err, ErrRangeOrder) {
		t.Fatalf("expected ErrRangeOrder, got %v", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryBadInput) {
		t.Fatalf("expected bad input category, got %v", err)
	}

	_, err = Replace(ReplaceRequest{
		Input:   "<b>hello</b>",
		Start:   0,
		End:     99,
		Options: []ReplaceOption{WithStrictBounds(true)},
	})
	if !errors.Is(err, ErrRangeBounds) {
		t.Fatalf("expected ErrRangeBounds, got %v", err)
	}

	_, err = Replace(ReplaceRequest{
		Input:   "<b>hi</b>",
		Start:   0,
		End:     3,
		Options: []ReplaceOption{WithStrictBounds(true), WithContentOffsets(true)},
	})
	if !errors.Is(err, ErrRangeBounds) {
		t.Fatalf("expected ErrRangeBounds for content range, got %v", err)
	}
}

func TestReplaceTolerantByDefault(t *testing.T) {
	got, err := Replace(ReplaceRequest{
		Input:       "<b>hello</b> world",
		Start:       12,
		End:         5,
		Replacement: "p, big",
	})
	if err != nil {
		t.Fatalf("tolerant replace: %v", err)
	}
	if want := "<b>he</b>p, big world"; got != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, got)
	}

	tests := []struct {
		name    string
		input   string
		start   int
		end     int
		content bool
		want    string
	}{
		{name: "negative tagged range", input: "abc", start: -5, end: -2, want: "Xabc"},
		{name: "negative content range", input: "abc", start: -5, end: -2, content: true, want: "Xabc"},
		{name: "content range past end", input: "<b>hello</b> world", start: 2, end: 99, content: true, want: "<b>he</b>X"},
		{name: "content range wholly past end", input: "<b>ab</b>c", start: 7, end: 9, content: true, want: "<b>ab</b>cX"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Replace(ReplaceRequest{
				Input:       tc.input,
				Start:       tc.start,
				End:         tc.end,
				Replacement: "X",
				Options:     []ReplaceOption{WithContentOffsets(tc.content)},
			})
			if err != nil {
				t.Fatalf("tolerant replace: %v", err)
			}
			if got != tc.want {
				t.Fatalf("unexpected output\nwant: %q\n got: %q", tc.want, got)
			}
		})
	}
}
