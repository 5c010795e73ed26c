package tagtext

import "testing"

func TestFixOldTags(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "drops non keyword", src: "<foo>text</>", want: "text"},
		{name: "types keyword close", src: "<kw-1>text</>", want: "<kw-1>text</kw-1>"},
		{name: "nested drop inside keep", src: "<kw-1>a<foo>b</>c</>", want: "<kw-1>abc</kw-1>"},
		{name: "atom and kw", src: "<atom>x<kwd>y</></>", want: "<atom>x<kwd>y</kwd></atom>"},
		{name: "style tags dropped", src: "<b>bold</> and <kw-2>kw</>", want: "bold and <kw-2>kw</kw-2>"},
		{name: "pop on empty stack", src: "</>stray<kw>x</>", want: "stray<kw>x</kw>"},
		{name: "typed close follows open", src: "<kw-1>a</kw-1><foo>b</foo>", want: "<kw-1>a</kw-1>b"},
		{name: "typed close without open", src: "a</kw-3></foo>", want: "a</kw-3>"},
		{name: "unterminated tail", src: "<kw>a</><x", want: "<kw>a</kw><x"},
		{name: "escaped text", src: "<kw>a\x01b</>", want: "<kw>a\x01b</kw>"},
		{name: "plain", src: "no tags", want: "no tags"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := FixOldTags(tc.src); got != tc.want {
				t.Fatalf("FixOldTags(%q)\nwant: %q\n got: %q", tc.src, tc.want, got)
			}
		})
	}
}

func TestFixOldTagsOutputValidates(t *testing.T) {
	src := "<kw-1>if</> <foo>x <atom-2>y</> z</> <kw-3>end</>"
	out := FixOldTags(src)
	if err := Validate(out); err != nil {
		t.Fatalf("converted text should validate, got %v (%q)", err, out)
	}
	if Untag(out) != Untag(src) {
		t.Fatalf("content changed: %q vs %q", Untag(out), Untag(src))
	}
}
