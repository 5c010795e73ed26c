// Package tagtext edits text that carries its formatting in-band as
// angle-bracket tags, for example "plain <b>bold</b> and <kw-1>if</kw-1>".
//
// There is no tree: a tagged string is ordinary text in which every run from
// '<' to the next '>' is a tag. A tag name may carry one parameter after a
// '-' ("kw-1" has type "kw"), a close tag repeats the open name after a '/',
// and a literal '<' in the text is stored as EscapedLT. Escape and Untag
// convert between plain and tagged text.
//
// Core properties:
//   - Pure functions over immutable strings; safe for concurrent use
//   - Offsets are byte offsets; every structural character is one byte
//   - Tolerant: malformed input yields NotFound or best-effort output, never
//     a panic. Validate and Parse are the strict entry points.
//
// Example:
//
//	s := "<b>hello</b> world"
//	s = tagtext.TaggedSubstrReplace(s, 5, 12, "p, big")
//	// s == "<b>he</b>p, big world"
//	fmt.Println(tagtext.Untag(s))
//
// Old documents that close every tag with "</>" are converted once with
// FixOldTags. SimplifyTagged collapses tag sequences that cancel out and
// style tags that re-open a style already in effect.
package tagtext
