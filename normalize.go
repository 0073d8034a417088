package apicheck

import "strings"

// substitutions are applied in order on every normalization pass.
var substitutions = []struct {
	old, new string
}{
	// Entities left behind by double-escaped markup. The parser decodes
	// &nbsp; to U+00A0, which is folded to a plain space as well.
	{"&nbsp;", " "},
	{"\u00a0", " "},
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
	{"&#39;", "'"},

	{"  ", " "},

	// Spacing around signature punctuation.
	{" ::", "::"},
	{":: ", "::"},
	{" (", "("},
	{"( ", "("},
	{" )", ")"},
	{" <", "<"},
	{" >", ">"},
	{"& ", "&"},
	{"? ", "?"},
	{" ,", ","},

	{"\n", ""},
}

// Normalize cleans up signature text extracted from rustdoc markup. It decodes
// a fixed set of HTML entities, collapses whitespace, removes spaces around
// signature punctuation and trims the result. Passes repeat until the text
// stops changing, so Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	for {
		next := s
		for _, sub := range substitutions {
			next = strings.ReplaceAll(next, sub.old, sub.new)
		}
		next = strings.TrimSpace(next)
		if next == s {
			return next
		}
		s = next
	}
}
