package anchor

import (
	"strings"

	"github.com/dleemiller/GrammarLee/core/escape"
)

// Substitute rewrites the inline text by replacing every scanned anchor
// token with repl(anchor), leaving all other characters untouched. The
// trailing run of carriage returns and newlines is stripped from the end
// of the whole result; interior newlines are preserved verbatim.
func Substitute(inline string, repl func(Anchor) string) string {
	anchors := Scan(inline)
	if len(anchors) == 0 {
		return strings.TrimRight(inline, "\r\n")
	}

	var b strings.Builder
	b.Grow(len(inline))
	last := 0
	for _, a := range anchors {
		b.WriteString(inline[last:a.Start])
		b.WriteString(repl(a))
		last = a.End
	}
	b.WriteString(inline[last:])
	return strings.TrimRight(b.String(), "\r\n")
}

// Render produces the final edited text: every anchor is replaced by its
// unescaped payload, which is empty for deletions.
func Render(inline string) string {
	return Substitute(inline, func(a Anchor) string {
		return escape.Unescape(a.NewText)
	})
}
