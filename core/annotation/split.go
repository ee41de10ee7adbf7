package annotation

import (
	"regexp"
	"strings"
	"unicode"
)

// Delimiter is the literal marker separating the inline block from the
// backmatter block. It must stand on a line of its own; surrounding
// spaces and tabs on that line are tolerated.
const Delimiter = "--- BACKMATTER ---"

// delimiterLine matches a line consisting only of the delimiter and
// optional horizontal whitespace. Case-sensitive.
var delimiterLine = regexp.MustCompile(`(?m)^[ \t]*` + regexp.QuoteMeta(Delimiter) + `[ \t]*\r?$`)

// SplitDocument separates a raw document into its inline block and
// backmatter block on the first delimiter line. Only the first occurrence
// is honored even if the marker recurs. The backmatter block is returned
// with leading whitespace stripped. Without a delimiter the whole input is
// the inline block.
func SplitDocument(doc string) (inline, backmatter string) {
	loc := delimiterLine.FindStringIndex(doc)
	if loc == nil {
		return doc, ""
	}
	return doc[:loc[0]], strings.TrimLeftFunc(doc[loc[1]:], unicode.IsSpace)
}

// ComposeDocument is the inverse of SplitDocument: it joins an inline
// block and a backmatter block into one document. A blank backmatter block
// yields the inline text unchanged.
func ComposeDocument(inline, backmatter string) string {
	if strings.TrimSpace(backmatter) == "" {
		return inline
	}
	return strings.TrimRight(inline, "\r\n") + "\n\n" + Delimiter + "\n" + strings.TrimSpace(backmatter) + "\n"
}
