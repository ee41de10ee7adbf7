package backmatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/dleemiller/GrammarLee/core/escape"
)

// bmLexer tokenizes one backmatter line. Rules are tried in order, so the
// ID form must precede the general bracketed form.
var bmLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t]+`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"|'(?:\\.|[^'\\])*'`},
	{Name: "Comment", Pattern: `\((?:\\.|[^)\\])*\)`},
	{Name: "IDRef", Pattern: `\[[1-9][0-9]*\]`},
	{Name: "Bracketed", Pattern: `\[[^\]]*\]`},
	{Name: "Word", Pattern: `[A-Z]+`},
})

// editID captures a bracketed anchor ID token such as "[12]".
type editID int

// Capture implements participle.Capture.
func (e *editID) Capture(values []string) error {
	id, err := strconv.Atoi(strings.Trim(values[0], "[]"))
	if err != nil {
		return fmt.Errorf("edit id %q: %w", values[0], err)
	}
	*e = editID(id)
	return nil
}

// quoted captures a single- or double-quoted string, unescaping the shared
// escape set (which covers both quote styles).
type quoted string

// Capture implements participle.Capture.
func (q *quoted) Capture(values []string) error {
	raw := values[0]
	*q = quoted(escape.Unescape(raw[1 : len(raw)-1]))
	return nil
}

// bracketed captures a category token with its brackets stripped. The
// grammar places no constraint on the label; validity is judged downstream.
type bracketed string

// Capture implements participle.Capture.
func (b *bracketed) Capture(values []string) error {
	*b = bracketed(strings.TrimSuffix(strings.TrimPrefix(values[0], "["), "]"))
	return nil
}

// comment captures a parenthesized comment. The body ends at the first
// unescaped ')'; the only escape sequence is `\)` for a literal ')'.
type comment string

// Capture implements participle.Capture.
func (c *comment) Capture(values []string) error {
	raw := values[0]
	*c = comment(strings.ReplaceAll(raw[1:len(raw)-1], `\)`, `)`))
	return nil
}

// line is the participle grammar for one backmatter entry:
//
//	[ID] ACTION "OLD" -> "NEW" [CATEGORY](COMMENT)
type line struct {
	ID       editID    `parser:"@IDRef"`
	Action   string    `parser:"@('REPLACE' | 'INSERT' | 'DELETE')"`
	Old      quoted    `parser:"@String"`
	New      quoted    `parser:"Arrow @String"`
	Category bracketed `parser:"@(Bracketed | IDRef)"`
	Comment  comment   `parser:"@Comment"`
}

// lineParser is built once and reused for every call; it is immutable
// after construction and safe for concurrent use.
var lineParser = participle.MustBuild[line](
	participle.Lexer(bmLexer),
	participle.Elide("Whitespace"),
)

// Parse parses a backmatter block into edits, one per non-blank line, in
// file order. Duplicate IDs are preserved as written.
//
// Blank or whitespace-only input yields (nil, nil). Failure is reported at
// block granularity: if any single line violates the grammar, Parse
// returns zero edits with the offending line's error, never a partial
// result. Callers that only have the block text can detect this case by
// comparing a non-empty block against an empty edit list.
func Parse(text string) ([]Edit, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	var edits []Edit
	for _, raw := range strings.Split(text, "\n") {
		raw = strings.TrimSuffix(raw, "\r")
		if strings.TrimSpace(raw) == "" {
			continue
		}
		ln, err := lineParser.ParseString("", raw)
		if err != nil {
			return nil, fmt.Errorf("backmatter line %q: %w", raw, err)
		}
		edits = append(edits, New(
			int(ln.ID),
			Action(ln.Action),
			string(ln.Old),
			string(ln.New),
			string(ln.Category),
			string(ln.Comment),
		))
	}
	return edits, nil
}
