// Package reconstruct rebuilds the hypothesized pre-edit original from an
// annotated inline text plus the edits' old sides, and checks it against
// the true original. It is the correctness oracle for the annotation
// format: rendering every anchor with its new text must reproduce the
// edited text, and rendering with the old text must reproduce the
// original, or the edits are not faithfully invertible.
package reconstruct

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/dleemiller/GrammarLee/core/anchor"
	"github.com/dleemiller/GrammarLee/core/backmatter"
	"github.com/dleemiller/GrammarLee/core/escape"
)

// Reconstruct substitutes each anchor with the Old text of the edit
// sharing its ID and returns the spliced result, with the same trailing
// newline strip the renderer applies. When several edits share an ID the
// last one wins. An anchor with no matching edit falls back to its own
// unescaped payload; that condition is separately reported by the ID-set
// validation.
func Reconstruct(inline string, edits []backmatter.Edit) string {
	old := make(map[int]string, len(edits))
	for _, e := range edits {
		old[e.ID] = e.Old
	}
	return anchor.Substitute(inline, func(a anchor.Anchor) string {
		if s, ok := old[a.ID]; ok {
			return s
		}
		return escape.Unescape(a.NewText)
	})
}

// Verify reconstructs the original from inline text and edits and compares
// it byte for byte against the supplied original. It returns nil on an
// exact match and otherwise a single descriptive message carrying a
// unified diff of the two texts, falling back to a length comparison when
// the line diff renders empty. Any internal failure is converted into a
// message rather than propagated.
func Verify(inline string, edits []backmatter.Edit, original string) (msgs []string) {
	defer func() {
		if r := recover(); r != nil {
			msgs = []string{fmt.Sprintf("reconstruction check failed: %v", r)}
		}
	}()

	rebuilt := Reconstruct(inline, edits)
	if rebuilt == original {
		return nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(rebuilt),
		FromFile: "original",
		ToFile:   "reconstructed",
		Context:  3,
	})
	if err != nil {
		return []string{fmt.Sprintf("reconstruction mismatch: diff unavailable: %v", err)}
	}
	if strings.TrimSpace(diff) == "" {
		return []string{fmt.Sprintf(
			"reconstruction mismatch: original is %d bytes, reconstructed is %d bytes",
			len(original), len(rebuilt),
		)}
	}
	return []string{"reconstruction mismatch:\n" + diff}
}
