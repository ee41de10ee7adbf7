package annotation

import (
	"fmt"
	"strings"

	"github.com/dleemiller/GrammarLee/core/anchor"
	"github.com/dleemiller/GrammarLee/core/backmatter"
	"github.com/dleemiller/GrammarLee/core/reconstruct"
)

// Parse processes a producer record: it scans the inline text for anchors,
// renders the final text, and cross-validates anchors against the
// producer's edits. This is the direct path; the edits arrive
// pre-structured and the backmatter grammar is never consulted.
//
// A non-empty original activates the reconstruction check when edits are
// present; pass "" when the true pre-edit text is unknown. Parse never
// fails: malformed input surfaces on ParseResult.Errors.
func Parse(p Producer, original string) *ParseResult {
	return assemble(p.EditedText, p.BackmatterText, p.Edits, original)
}

// ParseDocument processes a raw two-part document: it splits on the
// backmatter delimiter, parses the backmatter block through the grammar,
// and then runs the same validation pipeline as Parse. A backmatter block
// that fails the grammar contributes zero edits and a structural error.
//
// A non-empty original activates the reconstruction check when edits are
// present; pass "" when the true pre-edit text is unknown.
func ParseDocument(doc, original string) *ParseResult {
	inline, bm := SplitDocument(doc)
	edits, _ := backmatter.Parse(bm)
	return assemble(inline, bm, edits, original)
}

// assemble runs the shared pipeline and packages the snapshot.
func assemble(inline, bmText string, edits []backmatter.Edit, original string) *ParseResult {
	anchors := anchor.Scan(inline)
	res := &ParseResult{
		InlineText:     inline,
		BackmatterText: bmText,
		FinalText:      anchor.Render(inline),
		Anchors:        anchors,
		Edits:          edits,
		Errors:         []string{},
	}
	res.Errors = append(res.Errors, validate(anchors, edits, bmText)...)
	if original != "" && len(edits) > 0 {
		res.Errors = append(res.Errors, reconstruct.Verify(inline, edits, original)...)
	}
	return res
}

// validate computes the document-level structural errors. The cardinality
// and ID-set checks only apply when edits were supplied at all, so an
// edit-free exploratory parse stays error-free.
func validate(anchors []anchor.Anchor, edits []backmatter.Edit, bmText string) []string {
	var errs []string
	if len(edits) > 0 {
		if len(edits) != len(anchors) {
			errs = append(errs, fmt.Sprintf(
				"edit/anchor count mismatch: %d edits for %d anchors", len(edits), len(anchors)))
		}
		if !sameIDSets(anchors, edits) {
			errs = append(errs, "anchor/edit ID sets differ")
		}
	}
	if strings.TrimSpace(bmText) != "" && len(edits) == 0 {
		errs = append(errs, "backmatter failed to parse")
	}
	return errs
}

// sameIDSets compares the set of anchor IDs against the set of edit IDs.
// Duplicates collapse; set equality is what coverage requires.
func sameIDSets(anchors []anchor.Anchor, edits []backmatter.Edit) bool {
	anchorIDs := make(map[int]bool, len(anchors))
	for _, a := range anchors {
		anchorIDs[a.ID] = true
	}
	editIDs := make(map[int]bool, len(edits))
	for _, e := range edits {
		editIDs[e.ID] = true
	}
	if len(anchorIDs) != len(editIDs) {
		return false
	}
	for id := range anchorIDs {
		if !editIDs[id] {
			return false
		}
	}
	return true
}
