// Package anchor scans inline annotation text for edit anchors and renders
// the edited result.
//
// An anchor is a bracketed token of the form [new-text::id] marking the
// location of one proposed edit. Empty new-text marks a deletion. IDs are
// positive decimal integers with no leading zero.
package anchor

import (
	"strconv"
	"strings"
)

// Kind classifies what an anchor does to the text at its position.
type Kind string

// Anchor kinds.
const (
	// KindReplaceOrInsert carries replacement or inserted text.
	KindReplaceOrInsert Kind = "replace_or_insert"

	// KindDelete marks text that was removed; its payload is empty.
	KindDelete Kind = "delete"
)

// Anchor is one inline edit marker. Anchors are value objects: they are
// produced by Scan and never mutated afterwards.
type Anchor struct {
	// ID is the positive integer linking the anchor to a backmatter edit.
	// IDs are not guaranteed unique; duplicates are preserved as found.
	ID int `json:"id"`

	// Kind is KindDelete when NewText is empty, KindReplaceOrInsert otherwise.
	Kind Kind `json:"kind"`

	// NewText is the raw anchor payload. Escape sequences are expanded at
	// render time, not here.
	NewText string `json:"new_text"`

	// Start and End are the byte offsets of the full bracketed token
	// within the inline text, such that inline[Start:End] == "[...]".
	Start int `json:"start"`
	End   int `json:"end"`
}

// Scan walks the inline text once, left to right, and returns every anchor
// in document order. It maintains a bracket depth: an anchor token is only
// recognized when its opening bracket sits at depth zero. A '[' that does
// not start a valid token increases the depth; a ']' decreases it, floored
// at zero. A malformed nested sequence such as "[a[b::1]" therefore yields
// no anchors at all: the outer bracket raises the depth and the inner
// candidate is never tried at depth zero.
//
// Scan never fails; text that matches nothing is simply text.
func Scan(inline string) []Anchor {
	var anchors []Anchor
	depth := 0
	for i := 0; i < len(inline); {
		switch inline[i] {
		case '[':
			if depth == 0 {
				if a, ok := matchToken(inline, i); ok {
					anchors = append(anchors, a)
					i = a.End
					continue
				}
			}
			depth++
			i++
		case ']':
			if depth > 0 {
				depth--
			}
			i++
		default:
			i++
		}
	}
	return anchors
}

// matchToken attempts to read a complete anchor token starting at the '['
// at inline[start]. The token body runs to the first following bracket,
// which must be the closing ']'. The ID is the suffix after the last "::"
// and must be a positive integer without a leading zero; everything before
// that separator is the payload.
func matchToken(inline string, start int) (Anchor, bool) {
	i := start + 1
	for i < len(inline) && inline[i] != '[' && inline[i] != ']' {
		i++
	}
	if i >= len(inline) || inline[i] != ']' {
		return Anchor{}, false
	}
	body := inline[start+1 : i]

	sep := strings.LastIndex(body, "::")
	if sep < 0 {
		return Anchor{}, false
	}
	id, ok := parseID(body[sep+2:])
	if !ok {
		return Anchor{}, false
	}

	a := Anchor{
		ID:      id,
		Kind:    KindReplaceOrInsert,
		NewText: body[:sep],
		Start:   start,
		End:     i + 1,
	}
	if a.NewText == "" {
		a.Kind = KindDelete
	}
	return a, true
}

// parseID validates and converts an anchor ID. Zero and leading zeros are
// rejected, so "[x::0]" and "[x::01]" never scan as anchors.
func parseID(s string) (int, bool) {
	if s == "" || s[0] == '0' {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return id, true
}
