// Package backmatter models the structured edit records that accompany
// annotated inline text, and parses the textual backmatter grammar:
//
//	[ID] ACTION "OLD" -> "NEW" [CATEGORY](COMMENT)
//
// Edits also arrive pre-structured from producers that never emit the
// textual grammar; those records carry no action and their old/new shape
// is not judged.
package backmatter

// Action identifies what kind of change an edit claims to make.
type Action string

// Edit actions. The zero value means the producer supplied no action.
const (
	ActionReplace Action = "REPLACE"
	ActionInsert  Action = "INSERT"
	ActionDelete  Action = "DELETE"
)

// validCategories is the fixed whitelist for Edit.Category. Membership is
// a soft quality signal, never a parse constraint.
var validCategories = map[string]bool{
	"GRAMMAR":     true,
	"SPELLING":    true,
	"PUNCTUATION": true,
	"STYLE":       true,
	"CLARITY":     true,
	"WORD":        true,
	"WORDINESS":   true,
}

// IsValidCategory reports whether category is in the fixed whitelist
// (GRAMMAR, SPELLING, PUNCTUATION, STYLE, CLARITY, WORD, WORDINESS).
func IsValidCategory(category string) bool {
	return validCategories[category]
}

// Edit describes one proposed change. Edits are immutable once built;
// use New or NewDirect so the derived flags are populated.
type Edit struct {
	// ID links the edit to an inline anchor. Not required to be unique;
	// duplicates are preserved because duplicate detection is a quality
	// signal computed downstream.
	ID int `json:"id"`

	// Action is the claimed change kind, or empty for edits supplied
	// directly by a producer without the textual grammar.
	Action Action `json:"action,omitempty"`

	// Old is the text being changed, already unescaped. Empty for inserts.
	Old string `json:"old"`

	// New is the replacement text, already unescaped. Empty for deletes.
	New string `json:"new"`

	// Category is a free-form label; see ValidCategory.
	Category string `json:"category"`

	// Comment is the free-text rationale.
	Comment string `json:"comment"`

	// ValidCategory records whether Category is in the fixed whitelist.
	ValidCategory bool `json:"is_valid_category"`

	// ConsistencyOK records whether Old/New shape matches Action. Edits
	// without an action are not judged and report true. Soft signal only:
	// it never contributes to document-level errors.
	ConsistencyOK bool `json:"consistency_ok"`
}

// New builds an action-tagged edit and computes its derived flags.
func New(id int, action Action, old, new, category, comment string) Edit {
	return Edit{
		ID:            id,
		Action:        action,
		Old:           old,
		New:           new,
		Category:      category,
		Comment:       comment,
		ValidCategory: IsValidCategory(category),
		ConsistencyOK: consistent(action, old, new),
	}
}

// NewDirect builds an edit supplied without an action, as produced by the
// direct (non-grammar) producer path. Shape consistency is not judged.
func NewDirect(id int, old, new, category, comment string) Edit {
	return New(id, "", old, new, category, comment)
}

// consistent applies the shape rules: REPLACE needs both sides non-empty,
// INSERT needs an empty old side, DELETE an empty new side. An absent
// action is not judged; an unrecognized action never passes.
func consistent(action Action, old, new string) bool {
	switch action {
	case "":
		return true
	case ActionReplace:
		return old != "" && new != ""
	case ActionInsert:
		return old == "" && new != ""
	case ActionDelete:
		return old != "" && new == ""
	default:
		return false
	}
}
