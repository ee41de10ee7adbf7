package backmatter

import (
	"fmt"

	"github.com/dleemiller/GrammarLee/core/escape"
)

// Line renders the edit as one canonical backmatter line:
//
//	[id] ACTION "old" -> "new" [CATEGORY](comment)
//
// Old and new are double-quoted with the shared escape set, and ')' in the
// comment is escaped. Action-less edits print the action their old/new
// shape implies, defaulting to REPLACE. Lines produced here parse back
// through Parse.
func (e Edit) Line() string {
	action := e.Action
	if action == "" {
		action = inferAction(e.Old, e.New)
	}
	return fmt.Sprintf("[%d] %s %s -> %s [%s](%s)",
		e.ID,
		action,
		escape.Quote(e.Old),
		escape.Quote(e.New),
		e.Category,
		escape.EscapeComment(e.Comment),
	)
}

// inferAction derives a printable action from old/new shape.
func inferAction(old, new string) Action {
	switch {
	case old == "" && new != "":
		return ActionInsert
	case old != "" && new == "":
		return ActionDelete
	default:
		return ActionReplace
	}
}
