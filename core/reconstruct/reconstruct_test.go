package reconstruct

import (
	"strings"
	"testing"

	"github.com/dleemiller/GrammarLee/core/backmatter"
)

// TestReconstructRebuildsOriginal verifies substituting each anchor with
// its edit's old text recovers the pre-edit original.
func TestReconstructRebuildsOriginal(t *testing.T) {
	inline := "The [student::1] is studying for [their::2] test. She walked quickly[ very::3].\n"
	edits := []backmatter.Edit{
		backmatter.New(1, backmatter.ActionReplace, "students", "student", "GRAMMAR", ""),
		backmatter.New(2, backmatter.ActionReplace, "there", "their", "SPELLING", ""),
		backmatter.New(3, backmatter.ActionInsert, "", " very", "STYLE", ""),
	}

	got := Reconstruct(inline, edits)
	want := "The students is studying for there test. She walked quickly."
	if got != want {
		t.Errorf("Reconstruct = %q, want %q", got, want)
	}
}

// TestReconstructFallsBackToPayload verifies an anchor with no matching
// edit keeps its own unescaped payload.
func TestReconstructFallsBackToPayload(t *testing.T) {
	edits := []backmatter.Edit{
		backmatter.New(1, backmatter.ActionReplace, "cat", "dog", "WORD", ""),
	}

	got := Reconstruct("The [dog::1] and the [bird::9].", edits)
	want := "The cat and the bird."
	if got != want {
		t.Errorf("Reconstruct = %q, want %q", got, want)
	}
}

// TestReconstructDuplicateIDLastWins verifies the lookup keeps the last
// old text when edits share an ID.
func TestReconstructDuplicateIDLastWins(t *testing.T) {
	edits := []backmatter.Edit{
		backmatter.New(1, backmatter.ActionReplace, "first", "x", "WORD", ""),
		backmatter.New(1, backmatter.ActionReplace, "second", "x", "WORD", ""),
	}

	got := Reconstruct("a [x::1] b", edits)
	want := "a second b"
	if got != want {
		t.Errorf("Reconstruct = %q, want %q", got, want)
	}
}

// TestVerifyExactMatch verifies a faithful reconstruction reports nothing.
func TestVerifyExactMatch(t *testing.T) {
	inline := "The [dog::1] barks."
	edits := []backmatter.Edit{
		backmatter.New(1, backmatter.ActionReplace, "cat", "dog", "WORD", ""),
	}

	if msgs := Verify(inline, edits, "The cat barks."); msgs != nil {
		t.Errorf("Verify = %v, want nil", msgs)
	}
}

// TestVerifyMismatchReportsDiff verifies a divergent old side yields
// exactly one message containing a unified diff of the two texts.
func TestVerifyMismatchReportsDiff(t *testing.T) {
	inline := "The [cat::1] sat."
	edits := []backmatter.Edit{
		backmatter.New(1, backmatter.ActionReplace, "bird", "cat", "WORD", ""),
	}

	msgs := Verify(inline, edits, "The dog sat.")
	if len(msgs) != 1 {
		t.Fatalf("Verify returned %d messages, want 1: %v", len(msgs), msgs)
	}
	msg := msgs[0]
	if !strings.Contains(msg, "reconstruction mismatch") {
		t.Errorf("message %q lacks the mismatch marker", msg)
	}
	if !strings.Contains(msg, "-The dog sat.") || !strings.Contains(msg, "+The bird sat.") {
		t.Errorf("message lacks diff lines:\n%s", msg)
	}
}

// TestVerifyMultilineDiff verifies only diverging lines show up, with the
// configured context.
func TestVerifyMultilineDiff(t *testing.T) {
	inline := "line one\nline [two::1]\nline three"
	edits := []backmatter.Edit{
		backmatter.New(1, backmatter.ActionReplace, "TWO", "two", "STYLE", ""),
	}
	original := "line one\nline 2\nline three"

	msgs := Verify(inline, edits, original)
	if len(msgs) != 1 {
		t.Fatalf("Verify returned %d messages, want 1", len(msgs))
	}
	if !strings.Contains(msgs[0], "-line 2") || !strings.Contains(msgs[0], "+line TWO") {
		t.Errorf("unexpected diff:\n%s", msgs[0])
	}
}
