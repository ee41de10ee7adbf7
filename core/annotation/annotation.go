// Package annotation is the entry point for parsing and validating
// two-part edit-annotation documents: an inline block carrying positional
// anchors, and an optional backmatter block describing each edit.
//
// The package is total over arbitrary input. It scores untrusted,
// frequently malformed generator output inside automated loops, so every
// call returns a ParseResult and never panics; anomalies are collected as
// structural error strings on the result.
package annotation

import (
	"github.com/dleemiller/GrammarLee/core/anchor"
	"github.com/dleemiller/GrammarLee/core/backmatter"
)

// Producer is the record handed over by an upstream generator. All fields
// are optional; zero values are the defaults. It is consumed through the
// Parse adapter only, never passed deeper into the engine.
type Producer struct {
	// EditedText is the inline text containing anchors.
	EditedText string `json:"edited_text"`

	// Edits are pre-structured edit records, for producers that bypass
	// the textual backmatter grammar. Build them with backmatter.NewDirect
	// (or backmatter.New when an action is known) so derived flags are set.
	Edits []backmatter.Edit `json:"edits,omitempty"`

	// BackmatterText is the raw backmatter block, kept for consumers that
	// score its presence.
	BackmatterText string `json:"backmatter_text,omitempty"`
}

// ParseResult is the immutable snapshot assembled by one parse call. The
// caller owns it exclusively.
//
// Errors is empty exactly when the cardinality and ID-set checks pass and,
// if attempted, reconstruction succeeds. Per-edit soft flags (category
// validity, shape consistency) are independent of Errors.
type ParseResult struct {
	// InlineText is the inline block as received, anchors included.
	InlineText string `json:"inline_text"`

	// BackmatterText is the raw backmatter block, empty if absent.
	BackmatterText string `json:"backmatter_text"`

	// FinalText is the rendered result of applying every anchor.
	FinalText string `json:"final_text"`

	// Anchors are the inline anchors in document order, duplicates kept.
	Anchors []anchor.Anchor `json:"anchors"`

	// Edits are the edit records in document order, duplicates kept.
	Edits []backmatter.Edit `json:"edits"`

	// Errors are the document-level structural errors. A document with a
	// non-empty Errors list is invalid; soft per-edit flags never appear
	// here.
	Errors []string `json:"errors"`
}
