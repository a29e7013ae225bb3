// Public domain, ported from pspjuth/DiffUtilTcl.

// Package diffutil exposes the five public operations of DiffUtilTcl:
// byte-identity file comparison, file/list/string diffing, and the
// string substring-chunk trace. It wires internal/element sources into
// internal/diffcore's LCS engine and turns the resulting J vector into a
// Chunk list or a MatchResult.
package diffutil

import "github.com/pspjuth/DiffUtilTcl/internal/diffcore"

// Re-exported so callers never need to import internal/diffcore directly.
type (
	Options     = diffcore.Options
	IgnoreFlag  = diffcore.IgnoreFlag
	ResultStyle = diffcore.ResultStyle
	AlignPin    = diffcore.AlignPin
	RegsubRule  = diffcore.RegsubRule
	Chunk       = diffcore.Chunk
	MatchResult = diffcore.MatchResult
	BadArgument = diffcore.BadArgument
	BadInput    = diffcore.BadInput
	// Line is the position type underlying Chunk and MatchResult's fields.
	Line = diffcore.Line
)

const (
	IgnoreAllSpace    = diffcore.IgnoreAllSpace
	IgnoreSpaceChange = diffcore.IgnoreSpaceChange
	IgnoreCase        = diffcore.IgnoreCase
	IgnoreNumbers     = diffcore.IgnoreNumbers
)

const (
	ResultDiff  = diffcore.ResultDiff
	ResultMatch = diffcore.ResultMatch
)

// DefaultOptions mirrors DiffUtilTcl's InitDiffOptions_T macro.
func DefaultOptions() Options { return diffcore.DefaultOptions() }
