package diffutil

import (
	"github.com/pspjuth/DiffUtilTcl/internal/diffcore"
	"github.com/pspjuth/DiffUtilTcl/internal/element"
)

// DiffLists diffs two in-memory element lists. Unlike DiffFiles, the
// result's indices are 0-based, matching difflists.c's "firstIndex = 0"
// convention for Tcl lists.
func DiffLists(listA, listB []string, opts *Options) ([]Chunk, MatchResult) {
	right := element.NewListSource(listB, opts, false)
	left := element.NewListSource(listA, opts, true)

	var leftSrc, rightSrc Source = left, right
	if opts.RFrom1 > 1 || opts.RTo1 > 0 {
		leftSrc = element.Range(left, int(opts.RFrom1), int(opts.RTo1))
	}
	if opts.RFrom2 > 1 || opts.RTo2 > 0 {
		rightSrc = element.Range(right, int(opts.RFrom2), int(opts.RTo2))
	}

	j := runLcs(leftSrc, rightSrc, opts)
	chunks, match := diffcore.BuildResultFromJ(opts, diffcore.Line(leftSrc.Len()), diffcore.Line(rightSrc.Len()), j)
	toZeroBased(chunks, match)
	return chunks, match
}

// toZeroBased shifts a 1-based result down by one in place, since list
// diffing is 0-indexed while file diffing is 1-indexed.
func toZeroBased(chunks []Chunk, match MatchResult) {
	for i := range chunks {
		chunks[i].Start1--
		chunks[i].Start2--
	}
	for i := range match.Left {
		match.Left[i]--
	}
	for i := range match.Right {
		match.Right[i]--
	}
}
