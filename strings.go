package diffutil

import (
	"unicode"

	"github.com/pspjuth/DiffUtilTcl/internal/diffcore"
	"github.com/pspjuth/DiffUtilTcl/internal/element"
)

// DiffStrings diffs two strings at character (rune) granularity, 0-based
// like DiffLists. When opts.WordParse is set, change regions are widened
// out to the nearest enclosing run of whitespace on both strings, per
// diffstrings.c's wordparse adjustment.
func DiffStrings(strA, strB string, opts *Options) ([]Chunk, MatchResult) {
	runesA := []rune(strA)
	runesB := []rune(strB)

	left := element.NewCharSource(strA, opts, true)
	right := element.NewCharSource(strB, opts, false)

	j := runLcs(left, right, opts)
	chunks, match := diffcore.BuildResultFromJ(opts, diffcore.Line(left.Len()), diffcore.Line(right.Len()), j)
	toZeroBased(chunks, match)

	if opts.WordParse && opts.ResultStyle == ResultDiff {
		chunks = expandToWordBoundaries(chunks, runesA, runesB)
	}
	return chunks, match
}

// expandToWordBoundaries widens each chunk's span outward, moving both
// sides together one rune at a time, until either side reaches a
// whitespace rune or the edge of the string/previous-next chunk --
// diffstrings.c's CompareStrings1 wordparse
// branch, simplified to operate on a finished chunk list instead of
// interleaving the adjustment into the scan itself.
func expandToWordBoundaries(chunks []Chunk, runesA, runesB []rune) []Chunk {
	out := make([]Chunk, len(chunks))
	prevEnd1, prevEnd2 := diffcore.Line(0), diffcore.Line(0)
	for i, c := range chunks {
		start1, start2 := c.Start1, c.Start2
		end1, end2 := c.Start1+c.N1, c.Start2+c.N2

		for start1 > prevEnd1 && start2 > prevEnd2 &&
			!isSpaceRune(runesA, int(start1-1)) && !isSpaceRune(runesB, int(start2-1)) {
			start1--
			start2--
		}

		var nextStart1, nextStart2 diffcore.Line = diffcore.Line(len(runesA)), diffcore.Line(len(runesB))
		if i+1 < len(chunks) {
			nextStart1, nextStart2 = chunks[i+1].Start1, chunks[i+1].Start2
		}
		for end1 < nextStart1 && end2 < nextStart2 &&
			!isSpaceRune(runesA, int(end1)) && !isSpaceRune(runesB, int(end2)) {
			end1++
			end2++
		}

		out[i] = Chunk{Start1: start1, N1: end1 - start1, Start2: start2, N2: end2 - start2}
		prevEnd1, prevEnd2 = end1, end2
	}
	return out
}

func isSpaceRune(runes []rune, idx int) bool {
	if idx < 0 || idx >= len(runes) {
		return true
	}
	return unicode.IsSpace(runes[idx])
}

// DiffStringsChunks returns the same character diff as DiffStrings, but
// shaped as diffstrings.c's CompareStrings3/DiffStrings2ObjCmd alternating
// flat list: eqA0, eqB0, diffA0, diffB0, eqA1, eqB1, ... Concatenating the
// A-side pieces reproduces strA; likewise for B.
func DiffStringsChunks(strA, strB string, opts *Options) []string {
	chunkOpts := *opts
	chunkOpts.ResultStyle = ResultDiff
	chunks, _ := DiffStrings(strA, strB, &chunkOpts)

	runesA := []rune(strA)
	runesB := []rune(strB)

	var out []string
	pos1, pos2 := 0, 0
	for _, c := range chunks {
		out = append(out, string(runesA[pos1:c.Start1]), string(runesB[pos2:c.Start2]))
		out = append(out, string(runesA[c.Start1:c.Start1+c.N1]), string(runesB[c.Start2:c.Start2+c.N2]))
		pos1 = int(c.Start1 + c.N1)
		pos2 = int(c.Start2 + c.N2)
	}
	out = append(out, string(runesA[pos1:]), string(runesB[pos2:]))
	return out
}
