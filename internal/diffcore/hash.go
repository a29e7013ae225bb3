package diffcore

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// foldCaser performs full Unicode case folding for IGNORE_CASE, instead
// of the byte-at-a-time unicode.ToLower DiffUtilTcl used -- this gets
// multi-rune foldings (e.g. German sharp S) right where ToLower does not.
var foldCaser = cases.Fold()

// mix is DiffUtilTcl's hash step: HASH_ADD(hash, character) == hash += (hash << 7) + character.
// "The hash algorithm is currently very simplistic and can probably be
// replaced by something better without losing speed." -- kept verbatim,
// since property tests (spec.md S1-S6) depend on its exact collisions.
func mix(h, v Hash) Hash {
	return h + (h << 7) + v
}

// rawHash hashes raw bytes, used for realhash: an element's hash ignoring
// every ignore flag, used only to break ties in favour of exact matches.
func rawHash(s string) Hash {
	var h Hash
	for i := 0; i < len(s); i++ {
		h = mix(h, Hash(s[i]))
	}
	return h
}

type spaceState int

const (
	stateNone spaceState = iota
	stateSpace
	stateNumber
)

// filterState carries the IGNORE_SPACE_CHANGE/IGNORE_NUMBERS run-collapsing
// state across calls to nextFiltered. Starting in stateSpace makes
// IGNORE_SPACE_CHANGE also eat a line's leading whitespace.
type filterState struct {
	s spaceState
}

// nextFiltered returns the next code point that survives the ignore-flag
// filters, or ok=false at a line feed or end of input. A line feed always
// terminates the sequence, matching Hash's "a line-feed terminates the
// hash input".
func nextFiltered(runes []rune, idx *int, ignore IgnoreFlag, st *filterState) (rune, bool) {
	ignoreAllSpace := ignore&IgnoreAllSpace != 0
	ignoreSpace := ignore&IgnoreSpaceChange != 0
	ignoreNum := ignore&IgnoreNumbers != 0

	for *idx < len(runes) {
		c := runes[*idx]
		*idx++
		if c == '\n' {
			return 0, false
		}
		if unicode.IsSpace(c) {
			if ignoreAllSpace {
				continue
			}
			if ignoreSpace && st.s == stateSpace {
				continue
			}
			if ignoreSpace {
				c = ' '
			}
			st.s = stateSpace
			return c, true
		}
		if ignoreNum && unicode.IsDigit(c) {
			if st.s == stateNumber {
				continue
			}
			c = '0'
			st.s = stateNumber
			return c, true
		}
		st.s = stateNone
		return c, true
	}
	return 0, false
}

func filteredHash(s string, ignore IgnoreFlag) Hash {
	if ignore&IgnoreCase != 0 {
		s = foldCaser.String(s)
	}
	runes := []rune(s)
	idx := 0
	st := &filterState{s: stateSpace}
	var h Hash
	for {
		c, ok := nextFiltered(runes, &idx, ignore, st)
		if !ok {
			break
		}
		h = mix(h, Hash(c))
	}
	return h
}

// ComputeHash reduces an element's text to its matching hash and real
// (exact-content) hash, applying the side's regsub rules first. An empty
// input (after substitution) yields hash=0, realhash=0.
func ComputeHash(text string, opts *Options, left bool) (hash, realhash Hash) {
	rules := opts.RegsubRight
	if left {
		rules = opts.RegsubLeft
	}
	substituted := applyRegsub(text, rules)
	realhash = rawHash(substituted)
	if opts.Ignore == 0 {
		// A line feed ends the matching hash's input, as in nextFiltered.
		if nl := strings.IndexByte(substituted, '\n'); nl >= 0 {
			hash = rawHash(substituted[:nl])
		} else {
			hash = realhash
		}
		return
	}
	hash = filteredHash(substituted, opts.Ignore)
	return
}
