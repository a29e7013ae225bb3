package diffutil

import "github.com/pspjuth/DiffUtilTcl/internal/diffcore"

// Source is the shape every diffutil operation hands to diffcore: a
// finite ordered element sequence with hashes and raw text, built by
// internal/element's adapters.
type Source = diffcore.Source

// verifyJ re-examines every match LcsCore proposed and clears any where
// the two elements' text doesn't actually satisfy CompareElements --
// matching hashes aren't the same guarantee as an exact match once ignore
// flags are in play. Mirrors CompareFiles/CompareLists's post-LcsCore
// verification loop in difffiles.c/difflists.c.
func verifyJ(left, right Source, j []diffcore.Line, opts *diffcore.Options) {
	for i := 1; i < len(j); i++ {
		if j[i] == 0 {
			continue
		}
		if !diffcore.CompareElements(left.Text(i), right.Text(int(j[i])), opts) {
			j[i] = 0
		}
	}
}

// runLcs is the shared Prepare+LcsCore+verify sequence used by every
// operation that diffs two element sources.
func runLcs(left, right Source, opts *diffcore.Options) []diffcore.Line {
	m, n, p, e := diffcore.Prepare(left, right, opts)
	if m == 0 || n == 0 {
		return make([]diffcore.Line, m+1)
	}
	j := diffcore.LcsCore(m, n, p, e, opts)
	verifyJ(left, right, j, opts)
	return j
}
