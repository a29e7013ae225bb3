package diffcore

// Prepare builds the V/E/P vectors for a pair of sources: right becomes
// the sorted V/E equivalence-class table, left becomes P, pointing into
// it. This is the Go equivalent of difffiles.c/difflists.c/diffstrings.c's
// "ReadAndHashFiles"-style setup, generalised over any Source.
func Prepare(left, right Source, opts *Options) (m, n Line, p []PEntry, e []EEntry) {
	n = Line(right.Len())
	v := buildV(right, opts)
	e = buildE(v, int(n))
	m = Line(left.Len())
	p = buildP(left, opts, v, e, int(n))
	return m, n, p, e
}

// absLine is the integer absolute value helper for the secondary score.
func absLine(v Line) Line {
	if v < 0 {
		return -v
	}
	return v
}

// lcsCoreInner runs the merge/score/select/build pipeline without
// touching forbidden-line bookkeeping; it respects P/E's Forbidden flags
// (by simply never merging a forbidden left element) but does not mark
// or clear any. Returns J and whether any forbidden element was skipped.
func lcsCoreInner(m, n Line, p []PEntry, e []EEntry, opts *Options) (j []Line, anyForbidden bool) {
	arena := newCandidateArena()
	kv := &kVector{}
	kv.set(0, arena.new(0, 0, 0, nil, nil))
	kv.set(1, arena.new(m+1, n+1, 0, nil, nil))
	k := Line(0)

	for i := Line(1); i <= m; i++ {
		if p[i].Eindex == 0 {
			continue
		}
		if p[i].Forbidden {
			anyForbidden = true
			continue
		}
		merge(arena, kv, &k, i, p, e, p[i].Eindex, opts, m, n)
	}

	scoreCandidates(k, kv, p)

	j = make([]Line, m+1)

	c := kv.get(k)
	if c.Peer != nil {
		bestc := c
		var bestPrimary int64 = 1 << 60
		var bestSecondary Line = 1 << 30
		for cand := c; cand != nil; cand = cand.Peer {
			primary := cand.Score
			secondary := absLine((m - cand.Line1) - (n - cand.Line2))
			if alt := absLine(cand.Line1 - cand.Line2); alt < secondary {
				secondary = alt
			}
			if p[cand.Line1].Realhash != cand.Realhash {
				secondary += 100
			}
			if primary < bestPrimary || (primary == bestPrimary && secondary < bestSecondary) {
				bestPrimary = primary
				bestSecondary = secondary
				bestc = cand
			}
		}
		c = bestc
	}

	for c != nil {
		if c.Line1 < 0 || c.Line1 > m {
			panic("diffcore: candidate line1 out of range while building J vector")
		}
		j[c.Line1] = c.Line2
		c = c.Prev
	}
	return j, anyForbidden
}

// LcsCore is the full LCS engine entry point (spec.md component E plus
// the F forbidden-post-pass trigger): it applies the noempty/pivot
// forbidding rule, runs the inner LCS, and re-examines change blocks
// containing forbidden elements once the main pass is done.
func LcsCore(m, n Line, p []PEntry, e []EEntry, opts *Options) []Line {
	applyForbidding(int(m), p, e, opts)

	j, anyForbidden := lcsCoreInner(m, n, p, e, opts)

	if anyForbidden {
		postProcessForbidden(m, n, p, e, j, opts)
	}
	return j
}
