package diffcore

// PEntry is the P vector: one per left-side element, pointing at the
// first entry of its matching equivalence class in E (or 0 if none).
type PEntry struct {
	Eindex         Line
	Hash, Realhash Hash
	Forbidden      bool
}

// buildP hashes every element of l and locates its equivalence class in
// the sorted v/e vectors via binary search, without yet applying any
// forbidding rule (that happens in applyForbidding, once both P and E exist).
func buildP(l Source, opts *Options, v []vEntry, e []EEntry, n int) []PEntry {
	m := l.Len()
	p := make([]PEntry, m+1)
	for i := 1; i <= m; i++ {
		h, rh := l.Hash(i, opts, true)
		p[i].Hash = h
		p[i].Realhash = rh
		p[i].Eindex = bsearchV(v, n, h)
	}
	return p
}

// bsearchV binary-searches the sorted v[1..n] for hash h, returning the
// index of the first entry of its equivalence class in E, or 0 if h is
// not present.
func bsearchV(v []vEntry, n int, h Hash) Line {
	first, last := 1, n
	j := 1
	for first <= last {
		j = (first + last) / 2
		if v[j].hash == h {
			break
		}
		if v[j].hash < h {
			first = j + 1
		} else {
			last = j - 1
		}
	}
	if j < 1 || j > n || v[j].hash != h {
		return 0
	}
	// walk back to the first entry of the class; E mirrors V's order.
	for j > 1 && v[j-1].hash == h {
		j--
	}
	return Line(j)
}

// forbidP marks P[i] and its entire equivalence class in E as forbidden,
// per the noempty/pivot rules in LcsCore.
func forbidP(i Line, p []PEntry, e []EEntry) {
	p[i].Forbidden = true
	j := p[i].Eindex
	for !e[j].Forbidden {
		e[j].Forbidden = true
		if e[j].Last {
			break
		}
		j++
	}
}

// applyForbidding implements §4.3's noempty and pivot rules, walking P
// once both P and E are fully built.
func applyForbidding(m int, p []PEntry, e []EEntry, opts *Options) {
	for i := 1; i <= m; i++ {
		if p[i].Eindex == 0 {
			continue
		}
		if opts.Noempty && p[i].Hash == 0 {
			forbidP(Line(i), p, e)
			continue
		}
		if e[p[i].Eindex].Count > opts.Pivot {
			forbidP(Line(i), p, e)
		}
	}
}
