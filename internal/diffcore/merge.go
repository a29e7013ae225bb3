package diffcore

// kVector is the Hunt-McIlroy K frontier: K[s] is the current best
// s-candidate, K[0] a (0,0) sentinel, K[k+1] a fence at (m+1, n+1).
// It starts empty and grows on demand as entries are set (the original
// C preallocates min(m,n)+2 entries and relies on k never exceeding that
// bound; a slice sidesteps the risk of that bound being exactly tight).
type kVector struct {
	cands []*Candidate
}

func (kv *kVector) get(idx Line) *Candidate { return kv.cands[idx] }

func (kv *kVector) set(idx Line, c *Candidate) {
	for Line(len(kv.cands)) <= idx {
		kv.cands = append(kv.cands, nil)
	}
	kv.cands[idx] = c
}

// candidateLooksExact reports whether a candidate's element matches the
// left side's element exactly (real-hash equality), not just by the
// (possibly ignore-filtered) matching hash.
func candidateLooksExact(c *Candidate, p []PEntry) bool {
	return p[c.Line1].Realhash == c.Realhash
}

// isSameColumnOptimal is the SAME_COL_OPT predicate: whether c is placed
// tightly enough against its predecessor that no further k-candidate in
// this column could ever improve on it.
func isSameColumnOptimal(c *Candidate, p []PEntry) bool {
	if c.Prev == nil || c.K <= 1 || c.Prev.Realhash == 0 {
		return false
	}
	if !candidateLooksExact(c, p) {
		return false
	}
	if (c.Line1-c.Prev.Line1) > 1 || (c.Line2-c.Prev.Line2) > 1 {
		return false
	}
	if c.Prev.Peer != nil && c.Prev.Peer.Line1 >= c.Prev.Line1 {
		return false
	}
	return true
}

// isSameRowOptimal is the SAME_ROW_OPT2 predicate, applied to the
// existing K[s] candidate rather than to a newly created one; it lacks
// the peer clause isSameColumnOptimal has.
func isSameRowOptimal(s Line, kv *kVector, p []PEntry) bool {
	if s <= 1 {
		return false
	}
	cs := kv.get(s)
	if cs.Prev == nil || cs.Prev.Realhash == 0 {
		return false
	}
	if !candidateLooksExact(cs, p) {
		return false
	}
	if (cs.Line1-cs.Prev.Line1) > 1 || (cs.Line2-cs.Prev.Line2) > 1 {
		return false
	}
	return true
}

// merge is the Hunt-McIlroy merge step, extended with the scoring-driven
// "NonHM" additions documented in spec.md §4.4.1: peer candidates on the
// same row/column are let through so the later scoring pass can pick
// the nicest-looking chain, not just the first longest one found.
func merge(arena *candidateArena, kv *kVector, k *Line, i Line, p []PEntry, e []EEntry, startP Line, opts *Options, m, n Line) {
	c := kv.get(0)
	ck := Line(0)
	r := Line(0)
	pp := startP

	for {
		j := e[pp].Serial
		if len(opts.Align) > 0 && CheckAlign(opts, i, j) {
			if e[pp].Last {
				break
			}
			pp++
			continue
		}

		first, last := r, *k
		var s, b1, b2 Line
		for first <= last {
			s = (first + last) / 2
			b1 = kv.get(s).Line2
			b2 = kv.get(s + 1).Line2
			if (b1 < j && b2 > j) || b1 == j {
				break
			}
			if b2 == j {
				s = s + 1
				b1 = kv.get(s).Line2
				break
			}
			if b2 < j {
				first = s + 1
			} else {
				if s == 0 {
					break
				}
				last = s - 1
			}
		}

		switch {
		case b1 < j && j < b2:
			if ck == s+1 {
				peer := c
				for peer.Peer != nil && peer.Peer.Line1 == peer.Line1 {
					peer = peer.Peer
				}
				newc := arena.new(i, j, e[pp].Realhash, c.Prev, peer.Peer)
				peer.Peer = newc
			} else {
				var peer *Candidate
				if s >= *k {
					kv.set(*k+2, kv.get(*k+1))
					*k++
					peer = nil
				} else {
					peer = kv.get(s + 1)
				}
				newc := arena.new(i, j, e[pp].Realhash, kv.get(s), peer)
				kv.set(ck, c)
				c = newc
				ck = s + 1
				if isSameColumnOptimal(c, p) {
					r = s + 1
				} else {
					r = s
				}
			}

		case b1 == j:
			if ck == s {
				newc := arena.new(i, j, e[pp].Realhash, c.Prev, c.Peer)
				c.Peer = newc
			} else {
				ksOptimal := isSameRowOptimal(s, kv, p)
				if !ksOptimal || ((i-kv.get(s-1).Line1) <= 1 && (j-kv.get(s-1).Line2) <= 1) {
					if (m-i)+s >= *k {
						tmp := kv.get(s - 1)
						for tmp != nil {
							if tmp.Line1 < i && tmp.Line2 < j {
								break
							}
							tmp = tmp.Peer
						}
						newc := arena.new(i, j, e[pp].Realhash, tmp, kv.get(s))
						r = s
						kv.set(ck, c)
						ck = s
						c = newc
					}
				}
			}
		}

		if e[pp].Last {
			break
		}
		pp++
	}
	kv.set(ck, c)
}
