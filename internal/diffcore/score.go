package diffcore

// scoreCandidate assigns c.Score from the best-scoring predecessor among
// c.Prev's peer chain, then rewrites c.Prev to point at that predecessor
// so the winning chain is reachable by following Prev from the endpoint.
func scoreCandidate(c *Candidate, p []PEntry) {
	var bestScore int64 = 1 << 60
	bestc := c.Prev

	for prev := c.Prev; prev != nil; prev = prev.Peer {
		if prev.Line2 >= c.Line2 {
			break
		}
		score := prev.Score
		if c.K > 1 && prev.Realhash != 0 {
			if (c.Line2 - prev.Line2) > 1 {
				score += 2
			}
			if (c.Line1 - prev.Line1) > 1 {
				score += 2
			}
			if (c.Line2-prev.Line2) > 1 && (c.Line1-prev.Line1) > 1 {
				score--
			}
		}
		// On a tie the earlier predecessor in the chain is kept, favouring
		// matches earlier in the file; an equal score replaces it only for a
		// peer in the same column (same Line2).
		if score < bestScore || (score == bestScore && bestc.Line2 == prev.Line2) {
			bestScore = score
			bestc = prev
		}
	}

	c.Score = bestScore
	if p[c.Line1].Realhash != c.Realhash {
		c.Score += 5
	}
	c.Prev = bestc
}

// scoreCandidates runs an iterative (stack-based) DFS over every
// candidate reachable from K[k]'s peer chain, scoring each once all of
// its potential predecessors are scored. K[0].Score is seeded to 1 so
// the "unscored" sentinel of 0 never collides with a real score.
func scoreCandidates(k Line, kv *kVector, p []PEntry) {
	kv.get(0).Score = 1
	if k == 0 {
		return
	}

	sp := 0
	for cand := kv.get(k); cand != nil; cand = cand.Peer {
		sp++
	}
	stackSize := sp * 2
	if g := int(k) * 20; g > stackSize {
		stackSize = g
	}
	stack := make([]*Candidate, stackSize)
	sp = 0
	for cand := kv.get(k); cand != nil; cand = cand.Peer {
		stack[sp] = cand
		sp++
	}

	for sp > 0 {
		cand := stack[sp-1]
		if cand.Score != 0 {
			sp--
			continue
		}
		ready := true
		for prev := cand.Prev; prev != nil; prev = prev.Peer {
			if prev.Line2 >= cand.Line2 {
				break
			}
			if prev.Score == 0 {
				if sp >= len(stack) {
					grown := make([]*Candidate, len(stack)*2)
					copy(grown, stack)
					stack = grown
				}
				stack[sp] = prev
				sp++
				ready = false
			}
		}
		if ready {
			scoreCandidate(cand, p)
			sp--
		}
	}
}
