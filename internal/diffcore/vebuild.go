package diffcore

import "sort"

// vEntry is the V vector: one per right-side element, sorted by (hash,
// serial) so equal-hash runs become contiguous equivalence classes.
type vEntry struct {
	serial         Line
	hash, realhash Hash
}

// EEntry is the E vector: the sorted V vector annotated with equivalence
// class boundaries. E[0] is the sentinel (Last=true, Forbidden=true).
type EEntry struct {
	Serial         Line
	Hash, Realhash Hash
	// Last is true on the last entry of each equal-hash run.
	Last bool
	// Count holds the class size on the first entry of a class, else 0.
	Count int
	// Forbidden is true if this whole equivalence class may not take
	// part in the initial LCS pass (see pbuild.go).
	Forbidden bool
}

// buildV hashes every element of r and sorts the result by (hash, serial).
func buildV(r Source, opts *Options) []vEntry {
	n := r.Len()
	v := make([]vEntry, n+1)
	for j := 1; j <= n; j++ {
		h, rh := r.Hash(j, opts, false)
		v[j] = vEntry{serial: Line(j), hash: h, realhash: rh}
	}
	rest := v[1:]
	sort.Slice(rest, func(i, k int) bool {
		if rest[i].hash != rest[k].hash {
			return rest[i].hash < rest[k].hash
		}
		return rest[i].serial < rest[k].serial
	})
	return v
}

// buildE constructs the E vector from a sorted V vector of length n.
func buildE(v []vEntry, n int) []EEntry {
	e := make([]EEntry, n+1)
	e[0] = EEntry{Last: true, Forbidden: true}
	first := 1
	for j := 1; j <= n; j++ {
		e[j].Serial = v[j].serial
		e[j].Hash = v[j].hash
		e[j].Realhash = v[j].realhash
		if j == n || v[j].hash != v[j+1].hash {
			e[j].Last = true
			e[first].Count = j - first + 1
			first = j + 1
		}
	}
	return e
}
