package diffcore

// Source delivers a finite ordered sequence of elements. Positions are
// 1-based; position 0 is never asked for. Adapters in package element
// (lines from a file, items of a list, characters of a string) implement
// this over raw data; diffcore only ever sees hashes and opaque text.
type Source interface {
	// Len returns the number of elements, m or n.
	Len() int
	// Hash returns the matching hash and exact-content hash for the
	// element at the given 1-based position, under opts and side.
	Hash(pos int, opts *Options, left bool) (hash, realhash Hash)
	// Text returns the raw text of the element, for CompareElements.
	Text(pos int) string
}

// CompareElements applies the same substitutions and character filters as
// Hash, then compares byte-by-byte. When opts.Ignore == 0 and no regsub is
// active, this reduces to a direct byte comparison.
func CompareElements(aText, bText string, opts *Options) bool {
	a := applyRegsub(aText, opts.RegsubLeft)
	b := applyRegsub(bText, opts.RegsubRight)

	if opts.Ignore == 0 {
		return a == b
	}

	if opts.Ignore&IgnoreCase != 0 {
		a = foldCaser.String(a)
		b = foldCaser.String(b)
	}

	ai, bi := 0, 0
	ar := []rune(a)
	br := []rune(b)
	aState := filterState{s: stateSpace}
	bState := filterState{s: stateSpace}
	for {
		ac, aok := nextFiltered(ar, &ai, opts.Ignore, &aState)
		bc, bok := nextFiltered(br, &bi, opts.Ignore, &bState)
		if !aok && !bok {
			return true
		}
		if aok != bok {
			return false
		}
		if ac != bc {
			return false
		}
	}
}
