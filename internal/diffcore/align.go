package diffcore

// CheckAlign reports whether matching (i, j) would cross a user-supplied
// alignment pin. opts.Align must already be sorted (see NormaliseOptions).
func CheckAlign(opts *Options, i, j Line) bool {
	for _, pin := range opts.Align {
		if i < pin.I && j < pin.J {
			return false
		}
		if i == pin.I && j == pin.J {
			return false
		}
		if i <= pin.I || j <= pin.J {
			return true
		}
	}
	return false
}

// NormaliseOptions sorts the align list (by I then J), collapses any pin
// that is not strictly greater than its predecessor on both axes, and
// validates Pivot. It must run before the align list is used by merge or
// the assembler.
func NormaliseOptions(opts *Options) error {
	if opts.Pivot < 1 {
		return BadArgument{"pivot must be >= 1"}
	}

	bubbleSortAlign(opts.Align)

	for i := 1; i < len(opts.Align); i++ {
		prev := opts.Align[i-1]
		cur := opts.Align[i]
		if !(cur.I > prev.I && cur.J > prev.J) {
			opts.Align[i] = prev
		}
	}
	return nil
}

// bubbleSortAlign sorts pins by (I, J), matching DiffUtilTcl's
// SetOptsAlign bubble sort (the list is small; no reason to reach for
// sort.Slice and lose the exact tie-break DiffUtilTcl used).
func bubbleSortAlign(align []AlignPin) {
	n := len(align)
	for {
		changed := false
		for i := 0; i < n-1; i++ {
			a, b := align[i], align[i+1]
			if a.I > b.I || (a.I == b.I && a.J > b.J) {
				align[i], align[i+1] = b, a
				changed = true
			}
		}
		if !changed {
			break
		}
	}
}

// ShiftAlignForRange re-indexes align pins when a range offsets the left
// and/or right coordinate systems, per spec.md §4.6/§4.7: a coordinate
// below the corresponding rFrom is zeroed rather than rejected, so a later
// NormaliseOptions sorts that pin to the front of the list.
func ShiftAlignForRange(align []AlignPin, rFrom1, rFrom2 Line) {
	for i := range align {
		if rFrom1 > 1 {
			if align[i].I >= rFrom1 {
				align[i].I -= rFrom1 - 1
			} else {
				align[i].I = 0
			}
		}
		if rFrom2 > 1 {
			if align[i].J >= rFrom2 {
				align[i].J -= rFrom2 - 1
			} else {
				align[i].J = 0
			}
		}
	}
}
