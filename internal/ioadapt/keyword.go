package ioadapt

import (
	"bytes"
	"io"
)

var dollar = []byte{'$'}

// firstChunkSize bounds how far into either stream a `$Keyword: body$`
// marker may tolerate a differing body. comparefiles.c's ignoreKey
// re-alignment (an empty stub in the retrieved C source, implemented here
// from the prose description) only ever applies within the chunk its
// Tcl_ReadChars loop is currently scanning; a marker beginning beyond the
// first chunk gets no such leniency and must match byte-for-byte like
// everything else.
const firstChunkSize = 65536

// CompareStreamsIgnoringKeywords reports whether two byte streams are
// identical once RCS/CVS/SVN-style `$Keyword: body$` markers within the
// first firstChunkSize bytes of either stream are allowed to differ in
// body (but not in keyword name). Beyond that window every `$...$` span
// must match exactly, the same as any other byte run.
func CompareStreamsIgnoringKeywords(f1, f2 io.Reader, noCase bool) (bool, error) {
	s1 := newScanner(f1, firstChunkSize)
	s2 := newScanner(f2, firstChunkSize)

	for {
		lit1, found1 := s1.scanTo(dollar)
		lit2, found2 := s2.scanTo(dollar)
		if !bytesEqual(lit1, lit2, noCase) {
			return false, nil
		}
		if found1 != found2 {
			return false, nil
		}
		if !found1 {
			return true, nil
		}

		if s1.unreadOffs > firstChunkSize || s2.unreadOffs > firstChunkSize {
			raw1, ok1 := s1.scanTo(dollar)
			raw2, ok2 := s2.scanTo(dollar)
			if !bytesEqual(raw1, raw2, noCase) {
				return false, nil
			}
			if ok1 != ok2 {
				return false, nil
			}
			if !ok1 {
				return true, nil
			}
			continue
		}

		key1, ok1 := readKeywordTail(s1)
		key2, ok2 := readKeywordTail(s2)
		if ok1 != ok2 {
			return false, nil
		}
		if !ok1 {
			// Stray '$' not part of a keyword marker; it was already
			// consumed by scanTo on both sides, so nothing more to
			// compare for it.
			continue
		}
		if !bytesEqual([]byte(key1), []byte(key2), noCase) {
			return false, nil
		}
	}
}

// readKeywordTail consumes "Name$" or "Name: body$" immediately after an
// already-consumed opening '$', returning the keyword name.
func readKeywordTail(s *scanner) (name string, ok bool) {
	var nameBuf []byte
	for {
		b := s.next(1)
		if len(b) == 0 {
			return "", false
		}
		c := b[0]
		switch c {
		case '$':
			if len(nameBuf) == 0 {
				return "", false
			}
			return string(nameBuf), true
		case ':':
			if _, found := s.scanTo(dollar); !found {
				return "", false
			}
			return string(nameBuf), true
		case '\n':
			return "", false
		default:
			nameBuf = append(nameBuf, c)
		}
	}
}

func bytesEqual(a, b []byte, noCase bool) bool {
	if !noCase {
		return bytes.Equal(a, b)
	}
	return bytes.EqualFold(a, b)
}
