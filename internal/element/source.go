// Public domain, ported from pspjuth/DiffUtilTcl.

// Package element adapts raw data -- file lines, list items, string
// characters -- to diffcore.Source, the only shape the LCS engine ever
// sees. Each adapter pre-hashes every element once at construction, the
// way difffiles.c/difflists.c/diffstrings.c build their V/P vectors in a
// single streaming pass before handing off to LcsCore.
package element

import (
	"bufio"
	"io"
	"strings"

	"github.com/pspjuth/DiffUtilTcl/internal/diffcore"
)

type entry struct {
	text           string
	hash, realhash diffcore.Hash
}

// baseSource implements diffcore.Source over a pre-hashed slice; the three
// adapters below only differ in how they build that slice.
type baseSource struct {
	entries []entry
}

func (s *baseSource) Len() int { return len(s.entries) }

func (s *baseSource) Hash(pos int, opts *diffcore.Options, left bool) (diffcore.Hash, diffcore.Hash) {
	e := s.entries[pos-1]
	return e.hash, e.realhash
}

func (s *baseSource) Text(pos int) string { return s.entries[pos-1].text }

func buildEntries(texts []string, opts *diffcore.Options, left bool) []entry {
	entries := make([]entry, len(texts))
	for i, t := range texts {
		h, rh := diffcore.ComputeHash(t, opts, left)
		entries[i] = entry{text: t, hash: h, realhash: rh}
	}
	return entries
}

// LineSource delivers the lines of a file, split on '\n'. TrailingNewline
// reports whether the source's last line was newline-terminated --
// difffiles.c tracks this so a caller can print the usual
// "\ No newline at end of file" marker; diffcore itself has no use for it.
type LineSource struct {
	baseSource
	TrailingNewline bool
}

// NewLineSource reads every line of r and hashes it under opts.
func NewLineSource(r io.Reader, opts *diffcore.Options, left bool) (*LineSource, error) {
	var texts []string
	trailingNewline := true
	br := bufio.NewReaderSize(r, 64*1024)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if strings.HasSuffix(line, "\n") {
				texts = append(texts, strings.TrimSuffix(line, "\n"))
				trailingNewline = true
			} else {
				texts = append(texts, line)
				trailingNewline = false
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return &LineSource{
		baseSource:      baseSource{entries: buildEntries(texts, opts, left)},
		TrailingNewline: trailingNewline,
	}, nil
}

// ListSource delivers the elements of an in-memory list, as diffLists does
// for Tcl lists: each element is compared and hashed as opaque text.
type ListSource struct {
	baseSource
}

// NewListSource hashes every item of items under opts.
func NewListSource(items []string, opts *diffcore.Options, left bool) *ListSource {
	return &ListSource{baseSource{entries: buildEntries(items, opts, left)}}
}

// CharSource delivers the Unicode code points of a string, one element per
// rune, as diffstrings.c's PrepareStringsLcs does for its char-by-char
// comparison path (used when no space-ignore flag or wordparse splits the
// string into word chunks first).
type CharSource struct {
	baseSource
}

// NewCharSource hashes every rune of s under opts.
func NewCharSource(s string, opts *diffcore.Options, left bool) *CharSource {
	runes := []rune(s)
	texts := make([]string, len(runes))
	for i, r := range runes {
		texts[i] = string(r)
	}
	return &CharSource{baseSource{entries: buildEntries(texts, opts, left)}}
}

// rangeSource restricts a Source to a contiguous 1-based [from, to] window,
// the way difffiles.c's ReadAndHashFiles only reads rFrom..rTo into V/P in
// the first place rather than reading everything and filtering.
type rangeSource struct {
	inner    diffcore.Source
	from, to int
}

// Range returns a view of s restricted to [from, to] (1-based, inclusive).
// to <= 0 means "through the end". Positions outside [1, s.Len()] are
// clamped, matching the original's "stop reading at end of file" behaviour
// for an out-of-range rTo.
func Range(s diffcore.Source, from, to int) diffcore.Source {
	n := s.Len()
	if from < 1 {
		from = 1
	}
	if to <= 0 || to > n {
		to = n
	}
	if from > to {
		to = from - 1
	}
	return &rangeSource{inner: s, from: from, to: to}
}

func (r *rangeSource) Len() int { return r.to - r.from + 1 }

func (r *rangeSource) Hash(pos int, opts *diffcore.Options, left bool) (diffcore.Hash, diffcore.Hash) {
	return r.inner.Hash(pos+r.from-1, opts, left)
}

func (r *rangeSource) Text(pos int) string { return r.inner.Text(pos + r.from - 1) }
