// Adapted from Randall Farmer's public-domain stream scanner (2013),
// trimmed to the ScanTo/Discard core this package actually exercises.

package ioadapt

import (
	"bytes"
	"io"
)

// scanner is a growable read-ahead buffer that can be scanned forward to
// the next occurrence of a delimiter without the caller having to worry
// about a match straddling two underlying Read() calls.
type scanner struct {
	in io.Reader
	// unread starts at the first byte not yet consumed
	unread     []byte
	unreadOffs int64
	all        []byte
	offs       int64
	backing    []byte
}

func newScanner(r io.Reader, capHint int) *scanner {
	buf := make([]byte, 0, capHint)
	s := &scanner{in: r, all: buf, backing: buf, unread: buf}
	s.fill()
	return s
}

func (s *scanner) fill() int64 {
	if len(s.all) == cap(s.all) {
		old := s.all
		s.all = make([]byte, len(s.all), cap(s.all)*2)
		s.backing = s.all
		copy(s.all, old)
	}
	c, err := s.in.Read(s.all[len(s.all):cap(s.all)])
	s.all = s.all[:len(s.all)+c]
	s.unread = s.all[s.unreadOffs-s.offs:]
	if err != nil {
		if err != io.EOF {
			panic(err)
		}
		if c == 0 {
			return -1
		}
	}
	return int64(c)
}

func (s *scanner) consume(n int) {
	s.unread = s.unread[n:]
	s.unreadOffs += int64(n)
}

// discard drops everything already consumed, keeping the buffer small.
func (s *scanner) discard() {
	length := len(s.unread)
	if cap(s.all) < cap(s.backing)/2 {
		copy(s.backing[:length], s.unread)
		s.all = s.backing[:length]
	} else {
		s.all = s.all[s.unreadOffs-s.offs:]
	}
	s.offs = s.unreadOffs
	s.all = s.all[:length]
	s.unread = s.all
}

// scanTo advances past the next occurrence of sep, returning everything
// skipped over (not including sep). ok is false at EOF with no match; in
// that case the returned span covers the remainder of the stream.
func (s *scanner) scanTo(sep []byte) (span []byte, ok bool) {
	i := bytes.Index(s.unread, sep)
	for i == -1 {
		if len(s.unread) > len(sep)-1 {
			s.consume(len(s.unread) - (len(sep) - 1))
			s.discard()
		}
		c := s.fill()
		if c == -1 {
			span = append([]byte(nil), s.unread...)
			s.consume(len(s.unread))
			s.discard()
			return span, false
		}
		i = bytes.Index(s.unread, sep)
	}
	span = append([]byte(nil), s.unread[:i]...)
	s.consume(i + len(sep))
	s.discard()
	return span, true
}

// next returns up to n unconsumed bytes without requiring a delimiter,
// reading more from the source if the buffer is currently short.
func (s *scanner) next(n int) []byte {
	for len(s.unread) < n {
		if s.fill() == -1 {
			break
		}
	}
	if n > len(s.unread) {
		n = len(s.unread)
	}
	out := append([]byte(nil), s.unread[:n]...)
	s.consume(n)
	s.discard()
	return out
}
