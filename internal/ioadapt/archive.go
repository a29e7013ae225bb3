// Package ioadapt opens plain and compressed files behind a single
// io.ReadCloser, the way the Tcl extension's zip.c let every file-taking
// command transparently accept a gzipped or lzop'd file. Dispatch is by
// filename suffix.
package ioadapt

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/woozymasta/lzo"
)

// lzoInitialOutLen is the first decompressed-size guess handed to
// lzo.Decompress, which (unlike gzip/bzip2) requires the output length up
// front rather than discovering it as it reads.
const lzoInitialOutLen = 1 << 16

// lzoMaxOutLen caps how far decompressLZO will grow its guess before
// giving up, so a corrupt or hostile .lzo file can't force unbounded
// allocation.
const lzoMaxOutLen = 1 << 30

// Open opens path for reading, transparently decompressing it if the name
// ends in a recognised suffix. The returned ReadCloser's Close releases
// both the decompressor (if any) and the underlying file.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &wrapReadCloser{Reader: gz, closers: []io.Closer{gz, f}}, nil

	case strings.HasSuffix(path, ".bz2"):
		br := bzip2.NewReader(f)
		return &wrapReadCloser{Reader: br, closers: []io.Closer{f}}, nil

	case strings.HasSuffix(path, ".lzo"):
		data, err := decompressLZO(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		return &wrapReadCloser{Reader: bytes.NewReader(data)}, nil

	default:
		return f, nil
	}
}

// decompressLZO reads r fully and decodes it with lzo.Decompress, which
// needs the expected output length up front rather than growing a buffer
// as it reads. The true length isn't known ahead of time, so this guesses
// and doubles on ErrOutputOverrun until the guess is big enough or
// lzoMaxOutLen is exceeded.
func decompressLZO(r io.Reader) ([]byte, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	outLen := lzoInitialOutLen
	for {
		out, err := lzo.Decompress(src, &lzo.DecompressOptions{OutLen: outLen})
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, lzo.ErrOutputOverrun) || outLen >= lzoMaxOutLen {
			return nil, err
		}
		outLen *= 2
	}
}

// wrapReadCloser glues a plain io.Reader (gzip/bzip2/lzo readers don't all
// implement Close themselves) to the Closers that must run to release it.
type wrapReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (w *wrapReadCloser) Close() error {
	var first error
	for _, c := range w.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// IsArchive reports whether path names a file Open would decompress,
// rather than pass through unchanged.
func IsArchive(path string) bool {
	return strings.HasSuffix(path, ".gz") || strings.HasSuffix(path, ".bz2") || strings.HasSuffix(path, ".lzo")
}
