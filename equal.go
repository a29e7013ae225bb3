package diffutil

import (
	"bytes"
	"io"
	"os"

	"github.com/pspjuth/DiffUtilTcl/internal/ioadapt"
)

// FilesEqualOptions controls files-equal, independent of the richer
// Options struct since comparefiles.c's CompareFilesObjCmd never shared
// DiffOptions_T with the diffing commands.
type FilesEqualOptions struct {
	// NoCase makes the comparison case-insensitive under Unicode simple
	// case folding (bytes.EqualFold), applied chunk by chunk; chunks whose
	// byte lengths differ still compare unequal.
	NoCase bool
	// IgnoreKey tolerates differing keyword-expansion bodies inside
	// RCS/CVS/SVN-style "$Keyword: body $" markers.
	IgnoreKey bool
	// Binary disables the text readback path; a size mismatch short
	// circuits to "not equal" immediately (unless IgnoreKey is set, or
	// either path is a compressed archive whose on-disk size says
	// nothing about its decompressed length).
	Binary bool
}

const filesEqualChunkSize = 65536

// FilesEqual reports whether two files have identical content, per
// comparefiles.c's CompareFilesObjCmd. Directories always compare
// unequal; a stat/open failure is reported as BadInput. Both paths are
// transparently decompressed by internal/ioadapt.Open if they carry a
// recognised archive suffix.
func FilesEqual(path1, path2 string, opts FilesEqualOptions) (bool, error) {
	info1, err := os.Stat(path1)
	if err != nil {
		return false, BadInput{"bad file"}
	}
	info2, err := os.Stat(path2)
	if err != nil {
		return false, BadInput{"bad file"}
	}
	if info1.IsDir() || info2.IsDir() {
		return false, nil
	}
	sizesComparable := !ioadapt.IsArchive(path1) && !ioadapt.IsArchive(path2)
	if opts.Binary && !opts.IgnoreKey && sizesComparable && info1.Size() != info2.Size() {
		return false, nil
	}

	f1, err := ioadapt.Open(path1)
	if err != nil {
		return false, BadInput{"bad file"}
	}
	defer f1.Close()
	f2, err := ioadapt.Open(path2)
	if err != nil {
		return false, BadInput{"bad file"}
	}
	defer f2.Close()

	if opts.IgnoreKey {
		return ioadapt.CompareStreamsIgnoringKeywords(f1, f2, opts.NoCase)
	}
	return compareStreamsEqual(f1, f2, opts.NoCase)
}

// compareStreamsEqual does a straightforward chunked byte comparison with
// no keyword tolerance.
func compareStreamsEqual(f1, f2 io.Reader, noCase bool) (bool, error) {
	buf1 := make([]byte, filesEqualChunkSize)
	buf2 := make([]byte, filesEqualChunkSize)
	for {
		n1, err1 := io.ReadFull(f1, buf1)
		n2, err2 := io.ReadFull(f2, buf2)
		if n1 == 0 && n2 == 0 {
			return true, nil
		}
		if n1 != n2 || !bytesEqual(buf1[:n1], buf2[:n2], noCase) {
			return false, nil
		}
		done1 := err1 == io.EOF || err1 == io.ErrUnexpectedEOF
		done2 := err2 == io.EOF || err2 == io.ErrUnexpectedEOF
		if done1 != done2 {
			return false, nil
		}
		if done1 {
			return true, nil
		}
		if err1 != nil {
			return false, err1
		}
		if err2 != nil {
			return false, err2
		}
	}
}

func bytesEqual(a, b []byte, noCase bool) bool {
	if !noCase {
		return bytes.Equal(a, b)
	}
	return bytes.EqualFold(a, b)
}
