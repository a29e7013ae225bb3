package diffutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diffListsChunks(t *testing.T, a, b []string, opts *Options) []Chunk {
	t.Helper()
	chunks, _ := DiffLists(a, b, opts)
	return chunks
}

// S1: identical inputs produce no diff chunks and an identity match list.
func TestDiffLists_IdenticalInputs(t *testing.T) {
	opts := DefaultOptions()
	chunks := diffListsChunks(t, []string{"a", "b", "c"}, []string{"a", "b", "c"}, &opts)
	assert.Empty(t, chunks)

	opts.ResultStyle = ResultMatch
	_, match := DiffLists([]string{"a", "b", "c"}, []string{"a", "b", "c"}, &opts)
	assert.Equal(t, []Line{0, 1, 2}, match.Left)
	assert.Equal(t, []Line{0, 1, 2}, match.Right)
}

// S2: pure insertion.
func TestDiffLists_PureInsertion(t *testing.T) {
	opts := DefaultOptions()
	chunks := diffListsChunks(t, []string{"a", "c"}, []string{"a", "b", "c"}, &opts)
	require.Len(t, chunks, 1)
	assert.Equal(t, Chunk{Start1: 1, N1: 0, Start2: 1, N2: 1}, chunks[0])
}

// S3: a one-line change block.
func TestDiffLists_ChangeBlock(t *testing.T) {
	opts := DefaultOptions()
	chunks := diffListsChunks(t, []string{"a", "X", "c"}, []string{"a", "Y", "c"}, &opts)
	require.Len(t, chunks, 1)
	assert.Equal(t, Chunk{Start1: 1, N1: 1, Start2: 1, N2: 1}, chunks[0])
}

// S4: IGNORE_CASE makes "Hello"/"hello" match exactly.
func TestDiffLists_IgnoreCase(t *testing.T) {
	opts := DefaultOptions()
	opts.Ignore = IgnoreCase
	chunks := diffListsChunks(t, []string{"Hello"}, []string{"hello"}, &opts)
	assert.Empty(t, chunks)
}

// S5: an alignment pin forces its pair to surface as its own 1-row
// changed chunk, even though the pinned elements' text differs.
func TestDiffLists_AlignPinSplitsChunk(t *testing.T) {
	opts := DefaultOptions()
	opts.Align = []AlignPin{{I: 3, J: 3}} // align pins use the engine's 1-based positions, even for lists
	require.NoError(t, NormaliseOptions(&opts))

	chunks := diffListsChunks(t, []string{"a", "b", "c", "d"}, []string{"x", "b", "y", "d"}, &opts)
	require.NotEmpty(t, chunks)

	found := false
	for _, c := range chunks {
		if c.Start1 == 2 && c.N1 == 1 && c.Start2 == 2 && c.N2 == 1 {
			found = true
		}
	}
	assert.True(t, found, "expected a 1-row chunk at the align pin, got %+v", chunks)
}

// S6: noempty forbids an empty line from the initial pass; the forbidden
// post-pass re-matches it within its change block.
func TestDiffLists_NoemptyForbiddenPostPass(t *testing.T) {
	opts := DefaultOptions()
	opts.Noempty = true

	chunks := diffListsChunks(t, []string{"a", "", "b"}, []string{"", "a", "", "b"}, &opts)
	require.NotEmpty(t, chunks)
	assert.Equal(t, Chunk{Start1: 0, N1: 0, Start2: 0, N2: 1}, chunks[0])
}

// S7: an empty left side yields a single all-insertion chunk.
func TestDiffLists_EmptyLeft(t *testing.T) {
	opts := DefaultOptions()
	chunks := diffListsChunks(t, nil, []string{"a", "b"}, &opts)
	require.Len(t, chunks, 1)
	assert.Equal(t, Chunk{Start1: 0, N1: 0, Start2: 0, N2: 2}, chunks[0])
}

// S7b: an empty right side yields a single all-deletion chunk.
func TestDiffLists_EmptyRight(t *testing.T) {
	opts := DefaultOptions()
	chunks := diffListsChunks(t, []string{"a", "b"}, nil, &opts)
	require.Len(t, chunks, 1)
	assert.Equal(t, Chunk{Start1: 0, N1: 2, Start2: 0, N2: 0}, chunks[0])
}

func TestDiffLists_BothEmpty(t *testing.T) {
	opts := DefaultOptions()
	chunks := diffListsChunks(t, nil, nil, &opts)
	assert.Empty(t, chunks)
}

// Monotonic matches: J is strictly increasing over matched positions.
func TestDiffLists_MonotonicMatches(t *testing.T) {
	opts := DefaultOptions()
	opts.ResultStyle = ResultMatch
	a := []string{"a", "b", "c", "d", "e", "f"}
	b := []string{"z", "b", "q", "d", "w", "f", "e"}
	_, match := DiffLists(a, b, &opts)
	for i := 1; i < len(match.Left); i++ {
		assert.Less(t, match.Left[i-1], match.Left[i])
		assert.Less(t, match.Right[i-1], match.Right[i])
	}
}

func TestDiffLists_IgnoreAllSpace(t *testing.T) {
	opts := DefaultOptions()
	opts.Ignore = IgnoreAllSpace
	chunks := diffListsChunks(t, []string{"a b c"}, []string{"abc"}, &opts)
	assert.Empty(t, chunks)
}

func TestDiffLists_IgnoreSpaceChange(t *testing.T) {
	opts := DefaultOptions()
	opts.Ignore = IgnoreSpaceChange
	chunks := diffListsChunks(t, []string{"a   b"}, []string{"a b"}, &opts)
	assert.Empty(t, chunks)
}

func TestDiffLists_IgnoreNumbers(t *testing.T) {
	opts := DefaultOptions()
	opts.Ignore = IgnoreNumbers
	chunks := diffListsChunks(t, []string{"item 42"}, []string{"item 99999"}, &opts)
	assert.Empty(t, chunks)
}

func TestNormaliseOptions_RejectsBadPivot(t *testing.T) {
	opts := DefaultOptions()
	opts.Pivot = 0
	err := NormaliseOptions(&opts)
	require.Error(t, err)
	var bad BadArgument
	require.ErrorAs(t, err, &bad)
}

func TestNormaliseOptions_SortsAndCollapsesAlign(t *testing.T) {
	opts := DefaultOptions()
	opts.Align = []AlignPin{{I: 5, J: 5}, {I: 2, J: 2}, {I: 2, J: 1}}
	require.NoError(t, NormaliseOptions(&opts))
	require.Len(t, opts.Align, 3)
	assert.Equal(t, AlignPin{I: 2, J: 1}, opts.Align[0])
	// (2,2) is not strictly greater than (2,1) on the I axis, so it
	// collapses into its predecessor.
	assert.Equal(t, AlignPin{I: 2, J: 1}, opts.Align[1])
	assert.Equal(t, AlignPin{I: 5, J: 5}, opts.Align[2])
}

func TestDiffStrings_CharacterGranularity(t *testing.T) {
	opts := DefaultOptions()
	chunks, _ := DiffStrings("kitten", "sitting", &opts)
	require.NotEmpty(t, chunks)
	// every chunk must fall inside the two strings' rune ranges.
	for _, c := range chunks {
		assert.GreaterOrEqual(t, c.Start1, Line(0))
		assert.LessOrEqual(t, c.Start1+c.N1, Line(len([]rune("kitten"))))
		assert.GreaterOrEqual(t, c.Start2, Line(0))
		assert.LessOrEqual(t, c.Start2+c.N2, Line(len([]rune("sitting"))))
	}
}

func TestDiffStrings_Identical(t *testing.T) {
	opts := DefaultOptions()
	chunks, _ := DiffStrings("hello world", "hello world", &opts)
	assert.Empty(t, chunks)
}

func TestDiffStringsChunks_ConcatenationReproducesInputs(t *testing.T) {
	opts := DefaultOptions()
	a := "the quick brown fox"
	b := "the slow brown ox"
	pieces := DiffStringsChunks(a, b, &opts)
	require.NotEmpty(t, pieces)

	var rebuiltA, rebuiltB string
	for i := 0; i+1 < len(pieces); i += 2 {
		rebuiltA += pieces[i]
		rebuiltB += pieces[i+1]
	}
	assert.Equal(t, a, rebuiltA)
	assert.Equal(t, b, rebuiltB)
}

func TestDiffStrings_WordParseWidensToWordBoundary(t *testing.T) {
	opts := DefaultOptions()
	opts.WordParse = true
	chunks, _ := DiffStrings("the cat sat", "the bat sat", &opts)
	require.Len(t, chunks, 1)
	// "cat"/"bat" differ only in their first rune, but word-parse should
	// widen the change to cover the whole word.
	assert.Equal(t, Chunk{Start1: 4, N1: 3, Start2: 4, N2: 3}, chunks[0])
}

func TestDiffFiles_LineGranularity(t *testing.T) {
	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.txt")
	p2 := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(p1, []byte("a\nb\nc\n"), 0o644))
	require.NoError(t, os.WriteFile(p2, []byte("a\nB\nc\n"), 0o644))

	opts := DefaultOptions()
	chunks, _, err := DiffFiles(p1, p2, &opts)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, Chunk{Start1: 2, N1: 1, Start2: 2, N2: 1}, chunks[0])
}

func TestDiffFiles_BadInputOnMissingFile(t *testing.T) {
	dir := t.TempDir()
	opts := DefaultOptions()
	_, _, err := DiffFiles(filepath.Join(dir, "missing.txt"), filepath.Join(dir, "also-missing.txt"), &opts)
	require.Error(t, err)
	var bad BadInput
	require.ErrorAs(t, err, &bad)
}

func TestFilesEqual_IdenticalContent(t *testing.T) {
	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.txt")
	p2 := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(p1, []byte("same content"), 0o644))
	require.NoError(t, os.WriteFile(p2, []byte("same content"), 0o644))

	eq, err := FilesEqual(p1, p2, FilesEqualOptions{})
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestFilesEqual_DifferentContent(t *testing.T) {
	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.txt")
	p2 := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(p1, []byte("content one"), 0o644))
	require.NoError(t, os.WriteFile(p2, []byte("content two"), 0o644))

	eq, err := FilesEqual(p1, p2, FilesEqualOptions{})
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestFilesEqual_Directories(t *testing.T) {
	dir := t.TempDir()
	sub1 := filepath.Join(dir, "d1")
	sub2 := filepath.Join(dir, "d2")
	require.NoError(t, os.Mkdir(sub1, 0o755))
	require.NoError(t, os.Mkdir(sub2, 0o755))

	eq, err := FilesEqual(sub1, sub2, FilesEqualOptions{})
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestFilesEqual_BinarySizeMismatchShortCircuits(t *testing.T) {
	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.bin")
	p2 := filepath.Join(dir, "b.bin")
	require.NoError(t, os.WriteFile(p1, []byte("short"), 0o644))
	require.NoError(t, os.WriteFile(p2, []byte("a much longer body"), 0o644))

	eq, err := FilesEqual(p1, p2, FilesEqualOptions{Binary: true})
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestFilesEqual_NoCase(t *testing.T) {
	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.txt")
	p2 := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(p1, []byte("Hello World"), 0o644))
	require.NoError(t, os.WriteFile(p2, []byte("hello world"), 0o644))

	eq, err := FilesEqual(p1, p2, FilesEqualOptions{NoCase: true})
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestFilesEqual_IgnoreKeyToleratesDifferingBody(t *testing.T) {
	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.txt")
	p2 := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(p1, []byte("hello $Id: 1.2 2020/01/01$ world"), 0o644))
	require.NoError(t, os.WriteFile(p2, []byte("hello $Id: 1.7 2024/06/06$ world"), 0o644))

	eq, err := FilesEqual(p1, p2, FilesEqualOptions{IgnoreKey: true})
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestFilesEqual_IgnoreKeyStillCatchesBodyOutsideMarker(t *testing.T) {
	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.txt")
	p2 := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(p1, []byte("hello $Id: 1.2$ world"), 0o644))
	require.NoError(t, os.WriteFile(p2, []byte("hello $Id: 1.2$ planet"), 0o644))

	eq, err := FilesEqual(p1, p2, FilesEqualOptions{IgnoreKey: true})
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestRegsub_AppliedBeforeHashing(t *testing.T) {
	opts := DefaultOptions()
	opts.RegsubLeft = []RegsubRule{{Pattern: `\d+`, Replacement: "N"}}
	opts.RegsubRight = []RegsubRule{{Pattern: `\d+`, Replacement: "N"}}
	chunks := diffListsChunks(t, []string{"value 123"}, []string{"value 456"}, &opts)
	assert.Empty(t, chunks)
}

func TestRange_RestrictsComparedWindow(t *testing.T) {
	opts := DefaultOptions()
	// Only compare lines 2..3 on each side; line 1 differs but is out of
	// range so it must not appear in the result.
	opts.RFrom1, opts.RTo1 = 2, 3
	opts.RFrom2, opts.RTo2 = 2, 3
	a := []string{"DIFFERENT", "b", "c"}
	b := []string{"other", "b", "c"}
	chunks := diffListsChunks(t, a, b, &opts)
	assert.Empty(t, chunks)
}
