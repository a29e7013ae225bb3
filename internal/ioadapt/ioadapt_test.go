package ioadapt

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woozymasta/lzo"
)

func TestIsArchive(t *testing.T) {
	assert.True(t, IsArchive("foo.gz"))
	assert.True(t, IsArchive("foo.bz2"))
	assert.True(t, IsArchive("foo.lzo"))
	assert.False(t, IsArchive("foo.txt"))
}

func TestOpen_PlainFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	rc, err := Open(path)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestOpen_GzipFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.gz")

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte("compressed content"))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	rc, err := Open(path)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "compressed content", string(data))
}

func TestOpen_LzoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.lzo")

	payload := []byte(strings.Repeat("compressed content via lzo1x ", 200))
	compressed, err := lzo.Compress(payload, lzo.DefaultCompressOptions())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, compressed, 0o644))

	rc, err := Open(path)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestOpen_LzoFile_GuessGrowsPastInitialOutLen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.lzo")

	// Larger than lzoInitialOutLen so decompressLZO must retry with a
	// bigger guess at least once.
	payload := bytes.Repeat([]byte("x"), lzoInitialOutLen*3)
	compressed, err := lzo.Compress(payload, lzo.DefaultCompressOptions())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, compressed, 0o644))

	rc, err := Open(path)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open("/no/such/path/here")
	assert.Error(t, err)
}

func TestCompareStreamsIgnoringKeywords_IdenticalPlainText(t *testing.T) {
	eq, err := CompareStreamsIgnoringKeywords(
		bytes.NewBufferString("hello world"),
		bytes.NewBufferString("hello world"),
		false,
	)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestCompareStreamsIgnoringKeywords_DifferingPlainText(t *testing.T) {
	eq, err := CompareStreamsIgnoringKeywords(
		bytes.NewBufferString("hello world"),
		bytes.NewBufferString("hello there"),
		false,
	)
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestCompareStreamsIgnoringKeywords_TolerantOfDifferingBody(t *testing.T) {
	eq, err := CompareStreamsIgnoringKeywords(
		bytes.NewBufferString("line $Revision: 1.1$ end"),
		bytes.NewBufferString("line $Revision: 9.9$ end"),
		false,
	)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestCompareStreamsIgnoringKeywords_CatchesDifferingKeywordName(t *testing.T) {
	eq, err := CompareStreamsIgnoringKeywords(
		bytes.NewBufferString("line $Revision: 1.1$ end"),
		bytes.NewBufferString("line $Author: 1.1$ end"),
		false,
	)
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestCompareStreamsIgnoringKeywords_NoCase(t *testing.T) {
	eq, err := CompareStreamsIgnoringKeywords(
		bytes.NewBufferString("HELLO WORLD"),
		bytes.NewBufferString("hello world"),
		true,
	)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestCompareStreamsIgnoringKeywords_TolerantWithinFirstChunk(t *testing.T) {
	pad := strings.Repeat("x", firstChunkSize-200)
	eq, err := CompareStreamsIgnoringKeywords(
		bytes.NewBufferString(pad + "line $Revision: 1.1$ end"),
		bytes.NewBufferString(pad + "line $Revision: 9.9$ end"),
		false,
	)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestCompareStreamsIgnoringKeywords_StrictBeyondFirstChunk(t *testing.T) {
	pad := strings.Repeat("x", firstChunkSize+200)
	eq, err := CompareStreamsIgnoringKeywords(
		bytes.NewBufferString(pad + "line $Revision: 1.1$ end"),
		bytes.NewBufferString(pad + "line $Revision: 9.9$ end"),
		false,
	)
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestCompareStreamsIgnoringKeywords_StrictBeyondFirstChunk_IdenticalBodyStillMatches(t *testing.T) {
	pad := strings.Repeat("x", firstChunkSize+200)
	eq, err := CompareStreamsIgnoringKeywords(
		bytes.NewBufferString(pad + "line $Revision: 1.1$ end"),
		bytes.NewBufferString(pad + "line $Revision: 1.1$ end"),
		false,
	)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestCompareStreamsIgnoringKeywords_DifferingLengthFails(t *testing.T) {
	eq, err := CompareStreamsIgnoringKeywords(
		bytes.NewBufferString("short"),
		bytes.NewBufferString("a much longer piece of text"),
		false,
	)
	require.NoError(t, err)
	assert.False(t, eq)
}
