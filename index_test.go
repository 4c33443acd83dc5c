package ffms2

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIndexerMissingFile(t *testing.T) {
	indexer, err := NewIndexer("/nonexistent/path/to/nothing.mkv")
	assert.Nil(t, indexer)

	var ffmsErr *Error
	require.ErrorAs(t, err, &ffmsErr)
	assert.NotEqual(t, KindUnknown, ffmsErr.Kind)
}

func TestReadIndexMissingFile(t *testing.T) {
	index, err := ReadIndex("/nonexistent/path/to/nothing.ffindex")
	assert.Nil(t, index)
	assert.Error(t, err)
}

func TestReadIndexFromBufferRejectsGarbage(t *testing.T) {
	index, err := ReadIndexFromBuffer(nil)
	assert.Nil(t, index)
	assert.Error(t, err)

	index, err = ReadIndexFromBuffer([]byte("definitely not an ffindex"))
	assert.Nil(t, index)
	assert.Error(t, err)
}

func TestIndexRoundTrip(t *testing.T) {
	path, index := indexTestMedia(t)

	numTracks, err := index.NumTracks()
	require.NoError(t, err)
	require.Greater(t, numTracks, 0)

	require.NoError(t, index.BelongsToFile(path))

	// Serialize to disk and reload.
	dir := t.TempDir()
	indexPath := filepath.Join(dir, "media.ffindex")
	require.NoError(t, index.WriteIndex(indexPath))

	reloaded, err := ReadIndex(indexPath)
	require.NoError(t, err)
	defer reloaded.Close()

	reloadedTracks, err := reloaded.NumTracks()
	require.NoError(t, err)
	assert.Equal(t, numTracks, reloadedTracks)
	assert.NoError(t, reloaded.BelongsToFile(path))

	// Serialize to memory and reload.
	buf, err := index.WriteIndexToBuffer()
	require.NoError(t, err)
	require.NotEmpty(t, buf)

	fromBuf, err := ReadIndexFromBuffer(buf)
	require.NoError(t, err)
	defer fromBuf.Close()

	bufTracks, err := fromBuf.NumTracks()
	require.NoError(t, err)
	assert.Equal(t, numTracks, bufTracks)
}

func TestIndexBelongsToFileMismatch(t *testing.T) {
	_, index := indexTestMedia(t)

	other := filepath.Join(t.TempDir(), "other.bin")
	require.NoError(t, os.WriteFile(other, []byte("not the same file at all"), 0o644))

	err := index.BelongsToFile(other)
	require.Error(t, err)
}

func TestIndexCloseIdempotent(t *testing.T) {
	path := testMediaPath(t)
	index, err := IndexFile(path)
	require.NoError(t, err)

	require.NoError(t, index.Close())
	require.NoError(t, index.Close())

	_, err = index.NumTracks()
	assert.ErrorIs(t, err, ErrClosed)
	_, err = index.Track(0)
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, index.WriteIndex("unused"), ErrClosed)
}

func TestIndexTrackValidation(t *testing.T) {
	_, index := indexTestMedia(t)

	numTracks, err := index.NumTracks()
	require.NoError(t, err)

	_, err = index.Track(-1)
	assert.ErrorIs(t, err, ErrInvalidTrack)
	_, err = index.Track(numTracks)
	assert.ErrorIs(t, err, ErrInvalidTrack)

	track, err := index.Track(0)
	require.NoError(t, err)
	trackType, err := track.Type()
	require.NoError(t, err)
	assert.NotEqual(t, TypeUnknown, trackType)
}

func TestTrackOutlivesIndexGracefully(t *testing.T) {
	path := testMediaPath(t)
	index, err := IndexFile(path)
	require.NoError(t, err)

	track, err := index.Track(0)
	require.NoError(t, err)

	require.NoError(t, index.Close())

	_, err = track.Type()
	assert.ErrorIs(t, err, ErrClosed)
	_, err = track.NumFrames()
	assert.ErrorIs(t, err, ErrClosed)
	_, err = track.FrameInfo(0)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestIndexerMetadata(t *testing.T) {
	path := testMediaPath(t)

	indexer, err := NewIndexer(path)
	require.NoError(t, err)
	defer indexer.Close()

	numTracks, err := indexer.NumTracks()
	require.NoError(t, err)
	require.Greater(t, numTracks, 0)

	format, err := indexer.FormatName()
	require.NoError(t, err)
	assert.NotEmpty(t, format)

	for i := 0; i < numTracks; i++ {
		trackType, err := indexer.TrackType(i)
		require.NoError(t, err)
		t.Logf("track %d: %s (%s)", i, trackType, mustCodecName(t, indexer, i))
	}

	_, err = indexer.TrackType(numTracks)
	assert.ErrorIs(t, err, ErrInvalidTrack)
}

func mustCodecName(t *testing.T, indexer *Indexer, track int) string {
	t.Helper()
	name, err := indexer.CodecName(track)
	require.NoError(t, err)
	return name
}

func TestIndexerProgressAndConsumption(t *testing.T) {
	path := testMediaPath(t)

	indexer, err := NewIndexer(path)
	require.NoError(t, err)
	defer indexer.Close()

	var calls int
	var lastTotal int64
	require.NoError(t, indexer.SetProgressCallback(func(current, total int64) bool {
		calls++
		lastTotal = total
		return false
	}))

	index, err := indexer.DoIndexing(IEHAbort)
	require.NoError(t, err)
	defer index.Close()

	assert.Greater(t, calls, 0)
	assert.Greater(t, lastTotal, int64(0))

	// The native indexer is gone; everything but Close must refuse.
	_, err = indexer.NumTracks()
	assert.ErrorIs(t, err, ErrIndexerConsumed)
	_, err = indexer.DoIndexing(IEHAbort)
	assert.ErrorIs(t, err, ErrIndexerConsumed)
	assert.NoError(t, indexer.Close())
}

func TestIndexerCancelThroughCallback(t *testing.T) {
	path := testMediaPath(t)

	indexer, err := NewIndexer(path)
	require.NoError(t, err)
	defer indexer.Close()

	require.NoError(t, indexer.SetProgressCallback(func(current, total int64) bool {
		return true // cancel immediately
	}))

	index, err := indexer.DoIndexing(IEHAbort)
	require.Nil(t, index)
	require.Error(t, err)

	var ffmsErr *Error
	require.ErrorAs(t, err, &ffmsErr)
	assert.Equal(t, KindCancelled, ffmsErr.Kind)
}

func TestIndexErrorHandlingStrings(t *testing.T) {
	assert.Equal(t, "abort", IEHAbort.String())
	assert.Equal(t, "ignore", IEHIgnore.String())
	assert.Equal(t, "stop-track", IEHStopTrack.String())
	assert.Equal(t, "clear-track", IEHClearTrack.String())
}

func TestRepeatedIndexCycles(t *testing.T) {
	path := testMediaPath(t)

	// Construct/destroy cycles must not exhaust native resources.
	for i := 0; i < 16; i++ {
		index, err := IndexFile(path)
		require.NoError(t, err)
		require.NoError(t, index.Close())
	}
}
