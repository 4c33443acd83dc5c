package ffms2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openVideoSource opens the first indexed video track of the test media
// and registers cleanup for both the index and the source.
func openVideoSource(t *testing.T, opts ...VideoOption) *VideoSource {
	t.Helper()
	path, index := indexTestMedia(t)

	track, err := index.FirstIndexedTrackOfType(TypeVideo)
	if err != nil {
		t.Skipf("no indexed video track in %s: %v", path, err)
	}

	source, err := NewVideoSource(path, track, index, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { source.Close() })
	return source
}

func TestNewVideoSourceValidation(t *testing.T) {
	path, index := indexTestMedia(t)

	_, err := NewVideoSource(path, -1, index)
	assert.ErrorIs(t, err, ErrInvalidTrack)

	numTracks, err := index.NumTracks()
	require.NoError(t, err)
	_, err = NewVideoSource(path, numTracks, index)
	assert.ErrorIs(t, err, ErrInvalidTrack)
}

func TestNewVideoSourceClosedIndex(t *testing.T) {
	path := testMediaPath(t)
	index, err := IndexFile(path)
	require.NoError(t, err)
	require.NoError(t, index.Close())

	_, err = NewVideoSource(path, 0, index)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestVideoSourceProperties(t *testing.T) {
	source := openVideoSource(t)

	props, err := source.Properties()
	require.NoError(t, err)
	assert.Greater(t, props.NumFrames, 0)
	assert.Greater(t, props.FPSNumerator, 0)
	assert.Greater(t, props.FPSDenominator, 0)
	assert.LessOrEqual(t, props.FirstTime, props.LastTime)

	numFrames, err := source.NumFrames()
	require.NoError(t, err)
	assert.Equal(t, props.NumFrames, numFrames)
}

func TestVideoSourceFrame(t *testing.T) {
	source := openVideoSource(t)

	frame, err := source.Frame(0)
	require.NoError(t, err)

	assert.Greater(t, frame.Width(), 0)
	assert.Greater(t, frame.Height(), 0)
	assert.True(t, frame.KeyFrame, "frame 0 should be a keyframe")
	assert.True(t, frame.Valid())

	plane, err := frame.Plane(0)
	require.NoError(t, err)
	assert.NotEmpty(t, plane)
	assert.GreaterOrEqual(t, len(plane), frame.Width())
}

func TestVideoSourceFrameRange(t *testing.T) {
	source := openVideoSource(t)

	numFrames, err := source.NumFrames()
	require.NoError(t, err)

	_, err = source.Frame(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = source.Frame(numFrames)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestFrameStaleness(t *testing.T) {
	source := openVideoSource(t)

	numFrames, err := source.NumFrames()
	require.NoError(t, err)
	if numFrames < 2 {
		t.Skip("need at least two frames")
	}

	first, err := source.Frame(0)
	require.NoError(t, err)

	// Copies taken while the frame is live survive invalidation.
	kept, err := first.CopyPlane(0)
	require.NoError(t, err)
	require.NotEmpty(t, kept)

	second, err := source.Frame(1)
	require.NoError(t, err)

	assert.False(t, first.Valid())
	assert.True(t, second.Valid())

	_, err = first.Plane(0)
	assert.ErrorIs(t, err, ErrStaleFrame)
	_, err = first.CopyPlane(0)
	assert.ErrorIs(t, err, ErrStaleFrame)

	// Scalar metadata stays usable on stale frames.
	assert.Greater(t, first.Width(), 0)
}

func TestFrameInvalidatedByClose(t *testing.T) {
	source := openVideoSource(t)

	frame, err := source.Frame(0)
	require.NoError(t, err)
	require.NoError(t, source.Close())

	assert.False(t, frame.Valid())
	_, err = frame.Plane(0)
	assert.ErrorIs(t, err, ErrStaleFrame)
}

func TestFrameByTime(t *testing.T) {
	source := openVideoSource(t)

	props, err := source.Properties()
	require.NoError(t, err)

	frame, err := source.FrameByTime(props.FirstTime)
	require.NoError(t, err)
	assert.True(t, frame.Valid())
}

func TestSetOutputFormat(t *testing.T) {
	source := openVideoSource(t)

	format, err := GetPixFmt("yuv420p")
	require.NoError(t, err)

	before, err := source.Frame(0)
	require.NoError(t, err)
	width, height := before.Width(), before.Height()

	require.NoError(t, source.SetOutputFormat([]PixelFormat{format}, width, height, ResizerBilinear))

	// Format changes invalidate live frames.
	assert.False(t, before.Valid())

	frame, err := source.Frame(0)
	require.NoError(t, err)
	assert.Equal(t, format, frame.ConvertedPixelFormat)
	assert.Equal(t, width, frame.Width())
	assert.Equal(t, height, frame.Height())

	// yuv420p has three planes with subsampled chroma.
	luma, err := frame.Plane(0)
	require.NoError(t, err)
	chroma, err := frame.Plane(1)
	require.NoError(t, err)
	assert.NotEmpty(t, luma)
	assert.NotEmpty(t, chroma)
	assert.Less(t, len(chroma), len(luma))

	require.NoError(t, source.ResetOutputFormat())
	assert.False(t, frame.Valid())
}

func TestSetOutputFormatValidation(t *testing.T) {
	source := openVideoSource(t)

	err := source.SetOutputFormat(nil, 64, 64, ResizerBilinear)
	assert.ErrorIs(t, err, ErrOutOfRange)
	err = source.SetOutputFormat([]PixelFormat{PixelFormatNone}, 0, 64, ResizerBilinear)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestVideoSourceClosed(t *testing.T) {
	source := openVideoSource(t)
	require.NoError(t, source.Close())
	require.NoError(t, source.Close())

	_, err := source.Properties()
	assert.ErrorIs(t, err, ErrClosed)
	_, err = source.Frame(0)
	assert.ErrorIs(t, err, ErrClosed)
	_, err = source.FrameByTime(0)
	assert.ErrorIs(t, err, ErrClosed)
	_, err = source.Track()
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, source.ResetOutputFormat(), ErrClosed)
}

func TestVideoSourceTrack(t *testing.T) {
	source := openVideoSource(t)

	track, err := source.Track()
	require.NoError(t, err)

	trackType, err := track.Type()
	require.NoError(t, err)
	assert.Equal(t, TypeVideo, trackType)

	numFrames, err := track.NumFrames()
	require.NoError(t, err)
	assert.Greater(t, numFrames, 0)

	tb, err := track.TimeBase()
	require.NoError(t, err)
	assert.Greater(t, tb.Den, int64(0))

	info, err := track.FrameInfo(0)
	require.NoError(t, err)
	assert.True(t, info.KeyFrame)

	_, err = track.FrameInfo(numFrames)
	assert.ErrorIs(t, err, ErrOutOfRange)

	// Tracks borrowed from a source die with it.
	require.NoError(t, source.Close())
	_, err = track.NumFrames()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestWriteTimecodes(t *testing.T) {
	source := openVideoSource(t)

	track, err := source.Track()
	require.NoError(t, err)

	path := t.TempDir() + "/timecodes.txt"
	require.NoError(t, track.WriteTimecodes(path))
}
