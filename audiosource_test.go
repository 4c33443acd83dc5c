package ffms2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openAudioSource opens the first indexed audio track of the test media
// and registers cleanup for both the index and the source.
func openAudioSource(t *testing.T, opts ...AudioOption) *AudioSource {
	t.Helper()
	path, index := indexTestMedia(t)

	track, err := index.FirstIndexedTrackOfType(TypeAudio)
	if err != nil {
		t.Skipf("no indexed audio track in %s: %v", path, err)
	}

	source, err := NewAudioSource(path, track, index, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { source.Close() })
	return source
}

func TestNewAudioSourceValidation(t *testing.T) {
	path, index := indexTestMedia(t)

	_, err := NewAudioSource(path, -1, index)
	assert.ErrorIs(t, err, ErrInvalidTrack)

	numTracks, err := index.NumTracks()
	require.NoError(t, err)
	_, err = NewAudioSource(path, numTracks, index)
	assert.ErrorIs(t, err, ErrInvalidTrack)
}

func TestAudioSourceProperties(t *testing.T) {
	source := openAudioSource(t)

	props, err := source.Properties()
	require.NoError(t, err)
	assert.Greater(t, props.SampleRate, 0)
	assert.Greater(t, props.Channels, 0)
	assert.Greater(t, props.BitsPerSample, 0)
	assert.Greater(t, props.NumSamples, int64(0))
}

func TestReadAudio(t *testing.T) {
	source := openAudioSource(t)

	props, err := source.Properties()
	require.NoError(t, err)

	count := int64(1024)
	if count > props.NumSamples {
		count = props.NumSamples
	}

	buf, err := source.ReadAudio(0, count)
	require.NoError(t, err)
	expected := int(count) * props.BitsPerSample / 8 * props.Channels
	assert.Len(t, buf, expected)
}

func TestReadAudioRangeValidation(t *testing.T) {
	source := openAudioSource(t)

	props, err := source.Properties()
	require.NoError(t, err)

	_, err = source.ReadAudio(-1, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = source.ReadAudio(0, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = source.ReadAudio(props.NumSamples, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = source.ReadAudio(props.NumSamples-1, 2)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestResampleOptionsRoundTrip(t *testing.T) {
	source := openAudioSource(t)

	opts, err := source.CreateResampleOptions()
	require.NoError(t, err)
	assert.Greater(t, opts.SampleRate, 0)

	// Re-applying the current format must succeed and keep the
	// track-wide properties consistent.
	require.NoError(t, source.SetOutputFormat(opts))

	props, err := source.Properties()
	require.NoError(t, err)
	assert.Equal(t, opts.SampleRate, props.SampleRate)
}

func TestAudioSourceClosed(t *testing.T) {
	source := openAudioSource(t)
	require.NoError(t, source.Close())
	require.NoError(t, source.Close())

	_, err := source.Properties()
	assert.ErrorIs(t, err, ErrClosed)
	_, err = source.ReadAudio(0, 1)
	assert.ErrorIs(t, err, ErrClosed)
	_, err = source.CreateResampleOptions()
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, source.SetOutputFormat(ResampleOptions{}), ErrClosed)
	_, err = source.Track()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestAudioSourceTrack(t *testing.T) {
	source := openAudioSource(t)

	track, err := source.Track()
	require.NoError(t, err)

	trackType, err := track.Type()
	require.NoError(t, err)
	assert.Equal(t, TypeAudio, trackType)

	require.NoError(t, source.Close())
	_, err = track.Type()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestSampleFormatStrings(t *testing.T) {
	assert.Equal(t, "u8", FormatU8.String())
	assert.Equal(t, "s16", FormatS16.String())
	assert.Equal(t, "s32", FormatS32.String())
	assert.Equal(t, "flt", FormatFlt.String())
	assert.Equal(t, "dbl", FormatDbl.String())
}
