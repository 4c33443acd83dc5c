package ffms2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPixFmt(t *testing.T) {
	yuv420p, err := GetPixFmt("yuv420p")
	require.NoError(t, err)
	assert.NotEqual(t, PixelFormatNone, yuv420p)

	bgra, err := GetPixFmt("bgra")
	require.NoError(t, err)
	assert.NotEqual(t, PixelFormatNone, bgra)
	assert.NotEqual(t, yuv420p, bgra)
}

func TestGetPixFmtUnknown(t *testing.T) {
	id, err := GetPixFmt("not-a-pixel-format")
	assert.ErrorIs(t, err, ErrUnknownPixelFormat)
	assert.Equal(t, PixelFormatNone, id)
}

func TestPlaneRows(t *testing.T) {
	yuv420p, err := GetPixFmt("yuv420p")
	require.NoError(t, err)
	yuv444p, err := GetPixFmt("yuv444p")
	require.NoError(t, err)
	yuv410p, err := GetPixFmt("yuv410p")
	require.NoError(t, err)

	// Luma and alpha planes always span the full height.
	assert.Equal(t, 480, planeRows(yuv420p, 0, 480))
	assert.Equal(t, 480, planeRows(yuv420p, 3, 480))

	assert.Equal(t, 240, planeRows(yuv420p, 1, 480))
	assert.Equal(t, 480, planeRows(yuv444p, 1, 480))
	assert.Equal(t, 120, planeRows(yuv410p, 1, 480))

	// Odd heights round up.
	assert.Equal(t, 240, planeRows(yuv420p, 1, 479))
	assert.Equal(t, 120, planeRows(yuv410p, 2, 477))

	// Unknown formats fall back to the half-height estimate.
	assert.Equal(t, 240, planeRows(PixelFormatNone, 1, 480))
}
