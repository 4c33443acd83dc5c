package ffms2

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gomedia/ffms2/internal/ffi"
)

func TestKindMappingExhaustive(t *testing.T) {
	kinds := map[int]ErrorKind{
		ffi.ErrorIndex:          KindIndex,
		ffi.ErrorIndexing:       KindIndexing,
		ffi.ErrorPostprocessing: KindPostprocessing,
		ffi.ErrorScaling:        KindScaling,
		ffi.ErrorDecoding:       KindDecoding,
		ffi.ErrorSeeking:        KindSeeking,
		ffi.ErrorParser:         KindParser,
		ffi.ErrorTrack:          KindTrack,
		ffi.ErrorWaveWriter:     KindWaveWriter,
		ffi.ErrorCancelled:      KindCancelled,
		ffi.ErrorResampling:     KindResampling,
	}
	for native, want := range kinds {
		assert.Equal(t, want, kindFromNative(native))
	}
	assert.Equal(t, KindUnknown, kindFromNative(-12345))

	subs := map[int]ErrorSub{
		ffi.ErrorUnsupported:      SubUnsupported,
		ffi.ErrorFileRead:         SubFileRead,
		ffi.ErrorFileWrite:        SubFileWrite,
		ffi.ErrorNoFile:           SubNoFile,
		ffi.ErrorVersion:          SubVersion,
		ffi.ErrorAllocationFailed: SubAllocationFailed,
		ffi.ErrorInvalidArgument:  SubInvalidArgument,
		ffi.ErrorCodec:            SubCodec,
		ffi.ErrorNotAvailable:     SubNotAvailable,
		ffi.ErrorFileMismatch:     SubFileMismatch,
		ffi.ErrorUser:             SubUser,
	}
	for native, want := range subs {
		assert.Equal(t, want, subFromNative(native))
	}
	assert.Equal(t, SubUnknown, subFromNative(-12345))
}

func TestKindStrings(t *testing.T) {
	for k := KindUnknown; k <= KindResampling; k++ {
		assert.NotEmpty(t, k.String())
	}
	for s := SubUnknown; s <= SubUser; s++ {
		assert.NotEmpty(t, s.String())
	}
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))

	native := &ffi.Error{Type: ffi.ErrorParser, Sub: ffi.ErrorNoFile, Message: "no such file"}
	err := translate(native)

	var ffmsErr *Error
	assert.ErrorAs(t, err, &ffmsErr)
	assert.Equal(t, KindParser, ffmsErr.Kind)
	assert.Equal(t, SubNoFile, ffmsErr.Sub)
	assert.Contains(t, ffmsErr.Error(), "no such file")
	assert.Contains(t, ffmsErr.Error(), "file parsing")

	// Non-native errors pass through untouched.
	sentinel := errors.New("plain")
	assert.Equal(t, sentinel, translate(sentinel))
}

func TestErrorWithoutMessage(t *testing.T) {
	err := &Error{Kind: KindSeeking, Sub: SubCodec}
	assert.Contains(t, err.Error(), "seeking")
	assert.Contains(t, err.Error(), "codec error")
}
