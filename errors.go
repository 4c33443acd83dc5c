package ffms2

import (
	"errors"
	"fmt"

	"github.com/gomedia/ffms2/internal/ffi"
)

// Errors returned by the wrapper before a native call is attempted.
var (
	// ErrClosed is returned by any operation on a destroyed handle.
	ErrClosed = errors.New("ffms2: handle is closed")

	// ErrIndexerConsumed is returned when an indexer is used after
	// DoIndexing, which destroys the native indexer.
	ErrIndexerConsumed = errors.New("ffms2: indexer already consumed by DoIndexing")

	// ErrInvalidTrack is returned for track numbers outside the file.
	ErrInvalidTrack = errors.New("ffms2: invalid track number")

	// ErrWrongTrackType is returned when a track has the wrong type
	// for the requested operation.
	ErrWrongTrackType = errors.New("ffms2: wrong track type")

	// ErrOutOfRange is returned for frame or sample positions outside
	// the track.
	ErrOutOfRange = errors.New("ffms2: position out of range")

	// ErrStaleFrame is returned when frame plane data is accessed
	// after the owning video source invalidated it.
	ErrStaleFrame = errors.New("ffms2: frame data invalidated by a later call on the video source")

	// ErrUnknownPixelFormat is returned when a pixel format name does
	// not resolve.
	ErrUnknownPixelFormat = errors.New("ffms2: unknown pixel format")
)

// ErrorKind classifies a native error by the subsystem it came from.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindIndex
	KindIndexing
	KindPostprocessing
	KindScaling
	KindDecoding
	KindSeeking
	KindParser
	KindTrack
	KindWaveWriter
	KindCancelled
	KindResampling
)

func (k ErrorKind) String() string {
	switch k {
	case KindIndex:
		return "index file handling"
	case KindIndexing:
		return "indexing"
	case KindPostprocessing:
		return "video postprocessing"
	case KindScaling:
		return "image scaling"
	case KindDecoding:
		return "decoding"
	case KindSeeking:
		return "seeking"
	case KindParser:
		return "file parsing"
	case KindTrack:
		return "track handling"
	case KindWaveWriter:
		return "wave writer"
	case KindCancelled:
		return "cancelled"
	case KindResampling:
		return "audio resampling"
	default:
		return "unknown"
	}
}

// ErrorSub refines an ErrorKind with the native cause.
type ErrorSub int

const (
	SubUnknown ErrorSub = iota
	SubUnsupported
	SubFileRead
	SubFileWrite
	SubNoFile
	SubVersion
	SubAllocationFailed
	SubInvalidArgument
	SubCodec
	SubNotAvailable
	SubFileMismatch
	SubUser
)

func (s ErrorSub) String() string {
	switch s {
	case SubUnsupported:
		return "format or operation unsupported"
	case SubFileRead:
		return "cannot read file"
	case SubFileWrite:
		return "cannot write file"
	case SubNoFile:
		return "no such file"
	case SubVersion:
		return "wrong version"
	case SubAllocationFailed:
		return "allocation failed"
	case SubInvalidArgument:
		return "invalid argument"
	case SubCodec:
		return "codec error"
	case SubNotAvailable:
		return "mode or operation not available"
	case SubFileMismatch:
		return "index does not match file"
	case SubUser:
		return "user error"
	default:
		return "unknown"
	}
}

// Error is a failure reported by the native library, carrying the
// native classification and message.
type Error struct {
	Kind    ErrorKind
	Sub     ErrorSub
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("ffms2: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("ffms2: %s: %s", e.Kind, e.Sub)
}

func kindFromNative(t int) ErrorKind {
	switch t {
	case ffi.ErrorIndex:
		return KindIndex
	case ffi.ErrorIndexing:
		return KindIndexing
	case ffi.ErrorPostprocessing:
		return KindPostprocessing
	case ffi.ErrorScaling:
		return KindScaling
	case ffi.ErrorDecoding:
		return KindDecoding
	case ffi.ErrorSeeking:
		return KindSeeking
	case ffi.ErrorParser:
		return KindParser
	case ffi.ErrorTrack:
		return KindTrack
	case ffi.ErrorWaveWriter:
		return KindWaveWriter
	case ffi.ErrorCancelled:
		return KindCancelled
	case ffi.ErrorResampling:
		return KindResampling
	default:
		return KindUnknown
	}
}

func subFromNative(s int) ErrorSub {
	switch s {
	case ffi.ErrorUnsupported:
		return SubUnsupported
	case ffi.ErrorFileRead:
		return SubFileRead
	case ffi.ErrorFileWrite:
		return SubFileWrite
	case ffi.ErrorNoFile:
		return SubNoFile
	case ffi.ErrorVersion:
		return SubVersion
	case ffi.ErrorAllocationFailed:
		return SubAllocationFailed
	case ffi.ErrorInvalidArgument:
		return SubInvalidArgument
	case ffi.ErrorCodec:
		return SubCodec
	case ffi.ErrorNotAvailable:
		return SubNotAvailable
	case ffi.ErrorFileMismatch:
		return SubFileMismatch
	case ffi.ErrorUser:
		return SubUser
	default:
		return SubUnknown
	}
}

// translate converts a raw-layer error into the public error model.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var fe *ffi.Error
	if errors.As(err, &fe) {
		return &Error{
			Kind:    kindFromNative(fe.Type),
			Sub:     subFromNative(fe.Sub),
			Message: fe.Message,
		}
	}
	return err
}
