package ffms2

import (
	"github.com/gomedia/ffms2/internal/ffi"
)

// IndexErrorHandling selects what happens when indexing hits a decoding
// error in an audio track.
type IndexErrorHandling int

const (
	// IEHAbort aborts indexing and returns an error.
	IEHAbort = IndexErrorHandling(ffi.IEHAbort)
	// IEHClearTrack clears the failing track and keeps going.
	IEHClearTrack = IndexErrorHandling(ffi.IEHClearTrack)
	// IEHStopTrack stops indexing the failing track and keeps going.
	IEHStopTrack = IndexErrorHandling(ffi.IEHStopTrack)
	// IEHIgnore pretends the error never happened.
	IEHIgnore = IndexErrorHandling(ffi.IEHIgnore)
)

func (h IndexErrorHandling) String() string {
	switch h {
	case IEHAbort:
		return "abort"
	case IEHClearTrack:
		return "clear-track"
	case IEHStopTrack:
		return "stop-track"
	case IEHIgnore:
		return "ignore"
	default:
		return "unknown"
	}
}

// Index owns a native FFMS_Index: the seek tables and metadata for one
// media file. Not safe for concurrent use.
type Index struct {
	raw    *ffi.Index
	closed bool
}

// ReadIndex deserializes an index file previously written with
// WriteIndex (or by the ffmsindex tool).
func ReadIndex(path string) (*Index, error) {
	raw, err := ffi.ReadIndex(path)
	if err != nil {
		return nil, translate(err)
	}
	return &Index{raw: raw}, nil
}

// ReadIndexFromBuffer deserializes an index from memory.
func ReadIndexFromBuffer(buf []byte) (*Index, error) {
	raw, err := ffi.ReadIndexFromBuffer(buf)
	if err != nil {
		return nil, translate(err)
	}
	return &Index{raw: raw}, nil
}

// Close destroys the native index. Idempotent; only the first call
// releases the resource. Sources created from the index are unaffected.
func (ix *Index) Close() error {
	if ix.closed {
		return nil
	}
	ix.closed = true
	ix.raw.Free()
	return nil
}

// WriteIndex serializes the index to a file.
func (ix *Index) WriteIndex(path string) error {
	if ix.closed {
		return ErrClosed
	}
	return translate(ix.raw.WriteIndex(path))
}

// WriteIndexToBuffer serializes the index into a byte slice owned by
// the caller.
func (ix *Index) WriteIndexToBuffer() ([]byte, error) {
	if ix.closed {
		return nil, ErrClosed
	}
	buf, err := ix.raw.WriteIndexToBuffer()
	if err != nil {
		return nil, translate(err)
	}
	return buf, nil
}

// BelongsToFile returns nil if the index was created from the given
// file, and an *Error with SubFileMismatch otherwise.
func (ix *Index) BelongsToFile(path string) error {
	if ix.closed {
		return ErrClosed
	}
	return translate(ix.raw.BelongsToFile(path))
}

// NumTracks returns the number of tracks in the indexed file.
func (ix *Index) NumTracks() (int, error) {
	if ix.closed {
		return 0, ErrClosed
	}
	return ix.raw.NumTracks(), nil
}

// ErrorHandling returns the audio error handling mode used when the
// index was created.
func (ix *Index) ErrorHandling() (IndexErrorHandling, error) {
	if ix.closed {
		return 0, ErrClosed
	}
	return IndexErrorHandling(ix.raw.ErrorHandling()), nil
}

// FirstTrackOfType returns the number of the first track of the given
// type, whether or not it was indexed.
func (ix *Index) FirstTrackOfType(t TrackType) (int, error) {
	if ix.closed {
		return 0, ErrClosed
	}
	n, err := ix.raw.FirstTrackOfType(int(t))
	if err != nil {
		return 0, translate(err)
	}
	return n, nil
}

// FirstIndexedTrackOfType returns the number of the first indexed track
// of the given type.
func (ix *Index) FirstIndexedTrackOfType(t TrackType) (int, error) {
	if ix.closed {
		return 0, ErrClosed
	}
	n, err := ix.raw.FirstIndexedTrackOfType(int(t))
	if err != nil {
		return 0, translate(err)
	}
	return n, nil
}

// Track returns the metadata for track number n. The returned Track
// borrows from the index and becomes unusable once the index is closed.
func (ix *Index) Track(n int) (*Track, error) {
	if ix.closed {
		return nil, ErrClosed
	}
	if n < 0 || n >= ix.raw.NumTracks() {
		return nil, ErrInvalidTrack
	}
	return &Track{raw: ix.raw.TrackFromIndex(n), parent: ix}, nil
}

func (ix *Index) ok() bool { return !ix.closed }
