package ffms2

import (
	"github.com/gomedia/ffms2/internal/ffi"
)

// Indexer owns a native FFMS_Indexer and builds an Index from a media
// file.
//
// The native indexer is single shot: DoIndexing destroys it whether
// indexing succeeds, fails or is cancelled, so configuration calls must
// all happen before DoIndexing and the indexer cannot be reused. Close
// cancels an indexer that was never run. Not safe for concurrent use.
type Indexer struct {
	raw      *ffi.Indexer
	consumed bool
	closed   bool
}

// NewIndexer opens a media file for indexing.
func NewIndexer(path string) (*Indexer, error) {
	raw, err := ffi.CreateIndexer(path)
	if err != nil {
		return nil, translate(err)
	}
	return &Indexer{raw: raw}, nil
}

// Close cancels indexing and destroys the native indexer if it was not
// already consumed by DoIndexing. Idempotent.
func (in *Indexer) Close() error {
	if in.closed {
		return nil
	}
	in.closed = true
	if !in.consumed {
		in.raw.Cancel()
	}
	return nil
}

func (in *Indexer) usable() error {
	if in.closed {
		return ErrClosed
	}
	if in.consumed {
		return ErrIndexerConsumed
	}
	return nil
}

// NumTracks returns the number of tracks in the file.
func (in *Indexer) NumTracks() (int, error) {
	if err := in.usable(); err != nil {
		return 0, err
	}
	return in.raw.NumTracks(), nil
}

// TrackType returns the type of track n.
func (in *Indexer) TrackType(n int) (TrackType, error) {
	if err := in.usable(); err != nil {
		return TypeUnknown, err
	}
	if n < 0 || n >= in.raw.NumTracks() {
		return TypeUnknown, ErrInvalidTrack
	}
	return TrackType(in.raw.TrackType(n)), nil
}

// CodecName returns the human-readable codec name of track n.
func (in *Indexer) CodecName(n int) (string, error) {
	if err := in.usable(); err != nil {
		return "", err
	}
	if n < 0 || n >= in.raw.NumTracks() {
		return "", ErrInvalidTrack
	}
	return in.raw.CodecName(n), nil
}

// FormatName returns the container format name of the file.
func (in *Indexer) FormatName() (string, error) {
	if err := in.usable(); err != nil {
		return "", err
	}
	return in.raw.FormatName(), nil
}

// TrackIndexSettings enables or disables indexing of track n. Video
// tracks are always indexed; this matters for audio tracks.
func (in *Indexer) TrackIndexSettings(n int, index bool) error {
	if err := in.usable(); err != nil {
		return err
	}
	if n < 0 || n >= in.raw.NumTracks() {
		return ErrInvalidTrack
	}
	in.raw.TrackIndexSettings(n, index)
	return nil
}

// TrackTypeIndexSettings enables or disables indexing of every track of
// the given type.
func (in *Indexer) TrackTypeIndexSettings(t TrackType, index bool) error {
	if err := in.usable(); err != nil {
		return err
	}
	in.raw.TrackTypeIndexSettings(int(t), index)
	return nil
}

// SetProgressCallback installs a progress callback invoked from the
// indexing loop. Returning true from the callback cancels indexing,
// which surfaces from DoIndexing as a KindCancelled error.
func (in *Indexer) SetProgressCallback(fn func(current, total int64) bool) error {
	if err := in.usable(); err != nil {
		return err
	}
	in.raw.SetProgressCallback(ffi.ProgressFunc(fn))
	return nil
}

// DoIndexing runs the indexing pass and returns the finished index.
// The indexer is consumed by this call regardless of the outcome.
func (in *Indexer) DoIndexing(errorHandling IndexErrorHandling) (*Index, error) {
	if err := in.usable(); err != nil {
		return nil, err
	}
	in.consumed = true
	raw, err := in.raw.DoIndexing(int(errorHandling))
	if err != nil {
		return nil, translate(err)
	}
	return &Index{raw: raw}, nil
}

// IndexFile is a convenience that indexes path with default settings:
// all video tracks, no audio tracks, IEHAbort error handling.
func IndexFile(path string) (*Index, error) {
	in, err := NewIndexer(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return in.DoIndexing(IEHAbort)
}
