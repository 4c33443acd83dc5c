package ffms2

import (
	"github.com/gomedia/ffms2/internal/ffi"
)

// TrackType identifies the kind of data a track carries.
type TrackType int

const (
	TypeUnknown    = TrackType(ffi.TypeUnknown)
	TypeVideo      = TrackType(ffi.TypeVideo)
	TypeAudio      = TrackType(ffi.TypeAudio)
	TypeData       = TrackType(ffi.TypeData)
	TypeSubtitle   = TrackType(ffi.TypeSubtitle)
	TypeAttachment = TrackType(ffi.TypeAttachment)
)

func (t TrackType) String() string {
	switch t {
	case TypeVideo:
		return "video"
	case TypeAudio:
		return "audio"
	case TypeData:
		return "data"
	case TypeSubtitle:
		return "subtitle"
	case TypeAttachment:
		return "attachment"
	default:
		return "unknown"
	}
}

// TimeBase is the unit of a track's timestamps: PTS * Num / Den
// milliseconds.
type TimeBase struct {
	Num int64
	Den int64
}

// FrameInfo is per-frame metadata from the index.
type FrameInfo struct {
	// PTS is the frame's presentation timestamp in TimeBase units.
	PTS int64
	// RepeatPict signals soft telecine repetition (RFF flag).
	RepeatPict int
	// KeyFrame reports whether seeking can start at this frame.
	KeyFrame bool
	// OriginalPTS is the timestamp before FFMS2's adjustments.
	OriginalPTS int64
}

// liveness lets a borrowed Track notice its parent handle closing.
type liveness interface {
	ok() bool
}

// Track is a borrowed view of one track's metadata. It owns no native
// resource and is valid only while the Index, VideoSource or
// AudioSource it came from is open; afterwards every method returns
// ErrClosed. Not safe for concurrent use.
type Track struct {
	raw    *ffi.Track
	parent liveness
}

// Type returns the track's type.
func (t *Track) Type() (TrackType, error) {
	if !t.parent.ok() {
		return TypeUnknown, ErrClosed
	}
	return TrackType(t.raw.Type()), nil
}

// NumFrames returns the number of frames in the track. Zero means the
// track was not indexed.
func (t *Track) NumFrames() (int, error) {
	if !t.parent.ok() {
		return 0, ErrClosed
	}
	n := t.raw.NumFrames()
	if n < 0 {
		return 0, nil
	}
	return n, nil
}

// TimeBase returns the unit of the track's timestamps.
func (t *Track) TimeBase() (TimeBase, error) {
	if !t.parent.ok() {
		return TimeBase{}, ErrClosed
	}
	tb := t.raw.TimeBase()
	return TimeBase{Num: tb.Num, Den: tb.Den}, nil
}

// FrameInfo returns metadata for frame n.
func (t *Track) FrameInfo(n int) (FrameInfo, error) {
	if !t.parent.ok() {
		return FrameInfo{}, ErrClosed
	}
	if n < 0 || n >= t.raw.NumFrames() {
		return FrameInfo{}, ErrOutOfRange
	}
	fi := t.raw.FrameInfo(n)
	if fi == nil {
		return FrameInfo{}, ErrOutOfRange
	}
	return FrameInfo{
		PTS:         fi.PTS,
		RepeatPict:  fi.RepeatPict,
		KeyFrame:    fi.KeyFrame,
		OriginalPTS: fi.OriginalPTS,
	}, nil
}

// WriteTimecodes writes the track's timestamps to a v2 timecodes file.
func (t *Track) WriteTimecodes(path string) error {
	if !t.parent.ok() {
		return ErrClosed
	}
	return translate(t.raw.WriteTimecodes(path))
}
