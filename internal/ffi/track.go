package ffi

/*
#include <stdlib.h>
#include <ffms.h>
*/
import "C"
import "unsafe"

// Track wraps an FFMS_Track pointer. Tracks are borrowed from an index
// or a source and own nothing; they stay valid only while their parent
// does.
type Track struct {
	ptr *C.FFMS_Track
}

// Type returns the track's type.
func (t *Track) Type() int {
	return int(C.FFMS_GetTrackType(t.ptr))
}

// NumFrames returns the number of frames in the track, or a negative
// value if the track was not indexed.
func (t *Track) NumFrames() int {
	return int(C.FFMS_GetNumFrames(t.ptr))
}

// TimeBase mirrors FFMS_TrackTimeBase.
type TimeBase struct {
	Num int64
	Den int64
}

// TimeBase returns the track's timestamp base.
func (t *Track) TimeBase() TimeBase {
	tb := C.FFMS_GetTimeBase(t.ptr)
	return TimeBase{Num: int64(tb.Num), Den: int64(tb.Den)}
}

// FrameInfo mirrors FFMS_FrameInfo.
type FrameInfo struct {
	PTS         int64
	RepeatPict  int
	KeyFrame    bool
	OriginalPTS int64
}

// FrameInfo returns metadata for frame n of the track. Returns nil for
// out-of-range frames; the safe layer validates first.
func (t *Track) FrameInfo(n int) *FrameInfo {
	fi := C.FFMS_GetFrameInfo(t.ptr, C.int(n))
	if fi == nil {
		return nil
	}
	return &FrameInfo{
		PTS:         int64(fi.PTS),
		RepeatPict:  int(fi.RepeatPict),
		KeyFrame:    fi.KeyFrame != 0,
		OriginalPTS: int64(fi.OriginalPTS),
	}
}

// WriteTimecodes dumps the track's timestamps to a v2 timecodes file.
func (t *Track) WriteTimecodes(path string) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	ei := newErrorInfo()
	defer ei.destroy()

	if C.FFMS_WriteTimecodes(t.ptr, cpath, ei.ptr()) != 0 {
		return ei.err()
	}
	return nil
}
