package ffi

/*
#include <stdlib.h>
#include <stdint.h>
#include <ffms.h>

extern int goIndexProgress(int64_t Current, int64_t Total, void *ICPrivate);

static void ffms2goSetProgressCallback(FFMS_Indexer *indexer, void *private) {
	FFMS_SetProgressCallback(indexer, goIndexProgress, private);
}
*/
import "C"
import (
	"unsafe"

	pointer "github.com/mattn/go-pointer"
)

// Index owns an FFMS_Index pointer.
type Index struct {
	ptr *C.FFMS_Index
}

// ReadIndex deserializes an index file from disk.
func ReadIndex(path string) (*Index, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	ei := newErrorInfo()
	defer ei.destroy()

	ptr := C.FFMS_ReadIndex(cpath, ei.ptr())
	if ptr == nil {
		return nil, ei.err()
	}
	return &Index{ptr: ptr}, nil
}

// ReadIndexFromBuffer deserializes an index from an in-memory buffer.
func ReadIndexFromBuffer(buf []byte) (*Index, error) {
	if len(buf) == 0 {
		return nil, &Error{Type: ErrorIndex, Sub: ErrorInvalidArgument, Message: "empty index buffer"}
	}

	ei := newErrorInfo()
	defer ei.destroy()

	ptr := C.FFMS_ReadIndexFromBuffer(
		(*C.uint8_t)(unsafe.Pointer(&buf[0])),
		C.size_t(len(buf)),
		ei.ptr(),
	)
	if ptr == nil {
		return nil, ei.err()
	}
	return &Index{ptr: ptr}, nil
}

// Free destroys the index. Safe to call on a nil receiver; must not be
// called twice on the same pointer, which the safe layer guarantees.
func (ix *Index) Free() {
	if ix != nil && ix.ptr != nil {
		C.FFMS_DestroyIndex(ix.ptr)
		ix.ptr = nil
	}
}

// WriteIndex serializes the index to a file.
func (ix *Index) WriteIndex(path string) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	ei := newErrorInfo()
	defer ei.destroy()

	if C.FFMS_WriteIndex(cpath, ix.ptr, ei.ptr()) != 0 {
		return ei.err()
	}
	return nil
}

// WriteIndexToBuffer serializes the index into a fresh Go buffer. The
// native buffer is copied and released before returning, so the result
// has no lifetime ties to the index.
func (ix *Index) WriteIndexToBuffer() ([]byte, error) {
	ei := newErrorInfo()
	defer ei.destroy()

	var buf *C.uint8_t
	var size C.size_t
	if C.FFMS_WriteIndexToBuffer(&buf, &size, ix.ptr, ei.ptr()) != 0 {
		return nil, ei.err()
	}
	out := make([]byte, int(size))
	copy(out, unsafe.Slice((*byte)(unsafe.Pointer(buf)), int(size)))
	C.FFMS_FreeIndexBuffer(&buf)
	return out, nil
}

// BelongsToFile reports whether the index was built from the given file.
func (ix *Index) BelongsToFile(path string) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	ei := newErrorInfo()
	defer ei.destroy()

	if C.FFMS_IndexBelongsToFile(ix.ptr, cpath, ei.ptr()) != 0 {
		return ei.err()
	}
	return nil
}

// NumTracks returns the number of tracks in the indexed file.
func (ix *Index) NumTracks() int {
	return int(C.FFMS_GetNumTracks(ix.ptr))
}

// ErrorHandling returns the audio error handling mode the index was
// created with.
func (ix *Index) ErrorHandling() int {
	return int(C.FFMS_GetErrorHandling(ix.ptr))
}

// FirstTrackOfType returns the number of the first track of the given
// type, indexed or not.
func (ix *Index) FirstTrackOfType(trackType int) (int, error) {
	ei := newErrorInfo()
	defer ei.destroy()

	n := C.FFMS_GetFirstTrackOfType(ix.ptr, C.int(trackType), ei.ptr())
	if n < 0 {
		return 0, ei.err()
	}
	return int(n), nil
}

// FirstIndexedTrackOfType returns the number of the first track of the
// given type that was actually indexed.
func (ix *Index) FirstIndexedTrackOfType(trackType int) (int, error) {
	ei := newErrorInfo()
	defer ei.destroy()

	n := C.FFMS_GetFirstIndexedTrackOfType(ix.ptr, C.int(trackType), ei.ptr())
	if n < 0 {
		return 0, ei.err()
	}
	return int(n), nil
}

// TrackFromIndex returns the track metadata for the given track number.
// The track borrows from the index and carries no ownership.
func (ix *Index) TrackFromIndex(track int) *Track {
	return &Track{ptr: C.FFMS_GetTrackFromIndex(ix.ptr, C.int(track))}
}

// Indexer owns an FFMS_Indexer pointer. The native indexer is single
// shot: DoIndexing and Cancel both destroy it.
type Indexer struct {
	ptr      *C.FFMS_Indexer
	progress unsafe.Pointer
}

// CreateIndexer opens a media file for indexing.
func CreateIndexer(path string) (*Indexer, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	ei := newErrorInfo()
	defer ei.destroy()

	ptr := C.FFMS_CreateIndexer(cpath, ei.ptr())
	if ptr == nil {
		return nil, ei.err()
	}
	return &Indexer{ptr: ptr}, nil
}

// NumTracks returns the number of tracks in the file being indexed.
func (in *Indexer) NumTracks() int {
	return int(C.FFMS_GetNumTracksI(in.ptr))
}

// TrackType returns the type of the given track.
func (in *Indexer) TrackType(track int) int {
	return int(C.FFMS_GetTrackTypeI(in.ptr, C.int(track)))
}

// CodecName returns the human-readable codec name of the given track.
func (in *Indexer) CodecName(track int) string {
	return C.GoString(C.FFMS_GetCodecNameI(in.ptr, C.int(track)))
}

// FormatName returns the container format name of the file.
func (in *Indexer) FormatName() string {
	return C.GoString(C.FFMS_GetFormatNameI(in.ptr))
}

// TrackIndexSettings enables or disables indexing of a single track.
func (in *Indexer) TrackIndexSettings(track int, index bool) {
	C.FFMS_TrackIndexSettings(in.ptr, C.int(track), cbool(index), 0)
}

// TrackTypeIndexSettings enables or disables indexing of all tracks of
// a type.
func (in *Indexer) TrackTypeIndexSettings(trackType int, index bool) {
	C.FFMS_TrackTypeIndexSettings(in.ptr, C.int(trackType), cbool(index), 0)
}

// ProgressFunc receives indexing progress. Returning true cancels the
// indexing operation.
type ProgressFunc func(current, total int64) bool

// SetProgressCallback installs fn as the native progress callback. The
// closure crosses the C boundary as an opaque cookie; the cookie is
// released when the indexer is consumed or cancelled.
func (in *Indexer) SetProgressCallback(fn ProgressFunc) {
	in.releaseProgress()
	if fn == nil {
		C.ffms2goSetProgressCallback(in.ptr, nil)
		return
	}
	in.progress = pointer.Save(fn)
	C.ffms2goSetProgressCallback(in.ptr, in.progress)
}

func (in *Indexer) releaseProgress() {
	if in.progress != nil {
		pointer.Unref(in.progress)
		in.progress = nil
	}
}

// DoIndexing runs the indexing pass. The native indexer is destroyed by
// this call whether it succeeds or fails.
func (in *Indexer) DoIndexing(errorHandling int) (*Index, error) {
	ei := newErrorInfo()
	defer ei.destroy()
	defer in.releaseProgress()

	ptr := C.FFMS_DoIndexing2(in.ptr, C.int(errorHandling), ei.ptr())
	in.ptr = nil
	if ptr == nil {
		return nil, ei.err()
	}
	return &Index{ptr: ptr}, nil
}

// Cancel destroys an indexer that will not be run. Safe on nil.
func (in *Indexer) Cancel() {
	if in == nil {
		return
	}
	if in.ptr != nil {
		C.FFMS_CancelIndexing(in.ptr)
		in.ptr = nil
	}
	in.releaseProgress()
}

func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}
