package ffi

/*
#include <stdlib.h>
#include <ffms.h>
*/
import "C"
import (
	"fmt"
	"unsafe"
)

// Native error type constants (FFMS_Errors).
const (
	ErrorSuccess        = int(C.FFMS_ERROR_SUCCESS)
	ErrorIndex          = int(C.FFMS_ERROR_INDEX)
	ErrorIndexing       = int(C.FFMS_ERROR_INDEXING)
	ErrorPostprocessing = int(C.FFMS_ERROR_POSTPROCESSING)
	ErrorScaling        = int(C.FFMS_ERROR_SCALING)
	ErrorDecoding       = int(C.FFMS_ERROR_DECODING)
	ErrorSeeking        = int(C.FFMS_ERROR_SEEKING)
	ErrorParser         = int(C.FFMS_ERROR_PARSER)
	ErrorTrack          = int(C.FFMS_ERROR_TRACK)
	ErrorWaveWriter     = int(C.FFMS_ERROR_WAVE_WRITER)
	ErrorCancelled      = int(C.FFMS_ERROR_CANCELLED)
	ErrorResampling     = int(C.FFMS_ERROR_RESAMPLING)

	ErrorUnknown          = int(C.FFMS_ERROR_UNKNOWN)
	ErrorUnsupported      = int(C.FFMS_ERROR_UNSUPPORTED)
	ErrorFileRead         = int(C.FFMS_ERROR_FILE_READ)
	ErrorFileWrite        = int(C.FFMS_ERROR_FILE_WRITE)
	ErrorNoFile           = int(C.FFMS_ERROR_NO_FILE)
	ErrorVersion          = int(C.FFMS_ERROR_VERSION)
	ErrorAllocationFailed = int(C.FFMS_ERROR_ALLOCATION_FAILED)
	ErrorInvalidArgument  = int(C.FFMS_ERROR_INVALID_ARGUMENT)
	ErrorCodec            = int(C.FFMS_ERROR_CODEC)
	ErrorNotAvailable     = int(C.FFMS_ERROR_NOT_AVAILABLE)
	ErrorFileMismatch     = int(C.FFMS_ERROR_FILE_MISMATCH)
	ErrorUser             = int(C.FFMS_ERROR_USER)
)

// Error carries a native FFMS_ErrorInfo payload across the cgo boundary.
// The safe layer translates Type and Sub into its own enumerations; the
// raw integers never reach application code.
type Error struct {
	Type    int
	Sub     int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("ffms2: %s", e.Message)
	}
	return fmt.Sprintf("ffms2: native error (type %d, sub %d)", e.Type, e.Sub)
}

const errorBufferSize = 1024

// errorInfo wraps an FFMS_ErrorInfo whose message buffer lives in C
// memory, so the struct can be handed to native calls without tripping
// the cgo pointer rules. destroy must run exactly once.
type errorInfo struct {
	c C.FFMS_ErrorInfo
}

func newErrorInfo() *errorInfo {
	e := &errorInfo{}
	e.c.Buffer = (*C.char)(C.malloc(errorBufferSize))
	e.c.BufferSize = errorBufferSize
	e.c.ErrorType = C.FFMS_ERROR_SUCCESS
	e.c.SubType = C.FFMS_ERROR_SUCCESS
	if e.c.Buffer != nil {
		*e.c.Buffer = 0
	}
	return e
}

func (e *errorInfo) ptr() *C.FFMS_ErrorInfo {
	return &e.c
}

func (e *errorInfo) destroy() {
	C.free(unsafe.Pointer(e.c.Buffer))
	e.c.Buffer = nil
}

// err materializes the captured error. Only meaningful after a native
// call signalled failure through its return value.
func (e *errorInfo) err() *Error {
	var msg string
	if e.c.Buffer != nil {
		msg = C.GoString(e.c.Buffer)
	}
	return &Error{
		Type:    int(e.c.ErrorType),
		Sub:     int(e.c.SubType),
		Message: msg,
	}
}
