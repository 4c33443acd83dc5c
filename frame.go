package ffms2

import (
	"github.com/gomedia/ffms2/internal/ffi"
)

// Frame is one decoded frame. Scalar metadata is copied out of the
// native library at fetch time and stays valid forever; plane data
// accessed through Plane borrows memory owned by the VideoSource and
// is only valid until the next operation on that source that decodes
// or reconfigures (Frame, FrameByTime, SetOutputFormat,
// ResetOutputFormat, SetInputFormat, ResetInputFormat, Close). After
// that, Plane returns ErrStaleFrame. Retain pixel data past that point
// by copying it.
type Frame struct {
	src   *VideoSource
	epoch uint64
	raw   *ffi.Frame

	// Linesize is the per-plane stride in bytes.
	Linesize [4]int

	// EncodedWidth and EncodedHeight are the frame's dimensions as
	// stored in the file.
	EncodedWidth  int
	EncodedHeight int
	// EncodedPixelFormat is the pixel format the frame was stored in.
	EncodedPixelFormat PixelFormat

	// ScaledWidth and ScaledHeight are the output dimensions when
	// SetOutputFormat rescaled the frame, and -1 otherwise.
	ScaledWidth  int
	ScaledHeight int
	// ConvertedPixelFormat is the pixel format of the data in the
	// planes after any output conversion.
	ConvertedPixelFormat PixelFormat

	KeyFrame        bool
	RepeatPict      int
	InterlacedFrame bool
	TopFieldFirst   bool
	// PictType is the FFmpeg picture type character ('I', 'P', 'B', ...).
	PictType byte

	ColorSpace              int
	ColorRange              ColorRange
	ColorPrimaries          int
	TransferCharacteristics int
	ChromaLocation          ChromaLocation
}

func newFrame(src *VideoSource, raw *ffi.Frame) *Frame {
	return &Frame{
		src:   src,
		epoch: src.epoch,
		raw:   raw,

		Linesize:                raw.Linesize,
		EncodedWidth:            raw.EncodedWidth,
		EncodedHeight:           raw.EncodedHeight,
		EncodedPixelFormat:      PixelFormat(raw.EncodedPixelFormat),
		ScaledWidth:             raw.ScaledWidth,
		ScaledHeight:            raw.ScaledHeight,
		ConvertedPixelFormat:    PixelFormat(raw.ConvertedPixelFormat),
		KeyFrame:                raw.KeyFrame != 0,
		RepeatPict:              raw.RepeatPict,
		InterlacedFrame:         raw.InterlacedFrame != 0,
		TopFieldFirst:           raw.TopFieldFirst != 0,
		PictType:                raw.PictType,
		ColorSpace:              raw.ColorSpace,
		ColorRange:              ColorRange(raw.ColorRange),
		ColorPrimaries:          raw.ColorPrimaries,
		TransferCharacteristics: raw.TransferCharacteristics,
		ChromaLocation:          ChromaLocation(raw.ChromaLocation),
	}
}

// Width returns the frame's effective output width.
func (f *Frame) Width() int {
	if f.ScaledWidth > 0 {
		return f.ScaledWidth
	}
	return f.EncodedWidth
}

// Height returns the frame's effective output height.
func (f *Frame) Height() int {
	if f.ScaledHeight > 0 {
		return f.ScaledHeight
	}
	return f.EncodedHeight
}

// Valid reports whether the frame's plane data is still accessible.
func (f *Frame) Valid() bool {
	return !f.src.closed && f.epoch == f.src.epoch
}

// Plane returns plane i of the frame's pixel data without copying. The
// slice aliases memory owned by the video source; see the Frame
// documentation for its lifetime. Returns nil for planes the pixel
// format does not use.
func (f *Frame) Plane(i int) ([]byte, error) {
	if i < 0 || i >= len(f.raw.Data) {
		return nil, ErrOutOfRange
	}
	if !f.Valid() {
		return nil, ErrStaleFrame
	}
	n := f.Linesize[i] * planeRows(f.ConvertedPixelFormat, i, f.Height())
	return ffi.BytesView(f.raw.Data[i], n), nil
}

// CopyPlane returns plane i as a freshly allocated slice with no ties
// to the video source.
func (f *Frame) CopyPlane(i int) ([]byte, error) {
	p, err := f.Plane(i)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	out := make([]byte, len(p))
	copy(out, p)
	return out, nil
}
