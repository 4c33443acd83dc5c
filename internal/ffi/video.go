package ffi

/*
#include <stdlib.h>
#include <ffms.h>
*/
import "C"
import "unsafe"

// VideoSource owns an FFMS_VideoSource pointer.
type VideoSource struct {
	ptr *C.FFMS_VideoSource
}

// CreateVideoSource opens a video track for decoding. The index is only
// read during construction and may be freed afterwards.
func CreateVideoSource(path string, track int, index *Index, threads, seekMode int) (*VideoSource, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	ei := newErrorInfo()
	defer ei.destroy()

	ptr := C.FFMS_CreateVideoSource(cpath, C.int(track), index.ptr, C.int(threads), C.int(seekMode), ei.ptr())
	if ptr == nil {
		return nil, ei.err()
	}
	return &VideoSource{ptr: ptr}, nil
}

// Free destroys the video source. Safe on nil.
func (v *VideoSource) Free() {
	if v != nil && v.ptr != nil {
		C.FFMS_DestroyVideoSource(v.ptr)
		v.ptr = nil
	}
}

// VideoProperties mirrors FFMS_VideoProperties.
type VideoProperties struct {
	FPSDenominator int
	FPSNumerator   int
	RFFDenominator int
	RFFNumerator   int
	NumFrames      int
	SARNum         int
	SARDen         int
	CropTop        int
	CropBottom     int
	CropLeft       int
	CropRight      int
	TopFieldFirst  int
	FirstTime      float64
	LastTime       float64
	Rotation       int
	Stereo3DType   int
	Stereo3DFlags  int
	LastEndTime    float64

	HasMasteringDisplayPrimaries bool
	MasteringDisplayPrimariesX   [3]float64
	MasteringDisplayPrimariesY   [3]float64
	MasteringDisplayWhitePointX  float64
	MasteringDisplayWhitePointY  float64
	HasMasteringDisplayLuminance bool
	MasteringDisplayMinLuminance float64
	MasteringDisplayMaxLuminance float64
	HasContentLightLevel         bool
	ContentLightLevelMax         int
	ContentLightLevelAverage     int
}

// Properties returns a copy of the source's video properties.
func (v *VideoSource) Properties() VideoProperties {
	p := C.FFMS_GetVideoProperties(v.ptr)
	out := VideoProperties{
		FPSDenominator: int(p.FPSDenominator),
		FPSNumerator:   int(p.FPSNumerator),
		RFFDenominator: int(p.RFFDenominator),
		RFFNumerator:   int(p.RFFNumerator),
		NumFrames:      int(p.NumFrames),
		SARNum:         int(p.SARNum),
		SARDen:         int(p.SARDen),
		CropTop:        int(p.CropTop),
		CropBottom:     int(p.CropBottom),
		CropLeft:       int(p.CropLeft),
		CropRight:      int(p.CropRight),
		TopFieldFirst:  int(p.TopFieldFirst),
		FirstTime:      float64(p.FirstTime),
		LastTime:       float64(p.LastTime),
		Rotation:       int(p.Rotation),
		Stereo3DType:   int(p.Stereo3DType),
		Stereo3DFlags:  int(p.Stereo3DFlags),
		LastEndTime:    float64(p.LastEndTime),

		HasMasteringDisplayPrimaries: p.HasMasteringDisplayPrimaries != 0,
		MasteringDisplayWhitePointX:  float64(p.MasteringDisplayWhitePointX),
		MasteringDisplayWhitePointY:  float64(p.MasteringDisplayWhitePointY),
		HasMasteringDisplayLuminance: p.HasMasteringDisplayLuminance != 0,
		MasteringDisplayMinLuminance: float64(p.MasteringDisplayMinLuminance),
		MasteringDisplayMaxLuminance: float64(p.MasteringDisplayMaxLuminance),
		HasContentLightLevel:         p.HasContentLightLevel != 0,
		ContentLightLevelMax:         int(p.ContentLightLevelMax),
		ContentLightLevelAverage:     int(p.ContentLightLevelAverage),
	}
	for i := 0; i < 3; i++ {
		out.MasteringDisplayPrimariesX[i] = float64(p.MasteringDisplayPrimariesX[i])
		out.MasteringDisplayPrimariesY[i] = float64(p.MasteringDisplayPrimariesY[i])
	}
	return out
}

// Frame mirrors FFMS_Frame. Data points into native memory owned by the
// video source and is only valid until the next call that touches the
// same source; enforcing that is the safe layer's job.
type Frame struct {
	Data     [4]unsafe.Pointer
	Linesize [4]int

	EncodedWidth         int
	EncodedHeight        int
	EncodedPixelFormat   int
	ScaledWidth          int
	ScaledHeight         int
	ConvertedPixelFormat int

	KeyFrame        int
	RepeatPict      int
	InterlacedFrame int
	TopFieldFirst   int
	PictType        byte

	ColorSpace              int
	ColorRange              int
	ColorPrimaries          int
	TransferCharacteristics int
	ChromaLocation          int
}

func frameFromC(f *C.FFMS_Frame) *Frame {
	out := &Frame{
		EncodedWidth:         int(f.EncodedWidth),
		EncodedHeight:        int(f.EncodedHeight),
		EncodedPixelFormat:   int(f.EncodedPixelFormat),
		ScaledWidth:          int(f.ScaledWidth),
		ScaledHeight:         int(f.ScaledHeight),
		ConvertedPixelFormat: int(f.ConvertedPixelFormat),
		KeyFrame:             int(f.KeyFrame),
		RepeatPict:           int(f.RepeatPict),
		InterlacedFrame:      int(f.InterlacedFrame),
		TopFieldFirst:        int(f.TopFieldFirst),
		PictType:             byte(f.PictType),
		ColorSpace:           int(f.ColorSpace),
		ColorRange:           int(f.ColorRange),
		ColorPrimaries:       int(f.ColorPrimaries),
		// Field name spelling is ffms.h's, not ours.
		TransferCharacteristics: int(f.TransferCharateristics),
		ChromaLocation:          int(f.ChromaLocation),
	}
	for i := 0; i < 4; i++ {
		out.Data[i] = unsafe.Pointer(f.Data[i])
		out.Linesize[i] = int(f.Linesize[i])
	}
	return out
}

// GetFrame decodes frame n. The returned frame borrows native memory.
func (v *VideoSource) GetFrame(n int) (*Frame, error) {
	ei := newErrorInfo()
	defer ei.destroy()

	f := C.FFMS_GetFrame(v.ptr, C.int(n), ei.ptr())
	if f == nil {
		return nil, ei.err()
	}
	return frameFromC(f), nil
}

// GetFrameByTime decodes the frame shown at the given time in seconds.
func (v *VideoSource) GetFrameByTime(t float64) (*Frame, error) {
	ei := newErrorInfo()
	defer ei.destroy()

	f := C.FFMS_GetFrameByTime(v.ptr, C.double(t), ei.ptr())
	if f == nil {
		return nil, ei.err()
	}
	return frameFromC(f), nil
}

// SetOutputFormat configures colorspace conversion and scaling for all
// subsequent frame requests. formats is a preference list of pixel
// format ids; the -1 terminator is appended here.
func (v *VideoSource) SetOutputFormat(formats []int, width, height, resizer int) error {
	targets := make([]C.int, 0, len(formats)+1)
	for _, f := range formats {
		targets = append(targets, C.int(f))
	}
	targets = append(targets, -1)

	ei := newErrorInfo()
	defer ei.destroy()

	if C.FFMS_SetOutputFormatV2(v.ptr, &targets[0], C.int(width), C.int(height), C.int(resizer), ei.ptr()) != 0 {
		return ei.err()
	}
	return nil
}

// ResetOutputFormat restores the source's native output format.
func (v *VideoSource) ResetOutputFormat() {
	C.FFMS_ResetOutputFormatV(v.ptr)
}

// SetInputFormat overrides the detected input colorspace, color range
// or pixel format.
func (v *VideoSource) SetInputFormat(colorSpace, colorRange, pixelFormat int) error {
	ei := newErrorInfo()
	defer ei.destroy()

	if C.FFMS_SetInputFormatV(v.ptr, C.int(colorSpace), C.int(colorRange), C.int(pixelFormat), ei.ptr()) != 0 {
		return ei.err()
	}
	return nil
}

// ResetInputFormat restores the detected input format.
func (v *VideoSource) ResetInputFormat() {
	C.FFMS_ResetInputFormatV(v.ptr)
}

// TrackFromVideo returns the source's own track metadata.
func (v *VideoSource) TrackFromVideo() *Track {
	return &Track{ptr: C.FFMS_GetTrackFromVideo(v.ptr)}
}

// GetPixFmt resolves an FFmpeg pixel format name (for example
// "yuv420p") to its numeric id, or -1 if unknown.
func GetPixFmt(name string) int {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return int(C.FFMS_GetPixFmt(cname))
}

// BytesView wraps n bytes of native memory as a Go slice without
// copying. The caller owns the aliasing rules.
func BytesView(p unsafe.Pointer, n int) []byte {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}
