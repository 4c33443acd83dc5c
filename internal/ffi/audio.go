package ffi

/*
#include <stdlib.h>
#include <ffms.h>
*/
import "C"
import "unsafe"

// AudioSource owns an FFMS_AudioSource pointer.
type AudioSource struct {
	ptr *C.FFMS_AudioSource
}

// CreateAudioSource opens an audio track for decoding.
func CreateAudioSource(path string, track int, index *Index, delayMode int) (*AudioSource, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	ei := newErrorInfo()
	defer ei.destroy()

	ptr := C.FFMS_CreateAudioSource(cpath, C.int(track), index.ptr, C.int(delayMode), ei.ptr())
	if ptr == nil {
		return nil, ei.err()
	}
	return &AudioSource{ptr: ptr}, nil
}

// Free destroys the audio source. Safe on nil.
func (a *AudioSource) Free() {
	if a != nil && a.ptr != nil {
		C.FFMS_DestroyAudioSource(a.ptr)
		a.ptr = nil
	}
}

// AudioProperties mirrors FFMS_AudioProperties.
type AudioProperties struct {
	SampleFormat  int
	SampleRate    int
	BitsPerSample int
	Channels      int
	ChannelLayout int64
	NumSamples    int64
	FirstTime     float64
	LastTime      float64
	LastEndTime   float64
}

// Properties returns a copy of the source's audio properties.
func (a *AudioSource) Properties() AudioProperties {
	p := C.FFMS_GetAudioProperties(a.ptr)
	return AudioProperties{
		SampleFormat:  int(p.SampleFormat),
		SampleRate:    int(p.SampleRate),
		BitsPerSample: int(p.BitsPerSample),
		Channels:      int(p.Channels),
		ChannelLayout: int64(p.ChannelLayout),
		NumSamples:    int64(p.NumSamples),
		FirstTime:     float64(p.FirstTime),
		LastTime:      float64(p.LastTime),
		LastEndTime:   float64(p.LastEndTime),
	}
}

// GetAudio decodes count samples starting at start into buf, which must
// be large enough for count * channels * bytes-per-sample bytes. Range
// validation happens in the safe layer.
func (a *AudioSource) GetAudio(buf []byte, start, count int64) error {
	if len(buf) == 0 {
		return &Error{Type: ErrorDecoding, Sub: ErrorInvalidArgument, Message: "empty audio buffer"}
	}

	ei := newErrorInfo()
	defer ei.destroy()

	if C.FFMS_GetAudio(a.ptr, unsafe.Pointer(&buf[0]), C.int64_t(start), C.int64_t(count), ei.ptr()) != 0 {
		return ei.err()
	}
	return nil
}

// TrackFromAudio returns the source's own track metadata.
func (a *AudioSource) TrackFromAudio() *Track {
	return &Track{ptr: C.FFMS_GetTrackFromAudio(a.ptr)}
}

// ResampleOptions mirrors FFMS_ResampleOptions as a plain value struct.
type ResampleOptions struct {
	ChannelLayout          int64
	SampleFormat           int
	SampleRate             int
	MixingCoefficientType  int
	CenterMixLevel         float64
	SurroundMixLevel       float64
	LFEMixLevel            float64
	Normalize              bool
	ForceResample          bool
	ResampleFilterSize     int
	ResamplePhaseShift     int
	LinearInterpolation    bool
	CutoffFrequencyRatio   float64
	MatrixedStereoEncoding int
	FilterType             int
	KaiserBeta             int
	DitherMethod           int
}

// CreateResampleOptions snapshots the source's current output format
// into a value struct. The native struct is freed before returning.
func (a *AudioSource) CreateResampleOptions() ResampleOptions {
	opt := C.FFMS_CreateResampleOptions(a.ptr)
	out := ResampleOptions{
		ChannelLayout:          int64(opt.ChannelLayout),
		SampleFormat:           int(opt.SampleFormat),
		SampleRate:             int(opt.SampleRate),
		MixingCoefficientType:  int(opt.MixingCoefficientType),
		CenterMixLevel:         float64(opt.CenterMixLevel),
		SurroundMixLevel:       float64(opt.SurroundMixLevel),
		LFEMixLevel:            float64(opt.LFEMixLevel),
		Normalize:              opt.Normalize != 0,
		ForceResample:          opt.ForceResample != 0,
		ResampleFilterSize:     int(opt.ResampleFilterSize),
		ResamplePhaseShift:     int(opt.ResamplePhaseShift),
		LinearInterpolation:    opt.LinearInterpolation != 0,
		CutoffFrequencyRatio:   float64(opt.CutoffFrequencyRatio),
		MatrixedStereoEncoding: int(opt.MatrixedStereoEncoding),
		FilterType:             int(opt.FilterType),
		KaiserBeta:             int(opt.KaiserBeta),
		DitherMethod:           int(opt.DitherMethod),
	}
	C.FFMS_DestroyResampleOptions(opt)
	return out
}

// SetOutputFormat applies a resample configuration to the source. The
// native options struct exists only for the duration of the call.
func (a *AudioSource) SetOutputFormat(ro ResampleOptions) error {
	opt := C.FFMS_CreateResampleOptions(a.ptr)
	if opt == nil {
		return &Error{Type: ErrorResampling, Sub: ErrorAllocationFailed, Message: "FFMS_CreateResampleOptions failed"}
	}
	defer C.FFMS_DestroyResampleOptions(opt)

	opt.ChannelLayout = C.int64_t(ro.ChannelLayout)
	opt.SampleFormat = C.FFMS_SampleFormat(ro.SampleFormat)
	opt.SampleRate = C.int(ro.SampleRate)
	opt.MixingCoefficientType = C.FFMS_MixingCoefficientType(ro.MixingCoefficientType)
	opt.CenterMixLevel = C.double(ro.CenterMixLevel)
	opt.SurroundMixLevel = C.double(ro.SurroundMixLevel)
	opt.LFEMixLevel = C.double(ro.LFEMixLevel)
	opt.Normalize = cbool(ro.Normalize)
	opt.ForceResample = cbool(ro.ForceResample)
	opt.ResampleFilterSize = C.int(ro.ResampleFilterSize)
	opt.ResamplePhaseShift = C.int(ro.ResamplePhaseShift)
	opt.LinearInterpolation = cbool(ro.LinearInterpolation)
	opt.CutoffFrequencyRatio = C.double(ro.CutoffFrequencyRatio)
	opt.MatrixedStereoEncoding = C.FFMS_MatrixEncoding(ro.MatrixedStereoEncoding)
	opt.FilterType = C.FFMS_ResampleFilterType(ro.FilterType)
	opt.KaiserBeta = C.int(ro.KaiserBeta)
	opt.DitherMethod = C.FFMS_AudioDitherMethod(ro.DitherMethod)

	ei := newErrorInfo()
	defer ei.destroy()

	if C.FFMS_SetOutputFormatA(a.ptr, opt, ei.ptr()) != 0 {
		return ei.err()
	}
	return nil
}
