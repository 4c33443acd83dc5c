package ffms2

import (
	"github.com/gomedia/ffms2/internal/ffi"
)

// MatrixEncoding selects matrixed stereo downmix encodings.
type MatrixEncoding int

const (
	MatrixEncodingNone           = MatrixEncoding(ffi.MatrixEncodingNone)
	MatrixEncodingDolby          = MatrixEncoding(ffi.MatrixEncodingDolby)
	MatrixEncodingProLogicII     = MatrixEncoding(ffi.MatrixEncodingProLogicII)
	MatrixEncodingProLogicIIX    = MatrixEncoding(ffi.MatrixEncodingProLogicIIX)
	MatrixEncodingProLogicIIZ    = MatrixEncoding(ffi.MatrixEncodingProLogicIIZ)
	MatrixEncodingDolbyEx        = MatrixEncoding(ffi.MatrixEncodingDolbyEx)
	MatrixEncodingDolbyHeadphone = MatrixEncoding(ffi.MatrixEncodingDolbyHeadphone)
)

// ResampleFilterType selects the swresample filter.
type ResampleFilterType int

const (
	ResampleFilterCubic  = ResampleFilterType(ffi.ResampleFilterCubic)
	ResampleFilterSinc   = ResampleFilterType(ffi.ResampleFilterSinc)
	ResampleFilterKaiser = ResampleFilterType(ffi.ResampleFilterKaiser)
)

// AudioDitherMethod selects the dithering applied when reducing sample
// depth.
type AudioDitherMethod int

const (
	DitherNone                   = AudioDitherMethod(ffi.DitherNone)
	DitherRectangular            = AudioDitherMethod(ffi.DitherRectangular)
	DitherTriangular             = AudioDitherMethod(ffi.DitherTriangular)
	DitherTriangularHighpass     = AudioDitherMethod(ffi.DitherTriangularHighpass)
	DitherTriangularNoiseshaping = AudioDitherMethod(ffi.DitherTriangularNoiseshaping)
)

// MixingCoefficientType selects the precision of downmix coefficients.
type MixingCoefficientType int

const (
	MixingCoefficientQ8  = MixingCoefficientType(ffi.MixingCoefficientQ8)
	MixingCoefficientQ15 = MixingCoefficientType(ffi.MixingCoefficientQ15)
	MixingCoefficientFlt = MixingCoefficientType(ffi.MixingCoefficientFlt)
)

// ResampleOptions configures audio output conversion. Obtain a value
// reflecting the current output format from
// AudioSource.CreateResampleOptions, adjust it, then apply it with
// AudioSource.SetOutputFormat. Plain value semantics; nothing native
// is owned.
type ResampleOptions struct {
	ChannelLayout          int64
	SampleFormat           SampleFormat
	SampleRate             int
	MixingCoefficientType  MixingCoefficientType
	CenterMixLevel         float64
	SurroundMixLevel       float64
	LFEMixLevel            float64
	Normalize              bool
	ForceResample          bool
	ResampleFilterSize     int
	ResamplePhaseShift     int
	LinearInterpolation    bool
	CutoffFrequencyRatio   float64
	MatrixedStereoEncoding MatrixEncoding
	FilterType             ResampleFilterType
	KaiserBeta             int
	DitherMethod           AudioDitherMethod
}

func resampleOptionsFromRaw(ro ffi.ResampleOptions) ResampleOptions {
	return ResampleOptions{
		ChannelLayout:          ro.ChannelLayout,
		SampleFormat:           SampleFormat(ro.SampleFormat),
		SampleRate:             ro.SampleRate,
		MixingCoefficientType:  MixingCoefficientType(ro.MixingCoefficientType),
		CenterMixLevel:         ro.CenterMixLevel,
		SurroundMixLevel:       ro.SurroundMixLevel,
		LFEMixLevel:            ro.LFEMixLevel,
		Normalize:              ro.Normalize,
		ForceResample:          ro.ForceResample,
		ResampleFilterSize:     ro.ResampleFilterSize,
		ResamplePhaseShift:     ro.ResamplePhaseShift,
		LinearInterpolation:    ro.LinearInterpolation,
		CutoffFrequencyRatio:   ro.CutoffFrequencyRatio,
		MatrixedStereoEncoding: MatrixEncoding(ro.MatrixedStereoEncoding),
		FilterType:             ResampleFilterType(ro.FilterType),
		KaiserBeta:             ro.KaiserBeta,
		DitherMethod:           AudioDitherMethod(ro.DitherMethod),
	}
}

func (ro ResampleOptions) toRaw() ffi.ResampleOptions {
	return ffi.ResampleOptions{
		ChannelLayout:          ro.ChannelLayout,
		SampleFormat:           int(ro.SampleFormat),
		SampleRate:             ro.SampleRate,
		MixingCoefficientType:  int(ro.MixingCoefficientType),
		CenterMixLevel:         ro.CenterMixLevel,
		SurroundMixLevel:       ro.SurroundMixLevel,
		LFEMixLevel:            ro.LFEMixLevel,
		Normalize:              ro.Normalize,
		ForceResample:          ro.ForceResample,
		ResampleFilterSize:     ro.ResampleFilterSize,
		ResamplePhaseShift:     ro.ResamplePhaseShift,
		LinearInterpolation:    ro.LinearInterpolation,
		CutoffFrequencyRatio:   ro.CutoffFrequencyRatio,
		MatrixedStereoEncoding: int(ro.MatrixedStereoEncoding),
		FilterType:             int(ro.FilterType),
		KaiserBeta:             ro.KaiserBeta,
		DitherMethod:           int(ro.DitherMethod),
	}
}
