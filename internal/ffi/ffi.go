// Package ffi provides the cgo bindings to the native FFMS2 library.
//
// This is the raw layer: every function here mirrors an entry point of
// ffms.h and does nothing beyond argument marshalling and error-code
// capture. Memory layout correctness lives here and nowhere else. The
// public ffms2 package is the only intended consumer.
//
// # Linking
//
// By default the library is located through pkg-config ("ffms2").
// Building with the ffms2_nopkgconfig tag switches to a plain -lffms2
// link line so header and library paths can be supplied through
// CGO_CFLAGS and CGO_LDFLAGS instead. ffms2 2.30 or newer is required;
// older headers fail to compile this package.
package ffi

/*
#include <ffms.h>
*/
import "C"

func init() {
	// Must run before any other FFMS2 call. The arguments are unused
	// since FFmpeg dropped av_register_all but remain in the signature.
	C.FFMS_Init(0, 0)
}

// Version returns the packed FFMS2 version integer
// (major << 24 | minor << 16 | micro << 8 | bump).
func Version() int {
	return int(C.FFMS_GetVersion())
}

// GetLogLevel returns the current FFmpeg log level.
func GetLogLevel() int {
	return int(C.FFMS_GetLogLevel())
}

// SetLogLevel sets the FFmpeg log level for all handles in the process.
func SetLogLevel(level int) {
	C.FFMS_SetLogLevel(C.int(level))
}

// FFmpeg log level constants as surfaced by ffms.h.
const (
	LogQuiet   = int(C.FFMS_LOG_QUIET)
	LogPanic   = int(C.FFMS_LOG_PANIC)
	LogFatal   = int(C.FFMS_LOG_FATAL)
	LogError   = int(C.FFMS_LOG_ERROR)
	LogWarning = int(C.FFMS_LOG_WARNING)
	LogInfo    = int(C.FFMS_LOG_INFO)
	LogVerbose = int(C.FFMS_LOG_VERBOSE)
	LogDebug   = int(C.FFMS_LOG_DEBUG)
	LogTrace   = int(C.FFMS_LOG_TRACE)
)

// Seek mode constants.
const (
	SeekLinearNoRW = int(C.FFMS_SEEK_LINEAR_NO_RW)
	SeekLinear     = int(C.FFMS_SEEK_LINEAR)
	SeekNormal     = int(C.FFMS_SEEK_NORMAL)
	SeekUnsafe     = int(C.FFMS_SEEK_UNSAFE)
	SeekAggressive = int(C.FFMS_SEEK_AGGRESSIVE)
)

// Track type constants.
const (
	TypeUnknown    = int(C.FFMS_TYPE_UNKNOWN)
	TypeVideo      = int(C.FFMS_TYPE_VIDEO)
	TypeAudio      = int(C.FFMS_TYPE_AUDIO)
	TypeData       = int(C.FFMS_TYPE_DATA)
	TypeSubtitle   = int(C.FFMS_TYPE_SUBTITLE)
	TypeAttachment = int(C.FFMS_TYPE_ATTACHMENT)
)

// Index error handling constants.
const (
	IEHAbort      = int(C.FFMS_IEH_ABORT)
	IEHClearTrack = int(C.FFMS_IEH_CLEAR_TRACK)
	IEHStopTrack  = int(C.FFMS_IEH_STOP_TRACK)
	IEHIgnore     = int(C.FFMS_IEH_IGNORE)
)

// Audio delay mode constants.
const (
	DelayNoShift         = int(C.FFMS_DELAY_NO_SHIFT)
	DelayTimeZero        = int(C.FFMS_DELAY_TIME_ZERO)
	DelayFirstVideoTrack = int(C.FFMS_DELAY_FIRST_VIDEO_TRACK)
)

// Sample format constants.
const (
	FmtU8  = int(C.FFMS_FMT_U8)
	FmtS16 = int(C.FFMS_FMT_S16)
	FmtS32 = int(C.FFMS_FMT_S32)
	FmtFlt = int(C.FFMS_FMT_FLT)
	FmtDbl = int(C.FFMS_FMT_DBL)
)

// Resizer constants (swscale algorithm selection).
const (
	ResizerFastBilinear = int(C.FFMS_RESIZER_FAST_BILINEAR)
	ResizerBilinear     = int(C.FFMS_RESIZER_BILINEAR)
	ResizerBicubic      = int(C.FFMS_RESIZER_BICUBIC)
	ResizerX            = int(C.FFMS_RESIZER_X)
	ResizerPoint        = int(C.FFMS_RESIZER_POINT)
	ResizerArea         = int(C.FFMS_RESIZER_AREA)
	ResizerBicublin     = int(C.FFMS_RESIZER_BICUBLIN)
	ResizerGauss        = int(C.FFMS_RESIZER_GAUSS)
	ResizerSinc         = int(C.FFMS_RESIZER_SINC)
	ResizerLanczos      = int(C.FFMS_RESIZER_LANCZOS)
	ResizerSpline       = int(C.FFMS_RESIZER_SPLINE)
)

// Color range constants.
const (
	ColorRangeUnspecified = int(C.FFMS_CR_UNSPECIFIED)
	ColorRangeMPEG        = int(C.FFMS_CR_MPEG)
	ColorRangeJPEG        = int(C.FFMS_CR_JPEG)
)

// Chroma location constants.
const (
	ChromaLocUnspecified = int(C.FFMS_LOC_UNSPECIFIED)
	ChromaLocLeft        = int(C.FFMS_LOC_LEFT)
	ChromaLocCenter      = int(C.FFMS_LOC_CENTER)
	ChromaLocTopLeft     = int(C.FFMS_LOC_TOPLEFT)
	ChromaLocTop         = int(C.FFMS_LOC_TOP)
	ChromaLocBottomLeft  = int(C.FFMS_LOC_BOTTOMLEFT)
	ChromaLocBottom      = int(C.FFMS_LOC_BOTTOM)
)

// Stereoscopic 3D constants.
const (
	Stereo3D2D                 = int(C.FFMS_S3D_TYPE_2D)
	Stereo3DSideBySide         = int(C.FFMS_S3D_TYPE_SIDEBYSIDE)
	Stereo3DTopBottom          = int(C.FFMS_S3D_TYPE_TOPBOTTOM)
	Stereo3DFrameSequence      = int(C.FFMS_S3D_TYPE_FRAMESEQUENCE)
	Stereo3DCheckerboard       = int(C.FFMS_S3D_TYPE_CHECKERBOARD)
	Stereo3DSideBySideQuincunx = int(C.FFMS_S3D_TYPE_SIDEBYSIDE_QUINCUNX)
	Stereo3DLines              = int(C.FFMS_S3D_TYPE_LINES)
	Stereo3DColumns            = int(C.FFMS_S3D_TYPE_COLUMNS)

	Stereo3DFlagsInvert = int(C.FFMS_S3D_FLAGS_INVERT)
)

// Matrixed stereo encoding constants. The DOBLY spelling comes straight
// from ffms.h.
const (
	MatrixEncodingNone           = int(C.FFMS_MATRIX_ENCODING_NONE)
	MatrixEncodingDolby          = int(C.FFMS_MATRIX_ENCODING_DOBLY)
	MatrixEncodingProLogicII     = int(C.FFMS_MATRIX_ENCODING_PRO_LOGIC_II)
	MatrixEncodingProLogicIIX    = int(C.FFMS_MATRIX_ENCODING_PRO_LOGIC_IIX)
	MatrixEncodingProLogicIIZ    = int(C.FFMS_MATRIX_ENCODING_PRO_LOGIC_IIZ)
	MatrixEncodingDolbyEx        = int(C.FFMS_MATRIX_ENCODING_DOLBY_EX)
	MatrixEncodingDolbyHeadphone = int(C.FFMS_MATRIX_ENCODING_DOLBY_HEADPHONE)
)

// Resample filter, dither and mixing coefficient constants.
const (
	ResampleFilterCubic  = int(C.FFMS_RESAMPLE_FILTER_CUBIC)
	ResampleFilterSinc   = int(C.FFMS_RESAMPLE_FILTER_SINC)
	ResampleFilterKaiser = int(C.FFMS_RESAMPLE_FILTER_KAISER)

	DitherNone                   = int(C.FFMS_RESAMPLE_DITHER_NONE)
	DitherRectangular            = int(C.FFMS_RESAMPLE_DITHER_RECTANGULAR)
	DitherTriangular             = int(C.FFMS_RESAMPLE_DITHER_TRIANGULAR)
	DitherTriangularHighpass     = int(C.FFMS_RESAMPLE_DITHER_TRIANGULAR_HIGHPASS)
	DitherTriangularNoiseshaping = int(C.FFMS_RESAMPLE_DITHER_TRIANGULAR_NOISESHAPING)

	MixingCoefficientQ8  = int(C.FFMS_MIXING_COEFFICIENT_Q8)
	MixingCoefficientQ15 = int(C.FFMS_MIXING_COEFFICIENT_Q15)
	MixingCoefficientFlt = int(C.FFMS_MIXING_COEFFICIENT_FLT)
)
