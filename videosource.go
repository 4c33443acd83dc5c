package ffms2

import (
	"github.com/gomedia/ffms2/internal/ffi"
)

// SeekMode controls how the native layer seeks inside a video track.
// The numbering trades speed against frame accuracy; SeekNormal is
// frame accurate for sanely muxed files.
type SeekMode int

const (
	// SeekLinearNoRW never seeks backwards; requesting an earlier
	// frame fails.
	SeekLinearNoRW = SeekMode(ffi.SeekLinearNoRW)
	// SeekLinear decodes linearly from the start on every backwards
	// request. Slow, but works everywhere.
	SeekLinear = SeekMode(ffi.SeekLinear)
	// SeekNormal uses the index's keyframe positions. The default.
	SeekNormal = SeekMode(ffi.SeekNormal)
	// SeekUnsafe trusts the muxer more than SeekNormal does.
	SeekUnsafe = SeekMode(ffi.SeekUnsafe)
	// SeekAggressive seeks in ways known to break on some files.
	SeekAggressive = SeekMode(ffi.SeekAggressive)
)

func (m SeekMode) String() string {
	switch m {
	case SeekLinearNoRW:
		return "linear-no-rewind"
	case SeekLinear:
		return "linear"
	case SeekNormal:
		return "normal"
	case SeekUnsafe:
		return "unsafe"
	case SeekAggressive:
		return "aggressive"
	default:
		return "unknown"
	}
}

// Resizer selects the swscale algorithm used when SetOutputFormat
// rescales frames.
type Resizer int

const (
	ResizerFastBilinear = Resizer(ffi.ResizerFastBilinear)
	ResizerBilinear     = Resizer(ffi.ResizerBilinear)
	ResizerBicubic      = Resizer(ffi.ResizerBicubic)
	ResizerX            = Resizer(ffi.ResizerX)
	ResizerPoint        = Resizer(ffi.ResizerPoint)
	ResizerArea         = Resizer(ffi.ResizerArea)
	ResizerBicublin     = Resizer(ffi.ResizerBicublin)
	ResizerGauss        = Resizer(ffi.ResizerGauss)
	ResizerSinc         = Resizer(ffi.ResizerSinc)
	ResizerLanczos      = Resizer(ffi.ResizerLanczos)
	ResizerSpline       = Resizer(ffi.ResizerSpline)
)

// ColorRange is the sample value range of a frame or source.
type ColorRange int

const (
	ColorRangeUnspecified = ColorRange(ffi.ColorRangeUnspecified)
	ColorRangeMPEG        = ColorRange(ffi.ColorRangeMPEG)
	ColorRangeJPEG        = ColorRange(ffi.ColorRangeJPEG)
)

func (r ColorRange) String() string {
	switch r {
	case ColorRangeMPEG:
		return "mpeg"
	case ColorRangeJPEG:
		return "jpeg"
	default:
		return "unspecified"
	}
}

// ChromaLocation is the chroma sample position for subsampled formats.
type ChromaLocation int

const (
	ChromaLocUnspecified = ChromaLocation(ffi.ChromaLocUnspecified)
	ChromaLocLeft        = ChromaLocation(ffi.ChromaLocLeft)
	ChromaLocCenter      = ChromaLocation(ffi.ChromaLocCenter)
	ChromaLocTopLeft     = ChromaLocation(ffi.ChromaLocTopLeft)
	ChromaLocTop         = ChromaLocation(ffi.ChromaLocTop)
	ChromaLocBottomLeft  = ChromaLocation(ffi.ChromaLocBottomLeft)
	ChromaLocBottom      = ChromaLocation(ffi.ChromaLocBottom)
)

// Stereo3DType describes how a stereoscopic frame pair is packed.
type Stereo3DType int

const (
	Stereo3D2D                 = Stereo3DType(ffi.Stereo3D2D)
	Stereo3DSideBySide         = Stereo3DType(ffi.Stereo3DSideBySide)
	Stereo3DTopBottom          = Stereo3DType(ffi.Stereo3DTopBottom)
	Stereo3DFrameSequence      = Stereo3DType(ffi.Stereo3DFrameSequence)
	Stereo3DCheckerboard       = Stereo3DType(ffi.Stereo3DCheckerboard)
	Stereo3DSideBySideQuincunx = Stereo3DType(ffi.Stereo3DSideBySideQuincunx)
	Stereo3DLines              = Stereo3DType(ffi.Stereo3DLines)
	Stereo3DColumns            = Stereo3DType(ffi.Stereo3DColumns)
)

// MasteringDisplay is HDR mastering display metadata. Fields are only
// meaningful when the corresponding Has flag is set.
type MasteringDisplay struct {
	HasPrimaries bool
	PrimariesX   [3]float64
	PrimariesY   [3]float64
	WhitePointX  float64
	WhitePointY  float64

	HasLuminance bool
	MinLuminance float64
	MaxLuminance float64
}

// ContentLightLevel is HDR content light level metadata.
type ContentLightLevel struct {
	Has     bool
	Max     int
	Average int
}

// VideoProperties describes a video track as a whole.
type VideoProperties struct {
	FPSNumerator   int
	FPSDenominator int
	RFFNumerator   int
	RFFDenominator int
	NumFrames      int
	SARNum         int
	SARDen         int
	CropTop        int
	CropBottom     int
	CropLeft       int
	CropRight      int
	TopFieldFirst  bool
	FirstTime      float64
	LastTime       float64
	LastEndTime    float64
	Rotation       int
	Stereo3DType   Stereo3DType
	Stereo3DFlags  int

	MasteringDisplay  MasteringDisplay
	ContentLightLevel ContentLightLevel
}

// VideoSource owns a native FFMS_VideoSource and decodes frames from
// one video track. Not safe for concurrent use.
type VideoSource struct {
	raw    *ffi.VideoSource
	closed bool
	// epoch counts operations that invalidate previously returned
	// frame data; frames remember the epoch they were fetched in.
	epoch uint64
}

// NewVideoSource opens track number track of path for decoding, using
// the seek tables in index. The index must cover the file and the
// track must be an indexed video track. The index is only read during
// construction and may be closed afterwards.
func NewVideoSource(path string, track int, index *Index, opts ...VideoOption) (*VideoSource, error) {
	if index.closed {
		return nil, ErrClosed
	}
	if track < 0 || track >= index.raw.NumTracks() {
		return nil, ErrInvalidTrack
	}

	cfg := defaultVideoConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	raw, err := ffi.CreateVideoSource(path, track, index.raw, cfg.threads, int(cfg.seekMode))
	if err != nil {
		return nil, translate(err)
	}
	return &VideoSource{raw: raw}, nil
}

// Close destroys the native source and invalidates all frames obtained
// from it. Idempotent.
func (v *VideoSource) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true
	v.epoch++
	v.raw.Free()
	return nil
}

// Properties returns the track-wide video properties.
func (v *VideoSource) Properties() (VideoProperties, error) {
	if v.closed {
		return VideoProperties{}, ErrClosed
	}
	p := v.raw.Properties()
	return VideoProperties{
		FPSNumerator:   p.FPSNumerator,
		FPSDenominator: p.FPSDenominator,
		RFFNumerator:   p.RFFNumerator,
		RFFDenominator: p.RFFDenominator,
		NumFrames:      p.NumFrames,
		SARNum:         p.SARNum,
		SARDen:         p.SARDen,
		CropTop:        p.CropTop,
		CropBottom:     p.CropBottom,
		CropLeft:       p.CropLeft,
		CropRight:      p.CropRight,
		TopFieldFirst:  p.TopFieldFirst != 0,
		FirstTime:      p.FirstTime,
		LastTime:       p.LastTime,
		LastEndTime:    p.LastEndTime,
		Rotation:       p.Rotation,
		Stereo3DType:   Stereo3DType(p.Stereo3DType),
		Stereo3DFlags:  p.Stereo3DFlags,
		MasteringDisplay: MasteringDisplay{
			HasPrimaries: p.HasMasteringDisplayPrimaries,
			PrimariesX:   p.MasteringDisplayPrimariesX,
			PrimariesY:   p.MasteringDisplayPrimariesY,
			WhitePointX:  p.MasteringDisplayWhitePointX,
			WhitePointY:  p.MasteringDisplayWhitePointY,
			HasLuminance: p.HasMasteringDisplayLuminance,
			MinLuminance: p.MasteringDisplayMinLuminance,
			MaxLuminance: p.MasteringDisplayMaxLuminance,
		},
		ContentLightLevel: ContentLightLevel{
			Has:     p.HasContentLightLevel,
			Max:     p.ContentLightLevelMax,
			Average: p.ContentLightLevelAverage,
		},
	}, nil
}

// NumFrames returns the number of frames in the track.
func (v *VideoSource) NumFrames() (int, error) {
	if v.closed {
		return 0, ErrClosed
	}
	return v.raw.Properties().NumFrames, nil
}

// Frame decodes and returns frame number n. The returned frame's plane
// data borrows native memory and is invalidated by the next Frame,
// FrameByTime, format change or Close on this source.
func (v *VideoSource) Frame(n int) (*Frame, error) {
	if v.closed {
		return nil, ErrClosed
	}
	if n < 0 || n >= v.raw.Properties().NumFrames {
		return nil, ErrOutOfRange
	}
	v.epoch++
	raw, err := v.raw.GetFrame(n)
	if err != nil {
		return nil, translate(err)
	}
	return newFrame(v, raw), nil
}

// FrameByTime decodes and returns the frame visible at t seconds. Same
// lifetime rules as Frame.
func (v *VideoSource) FrameByTime(t float64) (*Frame, error) {
	if v.closed {
		return nil, ErrClosed
	}
	v.epoch++
	raw, err := v.raw.GetFrameByTime(t)
	if err != nil {
		return nil, translate(err)
	}
	return newFrame(v, raw), nil
}

// SetOutputFormat converts all subsequent frames to the first usable
// pixel format in formats, scaled to width x height with the given
// resizer. Invalidates previously returned frames.
func (v *VideoSource) SetOutputFormat(formats []PixelFormat, width, height int, resizer Resizer) error {
	if v.closed {
		return ErrClosed
	}
	if len(formats) == 0 || width <= 0 || height <= 0 {
		return ErrOutOfRange
	}
	ids := make([]int, len(formats))
	for i, f := range formats {
		ids[i] = int(f)
	}
	v.epoch++
	return translate(v.raw.SetOutputFormat(ids, width, height, int(resizer)))
}

// ResetOutputFormat undoes SetOutputFormat. Invalidates previously
// returned frames.
func (v *VideoSource) ResetOutputFormat() error {
	if v.closed {
		return ErrClosed
	}
	v.epoch++
	v.raw.ResetOutputFormat()
	return nil
}

// SetInputFormat overrides the detected colorspace, color range or
// pixel format of the source material. Invalidates previously returned
// frames.
func (v *VideoSource) SetInputFormat(colorSpace int, colorRange ColorRange, format PixelFormat) error {
	if v.closed {
		return ErrClosed
	}
	v.epoch++
	return translate(v.raw.SetInputFormat(colorSpace, int(colorRange), int(format)))
}

// ResetInputFormat undoes SetInputFormat. Invalidates previously
// returned frames.
func (v *VideoSource) ResetInputFormat() error {
	if v.closed {
		return ErrClosed
	}
	v.epoch++
	v.raw.ResetInputFormat()
	return nil
}

// Track returns the source's own track metadata, which reflects
// decoding adjustments the index-level track does not.
func (v *VideoSource) Track() (*Track, error) {
	if v.closed {
		return nil, ErrClosed
	}
	return &Track{raw: v.raw.TrackFromVideo(), parent: v}, nil
}

func (v *VideoSource) ok() bool { return !v.closed }
