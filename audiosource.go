package ffms2

import (
	"github.com/gomedia/ffms2/internal/ffi"
)

// SampleFormat is the binary layout of one decoded audio sample.
type SampleFormat int

const (
	// FormatU8 is unsigned 8 bit.
	FormatU8 = SampleFormat(ffi.FmtU8)
	// FormatS16 is signed 16 bit.
	FormatS16 = SampleFormat(ffi.FmtS16)
	// FormatS32 is signed 32 bit.
	FormatS32 = SampleFormat(ffi.FmtS32)
	// FormatFlt is 32 bit float.
	FormatFlt = SampleFormat(ffi.FmtFlt)
	// FormatDbl is 64 bit float.
	FormatDbl = SampleFormat(ffi.FmtDbl)
)

func (f SampleFormat) String() string {
	switch f {
	case FormatU8:
		return "u8"
	case FormatS16:
		return "s16"
	case FormatS32:
		return "s32"
	case FormatFlt:
		return "flt"
	case FormatDbl:
		return "dbl"
	default:
		return "unknown"
	}
}

// AudioDelay selects how decoded audio is shifted relative to the
// start of the file.
type AudioDelay int

const (
	// DelayNoShift keeps the track's own start time.
	DelayNoShift = AudioDelay(ffi.DelayNoShift)
	// DelayTimeZero shifts the audio to start at time zero.
	DelayTimeZero = AudioDelay(ffi.DelayTimeZero)
	// DelayFirstVideoTrack aligns the audio with the first video
	// track. The default.
	DelayFirstVideoTrack = AudioDelay(ffi.DelayFirstVideoTrack)
)

// AudioProperties describes an audio track as a whole.
type AudioProperties struct {
	SampleFormat  SampleFormat
	SampleRate    int
	BitsPerSample int
	Channels      int
	ChannelLayout int64
	NumSamples    int64
	FirstTime     float64
	LastTime      float64
	LastEndTime   float64
}

// AudioSource owns a native FFMS_AudioSource and decodes samples from
// one audio track. Not safe for concurrent use.
type AudioSource struct {
	raw    *ffi.AudioSource
	closed bool
}

// NewAudioSource opens track number track of path for decoding, using
// the seek tables in index. The track must be an indexed audio track.
// The index is only read during construction and may be closed
// afterwards.
func NewAudioSource(path string, track int, index *Index, opts ...AudioOption) (*AudioSource, error) {
	if index.closed {
		return nil, ErrClosed
	}
	if track < 0 || track >= index.raw.NumTracks() {
		return nil, ErrInvalidTrack
	}

	cfg := defaultAudioConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	raw, err := ffi.CreateAudioSource(path, track, index.raw, int(cfg.delayMode))
	if err != nil {
		return nil, translate(err)
	}
	return &AudioSource{raw: raw}, nil
}

// Close destroys the native source. Idempotent.
func (a *AudioSource) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	a.raw.Free()
	return nil
}

// Properties returns the track-wide audio properties. They reflect the
// current output format, so they change after SetOutputFormat.
func (a *AudioSource) Properties() (AudioProperties, error) {
	if a.closed {
		return AudioProperties{}, ErrClosed
	}
	p := a.raw.Properties()
	return AudioProperties{
		SampleFormat:  SampleFormat(p.SampleFormat),
		SampleRate:    p.SampleRate,
		BitsPerSample: p.BitsPerSample,
		Channels:      p.Channels,
		ChannelLayout: p.ChannelLayout,
		NumSamples:    p.NumSamples,
		FirstTime:     p.FirstTime,
		LastTime:      p.LastTime,
		LastEndTime:   p.LastEndTime,
	}, nil
}

// ReadAudio decodes count samples starting at sample number start and
// returns them as interleaved bytes in the source's current output
// format. The range must lie inside [0, NumSamples].
func (a *AudioSource) ReadAudio(start, count int64) ([]byte, error) {
	if a.closed {
		return nil, ErrClosed
	}
	p := a.raw.Properties()
	if start < 0 || count <= 0 || start+count > p.NumSamples {
		return nil, ErrOutOfRange
	}

	bytesPerSample := p.BitsPerSample / 8 * p.Channels
	if bytesPerSample <= 0 {
		return nil, ErrOutOfRange
	}
	buf := make([]byte, int(count)*bytesPerSample)
	if err := a.raw.GetAudio(buf, start, count); err != nil {
		return nil, translate(err)
	}
	return buf, nil
}

// CreateResampleOptions returns the source's current output format as
// a ResampleOptions value, ready to be adjusted and passed back to
// SetOutputFormat.
func (a *AudioSource) CreateResampleOptions() (ResampleOptions, error) {
	if a.closed {
		return ResampleOptions{}, ErrClosed
	}
	return resampleOptionsFromRaw(a.raw.CreateResampleOptions()), nil
}

// SetOutputFormat changes the sample format, rate or channel layout
// that ReadAudio produces.
func (a *AudioSource) SetOutputFormat(opts ResampleOptions) error {
	if a.closed {
		return ErrClosed
	}
	return translate(a.raw.SetOutputFormat(opts.toRaw()))
}

// Track returns the source's own track metadata.
func (a *AudioSource) Track() (*Track, error) {
	if a.closed {
		return nil, ErrClosed
	}
	return &Track{raw: a.raw.TrackFromAudio(), parent: a}, nil
}

func (a *AudioSource) ok() bool { return !a.closed }
