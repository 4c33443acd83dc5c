package ffms2

// videoConfig holds construction parameters for a VideoSource.
type videoConfig struct {
	threads  int
	seekMode SeekMode
}

func defaultVideoConfig() *videoConfig {
	return &videoConfig{
		threads:  0, // let FFMS2 pick
		seekMode: SeekNormal,
	}
}

// VideoOption is a functional option for NewVideoSource.
type VideoOption func(*videoConfig)

// WithThreads sets the number of decoding threads. Zero or negative
// lets the native library decide.
func WithThreads(n int) VideoOption {
	return func(c *videoConfig) {
		c.threads = n
	}
}

// WithSeekMode sets the seeking behavior. Default is SeekNormal.
func WithSeekMode(mode SeekMode) VideoOption {
	return func(c *videoConfig) {
		c.seekMode = mode
	}
}

// audioConfig holds construction parameters for an AudioSource.
type audioConfig struct {
	delayMode AudioDelay
}

func defaultAudioConfig() *audioConfig {
	return &audioConfig{
		delayMode: DelayFirstVideoTrack,
	}
}

// AudioOption is a functional option for NewAudioSource.
type AudioOption func(*audioConfig)

// WithDelayMode sets how audio is shifted relative to the start of the
// file. Default is DelayFirstVideoTrack.
func WithDelayMode(mode AudioDelay) AudioOption {
	return func(c *audioConfig) {
		c.delayMode = mode
	}
}
