// Package ffms2 provides Go bindings to FFMS2 (FFmpegSource2), the
// frame-accurate video indexing and demuxing library.
//
// The package is a thin, safe wrapper: every operation forwards to the
// native library, which does all of the actual indexing, seeking and
// decoding work. Owning handle types (Index, Indexer, VideoSource,
// AudioSource) release their native resource exactly once through
// Close; all methods on a closed handle return ErrClosed.
//
// # Installation
//
// The native library must be present at build time. By default it is
// located through pkg-config:
//
//	pkg-config --modversion ffms2
//
// Build with -tags ffms2_nopkgconfig to link with plain -lffms2 and
// supply locations through CGO_CFLAGS and CGO_LDFLAGS. ffms2 2.30 or
// newer is required.
//
// # Thread safety
//
// FFMS2 makes no reentrancy guarantees for a single handle and neither
// does this package: do not call into the same handle from multiple
// goroutines without external synchronization. Distinct handles are
// independent.
package ffms2

import (
	"fmt"

	"github.com/gomedia/ffms2/internal/ffi"
)

// Version identifies the linked FFMS2 library.
type Version struct {
	Major int
	Minor int
	Micro int
	Bump  int
}

// LinkedVersion returns the version of the FFMS2 library the process is
// linked against.
func LinkedVersion() Version {
	v := ffi.Version()
	return Version{
		Major: (v >> 24) & 0xff,
		Minor: (v >> 16) & 0xff,
		Micro: (v >> 8) & 0xff,
		Bump:  v & 0xff,
	}
}

func (v Version) String() string {
	if v.Bump > 0 {
		return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Micro, v.Bump)
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Micro)
}

// LogLevel controls the verbosity of the FFmpeg libraries underneath
// FFMS2. The setting is process wide.
type LogLevel int

const (
	LogQuiet   = LogLevel(ffi.LogQuiet)
	LogPanic   = LogLevel(ffi.LogPanic)
	LogFatal   = LogLevel(ffi.LogFatal)
	LogError   = LogLevel(ffi.LogError)
	LogWarning = LogLevel(ffi.LogWarning)
	LogInfo    = LogLevel(ffi.LogInfo)
	LogVerbose = LogLevel(ffi.LogVerbose)
	LogDebug   = LogLevel(ffi.LogDebug)
	LogTrace   = LogLevel(ffi.LogTrace)
)

func (l LogLevel) String() string {
	switch l {
	case LogQuiet:
		return "quiet"
	case LogPanic:
		return "panic"
	case LogFatal:
		return "fatal"
	case LogError:
		return "error"
	case LogWarning:
		return "warning"
	case LogInfo:
		return "info"
	case LogVerbose:
		return "verbose"
	case LogDebug:
		return "debug"
	case LogTrace:
		return "trace"
	default:
		return fmt.Sprintf("LogLevel(%d)", int(l))
	}
}

// SetLogLevel sets the FFmpeg log level.
func SetLogLevel(level LogLevel) {
	ffi.SetLogLevel(int(level))
}

// GetLogLevel returns the current FFmpeg log level.
func GetLogLevel() LogLevel {
	return LogLevel(ffi.GetLogLevel())
}
