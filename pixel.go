package ffms2

import (
	"sync"

	"github.com/gomedia/ffms2/internal/ffi"
)

// PixelFormat is an FFmpeg pixel format id. The numeric values belong
// to the FFmpeg build the native library was linked against, so they
// are always resolved by name at runtime rather than hardcoded.
type PixelFormat int

// PixelFormatNone is FFmpeg's AV_PIX_FMT_NONE.
const PixelFormatNone PixelFormat = -1

// GetPixFmt resolves an FFmpeg pixel format name such as "yuv420p",
// "nv12" or "bgra" to its id.
func GetPixFmt(name string) (PixelFormat, error) {
	id := PixelFormat(ffi.GetPixFmt(name))
	if id == PixelFormatNone {
		return PixelFormatNone, ErrUnknownPixelFormat
	}
	return id, nil
}

// chromaShiftH is the vertical chroma subsampling shift for the planar
// format families we can size exactly. Packed and gray formats carry
// everything in plane 0, so their chroma shift never applies.
var (
	pixfmtOnce   sync.Once
	chromaShiftH map[PixelFormat]uint
)

func loadChromaShifts() {
	chromaShiftH = make(map[PixelFormat]uint)
	add := func(shift uint, names ...string) {
		for _, name := range names {
			if id := PixelFormat(ffi.GetPixFmt(name)); id != PixelFormatNone {
				chromaShiftH[id] = shift
			}
		}
	}
	// 4:2:0 family: chroma planes have half the rows.
	add(1, "yuv420p", "yuvj420p", "yuva420p",
		"yuv420p10le", "yuv420p10be", "yuv420p12le", "yuv420p12be",
		"yuv420p16le", "yuv420p16be", "nv12", "nv21")
	// 4:2:2 and 4:4:4 families: chroma planes have full rows.
	add(0, "yuv422p", "yuvj422p", "yuv422p10le", "yuv422p10be",
		"yuv422p16le", "yuv422p16be",
		"yuv444p", "yuvj444p", "yuv444p10le", "yuv444p10be",
		"yuv444p16le", "yuv444p16be",
		"gbrp", "gbrap")
	// 4:1:0: chroma planes have a quarter of the rows.
	add(2, "yuv410p")
	// 4:1:1: subsampled horizontally only.
	add(0, "yuv411p")
}

// planeRows returns how many rows of plane data exist for the given
// plane of a frame with the given output pixel format and height.
// Unknown planar formats fall back to the conservative half-height
// estimate for chroma planes, so the view can never overrun native
// memory for any supported subsampling.
func planeRows(format PixelFormat, plane, height int) int {
	if plane == 0 || plane == 3 {
		return height
	}
	pixfmtOnce.Do(loadChromaShifts)
	shift, known := chromaShiftH[format]
	if !known {
		shift = 1
	}
	return (height + (1 << shift) - 1) >> shift
}
