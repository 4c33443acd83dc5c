//go:build ffms2_nopkgconfig

package ffi

// Header and library locations come from CGO_CFLAGS / CGO_LDFLAGS when
// pkg-config metadata for ffms2 is not installed.

// #cgo LDFLAGS: -lffms2
import "C"
