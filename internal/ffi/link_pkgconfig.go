//go:build !ffms2_nopkgconfig

package ffi

// #cgo pkg-config: ffms2
import "C"
