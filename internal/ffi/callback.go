package ffi

/*
#include <stdint.h>
*/
import "C"
import (
	"unsafe"

	pointer "github.com/mattn/go-pointer"
)

//export goIndexProgress
func goIndexProgress(current, total C.int64_t, private unsafe.Pointer) C.int {
	if private == nil {
		return 0
	}
	fn, ok := pointer.Restore(private).(ProgressFunc)
	if !ok || fn == nil {
		return 0
	}
	if fn(int64(current), int64(total)) {
		return 1
	}
	return 0
}
