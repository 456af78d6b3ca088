//go:build !jemalloc && !tcmalloc

package malloc

//#include <stdlib.h>
import "C"

import "unsafe"

const allocatorname = "libc"

// libc has no portable usable-size query, so every allocation carries
// a size header before the payload.
const hasusablesize = false

// prefixsize width of the size header. sizeof(size_t) on 64-bit
// systems; at least 8 bytes on all systems, preserving alignment.
const prefixsize = int64(8)

const canadviserelease = false

func sysmalloc(size int64) unsafe.Pointer {
	return C.malloc(C.size_t(size))
}

func syscalloc(size int64) unsafe.Pointer {
	return C.calloc(1, C.size_t(size))
}

func sysrealloc(ptr unsafe.Pointer, size int64) unsafe.Pointer {
	return C.realloc(ptr, C.size_t(size))
}

func sysfree(ptr unsafe.Pointer) {
	C.free(ptr)
}

func sysfreesized(ptr unsafe.Pointer, size int64) {
	C.free(ptr)
}

// sysusable never called on this build, the header strategy answers
// usable-size queries.
func sysusable(ptr unsafe.Pointer) int64 {
	return 0
}

func allocatorstats() Stats {
	return Stats{}
}

func setbgpurge(enable bool) bool {
	return false
}

func syspurge() bool {
	return false
}
