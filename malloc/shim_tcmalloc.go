//go:build tcmalloc

package malloc

/*
#cgo LDFLAGS: -ltcmalloc_minimal
#include <stdlib.h>
#include <gperftools/tcmalloc.h>
*/
import "C"

import "unsafe"

const allocatorname = "tcmalloc"

// tcmalloc reports the true usable size of any pointer.
const hasusablesize = true

const prefixsize = int64(0)

const canadviserelease = false

func sysmalloc(size int64) unsafe.Pointer {
	return C.tc_malloc(C.size_t(size))
}

func syscalloc(size int64) unsafe.Pointer {
	return C.tc_calloc(1, C.size_t(size))
}

func sysrealloc(ptr unsafe.Pointer, size int64) unsafe.Pointer {
	return C.tc_realloc(ptr, C.size_t(size))
}

func sysfree(ptr unsafe.Pointer) {
	C.tc_free(ptr)
}

func sysfreesized(ptr unsafe.Pointer, size int64) {
	C.tc_free(ptr)
}

func sysusable(ptr unsafe.Pointer) int64 {
	return int64(C.tc_malloc_size(ptr))
}

// tcmalloc exposes no epoch/stat counters comparable to jemalloc's;
// zero here means unknown, not empty.
func allocatorstats() Stats {
	return Stats{}
}

func setbgpurge(enable bool) bool {
	return false
}

func syspurge() bool {
	return false
}
