//go:build jemalloc

package malloc

/*
#cgo LDFLAGS: -ljemalloc
#include <stdlib.h>
#include <jemalloc/jemalloc.h>
*/
import "C"

import "fmt"
import "unsafe"

const allocatorname = "jemalloc"

// jemalloc reports the true usable size of any pointer, no header is
// needed and the allocator's internal rounding is what gets
// accounted.
const hasusablesize = true

const prefixsize = int64(0)

const canadviserelease = true

func sysmalloc(size int64) unsafe.Pointer {
	return C.je_malloc(C.size_t(size))
}

func syscalloc(size int64) unsafe.Pointer {
	return C.je_calloc(1, C.size_t(size))
}

func sysrealloc(ptr unsafe.Pointer, size int64) unsafe.Pointer {
	return C.je_realloc(ptr, C.size_t(size))
}

func sysfree(ptr unsafe.Pointer) {
	C.je_free(ptr)
}

// sysfreesized releases through the sized fast track, skipping
// jemalloc's size lookup.
func sysfreesized(ptr unsafe.Pointer, size int64) {
	C.je_sdallocx(ptr, C.size_t(size), 0)
}

func sysusable(ptr unsafe.Pointer) int64 {
	return int64(C.je_malloc_usable_size(ptr))
}

func mallctlread(name string, out unsafe.Pointer, size uintptr) bool {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	sz := C.size_t(size)
	return C.je_mallctl(cname, out, &sz, nil, 0) == 0
}

// allocatorstats refreshes the statistics cached by mallctl, then
// reads them. Unlike RSS, stats.resident does not include mappings
// outside the allocator's control; stats.allocated covers every
// allocation by this process, not only those routed through this
// package.
func allocatorstats() Stats {
	var epoch C.uint64_t = 1
	sz := C.size_t(unsafe.Sizeof(epoch))
	cepoch := C.CString("epoch")
	C.je_mallctl(cepoch, unsafe.Pointer(&epoch), &sz, unsafe.Pointer(&epoch), sz)
	C.free(unsafe.Pointer(cepoch))

	var stats Stats
	var value C.size_t
	if mallctlread("stats.allocated", unsafe.Pointer(&value), unsafe.Sizeof(value)) {
		stats.Allocated = int64(value)
	}
	// active excludes the pages jemalloc keeps around for re-use,
	// purge cleans those.
	if mallctlread("stats.active", unsafe.Pointer(&value), unsafe.Sizeof(value)) {
		stats.Active = int64(value)
	}
	if mallctlread("stats.resident", unsafe.Pointer(&value), unsafe.Sizeof(value)) {
		stats.Resident = int64(value)
	}
	// retained pages were given back via MADV_DONTNEED; they are out
	// of RSS but still reserved in the allocator's address space.
	if mallctlread("stats.retained", unsafe.Pointer(&value), unsafe.Sizeof(value)) {
		stats.Retained = int64(value)
	}
	// muzzy pages were released with MADV_FREE and stay resident
	// until the OS reclaims them under pressure.
	var pmuzzy, page C.size_t
	muzzykey := fmt.Sprintf("stats.arenas.%d.pmuzzy", int64(C.MALLCTL_ARENAS_ALL))
	if mallctlread(muzzykey, unsafe.Pointer(&pmuzzy), unsafe.Sizeof(pmuzzy)) &&
		mallctlread("arenas.page", unsafe.Pointer(&page), unsafe.Sizeof(page)) {
		stats.Muzzy = int64(pmuzzy) * int64(page)
	}
	return stats
}

// setbgpurge lets jemalloc purge asynchronously, required when there
// is no allocation traffic to piggyback decay on.
func setbgpurge(enable bool) bool {
	value := C.bool(enable)
	cname := C.CString("background_thread")
	defer C.free(unsafe.Pointer(cname))
	rv := C.je_mallctl(
		cname, nil, nil, unsafe.Pointer(&value), C.size_t(unsafe.Sizeof(value)))
	return rv == 0
}

// syspurge returns all unused reserved pages to the OS.
func syspurge() bool {
	var narenas C.unsigned
	if !mallctlread("arenas.narenas", unsafe.Pointer(&narenas), unsafe.Sizeof(narenas)) {
		return false
	}
	cname := C.CString(fmt.Sprintf("arena.%d.purge", uint(narenas)))
	defer C.free(unsafe.Pointer(cname))
	return C.je_mallctl(cname, nil, nil, nil, 0) == 0
}
