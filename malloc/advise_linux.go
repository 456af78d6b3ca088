//go:build linux

package malloc

import "os"
import "unsafe"

import "golang.org/x/sys/unix"

// AdviseRelease hints to the OS that the pages backing ptr can be
// reclaimed immediately, bypassing the allocator. A forked child uses
// this on freed-but-still-mapped buffers to avoid copy-on-write
// duplication when the parent keeps writing. Fire and forget; a no-op
// unless the compiled-in allocator supports it.
//
// Partial pages cannot be released, so the range is aligned
// conservatively: start rounded up to a page boundary, length
// truncated down. sizehint, when non-zero, skips allocations too
// small to cover a page without querying their real size; pass 0 when
// the size is unknown.
func AdviseRelease(ptr unsafe.Pointer, sizehint int64) {
	if canadviserelease == false || ptr == nil {
		return
	}
	pagesize := int64(os.Getpagesize())
	if sizehint > 0 && sizehint/2 < pagesize {
		return
	}
	size := UsableSize(ptr)
	if size < pagesize {
		return
	}
	mask := uintptr(pagesize - 1)
	offset := int64(((uintptr(ptr) + mask) &^ mask) - uintptr(ptr))
	size -= offset
	if size >= pagesize {
		length := size &^ int64(mask)
		region := unsafe.Slice((*byte)(unsafe.Add(ptr, offset)), length)
		unix.Madvise(region, unix.MADV_DONTNEED)
	}
}
