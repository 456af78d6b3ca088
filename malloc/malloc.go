package malloc

import "math"
import "unsafe"

// maxallocsize requests at or above half the representable size fail
// outright, guarding the size-plus-header arithmetic from overflow.
const maxallocsize = int64(math.MaxInt64 / 2)

// trymallocusable is the common allocation path. Returns the payload
// pointer and its usable size, or nil on failure.
func trymallocusable(size int64) (unsafe.Pointer, int64) {
	if size < 0 || size >= maxallocsize {
		return nil, 0
	}
	ptr := sysmalloc(minalloc(size) + prefixsize)
	if ptr == nil {
		return nil, 0
	}
	return accountalloc(ptr, minalloc(size))
}

func trycallocusable(size int64) (unsafe.Pointer, int64) {
	if size < 0 || size >= maxallocsize {
		return nil, 0
	}
	ptr := syscalloc(minalloc(size) + prefixsize)
	if ptr == nil {
		return nil, 0
	}
	return accountalloc(ptr, minalloc(size))
}

// accountalloc applies the active size-header strategy to a fresh
// allocation and credits the calling thread.
func accountalloc(ptr unsafe.Pointer, rounded int64) (unsafe.Pointer, int64) {
	if hasusablesize {
		usable := sysusable(ptr)
		statalloc(usable)
		return ptr, usable
	}
	block := sizedblock{base: ptr}
	block.setsize(rounded)
	statalloc(rounded + prefixsize)
	return block.payload(), rounded
}

// TryMalloc allocates size bytes, returning nil when the request
// cannot be satisfied. Never invokes the out-of-memory handler.
func TryMalloc(size int64) unsafe.Pointer {
	ptr, _ := trymallocusable(size)
	return ptr
}

// Malloc allocates size bytes or escalates to the out-of-memory
// handler. If a substituted handler returns, the caller receives nil.
func Malloc(size int64) unsafe.Pointer {
	ptr, _ := trymallocusable(size)
	if ptr == nil {
		oomhandler(size)
	}
	return ptr
}

// TryMallocUsable is TryMalloc exposing the allocation's usable size,
// so size-sensitive callers can exploit the allocator's rounding.
func TryMallocUsable(size int64) (unsafe.Pointer, int64) {
	return trymallocusable(size)
}

// MallocUsable is Malloc exposing the allocation's usable size.
func MallocUsable(size int64) (unsafe.Pointer, int64) {
	ptr, usable := trymallocusable(size)
	if ptr == nil {
		oomhandler(size)
	}
	return ptr, usable
}

// TryCalloc allocates num*size zero-filled bytes, returning nil on
// failure, including when the multiplication itself overflows.
func TryCalloc(num, size int64) unsafe.Pointer {
	if num < 0 || size <= 0 || num > maxallocsize/size {
		return nil
	}
	ptr, _ := trycallocusable(num * size)
	return ptr
}

// Calloc allocates num*size zero-filled bytes or escalates to the
// out-of-memory handler. A wrapped multiplication is reported to the
// handler with the maximum size value.
func Calloc(num, size int64) unsafe.Pointer {
	if num < 0 || size <= 0 || num > maxallocsize/size {
		oomhandler(math.MaxInt64)
		return nil
	}
	ptr, _ := trycallocusable(num * size)
	if ptr == nil {
		oomhandler(num * size)
	}
	return ptr
}

// TryReallocUsable resizes an allocation. size == 0 with a non-nil
// ptr behaves as Free and returns nil; a nil ptr behaves as
// TryMallocUsable. The old usable size is captured before the
// underlying reallocation invalidates it, and the thread counter is
// updated by two separate deltas bracketing the call.
func TryReallocUsable(ptr unsafe.Pointer, size int64) (unsafe.Pointer, int64) {
	if size == 0 && ptr != nil {
		Free(ptr)
		return nil, 0
	}
	if ptr == nil {
		return trymallocusable(size)
	}
	if size < 0 || size >= maxallocsize {
		Free(ptr)
		return nil, 0
	}

	if hasusablesize {
		oldsize := sysusable(ptr)
		newptr := sysrealloc(ptr, size)
		if newptr == nil {
			return nil, 0
		}
		statfree(oldsize)
		usable := sysusable(newptr)
		statalloc(usable)
		return newptr, usable
	}

	block := blockat(ptr)
	oldsize := block.size()
	newbase := sysrealloc(block.base, size+prefixsize)
	if newbase == nil {
		return nil, 0
	}
	newblock := sizedblock{base: newbase}
	newblock.setsize(size)
	statfree(oldsize)
	statalloc(size)
	return newblock.payload(), size
}

// TryRealloc resizes an allocation, returning nil on failure.
func TryRealloc(ptr unsafe.Pointer, size int64) unsafe.Pointer {
	newptr, _ := TryReallocUsable(ptr, size)
	return newptr
}

// Realloc resizes an allocation or escalates to the out-of-memory
// handler. Freeing via size == 0 is not a failure.
func Realloc(ptr unsafe.Pointer, size int64) unsafe.Pointer {
	newptr, _ := TryReallocUsable(ptr, size)
	if newptr == nil && size != 0 {
		oomhandler(size)
	}
	return newptr
}

// ReallocUsable is Realloc exposing the new usable size.
func ReallocUsable(ptr unsafe.Pointer, size int64) (unsafe.Pointer, int64) {
	newptr, usable := TryReallocUsable(ptr, size)
	if newptr == nil && size != 0 {
		oomhandler(size)
	}
	return newptr, usable
}

// UsableSize reports the usable size of an allocation returned by
// this package, in O(1), stable until the pointer is reallocated.
func UsableSize(ptr unsafe.Pointer) int64 {
	if hasusablesize {
		return sysusable(ptr)
	}
	return blockat(ptr).size()
}

// Free releases an allocation and debits the calling thread by its
// recorded usable size. Free(nil) is a no-op.
func Free(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}
	if hasusablesize {
		size := sysusable(ptr)
		statfree(size)
		sysfreesized(ptr, size)
		return
	}
	block := blockat(ptr)
	statfree(block.size() + prefixsize)
	sysfree(block.base)
}

// FreeWithSize releases an allocation whose usable size the caller
// already knows, skipping the lookup. size must be the value reported
// by UsableSize or one of the Usable allocation variants.
func FreeWithSize(ptr unsafe.Pointer, size int64) {
	if ptr == nil {
		return
	}
	if hasusablesize {
		statfree(size)
		sysfreesized(ptr, size)
		return
	}
	statfree(size + prefixsize)
	sysfree(blockat(ptr).base)
}

// Dup copies src into a fresh allocation. Escalates to the
// out-of-memory handler on failure.
func Dup(src []byte) unsafe.Pointer {
	ptr := Malloc(int64(len(src)))
	if ptr == nil {
		return nil
	}
	copy(unsafe.Slice((*byte)(ptr), len(src)), src)
	return ptr
}
