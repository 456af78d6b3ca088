//go:build !linux

package malloc

import "unsafe"

// AdviseRelease is a no-op on platforms without MADV_DONTNEED
// semantics usable from a forked child.
func AdviseRelease(ptr unsafe.Pointer, sizehint int64) {}
