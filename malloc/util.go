package malloc

import "fmt"
import "errors"

// ErrorPurge purge is unsupported, or the allocator refused it.
var ErrorPurge = errors.New("malloc.purge")

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}

// minalloc rounds zero-sized requests up to Minblock, matching the
// behaviour of allocators that never return NULL for size zero.
func minalloc(size int64) int64 {
	if size > 0 {
		return size
	}
	return Minblock
}
