package malloc

import "sync/atomic"

const cachelinesize = 64

// threadslot accumulates the bytes currently attributed to one OS
// thread. Padded so neighbouring slots never share a cache line.
// The accumulator is signed, a thread that frees memory allocated on
// another thread drives its own slot negative; only the sum across
// slots is meaningful.
type threadslot struct {
	used int64
	_    [cachelinesize - 8]byte
}

var threadtable []threadslot

// totalthreads counts every OS thread that ever touched this package,
// it doubles as the slot-index allocator. Relaxed statistics only,
// never a synchronization primitive.
var totalthreads int32

// overflowused absorbs accounting from threads beyond the table.
var overflowused int64

func init() {
	threadtable = maketable(Defaultsettings().Int64("iothreads.max") + auxthreads)
}

func maketable(capacity int64) []threadslot {
	return make([]threadslot, capacity)
}

func resizethreadtable(capacity int64) {
	if atomic.LoadInt32(&totalthreads) > 0 {
		panicerr("malloc: cannot Configure after threads have registered")
	}
	threadtable = maketable(capacity)
}

// statalloc credits size bytes to the calling thread, before the
// pointer is handed back to the caller.
func statalloc(size int64) {
	statadd(size)
}

func statfree(size int64) {
	statadd(-size)
}

func statadd(delta int64) {
	index := threadindex()
	if int(index) >= len(threadtable) {
		atomic.AddInt64(&overflowused, delta)
		return
	}
	atomic.AddInt64(&threadtable[index].used, delta)
}

// UsedMemory returns the aggregate bytes currently attributed through
// this package. The sum is taken without synchronizing against
// writers, so under concurrent allocation it is an estimate; once all
// writers quiesce it is exact.
func UsedMemory() int64 {
	um := int64(0)
	n := int(atomic.LoadInt32(&totalthreads))
	if n > len(threadtable) {
		um += atomic.LoadInt64(&overflowused)
		n = len(threadtable)
	}
	for i := 0; i < n; i++ {
		um += atomic.LoadInt64(&threadtable[i].used)
	}
	return um
}
