package malloc

/*
static _Thread_local int gomem_thread_index = -1;

static int gomem_get_thread_index(void) {
	return gomem_thread_index;
}

static void gomem_set_thread_index(int index) {
	if (gomem_thread_index == -1) gomem_thread_index = index;
}
*/
import "C"

import "sync/atomic"

// threadindex returns the accounting slot of the OS thread executing
// this call, assigning one on the thread's first touch. A goroutine
// can migrate between the read and the assignment, hence the
// conditional store on the C side; a lost index only leaves a zeroed
// slot behind and never corrupts the aggregate.
func threadindex() int32 {
	if index := int32(C.gomem_get_thread_index()); index >= 0 {
		return index
	}
	index := atomic.AddInt32(&totalthreads, 1) - 1
	C.gomem_set_thread_index(C.int(index))
	return index
}
