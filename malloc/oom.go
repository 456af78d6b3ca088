package malloc

import "os"

import "github.com/bnclabs/golog"

// OOMHandler invoked synchronously when a panicking allocation API
// cannot satisfy a request. size is the number of bytes asked for.
type OOMHandler func(size int64)

// Process-wide slot, replace at startup via SetOOMHandler. Continuing
// after a failed critical allocation risks corrupting the engine's
// data, so the default is deliberately fail-fast.
var oomhandler OOMHandler = defaultoom

// SetOOMHandler substitutes the out-of-memory handler, for embedding
// systems that want structured crash reporting or recovery. Passing
// nil restores the default. If a handler returns instead of
// terminating, callers of the panicking APIs receive nil.
func SetOOMHandler(handler OOMHandler) {
	if handler == nil {
		handler = defaultoom
	}
	oomhandler = handler
}

func defaultoom(size int64) {
	log.Errorf("malloc: out of memory trying to allocate %v bytes\n", size)
	os.Exit(1)
}
