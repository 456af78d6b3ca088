package malloc

import "unsafe"

// sizedblock owns a raw allocation that carries a fixed-width size
// header immediately before the payload. The header stores the
// rounded request and is the sole source of truth for the accounted
// size on header-based builds; it must never be visible to callers.
type sizedblock struct {
	base unsafe.Pointer
}

// blockat recovers the block from a payload pointer previously
// returned by this package.
func blockat(payload unsafe.Pointer) sizedblock {
	return sizedblock{base: unsafe.Add(payload, -int(prefixsize))}
}

func (block sizedblock) payload() unsafe.Pointer {
	return unsafe.Add(block.base, int(prefixsize))
}

func (block sizedblock) size() int64 {
	return int64(*(*uint64)(block.base))
}

func (block sizedblock) setsize(size int64) {
	*(*uint64)(block.base) = uint64(size)
}
