//go:build linux && !jemalloc && !tcmalloc

package malloc

//#include <malloc.h>
import "C"

func systrim() {
	C.malloc_trim(0)
}
