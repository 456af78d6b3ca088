//go:build !linux || jemalloc || tcmalloc

package malloc

func systrim() {}
