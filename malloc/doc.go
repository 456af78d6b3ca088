// Package malloc wraps the system allocator with memory accounting,
// with a limited scope:
//
//   - The underlying allocator is picked at compile time, via the
//     build tags `jemalloc` or `tcmalloc`, defaulting to libc.
//   - Every allocation and release is attributed to the OS thread
//     that performed it, in a fixed table of per-thread counters,
//     without taking locks. UsedMemory() sums the table into a
//     best-effort aggregate.
//   - On allocators that cannot report an allocation's usable size,
//     a fixed-width size header is stored immediately before every
//     payload; the header bytes are accounted as used memory.
//   - Memory-chunks returned by this package are always 8-byte
//     aligned.
//
// The panicking forms (Malloc, Calloc, Realloc) escalate allocation
// failure to a process-wide out-of-memory handler whose default logs
// the requested size and terminates the process. The Try forms return
// nil instead; callers must check for it.
package malloc
