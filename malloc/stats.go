package malloc

import gohumanize "github.com/dustin/go-humanize"

import "github.com/bnclabs/gomem/osmem"

// Stats allocator-internal statistics, in bytes. Only allocators that
// expose such counters fill them in; zero must be read as unknown,
// not as confirmed empty.
type Stats struct {
	Allocated int64 // bytes allocated by the application
	Active    int64 // bytes in active pages, includes fragmentation
	Resident  int64 // bytes in physically resident data pages
	Retained  int64 // bytes released via MADV_DONTNEED, still reserved
	Muzzy     int64 // bytes released via MADV_FREE, still resident
}

// Allocator name of the compile-time selected allocator.
func Allocator() string {
	return allocatorname
}

// AllocatorStats snapshot of the underlying allocator's counters.
func AllocatorStats() Stats {
	return allocatorstats()
}

// RSS resident set size of this process in bytes. Falls back to the
// aggregate accounted total when the OS offers no measurement, in
// which case fragmentation will appear to be 1.0.
func RSS() int64 {
	if rss := osmem.RSS(); rss > 0 {
		return rss
	}
	return UsedMemory()
}

// SetBackgroundPurging toggles the allocator's background purge
// thread. Best effort, a no-op on allocators without one.
func SetBackgroundPurging(enable bool) {
	if setbgpurge(enable) == false {
		debugf("malloc: background purging unsupported on %q\n", allocatorname)
	}
}

// Purge synchronously returns unused reserved pages to the OS.
func Purge() error {
	if syspurge() == false {
		return ErrorPurge
	}
	return nil
}

// Trim asks the libc allocator to release free heap memory back to
// the OS. A no-op outside the default glibc build.
func Trim() {
	systrim()
}

// LogMemory logs a humanized one-line snapshot of memory usage.
func LogMemory() {
	used, stats := UsedMemory(), AllocatorStats()
	if used < 0 {
		used = 0
	}
	infof(
		"malloc: %v used:%v rss:%v allocated:%v active:%v resident:%v retained:%v muzzy:%v\n",
		allocatorname,
		gohumanize.Bytes(uint64(used)), gohumanize.Bytes(uint64(RSS())),
		gohumanize.Bytes(uint64(stats.Allocated)),
		gohumanize.Bytes(uint64(stats.Active)),
		gohumanize.Bytes(uint64(stats.Resident)),
		gohumanize.Bytes(uint64(stats.Retained)),
		gohumanize.Bytes(uint64(stats.Muzzy)))
}
