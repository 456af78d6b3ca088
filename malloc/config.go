package malloc

import s "github.com/prataprc/gosettings"

// Alignment guaranteed on every pointer returned by this package.
const Alignment = int64(8)

// Minblock smallest allocation handed to the underlying allocator.
// Zero-sized requests are rounded up to Minblock so that a valid,
// freeable pointer is always returned.
const Minblock = int64(8)

// auxthreads slots reserved beyond the configured I/O thread budget,
// for background and bookkeeping threads.
const auxthreads = int64(4)

// Malloc configurable parameters and default settings.
//
// "iothreads.max" (int64, default: 128)
//		Maximum number of concurrent I/O-processing threads the
//		embedding engine will run. Together with a small constant
//		for auxiliary threads it fixes the size of the per-thread
//		accounting table.
func Defaultsettings() s.Settings {
	return s.Settings{
		"iothreads.max": int64(128),
	}
}

// Configure the accounting table before any thread allocates through
// this package. Configuring after the first allocation panics, the
// table cannot be resized once consumed.
func Configure(setts s.Settings) {
	iomax := setts.Int64("iothreads.max")
	if iomax <= 0 {
		panicerr("iothreads.max should be positive, got %v", iomax)
	}
	resizethreadtable(iomax + auxthreads)
}
