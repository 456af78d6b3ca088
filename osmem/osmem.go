package osmem

import "os"

import sigar "github.com/cloudfoundry/gosigar"

// RSS bytes of this process currently mapped to physical RAM, 0 when
// the platform offers no measurement.
//
// WARNING: not designed to be fast, keep it off busy loops. Callers
// wanting a cheap estimate should use the allocator's accounted
// total.
func RSS() int64 {
	procmem := sigar.ProcMem{}
	if err := procmem.Get(os.Getpid()); err != nil {
		return 0
	}
	return int64(procmem.Resident)
}

// MemorySize physical RAM of the host in bytes. Strategies are tried
// in a fixed preference order until one succeeds; 0 when none does.
func MemorySize() uint64 {
	mem := sigar.Mem{}
	if err := mem.Get(); err == nil && mem.Total > 0 {
		return mem.Total
	}
	return sysinfomemory()
}
