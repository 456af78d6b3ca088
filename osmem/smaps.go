package osmem

import "os"

import "github.com/shirou/gopsutil/process"

// SmapBytes sums the named field across the process's memory-mapping
// report, converted from kilobytes to bytes. pid -1 means the current
// process. Fields follow the smaps spelling: "Rss", "Pss", "Swap",
// "Private_Dirty", "Private_Clean", "Shared_Dirty", "Shared_Clean",
// "Referenced", "Anonymous", "Size". Unknown fields and platforms
// without a mapping report yield 0.
func SmapBytes(field string, pid int) int64 {
	if pid == -1 {
		pid = os.Getpid()
	}
	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return 0
	}
	grouped, err := proc.MemoryMaps(true)
	if err != nil || grouped == nil {
		return 0
	}
	kb := uint64(0)
	for _, mapping := range *grouped {
		switch field {
		case "Rss":
			kb += mapping.Rss
		case "Pss":
			kb += mapping.Pss
		case "Swap":
			kb += mapping.Swap
		case "Size":
			kb += mapping.Size
		case "Private_Dirty":
			kb += mapping.PrivateDirty
		case "Private_Clean":
			kb += mapping.PrivateClean
		case "Shared_Dirty":
			kb += mapping.SharedDirty
		case "Shared_Clean":
			kb += mapping.SharedClean
		case "Referenced":
			kb += mapping.Referenced
		case "Anonymous":
			kb += mapping.Anonymous
		}
	}
	return int64(kb) * 1024
}

// PrivateDirty total bytes in pages marked private dirty, the memory
// a forked child would have to duplicate on write.
//
// Depending on the memory footprint of the process this call can
// exceed a second; never invoke it on a latency-sensitive path.
func PrivateDirty(pid int) int64 {
	return SmapBytes("Private_Dirty", pid)
}
