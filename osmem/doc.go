// Package osmem queries OS-level memory facts about this process and
// the host: resident set size, physical memory size, and private
// dirty pages summed from the kernel's memory-mapping report. Every
// query is stateless and read-only; a zero result means the platform
// offers no measurement, never an error.
package osmem
