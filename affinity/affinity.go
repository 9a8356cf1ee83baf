// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for pinning the measurement loop to one CPU.
// Platform-specific implementations live in separate files guarded by
// build tags.

package affinity

import "runtime"

// Pin locks the calling goroutine to its OS thread and binds that
// thread to the given logical CPU. The lock is never released: every
// counter read after Pin lands on one hardware thread for the rest of
// the run.
func Pin(cpuID int) error {
	runtime.LockOSThread()
	return setAffinityPlatform(cpuID)
}
