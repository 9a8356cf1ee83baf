//go:build !amd64 && !arm64
// +build !amd64,!arm64

// File: tsc/tsc_fallback.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Portable fallback for architectures without a bound cycle counter:
// ticks are monotonic-clock nanoseconds since process start. Ordering
// comes from the clock itself rather than fences.

package tsc

import "time"

var epoch = time.Now()

// Begin returns monotonic nanoseconds since process start.
func Begin() Tick {
	return Tick(time.Since(epoch))
}

// End is Begin plus a constant zero hardware-thread tag.
func End() (tick Tick, cpu uint32) {
	return Tick(time.Since(epoch)), 0
}

// Frequency reports the fallback tick rate, one tick per nanosecond.
func Frequency() uint64 {
	return 1e9
}
