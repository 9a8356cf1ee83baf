//go:build amd64
// +build amd64

// File: tsc/tsc_amd64.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// x86-64 timestamp counter bindings. Assembly bodies in tsc_amd64.s.

package tsc

import (
	"sync"
	"time"
)

// Begin returns the TSC value behind a load fence so the read cannot
// be hoisted above preceding instructions.
func Begin() Tick

// End returns the TSC value via RDTSCP, which waits for every prior
// instruction to retire, plus the raw IA32_TSC_AUX tag naming the
// hardware thread the read executed on. The trailing fence keeps
// later instructions from starting before the read completes.
func End() (tick Tick, cpu uint32)

const calibrationWindow = 100 * time.Millisecond

var (
	freqOnce sync.Once
	freqHz   uint64
)

// Frequency estimates the invariant TSC rate in Hz by timing a fixed
// sleep window against the counter. Computed once and cached; the
// first caller pays the window.
func Frequency() uint64 {
	freqOnce.Do(func() {
		start := Begin()
		time.Sleep(calibrationWindow)
		end, _ := End()
		freqHz = uint64(end-start) * uint64(time.Second/calibrationWindow)
	})
	return freqHz
}
