//go:build arm64
// +build arm64

// File: tsc/tsc_arm64.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ARMv8 generic-timer bindings. Assembly bodies in tsc_arm64.s.
// CNTVCT_EL0 is one system-wide counter, so End has no per-thread
// identity to report and returns a constant zero tag.

package tsc

// Begin returns the virtual counter value behind an instruction
// barrier so the read cannot be hoisted above preceding instructions.
func Begin() Tick

// End returns the virtual counter value between instruction barriers:
// the leading one orders the read after all preceding instructions,
// the trailing one keeps later work from starting early. The thread
// tag is always zero on arm64.
func End() (tick Tick, cpu uint32)

// counterFrequency reads CNTFRQ_EL0, the architected counter rate.
func counterFrequency() uint64

// Frequency reports the generic-timer rate in Hz straight from the
// hardware; no calibration window is needed on arm64.
func Frequency() uint64 {
	return counterFrequency()
}
