// Package tsc
// Author: momentics <momentics@gmail.com>
//
// Hardware cycle-counter timing primitives for the latency harness.
//
// Begin and End wrap the platform counter read with the ordering
// guards the measurement loop depends on: Begin cannot drift ahead of
// the code before it, End cannot complete before the I/O it is timing.
// Tick values are opaque; only differences within one clock domain
// carry meaning, and a signed correction constant bridges two domains.
//
// Counter bindings:
//   - amd64: LFENCE+RDTSC (Begin), RDTSCP+LFENCE (End, reports TSC_AUX)
//   - arm64: ISB+CNTVCT_EL0 (Begin), ISB+CNTVCT_EL0+ISB (End)
//   - otherwise: the runtime monotonic clock, one tick per nanosecond
package tsc
