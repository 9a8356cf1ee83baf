// File: tsc/tsc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package tsc

import "sync"

// Tick is one raw counter reading. Opaque except for subtraction
// against a Tick from the same clock domain and addition of a signed
// correction constant; subtraction wraps when the domains are not
// directly comparable.
type Tick uint64

const overheadProbes = 4096

var (
	overheadOnce sync.Once
	overheadMin  Tick
)

// Overhead reports the minimum cost of one Begin/End pair, measured
// once over a burst of back-to-back probes and cached. The harness
// only reports it; samples are never adjusted by it.
func Overhead() Tick {
	overheadOnce.Do(func() {
		overheadMin = ^Tick(0)
		for i := 0; i < overheadProbes; i++ {
			b := Begin()
			e, _ := End()
			if d := e - b; d < overheadMin {
				overheadMin = d
			}
		}
	})
	return overheadMin
}
