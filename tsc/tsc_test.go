// File: tsc/tsc_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package tsc

import (
	"testing"
	"time"
)

func TestBeginEndAdvance(t *testing.T) {
	b := Begin()
	time.Sleep(time.Millisecond)
	e, _ := End()
	if d := e - b; d == 0 {
		t.Fatal("counter did not advance across a 1ms sleep")
	}
}

func TestTickArithmeticWraps(t *testing.T) {
	var lo Tick = 5
	hi := ^Tick(0) - 2
	if got := lo - hi; got != 8 {
		t.Errorf("wrapped delta = %d, want 8", got)
	}
}

func TestOverheadStable(t *testing.T) {
	o := Overhead()
	if o != Overhead() {
		t.Error("Overhead changed between calls")
	}
	b := Begin()
	time.Sleep(10 * time.Millisecond)
	e, _ := End()
	if d := e - b; d <= o {
		t.Errorf("10ms window (%d ticks) not above pair overhead (%d)", d, o)
	}
}

func TestFrequencyStable(t *testing.T) {
	f := Frequency()
	if f == 0 {
		t.Fatal("Frequency() = 0")
	}
	if f != Frequency() {
		t.Error("Frequency changed between calls")
	}
}

var sink Tick

func BenchmarkBeginEnd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		begin := Begin()
		end, _ := End()
		sink = end - begin
	}
}
