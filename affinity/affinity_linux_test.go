//go:build linux
// +build linux

// File: affinity/affinity_linux_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package affinity

import (
	"testing"

	"golang.org/x/sys/unix"
)

func TestPinCurrentThread(t *testing.T) {
	var before unix.CPUSet
	if err := unix.SchedGetaffinity(0, &before); err != nil {
		t.Skipf("sched_getaffinity: %v", err)
	}
	cpu := -1
	for i := 0; i < 1024; i++ {
		if before.IsSet(i) {
			cpu = i
			break
		}
	}
	if cpu < 0 {
		t.Skip("no allowed CPU in current mask")
	}
	if err := Pin(cpu); err != nil {
		t.Skipf("Pin(%d) not permitted here: %v", cpu, err)
	}
	var after unix.CPUSet
	if err := unix.SchedGetaffinity(0, &after); err != nil {
		t.Fatalf("sched_getaffinity after Pin: %v", err)
	}
	if !after.IsSet(cpu) || after.Count() != 1 {
		t.Errorf("after Pin(%d): count=%d, IsSet=%v", cpu, after.Count(), after.IsSet(cpu))
	}
	unix.SchedSetaffinity(0, &before)
}
