// File: stats/report.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package stats

import (
	"fmt"
	"io"

	"github.com/perfcomms/socklat/tsc"
)

// WriteReport prints every sample in iteration order followed by the
// summary block. When the first sample is excluded the raw dump starts
// at index 1 and the excluded value gets its own line ahead of the
// summary.
func WriteReport(w io.Writer, samples []tsc.Tick, excludeFirst bool) {
	s := Reduce(samples, excludeFirst)
	start := 0
	if s.FirstExcluded {
		start = 1
	}
	for i := start; i < len(samples); i++ {
		fmt.Fprintf(w, "%4d: %d\n", i, samples[i])
	}
	if s.Count == 0 {
		return
	}
	if s.FirstExcluded {
		fmt.Fprintf(w, "first: %d (excluded)\n", s.First)
	}
	fmt.Fprintf(w, "min: %d\n", s.Min)
	fmt.Fprintf(w, "max: %d\n", s.Max)
	fmt.Fprintf(w, "avg: %f\n", s.Mean)
	fmt.Fprintf(w, "stddev: %f\n", s.StdDev)
	fmt.Fprintf(w, "median: %d\n", s.Median)
}
