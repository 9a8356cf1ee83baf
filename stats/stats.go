// File: stats/stats.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package stats

import (
	"math"
	"slices"

	"github.com/perfcomms/socklat/tsc"
)

// Summary holds the aggregate statistics of one run.
type Summary struct {
	Count  int // samples aggregated after any exclusion
	Min    tsc.Tick
	Max    tsc.Tick
	Mean   float64
	StdDev float64 // population standard deviation
	Median tsc.Tick

	// FirstExcluded reports whether index 0 was dropped from the
	// aggregate; First carries its value for separate display.
	FirstExcluded bool
	First         tsc.Tick
}

// Reduce computes summary statistics over samples, optionally dropping
// index 0, the iteration that pays connection setup. The input is
// never reordered or modified: the median works on a sorted copy, and
// its midpoint index comes from the reduced count.
func Reduce(samples []tsc.Tick, excludeFirst bool) Summary {
	var s Summary
	view := samples
	if excludeFirst && len(samples) > 1 {
		s.FirstExcluded = true
		s.First = samples[0]
		view = samples[1:]
	}
	s.Count = len(view)
	if s.Count == 0 {
		return s
	}

	s.Min = view[0]
	s.Max = view[0]
	var sum float64
	for _, v := range view {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		sum += float64(v)
	}
	s.Mean = sum / float64(s.Count)

	var sq float64
	for _, v := range view {
		d := float64(v) - s.Mean
		sq += d * d
	}
	s.StdDev = math.Sqrt(sq / float64(s.Count))

	sorted := slices.Clone(view)
	slices.Sort(sorted)
	s.Median = sorted[len(sorted)/2]
	return s
}
