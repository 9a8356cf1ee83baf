// Package stats
// Author: momentics <momentics@gmail.com>
//
// Statistical reduction of raw latency samples: min/max/mean,
// population standard deviation and median over a sorted copy, with
// optional exclusion of the first (connection-setup) sample, plus the
// plain-text report layout downstream scripts consume.
package stats
