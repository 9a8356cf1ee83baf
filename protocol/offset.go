// File: protocol/offset.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package protocol

import "github.com/perfcomms/socklat/tsc"

// Compensate maps a server-observed end tick and the client's embedded
// send tick onto one latency sample, bridged by the operator-supplied
// correction constant between the two counter domains. The constant
// may be negative; the arithmetic wraps like the counters themselves.
func Compensate(end, sent tsc.Tick, offset int64) tsc.Tick {
	return end - sent + tsc.Tick(offset)
}
