// File: protocol/protocol.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package protocol

import (
	"fmt"

	"github.com/perfcomms/socklat/tsc"
)

// Generation selects the wire exchange variant.
type Generation int

const (
	// RoundTrip times a full request/acknowledgment exchange on the
	// client clock; the request is an opaque fixed-length buffer.
	RoundTrip Generation = iota
	// OneWay embeds the client's begin-tick in an 8-byte message so
	// the server times the inbound half on its own clock.
	OneWay
)

func (g Generation) String() string {
	switch g {
	case RoundTrip:
		return "roundtrip"
	case OneWay:
		return "oneway"
	}
	return fmt.Sprintf("generation(%d)", int(g))
}

// Wire constants shared by both roles.
const (
	DefaultIterations = 1000
	DefaultPayloadLen = 32
	MaxPayloadLen     = 4096

	// TickMessageLen is the one-way generation's fixed message size:
	// one begin-tick in host byte order.
	TickMessageLen = 8

	requestFill = 'c' // first byte of every round-trip request
	ackByte     = 's' // the server's single-byte acknowledgment

	ackLen = 1
)

// Config fixes one run of the exchange.
type Config struct {
	Generation Generation
	Iterations int
	// PayloadLen is the round-trip request length. The one-way
	// generation ignores it; its message is always the 8-byte tick.
	PayloadLen int
	// Offset is the correction constant bridging the client's and
	// server's counter domains. Server role, one-way generation only.
	Offset int64
}

// Validate rejects configurations the loops cannot run.
func (c Config) Validate() error {
	if c.Generation != RoundTrip && c.Generation != OneWay {
		return fmt.Errorf("unknown generation %d", int(c.Generation))
	}
	if c.Iterations < 1 {
		return fmt.Errorf("iterations must be positive, got %d", c.Iterations)
	}
	if c.Generation == RoundTrip && (c.PayloadLen < 1 || c.PayloadLen > MaxPayloadLen) {
		return fmt.Errorf("payload length must be within 1..%d, got %d", MaxPayloadLen, c.PayloadLen)
	}
	return nil
}

// Result carries the raw samples of one completed run plus the
// hardware-thread observations made by the serializing counter reads.
type Result struct {
	Samples []tsc.Tick
	// CPU is the thread tag of the final counter read; Migrations
	// counts mid-run tag changes. Observation only, never applied to
	// the samples.
	CPU        uint32
	Migrations int
}

// NewRequest builds the round-trip request buffer: the first byte
// marks it, the remainder stays zero. Content is opaque to the server;
// only the length is part of the contract.
func NewRequest(n int) []byte {
	req := make([]byte, n)
	req[0] = requestFill
	return req
}

// cpuTracker folds the per-iteration thread tags into the Result
// fields.
type cpuTracker struct {
	seen       bool
	last       uint32
	migrations int
}

func (t *cpuTracker) observe(cpu uint32) {
	if t.seen && cpu != t.last {
		t.migrations++
	}
	t.last = cpu
	t.seen = true
}
