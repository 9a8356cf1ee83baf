// File: protocol/client.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package protocol

import (
	"encoding/binary"
	"fmt"
	"io"
	"net"

	"github.com/perfcomms/socklat/tsc"
)

// RunClient executes the client half of the exchange over conn: send
// the iteration's message, block on the single-byte acknowledgment,
// record the round trip on the local clock. Iterations never overlap:
// iteration i+1's send starts only after iteration i's acknowledgment
// has arrived. The connection is owned by the loop and closed on
// return; an I/O error discards the run.
func RunClient(conn net.Conn, cfg Config) (*Result, error) {
	defer conn.Close()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	samples := make([]tsc.Tick, cfg.Iterations)
	var track cpuTracker
	var ack [ackLen]byte

	switch cfg.Generation {
	case RoundTrip:
		req := NewRequest(cfg.PayloadLen)
		for i := range samples {
			begin := tsc.Begin()
			if _, err := conn.Write(req); err != nil {
				return nil, fmt.Errorf("write: %w", err)
			}
			if _, err := io.ReadFull(conn, ack[:]); err != nil {
				return nil, fmt.Errorf("read: %w", err)
			}
			end, cpu := tsc.End()
			track.observe(cpu)
			samples[i] = end - begin
		}
	case OneWay:
		var msg [TickMessageLen]byte
		for i := range samples {
			begin := tsc.Begin()
			binary.NativeEndian.PutUint64(msg[:], uint64(begin))
			if _, err := conn.Write(msg[:]); err != nil {
				return nil, fmt.Errorf("write: %w", err)
			}
			if _, err := io.ReadFull(conn, ack[:]); err != nil {
				return nil, fmt.Errorf("read: %w", err)
			}
			end, cpu := tsc.End()
			track.observe(cpu)
			samples[i] = end - begin
		}
	}
	return &Result{Samples: samples, CPU: track.last, Migrations: track.migrations}, nil
}
