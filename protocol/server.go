// File: protocol/server.go
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

// RunServer executes the server half of the exchange over conn: read
// each message in full, acknowledge it with one byte, record one cycle
// count. The connection is owned by the loop and closed on return. An
// I/O error discards the samples collected so far; there is no retry
// and no partial statistics.
func RunServer(conn net.Conn, cfg Config) (*Result, error) {
	defer conn.Close()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	samples := make([]tsc.Tick, cfg.Iterations)
	var track cpuTracker
	ack := [ackLen]byte{ackByte}

	switch cfg.Generation {
	case RoundTrip:
		req := make([]byte, cfg.PayloadLen)
		for i := range samples {
			begin := tsc.Begin()
			if _, err := io.ReadFull(conn, req); err != nil {
				return nil, fmt.Errorf("read: %w", err)
			}
			if _, err := conn.Write(ack[:]); err != nil {
				return nil, fmt.Errorf("write: %w", err)
			}
			end, cpu := tsc.End()
			track.observe(cpu)
			samples[i] = end - begin
		}
	case OneWay:
		var msg [TickMessageLen]byte
		for i := range samples {
			if _, err := io.ReadFull(conn, msg[:]); err != nil {
				return nil, fmt.Errorf("read: %w", err)
			}
			sent := tsc.Tick(binary.NativeEndian.Uint64(msg[:]))
			if _, err := conn.Write(ack[:]); err != nil {
				return nil, fmt.Errorf("write: %w", err)
			}
			end, cpu := tsc.End()
			track.observe(cpu)
			samples[i] = Compensate(end, sent, cfg.Offset)
		}
	}
	return &Result{Samples: samples, CPU: track.last, Migrations: track.migrations}, nil
}
