//go:build !linux
// +build !linux

// File: transport/vsock_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// AF_VSOCK exists only in the Linux kernel; elsewhere the family is
// reported as unavailable before any socket work.

package transport

import (
	"fmt"

	"github.com/perfcomms/socklat/api"
)

// NewVSock reports the hypervisor channel as unavailable.
func NewVSock(port uint32) (api.Transport, error) {
	return nil, fmt.Errorf("vsock: %w", api.ErrNotSupported)
}
