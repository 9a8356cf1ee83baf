// File: transport/unixsock.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package transport

import (
	"fmt"
	"net"

	"github.com/perfcomms/socklat/api"
)

// unixTransport is the local-domain variant. The rendezvous path is
// created at listen time and unlinked together with the listener,
// straight after the single accept, so a finished run leaves no stale
// socket file behind.
type unixTransport struct {
	path string
}

var _ api.Transport = (*unixTransport)(nil)

// NewUnix returns the local-domain variant on the given path.
func NewUnix(path string) api.Transport {
	return &unixTransport{path: path}
}

func (t *unixTransport) ListenAndAccept() (net.Conn, error) {
	ln, err := net.Listen("unix", t.path)
	if err != nil {
		return nil, fmt.Errorf("listen: %w", err)
	}
	conn, aerr := ln.Accept()
	ln.Close()
	if aerr != nil {
		return nil, fmt.Errorf("accept: %w", aerr)
	}
	return conn, nil
}

func (t *unixTransport) Connect(destination string) (net.Conn, error) {
	if destination == "" {
		return nil, fmt.Errorf("invalid path: %q", destination)
	}
	conn, err := net.Dial("unix", destination)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return conn, nil
}
