// File: transport/inet.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package transport

import (
	"fmt"
	"net"
	"strconv"

	"github.com/perfcomms/socklat/api"
)

// inetTransport is plain TCP over IPv4. Destinations are
// dotted-decimal addresses; host names are deliberately not resolved.
type inetTransport struct {
	port int
}

var _ api.Transport = (*inetTransport)(nil)

// NewInet returns the IP variant on the given port.
func NewInet(port int) api.Transport {
	return &inetTransport{port: port}
}

func (t *inetTransport) ListenAndAccept() (net.Conn, error) {
	ln, err := net.Listen("tcp4", ":"+strconv.Itoa(t.port))
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

func (t *inetTransport) Connect(destination string) (net.Conn, error) {
	ip := net.ParseIP(destination)
	if ip == nil || ip.To4() == nil {
		return nil, fmt.Errorf("invalid address: %q", destination)
	}
	conn, err := net.Dial("tcp4", net.JoinHostPort(destination, strconv.Itoa(t.port)))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return conn, nil
}
