// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake implementations for testing and development. Predictable,
// controllable behavior for the transport contract without touching
// the host's sockets.

package fake

import (
	"net"
	"sync"

	"github.com/perfcomms/socklat/api"
)

// Transport is an in-memory api.Transport: ListenAndAccept and
// Connect hand out the two ends of a net.Pipe, so a server and a
// client loop can run as goroutines of one test process. Error
// injection makes the setup-failure paths reachable.
type Transport struct {
	mu         sync.Mutex
	listenErr  error
	connectErr error
	accepted   chan net.Conn
}

var _ api.Transport = (*Transport)(nil)

// NewTransport returns a fake ready for paired sessions.
func NewTransport() *Transport {
	return &Transport{accepted: make(chan net.Conn, 1)}
}

// SetListenError makes ListenAndAccept fail with err.
func (t *Transport) SetListenError(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listenErr = err
}

// SetConnectError makes Connect fail with err.
func (t *Transport) SetConnectError(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.connectErr = err
}

// ListenAndAccept blocks until the peer connects, mirroring the
// accept-once contract of the real variants.
func (t *Transport) ListenAndAccept() (net.Conn, error) {
	t.mu.Lock()
	err := t.listenErr
	t.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return <-t.accepted, nil
}

// Connect pairs with the pending accept. The destination is accepted
// verbatim; fakes do not validate addressing.
func (t *Transport) Connect(destination string) (net.Conn, error) {
	t.mu.Lock()
	err := t.connectErr
	t.mu.Unlock()
	if err != nil {
		return nil, err
	}
	srv, cli := net.Pipe()
	t.accepted <- srv
	return cli, nil
}
