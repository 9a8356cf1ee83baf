//go:build linux
// +build linux

// File: transport/vsock_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Hypervisor guest/host channel over AF_VSOCK stream sockets. The net
// package has no dialer for this family, so the variant works on raw
// file descriptors via golang.org/x/sys and wraps them in a minimal
// blocking net.Conn. Deadlines are unsupported by contract: the
// exchange is fully blocking and a stalled peer blocks the run.

package transport

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"time"

	"golang.org/x/sys/unix"

	"github.com/perfcomms/socklat/api"
	"github.com/perfcomms/socklat/internal/logging"
)

// VSockAddr is a vsock endpoint address: context id plus port.
type VSockAddr struct {
	CID  uint32
	Port uint32
}

func (a VSockAddr) Network() string { return "vsock" }
func (a VSockAddr) String() string  { return fmt.Sprintf("%d:%d", a.CID, a.Port) }

type vsockTransport struct {
	port uint32
	log  *logging.Logger
}

var _ api.Transport = (*vsockTransport)(nil)

// NewVSock returns the hypervisor-channel variant on the given port.
func NewVSock(port uint32) (api.Transport, error) {
	return &vsockTransport{port: port, log: logging.Default()}, nil
}

func (t *vsockTransport) ListenAndAccept() (net.Conn, error) {
	fd, err := unix.Socket(unix.AF_VSOCK, unix.SOCK_STREAM, 0)
	if err != nil {
		return nil, fmt.Errorf("socket: %w", err)
	}
	if err := unix.Bind(fd, &unix.SockaddrVM{CID: unix.VMADDR_CID_ANY, Port: t.port}); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("bind: %w", err)
	}
	if err := unix.Listen(fd, listenBacklog); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("listen: %w", err)
	}
	nfd, peer, err := unix.Accept(fd)
	// One client per run: the listener goes away as soon as the
	// exchange endpoint exists.
	unix.Close(fd)
	if err != nil {
		return nil, fmt.Errorf("accept: %w", err)
	}

	conn := newVSockConn(nfd)
	if vm, ok := peer.(*unix.SockaddrVM); ok {
		conn.remote = VSockAddr{CID: vm.CID, Port: vm.Port}
	}

	// Peer identity is informational. A kernel that cannot answer
	// should not abort an otherwise healthy run.
	hostID, err := unix.GetsockoptInt(nfd, unix.SOL_SOCKET, unix.SO_VM_SOCKETS_PEER_HOST_VM_ID)
	if err != nil {
		t.log.Warnf("getsockopt SO_VM_SOCKETS_PEER_HOST_VM_ID: %v", err)
	} else {
		t.log.Infof("connection from cid %d port %d (peer host vm id %d)",
			conn.remote.CID, conn.remote.Port, hostID)
	}
	return conn, nil
}

func (t *vsockTransport) Connect(destination string) (net.Conn, error) {
	cid, err := parseCID(destination)
	if err != nil {
		return nil, err
	}
	fd, err := unix.Socket(unix.AF_VSOCK, unix.SOCK_STREAM, 0)
	if err != nil {
		return nil, fmt.Errorf("socket: %w", err)
	}
	if err := unix.Connect(fd, &unix.SockaddrVM{CID: cid, Port: t.port}); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("connect: %w", err)
	}
	conn := newVSockConn(fd)
	conn.remote = VSockAddr{CID: cid, Port: t.port}
	return conn, nil
}

// parseCID reads a destination context id. No socket work happens
// until the destination is known to be well formed.
func parseCID(s string) (uint32, error) {
	cid, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid cid: %q", s)
	}
	return uint32(cid), nil
}

// vsockConn is a blocking net.Conn over an AF_VSOCK descriptor.
type vsockConn struct {
	fd     int
	local  VSockAddr
	remote VSockAddr
}

var _ net.Conn = (*vsockConn)(nil)

func newVSockConn(fd int) *vsockConn {
	c := &vsockConn{fd: fd}
	if sa, err := unix.Getsockname(fd); err == nil {
		if vm, ok := sa.(*unix.SockaddrVM); ok {
			c.local = VSockAddr{CID: vm.CID, Port: vm.Port}
		}
	}
	return c
}

func (c *vsockConn) Read(p []byte) (int, error) {
	n, err := unix.Read(c.fd, p)
	if err != nil {
		return 0, err
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

func (c *vsockConn) Write(p []byte) (int, error) {
	var total int
	for total < len(p) {
		n, err := unix.Write(c.fd, p[total:])
		if err != nil {
			return total, err
		}
		if n <= 0 {
			return total, io.ErrShortWrite
		}
		total += n
	}
	return total, nil
}

func (c *vsockConn) Close() error {
	return unix.Close(c.fd)
}

func (c *vsockConn) LocalAddr() net.Addr  { return c.local }
func (c *vsockConn) RemoteAddr() net.Addr { return c.remote }

func (c *vsockConn) SetDeadline(time.Time) error      { return api.ErrNotSupported }
func (c *vsockConn) SetReadDeadline(time.Time) error  { return api.ErrNotSupported }
func (c *vsockConn) SetWriteDeadline(time.Time) error { return api.ErrNotSupported }
