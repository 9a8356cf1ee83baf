// File: transport/doc.go
// Package transport
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Concrete transport variants behind the api.Transport contract.
// Three families carry the exchange: the hypervisor guest/host channel
// (AF_VSOCK, Linux only, raw sockets over golang.org/x/sys), the local
// domain socket (AF_UNIX) and TCP over IPv4 (AF_INET), both via the
// net package. Every variant serves exactly one peer per run: listen,
// accept once, release the listener, hand the connection over.

package transport
