// File: api/transport.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Transport abstraction shared by all socket families.
// The exchange protocol never sees family-specific addressing: it is
// handed a connected net.Conn by one of these two entry points and
// drives the same blocking message loop over it regardless of family.

package api

import "net"

// Transport establishes the measurement byte stream for one run.
// Concrete variants exist for the vsock, unix and inet families.
type Transport interface {
	// ListenAndAccept binds the family's well-known rendezvous
	// identifier, accepts exactly one peer and releases the
	// listening resource before returning. Server role entry point.
	ListenAndAccept() (net.Conn, error)

	// Connect parses destination in family-specific syntax (numeric
	// context id, filesystem path or dotted-decimal IPv4 address)
	// and establishes the connection. Client role entry point.
	Connect(destination string) (net.Conn, error)
}
