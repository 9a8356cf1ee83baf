// File: transport/transport.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package transport

import (
	"fmt"

	"github.com/perfcomms/socklat/api"
)

// Rendezvous identifiers shared by both roles: the port serves the
// vsock and inet families, the filesystem path serves the unix family.
const (
	ListenPort        = 12345
	DefaultSocketPath = "/tmp/socklat.sock"

	// One client per run; nothing ever queues behind it.
	listenBacklog = 1
)

// New returns the variant for family, bound to the well-known
// rendezvous identifiers.
func New(family api.Family) (api.Transport, error) {
	switch family {
	case api.FamilyVSock:
		return NewVSock(ListenPort)
	case api.FamilyUnix:
		return NewUnix(DefaultSocketPath), nil
	case api.FamilyInet:
		return NewInet(ListenPort), nil
	}
	return nil, fmt.Errorf("%w: %d", api.ErrUnknownFamily, int(family))
}
