// File: api/types.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Role and transport-family tags. Both are fixed once at startup and
// never change for the lifetime of a run.

package api

import "fmt"

// Role selects which half of the exchange protocol a process runs.
type Role int

const (
	RoleServer Role = iota
	RoleClient
)

func (r Role) String() string {
	switch r {
	case RoleServer:
		return "server"
	case RoleClient:
		return "client"
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// Family identifies the socket family carrying the exchange. The set
// is closed: all families speak the same wire protocol and differ only
// in addressing and rendezvous.
type Family int

const (
	// FamilyVSock is the hypervisor guest/host channel (AF_VSOCK).
	FamilyVSock Family = iota
	// FamilyUnix is the local domain socket (AF_UNIX).
	FamilyUnix
	// FamilyInet is TCP over IPv4 (AF_INET).
	FamilyInet
)

func (f Family) String() string {
	switch f {
	case FamilyVSock:
		return "vsock"
	case FamilyUnix:
		return "unix"
	case FamilyInet:
		return "inet"
	}
	return fmt.Sprintf("family(%d)", int(f))
}

// ParseFamily maps a -m flag spelling onto its Family tag.
func ParseFamily(s string) (Family, error) {
	switch s {
	case "vsock":
		return FamilyVSock, nil
	case "unix":
		return FamilyUnix, nil
	case "inet":
		return FamilyInet, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, s)
}
