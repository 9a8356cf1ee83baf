// Package protocol
// Author: momentics <momentics@gmail.com>
//
// The fixed-iteration exchange loops shared by every transport
// variant.
//
// Both roles run exactly N strictly sequential, fully blocking
// iterations over one connected endpoint: the client sends, the server
// acknowledges with a single byte, and each side records one cycle
// count per iteration. Two wire generations exist: the round-trip
// generation times a full request/acknowledgment exchange on the
// client clock, the one-way generation embeds the client's begin-tick
// so the server can time the inbound half against its own clock,
// bridged by an operator-supplied correction constant.
//
// The loops own the endpoint and close it on return. An I/O error
// discards the run: partial sample sets carry no statistics.
package protocol
