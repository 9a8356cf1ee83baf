// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values shared across the harness.

package api

import "fmt"

// Sentinel errors. Callers match them with errors.Is; the surrounding
// context (failing step, offending input) is attached by wrapping.
var (
	ErrNotSupported  = fmt.Errorf("operation not supported on this platform")
	ErrUnknownFamily = fmt.Errorf("unknown transport family")
)
