// File: cmd/socklat/main_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/perfcomms/socklat/api"
	"github.com/perfcomms/socklat/protocol"
	"github.com/perfcomms/socklat/transport"
)

func build(t *testing.T, args ...string) (runConfig, error) {
	t.Helper()
	o, err := parseArgs(args, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs(%v): %v", args, err)
	}
	return buildConfig(o)
}

func TestBuildConfigServerDefaults(t *testing.T) {
	rc, err := build(t, "-s")
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if rc.role != api.RoleServer {
		t.Errorf("role = %v", rc.role)
	}
	if rc.family != api.FamilyVSock {
		t.Errorf("family = %v, want vsock default", rc.family)
	}
	if rc.cfg.Generation != protocol.RoundTrip {
		t.Errorf("generation = %v", rc.cfg.Generation)
	}
	if rc.cfg.Iterations != protocol.DefaultIterations {
		t.Errorf("iterations = %d", rc.cfg.Iterations)
	}
	if rc.cfg.PayloadLen != protocol.DefaultPayloadLen {
		t.Errorf("payload = %d", rc.cfg.PayloadLen)
	}
	if !rc.excludeFirst {
		t.Error("excludeFirst should default to true")
	}
	if rc.cpu != -1 {
		t.Errorf("cpu = %d, want -1", rc.cpu)
	}
}

func TestBuildConfigClient(t *testing.T) {
	rc, err := build(t, "-c", "/run/lat.sock", "-m", "unix", "-iterations", "10")
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if rc.role != api.RoleClient || rc.destination != "/run/lat.sock" {
		t.Errorf("role/destination = %v/%q", rc.role, rc.destination)
	}
	if rc.family != api.FamilyUnix {
		t.Errorf("family = %v", rc.family)
	}
	if rc.cfg.Iterations != 10 {
		t.Errorf("iterations = %d", rc.cfg.Iterations)
	}
}

func TestBuildConfigOffset(t *testing.T) {
	rc, err := build(t, "-s", "-oneway", "-offset", "-12345")
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if rc.cfg.Generation != protocol.OneWay {
		t.Errorf("generation = %v", rc.cfg.Generation)
	}
	if rc.cfg.Offset != -12345 {
		t.Errorf("offset = %d, want -12345", rc.cfg.Offset)
	}
}

func TestBuildConfigExcludeFirstOff(t *testing.T) {
	rc, err := build(t, "-s", "-exclude-first=false")
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if rc.excludeFirst {
		t.Error("excludeFirst still set")
	}
}

func TestBuildConfigRejections(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no role", nil, "exactly one"},
		{"both roles", []string{"-s", "-c", "3"}, "exactly one"},
		{"bad family", []string{"-s", "-m", "sctp"}, "unknown transport family"},
		{"offset on client", []string{"-c", "3", "-oneway", "-offset", "9"}, "server role"},
		{"offset without oneway", []string{"-s", "-offset", "9"}, "-oneway"},
		{"payload with oneway", []string{"-c", "3", "-oneway", "-payload", "64"}, "-payload"},
		{"zero iterations", []string{"-s", "-iterations", "0"}, "iterations"},
		{"payload zero", []string{"-c", "3", "-payload", "0"}, "payload"},
		{"payload too large", []string{"-c", "3", "-payload", "4097"}, "payload"},
		{"cpu below -1", []string{"-s", "-cpu", "-2"}, "-cpu"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := build(t, tc.args...)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("buildConfig(%v) = %v, want mention of %q", tc.args, err, tc.wantErr)
			}
		})
	}
}

func TestBuildConfigUnknownFamilySentinel(t *testing.T) {
	_, err := build(t, "-s", "-m", "bogus")
	if !errors.Is(err, api.ErrUnknownFamily) {
		t.Fatalf("err = %v, want ErrUnknownFamily", err)
	}
}

func TestParseArgsBadNumber(t *testing.T) {
	if _, err := parseArgs([]string{"-iterations", "abc"}, io.Discard); err == nil {
		t.Fatal("malformed -iterations accepted")
	}
}

// Full in-process pair over the local-domain transport: both roles
// complete, and each side's output is the raw sample dump followed by
// the summary block.
func TestEndToEndUnixPair(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lat.sock")
	const n = 100

	srvRC, err := build(t, "-s", "-m", "unix", "-oneway", "-offset", "0", "-iterations", strconv.Itoa(n))
	if err != nil {
		t.Fatalf("server config: %v", err)
	}
	cliRC, err := build(t, "-c", path, "-m", "unix", "-oneway", "-iterations", strconv.Itoa(n))
	if err != nil {
		t.Fatalf("client config: %v", err)
	}

	var srvOut bytes.Buffer
	srvErrCh := make(chan error, 1)
	go func() {
		srvErrCh <- runWith(transport.NewUnix(path), srvRC, &srvOut)
	}()

	// The rendezvous path appears once the listener is bound.
	deadline := time.Now().Add(5 * time.Second)
	for {
		if _, err := os.Stat(path); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("rendezvous path never appeared")
		}
		time.Sleep(2 * time.Millisecond)
	}

	var cliOut bytes.Buffer
	if err := runWith(transport.NewUnix(path), cliRC, &cliOut); err != nil {
		t.Fatalf("client run: %v", err)
	}
	if err := <-srvErrCh; err != nil {
		t.Fatalf("server run: %v", err)
	}

	for name, out := range map[string]string{"server": srvOut.String(), "client": cliOut.String()} {
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		// n-1 raw samples (first excluded), the first-sample line,
		// five summary lines.
		if want := n - 1 + 6; len(lines) != want {
			t.Errorf("%s line count = %d, want %d", name, len(lines), want)
		}
		if !strings.HasPrefix(lines[0], "   1: ") {
			t.Errorf("%s raw dump starts with %q", name, lines[0])
		}
		for _, want := range []string{"first: ", "min: ", "max: ", "avg: ", "stddev: ", "median: "} {
			if !strings.Contains(out, "\n"+want) {
				t.Errorf("%s output missing %q", name, want)
			}
		}
	}
}
