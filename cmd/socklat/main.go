// File: cmd/socklat/main.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// socklat measures round-trip and one-way message latency between two
// processes over a hypervisor vsock channel, a unix domain socket or
// TCP, timing each exchange with the hardware cycle counter.
//
// Server:  socklat -s [-oneway -offset N] [-m vsock|unix|inet]
// Client:  socklat -c <cid|path|addr> [-oneway] [-m vsock|unix|inet]
//
// Samples and summary statistics go to standard output; every
// diagnostic stays on standard error.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/perfcomms/socklat/affinity"
	"github.com/perfcomms/socklat/api"
	"github.com/perfcomms/socklat/internal/logging"
	"github.com/perfcomms/socklat/protocol"
	"github.com/perfcomms/socklat/stats"
	"github.com/perfcomms/socklat/transport"
	"github.com/perfcomms/socklat/tsc"
)

// options mirrors the flag set verbatim; buildConfig turns it into a
// validated runConfig so argument handling stays testable without the
// process-global flag state.
type options struct {
	server       bool
	destination  string
	family       string
	oneway       bool
	offset       int64
	iterations   int
	payload      int
	excludeFirst bool
	cpu          int
	verbose      bool

	set map[string]bool // flags explicitly given on the command line
}

// runConfig is a fully validated description of one run.
type runConfig struct {
	role         api.Role
	family       api.Family
	destination  string
	cfg          protocol.Config
	excludeFirst bool
	cpu          int
	verbose      bool
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: socklat -s [-oneway -offset N] [-m vsock|unix|inet] [options]")
	fmt.Fprintln(w, "       socklat -c <cid|path|addr> [-oneway] [-m vsock|unix|inet] [options]")
}

func parseArgs(args []string, errOut io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("socklat", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		usage(fs.Output())
		fs.PrintDefaults()
	}
	fs.BoolVar(&o.server, "s", false, "run as server")
	fs.StringVar(&o.destination, "c", "", "run as client, connecting to `dest` (cid, path or IPv4 address)")
	fs.StringVar(&o.family, "m", "vsock", "transport family: vsock, unix or inet")
	fs.BoolVar(&o.oneway, "oneway", false, "one-way generation: the client embeds its begin-tick")
	fs.Int64Var(&o.offset, "offset", 0, "correction constant added to one-way samples (server only)")
	fs.IntVar(&o.iterations, "iterations", protocol.DefaultIterations, "exchange iterations")
	fs.IntVar(&o.payload, "payload", protocol.DefaultPayloadLen, "round-trip request length in bytes")
	fs.BoolVar(&o.excludeFirst, "exclude-first", true, "exclude the first sample from statistics")
	fs.IntVar(&o.cpu, "cpu", -1, "pin the measurement thread to this CPU (-1: no pinning)")
	fs.BoolVar(&o.verbose, "v", false, "debug logging to stderr")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// buildConfig validates the raw options. All violations surface here,
// before any socket activity.
func buildConfig(o options) (runConfig, error) {
	var rc runConfig
	if o.server == (o.destination != "") {
		return rc, fmt.Errorf("exactly one of -s and -c must be given")
	}
	if o.server {
		rc.role = api.RoleServer
	} else {
		rc.role = api.RoleClient
		rc.destination = o.destination
	}

	family, err := api.ParseFamily(o.family)
	if err != nil {
		return rc, err
	}
	rc.family = family

	rc.cfg.Generation = protocol.RoundTrip
	if o.oneway {
		rc.cfg.Generation = protocol.OneWay
	}
	rc.cfg.Iterations = o.iterations

	if o.set["offset"] {
		if rc.role != api.RoleServer {
			return rc, fmt.Errorf("-offset applies to the server role only")
		}
		if !o.oneway {
			return rc, fmt.Errorf("-offset is only meaningful with -oneway")
		}
	}
	if rc.role == api.RoleServer && o.oneway {
		rc.cfg.Offset = o.offset
	}

	if o.oneway {
		if o.set["payload"] {
			return rc, fmt.Errorf("-payload does not apply to -oneway; the message is always %d bytes", protocol.TickMessageLen)
		}
	} else {
		rc.cfg.PayloadLen = o.payload
	}

	if o.cpu < -1 {
		return rc, fmt.Errorf("-cpu must be -1 or a logical CPU index, got %d", o.cpu)
	}
	rc.cpu = o.cpu
	rc.excludeFirst = o.excludeFirst
	rc.verbose = o.verbose

	if err := rc.cfg.Validate(); err != nil {
		return rc, err
	}
	return rc, nil
}

func run(rc runConfig) error {
	tr, err := transport.New(rc.family)
	if err != nil {
		return err
	}
	return runWith(tr, rc, os.Stdout)
}

// runWith drives one full run over an established transport: pin,
// rendezvous, exchange, report.
func runWith(tr api.Transport, rc runConfig, out io.Writer) error {
	log := logging.Default()
	if rc.verbose {
		log.SetLevel(logging.LevelDebug)
		log.Debugf("role=%s family=%s generation=%s iterations=%d payload=%d offset=%d",
			rc.role, rc.family, rc.cfg.Generation, rc.cfg.Iterations, rc.cfg.PayloadLen, rc.cfg.Offset)
		log.Debugf("counter: %d Hz, pair overhead %d ticks", tsc.Frequency(), tsc.Overhead())
	}

	if rc.cpu >= 0 {
		if err := affinity.Pin(rc.cpu); err != nil {
			return fmt.Errorf("pin cpu %d: %w", rc.cpu, err)
		}
		log.Debugf("pinned to cpu %d", rc.cpu)
	}

	var (
		conn net.Conn
		err  error
	)
	if rc.role == api.RoleServer {
		conn, err = tr.ListenAndAccept()
	} else {
		conn, err = tr.Connect(rc.destination)
	}
	if err != nil {
		return err
	}
	log.Debugf("endpoint established: %v -> %v", conn.LocalAddr(), conn.RemoteAddr())

	var res *protocol.Result
	if rc.role == api.RoleServer {
		res, err = protocol.RunServer(conn, rc.cfg)
	} else {
		res, err = protocol.RunClient(conn, rc.cfg)
	}
	if err != nil {
		return err
	}
	if res.Migrations > 0 {
		log.Warnf("counter reads moved across hardware threads %d times; pin with -cpu for stable numbers",
			res.Migrations)
	}

	w := bufio.NewWriter(out)
	stats.WriteReport(w, res.Samples, rc.excludeFirst)
	return w.Flush()
}

func main() {
	o, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}
	rc, err := buildConfig(o)
	if err != nil {
		fmt.Fprintf(os.Stderr, "socklat: %v\n", err)
		usage(os.Stderr)
		os.Exit(2)
	}
	if err := run(rc); err != nil {
		fmt.Fprintf(os.Stderr, "socklat: %v\n", err)
		os.Exit(1)
	}
}
