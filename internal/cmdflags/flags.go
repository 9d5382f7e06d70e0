// Package cmdflags defines the command line flags shared by hasted's
// entrypoints.
package cmdflags

import "github.com/urfave/cli/v2"

var (
	// VerbosityFlag defines the logrus configuration.
	VerbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity (debug, info=default, warn, error, fatal, panic)",
		Value: "info",
	}
	// LogFormat specifies the log output encoding.
	LogFormat = &cli.StringFlag{
		Name:  "log-format",
		Usage: "Specify log formatting. Supports: text, fluentd, json",
		Value: "text",
	}
	// LogFileName specifies a path to mirror logs to, in addition to stdout.
	LogFileName = &cli.StringFlag{
		Name:  "log-file",
		Usage: "Specify log file name; the file receives the same output as stdout",
	}
	// NodeArenaCapacity overrides the entity container's field-state arena size.
	NodeArenaCapacity = &cli.UintFlag{
		Name:  "node-arena-capacity",
		Usage: "Number of FieldState nodes to reserve in the shared arena",
		Value: 128 << 10,
	}
	// FieldPathScratchCapacity overrides the number of reusable FieldPath scratch slots.
	FieldPathScratchCapacity = &cli.UintFlag{
		Name:  "field-path-scratch-capacity",
		Usage: "Number of FieldPath slots to reuse across entities",
		Value: 4096,
	}
	// MonitoringPortFlag controls where Prometheus metrics are served.
	MonitoringPortFlag = &cli.IntFlag{
		Name:  "monitoring-port",
		Usage: "Port used to serve Prometheus metrics",
		Value: 8081,
	}
	// DemoFileFlag points at the fixture command stream to decode.
	// Real .dem framing is out of scope (spec.md §1); this is the
	// varint+protobuf+snappy container internal/demofile implements.
	DemoFileFlag = &cli.PathFlag{
		Name:     "demo-file",
		Usage:    "Path to a fixture command stream (internal/demofile framing)",
		Required: true,
	}
)

// Flags is the full set of flags registered on the hasted CLI app.
var Flags = []cli.Flag{
	VerbosityFlag,
	LogFormat,
	LogFileName,
	NodeArenaCapacity,
	FieldPathScratchCapacity,
	MonitoringPortFlag,
	DemoFileFlag,
}
