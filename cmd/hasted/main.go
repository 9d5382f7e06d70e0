// Command hasted decodes a fixture command stream (internal/demofile
// framing) into a live internal/entities.Container, logging a summary as it
// goes. Real .dem file framing and flattened-serializer construction from
// network schema messages are out of scope (spec.md §1); this operates on
// the documented fixture format and a hardcoded demo schema instead.
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	joonix "github.com/joonix/log"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"github.com/urfave/cli/v2"
	_ "go.uber.org/automaxprocs"

	"github.com/blukai/hasted/internal/bitreader"
	"github.com/blukai/hasted/internal/cmdflags"
	"github.com/blukai/hasted/internal/demofile"
	"github.com/blukai/hasted/internal/entities"
	"github.com/blukai/hasted/internal/fielddecoder"
	"github.com/blukai/hasted/internal/instancebaseline"
	"github.com/blukai/hasted/internal/version"
	"github.com/blukai/hasted/shared/logutil"
)

var appLog = logrus.WithField("prefix", "main")

func main() {
	app := cli.NewApp()
	app.Name = "hasted"
	app.Usage = "decode a packet-entities fixture stream"
	app.Version = version.GetVersion()
	app.Action = run
	app.Flags = cmdflags.Flags

	defer func() {
		if r := recover(); r != nil {
			appLog.WithField("stacktrace", fmt.Sprintf("%+v", r)).Fatal("panic detected")
		}
	}()

	if err := app.Run(os.Args); err != nil {
		appLog.Fatal(err)
	}
}

func run(cliCtx *cli.Context) error {
	if err := configureLogging(cliCtx); err != nil {
		return errors.Wrap(err, "failed to configure logging")
	}

	go serveMetrics(cliCtx.Int(cmdflags.MonitoringPortFlag.Name))

	classes, serializers, err := buildDemoSchema()
	if err != nil {
		return errors.Wrap(err, "failed to build demo schema")
	}
	baselines := instancebaseline.New()

	container := entities.NewContainer(
		classes,
		serializers,
		baselines,
		int(cliCtx.Uint(cmdflags.NodeArenaCapacity.Name)),
		int(cliCtx.Uint(cmdflags.FieldPathScratchCapacity.Name)),
	)

	f, err := os.Open(cliCtx.Path(cmdflags.DemoFileFlag.Name))
	if err != nil {
		return errors.Wrap(err, "failed to open demo file")
	}
	defer f.Close()

	return decodeStream(demofile.NewReader(f), baselines, container)
}

func decodeStream(r *demofile.Reader, baselines *instancebaseline.InstanceBaseline, container *entities.Container) error {
	ctx := &fielddecoder.Context{}

	for {
		cmd, err := r.ReadCommand()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to read command")
		}

		switch cmd.Kind {
		case demofile.KindStop:
			return nil

		case demofile.KindInstanceBaseline:
			br := bitreader.New(cmd.Payload)
			classID := br.ReadUVarint32()
			blob := cmd.Payload[br.ByteOffset():]
			if err := baselines.Update(fmt.Sprintf("%d", classID), blob); err != nil {
				return errors.Wrap(err, "failed to update instance baseline")
			}

		case demofile.KindPacketEntities:
			if err := decodePacketEntities(ctx, cmd.Payload, container); err != nil {
				return errors.Wrapf(err, "tick %d", cmd.Tick)
			}
			appLog.WithFields(logrus.Fields{
				"tick":          cmd.Tick,
				"live_entities": countLive(container),
			}).Debug("decoded packet-entities message")
		}
	}
}

// decodePacketEntities replays one packet-entities message: a run of
// (slot_index, DeltaHeader, record) triples, per spec.md §6, until fewer
// than NumEntEntryBits+2 bits remain.
func decodePacketEntities(ctx *fielddecoder.Context, payload []byte, container *entities.Container) error {
	br := bitreader.New(payload)

	for br.BitsRemaining() >= entities.NumEntEntryBits+2 {
		slotIndex := int32(br.ReadUBit64(entities.NumEntEntryBits))
		header := entities.ReadDeltaHeader(br)

		switch header {
		case entities.DeltaHeaderCreate:
			if _, err := container.HandleCreate(ctx, br, slotIndex); err != nil {
				return err
			}
		case entities.DeltaHeaderUpdate:
			if err := container.HandleUpdate(ctx, br, slotIndex); err != nil {
				return err
			}
		case entities.DeltaHeaderDelete:
			if _, err := container.HandleDelete(slotIndex); err != nil {
				return err
			}
		case entities.DeltaHeaderLeave:
			// No container mutation, per spec.md §4.4.
		}

		if err := br.IsOverflowed(); err != nil {
			return err
		}
	}

	return nil
}

func countLive(container *entities.Container) int {
	n := 0
	container.Iter(func(int32, entities.Entity) bool {
		n++
		return true
	})
	return n
}

func configureLogging(cliCtx *cli.Context) error {
	verbosity := cliCtx.String(cmdflags.VerbosityFlag.Name)
	level, err := logrus.ParseLevel(verbosity)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	switch cliCtx.String(cmdflags.LogFormat.Name) {
	case "text":
		formatter := new(prefixed.TextFormatter)
		formatter.TimestampFormat = "2006-01-02 15:04:05"
		formatter.FullTimestamp = true
		logrus.SetFormatter(formatter)
	case "fluentd":
		f := joonix.NewFormatter()
		if err := joonix.DisableTimestampFormat(f); err != nil {
			return errors.Wrap(err, "failed to disable timestamp format")
		}
		logrus.SetFormatter(f)
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return errors.Errorf("unknown log format %q", cliCtx.String(cmdflags.LogFormat.Name))
	}

	if logFileName := cliCtx.String(cmdflags.LogFileName.Name); logFileName != "" {
		if err := logutil.ConfigurePersistentLogging(logFileName); err != nil {
			return err
		}
	}

	return nil
}

func serveMetrics(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	addr := fmt.Sprintf(":%d", port)
	appLog.WithField("addr", addr).Info("serving prometheus metrics")
	if err := http.ListenAndServe(addr, mux); err != nil {
		appLog.WithError(err).Error("metrics server stopped")
	}
}
