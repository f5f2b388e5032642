// Package appcontext wires together the pieces every subcommand needs: a
// logger writing to stderr, the configured device set, and the shared
// five-subset table, so cmd/exactodds stays a thin argument parser.
package appcontext

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/exactodds/internal/combin"
	"github.com/lox/exactodds/internal/config"
	"github.com/lox/exactodds/internal/device"
	"github.com/lox/exactodds/internal/timing"
)

// Context bundles the shared, expensive-to-build state for one CLI
// invocation.
type Context struct {
	Logger  *log.Logger
	Config  *config.Config
	Devices []device.Device
	Subsets []combin.FiveSubset
	Timer   *timing.Timer
}

// Options configures device selection; it mirrors the CLI's -c/-g/-n,
// --config and -v flags directly so main.go can build one of these straight
// from the parsed arguments.
type Options struct {
	ConfigPath string
	UseCPU     bool
	UseGPU     bool
	Nop        bool
	Verbose    bool
}

// New builds a Context, failing if the requested device set resolves to
// nothing usable.
func New(opts Options) (*Context, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("appcontext: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("appcontext: %w", err)
	}

	level := log.WarnLevel
	if opts.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: opts.Verbose,
	})

	// The tuning file's use_gpu is a standing default, same as passing -g on
	// every invocation; the CLI flag and the config file both just feed
	// this one decision.
	useGPU := opts.UseGPU || cfg.Compute.UseGPU

	var kinds []device.Kind
	if opts.UseCPU || (!opts.UseCPU && !useGPU) {
		kinds = append(kinds, device.KindCPU)
	}
	if useGPU {
		kinds = append(kinds, device.KindGPU)
	}

	workers := cfg.Compute.CPUWorkers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var devices []device.Device
	if opts.Nop || cfg.Compute.Nop {
		devices = append(devices, device.NewNopDevice(0))
		logger.Debug("using nop device", "reason", "--nop")
	} else {
		devices = device.Discover(kinds, workers, cfg.Compute.BlockSize)
	}
	if len(devices) == 0 {
		return nil, fmt.Errorf("appcontext: no devices available for kinds %v", kinds)
	}
	for _, d := range devices {
		logger.Debug("device available", "name", d.Name(), "kind", d.Kind())
	}

	// The timing facility's single section stack cannot attribute
	// concurrent Start calls, so it is disabled outright once more than one device
	// is in play rather than serialize access and distort the very
	// thing it measures.
	timingEnabled := opts.Verbose && len(devices) == 1
	if opts.Verbose && len(devices) > 1 {
		logger.Debug("timing disabled", "reason", "multiple devices active", "devices", len(devices))
	}

	return &Context{
		Logger:  logger,
		Config:  cfg,
		Devices: devices,
		Subsets: combin.BuildFiveSubsets(),
		Timer:   timing.New(quartz.NewReal(), timingEnabled),
	}, nil
}
