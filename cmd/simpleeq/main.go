// Command simpleeq is a three-band parametric equalizer: a low cut, a peak
// and a high cut filter.
//
// Usage:
//
//	simpleeq <command> [flags]
//
// Examples:
//
//	simpleeq curve --peak-freq 1000 --peak-gain 6
//	simpleeq curve --low-cut 200 --low-slope 48 --table
//	simpleeq measure --fft 16384 --high-cut 5000
//	simpleeq params --preset vocal.json
//	simpleeq play --headless --signal sine --tone 440
package main

import (
	"log"
	"os"

	"github.com/alecthomas/kong"

	"github.com/zeljko94/SimpleEQ2/internal/cli"
)

var (
	version = "0.0.1"
)

// CLI defines the command-line interface
type CLI struct {
	Version bool   `short:"v" help:"Show version information"`
	Debug   string `type:"path" default:"simpleeq-debug.log" help:"Path of the debug log"`

	Curve   CurveCmd   `cmd:"" help:"Print the magnitude response curve"`
	Measure MeasureCmd `cmd:"" help:"Compare the computed response with an FFT of the impulse response"`
	Params  ParamsCmd  `cmd:"" help:"List the parameter layout"`
	Play    PlayCmd    `cmd:"" default:"withargs" help:"Run the live equalizer on a test signal"`
}

// Globals are bound into every command's Run method.
type Globals struct {
	Logf func(format string, args ...any)
}

func main() {
	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("simpleeq"),
		kong.Description("Three-band parametric equalizer"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	if cliArgs.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	// Open debug log file
	logf := func(string, ...any) {}
	if debugLog, err := os.Create(cliArgs.Debug); err == nil {
		defer debugLog.Close()
		logger := log.New(debugLog, "", log.LstdFlags|log.Lmicroseconds)
		logf = logger.Printf
	}
	logf("[MAIN] simpleeq %s: %s", version, ctx.Command())

	if err := ctx.Run(&Globals{Logf: logf}); err != nil {
		logf("[MAIN] %s failed: %v", ctx.Command(), err)
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}
