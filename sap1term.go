// This file is part of sap1term.
//
// sap1term is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sap1term is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sap1term.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sap1term/sap1term/assembler"
	"github.com/sap1term/sap1term/curated"
	"github.com/sap1term/sap1term/debugger"
	"github.com/sap1term/sap1term/debugger/terminal"
	"github.com/sap1term/sap1term/debugger/terminal/colorterm"
	"github.com/sap1term/sap1term/environment"
	"github.com/sap1term/sap1term/gui/termgui"
	"github.com/sap1term/sap1term/hardware"
	"github.com/sap1term/sap1term/hardware/sap1"
	"github.com/sap1term/sap1term/logger"
	"github.com/sap1term/sap1term/modalflag"
	"github.com/sap1term/sap1term/performance"
	"github.com/sap1term/sap1term/statsview"
	"github.com/sap1term/sap1term/vcdwriter"
	"github.com/sap1term/sap1term/version"
)

// exit values of the process
const (
	exitHalted   = 0
	exitNoHalt   = 1
	exitTrace    = 2
	exitLoad     = 3
	exitUsage    = 10
	exitRuntime  = 20
	exitNoColour = 254
	exitTooSmall = 255
)

// number of log entries printed after a visualised session
const logTailLength = 20

// where the profiler writes its files
const profilePath = "."

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout, os.Stderr))
}

// launch the mode specified by the arguments. returns the exit value of the
// process.
func launch(args []string, stdout io.Writer, stderr io.Writer) int {
	md := &modalflag.Modes{Output: stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "ASM")
	showVersion := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitHalted

	case modalflag.ParseError:
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitUsage
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.String())
		return exitHalted
	}

	switch md.Mode() {
	case "ASM":
		return asm(md, stdout, stderr)
	default:
		return run(md, stdout, stderr)
	}
}

func run(md *modalflag.Modes, stdout io.Writer, stderr io.Writer) int {
	md.NewMode()
	md.AdditionalHelp("PROGRAM is a RAM image with one hex word per line or SAP-1 assembly (.asm or .s).\n" +
		"Flags override the DUMP_TRACES, DUMP_F, USE_GUI and MAX_STEPS environment variables.")

	useGUI := md.AddBool("gui", false, "visualise the model in the terminal")
	trace := md.AddBool("trace", false, "write a VCD trace of every cycle")
	traceFile := md.AddString("tracefile", environment.DefaultTraceFile, "filename of the VCD trace")
	maxSteps := md.AddUint64("maxsteps", environment.DefaultMaxSteps, "maximum number of cycles")
	log := md.AddBool("log", false, "echo debugging log to stderr")
	prof := md.AddString("profile", string(performance.ProfileNone), "run through profiler: none, cpu, mem, trace")
	stats := md.AddBool("statsview", false, "run the statsview server")
	memvizFile := md.AddString("memviz", "", "write a graphviz description of the final session state")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitHalted
	case modalflag.ParseError:
		fmt.Fprintf(stderr, "* error in %s mode: %v\n", md, err)
		return exitUsage
	}

	env, err := environment.NewEnvironment()
	if err != nil {
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitUsage
	}

	// command line flags only override the environment if they have been set
	// explicitly
	var overrides []environment.Override
	if md.IsSet("gui") {
		overrides = append(overrides, environment.WithGUI(*useGUI))
	}
	if md.IsSet("trace") {
		overrides = append(overrides, environment.WithTrace(*trace))
	}
	if md.IsSet("tracefile") {
		overrides = append(overrides, environment.WithTraceFile(*traceFile))
	}
	if md.IsSet("maxsteps") {
		overrides = append(overrides, environment.WithMaxSteps(*maxSteps))
	}
	env.Apply(overrides...)

	profile, err := performance.ParseProfile(*prof)
	if err != nil {
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitUsage
	}

	switch len(md.RemainingArgs()) {
	case 0:
		fmt.Fprintf(stderr, "* error: program required for %s mode\n", md)
		return exitUsage
	case 1:
	default:
		fmt.Fprintf(stderr, "* error: too many arguments for %s mode\n", md)
		return exitUsage
	}

	// echoing the log while the terminal is being drawn to would spoil the
	// display. the tail of the log is printed at the end instead
	if *log && !env.GUI {
		logger.SetEcho(logger.NewColorizer(stderr), false)
		defer logger.SetEcho(nil, false)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(stderr)
		} else {
			fmt.Fprintln(stderr, "* statsview not available in this build")
		}
	}

	image, err := sap1.LoadFile(md.GetArg(0))
	if err != nil {
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitLoad
	}
	model, err := sap1.NewSAP1(image)
	if err != nil {
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitLoad
	}

	var sink hardware.Sink
	if env.Trace {
		vw, err := vcdwriter.Open(env.TraceFile, model)
		if err != nil {
			fmt.Fprintf(stderr, "* error: %v\n", err)
			return exitTrace
		}
		defer func() {
			if err := vw.Close(); err != nil {
				logger.Log(logger.Allow, "sap1term", err)
			}
		}()
		sink = vw
	}

	dbg := debugger.NewDebugger(model, sink, env.MaxSteps, stdout)

	var term *colorterm.ColorTerminal
	if env.GUI {
		term = &colorterm.ColorTerminal{}
		if err := term.Initialise(); err != nil {
			term.CleanUp()
			fmt.Fprintf(stderr, "* error: %v\n", err)
			switch {
			case curated.Is(err, terminal.TooSmall):
				return exitTooSmall
			case curated.Is(err, terminal.NoColour):
				return exitNoColour
			}
			return exitRuntime
		}
		dbg.AttachGUI(term, termgui.NewTermGUI(term), nil)
	}

	var res debugger.Result
	var runErr error
	start := time.Now()
	err = performance.RunProfiler(profile, profilePath, func() error {
		res, runErr = dbg.Run()
		return runErr
	})

	if term != nil {
		term.CleanUp()
		if *log {
			logger.Tail(logger.NewColorizer(stderr), logTailLength)
		}
	}

	logger.Logf(logger.Allow, "sap1term", "%.0f cycles per second",
		performance.CalcRate(res.Cycles, time.Since(start)))

	if *memvizFile != "" {
		if f, err := os.Create(*memvizFile); err != nil {
			fmt.Fprintf(stderr, "* error: %v\n", err)
		} else {
			dbg.Memviz(f)
			f.Close()
		}
	}

	if err != nil {
		fmt.Fprintf(stderr, "* error in %s mode: %v\n", md, err)
		if curated.Is(runErr, debugger.TraceFailed) {
			return exitTrace
		}
		return exitRuntime
	}

	fmt.Fprintln(stderr, res)
	if res.Success() {
		return exitHalted
	}
	return exitNoHalt
}

func asm(md *modalflag.Modes, stdout io.Writer, stderr io.Writer) int {
	md.NewMode()
	md.AdditionalHelp("SOURCE is SAP-1 assembly. The RAM image is written as one hex word per line.")

	output := md.AddString("o", "", "write RAM image to file rather than stdout")
	verbose := md.AddBool("v", false, "print label, variable and instruction tables")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitHalted
	case modalflag.ParseError:
		fmt.Fprintf(stderr, "* error in %s mode: %v\n", md, err)
		return exitUsage
	}

	switch len(md.RemainingArgs()) {
	case 0:
		fmt.Fprintf(stderr, "* error: source file required for %s mode\n", md)
		return exitUsage
	case 1:
	default:
		fmt.Fprintf(stderr, "* error: too many arguments for %s mode\n", md)
		return exitUsage
	}

	prog, err := assembler.AssembleFile(md.GetArg(0))
	if err != nil {
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitLoad
	}

	if *verbose {
		prog.WriteTables(stdout)
	}

	w := stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintf(stderr, "* error: %v\n", err)
			return exitRuntime
		}
		defer f.Close()
		w = f
	}

	if err := prog.WriteHex(w); err != nil {
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitRuntime
	}

	return exitHalted
}
