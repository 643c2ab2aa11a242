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

package debugger

import (
	"fmt"
	"io"

	"github.com/sap1term/sap1term/curated"
	"github.com/sap1term/sap1term/debugger/govern"
	"github.com/sap1term/sap1term/debugger/monitor"
	"github.com/sap1term/sap1term/debugger/terminal"
	"github.com/sap1term/sap1term/gui"
	"github.com/sap1term/sap1term/hardware"
	"github.com/sap1term/sap1term/logger"
)

// Sentinel errors.
const (
	TraceFailed  = "debugger: trace: %v"
	InputFailed  = "debugger: input: %v"
	RenderFailed = "debugger: render: %v"
	OutputFailed = "debugger: output: %v"
)

// Result of a session.
type Result struct {
	// the model asserted the halt signal
	Halted bool

	// the user asked to quit before the model halted
	Quit bool

	// number of cycles run
	Cycles uint64
}

// Success is true if the model halted.
func (r Result) Success() bool {
	return r.Halted
}

func (r Result) String() string {
	if r.Halted {
		return fmt.Sprintf("Success: simulation halted at clk %d", r.Cycles)
	}
	if r.Quit {
		return fmt.Sprintf("Error:   simulation quit at clk %d without a halt", r.Cycles)
	}
	return fmt.Sprintf("Error:   simulation reached clk %d without a halt", r.Cycles)
}

// Debugger is the session loop.
type Debugger struct {
	model    hardware.Model
	sink     hardware.Sink
	maxSteps uint64

	monitor monitor.Monitor

	// nil if there is no visualisation
	input    terminal.Input
	gui      gui.GUI
	governor *govern.Governor

	// the most recent snapshot and the cycle it is about to be used for
	snapshot hardware.Snapshot
	counter  uint64
	halted   bool

	result Result
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The sink may be nil. Output events are written to the output writer.
func NewDebugger(model hardware.Model, sink hardware.Sink, maxSteps uint64, output io.Writer) *Debugger {
	if model == nil {
		panic("debugger: nil model")
	}
	dbg := &Debugger{
		model:    model,
		sink:     sink,
		maxSteps: maxSteps,
	}
	if output != nil {
		dbg.monitor.Rec = monitor.WriterRecorder{W: output}
	}
	return dbg
}

// AttachGUI turns on visualisation of the session. The clock is passed to
// the governor and can be nil.
func (dbg *Debugger) AttachGUI(input terminal.Input, g gui.GUI, clock govern.Clock) {
	dbg.input = input
	dbg.gui = g
	dbg.governor = govern.NewGovernor(input, clock)
	dbg.governor.SetRefresh(dbg.render)
}

// Governor returns the governor of the session. Returns nil if no GUI has
// been attached.
func (dbg *Debugger) Governor() *govern.Governor {
	return dbg.governor
}

// Snapshot returns the most recent snapshot.
func (dbg *Debugger) Snapshot() hardware.Snapshot {
	return dbg.snapshot
}

// Result returns the result of the session. Only meaningful once Run() has
// returned.
func (dbg *Debugger) Result() Result {
	return dbg.result
}

func (dbg *Debugger) mode() gui.Mode {
	var cycles uint64
	if dbg.counter > 0 {
		cycles = dbg.counter - 1
	}
	return gui.Mode{
		State:    dbg.governor.State(),
		Interval: dbg.governor.Interval(),
		Cycles:   cycles,
		Halted:   dbg.halted,
	}
}

func (dbg *Debugger) render() error {
	if err := dbg.gui.Draw(gui.DescribeFrame(dbg.snapshot, dbg.mode())); err != nil {
		return curated.Errorf(RenderFailed, err)
	}
	return nil
}

// Run the session. The returned error is a curated error that can be tested
// for with the sentinel error patterns in this package. The Result is
// returned in all cases.
func (dbg *Debugger) Run() (Result, error) {
	err := dbg.run()
	if dbg.counter > 0 {
		dbg.result.Cycles = dbg.counter - 1
	}
	logger.Logf(logger.Allow, "session", "ended after %d cycles (halted: %v, quit: %v)",
		dbg.result.Cycles, dbg.result.Halted, dbg.result.Quit)
	return dbg.result, err
}

func (dbg *Debugger) run() error {
	logger.Logf(logger.Allow, "session", "max steps: %d", dbg.maxSteps)

	for dbg.counter = 1; ; dbg.counter++ {
		dbg.snapshot = hardware.Capture(dbg.model)

		if err := dbg.monitor.Check(&dbg.snapshot, dbg.counter); err != nil {
			return curated.Errorf(OutputFailed, err)
		}

		if dbg.snapshot.Halt {
			dbg.halted = true
			dbg.result.Halted = true
			logger.Logf(logger.Allow, "session", "halt at clk %d", dbg.counter-1)
			return dbg.finalKey()
		}

		// the first cycle is always run. after that the session stops once
		// the counter reaches the limit
		if dbg.counter > 1 && dbg.counter >= dbg.maxSteps {
			logger.Logf(logger.Allow, "session", "max steps reached")
			return nil
		}

		if dbg.governor != nil {
			quit, err := dbg.governor.Wait(dbg.snapshot.InstructionCounter)
			if err != nil {
				if curated.Is(err, RenderFailed) {
					return err
				}
				return curated.Errorf(InputFailed, err)
			}
			if quit {
				dbg.result.Quit = true
				return nil
			}
			if err := dbg.render(); err != nil {
				return err
			}
		}

		if err := hardware.Step(dbg.model, dbg.counter, dbg.sink); err != nil {
			return curated.Errorf(TraceFailed, err)
		}
	}
}

// render the halted frame and wait for a key
func (dbg *Debugger) finalKey() error {
	if dbg.governor == nil {
		return nil
	}
	if err := dbg.render(); err != nil {
		return err
	}
	if _, _, err := dbg.input.ReadKey(true); err != nil {
		return curated.Errorf(InputFailed, err)
	}
	return nil
}
