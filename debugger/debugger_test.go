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

package debugger_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sap1term/sap1term/curated"
	"github.com/sap1term/sap1term/debugger"
	"github.com/sap1term/sap1term/gui"
	"github.com/sap1term/sap1term/hardware"
	"github.com/sap1term/sap1term/test"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.now = c.now.Add(d)
}

var errNoMoreKeys = errors.New("no more keys")

// keys are only delivered to blocking reads
type fakeInput struct {
	keys []rune
}

func (in *fakeInput) ReadKey(block bool) (rune, bool, error) {
	if !block {
		return 0, false, nil
	}
	if len(in.keys) == 0 {
		return 0, false, errNoMoreKeys
	}
	k := in.keys[0]
	in.keys = in.keys[1:]
	return k, true, nil
}

type fakeGUI struct {
	frames int
	last   gui.Frame
}

func (g *fakeGUI) Draw(f gui.Frame) error {
	g.frames++
	g.last = f
	return nil
}

type fakeSink struct {
	dumps   []hardware.Timestamp
	flushes int
	err     error
}

func (s *fakeSink) Dump(t hardware.Timestamp) error {
	s.dumps = append(s.dumps, t)
	return s.err
}

func (s *fakeSink) Flush() error {
	s.flushes++
	return nil
}

func program(n int, halt bool) []hardware.Snapshot {
	snapshots := make([]hardware.Snapshot, n)
	for i := range snapshots {
		snapshots[i].ProgramCounter = uint64(i & 0x0f)
	}
	if halt {
		snapshots[n-1].Halt = true
	}
	return snapshots
}

func TestHalt(t *testing.T) {
	m := hardware.NewReplay(program(6, true)...)
	dbg := debugger.NewDebugger(m, nil, 100, nil)

	res, err := dbg.Run()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res, debugger.Result{Halted: true, Cycles: 5})
	test.ExpectEquality(t, res.Success(), true)

	// no cycles after the halt was observed
	test.ExpectEquality(t, m.Edges, 5)
}

func TestMaxSteps(t *testing.T) {
	m := hardware.NewReplay(program(1, false)...)
	dbg := debugger.NewDebugger(m, nil, 10, nil)

	res, err := dbg.Run()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res, debugger.Result{Cycles: 9})
	test.ExpectEquality(t, res.Success(), false)
	test.ExpectEquality(t, m.Edges, 9)
}

func TestZeroMaxSteps(t *testing.T) {
	m := hardware.NewReplay(program(1, false)...)
	dbg := debugger.NewDebugger(m, nil, 0, nil)

	res, err := dbg.Run()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res.Cycles, uint64(1))
	test.ExpectEquality(t, m.Edges, 1)
}

func TestSmallMaxSteps(t *testing.T) {
	for _, c := range []struct {
		maxSteps uint64
		cycles   uint64
	}{
		{maxSteps: 1, cycles: 1},
		{maxSteps: 2, cycles: 1},
		{maxSteps: 3, cycles: 2},
	} {
		m := hardware.NewReplay(program(1, false)...)
		dbg := debugger.NewDebugger(m, nil, c.maxSteps, nil)

		res, err := dbg.Run()
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, res.Cycles, c.cycles, c.maxSteps)
		test.ExpectEquality(t, uint64(m.Edges), c.cycles, c.maxSteps)
	}
}

func TestOutputEvents(t *testing.T) {
	snapshots := program(51, true)
	for i := range snapshots {
		snapshots[i].OutReg = uint64(i)
	}

	// the snapshot for cycle N is at index N-1
	snapshots[9].OutRegIn = true
	snapshots[24].OutRegIn = true
	snapshots[39].OutRegIn = true

	tw := &test.CompareWriter{}
	dbg := debugger.NewDebugger(hardware.NewReplay(snapshots...), nil, 1000, tw)
	res, err := dbg.Run()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res.Cycles, uint64(50))

	lines := tw.Lines()
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[0], "OUT  hex: 0x0a / dec:  10 / clk       10")
	test.ExpectEquality(t, lines[1], "OUT  hex: 0x19 / dec:  25 / clk       25 (15 clks since last)")
	test.ExpectEquality(t, lines[2], "OUT  hex: 0x28 / dec:  40 / clk       40 (15 clks since last)")
}

func TestTrace(t *testing.T) {
	sink := &fakeSink{}
	dbg := debugger.NewDebugger(hardware.NewReplay(program(1, false)...), sink, 3, nil)
	_, err := dbg.Run()
	test.ExpectSuccess(t, err)

	test.DemandEquality(t, len(sink.dumps), 8)
	test.ExpectEquality(t, sink.flushes, 4)
	for i := 1; i < len(sink.dumps); i++ {
		test.ExpectEquality(t, sink.dumps[i] > sink.dumps[i-1], true, i)
	}
	test.ExpectEquality(t, sink.dumps[0], hardware.CycleTimestamps(1)[0])
	test.ExpectEquality(t, sink.dumps[7], hardware.CycleTimestamps(2)[3])
}

func TestTraceFailure(t *testing.T) {
	sink := &fakeSink{err: errors.New("disk full")}
	dbg := debugger.NewDebugger(hardware.NewReplay(program(1, false)...), sink, 3, nil)
	res, err := dbg.Run()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, debugger.TraceFailed), true)
	test.ExpectEquality(t, res.Halted, false)
}

func newGUIDebugger(m hardware.Model, keys ...rune) (*debugger.Debugger, *fakeGUI) {
	dbg := debugger.NewDebugger(m, nil, 1000, nil)
	g := &fakeGUI{}
	clk := &fakeClock{now: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
	dbg.AttachGUI(&fakeInput{keys: keys}, g, clk)
	return dbg, g
}

func TestStepAndQuit(t *testing.T) {
	m := hardware.NewReplay(program(10, false)...)
	dbg, g := newGUIDebugger(m, 's', 's', 'q')

	res, err := dbg.Run()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res, debugger.Result{Quit: true, Cycles: 2})
	test.ExpectEquality(t, m.Edges, 2)
	test.ExpectEquality(t, g.frames > 0, true)
}

func TestQuitBeforeFirstCycle(t *testing.T) {
	m := hardware.NewReplay(program(10, false)...)
	dbg, g := newGUIDebugger(m, 'Q')

	res, err := dbg.Run()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res, debugger.Result{Quit: true, Cycles: 0})
	test.ExpectEquality(t, m.Edges, 0)

	// the first snapshot was shown before waiting for the key
	test.ExpectEquality(t, g.frames, 1)
}

func TestHaltWithGUI(t *testing.T) {
	m := hardware.NewReplay(program(2, true)...)
	dbg, g := newGUIDebugger(m, 'r', 'x')

	res, err := dbg.Run()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res, debugger.Result{Halted: true, Cycles: 1})
	test.ExpectEquality(t, m.Edges, 1)

	// the last frame shows the halted banner
	test.DemandEquality(t, len(g.last) > 0, true)
	hdr := g.last[0]
	test.ExpectEquality(t, hdr.Widget, gui.Header)
	test.ExpectEquality(t, hdr.Lines[len(hdr.Lines)-1], gui.HaltedBanner)
}

func TestInputFailure(t *testing.T) {
	m := hardware.NewReplay(program(10, false)...)
	dbg, _ := newGUIDebugger(m, 's')

	// the second blocking read fails
	res, err := dbg.Run()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, debugger.InputFailed), true)
	test.ExpectEquality(t, res.Cycles, uint64(1))
}

func TestResultString(t *testing.T) {
	test.ExpectEquality(t, debugger.Result{Halted: true, Cycles: 12}.String(),
		"Success: simulation halted at clk 12")
	test.ExpectEquality(t, debugger.Result{Quit: true, Cycles: 3}.String(),
		"Error:   simulation quit at clk 3 without a halt")
	test.ExpectEquality(t, debugger.Result{Cycles: 100}.String(),
		"Error:   simulation reached clk 100 without a halt")
}

func TestMemviz(t *testing.T) {
	m := hardware.NewReplay(program(3, true)...)
	dbg := debugger.NewDebugger(m, nil, 100, nil)
	_, err := dbg.Run()
	test.ExpectSuccess(t, err)

	tw := &test.CompareWriter{}
	dbg.Memviz(tw)
	test.ExpectEquality(t, strings.Contains(tw.String(), "digraph"), true)
}
