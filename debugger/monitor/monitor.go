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

// Package monitor watches the sequence of snapshots taken by the session and
// produces an Event whenever the output register is loaded.
package monitor

import (
	"fmt"
	"io"

	"github.com/sap1term/sap1term/hardware"
)

// Event is produced by the Monitor when the output register has been loaded.
type Event struct {
	// the value latched by the output register
	Value uint64

	// the cycle in which the output register was loaded
	Cycle uint64

	// number of cycles since the previous event. only valid if HasDelta is true
	Delta    uint64
	HasDelta bool
}

func (ev Event) String() string {
	s := fmt.Sprintf("OUT  hex: 0x%02x / dec: %3d / clk %8d", ev.Value, ev.Value, ev.Cycle)
	if ev.HasDelta {
		s = fmt.Sprintf("%s (%d clks since last)", s, ev.Delta)
	}
	return s
}

// Recorder implementations will receive every Event from the Monitor.
type Recorder interface {
	OutputEvent(Event) error
}

// Monitor is a low level shim into the session loop.
type Monitor struct {
	Rec Recorder

	// the output register was being loaded in the previous snapshot
	loading bool

	// cycle of the most recent event
	lastCycle uint64
	events    int
}

// Check should be called with every snapshot. The cycle counter is the cycle
// about to be run with the snapshot.
//
// A snapshot with OutRegIn asserted is the state before the output register
// is loaded, so the value is reported from the snapshot that follows.
func (mon *Monitor) Check(s *hardware.Snapshot, cycle uint64) error {
	defer func() {
		mon.loading = s.OutRegIn
	}()

	if !mon.loading || cycle == 0 {
		return nil
	}

	ev := Event{
		Value: s.OutReg,
		Cycle: cycle - 1,
	}
	if mon.events > 0 {
		ev.Delta = ev.Cycle - mon.lastCycle
		ev.HasDelta = true
	}
	mon.lastCycle = ev.Cycle
	mon.events++

	if mon.Rec == nil {
		return nil
	}
	return mon.Rec.OutputEvent(ev)
}

// Events returns the number of events seen.
func (mon *Monitor) Events() int {
	return mon.events
}

// WriterRecorder writes every event as a single line to an io.Writer.
type WriterRecorder struct {
	W io.Writer
}

// OutputEvent implements the Recorder interface.
func (rec WriterRecorder) OutputEvent(ev Event) error {
	_, err := fmt.Fprintln(rec.W, ev.String())
	return err
}
