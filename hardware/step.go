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

package hardware

import (
	"fmt"
)

// Timestamp is a fixed-point trace time. There are TimestampUnit sub-units in
// every whole unit.
type Timestamp uint64

// TimestampUnit is the number of Timestamp sub-units per whole unit of time.
const TimestampUnit = 10000

// the length of a cycle in whole units of time
const cycleUnits = 10

func (t Timestamp) String() string {
	return fmt.Sprintf("%d.%04d", t/TimestampUnit, t%TimestampUnit)
}

// CycleTimestamps returns the four timestamps at which the model is dumped
// during the cycle with the tick index.
func CycleTimestamps(tick uint64) [4]Timestamp {
	edge := Timestamp(tick * cycleUnits * TimestampUnit)

	var pre Timestamp
	if edge > 0 {
		pre = edge - 1
	}

	return [4]Timestamp{
		pre,
		edge,
		edge + 49999,
		edge + 50001,
	}
}

// Sink receives the state of the model at virtual points in time. Dump() is
// called with strictly increasing timestamps.
type Sink interface {
	Dump(t Timestamp) error
	Flush() error
}

// Step advances the model through one full clock cycle. The tick index is
// used only to calculate trace timestamps. The sink can be nil.
//
// Any error from the sink is returned immediately and leaves the model part
// way through the cycle.
func Step(m Model, tick uint64, sink Sink) error {
	if m == nil {
		panic("hardware: cannot step a nil model")
	}

	ts := CycleTimestamps(tick)

	dump := func(t Timestamp) error {
		if sink == nil {
			return nil
		}
		if err := sink.Dump(t); err != nil {
			return fmt.Errorf("hardware: dump at %s: %w", t, err)
		}
		return nil
	}

	flush := func() error {
		if sink == nil {
			return nil
		}
		if err := sink.Flush(); err != nil {
			return fmt.Errorf("hardware: flush: %w", err)
		}
		return nil
	}

	m.Evaluate()
	if err := dump(ts[0]); err != nil {
		return err
	}
	m.Evaluate()

	// rising edge
	m.SetClock(true)
	m.Evaluate()
	if err := dump(ts[1]); err != nil {
		return err
	}

	if err := dump(ts[2]); err != nil {
		return err
	}
	if err := flush(); err != nil {
		return err
	}

	// falling edge
	m.SetClock(false)
	m.Evaluate()
	if err := dump(ts[3]); err != nil {
		return err
	}
	return flush()
}
