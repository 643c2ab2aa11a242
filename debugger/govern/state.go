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

package govern

// State indicates the state of the Governor.
type State int

// List of possible states.
const (
	Paused State = iota
	Stepping
	InstructionStepping
	Running
)

func (s State) String() string {
	switch s {
	case Paused:
		return "Paused"
	case Stepping:
		return "Stepping"
	case InstructionStepping:
		return "Instruction Stepping"
	case Running:
		return "Running"
	}

	return ""
}

// Polling describes how the input device is read while in a State.
type Polling int

// List of polling styles.
const (
	// wait indefinitely for a key
	Blocking Polling = iota

	// return immediately if no key is waiting
	NonBlocking
)

func (p Polling) String() string {
	switch p {
	case Blocking:
		return "blocking"
	case NonBlocking:
		return "non-blocking"
	}
	return ""
}

// Polling returns the polling style of the state.
func (s State) Polling() Polling {
	if s == Paused {
		return Blocking
	}
	return NonBlocking
}
