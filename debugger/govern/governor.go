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

import (
	"time"
	"unicode"

	"github.com/sap1term/sap1term/debugger/terminal"
	"github.com/sap1term/sap1term/debugger/terminal/colorterm/easyterm"
	"github.com/sap1term/sap1term/logger"
)

// Timing values of the Governor.
const (
	// the run interval of a new Governor. twenty cycles per second
	DefaultInterval = 50 * time.Millisecond

	// the speed keys will not reduce the run interval below this value
	MinInterval = time.Millisecond

	// the speed keys will not increase the run interval above this value
	MaxInterval = 10 * time.Second

	// the maximum time between polls of the input device while Running
	PollPeriod = time.Millisecond
)

// the factor applied to the run interval by the speed keys
const speedFactor = 0.9

// Governor is the execution controller of the session.
type Governor struct {
	input terminal.Input
	clock Clock

	state    State
	interval time.Duration

	// time of the most recent advance while Running
	lastAdvance time.Time

	// the advance being made while InstructionStepping is the last one
	final bool

	// called before a blocking read
	refresh func() error
}

// NewGovernor is the preferred method of initialisation for the Governor type.
// If clock is nil then the SystemClock is used.
func NewGovernor(input terminal.Input, clock Clock) *Governor {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Governor{
		input:    input,
		clock:    clock,
		state:    Paused,
		interval: DefaultInterval,
	}
}

// SetRefresh sets the function that is called immediately before the Governor
// blocks waiting for a key.
func (gv *Governor) SetRefresh(refresh func() error) {
	gv.refresh = refresh
}

// State returns the current state.
func (gv *Governor) State() State {
	return gv.state
}

// Interval returns the current run interval.
func (gv *Governor) Interval() time.Duration {
	return gv.interval
}

func (gv *Governor) setState(s State) {
	if s == gv.state {
		return
	}
	logger.Logf(logger.Allow, "govern", "%s -> %s", gv.state, s)
	gv.state = s
	gv.final = false
	if s == Running {
		gv.lastAdvance = gv.clock.Now()
	}
}

// HandleKey applies the key to the state machine. Returns true if the key
// was the quit key.
func (gv *Governor) HandleKey(key rune) bool {
	switch unicode.ToLower(key) {
	case 'q', easyterm.KeyInterrupt, easyterm.KeyEsc:
		logger.Log(logger.Allow, "govern", "quit")
		return true
	case 's':
		if gv.state == Paused {
			gv.setState(Stepping)
		}
	case 't':
		if gv.state == Paused {
			gv.setState(InstructionStepping)
		}
	case 'r':
		gv.setState(Running)
	case 'p':
		gv.setState(Paused)
	case '+', '=':
		gv.interval = time.Duration(float64(gv.interval) * speedFactor)
		if gv.interval < MinInterval {
			gv.interval = MinInterval
		}
	case '-':
		gv.interval = time.Duration(float64(gv.interval) / speedFactor)
		if gv.interval > MaxInterval {
			gv.interval = MaxInterval
		}
	}
	return false
}

// poll the input device in the style declared by the current state and
// apply any key to the state machine
func (gv *Governor) poll() (bool, error) {
	key, ok, err := gv.input.ReadKey(gv.state.Polling() == Blocking)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return gv.HandleKey(key), nil
}

// Wait until the session should advance the model by one cycle. The
// instruction counter is the value in the snapshot about to be advanced.
//
// Returns true if the user has asked to quit, in which case the model should
// not be advanced. An error from the input device or from the refresh
// function is returned immediately.
func (gv *Governor) Wait(instructionCounter uint64) (bool, error) {
	// states that advance a fixed number of times drop back to Paused once
	// they have done so
	if gv.state == Stepping || gv.final {
		gv.setState(Paused)
	}

	for {
		switch gv.state {
		case Paused:
			if gv.refresh != nil {
				if err := gv.refresh(); err != nil {
					return false, err
				}
			}

			quit, err := gv.poll()
			if err != nil || quit {
				return quit, err
			}

			// entering either of the stepping states always advances. the
			// instruction counter is not checked until the next call to Wait()
			if gv.state == Stepping || gv.state == InstructionStepping {
				return false, nil
			}

		case InstructionStepping:
			quit, err := gv.poll()
			if err != nil || quit {
				return quit, err
			}
			if gv.state != InstructionStepping {
				continue // for loop
			}

			if instructionCounter == 0 {
				gv.final = true
			}
			return false, nil

		case Running:
			quit, err := gv.poll()
			if err != nil || quit {
				return quit, err
			}
			if gv.state != Running {
				continue // for loop
			}

			now := gv.clock.Now()
			deadline := gv.lastAdvance.Add(gv.interval)
			if !now.Before(deadline) {
				gv.lastAdvance = now
				return false, nil
			}

			d := deadline.Sub(now)
			if d > PollPeriod {
				d = PollPeriod
			}
			gv.clock.Sleep(d)

		default:
			// Stepping is never the state at this point
			gv.setState(Paused)
		}
	}
}
