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

// Package govern controls the rate at which the session advances the model.
//
// The Governor is a state machine driven by key presses and by the passing of
// time. The session calls Wait() once per cycle and only advances the model
// when Wait() returns without the quit flag.
//
// The states and their key transitions:
//
//	Paused               s -> Stepping, t -> InstructionStepping, r -> Running
//	Stepping             advances once and returns to Paused
//	InstructionStepping  advances every cycle until the instruction counter
//	                     reads zero, then returns to Paused. r -> Running
//	Running              advances once the run interval has elapsed since the
//	                     previous advance
//
// The p key returns to Paused from any state and q (or ctrl-c) quits from any
// state. The + (or =) and - keys change the run interval in any state. Keys
// that are not valid for the current state are ignored.
//
// Each state declares how the input device is polled, see State.Polling().
// Only Paused blocks.
package govern
