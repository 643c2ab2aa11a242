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

// Package hardware is the base package for driving a cycle-level logic model
// of a SAP-1 computer. The logic model itself is reached through the Model
// interface. The sap1 sub-package contains a behavioural implementation.
//
// Step() advances a Model through one full clock cycle. If a Sink is supplied
// then the state of the model is dumped four times per cycle:
//
//	10k - ε        just before the rising edge
//	10k            the rising edge
//	10k + 4.9999   just before the falling edge
//	10k + 5.0001   just after the falling edge
//
// where k is the cycle index and ε is the smallest Timestamp increment. The
// sink is flushed after the third and fourth samples.
//
// Capture() reads every observable signal of a Model into a Snapshot. All
// consumers of signal values should work from a Snapshot rather than from the
// Model directly. The Signals and ControlSignals tables describe the fields
// of a Snapshot and are used for table driven output.
package hardware
