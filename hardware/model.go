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

// Model is the interface to the logic model of the SAP-1. Evaluate() must be
// called after every change to an input (the clock) before any signal is
// read.
type Model interface {
	// settle the model for the current value of the inputs
	Evaluate()

	// the clock input
	SetClock(high bool)
	Clock() bool

	ControlSignals
	DataSignals
}

// ControlSignals are the single bit outputs of the model.
type ControlSignals interface {
	Halt() bool
	Advance() bool
	MemAddrIn() bool
	RAMIn() bool
	RAMOut() bool
	InstrRegIn() bool
	InstrRegOut() bool
	ARegIn() bool
	ARegOut() bool
	ALUOut() bool
	ALUSubtract() bool
	ALULatchFlags() bool
	BRegIn() bool
	OutRegIn() bool
	PCEnable() bool
	PCOut() bool
	Jump() bool
	Zero() bool
	Carry() bool
	Odd() bool
}

// DataSignals are the multi-bit outputs of the model. Values are returned in
// a uint64 regardless of the width of the signal.
type DataSignals interface {
	Bus() uint64
	ProgramCounter() uint64
	InstructionCounter() uint64
	InstructionReg() uint64
	MemoryAddress() uint64
	RAMData() uint64
	AReg() uint64
	BReg() uint64
	ALUData() uint64
	OutReg() uint64
}
