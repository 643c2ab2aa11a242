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

// Package sap1 is a behavioural model of the SAP-1 computer. It implements the
// hardware.Model interface.
//
// The machine has sixteen words of eight bit RAM, a four bit program counter
// and memory address register, eight bit instruction, A, B and output
// registers and a three bit microstep counter. The zero, carry and odd flags
// are latched from the ALU when the EL control signal is asserted.
//
// All registers latch from the bus on the rising edge of the clock, as seen
// by Evaluate(). The control word is decoded from the opcode in the
// instruction register, the microstep counter and the flags. The first two
// microsteps of every instruction fetch the next instruction:
//
//	T0  CO MI
//	T1  RO II CE
//
// The remaining microsteps are listed in the microcode table. The ADV signal
// resets the microstep counter to zero at the next rising edge. Once HLT has
// been asserted the microstep counter stops and the machine stays halted.
package sap1
