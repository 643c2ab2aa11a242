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

package sap1

import "strings"

// Control is the control word of the SAP-1.
type Control uint32

// List of control signals.
const (
	HLT Control = 1 << iota // halt
	ADV                     // advance to the next instruction
	MI                      // memory address register in
	RI                      // RAM in
	RO                      // RAM out
	II                      // instruction register in
	IO                      // instruction register out (low nibble)
	AI                      // A register in
	AO                      // A register out
	EO                      // ALU out
	SU                      // ALU subtract
	EL                      // ALU latch flags
	BI                      // B register in
	OI                      // output register in
	CE                      // program counter enable
	CO                      // program counter out
	J                       // jump
)

var controlNames = []string{
	"HLT", "ADV", "MI", "RI", "RO", "II", "IO", "AI", "AO", "EO", "SU", "EL", "BI", "OI", "CE", "CO", "J",
}

func (c Control) String() string {
	var s []string
	for i, n := range controlNames {
		if c&(1<<i) != 0 {
			s = append(s, n)
		}
	}
	if len(s) == 0 {
		return "-"
	}
	return strings.Join(s, "|")
}

// Opcodes of the SAP-1.
const (
	opNOP  = 0x0
	opLDA  = 0x1
	opADD  = 0x2
	opSUB  = 0x3
	opLDI  = 0x4
	opADDI = 0x5
	opSUBI = 0x6
	opSTA  = 0x7
	opJMP  = 0x8
	opJIZ  = 0x9
	opJIC  = 0xa
	opJIO  = 0xb
	opOUT  = 0xe
	opHLT  = 0xf
)

// microcode for each opcode, starting with microstep T2
var microcode = map[uint8][]Control{
	opNOP:  {ADV},
	opLDA:  {IO | MI, RO | AI | ADV},
	opADD:  {IO | MI, RO | BI, EO | AI | EL | ADV},
	opSUB:  {IO | MI, RO | BI, EO | AI | EL | SU | ADV},
	opLDI:  {IO | AI | ADV},
	opADDI: {IO | BI, EO | AI | EL | ADV},
	opSUBI: {IO | BI, EO | AI | EL | SU | ADV},
	opSTA:  {IO | MI, AO | RI | ADV},
	opJMP:  {IO | J | ADV},
	opOUT:  {AO | OI | ADV},
	opHLT:  {HLT},
}

// decode the control word for the opcode at the microstep
func decode(opcode uint8, step uint8, zero, carry, odd bool) Control {
	switch step {
	case 0:
		return CO | MI
	case 1:
		return RO | II | CE
	}

	// conditional jumps
	var cond bool
	switch opcode {
	case opJIZ:
		cond = zero
	case opJIC:
		cond = carry
	case opJIO:
		cond = odd
	default:
		steps, ok := microcode[opcode]
		if !ok {
			// unused opcodes behave like NOP
			steps = microcode[opNOP]
		}
		if int(step-2) < len(steps) {
			return steps[step-2]
		}
		return ADV
	}

	if step != 2 {
		return ADV
	}
	if cond {
		return IO | J | ADV
	}
	return ADV
}
