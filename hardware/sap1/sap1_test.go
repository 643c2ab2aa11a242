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

package sap1_test

import (
	"strings"
	"testing"

	"github.com/sap1term/sap1term/assembler"
	"github.com/sap1term/sap1term/hardware"
	"github.com/sap1term/sap1term/hardware/sap1"
	"github.com/sap1term/sap1term/test"
)

// run the program until it halts and return the values written to the output
// register and the number of cycles
func run(t *testing.T, src string, maxCycles int) ([]uint8, int, *sap1.SAP1) {
	t.Helper()

	p, err := assembler.Assemble(strings.NewReader(src))
	test.DemandSuccess(t, err)

	m, err := sap1.NewSAP1(p.RAM[:])
	test.DemandSuccess(t, err)

	var out []uint8
	var prev hardware.Snapshot

	for k := 1; k <= maxCycles; k++ {
		s := hardware.Capture(m)
		if prev.OutRegIn {
			out = append(out, uint8(s.OutReg))
		}
		if s.Halt {
			return out, k - 1, m
		}
		prev = s
		test.DemandSuccess(t, hardware.Step(m, uint64(k), nil))
	}

	t.Fatalf("program did not halt in %d cycles", maxCycles)
	return nil, 0, nil
}

func TestFetch(t *testing.T) {
	m, err := sap1.NewSAP1([]uint8{0x45})
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, m.Control(), sap1.CO|sap1.MI)
	test.ExpectEquality(t, m.Bus(), uint64(0))

	test.DemandSuccess(t, hardware.Step(m, 1, nil))
	test.ExpectEquality(t, m.Control(), sap1.RO|sap1.II|sap1.CE)
	test.ExpectEquality(t, m.InstructionCounter(), uint64(1))
	test.ExpectEquality(t, m.Bus(), uint64(0x45))

	test.DemandSuccess(t, hardware.Step(m, 2, nil))
	test.ExpectEquality(t, m.InstructionReg(), uint64(0x45))
	test.ExpectEquality(t, m.ProgramCounter(), uint64(1))
	test.ExpectEquality(t, m.Control(), sap1.IO|sap1.AI|sap1.ADV)
	test.ExpectEquality(t, m.Bus(), uint64(5))

	test.DemandSuccess(t, hardware.Step(m, 3, nil))
	test.ExpectEquality(t, m.AReg(), uint64(5))
	test.ExpectEquality(t, m.InstructionCounter(), uint64(0))
}

func TestOutput(t *testing.T) {
	out, cycles, _ := run(t, "LDI 5\nOUT\nHLT", 100)
	test.DemandEquality(t, len(out), 1)
	test.ExpectEquality(t, out[0], uint8(5))
	test.ExpectEquality(t, cycles, 8)
}

func TestArithmetic(t *testing.T) {
	out, _, m := run(t, `
		RESERVE x y
		LDI 7
		STA x
		LDI 3
		STA y
		LDA x
		ADD y
		OUT
		SUB y
		SUB y
		OUT
		HLT
	`, 200)

	test.DemandEquality(t, len(out), 2)
	test.ExpectEquality(t, out[0], uint8(10))
	test.ExpectEquality(t, out[1], uint8(4))

	// variables follow the eleven instructions
	test.ExpectEquality(t, m.Peek(11), uint8(7))
	test.ExpectEquality(t, m.Peek(12), uint8(3))
}

func TestFlags(t *testing.T) {
	// 2 - 3 borrows so the carry (no borrow) flag is clear
	_, _, m := run(t, "LDI 2\nSUBI 3\nHLT", 100)
	test.ExpectEquality(t, m.AReg(), uint64(0xff))
	test.ExpectEquality(t, m.Carry(), false)
	test.ExpectEquality(t, m.Zero(), false)
	test.ExpectEquality(t, m.Odd(), true)

	_, _, m = run(t, "LDI 3\nSUBI 3\nHLT", 100)
	test.ExpectEquality(t, m.AReg(), uint64(0))
	test.ExpectEquality(t, m.Carry(), true)
	test.ExpectEquality(t, m.Zero(), true)
	test.ExpectEquality(t, m.Odd(), false)
}

func TestCountdownLoop(t *testing.T) {
	out, _, _ := run(t, `
		LDI 3
	LOOP:
		OUT
		SUBI 1
		JIZ END
		JMP LOOP
	END:
		OUT
		HLT
	`, 500)

	test.DemandEquality(t, len(out), 4)
	for i, v := range []uint8{3, 2, 1, 0} {
		test.ExpectEquality(t, out[i], v, i)
	}
}

func TestCarryLoop(t *testing.T) {
	// add 15 until the accumulator overflows
	out, _, m := run(t, `
		LDI 0
	LOOP:
		ADDI 15
		JIC END
		JMP LOOP
	END:
		OUT
		HLT
	`, 2000)

	test.DemandEquality(t, len(out), 1)
	test.ExpectEquality(t, out[0], uint8(255+15-256))
	test.ExpectEquality(t, m.Carry(), true)
}

func TestOddJump(t *testing.T) {
	out, _, _ := run(t, `
		LDI 3
		ADDI 0
		JIO ODD
		LDI 0
		OUT
		HLT
	ODD:
		LDI 1
		OUT
		HLT
	`, 200)

	test.DemandEquality(t, len(out), 1)
	test.ExpectEquality(t, out[0], uint8(1))
}

func TestHaltIsFinal(t *testing.T) {
	m, err := sap1.NewSAP1([]uint8{0xf0})
	test.DemandSuccess(t, err)

	for k := uint64(1); k <= 3; k++ {
		test.DemandSuccess(t, hardware.Step(m, k, nil))
	}
	test.ExpectEquality(t, m.Halt(), true)

	// further clocks do not change anything
	s := hardware.Capture(m)
	for k := uint64(4); k <= 10; k++ {
		test.DemandSuccess(t, hardware.Step(m, k, nil))
	}
	test.ExpectEquality(t, hardware.Capture(m), s)
}

func TestUnusedOpcode(t *testing.T) {
	// 0xc acts as NOP
	out, _, _ := run(t, "LDI 9\nNOP\nOUT\nHLT", 100)
	test.DemandEquality(t, len(out), 1)

	m, err := sap1.NewSAP1([]uint8{0xc0, 0x47, 0xe0, 0xf0})
	test.DemandSuccess(t, err)
	for k := uint64(1); k <= 3; k++ {
		test.DemandSuccess(t, hardware.Step(m, k, nil))
	}
	test.ExpectEquality(t, m.InstructionCounter(), uint64(0))
	test.ExpectEquality(t, m.ProgramCounter(), uint64(1))
}

func TestImageTooLarge(t *testing.T) {
	_, err := sap1.NewSAP1(make([]uint8, 17))
	test.ExpectFailure(t, err)
}

func TestControlString(t *testing.T) {
	test.ExpectEquality(t, (sap1.CO | sap1.MI).String(), "MI|CO")
	test.ExpectEquality(t, sap1.Control(0).String(), "-")
}
