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

package assembler_test

import (
	"strings"
	"testing"

	"github.com/sap1term/sap1term/assembler"
	"github.com/sap1term/sap1term/test"
)

func assemble(t *testing.T, src string) *assembler.Program {
	t.Helper()
	p, err := assembler.Assemble(strings.NewReader(src))
	test.DemandSuccess(t, err, src)
	return p
}

func testFailure(t *testing.T, src string, mustContain string) {
	t.Helper()
	_, err := assembler.Assemble(strings.NewReader(src))
	if err == nil {
		t.Errorf("%q: assembler succeeded, expected match %q", src, mustContain)
		return
	}
	if !strings.Contains(err.Error(), mustContain) {
		t.Errorf("%q: failure %q does not match %q", src, err.Error(), mustContain)
	}
}

func TestSimpleProgram(t *testing.T) {
	p := assemble(t, `
		LDA 14   ; load
		ADD 0xf
		OUT
		HLT
	`)

	test.ExpectEquality(t, p.RAM[0], uint8(0x1e))
	test.ExpectEquality(t, p.RAM[1], uint8(0x2f))
	test.ExpectEquality(t, p.RAM[2], uint8(0xe0))
	test.ExpectEquality(t, p.RAM[3], uint8(0xf0))
	for i := 4; i < assembler.RAMDepth; i++ {
		test.ExpectEquality(t, p.RAM[i], uint8(0), i)
	}
	test.ExpectEquality(t, len(p.Instructions), 4)
	test.ExpectEquality(t, p.Instructions[1].Line, 3)
}

func TestNumbers(t *testing.T) {
	p := assemble(t, "LDI 10\nLDI x9\nLDI 0b101\nLDI b11\nLDI 0XA\n")
	test.ExpectEquality(t, p.RAM[0], uint8(0x4a))
	test.ExpectEquality(t, p.RAM[1], uint8(0x49))
	test.ExpectEquality(t, p.RAM[2], uint8(0x45))
	test.ExpectEquality(t, p.RAM[3], uint8(0x43))
	test.ExpectEquality(t, p.RAM[4], uint8(0x4a))
}

func TestLabelsAndVariables(t *testing.T) {
	p := assemble(t, `
		RESERVE n x[2]
		LDI 3
	LOOP:
		OUT
		SUBI 1
		STA n
		STA x[1]
		JIZ END
		JMP LOOP
	END:
		HLT
	`)

	test.DemandEquality(t, len(p.Labels), 2)
	test.ExpectEquality(t, p.Labels[0], assembler.Label{Name: "LOOP", Addr: 1})
	test.ExpectEquality(t, p.Labels[1], assembler.Label{Name: "END", Addr: 7})

	// variables follow the eight instructions
	test.DemandEquality(t, len(p.Variables), 2)
	test.ExpectEquality(t, p.Variables[0], assembler.Variable{Name: "n", Length: 1, Addr: 8})
	test.ExpectEquality(t, p.Variables[1], assembler.Variable{Name: "x", Length: 2, Addr: 9})

	expected := []uint8{0x43, 0xe0, 0x61, 0x78, 0x7a, 0x97, 0x81, 0xf0, 0, 0, 0}
	for i, v := range expected {
		test.ExpectEquality(t, p.RAM[i], v, i)
	}
}

func TestMnemonicCase(t *testing.T) {
	p := assemble(t, "lda 1\nreserve v\nsta v\nhlt")
	test.ExpectEquality(t, p.RAM[0], uint8(0x11))
	test.ExpectEquality(t, p.RAM[1], uint8(0x73))
	test.ExpectEquality(t, p.RAM[2], uint8(0xf0))
}

func TestFailures(t *testing.T) {
	testFailure(t, "FOO 1", "unknown op FOO")
	testFailure(t, "LDA", "should have one argument, not 0")
	testFailure(t, "LDA 1 2", "should have one argument, not 2")
	testFailure(t, "HLT 1", "should have zero arguments, not 1")
	testFailure(t, "LDI 16", "cannot fit in 4 bits")
	testFailure(t, "LDI 0x1g", "unknown base")
	testFailure(t, "1START:\nHLT", "cannot start with a digit")
	testFailure(t, "RESERVE 2x", "cannot start with a digit")
	testFailure(t, "LDA:\nHLT", "conflicts with a known symbol")
	testFailure(t, "RESERVE x x", "conflicts with a known symbol")
	testFailure(t, "A:\nRESERVE A", "conflicts with a known symbol")
	testFailure(t, "RESERVE", "at least one variable")
	testFailure(t, "RESERVE x[0]", "zero length")
	testFailure(t, "RESERVE x[2]\nLDA x[2]", "beyond its length")
	testFailure(t, "JMP NOWHERE", "unknown base")
	testFailure(t, "RESERVE x[8]\n"+strings.Repeat("NOP\n", 9), "too long")
}

func TestRAMLimit(t *testing.T) {
	// sixteen words exactly is allowed
	p := assemble(t, "RESERVE x[8]\n"+strings.Repeat("NOP\n", 8))
	test.ExpectEquality(t, p.Variables[0].Addr, 8)
}

func TestWriteHex(t *testing.T) {
	p := assemble(t, "LDI 5\nOUT\nHLT")
	w := &test.CompareWriter{}
	test.DemandSuccess(t, p.WriteHex(w))

	lines := w.Lines()
	test.DemandEquality(t, len(lines), assembler.RAMDepth)
	test.ExpectEquality(t, lines[0], "45")
	test.ExpectEquality(t, lines[1], "e0")
	test.ExpectEquality(t, lines[2], "f0")
	test.ExpectEquality(t, lines[15], "00")
}

func TestWriteTables(t *testing.T) {
	p := assemble(t, "RESERVE v\nSTART:\nSTA v\nJMP START")
	w := &test.CompareWriter{}
	p.WriteTables(w)

	expected := "labels table:\n" +
		"     START: 0\n" +
		"variables table:\n" +
		"         v: addr 2 length 1\n" +
		"instructions:\n" +
		"  0: STA v        72  STA 2\n" +
		"  1: JMP START    80  JMP 0\n"
	test.ExpectEquality(t, w.String(), expected)
}

func TestDisassemble(t *testing.T) {
	test.ExpectEquality(t, assembler.Disassemble(0x1e), "LDA 14")
	test.ExpectEquality(t, assembler.Disassemble(0xe0), "OUT")
	test.ExpectEquality(t, assembler.Disassemble(0xc3), "???")
	test.ExpectEquality(t, assembler.Disassemble(0x00), "NOP")
}
