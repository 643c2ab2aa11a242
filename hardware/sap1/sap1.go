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

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sap1term/sap1term/logger"
)

// Size of RAM in words.
const RAMDepth = 16

const (
	nibble   = 0x0f
	stepMask = 0x07
)

// SAP1 is the behavioural model of the SAP-1. It implements the
// hardware.Model interface.
type SAP1 struct {
	ram [RAMDepth]uint8

	pc  uint8
	mar uint8
	ir  uint8
	a   uint8
	b   uint8
	out uint8

	// microstep counter
	step uint8

	// flags latched from the ALU
	zero  bool
	carry bool
	odd   bool

	// whether HLT has been latched
	halted bool

	clk     bool
	prevClk bool

	// combinational state. updated by Evaluate()
	ctrl     Control
	bus      uint8
	alu      uint8
	aluCarry bool
}

// NewSAP1 is the preferred method of initialisation for the SAP1 type. The
// image is copied into RAM, starting at address zero, and the model is
// evaluated.
func NewSAP1(image []uint8) (*SAP1, error) {
	if len(image) > RAMDepth {
		return nil, errors.Errorf("sap1: image of %d words does not fit in %d words of RAM", len(image), RAMDepth)
	}

	m := &SAP1{}
	copy(m.ram[:], image)
	m.Evaluate()

	logger.Logf(logger.Allow, "sap1", "loaded %d words", len(image))

	return m, nil
}

// Peek returns the value of the RAM at the address. Only the low four bits of
// the address are used.
func (m *SAP1) Peek(addr uint8) uint8 {
	return m.ram[addr&nibble]
}

// RAM returns a copy of the entire RAM.
func (m *SAP1) RAM() [RAMDepth]uint8 {
	return m.ram
}

// Control returns the control word decoded for the current microstep.
func (m *SAP1) Control() Control {
	return m.ctrl
}

func (m *SAP1) String() string {
	return fmt.Sprintf("PC=%x T%d IR=%02x A=%02x B=%02x OUT=%02x %s", m.pc, m.step, m.ir, m.a, m.b, m.out, m.ctrl)
}

// SetClock implements the hardware.Model interface.
func (m *SAP1) SetClock(high bool) {
	m.clk = high
}

// Clock implements the hardware.Model interface.
func (m *SAP1) Clock() bool {
	return m.clk
}

// Evaluate implements the hardware.Model interface. Registers latch if the
// clock has risen since the previous call.
func (m *SAP1) Evaluate() {
	if m.clk && !m.prevClk {
		m.latch()
	}
	m.prevClk = m.clk
	m.settle()
}

// settle the combinational logic for the current register values
func (m *SAP1) settle() {
	m.ctrl = decode(m.ir>>4, m.step, m.zero, m.carry, m.odd)

	if m.ctrl&SU == SU {
		r := uint16(m.a) + uint16(^m.b) + 1
		m.alu = uint8(r)
		m.aluCarry = r > 0xff
	} else {
		r := uint16(m.a) + uint16(m.b)
		m.alu = uint8(r)
		m.aluCarry = r > 0xff
	}

	var bus uint8
	if m.ctrl&CO == CO {
		bus |= m.pc
	}
	if m.ctrl&RO == RO {
		bus |= m.ram[m.mar]
	}
	if m.ctrl&IO == IO {
		bus |= m.ir & nibble
	}
	if m.ctrl&AO == AO {
		bus |= m.a
	}
	if m.ctrl&EO == EO {
		bus |= m.alu
	}
	m.bus = bus
}

// latch all registers from the values settled before the rising edge
func (m *SAP1) latch() {
	if m.halted {
		return
	}

	ctrl := m.ctrl
	bus := m.bus

	if ctrl&RI == RI {
		m.ram[m.mar] = bus
	}
	if ctrl&MI == MI {
		m.mar = bus & nibble
	}
	if ctrl&II == II {
		m.ir = bus
	}
	if ctrl&AI == AI {
		m.a = bus
	}
	if ctrl&BI == BI {
		m.b = bus
	}
	if ctrl&OI == OI {
		m.out = bus
	}
	if ctrl&EL == EL {
		m.zero = m.alu == 0
		m.carry = m.aluCarry
		m.odd = m.alu&0x01 == 0x01
	}

	if ctrl&J == J {
		m.pc = bus & nibble
	} else if ctrl&CE == CE {
		m.pc = (m.pc + 1) & nibble
	}

	if ctrl&HLT == HLT {
		m.halted = true
		return
	}

	if ctrl&ADV == ADV {
		m.step = 0
	} else {
		m.step = (m.step + 1) & stepMask
	}
}

func (m *SAP1) has(c Control) bool {
	return m.ctrl&c == c
}

func (m *SAP1) Halt() bool          { return m.has(HLT) }
func (m *SAP1) Advance() bool       { return m.has(ADV) }
func (m *SAP1) MemAddrIn() bool     { return m.has(MI) }
func (m *SAP1) RAMIn() bool         { return m.has(RI) }
func (m *SAP1) RAMOut() bool        { return m.has(RO) }
func (m *SAP1) InstrRegIn() bool    { return m.has(II) }
func (m *SAP1) InstrRegOut() bool   { return m.has(IO) }
func (m *SAP1) ARegIn() bool        { return m.has(AI) }
func (m *SAP1) ARegOut() bool       { return m.has(AO) }
func (m *SAP1) ALUOut() bool        { return m.has(EO) }
func (m *SAP1) ALUSubtract() bool   { return m.has(SU) }
func (m *SAP1) ALULatchFlags() bool { return m.has(EL) }
func (m *SAP1) BRegIn() bool        { return m.has(BI) }
func (m *SAP1) OutRegIn() bool      { return m.has(OI) }
func (m *SAP1) PCEnable() bool      { return m.has(CE) }
func (m *SAP1) PCOut() bool         { return m.has(CO) }
func (m *SAP1) Jump() bool          { return m.has(J) }

func (m *SAP1) Zero() bool  { return m.zero }
func (m *SAP1) Carry() bool { return m.carry }
func (m *SAP1) Odd() bool   { return m.odd }

func (m *SAP1) Bus() uint64                { return uint64(m.bus) }
func (m *SAP1) ProgramCounter() uint64     { return uint64(m.pc) }
func (m *SAP1) InstructionCounter() uint64 { return uint64(m.step) }
func (m *SAP1) InstructionReg() uint64     { return uint64(m.ir) }
func (m *SAP1) MemoryAddress() uint64      { return uint64(m.mar) }
func (m *SAP1) RAMData() uint64            { return uint64(m.ram[m.mar]) }
func (m *SAP1) AReg() uint64               { return uint64(m.a) }
func (m *SAP1) BReg() uint64               { return uint64(m.b) }
func (m *SAP1) ALUData() uint64            { return uint64(m.alu) }
func (m *SAP1) OutReg() uint64             { return uint64(m.out) }
