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

import (
	"fmt"
	"strings"
)

// Snapshot is a capture of every observable signal of a Model. Snapshots are
// values and are never changed once captured.
type Snapshot struct {
	Clock bool

	Halt          bool
	Advance       bool
	MemAddrIn     bool
	RAMIn         bool
	RAMOut        bool
	InstrRegIn    bool
	InstrRegOut   bool
	ARegIn        bool
	ARegOut       bool
	ALUOut        bool
	ALUSubtract   bool
	ALULatchFlags bool
	BRegIn        bool
	OutRegIn      bool
	PCEnable      bool
	PCOut         bool
	Jump          bool
	Zero          bool
	Carry         bool
	Odd           bool

	Bus                uint64
	ProgramCounter     uint64
	InstructionCounter uint64
	InstructionReg     uint64
	MemoryAddress      uint64
	RAMData            uint64
	AReg               uint64
	BReg               uint64
	ALUData            uint64
	OutReg             uint64
}

// Capture the current state of the model. The model should have been
// evaluated since the last change to its inputs.
func Capture(m Model) Snapshot {
	return Snapshot{
		Clock: m.Clock(),

		Halt:          m.Halt(),
		Advance:       m.Advance(),
		MemAddrIn:     m.MemAddrIn(),
		RAMIn:         m.RAMIn(),
		RAMOut:        m.RAMOut(),
		InstrRegIn:    m.InstrRegIn(),
		InstrRegOut:   m.InstrRegOut(),
		ARegIn:        m.ARegIn(),
		ARegOut:       m.ARegOut(),
		ALUOut:        m.ALUOut(),
		ALUSubtract:   m.ALUSubtract(),
		ALULatchFlags: m.ALULatchFlags(),
		BRegIn:        m.BRegIn(),
		OutRegIn:      m.OutRegIn(),
		PCEnable:      m.PCEnable(),
		PCOut:         m.PCOut(),
		Jump:          m.Jump(),
		Zero:          m.Zero(),
		Carry:         m.Carry(),
		Odd:           m.Odd(),

		Bus:                m.Bus(),
		ProgramCounter:     m.ProgramCounter(),
		InstructionCounter: m.InstructionCounter(),
		InstructionReg:     m.InstructionReg(),
		MemoryAddress:      m.MemoryAddress(),
		RAMData:            m.RAMData(),
		AReg:               m.AReg(),
		BReg:               m.BReg(),
		ALUData:            m.ALUData(),
		OutReg:             m.OutReg(),
	}
}

// ControlSignal describes one bit of the control word.
type ControlSignal struct {
	// short name used in the control word display
	Mnemonic string

	// long name used in trace files
	Name string

	Value func(s *Snapshot) bool
}

// ControlWord lists the signals of the control word in display order.
var ControlWord = []ControlSignal{
	{Mnemonic: "HLT", Name: "halt", Value: func(s *Snapshot) bool { return s.Halt }},
	{Mnemonic: "ADV", Name: "adv", Value: func(s *Snapshot) bool { return s.Advance }},
	{Mnemonic: "MI", Name: "memaddri", Value: func(s *Snapshot) bool { return s.MemAddrIn }},
	{Mnemonic: "RI", Name: "rami", Value: func(s *Snapshot) bool { return s.RAMIn }},
	{Mnemonic: "RO", Name: "ramo", Value: func(s *Snapshot) bool { return s.RAMOut }},
	{Mnemonic: "II", Name: "instrregi", Value: func(s *Snapshot) bool { return s.InstrRegIn }},
	{Mnemonic: "IO", Name: "instrrego", Value: func(s *Snapshot) bool { return s.InstrRegOut }},
	{Mnemonic: "AI", Name: "aregi", Value: func(s *Snapshot) bool { return s.ARegIn }},
	{Mnemonic: "AO", Name: "arego", Value: func(s *Snapshot) bool { return s.ARegOut }},
	{Mnemonic: "EO", Name: "aluo", Value: func(s *Snapshot) bool { return s.ALUOut }},
	{Mnemonic: "SU", Name: "alusub", Value: func(s *Snapshot) bool { return s.ALUSubtract }},
	{Mnemonic: "EL", Name: "alulatchf", Value: func(s *Snapshot) bool { return s.ALULatchFlags }},
	{Mnemonic: "BI", Name: "bregi", Value: func(s *Snapshot) bool { return s.BRegIn }},
	{Mnemonic: "OI", Name: "oregi", Value: func(s *Snapshot) bool { return s.OutRegIn }},
	{Mnemonic: "CE", Name: "programcnten", Value: func(s *Snapshot) bool { return s.PCEnable }},
	{Mnemonic: "CO", Name: "programcnto", Value: func(s *Snapshot) bool { return s.PCOut }},
	{Mnemonic: "J", Name: "jump", Value: func(s *Snapshot) bool { return s.Jump }},
}

// Signal describes one observable signal of the model.
type Signal struct {
	Name  string
	Width int
	Value func(s *Snapshot) uint64
}

func bit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Signals lists every field of a Snapshot. The control word signals are
// included in ControlWord order after the clock.
var Signals []Signal

func init() {
	Signals = append(Signals, Signal{Name: "clk", Width: 1, Value: func(s *Snapshot) uint64 { return bit(s.Clock) }})

	for _, c := range ControlWord {
		v := c.Value
		Signals = append(Signals, Signal{Name: c.Name, Width: 1, Value: func(s *Snapshot) uint64 { return bit(v(s)) }})
	}

	Signals = append(Signals,
		Signal{Name: "zero", Width: 1, Value: func(s *Snapshot) uint64 { return bit(s.Zero) }},
		Signal{Name: "carry", Width: 1, Value: func(s *Snapshot) uint64 { return bit(s.Carry) }},
		Signal{Name: "odd", Width: 1, Value: func(s *Snapshot) uint64 { return bit(s.Odd) }},
		Signal{Name: "bus_out", Width: 8, Value: func(s *Snapshot) uint64 { return s.Bus }},
		Signal{Name: "program_counter", Width: 4, Value: func(s *Snapshot) uint64 { return s.ProgramCounter }},
		Signal{Name: "instruction_counter", Width: 3, Value: func(s *Snapshot) uint64 { return s.InstructionCounter }},
		Signal{Name: "instruction_reg", Width: 8, Value: func(s *Snapshot) uint64 { return s.InstructionReg }},
		Signal{Name: "memory_address", Width: 4, Value: func(s *Snapshot) uint64 { return s.MemoryAddress }},
		Signal{Name: "ram_data", Width: 8, Value: func(s *Snapshot) uint64 { return s.RAMData }},
		Signal{Name: "a_reg", Width: 8, Value: func(s *Snapshot) uint64 { return s.AReg }},
		Signal{Name: "b_reg", Width: 8, Value: func(s *Snapshot) uint64 { return s.BReg }},
		Signal{Name: "alu_data", Width: 8, Value: func(s *Snapshot) uint64 { return s.ALUData }},
		Signal{Name: "out_data", Width: 8, Value: func(s *Snapshot) uint64 { return s.OutReg }},
	)
}

// ControlWordString returns the control word as a string of ones and zeros in
// ControlWord order.
func (s Snapshot) ControlWordString() string {
	var b strings.Builder
	for _, c := range ControlWord {
		if c.Value(&s) {
			b.WriteRune('1')
		} else {
			b.WriteRune('0')
		}
	}
	return b.String()
}

func (s Snapshot) String() string {
	return fmt.Sprintf("PC=%x IC=%d IR=%02x MAR=%x RAM=%02x A=%02x B=%02x ALU=%02x OUT=%02x BUS=%02x CW=%s",
		s.ProgramCounter, s.InstructionCounter, s.InstructionReg, s.MemoryAddress,
		s.RAMData, s.AReg, s.BReg, s.ALUData, s.OutReg, s.Bus, s.ControlWordString())
}
