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

package gui

import "github.com/sap1term/sap1term/hardware"

// Widget identifies one box of the visualiser.
type Widget int

// List of widgets.
const (
	Header Widget = iota
	Clock
	ControlWord
	Bus
	ProgramCounter
	InstructionCounter
	InstructionReg
	MemoryAddress
	RAM
	AReg
	BReg
	ALU
	OutReg
)

// Widgets lists every widget in drawing order.
var Widgets = []Widget{
	Header,
	Clock,
	ControlWord,
	Bus,
	ProgramCounter,
	InstructionCounter,
	InstructionReg,
	MemoryAddress,
	RAM,
	AReg,
	BReg,
	ALU,
	OutReg,
}

// Title returns the text drawn in the border of the widget.
func (w Widget) Title() string {
	switch w {
	case Header:
		return "SAP-1"
	case Clock:
		return "Clock"
	case ControlWord:
		return "Control Word"
	case Bus:
		return "Bus"
	case ProgramCounter:
		return "Program Counter"
	case InstructionCounter:
		return "Instruction Counter"
	case InstructionReg:
		return "Instruction Register"
	case MemoryAddress:
		return "Memory Address"
	case RAM:
		return "RAM"
	case AReg:
		return "A Register"
	case BReg:
		return "B Register"
	case ALU:
		return "ALU"
	case OutReg:
		return "Output Register"
	}
	return ""
}

func (w Widget) String() string {
	return w.Title()
}

// Colour of a widget.
type Colour int

// List of colours.
const (
	DefaultColour Colour = iota

	// a value is being read from the bus into the widget
	ReadColour

	// the widget is writing its value onto the bus
	WriteColour
)

func (c Colour) String() string {
	switch c {
	case DefaultColour:
		return "default"
	case ReadColour:
		return "read"
	case WriteColour:
		return "write"
	}
	return ""
}

type signal func(s *hardware.Snapshot) bool

// the input and output signals of a widget. either can be nil
type highlight struct {
	in  signal
	out signal
}

var highlights = map[Widget]highlight{
	ProgramCounter: {
		in:  func(s *hardware.Snapshot) bool { return s.Jump },
		out: func(s *hardware.Snapshot) bool { return s.PCOut },
	},
	InstructionReg: {
		in:  func(s *hardware.Snapshot) bool { return s.InstrRegIn },
		out: func(s *hardware.Snapshot) bool { return s.InstrRegOut },
	},
	MemoryAddress: {
		in: func(s *hardware.Snapshot) bool { return s.MemAddrIn },
	},
	RAM: {
		in:  func(s *hardware.Snapshot) bool { return s.RAMIn },
		out: func(s *hardware.Snapshot) bool { return s.RAMOut },
	},
	AReg: {
		in:  func(s *hardware.Snapshot) bool { return s.ARegIn },
		out: func(s *hardware.Snapshot) bool { return s.ARegOut },
	},
	BReg: {
		in: func(s *hardware.Snapshot) bool { return s.BRegIn },
	},
	ALU: {
		out: func(s *hardware.Snapshot) bool { return s.ALUOut },
	},
	OutReg: {
		in: func(s *hardware.Snapshot) bool { return s.OutRegIn },
	},
}

// colour returns the colour of the widget for the snapshot. input beats
// output
func colour(w Widget, s *hardware.Snapshot) Colour {
	h, ok := highlights[w]
	if !ok {
		return DefaultColour
	}
	if h.in != nil && h.in(s) {
		return ReadColour
	}
	if h.out != nil && h.out(s) {
		return WriteColour
	}
	return DefaultColour
}
