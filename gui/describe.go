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

import (
	"fmt"
	"strings"
	"time"

	"github.com/sap1term/sap1term/assembler"
	"github.com/sap1term/sap1term/debugger/govern"
	"github.com/sap1term/sap1term/hardware"
)

// Mode is the information about the session that is not part of a
// snapshot.
type Mode struct {
	State    govern.State
	Interval time.Duration

	// number of cycles completed
	Cycles uint64

	// the model has halted and the session is waiting for a final key
	Halted bool
}

// WidgetState is everything required to draw a widget.
type WidgetState struct {
	Widget Widget
	Colour Colour
	Lines  []string
}

// Frame is the state of every widget for one refresh of the visualiser.
type Frame []WidgetState

// GUI implementations draw a Frame.
type GUI interface {
	Draw(f Frame) error
}

// HaltedBanner is shown in the header once the model has halted.
const HaltedBanner = "HALTED. PRESS ANY KEY TO FINISH!"

// KeyLegend is shown in the header.
const KeyLegend = "q:quit s:step t:instruction r:run p:pause +/-:speed"

// the text of a data value in hex and decimal
func value(v uint64) string {
	return fmt.Sprintf("0x%02x  %3d", v, v)
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Describe returns the state of the widget for the snapshot and mode.
func Describe(w Widget, s hardware.Snapshot, m Mode) WidgetState {
	ws := WidgetState{
		Widget: w,
		Colour: colour(w, &s),
	}

	switch w {
	case Header:
		ws.Lines = []string{
			KeyLegend,
			"read from bus: red   write to bus: green",
		}
		if m.Halted {
			ws.Colour = ReadColour
			ws.Lines = append(ws.Lines, HaltedBanner)
		} else {
			ws.Lines = append(ws.Lines, fmt.Sprintf("%s   interval %v", m.State, m.Interval.Round(time.Microsecond)))
		}

	case Clock:
		ws.Lines = []string{fmt.Sprintf("%08d", m.Cycles)}

	case ControlWord:
		var names, bits strings.Builder
		for i, c := range hardware.ControlWord {
			if i > 0 {
				names.WriteRune(' ')
				bits.WriteRune(' ')
			}
			names.WriteString(c.Mnemonic)
			bits.WriteString(fmt.Sprintf("%-*s", len(c.Mnemonic), flag(c.Value(&s))))
		}
		ws.Lines = []string{names.String(), bits.String()}

	case Bus:
		ws.Lines = []string{value(s.Bus)}
	case ProgramCounter:
		ws.Lines = []string{value(s.ProgramCounter)}
	case InstructionCounter:
		ws.Lines = []string{value(s.InstructionCounter)}
	case InstructionReg:
		ws.Lines = []string{
			value(s.InstructionReg),
			assembler.Disassemble(uint8(s.InstructionReg)),
		}
	case MemoryAddress:
		ws.Lines = []string{value(s.MemoryAddress)}
	case RAM:
		ws.Lines = []string{value(s.RAMData)}
	case AReg:
		ws.Lines = []string{value(s.AReg)}
	case BReg:
		ws.Lines = []string{value(s.BReg)}
	case ALU:
		ws.Lines = []string{
			value(s.ALUData),
			fmt.Sprintf("Z:%s C:%s O:%s", flag(s.Zero), flag(s.Carry), flag(s.Odd)),
		}
	case OutReg:
		ws.Lines = []string{value(s.OutReg)}
	}

	return ws
}

// DescribeFrame returns the state of every widget for the snapshot and mode.
func DescribeFrame(s hardware.Snapshot, m Mode) Frame {
	f := make(Frame, 0, len(Widgets))
	for _, w := range Widgets {
		f = append(f, Describe(w, s, m))
	}
	return f
}

// Equal returns true if both widget states are the same.
func (ws WidgetState) Equal(o WidgetState) bool {
	if ws.Widget != o.Widget || ws.Colour != o.Colour || len(ws.Lines) != len(o.Lines) {
		return false
	}
	for i := range ws.Lines {
		if ws.Lines[i] != o.Lines[i] {
			return false
		}
	}
	return true
}
