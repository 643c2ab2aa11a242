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

package termgui

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sap1term/sap1term/debugger/terminal/colorterm/easyterm/ansi"
	"github.com/sap1term/sap1term/gui"
)

// position and size of a widget box, including the border
type box struct {
	row, col      int
	height, width int
}

var layout = map[gui.Widget]box{
	gui.Header: {row: 0, col: 0, height: 5, width: 80},

	gui.Clock:          {row: 5, col: 0, height: 4, width: 26},
	gui.Bus:            {row: 5, col: 26, height: 4, width: 27},
	gui.ProgramCounter: {row: 5, col: 53, height: 4, width: 27},

	gui.ControlWord: {row: 9, col: 0, height: 4, width: 80},

	gui.InstructionCounter: {row: 13, col: 0, height: 4, width: 26},
	gui.InstructionReg:     {row: 13, col: 26, height: 4, width: 27},
	gui.MemoryAddress:      {row: 13, col: 53, height: 4, width: 27},

	gui.RAM:  {row: 17, col: 0, height: 4, width: 26},
	gui.AReg: {row: 17, col: 26, height: 4, width: 27},
	gui.BReg: {row: 17, col: 53, height: 4, width: 27},

	gui.ALU:    {row: 21, col: 0, height: 4, width: 40},
	gui.OutReg: {row: 21, col: 40, height: 4, width: 40},
}

const (
	topLeft     = "┌"
	topRight    = "┐"
	bottomLeft  = "└"
	bottomRight = "┘"
	horizontal  = "─"
	vertical    = "│"
)

// TermGUI draws frames to an io.Writer connected to an ANSI terminal.
type TermGUI struct {
	out io.Writer
	buf strings.Builder
}

// NewTermGUI is the preferred method of initialisation for the TermGUI type.
func NewTermGUI(out io.Writer) *TermGUI {
	return &TermGUI{out: out}
}

func pen(c gui.Colour) string {
	switch c {
	case gui.ReadColour:
		return ansi.Pens["red"]
	case gui.WriteColour:
		return ansi.Pens["green"]
	}
	return ansi.NormalPen
}

// fit pads or truncates s so that it is exactly n runes long
func fit(s string, n int) string {
	l := utf8.RuneCountInString(s)
	if l > n {
		return string([]rune(s)[:n])
	}
	return s + strings.Repeat(" ", n-l)
}

func (tg *TermGUI) drawWidget(ws gui.WidgetState) {
	b, ok := layout[ws.Widget]
	if !ok {
		return
	}

	tg.buf.WriteString(pen(ws.Colour))

	// top border with title
	title := fit(horizontal+" "+ws.Widget.Title()+" ", b.width-2)
	title = strings.TrimRight(title, " ")
	title += strings.Repeat(horizontal, b.width-2-utf8.RuneCountInString(title))
	tg.buf.WriteString(ansi.CursorMoveTo(b.row, b.col))
	tg.buf.WriteString(topLeft + title + topRight)

	// content
	for i := 0; i < b.height-2; i++ {
		var s string
		if i < len(ws.Lines) {
			s = ws.Lines[i]
		}
		tg.buf.WriteString(ansi.CursorMoveTo(b.row+1+i, b.col))
		tg.buf.WriteString(vertical + " " + fit(s, b.width-4) + " " + vertical)
	}

	// bottom border
	tg.buf.WriteString(ansi.CursorMoveTo(b.row+b.height-1, b.col))
	tg.buf.WriteString(bottomLeft + strings.Repeat(horizontal, b.width-2) + bottomRight)

	tg.buf.WriteString(ansi.NormalPen)
}

// Draw implements the gui.GUI interface. The frame is written to the
// terminal in a single write.
func (tg *TermGUI) Draw(f gui.Frame) error {
	tg.buf.Reset()
	for _, ws := range f {
		tg.drawWidget(ws)
	}
	tg.buf.WriteString(ansi.CursorMoveTo(layout[gui.Header].height+20, 0))

	if _, err := io.WriteString(tg.out, tg.buf.String()); err != nil {
		return errors.Wrap(err, "termgui")
	}
	return nil
}
