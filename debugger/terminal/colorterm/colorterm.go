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

// Package colorterm implements the Terminal interface for posix terminals
// that understand ANSI sequences.
package colorterm

import (
	"os"
	"unicode"

	"github.com/sap1term/sap1term/debugger/terminal"
	"github.com/sap1term/sap1term/debugger/terminal/colorterm/easyterm"
	"github.com/sap1term/sap1term/debugger/terminal/colorterm/easyterm/ansi"
	"github.com/sap1term/sap1term/logger"
)

// ColorTerminal implements the terminal.Terminal interface with a basic ANSI
// terminal.
type ColorTerminal struct {
	easyterm.EasyTerm

	initialised bool
}

// Initialise checks that the terminal is suitable and then prepares it for
// drawing. The size of the terminal is checked before colour capability.
//
// No changes are made to the terminal if either check fails.
func (ct *ColorTerminal) Initialise() error {
	err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	geom, err := ct.EasyTerm.Geometry()
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "colorterm", "geometry %dx%d", geom.Cols, geom.Rows)

	if err := terminal.CheckGeometry(geom.Rows, geom.Cols); err != nil {
		return err
	}
	if err := terminal.CheckColour(os.Getenv("TERM")); err != nil {
		return err
	}

	if err := ct.EasyTerm.CBreakMode(); err != nil {
		return err
	}

	ct.EasyTerm.Print(ansi.AlternateScreen)
	ct.EasyTerm.Print(ansi.HideCursor)
	ct.EasyTerm.Print(ansi.ClearScreen)
	ct.initialised = true

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	if ct.initialised {
		ct.EasyTerm.Print(ansi.NormalPen)
		ct.EasyTerm.Print(ansi.ShowCursor)
		ct.EasyTerm.Print(ansi.NormalScreen)
		ct.initialised = false
	}
	ct.EasyTerm.CleanUp()
}

// ReadKey implements the terminal.Input interface. Letters are returned in
// lower case. The interrupt key is returned as easyterm.KeyInterrupt.
func (ct *ColorTerminal) ReadKey(block bool) (rune, bool, error) {
	if err := ct.EasyTerm.SetBlocking(block); err != nil {
		return 0, false, err
	}

	b, ok, err := ct.EasyTerm.ReadKeyByte()
	if err != nil || !ok {
		return 0, false, err
	}

	return unicode.ToLower(rune(b)), true, nil
}
