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

// Package gui describes what the visualiser shows. It does not draw anything
// itself. Drawing is the job of an implementation of the GUI interface, such
// as the one in the termgui sub-package.
//
// Describe() is a pure function of a hardware.Snapshot and a Mode. It returns
// the WidgetState of a single widget: the box colour and the lines of text.
// The colour of a widget is chosen from the highlight table:
//
//	widget            input signal   output signal
//	program counter   J              CO
//	instruction reg   II             IO
//	memory address    MI
//	RAM               RI             RO
//	A register        AI             AO
//	B register        BI
//	ALU                              EO
//	output register   OI
//
// If the input signal is asserted the widget is drawn in the read colour.
// Otherwise, if the output signal is asserted, it is drawn in the write
// colour. Widgets not in the table are always drawn in the default colour.
package gui
