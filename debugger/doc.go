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

// Package debugger implements the session loop. The session owns the logic
// model and the trace sink and runs the model one cycle at a time until it
// halts, until the cycle limit is reached or until the user quits.
//
// Initialisation of the debugger is done with the NewDebugger() function
//
//	dbg := debugger.NewDebugger(model, sink, maxSteps, os.Stdout)
//
// The sink can be nil, in which case no trace is produced. Output events are
// written to the io.Writer.
//
// For an interactive session, a terminal.Input and a gui.GUI are attached
// before the session is started
//
//	dbg.AttachGUI(term, termgui.NewTermGUI(term), nil)
//	result, err := dbg.Run()
//
// The pace of the session is then decided by the govern.Governor. Without an
// attached GUI the session runs as quickly as possible.
package debugger
