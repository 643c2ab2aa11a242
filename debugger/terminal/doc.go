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

// Package terminal defines the operations required for interaction with the
// user while a program is running on the visualiser.
//
// Input is a source of single key presses. Keys can be read with or without
// blocking and it is up to the caller to decide which is appropriate. The
// ColorTerminal type in the colorterm sub-package is the reference
// implementation for posix terminals.
//
// The minimum terminal size and the colour capability check are also
// defined here because they are a property of the visualiser and not of any
// one implementation.
package terminal
