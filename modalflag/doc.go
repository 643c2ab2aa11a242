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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Instead of defining flags globally, flags are added to an
// instance of the Modes type. Parse() is then called on that instance.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	trace := md.AddBool("trace", false, "write a trace file")
//	p, err := md.Parse()
//
// Modes are added with AddSubModes(). The first sub-mode is the default and
// is selected if the first argument does not name a sub-mode.
//
//	md.AddSubModes("RUN", "ASM")
//	p, _ := md.Parse()
//	switch md.Mode() {
//	case "RUN":
//	case "ASM":
//	}
//
// Once the mode is known, NewMode() is called and the flags for that mode
// are added before calling Parse() again.
//
// Sub-mode names are case insensitive on the command line and are always
// reported in upper case by Mode() and Path().
package modalflag
