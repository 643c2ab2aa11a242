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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function, which takes a
// formatting pattern and placeholder values in the same way as fmt.Errorf().
// The pattern is kept with the error and is what identifies it. Patterns that
// are meaningful outside of the package that creates them should be stored in
// an exported const string. For example, the session package exports:
//
//	const TraceOpen = "trace: cannot open %s: %v"
//
// and callers test for it with:
//
//	if curated.Is(err, session.TraceOpen) {
//		os.Exit(2)
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in
// the error chain:
//
//	e := curated.Errorf(session.TraceOpen, path, err)
//	f := curated.Errorf("startup: %v", e)
//
//	curated.Is(f, session.TraceOpen)  // false
//	curated.Has(f, session.TraceOpen) // true
//
// The Error() implementation normalises the message so that adjacent
// duplicate parts of the chain are removed. Parts are separated by the
// sub-string ": ". This means that wrapping with the same prefix at several
// levels does not result in a stuttering message:
//
//	sap1: sap1: program too long
//
// becomes:
//
//	sap1: program too long
//
// IsAny() answers whether an error was created by curated.Errorf() at all. It
// is a convenient way of distinguishing expected errors from unexpected
// errors that originate from outside of the project.
package curated
