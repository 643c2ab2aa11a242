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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions are the same except that failure is
// fatal, which is useful when a value is needed by later parts of the test.
//
// It is worth describing how the success and failure functions handle nil
// because it is not obvious. A nil value is considered a success. This is
// because of how errors are used in Go, where nil indicates that there was no
// error.
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output. The Compare() function can then be used to test the
// captured output against an expected string.
package test
