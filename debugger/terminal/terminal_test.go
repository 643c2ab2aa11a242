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

package terminal_test

import (
	"testing"

	"github.com/sap1term/sap1term/curated"
	"github.com/sap1term/sap1term/debugger/terminal"
	"github.com/sap1term/sap1term/test"
)

func TestGeometry(t *testing.T) {
	test.ExpectSuccess(t, terminal.CheckGeometry(35, 80))
	test.ExpectSuccess(t, terminal.CheckGeometry(50, 132))

	err := terminal.CheckGeometry(34, 80)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, terminal.TooSmall), true)
	test.ExpectEquality(t, err.Error(), "terminal: too small: 80x34 is less than 80x35")

	err = terminal.CheckGeometry(35, 79)
	test.ExpectEquality(t, curated.Is(err, terminal.TooSmall), true)
}

func TestColour(t *testing.T) {
	test.ExpectSuccess(t, terminal.CheckColour("xterm-256color"))
	test.ExpectSuccess(t, terminal.CheckColour("screen"))

	err := terminal.CheckColour("")
	test.ExpectEquality(t, curated.Is(err, terminal.NoColour), true)
	err = terminal.CheckColour("dumb")
	test.ExpectEquality(t, curated.Is(err, terminal.NoColour), true)
	test.ExpectEquality(t, curated.Is(err, terminal.TooSmall), false)
}
