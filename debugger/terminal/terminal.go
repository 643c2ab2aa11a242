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

package terminal

import (
	"io"
	"strings"

	"github.com/sap1term/sap1term/curated"
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// ReadKey returns the next key press. If block is false and no key is
	// waiting then ok will be false.
	ReadKey(block bool) (key rune, ok bool, err error)
}

// Terminal is an Input that can also be drawn to. Initialise() must be called
// before any other function and CleanUp() must be called before the program
// exits.
type Terminal interface {
	Input
	io.Writer
	Initialise() error
	CleanUp()
}

// Minimum dimensions of the output terminal.
const (
	MinRows = 35
	MinCols = 80
)

// Sentinel errors. Returned by CheckGeometry() and CheckColour().
const (
	TooSmall = "terminal: too small: %dx%d is less than %dx%d"
	NoColour = "terminal: no colour support: TERM=%q"
)

// CheckGeometry returns an error if the dimensions are smaller than MinRows
// and MinCols.
func CheckGeometry(rows, cols int) error {
	if rows < MinRows || cols < MinCols {
		return curated.Errorf(TooSmall, cols, rows, MinCols, MinRows)
	}
	return nil
}

// CheckColour returns an error if the value of the TERM environment variable
// suggests that the terminal cannot display ANSI colours.
func CheckColour(term string) error {
	t := strings.TrimSpace(strings.ToLower(term))
	if t == "" || t == "dumb" {
		return curated.Errorf(NoColour, term)
	}
	return nil
}
