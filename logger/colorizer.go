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

package logger

import (
	"bytes"
	"io"

	"github.com/sap1term/sap1term/debugger/terminal/colorterm/easyterm/ansi"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// entry is printed with a dim pen so that the detail stands out.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	// log entries are written as "tag: detail". lines without the separator are
	// written unchanged
	i := bytes.Index(p, []byte(": "))
	if i < 0 {
		return c.out.Write(p)
	}

	var b bytes.Buffer
	b.WriteString(ansi.DimPens["cyan"])
	b.Write(p[:i])
	b.WriteString(ansi.NormalPen)
	b.Write(p[i:])

	_, err = c.out.Write(b.Bytes())
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
