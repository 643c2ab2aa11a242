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

package sap1

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sap1term/sap1term/assembler"
)

// ReadHex reads a RAM image of one hex word per line. Blank lines and lines
// beginning with # are ignored.
func ReadHex(r io.Reader) ([]uint8, error) {
	var image []uint8

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}

		v, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			return nil, errors.Wrapf(err, "sap1: line %d", line)
		}
		if len(image) == RAMDepth {
			return nil, errors.Errorf("sap1: line %d: image is longer than %d words", line, RAMDepth)
		}
		image = append(image, uint8(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "sap1")
	}

	return image, nil
}

// LoadFile returns the RAM image in the named file. Files with the .asm or .s
// extension are assembled. All other files are read with ReadHex().
func LoadFile(filename string) ([]uint8, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".asm", ".s":
		p, err := assembler.AssembleFile(filename)
		if err != nil {
			return nil, errors.WithMessage(err, "sap1")
		}
		return p.RAM[:], nil
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "sap1")
	}
	defer f.Close()

	return ReadHex(f)
}
