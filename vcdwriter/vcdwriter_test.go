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

package vcdwriter_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sap1term/sap1term/hardware"
	"github.com/sap1term/sap1term/test"
	"github.com/sap1term/sap1term/vcdwriter"
)

// returns the lines following $enddefinitions
func body(t *testing.T, w *test.CompareWriter) []string {
	t.Helper()
	lines := w.Lines()
	for i, l := range lines {
		if l == "$enddefinitions $end" {
			return lines[i+1:]
		}
	}
	t.Fatalf("no $enddefinitions in output")
	return nil
}

func TestHeader(t *testing.T) {
	w := &test.CompareWriter{}
	_, err := vcdwriter.New(w, hardware.NewReplay(hardware.Snapshot{}))
	test.DemandSuccess(t, err)

	lines := w.Lines()
	test.ExpectEquality(t, strings.HasPrefix(lines[0], "$version sap1term "), true)
	test.ExpectEquality(t, lines[1], "$timescale 1ps $end")
	test.ExpectEquality(t, lines[2], "$scope module top $end")
	test.ExpectEquality(t, lines[3], "$var wire 1 ! clk $end")
	test.ExpectEquality(t, lines[4], `$var wire 1 " halt $end`)

	// one $var for every signal
	var vars int
	for _, l := range lines {
		if strings.HasPrefix(l, "$var ") {
			vars++
		}
	}
	test.ExpectEquality(t, vars, len(hardware.Signals))

	test.ExpectEquality(t, strings.Contains(w.String(), "$var wire 8 "), true)
	test.ExpectEquality(t, strings.Contains(w.String(), " bus_out [7:0] $end\n"), true)
	test.ExpectEquality(t, lines[len(lines)-1], "$enddefinitions $end")
}

func TestValueChanges(t *testing.T) {
	w := &test.CompareWriter{}
	m := hardware.NewReplay(
		hardware.Snapshot{},
		hardware.Snapshot{Halt: true, Bus: 5},
	)
	vw, err := vcdwriter.New(w, m)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, hardware.Step(m, 1, vw))

	b := body(t, w)

	// the first dump has every value
	test.ExpectEquality(t, b[0], "#99999")
	test.ExpectEquality(t, b[1], "$dumpvars")
	test.ExpectEquality(t, b[2], "0!")
	test.ExpectEquality(t, b[len(hardware.Signals)+2], "$end")

	// rising edge: clock, halt and bus change
	rest := b[len(hardware.Signals)+3:]
	test.ExpectEquality(t, rest[0], "#100000")
	test.ExpectEquality(t, rest[1], "1!")
	test.ExpectEquality(t, rest[2], `1"`)
	test.ExpectEquality(t, strings.HasPrefix(rest[3], "b101 "), true)

	// nothing changes at 14.9999 so the next entry is the falling edge
	test.ExpectEquality(t, rest[4], "#150001")
	test.ExpectEquality(t, rest[5], "0!")
	test.ExpectEquality(t, len(rest), 6)
}

func TestMonotonic(t *testing.T) {
	w := &test.CompareWriter{}
	vw, err := vcdwriter.New(w, hardware.NewReplay(hardware.Snapshot{}))
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, vw.Dump(10))
	test.ExpectFailure(t, vw.Dump(10))
	test.ExpectFailure(t, vw.Dump(9))
	test.ExpectSuccess(t, vw.Dump(11))
}

func TestOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "trace.vcd")

	m := hardware.NewReplay(hardware.Snapshot{})
	vw, err := vcdwriter.Open(fn, m)
	test.DemandSuccess(t, err)
	for k := uint64(1); k <= 3; k++ {
		test.DemandSuccess(t, hardware.Step(m, k, vw))
	}
	test.DemandSuccess(t, vw.Close())

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(string(data), "$dumpvars"), true)
	test.ExpectEquality(t, strings.Contains(string(data), "\n#350001\n0!\n"), true)
}

func TestOpenFailure(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "nosuchdir", "trace.vcd")
	_, err := vcdwriter.Open(fn, hardware.NewReplay(hardware.Snapshot{}))
	test.ExpectFailure(t, err)
}
