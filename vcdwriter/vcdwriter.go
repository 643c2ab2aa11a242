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

package vcdwriter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sap1term/sap1term/hardware"
	"github.com/sap1term/sap1term/logger"
	"github.com/sap1term/sap1term/version"
)

// the scope that all signals are declared in
const scope = "top"

// Writer implements the hardware.Sink interface.
type Writer struct {
	filename string
	closer   io.Closer
	w        *bufio.Writer

	model hardware.Model

	ids  []string
	last []uint64

	dumped   bool
	lastTime hardware.Timestamp
}

// Open creates the named file and writes the VCD header. The model is captured
// on every call to Dump().
func Open(filename string, model hardware.Model) (*Writer, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, errors.Wrap(err, "vcdwriter")
	}

	vw, err := New(f, model)
	if err != nil {
		f.Close()
		return nil, err
	}
	vw.filename = filename
	vw.closer = f

	logger.Logf(logger.Allow, "vcdwriter", "writing trace to %s", filename)

	return vw, nil
}

// New writes the VCD header to the io.Writer and returns a Writer that will
// write to it. Close() will not close the io.Writer.
func New(w io.Writer, model hardware.Model) (*Writer, error) {
	if model == nil {
		return nil, errors.New("vcdwriter: nil model")
	}

	vw := &Writer{
		w:     bufio.NewWriter(w),
		model: model,
		ids:   make([]string, len(hardware.Signals)),
		last:  make([]uint64, len(hardware.Signals)),
	}

	for i := range hardware.Signals {
		vw.ids[i] = identifier(i)
	}

	if err := vw.header(); err != nil {
		return nil, err
	}

	return vw, nil
}

// identifier returns the short VCD identifier for the numbered signal. Uses
// the printable ASCII characters from '!' to '~'.
func identifier(n int) string {
	const first = '!'
	const base = '~' - '!' + 1

	var id []byte
	for {
		id = append(id, byte(first+n%base))
		n /= base
		if n == 0 {
			break
		}
		n--
	}
	return string(id)
}

func (vw *Writer) header() error {
	v, _, _ := version.Version()
	fmt.Fprintf(vw.w, "$version %s %s $end\n", version.ApplicationName, v)
	fmt.Fprintf(vw.w, "$timescale 1ps $end\n")
	fmt.Fprintf(vw.w, "$scope module %s $end\n", scope)
	for i, sig := range hardware.Signals {
		if sig.Width == 1 {
			fmt.Fprintf(vw.w, "$var wire 1 %s %s $end\n", vw.ids[i], sig.Name)
		} else {
			fmt.Fprintf(vw.w, "$var wire %d %s %s [%d:0] $end\n", sig.Width, vw.ids[i], sig.Name, sig.Width-1)
		}
	}
	fmt.Fprintf(vw.w, "$upscope $end\n")
	fmt.Fprintf(vw.w, "$enddefinitions $end\n")

	return vw.Flush()
}

func (vw *Writer) value(i int, v uint64) {
	if hardware.Signals[i].Width == 1 {
		fmt.Fprintf(vw.w, "%d%s\n", v&1, vw.ids[i])
	} else {
		fmt.Fprintf(vw.w, "b%s %s\n", strconv.FormatUint(v, 2), vw.ids[i])
	}
}

// Dump implements the hardware.Sink interface. Timestamps must be strictly
// increasing.
func (vw *Writer) Dump(t hardware.Timestamp) error {
	if vw.dumped && t <= vw.lastTime {
		return errors.Errorf("vcdwriter: timestamp %s does not follow %s", t, vw.lastTime)
	}

	s := hardware.Capture(vw.model)

	if !vw.dumped {
		fmt.Fprintf(vw.w, "#%d\n$dumpvars\n", uint64(t))
		for i, sig := range hardware.Signals {
			v := sig.Value(&s)
			vw.value(i, v)
			vw.last[i] = v
		}
		fmt.Fprintf(vw.w, "$end\n")
		vw.dumped = true
		vw.lastTime = t
		return nil
	}

	var stamped bool
	for i, sig := range hardware.Signals {
		v := sig.Value(&s)
		if v == vw.last[i] {
			continue
		}
		if !stamped {
			fmt.Fprintf(vw.w, "#%d\n", uint64(t))
			stamped = true
		}
		vw.value(i, v)
		vw.last[i] = v
	}
	vw.lastTime = t

	return nil
}

// Flush implements the hardware.Sink interface.
func (vw *Writer) Flush() error {
	if err := vw.w.Flush(); err != nil {
		return errors.Wrap(err, "vcdwriter")
	}
	return nil
}

// Close flushes any buffered output and closes the file if the Writer was
// created with Open().
func (vw *Writer) Close() error {
	err := vw.Flush()
	if vw.closer != nil {
		if cerr := vw.closer.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "vcdwriter")
		}
		vw.closer = nil
		logger.Logf(logger.Allow, "vcdwriter", "closed %s", vw.filename)
	}
	return err
}
