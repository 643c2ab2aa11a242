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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It
// provides some features not present in the third-party package, such as
// terminal geometry and single key reads, and wraps termios methods in
// functions with friendlier names.
package easyterm

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Geometry contains the dimensions of a terminal in characters.
type Geometry struct {
	Rows int
	Cols int
}

// EasyTerm is the main container for posix terminals. Usually embedded in
// other struct types.
type EasyTerm struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// whether cbreak attributes are currently installed
	cbreak bool

	// the blocking mode last installed by SetBlocking(). the zero value
	// indicates that it has never been set
	blocking int
}

// the optional action for Tcsetattr() that applies the change immediately
const tcsanow uintptr = 0

const (
	blockingUnset = iota
	blockingOn
	blockingOff
)

// Initialise the fields in the EasyTerm struct.
func (et *EasyTerm) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm: requires an input file")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm: requires an output file")
	}

	et.input = inputFile
	et.output = outputFile

	if err := termios.Tcgetattr(et.input.Fd(), &et.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}

	// cbreak mode without signal generation. ctrl-c is delivered as an
	// ordinary key
	et.cbreakAttr = et.canAttr
	termios.Cfmakecbreak(&et.cbreakAttr)
	et.cbreakAttr.Lflag &^= unix.ISIG

	return nil
}

// CleanUp restores the terminal to the attributes it had when Initialise()
// was called.
func (et *EasyTerm) CleanUp() {
	if et.input == nil {
		return
	}
	et.CanonicalMode()
}

// Geometry returns the current dimensions of the output terminal.
func (et *EasyTerm) Geometry() (Geometry, error) {
	ws, err := unix.IoctlGetWinsize(int(et.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return Geometry{}, fmt.Errorf("easyterm: geometry: %w", err)
	}
	return Geometry{Rows: int(ws.Row), Cols: int(ws.Col)}, nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (et *EasyTerm) CanonicalMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.canAttr)
	et.cbreak = false
	et.blocking = blockingUnset
}

// CBreakMode puts terminal into cbreak mode. Reads will block until a key is
// available.
func (et *EasyTerm) CBreakMode() error {
	et.cbreak = true
	et.blocking = blockingUnset
	return et.SetBlocking(true)
}

// SetBlocking changes how ReadKeyByte() behaves when there is no key waiting.
// When blocking is false ReadKeyByte() returns immediately.
//
// Only meaningful in cbreak mode. Changing to the mode already installed is a
// no-op.
func (et *EasyTerm) SetBlocking(blocking bool) error {
	if !et.cbreak {
		return fmt.Errorf("easyterm: blocking mode requires cbreak mode")
	}

	mode := blockingOff
	if blocking {
		mode = blockingOn
	}
	if mode == et.blocking {
		return nil
	}

	if blocking {
		et.cbreakAttr.Cc[unix.VMIN] = 1
		et.cbreakAttr.Cc[unix.VTIME] = 0
	} else {
		et.cbreakAttr.Cc[unix.VMIN] = 0
		et.cbreakAttr.Cc[unix.VTIME] = 0
	}

	// keys pressed between polls must survive the change so TCIFLUSH is not
	// used here
	if err := termios.Tcsetattr(et.input.Fd(), tcsanow, &et.cbreakAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	et.blocking = mode

	return nil
}

// ReadKeyByte reads a single byte from the input. The ok value is false if no
// byte was available, which can only happen when blocking is off.
func (et *EasyTerm) ReadKeyByte() (byte, bool, error) {
	var b [1]byte
	n, err := unix.Read(int(et.input.Fd()), b[:])
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("easyterm: %w", err)
	}
	if n == 0 {
		return 0, false, nil
	}
	return b[0], true, nil
}

// Print writes the formatted string to the output file.
func (et *EasyTerm) Print(s string, a ...interface{}) {
	et.output.WriteString(fmt.Sprintf(s, a...))
}

// Write implements the io.Writer interface.
func (et *EasyTerm) Write(p []byte) (int, error) {
	return et.output.Write(p)
}

// Flush makes sure the terminal's input/output buffers are empty.
func (et *EasyTerm) Flush() error {
	if err := termios.Tcflush(et.input.Fd(), termios.TCIFLUSH); err != nil {
		return err
	}
	if err := termios.Tcflush(et.output.Fd(), termios.TCOFLUSH); err != nil {
		return err
	}
	return nil
}
