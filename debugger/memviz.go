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

package debugger

import (
	"io"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/sap1term/sap1term/debugger/govern"
	"github.com/sap1term/sap1term/hardware"
)

// the parts of the session written by Memviz()
type sessionState struct {
	Snapshot hardware.Snapshot
	Result   Result
	State    govern.State
	Interval time.Duration
	Events   int
}

// Memviz writes a Graphviz description of the session state to the
// io.Writer.
func (dbg *Debugger) Memviz(w io.Writer) {
	st := sessionState{
		Snapshot: dbg.snapshot,
		Result:   dbg.result,
		Events:   dbg.monitor.Events(),
	}
	if dbg.governor != nil {
		st.State = dbg.governor.State()
		st.Interval = dbg.governor.Interval()
	}
	memviz.Map(w, &st)
}
