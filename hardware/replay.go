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

package hardware

// Replay is a Model that plays back a list of snapshots. The current snapshot
// moves on at every rising edge of the clock and stays on the last snapshot
// once the list is exhausted.
//
// Replay is useful for exercising consumers of the Model interface without a
// logic model.
type Replay struct {
	snapshots []Snapshot
	idx       int

	clock     bool
	prevClock bool

	// number of rising edges seen by Evaluate()
	Edges int

	// number of calls to Evaluate()
	Evaluations int
}

// NewReplay creates a new Replay. At least one snapshot must be supplied.
func NewReplay(snapshots ...Snapshot) *Replay {
	if len(snapshots) == 0 {
		panic("hardware: replay requires at least one snapshot")
	}
	return &Replay{snapshots: snapshots}
}

func (r *Replay) cur() *Snapshot {
	return &r.snapshots[r.idx]
}

// Evaluate implements the Model interface.
func (r *Replay) Evaluate() {
	r.Evaluations++
	if r.clock && !r.prevClock {
		r.Edges++
		if r.idx < len(r.snapshots)-1 {
			r.idx++
		}
	}
	r.prevClock = r.clock
}

// SetClock implements the Model interface.
func (r *Replay) SetClock(high bool) { r.clock = high }

// Clock implements the Model interface.
func (r *Replay) Clock() bool { return r.clock }

func (r *Replay) Halt() bool          { return r.cur().Halt }
func (r *Replay) Advance() bool       { return r.cur().Advance }
func (r *Replay) MemAddrIn() bool     { return r.cur().MemAddrIn }
func (r *Replay) RAMIn() bool         { return r.cur().RAMIn }
func (r *Replay) RAMOut() bool        { return r.cur().RAMOut }
func (r *Replay) InstrRegIn() bool    { return r.cur().InstrRegIn }
func (r *Replay) InstrRegOut() bool   { return r.cur().InstrRegOut }
func (r *Replay) ARegIn() bool        { return r.cur().ARegIn }
func (r *Replay) ARegOut() bool       { return r.cur().ARegOut }
func (r *Replay) ALUOut() bool        { return r.cur().ALUOut }
func (r *Replay) ALUSubtract() bool   { return r.cur().ALUSubtract }
func (r *Replay) ALULatchFlags() bool { return r.cur().ALULatchFlags }
func (r *Replay) BRegIn() bool        { return r.cur().BRegIn }
func (r *Replay) OutRegIn() bool      { return r.cur().OutRegIn }
func (r *Replay) PCEnable() bool      { return r.cur().PCEnable }
func (r *Replay) PCOut() bool         { return r.cur().PCOut }
func (r *Replay) Jump() bool          { return r.cur().Jump }
func (r *Replay) Zero() bool          { return r.cur().Zero }
func (r *Replay) Carry() bool         { return r.cur().Carry }
func (r *Replay) Odd() bool           { return r.cur().Odd }

func (r *Replay) Bus() uint64                { return r.cur().Bus }
func (r *Replay) ProgramCounter() uint64     { return r.cur().ProgramCounter }
func (r *Replay) InstructionCounter() uint64 { return r.cur().InstructionCounter }
func (r *Replay) InstructionReg() uint64     { return r.cur().InstructionReg }
func (r *Replay) MemoryAddress() uint64      { return r.cur().MemoryAddress }
func (r *Replay) RAMData() uint64            { return r.cur().RAMData }
func (r *Replay) AReg() uint64               { return r.cur().AReg }
func (r *Replay) BReg() uint64               { return r.cur().BReg }
func (r *Replay) ALUData() uint64            { return r.cur().ALUData }
func (r *Replay) OutReg() uint64             { return r.cur().OutReg }
