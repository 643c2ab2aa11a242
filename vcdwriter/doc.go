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

// Package vcdwriter writes the signals of a hardware.Model to a Value Change
// Dump file, suitable for waveform viewers like GTKWave.
//
// Every signal listed in hardware.Signals is declared in the header. The first
// call to Dump() writes the value of every signal. Subsequent calls write only
// the signals that have changed since the previous dump and write nothing at
// all if no signal has changed.
//
// Timestamps are written in hardware.Timestamp sub-units and the timescale
// of the file is one picosecond per sub-unit.
package vcdwriter
