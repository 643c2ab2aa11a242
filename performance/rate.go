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

package performance

import "time"

// CalcRate returns the number of cycles per second for the number of cycles
// executed in the duration.
func CalcRate(cycles uint64, duration time.Duration) float64 {
	if duration <= 0 {
		return 0
	}
	return float64(cycles) / duration.Seconds()
}
