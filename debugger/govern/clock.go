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

package govern

import "time"

// Clock is the source of wall time for the Governor.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock uses the time package.
type SystemClock struct{}

// Now implements the Clock interface.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Sleep implements the Clock interface.
func (SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
