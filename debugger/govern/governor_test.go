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

package govern_test

import (
	"errors"
	"testing"
	"time"

	"github.com/sap1term/sap1term/debugger/govern"
	"github.com/sap1term/sap1term/debugger/terminal/colorterm/easyterm"
	"github.com/sap1term/sap1term/test"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.now = c.now.Add(d)
}

func (c *fakeClock) elapsed(start time.Time) time.Duration {
	return c.now.Sub(start)
}

// a key that becomes available at a time relative to the start of the test
type event struct {
	at  time.Duration
	key rune
}

var errNoMoreKeys = errors.New("no more keys")

// scripted input. a blocking read moves the clock forward to the time of the
// next key
type fakeInput struct {
	clock  *fakeClock
	start  time.Time
	events []event

	blockingReads int
}

func newFakeInput(clock *fakeClock, events ...event) *fakeInput {
	return &fakeInput{clock: clock, start: clock.now, events: events}
}

func (in *fakeInput) ReadKey(block bool) (rune, bool, error) {
	if block {
		in.blockingReads++
	}
	if len(in.events) == 0 {
		if block {
			return 0, false, errNoMoreKeys
		}
		return 0, false, nil
	}

	e := in.events[0]
	at := in.start.Add(e.at)
	if in.clock.now.Before(at) {
		if !block {
			return 0, false, nil
		}
		in.clock.now = at
	}

	in.events = in.events[1:]
	return e.key, true, nil
}

func newGovernor(events ...event) (*govern.Governor, *fakeClock, *fakeInput) {
	clk := &fakeClock{now: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
	in := newFakeInput(clk, events...)
	return govern.NewGovernor(in, clk), clk, in
}

func TestPolling(t *testing.T) {
	test.ExpectEquality(t, govern.Paused.Polling(), govern.Blocking)
	test.ExpectEquality(t, govern.Stepping.Polling(), govern.NonBlocking)
	test.ExpectEquality(t, govern.InstructionStepping.Polling(), govern.NonBlocking)
	test.ExpectEquality(t, govern.Running.Polling(), govern.NonBlocking)
}

func TestStep(t *testing.T) {
	gv, _, in := newGovernor(event{key: 's'}, event{key: 'S'}, event{key: 'q'})

	var refreshes int
	gv.SetRefresh(func() error {
		refreshes++
		return nil
	})

	test.ExpectEquality(t, gv.State(), govern.Paused)

	quit, err := gv.Wait(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, quit, false)
	test.ExpectEquality(t, gv.State(), govern.Stepping)

	quit, err = gv.Wait(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, quit, false)

	quit, err = gv.Wait(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, quit, true)
	test.ExpectEquality(t, gv.State(), govern.Paused)

	test.ExpectEquality(t, in.blockingReads, 3)
	test.ExpectEquality(t, refreshes, 3)
}

func TestPausedBlocks(t *testing.T) {
	// keys that do nothing in the Paused state do not release the wait
	gv, _, in := newGovernor(event{key: 'p'}, event{key: 'x'}, event{key: '+'})

	_, err := gv.Wait(0)
	test.ExpectEquality(t, errors.Is(err, errNoMoreKeys), true)
	test.ExpectEquality(t, in.blockingReads, 4)
	test.ExpectEquality(t, gv.State(), govern.Paused)
}

func TestRefreshError(t *testing.T) {
	gv, _, in := newGovernor(event{key: 's'})
	sentinel := errors.New("refresh")
	gv.SetRefresh(func() error {
		return sentinel
	})
	_, err := gv.Wait(0)
	test.ExpectEquality(t, errors.Is(err, sentinel), true)
	test.ExpectEquality(t, in.blockingReads, 0)
}

func TestRunning(t *testing.T) {
	gv, clk, _ := newGovernor(
		event{key: 'r'},
		event{at: 120 * time.Millisecond, key: 'p'},
		event{at: 10 * time.Second, key: 'q'},
	)
	start := clk.now

	// the first advance happens one interval after the run key
	quit, err := gv.Wait(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, quit, false)
	test.ExpectEquality(t, gv.State(), govern.Running)
	test.ExpectEquality(t, clk.elapsed(start), 50*time.Millisecond)

	quit, err = gv.Wait(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, quit, false)
	test.ExpectEquality(t, clk.elapsed(start), 100*time.Millisecond)

	// the pause key arrives at 120ms. the poll after that sees it and the
	// governor blocks without advancing until the quit key
	quit, err = gv.Wait(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, quit, true)
	test.ExpectEquality(t, gv.State(), govern.Paused)
	test.ExpectEquality(t, clk.elapsed(start), 10*time.Second)
}

func TestPauseWithinOnePoll(t *testing.T) {
	gv, clk, _ := newGovernor(
		event{key: 'r'},
		event{at: 20 * time.Millisecond, key: 'p'},
	)
	start := clk.now

	// the pause key is seen within one poll period of it arriving
	_, err := gv.Wait(0)
	test.ExpectEquality(t, errors.Is(err, errNoMoreKeys), true)
	test.ExpectEquality(t, gv.State(), govern.Paused)
	test.ExpectEquality(t, clk.elapsed(start) <= 20*time.Millisecond+govern.PollPeriod, true)
}

func TestInstructionStep(t *testing.T) {
	gv, _, _ := newGovernor(event{key: 't'}, event{at: time.Hour, key: 'q'})

	var advances int
	for _, ic := range []uint64{3, 2, 1, 0, 1} {
		quit, err := gv.Wait(ic)
		test.DemandSuccess(t, err)
		if quit {
			break
		}
		advances++
	}

	test.ExpectEquality(t, advances, 4)
	test.ExpectEquality(t, gv.State(), govern.Paused)
}

func TestInstructionStepFromZero(t *testing.T) {
	// starting on an instruction boundary steps through the whole of the
	// next instruction
	gv, _, _ := newGovernor(event{key: 't'}, event{at: time.Hour, key: 'q'})

	var advances int
	for _, ic := range []uint64{0, 1, 2, 0, 1} {
		quit, err := gv.Wait(ic)
		test.DemandSuccess(t, err)
		if quit {
			break
		}
		advances++
	}
	test.ExpectEquality(t, advances, 4)
}

func TestInstructionStepCancel(t *testing.T) {
	gv, _, _ := newGovernor(event{key: 't'}, event{key: 'p'}, event{key: 'q'})

	quit, err := gv.Wait(3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, quit, false)
	test.ExpectEquality(t, gv.State(), govern.InstructionStepping)

	// the pause key cancels instruction stepping before the next advance
	quit, err = gv.Wait(2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, quit, true)
	test.ExpectEquality(t, gv.State(), govern.Paused)

	// the run key also cancels instruction stepping
	gv, _, _ = newGovernor(event{key: 't'}, event{key: 'r'})
	_, _ = gv.Wait(3)
	_, err = gv.Wait(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, gv.State(), govern.Running)
}

func TestIgnoredKeys(t *testing.T) {
	gv, _, _ := newGovernor(event{key: 'r'}, event{key: 's'}, event{key: 't'})

	_, err := gv.Wait(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, gv.State(), govern.Running)

	_, err = gv.Wait(0)
	test.DemandSuccess(t, err)
	_, err = gv.Wait(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, gv.State(), govern.Running)

	// run key while running changes nothing
	test.ExpectEquality(t, gv.HandleKey('r'), false)
	test.ExpectEquality(t, gv.State(), govern.Running)
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []rune{'q', 'Q', easyterm.KeyInterrupt, easyterm.KeyEsc} {
		gv, _, _ := newGovernor(event{key: k})
		quit, err := gv.Wait(0)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, quit, true, k)
	}
}

func TestSpeed(t *testing.T) {
	gv, _, _ := newGovernor()
	test.ExpectEquality(t, gv.Interval(), govern.DefaultInterval)

	gv.HandleKey('+')
	test.ExpectEquality(t, gv.Interval(), 45*time.Millisecond)
	gv.HandleKey('-')
	test.ExpectApproximate(t, float64(gv.Interval()), float64(50*time.Millisecond), 0.0001)
	gv.HandleKey('=')
	test.ExpectApproximate(t, float64(gv.Interval()), float64(45*time.Millisecond), 0.0001)

	// the speed keys do not change state
	test.ExpectEquality(t, gv.State(), govern.Paused)

	for i := 0; i < 1000; i++ {
		gv.HandleKey('+')
	}
	test.ExpectEquality(t, gv.Interval(), govern.MinInterval)

	// the interval never overflows however many times the slower key is
	// pressed
	for i := 0; i < 1000; i++ {
		gv.HandleKey('-')
		test.DemandEquality(t, gv.Interval() > 0, true, i)
	}
	test.ExpectEquality(t, gv.Interval(), govern.MaxInterval)

	gv.HandleKey('+')
	test.ExpectEquality(t, gv.Interval(), 9*time.Second)
}

func TestState(t *testing.T) {
	test.ExpectEquality(t, govern.Paused.String(), "Paused")
	test.ExpectEquality(t, govern.InstructionStepping.String(), "Instruction Stepping")
	test.ExpectEquality(t, govern.Blocking.String(), "blocking")
}
