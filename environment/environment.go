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

// Package environment collects the process configuration of a session. Values
// are read from environment variables and can then be overridden by command
// line flags.
//
// The recognised variables are:
//
//	DUMP_TRACES (or DUMPTRACES)   "1" enables the trace file
//	USE_GUI (or USEGUI)           "1" enables the visualiser
//	DUMP_F                        path of the trace file
//	MAX_STEPS                     maximum number of cycles to run
package environment

import (
	"os"
	"strconv"
	"strings"

	"github.com/sap1term/sap1term/curated"
)

// Default values for settings that have not been specified.
const (
	DefaultTraceFile = "top_trace.vcd"
	DefaultMaxSteps  = 3500000
)

// Sentinel errors.
const (
	InvalidMaxSteps = "environment: invalid MAX_STEPS value: %v"
)

// Lookup returns the value of a named variable and whether it was present.
// The os.LookupEnv() function is a Lookup.
type Lookup func(key string) (string, bool)

// Environment is the configuration of a session.
type Environment struct {
	// whether to write a trace file and the name of the file
	Trace     bool
	TraceFile string

	// whether to show the visualiser
	GUI bool

	// maximum number of cycles the session will run before giving up
	MaxSteps uint64
}

// NewEnvironment returns the configuration described by the environment of the
// process.
func NewEnvironment() (*Environment, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup returns the configuration described by the variables available
// through the lookup function.
func FromLookup(lookup Lookup) (*Environment, error) {
	env := &Environment{
		TraceFile: DefaultTraceFile,
		MaxSteps:  DefaultMaxSteps,
	}

	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	env.Trace = get("DUMP_TRACES") == "1" || get("DUMPTRACES") == "1"
	env.GUI = get("USE_GUI") == "1" || get("USEGUI") == "1"

	if f := get("DUMP_F"); f != "" {
		env.TraceFile = f
	}

	if s := get("MAX_STEPS"); s != "" {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, curated.Errorf(InvalidMaxSteps, s)
		}
		env.MaxSteps = n
	}

	return env, nil
}

// Override is a function that can be applied to an Environment, usually as
// the result of a command line flag.
type Override func(env *Environment)

// WithTrace forces the trace setting.
func WithTrace(trace bool) Override {
	return func(env *Environment) {
		env.Trace = trace
	}
}

// WithTraceFile forces the trace file. An empty string is ignored.
func WithTraceFile(f string) Override {
	return func(env *Environment) {
		if f != "" {
			env.TraceFile = f
		}
	}
}

// WithGUI forces the visualiser setting.
func WithGUI(gui bool) Override {
	return func(env *Environment) {
		env.GUI = gui
	}
}

// WithMaxSteps forces the maximum number of cycles.
func WithMaxSteps(n uint64) Override {
	return func(env *Environment) {
		env.MaxSteps = n
	}
}

// Apply overrides to the environment in order.
func (env *Environment) Apply(overrides ...Override) {
	for _, o := range overrides {
		o(env)
	}
}
