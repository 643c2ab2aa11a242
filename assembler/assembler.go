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

package assembler

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sap1term/sap1term/logger"
)

const commentDelimiter = ";"

const reserveKeyword = "RESERVE"

// Instruction is one line of source that generates a word of RAM.
type Instruction struct {
	// line number in the source
	Line int

	Opcode Opcode

	// the argument as written in the source. empty if the opcode does not
	// take an argument
	Arg string

	// the resolved argument
	Value uint8
}

func (in Instruction) String() string {
	if in.Opcode.Argument {
		return fmt.Sprintf("%s %s", in.Opcode.Mnemonic, in.Arg)
	}
	return in.Opcode.Mnemonic
}

// Label is a named address in the program.
type Label struct {
	Name string
	Addr int
}

// Variable is a named and reserved area of RAM.
type Variable struct {
	Name   string
	Length int
	Addr   int
}

// Program is the result of a successful assembly.
type Program struct {
	Instructions []Instruction
	Labels       []Label
	Variables    []Variable

	// the RAM image. words not used by instructions are zero
	RAM [RAMDepth]uint8
}

var (
	hexNumber    = regexp.MustCompile(`^0?[xX]([0-9a-fA-F]+)$`)
	binaryNumber = regexp.MustCompile(`^0?[bB]([01]+)$`)
	decNumber    = regexp.MustCompile(`^([0-9]+)$`)
	indexed      = regexp.MustCompile(`^(.+)\[(.+)\]$`)
)

// parseNumber parses the number in the base indicated by its prefix.
func parseNumber(s string) (int, error) {
	var digits string
	var base int

	if m := hexNumber.FindStringSubmatch(s); m != nil {
		digits, base = m[1], 16
	} else if m := binaryNumber.FindStringSubmatch(s); m != nil {
		digits, base = m[1], 2
	} else if m := decNumber.FindStringSubmatch(s); m != nil {
		digits, base = m[1], 10
	} else {
		return 0, errors.Errorf("unknown base for apparent integer %s, use 0x for hex and 0b for binary", s)
	}

	v, err := strconv.ParseInt(digits, base, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "integer %s", s)
	}
	return int(v), nil
}

type assembly struct {
	prog Program

	// every label and variable name in use
	symbols map[string]bool

	labels    map[string]int
	variables map[string]int
}

func (asm *assembly) newSymbol(name string, kind string, line int) error {
	if name == "" {
		return errors.Errorf("line %d: empty %s name", line, kind)
	}
	if name[0] >= '0' && name[0] <= '9' {
		return errors.Errorf("line %d: %s %s cannot start with a digit", line, kind, name)
	}
	if _, ok := LookupMnemonic(name); ok || strings.ToUpper(name) == reserveKeyword || asm.symbols[name] {
		return errors.Errorf("line %d: %s %s conflicts with a known symbol", line, kind, name)
	}
	asm.symbols[name] = true
	return nil
}

func (asm *assembly) reserve(fields []string, line int) error {
	if len(fields) == 0 {
		return errors.Errorf("line %d: %s must be followed by at least one variable", line, reserveKeyword)
	}

	for _, f := range fields {
		name := f
		length := 1

		if m := indexed.FindStringSubmatch(f); m != nil {
			name = m[1]
			n, err := parseNumber(m[2])
			if err != nil {
				return errors.Wrapf(err, "line %d: variable %s", line, f)
			}
			if n == 0 {
				return errors.Errorf("line %d: variable %s cannot have zero length", line, f)
			}
			length = n
		}

		if err := asm.newSymbol(name, "variable", line); err != nil {
			return err
		}

		asm.variables[name] = len(asm.prog.Variables)
		asm.prog.Variables = append(asm.prog.Variables, Variable{Name: name, Length: length})
	}

	return nil
}

func (asm *assembly) parseLine(s string, line int) error {
	if i := strings.Index(s, commentDelimiter); i >= 0 {
		s = s[:i]
	}

	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}

	if strings.ToUpper(fields[0]) == reserveKeyword {
		return asm.reserve(fields[1:], line)
	}

	if len(fields) == 1 && strings.HasSuffix(fields[0], ":") {
		name := strings.TrimSuffix(fields[0], ":")
		if err := asm.newSymbol(name, "label", line); err != nil {
			return err
		}
		asm.labels[name] = len(asm.prog.Labels)
		asm.prog.Labels = append(asm.prog.Labels, Label{Name: name, Addr: len(asm.prog.Instructions)})
		return nil
	}

	o, ok := LookupMnemonic(fields[0])
	if !ok {
		return errors.Errorf("line %d: unknown op %s", line, fields[0])
	}

	in := Instruction{Line: line, Opcode: o}
	if o.Argument {
		if len(fields) != 2 {
			return errors.Errorf("line %d: %s should have one argument, not %d arguments", line, o.Mnemonic, len(fields)-1)
		}
		in.Arg = fields[1]
	} else if len(fields) != 1 {
		return errors.Errorf("line %d: %s should have zero arguments, not %d arguments", line, o.Mnemonic, len(fields)-1)
	}

	asm.prog.Instructions = append(asm.prog.Instructions, in)
	return nil
}

// resolve the argument of an instruction. labels take precedence over
// variables which take precedence over numbers
func (asm *assembly) resolve(in *Instruction) error {
	var v int

	if i, ok := asm.labels[in.Arg]; ok {
		v = asm.prog.Labels[i].Addr
	} else if i, ok := asm.variables[strings.SplitN(in.Arg, "[", 2)[0]]; ok {
		vr := asm.prog.Variables[i]
		v = vr.Addr
		if m := indexed.FindStringSubmatch(in.Arg); m != nil {
			ix, err := parseNumber(m[2])
			if err != nil {
				return errors.Wrapf(err, "line %d: index of %s", in.Line, in.Arg)
			}
			if ix >= vr.Length {
				return errors.Errorf("line %d: cannot index variable %s beyond its length of %d", in.Line, in.Arg, vr.Length)
			}
			v += ix
		}
	} else {
		n, err := parseNumber(in.Arg)
		if err != nil {
			return errors.Wrapf(err, "line %d", in.Line)
		}
		v = n
	}

	if v < 0 || v > ArgMask {
		return errors.Errorf("line %d: argument for %s cannot fit in %d bits", in.Line, in, ArgBits)
	}
	in.Value = uint8(v)

	return nil
}

// Assemble the source read from the io.Reader.
func Assemble(r io.Reader) (*Program, error) {
	asm := &assembly{
		symbols:   make(map[string]bool),
		labels:    make(map[string]int),
		variables: make(map[string]int),
	}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if err := asm.parseLine(scanner.Text(), line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "assembler")
	}

	// variables follow the last instruction
	addr := len(asm.prog.Instructions)
	for i := range asm.prog.Variables {
		asm.prog.Variables[i].Addr = addr
		addr += asm.prog.Variables[i].Length
	}

	if addr > RAMDepth {
		return nil, errors.Errorf("program takes up %d words, which is too long for a %d word RAM", addr, RAMDepth)
	}

	for i := range asm.prog.Instructions {
		in := &asm.prog.Instructions[i]
		if in.Opcode.Argument {
			if err := asm.resolve(in); err != nil {
				return nil, err
			}
		}
		asm.prog.RAM[i] = in.Opcode.Code<<ArgBits | in.Value
	}

	logger.Logf(logger.Allow, "assembler", "%d instructions, %d labels, %d variables",
		len(asm.prog.Instructions), len(asm.prog.Labels), len(asm.prog.Variables))

	return &asm.prog, nil
}

// AssembleFile assembles the named file.
func AssembleFile(filename string) (*Program, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "assembler")
	}
	defer f.Close()

	p, err := Assemble(f)
	if err != nil {
		return nil, errors.WithMessage(err, filename)
	}
	return p, nil
}

// WriteHex writes the RAM image as one word per line in hex.
func (p *Program) WriteHex(w io.Writer) error {
	for _, v := range p.RAM {
		if _, err := fmt.Fprintf(w, "%02x\n", v); err != nil {
			return errors.Wrap(err, "assembler")
		}
	}
	return nil
}

// WriteTables writes the label, variable and instruction tables in a form
// suitable for the user.
func (p *Program) WriteTables(w io.Writer) {
	fmt.Fprintln(w, "labels table:")
	for _, l := range p.Labels {
		fmt.Fprintf(w, "%10s: %d\n", l.Name, l.Addr)
	}

	fmt.Fprintln(w, "variables table:")
	for _, v := range p.Variables {
		fmt.Fprintf(w, "%10s: addr %d length %d\n", v.Name, v.Addr, v.Length)
	}

	fmt.Fprintln(w, "instructions:")
	for i, in := range p.Instructions {
		fmt.Fprintf(w, "%3d: %-12s %02x  %s\n", i, in, p.RAM[i], Disassemble(p.RAM[i]))
	}
}
