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
	"fmt"
	"strings"
)

// Size of the SAP-1 RAM.
const (
	RAMDepth = 16
	ArgBits  = 4
	ArgMask  = (1 << ArgBits) - 1
)

// Opcode describes one instruction of the SAP-1.
type Opcode struct {
	Mnemonic string
	Code     uint8
	Argument bool
}

// Opcodes is the instruction table of the SAP-1. Codes 0xc and 0xd are
// unused.
var Opcodes = []Opcode{
	{Mnemonic: "NOP", Code: 0x0},
	{Mnemonic: "LDA", Code: 0x1, Argument: true},
	{Mnemonic: "ADD", Code: 0x2, Argument: true},
	{Mnemonic: "SUB", Code: 0x3, Argument: true},
	{Mnemonic: "LDI", Code: 0x4, Argument: true},
	{Mnemonic: "ADDI", Code: 0x5, Argument: true},
	{Mnemonic: "SUBI", Code: 0x6, Argument: true},
	{Mnemonic: "STA", Code: 0x7, Argument: true},
	{Mnemonic: "JMP", Code: 0x8, Argument: true},
	{Mnemonic: "JIZ", Code: 0x9, Argument: true},
	{Mnemonic: "JIC", Code: 0xa, Argument: true},
	{Mnemonic: "JIO", Code: 0xb, Argument: true},
	{Mnemonic: "OUT", Code: 0xe},
	{Mnemonic: "HLT", Code: 0xf},
}

var byMnemonic map[string]Opcode
var byCode [1 << ArgBits]*Opcode

func init() {
	byMnemonic = make(map[string]Opcode)
	for i := range Opcodes {
		o := &Opcodes[i]
		byMnemonic[o.Mnemonic] = *o
		byCode[o.Code] = o
	}
}

// LookupMnemonic returns the opcode for the mnemonic. The mnemonic is not
// case sensitive.
func LookupMnemonic(mnemonic string) (Opcode, bool) {
	o, ok := byMnemonic[strings.ToUpper(mnemonic)]
	return o, ok
}

// Disassemble a single word of RAM.
func Disassemble(word uint8) string {
	o := byCode[word>>ArgBits]
	if o == nil {
		return "???"
	}
	if o.Argument {
		return fmt.Sprintf("%s %d", o.Mnemonic, word&ArgMask)
	}
	return o.Mnemonic
}
