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

// Package assembler converts SAP-1 assembly into a RAM image.
//
// Each line of the source contains one of: an instruction, a label or a
// variable reservation. Anything following a semi-colon is a comment.
//
//	; count down from three
//	RESERVE n
//	        LDI 3
//	LOOP:
//	        OUT
//	        SUBI 1
//	        STA n
//	        JIZ END
//	        JMP LOOP
//	END:
//	        HLT
//
// Labels evaluate to the address of the instruction that follows them.
// Variables are allocated, zero initialised, in the words following the last
// instruction. A variable can reserve more than one word with the x[n] syntax
// and is then indexed in the same way. Out of range indexes are rejected.
//
// Numbers can be written in decimal, in hex with a 0x (or x) prefix or in
// binary with a 0b (or b) prefix. Every instruction argument must fit in four
// bits and the entire program, variables included, must fit in the sixteen
// words of RAM.
//
// Mnemonics are not case sensitive. Labels and variables are case sensitive,
// cannot start with a digit and cannot have the same name as any other
// symbol.
package assembler
