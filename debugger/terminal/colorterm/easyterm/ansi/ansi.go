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

// Package ansi defines ANSI control codes for styles, colours and cursor
// placement.
package ansi

import (
	"fmt"
	"strings"
)

// ansi color.
var colours = map[string]int{
	"BLACK":   0,
	"RED":     1,
	"GREEN":   2,
	"YELLOW":  3,
	"BLUE":    4,
	"MAGENTA": 5,
	"CYAN":    6,
	"WHITE":   7,
	"NORMAL":  9,
}

// ansi target.
const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

// ansi attribute.
var attributes = map[string]int{
	"BOLD":      1,
	"UNDERLINE": 4,
	"INVERSE":   7,
	"STRIKE":    9,
}

// Pens is the table of colors to be used for text.
var Pens map[string]string

// DimPens is the table of pastel colors to be used for text.
var DimPens map[string]string

// NormalPen is the CSI sequence for regular text.
var NormalPen string

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)

	NormalPen = mustBuild("", "", "", false, false)

	for _, c := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		Pens[c] = mustBuild(c, "normal", "", true, false)
		DimPens[c] = mustBuild(c, "normal", "", false, false)
	}
}

func mustBuild(pen, paper, attribute string, brightPen, brightPaper bool) string {
	s, err := ColorBuild(pen, paper, attribute, brightPen, brightPaper)
	if err != nil {
		panic(err)
	}
	return s
}

// ColorBuild creates the ANSI sequence to create the pen with the correct
// foreground/background color and attribute.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	parts := make([]string, 0, 3)

	if pen != "" {
		c, ok := colours[strings.ToUpper(pen)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI pen (%s)", pen)
		}
		t := targetPen
		if brightPen {
			t = targetBrightPen
		}
		parts = append(parts, fmt.Sprintf("%d%d", t, c))
	}

	if paper != "" {
		c, ok := colours[strings.ToUpper(paper)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI paper (%s)", paper)
		}
		t := targetPaper
		if brightPaper {
			t = targetBrightPaper
		}
		parts = append(parts, fmt.Sprintf("%d%d", t, c))
	}

	if attribute != "" && strings.ToUpper(attribute) != "NORMAL" {
		a, ok := attributes[strings.ToUpper(attribute)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
		}
		parts = append(parts, fmt.Sprintf("%d", a))
	}

	return fmt.Sprintf("\033[%sm", strings.Join(parts, ";")), nil
}

// ClearScreen is the CSI sequence to clear the screen and to move the cursor
// to the home position.
const ClearScreen = "\033[2J\033[H"

// AlternateScreen and NormalScreen are the sequences to switch to and from
// the alternate screen buffer.
const (
	AlternateScreen = "\033[?1049h"
	NormalScreen    = "\033[?1049l"
)

// HideCursor and ShowCursor control the visibility of the cursor.
const (
	HideCursor = "\033[?25l"
	ShowCursor = "\033[?25h"
)

// CursorMoveTo is the CSI sequence to move the cursor to the zero-indexed
// row and column.
func CursorMoveTo(row, col int) string {
	return fmt.Sprintf("\033[%d;%dH", row+1, col+1)
}
