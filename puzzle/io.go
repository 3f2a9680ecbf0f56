// collapse.go - a wavefunction-collapse Sudoku solver and toolkit.
// Copyright (C) 2026 the collapse.go authors.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

/*

Print forms of tile values

*/

var (
	valueStrings = []string{
		"_", "1", "2", "3", "4", "5", "6", "7", "8", "9",
		"A", "B", "C", "D", "E", "F", "G", "H", "I", "J",
		"K", "L", "M", "N", "O", "P", "Q", "R", "S", "T",
		"U", "V", "W", "X", "Y", "Z",
	}
	nonValueString = "?"
	bigValueString = "!"
)

func vstr(i int) string {
	if i < 0 {
		return nonValueString
	}
	if i < len(valueStrings) {
		return valueStrings[i]
	}
	return bigValueString
}

/*

Pretty-printed boards in strings

*/

// String gives a fixed-width grid view of the board, with
// box-boundary separators.  Uncommitted tiles show as "_".
func (b *Board) String() string {
	return b.ValuesString(false)
}

// ValuesString returns a pretty-printed grid of the board's
// values.  If showDomains is specified, uncommitted tiles with a
// single remaining candidate show it prefixed with "=", and other
// uncommitted tiles show their entropy prefixed with "#".
func (b *Board) ValuesString(showDomains bool) string {
	if b == nil {
		return ""
	}
	slen, blen := b.mapping.sidelen, b.mapping.boxlen
	var sb strings.Builder
	sepline := func() {
		for i := 0; i < slen/blen; i++ {
			sb.WriteString("+")
			sb.WriteString(strings.Repeat("-", 3*blen))
		}
		sb.WriteString("+\n")
	}
	for y := 0; y < slen; y++ {
		if y%blen == 0 {
			sepline()
		}
		for x := 0; x < slen; x++ {
			if x%blen == 0 {
				sb.WriteString("|")
			}
			t := b.tiles[b.mapping.index(x, y)]
			switch {
			case t.aval != 0:
				fmt.Fprintf(&sb, " %s ", vstr(t.aval))
			case showDomains && len(t.pvals) == 1:
				fmt.Fprintf(&sb, "=%s ", vstr(t.pvals[0]))
			case showDomains:
				fmt.Fprintf(&sb, "#%d ", len(t.pvals))
			default:
				sb.WriteString(" _ ")
			}
		}
		sb.WriteString("|\n")
	}
	sepline()
	return sb.String()
}

/*

Parsing puzzle text

Two forms are accepted.  Whitespace-separated tokens, one per
tile in row-major order, where each token is a number or one of
"." / "_" / "0" for an uncommitted tile; this is the only form
that can express boards larger than 35x35.  Or one character per
tile, using digits, letters (A=10, B=11, ...), and "." / "_" /
"0" for uncommitted tiles; this form may be broken across
whitespace, typically one row per line.

*/

// ParseValues parses puzzle text into a row-major value slice
// suitable for NewFromValues.  Line comments starting with "#"
// are ignored.
func ParseValues(text string) ([]int, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		lines = append(lines, line)
	}
	text = strings.Join(lines, "\n")

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, parseError(text, "no puzzle values found")
	}
	if len(fields) == 1 && len(fields[0]) > 1 {
		return parseRunes(fields[0])
	}
	values := make([]int, len(fields))
	for i, f := range fields {
		switch f {
		case ".", "_", "0":
			values[i] = 0
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 {
			// not token form; reread the whole text one rune per
			// tile, as in "53..7.... 6..195... ..."
			return parseRunes(strings.Join(fields, ""))
		}
		values[i] = v
	}
	return values, nil
}

// parseRunes parses the one-character-per-tile form.
func parseRunes(s string) ([]int, error) {
	values := make([]int, 0, len(s))
	for _, r := range s {
		switch {
		case r == '.' || r == '_' || r == '0':
			values = append(values, 0)
		case r >= '1' && r <= '9':
			values = append(values, int(r-'0'))
		case r >= 'A' && r <= 'Z':
			values = append(values, int(r-'A')+10)
		case r >= 'a' && r <= 'z':
			values = append(values, int(r-'a')+10)
		default:
			return nil, parseError(string(r), "not a value or empty-tile marker")
		}
	}
	return values, nil
}

// parseError builds the Error for malformed puzzle text.
func parseError(tok, reason string) Error {
	return Error{
		Scope:     ArgumentScope,
		Structure: AttributeValueStructure,
		Attribute: ValueAttribute,
		Condition: GeneralCondition,
		Values:    ErrorData{tok, reason},
	}
}
