// Package termseg renders the display RAM of a 4 digit 7-segment backpack
// as text, three lines high.
//
// This is -3.14:
//
//	     _
//	 _   _|     | |_|
//	     _|.    |   |
//
// Each digit takes three columns plus one for its decimal point. The colon
// has its own column between the second and third digit. Trailing spaces
// are trimmed.
package termseg

import (
	"strings"

	"github.com/flavioheleno/sevenseg"
)

// Segment bits, a to g.
const (
	segA = 1 << iota
	segB
	segC
	segD
	segE
	segF
	segG
)

// Render draws ram as three newline separated lines.
func Render(ram []byte) string {
	digits, colon := sevenseg.ReadPatterns(ram)

	var lines [3]strings.Builder
	for i, p := range digits {
		if i == 2 {
			writeColon(&lines, colon)
		}
		writeDigit(&lines, p)
	}
	out := make([]string, len(lines))
	for i := range lines {
		out[i] = strings.TrimRight(lines[i].String(), " ")
	}
	return strings.Join(out, "\n")
}

func writeDigit(lines *[3]strings.Builder, p sevenseg.Pattern) {
	lines[0].WriteString(pick(p&segA != 0, " _ ", "   "))
	lines[0].WriteByte(' ')

	lines[1].WriteString(pick(p&segF != 0, "|", " "))
	lines[1].WriteString(pick(p&segG != 0, "_", " "))
	lines[1].WriteString(pick(p&segB != 0, "|", " "))
	lines[1].WriteByte(' ')

	lines[2].WriteString(pick(p&segE != 0, "|", " "))
	lines[2].WriteString(pick(p&segD != 0, "_", " "))
	lines[2].WriteString(pick(p&segC != 0, "|", " "))
	lines[2].WriteString(pick(p&sevenseg.Dot != 0, ".", " "))
}

func writeColon(lines *[3]strings.Builder, on bool) {
	lines[0].WriteString("  ")
	lines[1].WriteString(pick(on, ". ", "  "))
	lines[2].WriteString(pick(on, ". ", "  "))
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
