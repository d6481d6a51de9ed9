package sevenseg

import "fmt"

// Pattern is the set of lit segments of one digit. Bit 0 is segment a,
// bit 6 is segment g and bit 7 is the decimal point.
type Pattern uint16

const (
	// Blank lights nothing.
	Blank Pattern = 0
	// Minus lights the middle segment only.
	Minus Pattern = 0x40

	dotBit   = 7
	colonBit = 1
)

// Dot is the decimal point bit of a Pattern.
const Dot Pattern = 1 << dotBit

// Hex digit patterns (dp-g-f-e-d-c-b-a).
var fontTable = [16]Pattern{
	0b0011_1111, // 0
	0b0000_0110, // 1
	0b0101_1011, // 2
	0b0100_1111, // 3
	0b0110_0110, // 4
	0b0110_1101, // 5
	0b0111_1101, // 6
	0b0000_0111, // 7
	0b0111_1111, // 8
	0b0110_1111, // 9
	0b0111_0111, // A
	0b0111_1100, // b
	0b0011_1001, // C
	0b0101_1110, // d
	0b0111_1001, // E
	0b0111_0001, // F
}

// Font returns the pattern for a hex value. It panics if v > 15.
func Font(v uint8) Pattern {
	if int(v) >= len(fontTable) {
		panic(fmt.Sprintf("sevenseg: digit value %d out of range", v))
	}
	return fontTable[v]
}

// Glyph reverses Font. It reports the hex value shown by p, whether the
// dot is lit, and ok=false when p is not a hex digit. Minus and Blank are
// not digits.
func Glyph(p Pattern) (value uint8, dot bool, ok bool) {
	dot = p&Dot != 0
	p &^= Dot
	for v, f := range fontTable {
		if f == p {
			return uint8(v), dot, true
		}
	}
	return 0, dot, false
}

// charValue maps an ASCII hex digit to its value.
func charValue(ch rune) (uint8, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return uint8(ch - '0'), true
	case ch >= 'a' && ch <= 'f':
		return 0x0A + uint8(ch-'a'), true
	case ch >= 'A' && ch <= 'F':
		return 0x0A + uint8(ch-'A'), true
	}
	return 0, false
}

// charPattern returns the pattern drawn for ch.
func charPattern(ch rune) (Pattern, bool) {
	if ch == '-' {
		return Minus, true
	}
	v, ok := charValue(ch)
	if !ok {
		return Blank, false
	}
	return fontTable[v], true
}
