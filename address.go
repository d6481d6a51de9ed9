package sevenseg

// Address is one cell of the display RAM: a row and the mask of the bit
// inside it.
type Address struct {
	Row    uint8
	Common uint8
}

// PatternBits is the number of bits addressed per slot.
const PatternBits = 16

// Locate maps a bit of a physical slot to its RAM cell. Each slot owns two
// rows; bits 0-7 live in the first, bits 8-15 in the second.
// bit must be below PatternBits.
func Locate(slot, bit uint8) Address {
	row := slot * 2
	if bit >= 8 {
		row++
	}
	return Address{Row: row, Common: 1 << (bit % 8)}
}

// ReadPatterns decodes the four digits and the colon from a display RAM
// image laid out like the backpack. Missing rows read as zero.
func ReadPatterns(ram []byte) (digits [NumDigits]Pattern, colon bool) {
	row := func(r uint8) Pattern {
		if int(r) < len(ram) {
			return Pattern(ram[r])
		}
		return 0
	}
	for i := range digits {
		lo := Locate(Index(i).Slot(), 0)
		hi := Locate(Index(i).Slot(), 8)
		digits[i] = row(lo.Row) | row(hi.Row)<<8
	}
	c := Locate(colonSlot, colonBit)
	colon = row(c.Row)&Pattern(c.Common) != 0
	return digits, colon
}
