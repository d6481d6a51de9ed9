package sevenseg

import "fmt"

// Index selects one of the four digits on the backpack, left to right.
type Index uint8

const (
	One Index = iota
	Two
	Three
	Four
)

// NumDigits is the number of digits on the display.
const NumDigits = 4

// colonSlot is the physical slot wired to the colon, between Two and Three.
const colonSlot = 2

// IndexFrom converts 0-3 to an Index.
// It panics for any other value; out of range indices are a caller bug.
func IndexFrom(v int) Index {
	if v < 0 || v >= NumDigits {
		panic(fmt.Sprintf("sevenseg: invalid index %d", v))
	}
	return Index(v)
}

// Int returns the position of the digit, 0 to 3.
func (i Index) Int() int {
	i.check()
	return int(i)
}

// Slot returns the physical slot of the digit. Digits right of the colon
// are shifted by one because the colon owns slot 2.
func (i Index) Slot() uint8 {
	i.check()
	if i > Two {
		return uint8(i) + 1
	}
	return uint8(i)
}

// String implements fmt.Stringer.
func (i Index) String() string {
	switch i {
	case One:
		return "One"
	case Two:
		return "Two"
	case Three:
		return "Three"
	case Four:
		return "Four"
	}
	return fmt.Sprintf("Index(%d)", uint8(i))
}

func (i Index) check() {
	if i >= NumDigits {
		panic(fmt.Sprintf("sevenseg: invalid index %d", uint8(i)))
	}
}
