package sevenseg

import (
	"fmt"
	"math"
)

// floatLayout is the fixed point form of a value being fitted into the
// digits right of a start index.
type floatLayout struct {
	value      float64 // absolute value
	base       float64
	scale      float64 // base^fractional
	fractional uint8
	count      float64 // value*scale, rounded half up
}

func (l *floatLayout) round() {
	// Historical rounding: add one half and truncate.
	l.count = math.Floor(l.value*l.scale + 0.5)
}

// shrink drops one fractional digit.
func (l *floatLayout) shrink() {
	l.fractional--
	l.scale /= l.base
	l.round()
}

// DrawFloat draws value in the given base (2-16) using the digits from
// index to Four, with up to fractionalDigits digits after the point.
//
// Fractional digits are dropped one at a time until the number fits. If
// not even the integer part fits, ErrInsufficientDigits is returned and
// the buffer is left untouched. A negative value takes one digit for the
// sign. Digits left of the number are blanked.
//
// It panics if base is outside 2-16.
func (d *Display) DrawFloat(index Index, value float64, fractionalDigits, base uint8) error {
	if base < 2 || base > 16 {
		panic(fmt.Sprintf("sevenseg: base %d out of range", base))
	}
	start := index.Int()
	numeric := NumDigits - start

	negative := value < 0
	if negative {
		numeric--
		value = -value
	}
	if numeric == 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		d.log.Trace("float does not fit", "index", index, "value", value)
		return fmt.Errorf("%w: %v from digit %v", ErrInsufficientDigits, value, index)
	}

	l := floatLayout{
		value:      value,
		base:       float64(base),
		scale:      math.Pow(float64(base), float64(fractionalDigits)),
		fractional: fractionalDigits,
	}
	l.round()

	limit := math.Pow(float64(base), float64(numeric))
	// Every fractional digit plus the leading zero must have a slot too.
	for l.count >= limit || int(l.fractional) >= numeric {
		if l.fractional == 0 {
			d.log.Trace("float does not fit", "index", index, "value", value, "base", base)
			return fmt.Errorf("%w: %v from digit %v", ErrInsufficientDigits, value, index)
		}
		l.shrink()
	}
	if l.fractional != fractionalDigits {
		d.log.Trace("reduced precision", "value", value, "requested", fractionalDigits, "used", l.fractional)
	}

	// pos counts digits left of Four still to be written.
	pos := NumDigits - 1
	n := uint32(l.count)
	b := uint32(base)
	if n == 0 {
		d.DrawDigit(Index(pos), 0)
		pos--
	} else {
		for i := uint8(0); n != 0 || i <= l.fractional; i++ {
			at := Index(pos)
			d.DrawDigit(at, uint8(n%b))
			if l.fractional != 0 && i == l.fractional {
				d.SetDot(at, true)
			}
			pos--
			n /= b
		}
	}

	if negative {
		d.updateBits(Index(pos), Minus)
		pos--
	}

	for ; pos >= start; pos-- {
		d.updateBits(Index(pos), Blank)
	}
	return nil
}
