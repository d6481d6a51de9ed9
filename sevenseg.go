package sevenseg

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
)

var (
	// ErrNotValidChar is returned for characters the display cannot show.
	ErrNotValidChar = errors.New("sevenseg: not a valid character")
	// ErrInsufficientDigits is returned when a value does not fit in the
	// digits available.
	ErrInsufficientDigits = errors.New("sevenseg: insufficient digits")
)

// CellWriter toggles bits of the display RAM. It only touches memory; the
// buffer reaches the hardware when the owner commits it.
type CellWriter interface {
	WriteCell(row, mask uint8, on bool)
}

// Committer pushes a display buffer to the device.
type Committer interface {
	Commit() error
}

// Display draws digits, dots and the colon of a 4 digit backpack into a
// CellWriter. It never commits. It is not safe for concurrent use.
type Display struct {
	w   CellWriter
	log hclog.Logger
}

// New returns a Display drawing into w. logger may be nil.
func New(w CellWriter, logger hclog.Logger) *Display {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Display{w: w, log: logger}
}

// setBit writes a single bit of a physical slot.
func (d *Display) setBit(slot, bit uint8, on bool) {
	a := Locate(slot, bit)
	d.w.WriteCell(a.Row, a.Common, on)
}

// updateBits rewrites all 16 bits of a digit, low bit first.
func (d *Display) updateBits(index Index, p Pattern) {
	slot := index.Slot()
	for bit := uint8(0); bit < PatternBits; bit++ {
		d.setBit(slot, bit, (p>>bit)&1 == 1)
	}
}

// DrawDigit draws a hex value (0x0-0xF) at index. The dot of that digit
// is turned off. It panics if value > 15.
func (d *Display) DrawDigit(index Index, value uint8) {
	d.updateBits(index, Font(value))
}

// SetDot turns the decimal point of the digit at index on or off.
func (d *Display) SetDot(index Index, on bool) {
	d.setBit(index.Slot(), dotBit, on)
}

// SetColon turns the colon on or off.
func (d *Display) SetColon(on bool) {
	d.setBit(colonSlot, colonBit, on)
}

// DrawChar draws an ASCII hex digit (either case) or '-' at index.
// Any other character returns ErrNotValidChar and leaves the buffer as is.
func (d *Display) DrawChar(index Index, ch rune) error {
	p, ok := charPattern(ch)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotValidChar, ch)
	}
	d.updateBits(index, p)
	return nil
}

// DrawString writes s left to right starting at One and blanks what is
// left. Besides the DrawChar set it accepts ' ' for an empty digit, '.'
// for the dot of the previous digit and ':' for the colon. Nothing is
// written if s holds an invalid character or more than four digits.
func (d *Display) DrawString(s string) error {
	var (
		glyphs [NumDigits]Pattern
		n      int
		colon  bool
		dotted = true
	)
	for _, ch := range s {
		switch ch {
		case ':':
			colon = true
			continue
		case '.':
			if !dotted {
				glyphs[n-1] |= Dot
				dotted = true
				continue
			}
			if n == NumDigits {
				return fmt.Errorf("%w: %q needs more than %d digits", ErrInsufficientDigits, s, NumDigits)
			}
			glyphs[n] = Dot
			n++
			continue
		}
		p, ok := charPattern(ch)
		if !ok && ch != ' ' {
			return fmt.Errorf("%w: %q in %q", ErrNotValidChar, ch, s)
		}
		if n == NumDigits {
			return fmt.Errorf("%w: %q needs more than %d digits", ErrInsufficientDigits, s, NumDigits)
		}
		glyphs[n] = p
		n++
		dotted = false
	}
	for i, p := range glyphs {
		d.updateBits(Index(i), p)
	}
	d.SetColon(colon)
	return nil
}

// Clear blanks every digit and turns the colon off.
func (d *Display) Clear() {
	for i := One; i <= Four; i++ {
		d.updateBits(i, Blank)
	}
	d.SetColon(false)
}
