package ledbuf

import (
	"image"
	"image/color"
)

// Width is the number of common lines, one bit each, in a row byte.
const Width = 8

// Bit is a single LED, lit or dark.
type Bit struct {
	On bool
}

// RGBA converts the Bit to opaque white or black.
func (c Bit) RGBA() (r, g, b, a uint32) {
	if c.On {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

// toBit converts any color.Color to Bit. A color is lit when its luminance
// is at least half scale.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit{On: y >= 0x8000}
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// RAM is the display memory: one byte per row, bit x of a row is pixel x.
type RAM struct {
	Pix  []byte          // One byte per row
	Rect image.Rectangle // Image bounds, always Width pixels wide
}

// NewRAM creates a blank RAM with the given number of rows.
func NewRAM(rows int) *RAM {
	if rows < 0 {
		panic("ledbuf: negative row count")
	}
	return &RAM{
		Pix:  make([]byte, rows),
		Rect: image.Rect(0, 0, Width, rows),
	}
}

// ColorModel returns the color model of the image.
func (p *RAM) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *RAM) Bounds() image.Rectangle {
	return p.Rect
}

// At implements the image.Image interface.
func (p *RAM) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the LED at (x, y).
func (p *RAM) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Bit{}
	}
	offset, mask := p.pixOffset(x, y)
	return Bit{On: p.Pix[offset]&mask != 0}
}

// Set sets the LED at (x, y) from any color.
func (p *RAM) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the LED at (x, y).
func (p *RAM) SetBit(x, y int, c Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if c.On {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// WriteCell sets or clears the bits of mask in row. Rows outside the RAM
// are ignored.
func (p *RAM) WriteCell(row, mask uint8, on bool) {
	if int(row) >= len(p.Pix) {
		return
	}
	if on {
		p.Pix[row] |= mask
	} else {
		p.Pix[row] &^= mask
	}
}

// Bytes returns the row bytes. The slice aliases the RAM.
func (p *RAM) Bytes() []byte {
	return p.Pix
}

// Clear turns every LED off.
func (p *RAM) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0
	}
}

// pixOffset returns the row byte and bit mask for the pixel at (x, y).
func (p *RAM) pixOffset(x, y int) (offset int, mask byte) {
	return y - p.Rect.Min.Y, 1 << uint(x-p.Rect.Min.X)
}
