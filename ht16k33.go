package sevenseg

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/flavioheleno/sevenseg/ledbuf"
	"github.com/hashicorp/go-hclog"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"
)

const (
	// DefaultAddr is the I²C address of a backpack with no jumpers set.
	DefaultAddr uint16 = 0x70

	// RAMRows is the size of the HT16K33 display RAM.
	RAMRows = 16

	cmdOscillatorOn = 0x21
	cmdDisplayOn    = 0x81 // blink off
	cmdDisplayOff   = 0x80
	addrDisplayRAM  = 0x00
)

// Opts is the configuration for the backpack.
type Opts struct {
	Addr   uint16       // I²C address, 0x70-0x77 (default 0x70)
	Logger hclog.Logger // Optional
}

// Dev is an HT16K33 driving a 4 digit 7-segment backpack.
//
// It is the CellWriter behind a Display: drawing only changes the RAM
// copy held here and Commit sends it to the chip.
type Dev struct {
	c    conn.Conn
	addr uint16
	log  hclog.Logger

	ram  *ledbuf.RAM
	last []byte // RAM as of the last commit

	halted bool
}

var _ display.Drawer = (*Dev)(nil)

// NewI2C opens a backpack on an I²C bus, turns the oscillator and the
// display on and clears the display RAM.
//
// opts can be nil to use defaults.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultAddr
	}
	if addr < 0x70 || addr > 0x77 {
		return nil, fmt.Errorf("sevenseg: address 0x%02X out of range 0x70-0x77", addr)
	}
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	d := &Dev{
		c:    &i2c.Dev{Bus: b, Addr: addr},
		addr: addr,
		log:  logger,
		ram:  ledbuf.NewRAM(RAMRows),
		last: make([]byte, RAMRows),
	}
	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

// init starts the chip and blanks its RAM.
func (d *Dev) init() error {
	d.log.Debug("initializing", "addr", fmt.Sprintf("0x%02X", d.addr))
	for _, cmd := range []byte{cmdOscillatorOn, cmdDisplayOn} {
		if err := d.sendCommand(cmd); err != nil {
			return err
		}
	}
	return d.writeRows(0, d.last)
}

// sendCommand sends a single command byte.
func (d *Dev) sendCommand(cmd byte) error {
	if err := d.c.Tx([]byte{cmd}, nil); err != nil {
		return fmt.Errorf("sevenseg: command 0x%02X: %w", cmd, err)
	}
	return nil
}

// writeRows writes rows to the display RAM starting at row first.
func (d *Dev) writeRows(first int, rows []byte) error {
	w := make([]byte, 0, len(rows)+1)
	w = append(w, addrDisplayRAM+byte(first))
	w = append(w, rows...)
	if err := d.c.Tx(w, nil); err != nil {
		return fmt.Errorf("sevenseg: write RAM: %w", err)
	}
	return nil
}

// WriteCell implements CellWriter.
func (d *Dev) WriteCell(row, mask uint8, on bool) {
	d.ram.WriteCell(row, mask, on)
}

// RAM returns the current row bytes. The slice aliases the buffer.
func (d *Dev) RAM() []byte {
	return d.ram.Bytes()
}

// Clear turns off every LED in the buffer. Call Commit to show it.
func (d *Dev) Clear() {
	d.ram.Clear()
}

// Commit sends the rows changed since the last commit.
func (d *Dev) Commit() error {
	if d.halted {
		return errors.New("sevenseg: halted")
	}
	first, last := d.calculateDiff()
	if first > last {
		return nil
	}
	cur := d.ram.Bytes()
	d.log.Debug("commit", "first", first, "last", last)
	if err := d.writeRows(first, cur[first:last+1]); err != nil {
		return err
	}
	copy(d.last, cur)
	return nil
}

// calculateDiff returns the smallest row range that differs from the last
// commit, or (1, 0) if nothing changed.
func (d *Dev) calculateDiff() (first, last int) {
	cur := d.ram.Bytes()
	if bytes.Equal(cur, d.last) {
		return 1, 0
	}
	first, last = len(cur), -1
	for i := range cur {
		if cur[i] != d.last[i] {
			if i < first {
				first = i
			}
			last = i
		}
	}
	return first, last
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return ledbuf.BitModel
}

// Bounds returns the display RAM as an image: 8 commons by 16 rows.
func (d *Dev) Bounds() image.Rectangle {
	return d.ram.Bounds()
}

// Draw draws src into the display RAM and commits the change.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("sevenseg: halted")
	}
	dst = dst.Intersect(d.ram.Bounds())
	if dst.Empty() {
		return nil
	}
	draw.Draw(d.ram, dst, src, sp, draw.Src)
	return d.Commit()
}

// Halt turns the display off. The device must be reopened to be used
// again.
func (d *Dev) Halt() error {
	d.halted = true
	return d.sendCommand(cmdDisplayOff)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("sevenseg.Dev{0x%02X}", d.addr)
}
