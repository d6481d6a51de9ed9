// Package sevenseg draws numbers and hex characters on a 4 digit
// 7-segment LED backpack driven by an HT16K33.
//
// The package is split in two. Display turns intents such as "show 7 on
// the second digit" or "show -3.14" into single bit writes through the
// CellWriter interface. Dev is a CellWriter holding the HT16K33 display
// RAM, and sends it over I²C when Commit is called. Display never
// commits, so several updates can be composed before one bus transfer.
//
// # Display Layout
//
// The backpack wires five slots of two RAM rows each. The colon owns
// slot 2, so the digits right of it are shifted by one:
//
//	Digit:  One   Two   (colon)  Three   Four
//	Slot:   0     1     2        3       4
//	Rows:   0-1   2-3   4-5      6-7     8-9
//
// Within a slot bit 0-6 are segments a-g and bit 7 is the decimal point.
// The colon is bit 1 of slot 2.
//
// # Hardware Connection
//
//	Backpack Pin → System Pin
//	GND          → GND
//	VCC          → 3.3V or 5V
//	SDA          → I²C Data
//	SCL          → I²C Clock
//
// The address is 0x70 by default and can be moved up to 0x77 with the
// solder jumpers on the back.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"github.com/flavioheleno/sevenseg"
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open the I²C bus
//		bus, _ := i2creg.Open("")
//		defer bus.Close()
//
//		// Create device and display
//		dev, _ := sevenseg.NewI2C(bus, nil)
//		defer dev.Halt()
//		d := sevenseg.New(dev, nil)
//
//		// Draw -3.14 using all four digits
//		d.DrawFloat(sevenseg.One, -3.14, 2, 10)
//
//		// Send the buffer to the backpack
//		dev.Commit()
//	}
//
// # Drawing
//
// DrawDigit draws a hex value, DrawChar an ASCII hex digit or '-', and
// DrawString a short string such as "12:30" or "1.5". SetDot and SetColon
// toggle single LEDs. Drawing a digit rewrites all 16 bits of its slot,
// which turns its dot off; set the dot after the digit.
//
// # Floating Point Values
//
// DrawFloat right aligns a value in any base from 2 to 16, starting at a
// given digit:
//
//	d.DrawFloat(sevenseg.One, 99.9, 2, 10)   // 99.90
//	d.DrawFloat(sevenseg.One, -99.9, 2, 10)  // -99.9
//	d.DrawFloat(sevenseg.Two, 0xBEE, 0, 16)  //  bEE
//
// Fractional digits are dropped until the value fits. When even the
// integer part does not fit ErrInsufficientDigits is returned and nothing
// is drawn.
//
// # Errors
//
// ErrNotValidChar and ErrInsufficientDigits are returned before anything
// is written, so a failed call leaves the buffer unchanged. Passing an
// Index outside One-Four, a digit above 0xF or a base outside 2-16 is a
// programming error and panics.
//
// # Concurrency
//
// Neither Display nor Dev lock. Callers sharing a display across
// goroutines must serialize access.
//
// # Datasheet
//
// https://www.holtek.com/webapi/116711/HT16K33Av102.pdf
//
// # Compatibility with periph.io
//
// Dev implements the display.Drawer interface from periph.io, exposing the
// display RAM as an 8x16 1-bit image (see package ledbuf):
// https://pkg.go.dev/periph.io/x/conn/v3/display
package sevenseg
