// Package ledbuf provides the display RAM of an HT16K33 LED driver as a
// 1-bit image.
//
// The HT16K33 holds one byte per row line. Each bit of that byte drives one
// common line, so a row byte is one horizontal line of an 8 pixel wide
// image. For 7-segment backpacks a row is half of a digit and each bit is
// a segment:
//
//	Row:    0         1         2  ...
//	Bits:   dp-g..a   unused    dp-g..a
//	        (digit 1)           (digit 2)
//
// This package provides:
//
// - Bit: A color type that is either lit or dark
// - BitModel: A color model converting standard Go colors to Bit
// - RAM: A draw.Image over the row bytes, which also accepts single cell
// writes through WriteCell
//
// Example usage:
//
//	// Create the 16 row RAM of an HT16K33
//	ram := ledbuf.NewRAM(16)
//
//	// Light bit 1 of row 4 (the colon of a 7-segment backpack)
//	ram.WriteCell(4, 0x02, true)
//
//	// Use with standard Go image operations
//	draw.Draw(ram, ram.Bounds(), image.NewUniform(ledbuf.Bit{On: true}), image.Point{}, draw.Src)
package ledbuf
