package sevenseg

import (
	"bytes"
	"errors"
	"testing"

	"github.com/flavioheleno/sevenseg/ledbuf"
)

// cell is one WriteCell call.
type cell struct {
	row, mask uint8
	on        bool
}

// recorder is a CellWriter that keeps every call.
type recorder struct {
	calls []cell
}

func (r *recorder) WriteCell(row, mask uint8, on bool) {
	r.calls = append(r.calls, cell{row, mask, on})
}

func newRAMDisplay() (*Display, *ledbuf.RAM) {
	ram := ledbuf.NewRAM(RAMRows)
	return New(ram, nil), ram
}

func TestDrawDigitFont(t *testing.T) {
	want := [16]byte{
		0b0011_1111, 0b0000_0110, 0b0101_1011, 0b0100_1111,
		0b0110_0110, 0b0110_1101, 0b0111_1101, 0b0000_0111,
		0b0111_1111, 0b0110_1111, 0b0111_0111, 0b0111_1100,
		0b0011_1001, 0b0101_1110, 0b0111_1001, 0b0111_0001,
	}
	d, ram := newRAMDisplay()
	for v := range want {
		d.DrawDigit(One, uint8(v))
		if ram.Pix[0] != want[v] {
			t.Errorf("DrawDigit(One, 0x%X): row 0 = %08b, want %08b", v, ram.Pix[0], want[v])
		}
		if ram.Pix[1] != 0 {
			t.Errorf("DrawDigit(One, 0x%X): row 1 = %08b, want 0", v, ram.Pix[1])
		}
	}
}

func TestDrawDigitPanicsOnLargeValue(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("DrawDigit(One, 16) did not panic")
		}
	}()
	d, _ := newRAMDisplay()
	d.DrawDigit(One, 16)
}

func TestDrawDigitWritesAllBits(t *testing.T) {
	tests := []struct {
		index Index
		lo    uint8
	}{
		{One, 0},
		{Two, 2},
		{Three, 6},
		{Four, 8},
	}

	for _, tt := range tests {
		t.Run(tt.index.String(), func(t *testing.T) {
			r := &recorder{}
			New(r, nil).DrawDigit(tt.index, 8)

			if len(r.calls) != PatternBits {
				t.Fatalf("got %d WriteCell calls, want %d", len(r.calls), PatternBits)
			}
			seen := map[cell]bool{}
			for i, c := range r.calls {
				wantRow := tt.lo
				if i >= 8 {
					wantRow++
				}
				if c.row != wantRow || c.mask != 1<<(i%8) {
					t.Errorf("call %d = row %d mask %08b, want row %d mask %08b", i, c.row, c.mask, wantRow, 1<<(i%8))
				}
				if wantOn := i < 7; c.on != wantOn {
					t.Errorf("call %d on = %v, want %v", i, c.on, wantOn)
				}
				key := cell{c.row, c.mask, false}
				if seen[key] {
					t.Errorf("call %d addresses row %d mask %08b twice", i, c.row, c.mask)
				}
				seen[key] = true
			}
		})
	}
}

func TestDrawDigitIdempotent(t *testing.T) {
	d, ram := newRAMDisplay()
	d.DrawDigit(Three, 0xC)
	once := append([]byte(nil), ram.Bytes()...)
	d.DrawDigit(Three, 0xC)
	if !bytes.Equal(ram.Bytes(), once) {
		t.Errorf("second DrawDigit changed RAM: %x, want %x", ram.Bytes(), once)
	}
}

func TestDrawDigitLeavesOtherDigits(t *testing.T) {
	d, ram := newRAMDisplay()
	d.DrawDigit(One, 1)
	d.DrawDigit(Two, 2)
	d.SetColon(true)
	d.DrawDigit(Three, 3)
	d.DrawDigit(Four, 4)

	want := [RAMRows]byte{0b0000_0110, 0, 0b0101_1011, 0, 0b0000_0010, 0, 0b0100_1111, 0, 0b0110_0110}
	if !bytes.Equal(ram.Bytes(), want[:]) {
		t.Errorf("RAM = %x, want %x", ram.Bytes(), want[:])
	}
}

func TestSetDot(t *testing.T) {
	d, ram := newRAMDisplay()

	// Dots are cumulative and skip the colon rows.
	steps := []struct {
		index Index
		want  [10]byte
	}{
		{One, [10]byte{0x80}},
		{Two, [10]byte{0x80, 0, 0x80}},
		{Three, [10]byte{0x80, 0, 0x80, 0, 0, 0, 0x80}},
		{Four, [10]byte{0x80, 0, 0x80, 0, 0, 0, 0x80, 0, 0x80}},
	}
	for _, s := range steps {
		d.SetDot(s.index, true)
		if !bytes.Equal(ram.Pix[:10], s.want[:]) {
			t.Errorf("after SetDot(%v), RAM = %x, want %x", s.index, ram.Pix[:10], s.want[:])
		}
	}

	d.SetDot(Two, false)
	if ram.Pix[2] != 0 {
		t.Errorf("after SetDot(Two, false), row 2 = %08b, want 0", ram.Pix[2])
	}
}

func TestDotIndependentOfDigit(t *testing.T) {
	d, ram := newRAMDisplay()

	d.SetDot(Two, true)
	d.DrawDigit(Two, 5)
	if ram.Pix[2] != 0b0110_1101 {
		t.Errorf("digit after dot: row 2 = %08b, want %08b", ram.Pix[2], 0b0110_1101)
	}
	d.SetDot(Two, true)
	if ram.Pix[2] != 0b1110_1101 {
		t.Errorf("dot after digit: row 2 = %08b, want %08b", ram.Pix[2], 0b1110_1101)
	}
	d.SetDot(Two, false)
	if ram.Pix[2] != 0b0110_1101 {
		t.Errorf("dot off: row 2 = %08b, want %08b", ram.Pix[2], 0b0110_1101)
	}
}

func TestSetColon(t *testing.T) {
	r := &recorder{}
	d := New(r, nil)
	d.SetColon(true)
	d.SetColon(false)

	want := []cell{{4, 0b10, true}, {4, 0b10, false}}
	if len(r.calls) != len(want) {
		t.Fatalf("got %d calls, want %d", len(r.calls), len(want))
	}
	for i := range want {
		if r.calls[i] != want[i] {
			t.Errorf("call %d = %+v, want %+v", i, r.calls[i], want[i])
		}
	}
}

func TestColonSurvivesDigits(t *testing.T) {
	d, ram := newRAMDisplay()
	d.SetColon(true)
	for i := One; i <= Four; i++ {
		d.DrawDigit(i, 8)
		d.SetDot(i, true)
	}
	if ram.Pix[4] != 0b10 || ram.Pix[5] != 0 {
		t.Errorf("colon rows = %08b %08b, want 00000010 00000000", ram.Pix[4], ram.Pix[5])
	}
}

func TestDrawChar(t *testing.T) {
	tests := []struct {
		ch   rune
		want byte
	}{
		{'A', 0b0111_0111},
		{'a', 0b0111_0111},
		{'B', 0b0111_1100},
		{'b', 0b0111_1100},
		{'f', 0b0111_0001},
		{'0', 0b0011_1111},
		{'9', 0b0110_1111},
		{'-', 0b0100_0000},
	}

	for _, tt := range tests {
		t.Run(string(tt.ch), func(t *testing.T) {
			d, ram := newRAMDisplay()
			if err := d.DrawChar(One, tt.ch); err != nil {
				t.Fatalf("DrawChar(%q) = %v", tt.ch, err)
			}
			if ram.Pix[0] != tt.want {
				t.Errorf("DrawChar(%q): row 0 = %08b, want %08b", tt.ch, ram.Pix[0], tt.want)
			}
		})
	}
}

func TestDrawCharCaseInsensitive(t *testing.T) {
	for lower := 'a'; lower <= 'f'; lower++ {
		upper := lower - 'a' + 'A'
		dl, rl := newRAMDisplay()
		du, ru := newRAMDisplay()
		if err := dl.DrawChar(Three, lower); err != nil {
			t.Fatal(err)
		}
		if err := du.DrawChar(Three, upper); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(rl.Bytes(), ru.Bytes()) {
			t.Errorf("DrawChar(%q) = %x, DrawChar(%q) = %x", lower, rl.Bytes(), upper, ru.Bytes())
		}
	}
}

func TestDrawCharInvalid(t *testing.T) {
	invalid := []rune{'g', 'h', 'z', 'G', 'Z', '!', ' ', '.', ':', '+', '/', 0, 'é', '٣'}
	for _, ch := range invalid {
		r := &recorder{}
		err := New(r, nil).DrawChar(Two, ch)
		if !errors.Is(err, ErrNotValidChar) {
			t.Errorf("DrawChar(%q) = %v, want ErrNotValidChar", ch, err)
		}
		if len(r.calls) != 0 {
			t.Errorf("DrawChar(%q) wrote %d cells, want none", ch, len(r.calls))
		}
	}
}

func TestDrawString(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want [RAMRows]byte
	}{
		{"digits", "1234", [RAMRows]byte{0x06, 0, 0x5B, 0, 0, 0, 0x4F, 0, 0x66}},
		{"short is left aligned", "7", [RAMRows]byte{0x07}},
		{"dot", "1.5", [RAMRows]byte{0x86, 0, 0x6D}},
		{"leading dot", ".5", [RAMRows]byte{0x80, 0, 0x6D}},
		{"double dot", "1..", [RAMRows]byte{0x86, 0, 0x80}},
		{"colon", "12:30", [RAMRows]byte{0x06, 0, 0x5B, 0, 0x02, 0, 0x4F, 0, 0x3F}},
		{"space and minus", " -1", [RAMRows]byte{0, 0, 0x40, 0, 0, 0, 0x06}},
		{"four dots", "....", [RAMRows]byte{0x80, 0, 0x80, 0, 0, 0, 0x80, 0, 0x80}},
		{"empty", "", [RAMRows]byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ram := newRAMDisplay()
			if err := d.DrawString(tt.s); err != nil {
				t.Fatalf("DrawString(%q) = %v", tt.s, err)
			}
			if !bytes.Equal(ram.Bytes(), tt.want[:]) {
				t.Errorf("DrawString(%q): RAM = %x, want %x", tt.s, ram.Bytes(), tt.want[:])
			}
		})
	}
}

func TestDrawStringOverwrites(t *testing.T) {
	d, ram := newRAMDisplay()
	if err := d.DrawString("88:88"); err != nil {
		t.Fatal(err)
	}
	if err := d.DrawString("1"); err != nil {
		t.Fatal(err)
	}
	want := [RAMRows]byte{0x06}
	if !bytes.Equal(ram.Bytes(), want[:]) {
		t.Errorf("RAM = %x, want %x", ram.Bytes(), want[:])
	}
}

func TestDrawStringErrors(t *testing.T) {
	tests := []struct {
		s    string
		want error
	}{
		{"12345", ErrInsufficientDigits},
		{"1.2.3.4.5", ErrInsufficientDigits},
		{".....", ErrInsufficientDigits},
		{"12g4", ErrNotValidChar},
		{"hi", ErrNotValidChar},
		{"1,5", ErrNotValidChar},
	}

	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			r := &recorder{}
			err := New(r, nil).DrawString(tt.s)
			if !errors.Is(err, tt.want) {
				t.Errorf("DrawString(%q) = %v, want %v", tt.s, err, tt.want)
			}
			if len(r.calls) != 0 {
				t.Errorf("DrawString(%q) wrote %d cells, want none", tt.s, len(r.calls))
			}
		})
	}
}

func TestClear(t *testing.T) {
	d, ram := newRAMDisplay()
	if err := d.DrawString("8.8.:8.8."); err != nil {
		t.Fatal(err)
	}
	d.Clear()
	for i, b := range ram.Bytes() {
		if b != 0 {
			t.Errorf("row %d = %08b after Clear, want 0", i, b)
		}
	}
}
