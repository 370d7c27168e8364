package memory

import (
	"strings"
	"testing"
)

func TestByteRoundTrip(t *testing.T) {
	m := New(0x10000)
	m.SetByte(0x1234, 0xAB)
	if got := m.GetByte(0x1234); got != 0xAB {
		t.Errorf("GetByte = %#02x, want 0xAB", got)
	}
}

func TestWordIsLittleEndian(t *testing.T) {
	m := New(0x10000)
	m.SetWord(0x0000, 0x1234)
	if m.GetByte(0) != 0x34 || m.GetByte(1) != 0x12 {
		t.Fatalf("bytes = %#02x %#02x, want 34 12", m.GetByte(0), m.GetByte(1))
	}
	if got := m.GetWord(0); got != 0x1234 {
		t.Errorf("GetWord = %#04x, want 0x1234", got)
	}
}

func TestReadRangeIsACopy(t *testing.T) {
	m := New(16)
	m.WriteRange(0, 4, []uint8{1, 2, 3, 4})
	got := m.ReadRange(0, 4)
	got[0] = 0xFF
	if m.GetByte(0) != 1 {
		t.Error("mutating a ReadRange result must not affect the backing memory")
	}
}

func TestWriteRangeRejectsSizeMismatch(t *testing.T) {
	m := New(16)
	if err := m.WriteRange(0, 4, []uint8{1, 2, 3}); err == nil {
		t.Error("WriteRange must reject a data slice shorter than count")
	}
}

func TestWriteRangeRejectsOutOfBounds(t *testing.T) {
	m := New(16)
	if err := m.WriteRange(14, 4, []uint8{1, 2, 3, 4}); err == nil {
		t.Error("WriteRange must reject a range exceeding memory size")
	}
}

func TestDumpFormatsRowsAndASCII(t *testing.T) {
	m := New(0x100)
	m.WriteRange(0x10, 3, []uint8{'A', 'B', 1})
	out := Dump(m, 0x10, 3)
	if len(out) == 0 {
		t.Fatal("Dump produced no output")
	}
	if out[1:5] != "0010" {
		t.Errorf("Dump address column = %q, want row aligned to 0010", out[1:5])
	}
	if !strings.Contains(out, "41 42 01 ") || !strings.Contains(out, " AB.") {
		t.Errorf("Dump = %q, want hex bytes 41 42 01 and ASCII column AB.", out)
	}
}
