package cpu

import "testing"

func TestNewRegistersInitialState(t *testing.T) {
	r := NewRegisters(0x0100)
	if r.AF() != 0xFFFF {
		t.Errorf("AF = %#04x, want 0xFFFF", r.AF())
	}
	if r.BC() != 0x00FF {
		t.Errorf("BC = %#04x, want 0x00FF", r.BC())
	}
	if r.DE() != 0x03FF {
		t.Errorf("DE = %#04x, want 0x03FF", r.DE())
	}
	if r.HL() != 0x0000 {
		t.Errorf("HL = %#04x, want 0x0000", r.HL())
	}
	if r.SP() != 0xF800 {
		t.Errorf("SP = %#04x, want 0xF800", r.SP())
	}
	if r.PC() != 0x0100 {
		t.Errorf("PC = %#04x, want 0x0100", r.PC())
	}
	if r.IX() != 0 || r.IY() != 0 || r.I() != 0 || r.R() != 0 {
		t.Error("IX, IY, I, R must start at zero")
	}
}

func TestExchangeIsInvolution(t *testing.T) {
	r := NewRegisters(0)
	r.SetBC(0x1234)
	r.SetDE(0x5678)
	r.SetHL(0x9ABC)
	before := r.main

	r.Exchange()
	if r.main.bc == before.bc {
		t.Error("EXX must swap BC into the alternate set")
	}
	r.Exchange()
	if r.main != before {
		t.Errorf("EXX twice must restore main set: got %+v, want %+v", r.main, before)
	}
}

func TestExchangeAFIsInvolution(t *testing.T) {
	r := NewRegisters(0)
	before := r.AF()
	r.SetAF(0xABCD)
	r.ExchangeAF()
	if r.AF() == 0xABCD {
		t.Error("EX AF,AF' must swap in the alternate AF")
	}
	r.ExchangeAF()
	if r.AF() != 0xABCD {
		t.Errorf("EX AF,AF' twice must restore main AF: got %#04x, want 0xABCD", r.AF())
	}
	_ = before
}

func TestSubRegisterViewsDeriveFromPair(t *testing.T) {
	r := NewRegisters(0)
	r.SetHL(0x1234)
	if r.H() != 0x12 || r.L() != 0x34 {
		t.Fatalf("H/L = %#02x/%#02x, want 12/34", r.H(), r.L())
	}
	r.SetL(0xFF)
	if r.HL() != 0x12FF {
		t.Fatalf("HL after SetL = %#04x, want 0x12FF", r.HL())
	}
}

func TestBumpRPreservesBit7(t *testing.T) {
	r := NewRegisters(0)
	r.SetR(0x7F)
	r.BumpR()
	if r.R() != 0x00 {
		t.Errorf("R after bump from 0x7F = %#02x, want 0x00", r.R())
	}
	r.SetR(0xFF)
	r.BumpR()
	if r.R() != 0x80 {
		t.Errorf("R after bump from 0xFF = %#02x, want 0x80 (bit 7 preserved)", r.R())
	}
}

func TestGetSymSetSymRoundTrip(t *testing.T) {
	r := NewRegisters(0)
	r.SetSym("hl", 0xBEEF)
	if got := r.GetSym("hl"); got != 0xBEEF {
		t.Errorf("GetSym(hl) = %#04x, want 0xBEEF", got)
	}
	r.SetSym("a", 0x42)
	if got := r.GetSym("a"); got != 0x42 {
		t.Errorf("GetSym(a) = %#04x, want 0x42", got)
	}
}

func TestGetSymUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("GetSym with an unknown symbol must panic")
		}
	}()
	NewRegisters(0).GetSym("zz")
}
