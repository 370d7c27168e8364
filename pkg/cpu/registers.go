package cpu

// gpSet holds one general-purpose register set: A, F, BC, DE, HL packed as
// 16-bit pairs. 8-bit sub-register views (B, C, D, E, H, L, and A/F) are
// derived from the pairs at access time rather than stored redundantly —
// storing both would require maintaining an invariant on every write.
type gpSet struct {
	af uint16
	bc uint16
	de uint16
	hl uint16
}

// Registers is the full Z80 register file: a main and an alternate
// general-purpose set, the index registers, stack pointer, program
// counter, and the interrupt/refresh registers.
type Registers struct {
	main gpSet
	alt  gpSet

	ix uint16
	iy uint16

	sp uint16
	pc uint16

	i uint8
	r uint8
}

// NewRegisters builds the register file in the power-on state this emulator
// reproduces exactly: PC at initial_pc, SP at 0xF800, IX/IY/I/R zero, the
// main set primed to AF=0xFFFF BC=0x00FF DE=0x03FF HL=0x0000, and the
// alternate set all zero. These magic values match the host environment
// ZEXALL-style test suites expect.
func NewRegisters(initialPC uint16) *Registers {
	return &Registers{
		main: gpSet{af: 0xFFFF, bc: 0x00FF, de: 0x03FF, hl: 0x0000},
		alt:  gpSet{},
		ix:   0,
		iy:   0,
		sp:   0xF800,
		pc:   initialPC,
		i:    0,
		r:    0,
	}
}

func hi(w uint16) uint8 { return uint8(w >> 8) }
func lo(w uint16) uint8 { return uint8(w) }

func setHi(w *uint16, v uint8) { *w = (*w & 0x00FF) | (uint16(v) << 8) }
func setLo(w *uint16, v uint8) { *w = (*w & 0xFF00) | uint16(v) }

// Simple field accessors. PC and SP are exposed through a single accessor
// pair each (no separate "get by symbol" dead path for PC).

func (r *Registers) PC() uint16     { return r.pc }
func (r *Registers) SetPC(v uint16) { r.pc = v }
func (r *Registers) SP() uint16     { return r.sp }
func (r *Registers) SetSP(v uint16) { r.sp = v }

func (r *Registers) A() uint8     { return hi(r.main.af) }
func (r *Registers) SetA(v uint8) { setHi(&r.main.af, v) }
func (r *Registers) F() uint8     { return lo(r.main.af) }
func (r *Registers) SetF(v uint8) { setLo(&r.main.af, v) }
func (r *Registers) AF() uint16   { return r.main.af }
func (r *Registers) SetAF(v uint16) { r.main.af = v }

func (r *Registers) B() uint8       { return hi(r.main.bc) }
func (r *Registers) SetB(v uint8)   { setHi(&r.main.bc, v) }
func (r *Registers) C() uint8       { return lo(r.main.bc) }
func (r *Registers) SetC(v uint8)   { setLo(&r.main.bc, v) }
func (r *Registers) BC() uint16     { return r.main.bc }
func (r *Registers) SetBC(v uint16) { r.main.bc = v }

func (r *Registers) D() uint8       { return hi(r.main.de) }
func (r *Registers) SetD(v uint8)   { setHi(&r.main.de, v) }
func (r *Registers) E() uint8       { return lo(r.main.de) }
func (r *Registers) SetE(v uint8)   { setLo(&r.main.de, v) }
func (r *Registers) DE() uint16     { return r.main.de }
func (r *Registers) SetDE(v uint16) { r.main.de = v }

func (r *Registers) H() uint8       { return hi(r.main.hl) }
func (r *Registers) SetH(v uint8)   { setHi(&r.main.hl, v) }
func (r *Registers) L() uint8       { return lo(r.main.hl) }
func (r *Registers) SetL(v uint8)   { setLo(&r.main.hl, v) }
func (r *Registers) HL() uint16     { return r.main.hl }
func (r *Registers) SetHL(v uint16) { r.main.hl = v }

func (r *Registers) IX() uint16     { return r.ix }
func (r *Registers) SetIX(v uint16) { r.ix = v }
func (r *Registers) IY() uint16     { return r.iy }
func (r *Registers) SetIY(v uint16) { r.iy = v }

func (r *Registers) IXH() uint8     { return hi(r.ix) }
func (r *Registers) SetIXH(v uint8) { setHi(&r.ix, v) }
func (r *Registers) IXL() uint8     { return lo(r.ix) }
func (r *Registers) SetIXL(v uint8) { setLo(&r.ix, v) }
func (r *Registers) IYH() uint8     { return hi(r.iy) }
func (r *Registers) SetIYH(v uint8) { setHi(&r.iy, v) }
func (r *Registers) IYL() uint8     { return lo(r.iy) }
func (r *Registers) SetIYL(v uint8) { setLo(&r.iy, v) }

func (r *Registers) I() uint8     { return r.i }
func (r *Registers) SetI(v uint8) { r.i = v }
func (r *Registers) R() uint8     { return r.r }
func (r *Registers) SetR(v uint8) { r.r = v }

// BumpR increments the low 7 bits of R, leaving bit 7 untouched, as happens
// once per opcode fetch on real hardware.
func (r *Registers) BumpR() {
	r.r = (r.r & 0x80) | ((r.r + 1) & 0x7F)
}

// IncPC advances PC by one, wrapping modulo 0x10000.
func (r *Registers) IncPC() { r.pc++ }

// AddPC adds a signed byte displacement to PC, wrapping modulo 0x10000.
func (r *Registers) AddPC(d uint8) { r.pc = addDisplacement(r.pc, d) }

// DecDecSP retreats SP by 2, wrapping modulo 0x10000 (used by PUSH).
func (r *Registers) DecDecSP() { r.sp -= 2 }

// IncIncSP advances SP by 2, wrapping modulo 0x10000 (used by POP).
func (r *Registers) IncIncSP() { r.sp += 2 }

// Carry returns 1 if the carry flag is set, else 0.
func (r *Registers) Carry() uint8 {
	if r.F()&FlagC != 0 {
		return 1
	}
	return 0
}

// Test reports whether the given flag bit is set in F.
func (r *Registers) Test(flag uint8) bool {
	return r.F()&flag != 0
}

// Exchange swaps BC, DE, HL with their alternate-set counterparts (EXX).
func (r *Registers) Exchange() {
	r.main.bc, r.alt.bc = r.alt.bc, r.main.bc
	r.main.de, r.alt.de = r.alt.de, r.main.de
	r.main.hl, r.alt.hl = r.alt.hl, r.main.hl
}

// ExchangeAF swaps AF with its alternate-set counterpart (EX AF,AF').
func (r *Registers) ExchangeAF() {
	r.main.af, r.alt.af = r.alt.af, r.main.af
}
