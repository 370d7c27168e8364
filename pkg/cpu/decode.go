package cpu

// opRef names a resolved 8-bit operand location: either a memory address
// (already adjusted for any IX+d/IY+d displacement) or a register code to
// be read through getReg/setReg under a given prefix.
type opRef struct {
	isMem   bool
	addr    uint16
	regCode uint8
	prefix  Prefix
}

// hlBaseAddr resolves the address an (HL)-style operand refers to under the
// given prefix, consuming the displacement byte from the instruction stream
// when prefix selects an index register. Call exactly once per instruction
// per such operand; calling it twice double-consumes the displacement.
func (s *System) hlBaseAddr(prefix Prefix) uint16 {
	switch prefix {
	case PrefixDD:
		d := s.fetchByte()
		return addDisplacement(s.Regs.IX(), d)
	case PrefixFD:
		d := s.fetchByte()
		return addDisplacement(s.Regs.IY(), d)
	default:
		return s.Regs.HL()
	}
}

// resolve8 resolves a 3-bit register-field code to an opRef under prefix.
// code == 6 means (HL), or (IX+d)/(IY+d) under a DD/FD prefix.
func (s *System) resolve8(code uint8, prefix Prefix) opRef {
	if code == 6 {
		return opRef{isMem: true, addr: s.hlBaseAddr(prefix)}
	}
	return opRef{regCode: code, prefix: prefix}
}

func (s *System) getOp(ref opRef) uint8 {
	if ref.isMem {
		return s.Mem.GetByte(ref.addr)
	}
	return s.getReg(ref.regCode, ref.prefix)
}

func (s *System) setOp(ref opRef, v uint8) {
	if ref.isMem {
		s.Mem.SetByte(ref.addr, v)
		return
	}
	s.setReg(ref.regCode, ref.prefix, v)
}

func (s *System) getReg(code uint8, prefix Prefix) uint8 {
	switch code {
	case 0:
		return s.Regs.B()
	case 1:
		return s.Regs.C()
	case 2:
		return s.Regs.D()
	case 3:
		return s.Regs.E()
	case 4:
		switch prefix {
		case PrefixDD:
			return s.Regs.IXH()
		case PrefixFD:
			return s.Regs.IYH()
		default:
			return s.Regs.H()
		}
	case 5:
		switch prefix {
		case PrefixDD:
			return s.Regs.IXL()
		case PrefixFD:
			return s.Regs.IYL()
		default:
			return s.Regs.L()
		}
	case 7:
		return s.Regs.A()
	}
	panic("cpu: invalid register code")
}

func (s *System) setReg(code uint8, prefix Prefix, v uint8) {
	switch code {
	case 0:
		s.Regs.SetB(v)
	case 1:
		s.Regs.SetC(v)
	case 2:
		s.Regs.SetD(v)
	case 3:
		s.Regs.SetE(v)
	case 4:
		switch prefix {
		case PrefixDD:
			s.Regs.SetIXH(v)
		case PrefixFD:
			s.Regs.SetIYH(v)
		default:
			s.Regs.SetH(v)
		}
	case 5:
		switch prefix {
		case PrefixDD:
			s.Regs.SetIXL(v)
		case PrefixFD:
			s.Regs.SetIYL(v)
		default:
			s.Regs.SetL(v)
		}
	case 7:
		s.Regs.SetA(v)
	default:
		panic("cpu: invalid register code")
	}
}

// getRP/setRP implement the "rr" register-pair field (LD rr,nn; INC/DEC rr;
// ADD HL,rr): p=0 BC, p=1 DE, p=2 HL (or IX/IY under prefix), p=3 SP.
func (s *System) getRP(p uint8, prefix Prefix) uint16 {
	switch p {
	case 0:
		return s.Regs.BC()
	case 1:
		return s.Regs.DE()
	case 2:
		switch prefix {
		case PrefixDD:
			return s.Regs.IX()
		case PrefixFD:
			return s.Regs.IY()
		default:
			return s.Regs.HL()
		}
	case 3:
		return s.Regs.SP()
	}
	panic("cpu: invalid register pair code")
}

func (s *System) setRP(p uint8, prefix Prefix, v uint16) {
	switch p {
	case 0:
		s.Regs.SetBC(v)
	case 1:
		s.Regs.SetDE(v)
	case 2:
		switch prefix {
		case PrefixDD:
			s.Regs.SetIX(v)
		case PrefixFD:
			s.Regs.SetIY(v)
		default:
			s.Regs.SetHL(v)
		}
	case 3:
		s.Regs.SetSP(v)
	default:
		panic("cpu: invalid register pair code")
	}
}

// getQQ/setQQ implement the "qq" register-pair field used by PUSH/POP:
// identical to rr except p=3 selects AF rather than SP.
func (s *System) getQQ(p uint8, prefix Prefix) uint16 {
	if p == 3 {
		return s.Regs.AF()
	}
	return s.getRP(p, prefix)
}

func (s *System) setQQ(p uint8, prefix Prefix, v uint16) {
	if p == 3 {
		s.Regs.SetAF(v)
		return
	}
	s.setRP(p, prefix, v)
}

// testCC evaluates the 3-bit condition-code field shared by JP/JR/CALL/RET.
func (s *System) testCC(cc uint8) bool {
	switch cc {
	case 0:
		return !s.Regs.Test(FlagZ)
	case 1:
		return s.Regs.Test(FlagZ)
	case 2:
		return !s.Regs.Test(FlagC)
	case 3:
		return s.Regs.Test(FlagC)
	case 4:
		return !s.Regs.Test(FlagP)
	case 5:
		return s.Regs.Test(FlagP)
	case 6:
		return !s.Regs.Test(FlagS)
	case 7:
		return s.Regs.Test(FlagS)
	}
	panic("cpu: invalid condition code")
}
