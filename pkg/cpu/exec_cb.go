package cpu

// execCB dispatches a CB-prefixed instruction. Under PrefixNone it operates
// on one of B,C,D,E,H,L,(HL),A chosen by the low 3 bits of the CB opcode.
// Under DD/FD it is the compound indexed form: a displacement byte precedes
// the CB opcode, and the operation always targets memory at (IX+d)/(IY+d)
// regardless of what the low 3 bits would otherwise select.
func (s *System) execCB(prefix Prefix) {
	if prefix == PrefixNone {
		op2 := s.fetchByte()
		ref := s.resolve8(op2&0x07, PrefixNone)
		s.execCBOp(op2, ref)
		return
	}

	base := s.Regs.IX()
	if prefix == PrefixFD {
		base = s.Regs.IY()
	}
	d := s.fetchByte()
	addr := addDisplacement(base, d)
	op2 := s.fetchByte()
	s.execCBOp(op2, opRef{isMem: true, addr: addr})
}

func (s *System) execCBOp(op2 uint8, ref opRef) {
	switch {
	case op2 <= 0x3F: // rotate/shift family
		v := s.getOp(ref)
		var res uint8
		var carry bool
		switch op2 >> 3 {
		case 0:
			res, carry = rlc8(v)
		case 1:
			res, carry = rrc8(v)
		case 2:
			res, carry = rl8(v, s.Regs.Test(FlagC))
		case 3:
			res, carry = rr8(v, s.Regs.Test(FlagC))
		case 4:
			res, carry = sla8(v)
		case 5:
			res, carry = sra8(v)
		case 6:
			res, carry = sll8(v)
		case 7:
			res, carry = srl8(v)
		}
		s.setOp(ref, res)
		s.applyShiftFlags(res, carry)

	case op2 <= 0x7F: // BIT n,r
		n := (op2 >> 3) & 0x07
		v := s.getOp(ref)
		testVal := v & (1 << n)
		bitFlags := szBit[testVal]
		bitFlags = (bitFlags &^ (FlagY | FlagX)) | (v & (FlagY | FlagX))
		s.Regs.SetF((s.Regs.F() & FlagC) | bitFlags)

	case op2 <= 0xBF: // RES n,r
		n := (op2 >> 3) & 0x07
		s.setOp(ref, s.getOp(ref)&^(1<<n))

	default: // SET n,r
		n := (op2 >> 3) & 0x07
		s.setOp(ref, s.getOp(ref)|(1<<n))
	}
}
