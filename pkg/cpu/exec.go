package cpu

import "fmt"

// execOpcode dispatches a fully-fetched opcode byte under the given prefix.
// CB and ED are broken out to their own files; everything else is decoded
// here by exact match first, then by range/mask.
func (s *System) execOpcode(op uint8, prefix Prefix) {
	if op == 0xCB {
		s.execCB(prefix)
		return
	}
	if op == 0xED {
		s.execED()
		return
	}

	switch op {
	case 0x00: // NOP
		return
	case 0x08: // EX AF,AF'
		s.Regs.ExchangeAF()
		return
	case 0xD9: // EXX
		s.Regs.Exchange()
		return
	case 0x10: // DJNZ d
		d := s.fetchByte()
		b := s.Regs.B() - 1
		s.Regs.SetB(b)
		if b != 0 {
			s.Regs.AddPC(d)
		}
		return
	case 0x18: // JR d
		d := s.fetchByte()
		s.Regs.AddPC(d)
		return
	case 0x20, 0x28, 0x30, 0x38: // JR cc,d (cc is 2-bit: NZ,Z,NC,C)
		cc := (op >> 3) & 0x03
		d := s.fetchByte()
		if s.testCC(cc) {
			s.Regs.AddPC(d)
		}
		return
	case 0x27:
		s.daa()
		return
	case 0x2F:
		s.cpl()
		return
	case 0x37:
		s.scf()
		return
	case 0x3F:
		s.ccf()
		return
	case 0x76: // HALT
		s.Running = false
		return
	case 0x07:
		res, c := rlc8(s.Regs.A())
		s.Regs.SetA(res)
		s.applyRotateAFlags(res, c)
		return
	case 0x0F:
		res, c := rrc8(s.Regs.A())
		s.Regs.SetA(res)
		s.applyRotateAFlags(res, c)
		return
	case 0x17:
		res, c := rl8(s.Regs.A(), s.Regs.Test(FlagC))
		s.Regs.SetA(res)
		s.applyRotateAFlags(res, c)
		return
	case 0x1F:
		res, c := rr8(s.Regs.A(), s.Regs.Test(FlagC))
		s.Regs.SetA(res)
		s.applyRotateAFlags(res, c)
		return
	case 0x02: // LD (BC),A
		s.Mem.SetByte(s.Regs.BC(), s.Regs.A())
		return
	case 0x12: // LD (DE),A
		s.Mem.SetByte(s.Regs.DE(), s.Regs.A())
		return
	case 0x0A: // LD A,(BC)
		s.Regs.SetA(s.Mem.GetByte(s.Regs.BC()))
		return
	case 0x1A: // LD A,(DE)
		s.Regs.SetA(s.Mem.GetByte(s.Regs.DE()))
		return
	case 0x22: // LD (nn),HL/IX/IY
		nn := s.fetchWord()
		s.Mem.SetWord(nn, s.getRP(2, prefix))
		return
	case 0x2A: // LD HL/IX/IY,(nn)
		nn := s.fetchWord()
		s.setRP(2, prefix, s.Mem.GetWord(nn))
		return
	case 0x32: // LD (nn),A
		nn := s.fetchWord()
		s.Mem.SetByte(nn, s.Regs.A())
		return
	case 0x3A: // LD A,(nn)
		nn := s.fetchWord()
		s.Regs.SetA(s.Mem.GetByte(nn))
		return
	case 0xC3: // JP nn
		nn := s.fetchWord()
		s.Regs.SetPC(nn)
		return
	case 0xC9: // RET
		s.opRET()
		return
	case 0xCD: // CALL nn
		nn := s.fetchWord()
		s.push(s.Regs.PC())
		s.Regs.SetPC(nn)
		return
	case 0xE9: // JP (HL)/(IX)/(IY)
		s.Regs.SetPC(s.getRP(2, prefix))
		return
	case 0xEB: // EX DE,HL
		de, hl := s.Regs.DE(), s.Regs.HL()
		s.Regs.SetDE(hl)
		s.Regs.SetHL(de)
		return
	case 0xE3: // EX (SP),HL / (IX)/(IY)
		addr := s.Regs.SP()
		mem := s.Mem.GetWord(addr)
		cur := s.getRP(2, prefix)
		s.Mem.SetWord(addr, cur)
		s.setRP(2, prefix, mem)
		return
	case 0xF9: // LD SP,HL/IX/IY
		s.Regs.SetSP(s.getRP(2, prefix))
		return
	case 0xF3: // DI
		return
	case 0xFB: // EI
		return
	case 0xD3: // OUT (n),A
		n := s.fetchByte()
		s.IO.Out(n, s.Regs.A())
		return
	case 0xDB: // IN A,(n)
		n := s.fetchByte()
		s.Regs.SetA(s.IO.In(n, s.Regs.A()))
		return
	case 0xC6:
		s.aluAdd(s.fetchByte(), 0)
		return
	case 0xCE:
		s.aluAdd(s.fetchByte(), int(s.Regs.Carry()))
		return
	case 0xD6:
		s.aluSub(s.fetchByte(), 0, true)
		return
	case 0xDE:
		s.aluSub(s.fetchByte(), int(s.Regs.Carry()), true)
		return
	case 0xE6:
		s.aluAnd(s.fetchByte())
		return
	case 0xEE:
		s.aluXor(s.fetchByte())
		return
	case 0xF6:
		s.aluOr(s.fetchByte())
		return
	case 0xFE:
		s.aluSub(s.fetchByte(), 0, false)
		return
	}

	switch {
	case op >= 0x40 && op <= 0x7F && op != 0x76: // LD r,r'
		s.execLD8(op, prefix)
		return
	case op >= 0x80 && op <= 0x87:
		s.aluAdd(s.getOp(s.resolve8(op&0x07, prefix)), 0)
		return
	case op >= 0x88 && op <= 0x8F:
		s.aluAdd(s.getOp(s.resolve8(op&0x07, prefix)), int(s.Regs.Carry()))
		return
	case op >= 0x90 && op <= 0x97:
		s.aluSub(s.getOp(s.resolve8(op&0x07, prefix)), 0, true)
		return
	case op >= 0x98 && op <= 0x9F:
		s.aluSub(s.getOp(s.resolve8(op&0x07, prefix)), int(s.Regs.Carry()), true)
		return
	case op >= 0xA0 && op <= 0xA7:
		s.aluAnd(s.getOp(s.resolve8(op&0x07, prefix)))
		return
	case op >= 0xA8 && op <= 0xAF:
		s.aluXor(s.getOp(s.resolve8(op&0x07, prefix)))
		return
	case op >= 0xB0 && op <= 0xB7:
		s.aluOr(s.getOp(s.resolve8(op&0x07, prefix)))
		return
	case op >= 0xB8 && op <= 0xBF:
		s.aluSub(s.getOp(s.resolve8(op&0x07, prefix)), 0, false)
		return
	case op&0xC7 == 0x04: // INC r8
		ref := s.resolve8((op>>3)&0x07, prefix)
		s.setOp(ref, s.incr8(s.getOp(ref)))
		return
	case op&0xC7 == 0x05: // DEC r8
		ref := s.resolve8((op>>3)&0x07, prefix)
		s.setOp(ref, s.decr8(s.getOp(ref)))
		return
	case op&0xC7 == 0x06: // LD r8,n
		ref := s.resolve8((op>>3)&0x07, prefix)
		s.setOp(ref, s.fetchByte())
		return
	case op&0xCF == 0x01: // LD rr,nn
		p := (op >> 4) & 0x03
		s.setRP(p, prefix, s.fetchWord())
		return
	case op&0xCF == 0x03: // INC rr
		p := (op >> 4) & 0x03
		s.setRP(p, prefix, s.getRP(p, prefix)+1)
		return
	case op&0xCF == 0x0B: // DEC rr
		p := (op >> 4) & 0x03
		s.setRP(p, prefix, s.getRP(p, prefix)-1)
		return
	case op&0xCF == 0x09: // ADD HL,rr
		p := (op >> 4) & 0x03
		s.addHL(s.getRP(p, prefix), prefix)
		return
	case op&0xCF == 0xC1: // POP qq
		p := (op >> 4) & 0x03
		s.setQQ(p, prefix, s.pop())
		return
	case op&0xCF == 0xC5: // PUSH qq
		p := (op >> 4) & 0x03
		s.push(s.getQQ(p, prefix))
		return
	case op&0xC7 == 0xC0: // RET cc
		cc := (op >> 3) & 0x07
		if s.testCC(cc) {
			s.opRET()
		}
		return
	case op&0xC7 == 0xC2: // JP cc,nn
		cc := (op >> 3) & 0x07
		nn := s.fetchWord()
		if s.testCC(cc) {
			s.Regs.SetPC(nn)
		}
		return
	case op&0xC7 == 0xC4: // CALL cc,nn
		cc := (op >> 3) & 0x07
		nn := s.fetchWord()
		if s.testCC(cc) {
			s.push(s.Regs.PC())
			s.Regs.SetPC(nn)
		}
		return
	case op&0xC7 == 0xC7: // RST p
		p := (op >> 3) & 0x07
		if p != 0 {
			panic(fmt.Sprintf("cpu: unsupported RST target: RST %d (opcode 0x%02X)", int(p)*8, op))
		}
		s.Running = false
		return
	}

	panic(fmt.Sprintf("cpu: unimplemented opcode: 0x%02X", op))
}

// execLD8 implements the 0x40-0x7F LD r,r' block (HALT at 0x76 excluded by
// the caller). When one side is (HL) turned into (IX+d)/(IY+d) by a prefix,
// the other side's H/L sub-register field stays plain H/L: only one side of
// a single LD can be displaced.
func (s *System) execLD8(op uint8, prefix Prefix) {
	dst := (op >> 3) & 0x07
	src := op & 0x07

	var dstRef, srcRef opRef
	switch {
	case dst == 6:
		dstRef = opRef{isMem: true, addr: s.hlBaseAddr(prefix)}
		srcRef = opRef{regCode: src, prefix: PrefixNone}
	case src == 6:
		srcRef = opRef{isMem: true, addr: s.hlBaseAddr(prefix)}
		dstRef = opRef{regCode: dst, prefix: PrefixNone}
	default:
		dstRef = opRef{regCode: dst, prefix: prefix}
		srcRef = opRef{regCode: src, prefix: prefix}
	}
	s.setOp(dstRef, s.getOp(srcRef))
}

// opRET implements RET, including the CP/M BDOS stub intercept: the stub's
// RET lives at 0x0005, so PC has already advanced to 0x0006 by the time this
// executes. Dispatching the BDOS call does not replace the pop; the real
// caller's address pushed by the original CALL 0x0005 is still returned to.
func (s *System) opRET() {
	if s.cpmStub && s.Regs.PC() == 0x0006 {
		s.dispatchBDOS()
	}
	s.Regs.SetPC(s.pop())
}
