package cpu

import "math/bits"

// Precomputed flag-lookup tables, built once at package init and consulted
// on every ALU operation instead of recomputed per instruction: sz, szBit,
// szp, szhvInc, szhvDec cover the 8-bit cases, and szhvcAdd/szhvcSub extend
// the same approach with a carry-in dimension folded into the index.
var (
	sz       [256]uint8
	szBit    [256]uint8
	szp      [256]uint8
	szhvInc  [256]uint8
	szhvDec  [256]uint8
	szhvcAdd [1 << 17]uint8
	szhvcSub [1 << 17]uint8

	// ddFdPrefixable is the exact set of opcodes whose decode is altered by
	// a preceding 0xDD or 0xFD prefix.
	ddFdPrefixable [256]bool
)

func init() {
	for i := 0; i < 256; i++ {
		b := uint8(i)
		if b == 0 {
			sz[i] = FlagZ
		} else {
			sz[i] = b & FlagS
		}
		sz[i] |= b & (FlagY | FlagX)

		szBit[i] = sz[i]
		if b == 0 {
			szBit[i] |= FlagV
		}

		parityBit := uint8(0)
		if bits.OnesCount8(b)%2 == 0 {
			parityBit = FlagP
		}
		szp[i] = sz[i] | parityBit

		szhvInc[i] = sz[i]
		if b == 0x80 {
			szhvInc[i] |= FlagV
		}
		if b&0x0F == 0 {
			szhvInc[i] |= FlagH
		}

		szhvDec[i] = sz[i] | FlagN
		if b == 0x7F {
			szhvDec[i] |= FlagV
		}
		if b&0x0F == 0x0F {
			szhvDec[i] |= FlagH
		}
	}

	for cin := 0; cin <= 1; cin++ {
		for old := 0; old < 256; old++ {
			for operand := 0; operand < 256; operand++ {
				sum := old + operand + cin
				newVal := uint8(sum)
				idx := (cin << 16) | (old << 8) | int(newVal)

				flags := sz[newVal]
				if (old&0x0F)+(operand&0x0F)+cin > 0x0F {
					flags |= FlagH
				}
				if ((old^operand)&0x80) == 0 && ((old^int(newVal))&0x80) != 0 {
					flags |= FlagV
				}
				if sum > 0xFF {
					flags |= FlagC
				}
				szhvcAdd[idx] = flags

				diff := old - operand - cin
				newVal = uint8(diff)
				idxSub := (cin << 16) | (old << 8) | int(newVal)

				flagsSub := sz[newVal] | FlagN
				if (old&0x0F)-(operand&0x0F)-cin < 0 {
					flagsSub |= FlagH
				}
				if ((old^operand)&0x80) != 0 && ((old^int(newVal))&0x80) != 0 {
					flagsSub |= FlagV
				}
				if diff < 0 {
					flagsSub |= FlagC
				}
				szhvcSub[idxSub] = flagsSub
			}
		}
	}

	for _, op := range []uint8{
		// HL-involving arithmetic/load/inc/dec forms
		0x09, 0x19, 0x29, 0x39, // ADD HL,rr
		0x21, 0x22, 0x2A, // LD HL,nn / LD (nn),HL / LD HL,(nn)
		0x23, 0x2B, // INC HL / DEC HL
		0xF9, // LD SP,HL
		// H/L sub-register forms (opcodes referencing H or L directly)
		0x24, 0x25, 0x26, // INC H / DEC H / LD H,n
		0x2C, 0x2D, 0x2E, // INC L / DEC L / LD L,n
		0x34, 0x35, 0x36, // INC (HL) / DEC (HL) / LD (HL),n
		0xE1, 0xE3, 0xE5, 0xE9, // POP HL / EX (SP),HL / PUSH HL / JP (HL)
		0xCB, // compound indexed bit ops
	} {
		ddFdPrefixable[op] = true
	}
	// LD r,r' forms where either side is H, L, or (HL): 0x40..0x7F except 0x76 (HALT).
	for op := 0x40; op <= 0x7F; op++ {
		if op == 0x76 {
			continue
		}
		dst := (op >> 3) & 0x07
		src := op & 0x07
		if dst == 4 || dst == 5 || dst == 6 || src == 4 || src == 5 || src == 6 {
			ddFdPrefixable[op] = true
		}
	}
	// 8-bit ALU ops against H, L, or (HL): 0x80..0xBF where the low 3 bits select r.
	for op := 0x80; op <= 0xBF; op++ {
		r := op & 0x07
		if r == 4 || r == 5 || r == 6 {
			ddFdPrefixable[uint8(op)] = true
		}
	}
}
