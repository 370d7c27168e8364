package cpu

import "fmt"

// GetSym and SetSym provide symbolic access to any register by name, for
// host tooling (trace printers, debuggers) that wants to address a register
// by a string rather than a dedicated accessor. An unknown symbol is a
// programmer error and panics.
func (r *Registers) GetSym(sym string) uint16 {
	switch sym {
	case "a":
		return uint16(r.A())
	case "f":
		return uint16(r.F())
	case "b":
		return uint16(r.B())
	case "c":
		return uint16(r.C())
	case "d":
		return uint16(r.D())
	case "e":
		return uint16(r.E())
	case "h":
		return uint16(r.H())
	case "l":
		return uint16(r.L())
	case "af":
		return r.AF()
	case "bc":
		return r.BC()
	case "de":
		return r.DE()
	case "hl":
		return r.HL()
	case "ix":
		return r.IX()
	case "iy":
		return r.IY()
	case "ixh":
		return uint16(r.IXH())
	case "ixl":
		return uint16(r.IXL())
	case "iyh":
		return uint16(r.IYH())
	case "iyl":
		return uint16(r.IYL())
	case "pc":
		return r.PC()
	case "sp":
		return r.SP()
	case "i":
		return uint16(r.I())
	case "r":
		return uint16(r.R())
	default:
		panic(fmt.Sprintf("cpu: unknown register symbol %q", sym))
	}
}

func (r *Registers) SetSym(sym string, v uint16) {
	switch sym {
	case "a":
		r.SetA(uint8(v))
	case "f":
		r.SetF(uint8(v))
	case "b":
		r.SetB(uint8(v))
	case "c":
		r.SetC(uint8(v))
	case "d":
		r.SetD(uint8(v))
	case "e":
		r.SetE(uint8(v))
	case "h":
		r.SetH(uint8(v))
	case "l":
		r.SetL(uint8(v))
	case "af":
		r.SetAF(v)
	case "bc":
		r.SetBC(v)
	case "de":
		r.SetDE(v)
	case "hl":
		r.SetHL(v)
	case "ix":
		r.SetIX(v)
	case "iy":
		r.SetIY(v)
	case "ixh":
		r.SetIXH(uint8(v))
	case "ixl":
		r.SetIXL(uint8(v))
	case "iyh":
		r.SetIYH(uint8(v))
	case "iyl":
		r.SetIYL(uint8(v))
	case "pc":
		r.SetPC(v)
	case "sp":
		r.SetSP(v)
	case "i":
		r.SetI(uint8(v))
	case "r":
		r.SetR(uint8(v))
	default:
		panic(fmt.Sprintf("cpu: unknown register symbol %q", sym))
	}
}
