package cpu

import "fmt"

// dispatchBDOS implements the handful of CP/M BDOS calls (via CALL 0x0005)
// that ZEXALL-style test images use to report results: C=2 prints the
// character in E, C=9 prints the $-terminated string pointed to by DE.
// Anything else reports itself and is otherwise ignored.
func (s *System) dispatchBDOS() {
	switch s.Regs.C() {
	case 2:
		s.writeStdout([]byte{s.Regs.E()})
	case 9:
		addr := s.Regs.DE()
		for {
			b := s.Mem.GetByte(addr)
			if b == '$' {
				break
			}
			s.writeStdout([]byte{b})
			addr++
		}
	default:
		fmt.Fprintf(s.Stdout, "Unhandled BDOS call %02X\n", s.Regs.C())
	}
}

func (s *System) writeStdout(b []byte) {
	if s.Stdout == nil {
		return
	}
	s.Stdout.Write(b)
}
