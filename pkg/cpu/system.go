// Package cpu implements an instruction-accurate Zilog Z80 core: register
// file, flag tables, and the fetch-decode-execute loop, over a flat 64 KiB
// address space supplied by pkg/memory and an I/O contract from pkg/ports.
package cpu

import (
	"io"
	"os"

	"github.com/oisee/z80emu/pkg/memory"
	"github.com/oisee/z80emu/pkg/ports"
)

// Prefix is the instruction-prefix state absorbed during decode. It is
// always reset to PrefixNone at the start of every ExecuteInstruction call
// and never persists across instructions.
type Prefix int

const (
	PrefixNone Prefix = iota
	PrefixDD
	PrefixFD
)

// System couples a register file, memory, and I/O ports into a runnable
// Z80. It is constructed once by New and lives until dropped; there is no
// mid-run reallocation.
type System struct {
	Regs *Registers
	Mem  *memory.Memory
	IO   ports.Ports

	// Running is the termination flag a host driver loop polls:
	// for system.Running { system.ExecuteInstruction() }
	Running bool

	// InstructionCount counts successful ExecuteInstruction dispatches.
	// Non-functional bookkeeping, not part of Z80 semantics.
	InstructionCount uint64

	// Stdout receives CP/M BDOS stub output (character and string
	// printing via CALL 0x0005). Defaults to os.Stdout.
	Stdout io.Writer

	// TerminateOnZero enables the jump-to-zero termination convention used
	// by stand-alone CP/M-style test binaries. It is not a real Z80
	// behavior, so hosts embedding this core in a system that legitimately
	// executes at address 0 should set it false after New.
	TerminateOnZero bool

	starting bool
	cpmStub  bool
}

// New constructs a System with ram bytes of memory and PC at initialPC.
// The register file is primed to the exact power-on values this emulator
// reproduces (see NewRegisters). When cpmStub is true, a minimal
// CP/M BDOS entry point is installed at 0x0005.
func New(ramSize int, initialPC uint16, cpmStub bool) *System {
	s := &System{
		Regs:            NewRegisters(initialPC),
		Mem:             memory.New(ramSize),
		IO:              ports.Null{},
		Running:         true,
		starting:        true,
		cpmStub:         cpmStub,
		Stdout:          os.Stdout,
		TerminateOnZero: true,
	}
	if cpmStub {
		s.Mem.SetByte(0x0005, 0xC9)   // RET
		s.Mem.SetWord(0x0006, 0x06E4) // pseudo-address, never executed
	}
	return s
}

// ExecuteInstruction fetches, decodes, and executes a single instruction,
// absorbing any leading run of 0xDD/0xFD prefix bytes (the final one wins)
// and discarding the prefix entirely if the resulting opcode does not
// support it. When TerminateOnZero is set, it applies the jump-to-zero
// termination convention before fetching: PC == 0 on any call after the
// first clears Running.
func (s *System) ExecuteInstruction() {
	if s.TerminateOnZero && s.Regs.PC() == 0 && !s.starting {
		s.Running = false
		return
	}
	s.starting = false

	prefix := PrefixNone
	var op uint8
	for {
		op = s.fetchByte()
		switch op {
		case 0xDD:
			prefix = PrefixDD
			continue
		case 0xFD:
			prefix = PrefixFD
			continue
		}
		break
	}

	if prefix != PrefixNone && !ddFdPrefixable[op] {
		// Not applicable to this opcode: push the opcode byte back and let
		// the next call re-read it with prefix cleared.
		s.Regs.SetPC(s.Regs.PC() - 1)
		return
	}

	s.Regs.BumpR()
	s.InstructionCount++
	s.execOpcode(op, prefix)
}

func (s *System) fetchByte() uint8 {
	b := s.Mem.GetByte(s.Regs.PC())
	s.Regs.IncPC()
	return b
}

func (s *System) fetchWord() uint16 {
	lo := s.fetchByte()
	hi := s.fetchByte()
	return uint16(lo) | (uint16(hi) << 8)
}

func (s *System) push(v uint16) {
	s.Regs.DecDecSP()
	s.Mem.SetWord(s.Regs.SP(), v)
}

func (s *System) pop() uint16 {
	v := s.Mem.GetWord(s.Regs.SP())
	s.Regs.IncIncSP()
	return v
}
