package cpu

import (
	"fmt"

	"github.com/jmchacon/nes6502/addr"
	"github.com/jmchacon/nes6502/flags"
)

// Registers holds the 6502's entire visible register file: the
// accumulator, index registers, stack pointer, program counter, and status
// flags.
type Registers struct {
	A  uint8
	X  uint8
	Y  uint8
	S  uint8
	PC addr.Address
	P  flags.Flags
}

// NewRegisters returns the power-on register state: S=0xFD, P with UNUSED
// and INTERRUPT_DISABLE set, everything else zero. PC is left at zero; Reset
// is responsible for loading it from the reset vector.
func NewRegisters() *Registers {
	return &Registers{
		S: 0xFD,
		P: flags.New(),
	}
}

// String gives a compact debug form, e.g. for inclusion in error values and
// spew dumps.
func (r *Registers) String() string {
	return fmt.Sprintf("A=%02X X=%02X Y=%02X S=%02X PC=%s P=%02X", r.A, r.X, r.Y, r.S, r.PC, r.P.Byte())
}
