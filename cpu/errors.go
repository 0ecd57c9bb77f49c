package cpu

import (
	"fmt"

	"github.com/jmchacon/nes6502/addr"
)

// IllegalOpcode is returned when decode reaches one of the residual
// undocumented opcodes whose behavior depends on analog bus timing and is
// therefore treated as fatal rather than emulated.
type IllegalOpcode struct {
	PC     addr.Address
	Opcode uint8
}

func (e IllegalOpcode) Error() string {
	return fmt.Sprintf("illegal opcode %02X at %s", e.Opcode, e.PC)
}

// HaltOpcode is returned when the STP (halt) undocumented instruction
// executes. Real hardware locks the bus permanently; this is modeled as a
// fatal condition the driver must handle by resetting.
type HaltOpcode struct {
	PC     addr.Address
	Opcode uint8
}

func (e HaltOpcode) Error() string {
	return fmt.Sprintf("halt opcode %02X at %s", e.Opcode, e.PC)
}

// InfiniteLoop is returned when Step observes the program counter unchanged
// across an instruction, as a jump or taken branch to itself leaves it - the
// trap idiom conformance test ROMs use to signal failure.
type InfiniteLoop struct {
	PC addr.Address
}

func (e InfiniteLoop) Error() string {
	return fmt.Sprintf("infinite loop detected at %s", e.PC)
}
