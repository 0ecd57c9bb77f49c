// Package disassemble implements a disassembler for 6502/2A03 opcodes,
// built directly on the CPU package's own decode table so the two can never
// drift apart.
package disassemble

import (
	"fmt"

	"github.com/jmchacon/nes6502/addr"
	"github.com/jmchacon/nes6502/cpu"
	"github.com/jmchacon/nes6502/memory"
)

// Step disassembles the instruction at pc, returning a formatted line and
// the byte count the PC should advance by to reach the next instruction.
// This does not interpret control flow, so JMP/JSR targets are printed but
// not followed. Reading stops at the bank's normal Read semantics; no
// bus-state mutation is assumed or required of bank.
func Step(pc uint16, bank memory.Bank) (string, int) {
	start := addr.Address(pc)
	cur := start

	inst, opcode, err := cpu.Decode(bank, &cur)
	count := int(cur) - int(start)
	if count <= 0 {
		count = 1
	}
	if err != nil {
		return fmt.Sprintf("%.4X %.2X      ILLEGAL", pc, opcode), count
	}

	out := fmt.Sprintf("%.4X %.2X ", pc, opcode)
	m := inst.Mode
	switch m.Kind {
	case cpu.Immediate:
		out += fmt.Sprintf("%.2X      %s #%.2X       ", m.Byte, inst.Op, m.Byte)
	case cpu.ZeroPage:
		out += fmt.Sprintf("%.2X      %s %.2X        ", m.Byte, inst.Op, m.Byte)
	case cpu.ZeroPageX:
		out += fmt.Sprintf("%.2X      %s %.2X,X      ", m.Byte, inst.Op, m.Byte)
	case cpu.ZeroPageY:
		out += fmt.Sprintf("%.2X      %s %.2X,Y      ", m.Byte, inst.Op, m.Byte)
	case cpu.IndexedIndirect:
		out += fmt.Sprintf("%.2X      %s (%.2X,X)    ", m.Byte, inst.Op, m.Byte)
	case cpu.IndirectIndexed:
		out += fmt.Sprintf("%.2X      %s (%.2X),Y    ", m.Byte, inst.Op, m.Byte)
	case cpu.Absolute:
		out += fmt.Sprintf("%.2X %.2X   %s %.4X      ", m.Addr.Low(), m.Addr.High(), inst.Op, m.Addr.Uint16())
	case cpu.AbsoluteX:
		out += fmt.Sprintf("%.2X %.2X   %s %.4X,X    ", m.Addr.Low(), m.Addr.High(), inst.Op, m.Addr.Uint16())
	case cpu.AbsoluteY:
		out += fmt.Sprintf("%.2X %.2X   %s %.4X,Y    ", m.Addr.Low(), m.Addr.High(), inst.Op, m.Addr.Uint16())
	case cpu.Indirect:
		out += fmt.Sprintf("%.2X %.2X   %s (%.4X)    ", m.Addr.Low(), m.Addr.High(), inst.Op, m.Addr.Uint16())
	case cpu.Accumulator:
		out += fmt.Sprintf("        %s A         ", inst.Op)
	case cpu.Relative:
		target := start.Add(uint16(count)).AddSigned(m.Signed)
		out += fmt.Sprintf("%.2X      %s %.2X (%.4X) ", uint8(m.Signed), inst.Op, uint8(m.Signed), target.Uint16())
	default: // Implicit
		out += fmt.Sprintf("        %s           ", inst.Op)
	}
	return out, count
}
