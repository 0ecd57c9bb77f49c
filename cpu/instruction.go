// Package cpu implements the MOS 6502 interpreter as embedded in the Ricoh
// 2A03: register file, the 13 addressing modes, the full 256-opcode decode
// table, and the fetch/decode/execute/interrupt cycle.
package cpu

import (
	"fmt"

	"github.com/jmchacon/nes6502/addr"
	"github.com/jmchacon/nes6502/memory"
)

// Op identifies the operation mnemonic of a decoded instruction, independent
// of its addressing mode.
type Op int

const (
	OpADC Op = iota
	OpAND
	OpASL
	OpBCC
	OpBCS
	OpBEQ
	OpBIT
	OpBMI
	OpBNE
	OpBPL
	OpBRK
	OpBVC
	OpBVS
	OpCLC
	OpCLD
	OpCLI
	OpCLV
	OpCMP
	OpCPX
	OpCPY
	OpDCP
	OpDEC
	OpDEX
	OpDEY
	OpEOR
	OpINC
	OpINX
	OpINY
	OpISC
	OpJMP
	OpJSR
	OpLAX
	OpLDA
	OpLDX
	OpLDY
	OpLSR
	OpNOP
	OpORA
	OpPHA
	OpPHP
	OpPLA
	OpPLP
	OpRLA
	OpROL
	OpROR
	OpRRA
	OpRTI
	OpRTS
	OpSAX
	OpSBC
	OpSEC
	OpSED
	OpSEI
	OpSLO
	OpSRE
	OpSTA
	OpSTP
	OpSTX
	OpSTY
	OpTAX
	OpTAY
	OpTSX
	OpTXA
	OpTXS
	OpTYA
)

var opNames = map[Op]string{
	OpADC: "ADC",
	OpAND: "AND",
	OpASL: "ASL",
	OpBCC: "BCC",
	OpBCS: "BCS",
	OpBEQ: "BEQ",
	OpBIT: "BIT",
	OpBMI: "BMI",
	OpBNE: "BNE",
	OpBPL: "BPL",
	OpBRK: "BRK",
	OpBVC: "BVC",
	OpBVS: "BVS",
	OpCLC: "CLC",
	OpCLD: "CLD",
	OpCLI: "CLI",
	OpCLV: "CLV",
	OpCMP: "CMP",
	OpCPX: "CPX",
	OpCPY: "CPY",
	OpDCP: "DCP",
	OpDEC: "DEC",
	OpDEX: "DEX",
	OpDEY: "DEY",
	OpEOR: "EOR",
	OpINC: "INC",
	OpINX: "INX",
	OpINY: "INY",
	OpISC: "ISC",
	OpJMP: "JMP",
	OpJSR: "JSR",
	OpLAX: "LAX",
	OpLDA: "LDA",
	OpLDX: "LDX",
	OpLDY: "LDY",
	OpLSR: "LSR",
	OpNOP: "NOP",
	OpORA: "ORA",
	OpPHA: "PHA",
	OpPHP: "PHP",
	OpPLA: "PLA",
	OpPLP: "PLP",
	OpRLA: "RLA",
	OpROL: "ROL",
	OpROR: "ROR",
	OpRRA: "RRA",
	OpRTI: "RTI",
	OpRTS: "RTS",
	OpSAX: "SAX",
	OpSBC: "SBC",
	OpSEC: "SEC",
	OpSED: "SED",
	OpSEI: "SEI",
	OpSLO: "SLO",
	OpSRE: "SRE",
	OpSTA: "STA",
	OpSTP: "STP",
	OpSTX: "STX",
	OpSTY: "STY",
	OpTAX: "TAX",
	OpTAY: "TAY",
	OpTSX: "TSX",
	OpTXA: "TXA",
	OpTXS: "TXS",
	OpTYA: "TYA",
}
// String returns the 3 letter mnemonic, matching the disassembler's output.
func (o Op) String() string {
	if n, ok := opNames[o]; ok {
		return n
	}
	return "???"
}

// Instruction is a decoded opcode: the operation plus the addressing mode
// carrying whatever operand bytes were read from the instruction stream.
type Instruction struct {
	Op     Op
	Mode   AddressingMode
	Cycles uint8
}

// String renders the instruction in assembler-ish form for error messages
// and logging.
func (i Instruction) String() string {
	return fmt.Sprintf("%s %s", i.Op, i.Mode)
}

type opcodeEntry struct {
	Op     Op
	Mode   Mode
	Cycles uint8
	Fatal  bool
}

// Decode reads one instruction from bus starting at *pc, advancing *pc past
// the opcode and any operand bytes it consumes. It is a total function over
// every opcode byte: the 151 documented opcodes and 92 documented
// undocumented opcodes decode to a concrete Instruction; the remaining 13
// opcodes (ANC, ALR, ARR, XAA/ANE, LAX-immediate/LXA, AXS, and the
// AHX/TAS/SHY/SHX/LAS family), whose result depends on analog bus behavior
// this emulator does not model, decode to an IllegalOpcode error.
func Decode(bus memory.Bank, pc *addr.Address) (Instruction, uint8, error) {
	start := *pc
	opcode := bus.Read(start.Uint16())
	*pc = pc.Add(1)

	entry := opcodeTable[opcode]
	if entry.Fatal {
		return Instruction{}, opcode, IllegalOpcode{PC: start, Opcode: opcode}
	}

	mode := AddressingMode{Kind: entry.Mode}
	switch entry.Mode {
	case Implicit, Accumulator:
		// No operand bytes.
	case Immediate:
		mode.Byte = bus.Read(pc.Uint16())
		*pc = pc.Add(1)
	case ZeroPage, ZeroPageX, ZeroPageY, IndexedIndirect, IndirectIndexed:
		mode.Byte = bus.Read(pc.Uint16())
		*pc = pc.Add(1)
	case Relative:
		mode.Signed = int8(bus.Read(pc.Uint16()))
		*pc = pc.Add(1)
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		low := bus.Read(pc.Uint16())
		*pc = pc.Add(1)
		high := bus.Read(pc.Uint16())
		*pc = pc.Add(1)
		mode.Addr = addr.FromBytes(low, high)
	}

	return Instruction{Op: entry.Op, Mode: mode, Cycles: entry.Cycles}, opcode, nil
}
