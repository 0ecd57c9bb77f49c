package cpu

// opcodeTable is the full 256-entry 6502/2A03 decode table. Grounded on the
// disassembler's opcode switch, which enumerates the same 256 cases; cycle
// costs follow the standard per-instruction timings for each operation's
// addressing mode (read-modify-write and indexed-store forms take the
// well-known extra cycles, and the handful of opcodes with fixed historical
// costs - BRK, JSR, RTS, RTI, the stack ops, JMP - are called out directly).
// 13 opcodes are marked Fatal: ANC (0x0B/0x2B), ALR (0x4B), ARR (0x6B),
// XAA/ANE (0x8B), LAX-immediate/LXA (0xAB), AXS (0xCB), and the
// AHX/TAS/SHY/SHX/LAS family (0x93/0x9B/0x9C/0x9E/0x9F/0xBB) - all depend on
// analog bus behavior this emulator does not model.
var opcodeTable = [256]opcodeEntry{
	0x00: {Op: OpBRK, Mode: Immediate, Cycles: 7},
	0x01: {Op: OpORA, Mode: IndexedIndirect, Cycles: 6},
	0x02: {Op: OpSTP, Mode: Implicit, Cycles: 2},
	0x03: {Op: OpSLO, Mode: IndexedIndirect, Cycles: 8},
	0x04: {Op: OpNOP, Mode: ZeroPage, Cycles: 3},
	0x05: {Op: OpORA, Mode: ZeroPage, Cycles: 3},
	0x06: {Op: OpASL, Mode: ZeroPage, Cycles: 5},
	0x07: {Op: OpSLO, Mode: ZeroPage, Cycles: 5},
	0x08: {Op: OpPHP, Mode: Implicit, Cycles: 3},
	0x09: {Op: OpORA, Mode: Immediate, Cycles: 2},
	0x0A: {Op: OpASL, Mode: Accumulator, Cycles: 2},
	0x0B: {Fatal: true}, // ANC
	0x0C: {Op: OpNOP, Mode: Absolute, Cycles: 4},
	0x0D: {Op: OpORA, Mode: Absolute, Cycles: 4},
	0x0E: {Op: OpASL, Mode: Absolute, Cycles: 6},
	0x0F: {Op: OpSLO, Mode: Absolute, Cycles: 6},
	0x10: {Op: OpBPL, Mode: Relative, Cycles: 2},
	0x11: {Op: OpORA, Mode: IndirectIndexed, Cycles: 5},
	0x12: {Op: OpSTP, Mode: Implicit, Cycles: 2},
	0x13: {Op: OpSLO, Mode: IndirectIndexed, Cycles: 8},
	0x14: {Op: OpNOP, Mode: ZeroPageX, Cycles: 4},
	0x15: {Op: OpORA, Mode: ZeroPageX, Cycles: 4},
	0x16: {Op: OpASL, Mode: ZeroPageX, Cycles: 6},
	0x17: {Op: OpSLO, Mode: ZeroPageX, Cycles: 6},
	0x18: {Op: OpCLC, Mode: Implicit, Cycles: 2},
	0x19: {Op: OpORA, Mode: AbsoluteY, Cycles: 4},
	0x1A: {Op: OpNOP, Mode: Implicit, Cycles: 2},
	0x1B: {Op: OpSLO, Mode: AbsoluteY, Cycles: 7},
	0x1C: {Op: OpNOP, Mode: AbsoluteX, Cycles: 4},
	0x1D: {Op: OpORA, Mode: AbsoluteX, Cycles: 4},
	0x1E: {Op: OpASL, Mode: AbsoluteX, Cycles: 7},
	0x1F: {Op: OpSLO, Mode: AbsoluteX, Cycles: 7},
	0x20: {Op: OpJSR, Mode: Absolute, Cycles: 6},
	0x21: {Op: OpAND, Mode: IndexedIndirect, Cycles: 6},
	0x22: {Op: OpSTP, Mode: Implicit, Cycles: 2},
	0x23: {Op: OpRLA, Mode: IndexedIndirect, Cycles: 8},
	0x24: {Op: OpBIT, Mode: ZeroPage, Cycles: 3},
	0x25: {Op: OpAND, Mode: ZeroPage, Cycles: 3},
	0x26: {Op: OpROL, Mode: ZeroPage, Cycles: 5},
	0x27: {Op: OpRLA, Mode: ZeroPage, Cycles: 5},
	0x28: {Op: OpPLP, Mode: Implicit, Cycles: 4},
	0x29: {Op: OpAND, Mode: Immediate, Cycles: 2},
	0x2A: {Op: OpROL, Mode: Accumulator, Cycles: 2},
	0x2B: {Fatal: true}, // ANC
	0x2C: {Op: OpBIT, Mode: Absolute, Cycles: 4},
	0x2D: {Op: OpAND, Mode: Absolute, Cycles: 4},
	0x2E: {Op: OpROL, Mode: Absolute, Cycles: 6},
	0x2F: {Op: OpRLA, Mode: Absolute, Cycles: 6},
	0x30: {Op: OpBMI, Mode: Relative, Cycles: 2},
	0x31: {Op: OpAND, Mode: IndirectIndexed, Cycles: 5},
	0x32: {Op: OpSTP, Mode: Implicit, Cycles: 2},
	0x33: {Op: OpRLA, Mode: IndirectIndexed, Cycles: 8},
	0x34: {Op: OpNOP, Mode: ZeroPageX, Cycles: 4},
	0x35: {Op: OpAND, Mode: ZeroPageX, Cycles: 4},
	0x36: {Op: OpROL, Mode: ZeroPageX, Cycles: 6},
	0x37: {Op: OpRLA, Mode: ZeroPageX, Cycles: 6},
	0x38: {Op: OpSEC, Mode: Implicit, Cycles: 2},
	0x39: {Op: OpAND, Mode: AbsoluteY, Cycles: 4},
	0x3A: {Op: OpNOP, Mode: Implicit, Cycles: 2},
	0x3B: {Op: OpRLA, Mode: AbsoluteY, Cycles: 7},
	0x3C: {Op: OpNOP, Mode: AbsoluteX, Cycles: 4},
	0x3D: {Op: OpAND, Mode: AbsoluteX, Cycles: 4},
	0x3E: {Op: OpROL, Mode: AbsoluteX, Cycles: 7},
	0x3F: {Op: OpRLA, Mode: AbsoluteX, Cycles: 7},
	0x40: {Op: OpRTI, Mode: Implicit, Cycles: 6},
	0x41: {Op: OpEOR, Mode: IndexedIndirect, Cycles: 6},
	0x42: {Op: OpSTP, Mode: Implicit, Cycles: 2},
	0x43: {Op: OpSRE, Mode: IndexedIndirect, Cycles: 8},
	0x44: {Op: OpNOP, Mode: ZeroPage, Cycles: 3},
	0x45: {Op: OpEOR, Mode: ZeroPage, Cycles: 3},
	0x46: {Op: OpLSR, Mode: ZeroPage, Cycles: 5},
	0x47: {Op: OpSRE, Mode: ZeroPage, Cycles: 5},
	0x48: {Op: OpPHA, Mode: Implicit, Cycles: 3},
	0x49: {Op: OpEOR, Mode: Immediate, Cycles: 2},
	0x4A: {Op: OpLSR, Mode: Accumulator, Cycles: 2},
	0x4B: {Fatal: true}, // ALR
	0x4C: {Op: OpJMP, Mode: Absolute, Cycles: 3},
	0x4D: {Op: OpEOR, Mode: Absolute, Cycles: 4},
	0x4E: {Op: OpLSR, Mode: Absolute, Cycles: 6},
	0x4F: {Op: OpSRE, Mode: Absolute, Cycles: 6},
	0x50: {Op: OpBVC, Mode: Relative, Cycles: 2},
	0x51: {Op: OpEOR, Mode: IndirectIndexed, Cycles: 5},
	0x52: {Op: OpSTP, Mode: Implicit, Cycles: 2},
	0x53: {Op: OpSRE, Mode: IndirectIndexed, Cycles: 8},
	0x54: {Op: OpNOP, Mode: ZeroPageX, Cycles: 4},
	0x55: {Op: OpEOR, Mode: ZeroPageX, Cycles: 4},
	0x56: {Op: OpLSR, Mode: ZeroPageX, Cycles: 6},
	0x57: {Op: OpSRE, Mode: ZeroPageX, Cycles: 6},
	0x58: {Op: OpCLI, Mode: Implicit, Cycles: 2},
	0x59: {Op: OpEOR, Mode: AbsoluteY, Cycles: 4},
	0x5A: {Op: OpNOP, Mode: Implicit, Cycles: 2},
	0x5B: {Op: OpSRE, Mode: AbsoluteY, Cycles: 7},
	0x5C: {Op: OpNOP, Mode: AbsoluteX, Cycles: 4},
	0x5D: {Op: OpEOR, Mode: AbsoluteX, Cycles: 4},
	0x5E: {Op: OpLSR, Mode: AbsoluteX, Cycles: 7},
	0x5F: {Op: OpSRE, Mode: AbsoluteX, Cycles: 7},
	0x60: {Op: OpRTS, Mode: Implicit, Cycles: 6},
	0x61: {Op: OpADC, Mode: IndexedIndirect, Cycles: 6},
	0x62: {Op: OpSTP, Mode: Implicit, Cycles: 2},
	0x63: {Op: OpRRA, Mode: IndexedIndirect, Cycles: 8},
	0x64: {Op: OpNOP, Mode: ZeroPage, Cycles: 3},
	0x65: {Op: OpADC, Mode: ZeroPage, Cycles: 3},
	0x66: {Op: OpROR, Mode: ZeroPage, Cycles: 5},
	0x67: {Op: OpRRA, Mode: ZeroPage, Cycles: 5},
	0x68: {Op: OpPLA, Mode: Implicit, Cycles: 4},
	0x69: {Op: OpADC, Mode: Immediate, Cycles: 2},
	0x6A: {Op: OpROR, Mode: Accumulator, Cycles: 2},
	0x6B: {Fatal: true}, // ARR
	0x6C: {Op: OpJMP, Mode: Indirect, Cycles: 5},
	0x6D: {Op: OpADC, Mode: Absolute, Cycles: 4},
	0x6E: {Op: OpROR, Mode: Absolute, Cycles: 6},
	0x6F: {Op: OpRRA, Mode: Absolute, Cycles: 6},
	0x70: {Op: OpBVS, Mode: Relative, Cycles: 2},
	0x71: {Op: OpADC, Mode: IndirectIndexed, Cycles: 5},
	0x72: {Op: OpSTP, Mode: Implicit, Cycles: 2},
	0x73: {Op: OpRRA, Mode: IndirectIndexed, Cycles: 8},
	0x74: {Op: OpNOP, Mode: ZeroPageX, Cycles: 4},
	0x75: {Op: OpADC, Mode: ZeroPageX, Cycles: 4},
	0x76: {Op: OpROR, Mode: ZeroPageX, Cycles: 6},
	0x77: {Op: OpRRA, Mode: ZeroPageX, Cycles: 6},
	0x78: {Op: OpSEI, Mode: Implicit, Cycles: 2},
	0x79: {Op: OpADC, Mode: AbsoluteY, Cycles: 4},
	0x7A: {Op: OpNOP, Mode: Implicit, Cycles: 2},
	0x7B: {Op: OpRRA, Mode: AbsoluteY, Cycles: 7},
	0x7C: {Op: OpNOP, Mode: AbsoluteX, Cycles: 4},
	0x7D: {Op: OpADC, Mode: AbsoluteX, Cycles: 4},
	0x7E: {Op: OpROR, Mode: AbsoluteX, Cycles: 7},
	0x7F: {Op: OpRRA, Mode: AbsoluteX, Cycles: 7},
	0x80: {Op: OpNOP, Mode: Immediate, Cycles: 2},
	0x81: {Op: OpSTA, Mode: IndexedIndirect, Cycles: 6},
	0x82: {Op: OpNOP, Mode: Immediate, Cycles: 2},
	0x83: {Op: OpSAX, Mode: IndexedIndirect, Cycles: 6},
	0x84: {Op: OpSTY, Mode: ZeroPage, Cycles: 3},
	0x85: {Op: OpSTA, Mode: ZeroPage, Cycles: 3},
	0x86: {Op: OpSTX, Mode: ZeroPage, Cycles: 3},
	0x87: {Op: OpSAX, Mode: ZeroPage, Cycles: 3},
	0x88: {Op: OpDEY, Mode: Implicit, Cycles: 2},
	0x89: {Op: OpNOP, Mode: Immediate, Cycles: 2},
	0x8A: {Op: OpTXA, Mode: Implicit, Cycles: 2},
	0x8B: {Fatal: true}, // XAA/ANE
	0x8C: {Op: OpSTY, Mode: Absolute, Cycles: 4},
	0x8D: {Op: OpSTA, Mode: Absolute, Cycles: 4},
	0x8E: {Op: OpSTX, Mode: Absolute, Cycles: 4},
	0x8F: {Op: OpSAX, Mode: Absolute, Cycles: 4},
	0x90: {Op: OpBCC, Mode: Relative, Cycles: 2},
	0x91: {Op: OpSTA, Mode: IndirectIndexed, Cycles: 6},
	0x92: {Op: OpSTP, Mode: Implicit, Cycles: 2},
	0x93: {Fatal: true}, // AHX
	0x94: {Op: OpSTY, Mode: ZeroPageX, Cycles: 4},
	0x95: {Op: OpSTA, Mode: ZeroPageX, Cycles: 4},
	0x96: {Op: OpSTX, Mode: ZeroPageY, Cycles: 4},
	0x97: {Op: OpSAX, Mode: ZeroPageY, Cycles: 4},
	0x98: {Op: OpTYA, Mode: Implicit, Cycles: 2},
	0x99: {Op: OpSTA, Mode: AbsoluteY, Cycles: 5},
	0x9A: {Op: OpTXS, Mode: Implicit, Cycles: 2},
	0x9B: {Fatal: true}, // TAS
	0x9C: {Fatal: true}, // SHY
	0x9D: {Op: OpSTA, Mode: AbsoluteX, Cycles: 5},
	0x9E: {Fatal: true}, // SHX
	0x9F: {Fatal: true}, // AHX
	0xA0: {Op: OpLDY, Mode: Immediate, Cycles: 2},
	0xA1: {Op: OpLDA, Mode: IndexedIndirect, Cycles: 6},
	0xA2: {Op: OpLDX, Mode: Immediate, Cycles: 2},
	0xA3: {Op: OpLAX, Mode: IndexedIndirect, Cycles: 6},
	0xA4: {Op: OpLDY, Mode: ZeroPage, Cycles: 3},
	0xA5: {Op: OpLDA, Mode: ZeroPage, Cycles: 3},
	0xA6: {Op: OpLDX, Mode: ZeroPage, Cycles: 3},
	0xA7: {Op: OpLAX, Mode: ZeroPage, Cycles: 3},
	0xA8: {Op: OpTAY, Mode: Implicit, Cycles: 2},
	0xA9: {Op: OpLDA, Mode: Immediate, Cycles: 2},
	0xAA: {Op: OpTAX, Mode: Implicit, Cycles: 2},
	0xAB: {Fatal: true}, // LAX-immediate/LXA
	0xAC: {Op: OpLDY, Mode: Absolute, Cycles: 4},
	0xAD: {Op: OpLDA, Mode: Absolute, Cycles: 4},
	0xAE: {Op: OpLDX, Mode: Absolute, Cycles: 4},
	0xAF: {Op: OpLAX, Mode: Absolute, Cycles: 4},
	0xB0: {Op: OpBCS, Mode: Relative, Cycles: 2},
	0xB1: {Op: OpLDA, Mode: IndirectIndexed, Cycles: 5},
	0xB2: {Op: OpSTP, Mode: Implicit, Cycles: 2},
	0xB3: {Op: OpLAX, Mode: IndirectIndexed, Cycles: 5},
	0xB4: {Op: OpLDY, Mode: ZeroPageX, Cycles: 4},
	0xB5: {Op: OpLDA, Mode: ZeroPageX, Cycles: 4},
	0xB6: {Op: OpLDX, Mode: ZeroPageY, Cycles: 4},
	0xB7: {Op: OpLAX, Mode: ZeroPageY, Cycles: 4},
	0xB8: {Op: OpCLV, Mode: Implicit, Cycles: 2},
	0xB9: {Op: OpLDA, Mode: AbsoluteY, Cycles: 4},
	0xBA: {Op: OpTSX, Mode: Implicit, Cycles: 2},
	0xBB: {Fatal: true}, // LAS
	0xBC: {Op: OpLDY, Mode: AbsoluteX, Cycles: 4},
	0xBD: {Op: OpLDA, Mode: AbsoluteX, Cycles: 4},
	0xBE: {Op: OpLDX, Mode: AbsoluteY, Cycles: 4},
	0xBF: {Op: OpLAX, Mode: AbsoluteY, Cycles: 4},
	0xC0: {Op: OpCPY, Mode: Immediate, Cycles: 2},
	0xC1: {Op: OpCMP, Mode: IndexedIndirect, Cycles: 6},
	0xC2: {Op: OpNOP, Mode: Immediate, Cycles: 2},
	0xC3: {Op: OpDCP, Mode: IndexedIndirect, Cycles: 8},
	0xC4: {Op: OpCPY, Mode: ZeroPage, Cycles: 3},
	0xC5: {Op: OpCMP, Mode: ZeroPage, Cycles: 3},
	0xC6: {Op: OpDEC, Mode: ZeroPage, Cycles: 5},
	0xC7: {Op: OpDCP, Mode: ZeroPage, Cycles: 5},
	0xC8: {Op: OpINY, Mode: Implicit, Cycles: 2},
	0xC9: {Op: OpCMP, Mode: Immediate, Cycles: 2},
	0xCA: {Op: OpDEX, Mode: Implicit, Cycles: 2},
	0xCB: {Fatal: true}, // AXS
	0xCC: {Op: OpCPY, Mode: Absolute, Cycles: 4},
	0xCD: {Op: OpCMP, Mode: Absolute, Cycles: 4},
	0xCE: {Op: OpDEC, Mode: Absolute, Cycles: 6},
	0xCF: {Op: OpDCP, Mode: Absolute, Cycles: 6},
	0xD0: {Op: OpBNE, Mode: Relative, Cycles: 2},
	0xD1: {Op: OpCMP, Mode: IndirectIndexed, Cycles: 5},
	0xD2: {Op: OpSTP, Mode: Implicit, Cycles: 2},
	0xD3: {Op: OpDCP, Mode: IndirectIndexed, Cycles: 8},
	0xD4: {Op: OpNOP, Mode: ZeroPageX, Cycles: 4},
	0xD5: {Op: OpCMP, Mode: ZeroPageX, Cycles: 4},
	0xD6: {Op: OpDEC, Mode: ZeroPageX, Cycles: 6},
	0xD7: {Op: OpDCP, Mode: ZeroPageX, Cycles: 6},
	0xD8: {Op: OpCLD, Mode: Implicit, Cycles: 2},
	0xD9: {Op: OpCMP, Mode: AbsoluteY, Cycles: 4},
	0xDA: {Op: OpNOP, Mode: Implicit, Cycles: 2},
	0xDB: {Op: OpDCP, Mode: AbsoluteY, Cycles: 7},
	0xDC: {Op: OpNOP, Mode: AbsoluteX, Cycles: 4},
	0xDD: {Op: OpCMP, Mode: AbsoluteX, Cycles: 4},
	0xDE: {Op: OpDEC, Mode: AbsoluteX, Cycles: 7},
	0xDF: {Op: OpDCP, Mode: AbsoluteX, Cycles: 7},
	0xE0: {Op: OpCPX, Mode: Immediate, Cycles: 2},
	0xE1: {Op: OpSBC, Mode: IndexedIndirect, Cycles: 6},
	0xE2: {Op: OpNOP, Mode: Immediate, Cycles: 2},
	0xE3: {Op: OpISC, Mode: IndexedIndirect, Cycles: 8},
	0xE4: {Op: OpCPX, Mode: ZeroPage, Cycles: 3},
	0xE5: {Op: OpSBC, Mode: ZeroPage, Cycles: 3},
	0xE6: {Op: OpINC, Mode: ZeroPage, Cycles: 5},
	0xE7: {Op: OpISC, Mode: ZeroPage, Cycles: 5},
	0xE8: {Op: OpINX, Mode: Implicit, Cycles: 2},
	0xE9: {Op: OpSBC, Mode: Immediate, Cycles: 2},
	0xEA: {Op: OpNOP, Mode: Implicit, Cycles: 2},
	0xEB: {Op: OpSBC, Mode: Immediate, Cycles: 2},
	0xEC: {Op: OpCPX, Mode: Absolute, Cycles: 4},
	0xED: {Op: OpSBC, Mode: Absolute, Cycles: 4},
	0xEE: {Op: OpINC, Mode: Absolute, Cycles: 6},
	0xEF: {Op: OpISC, Mode: Absolute, Cycles: 6},
	0xF0: {Op: OpBEQ, Mode: Relative, Cycles: 2},
	0xF1: {Op: OpSBC, Mode: IndirectIndexed, Cycles: 5},
	0xF2: {Op: OpSTP, Mode: Implicit, Cycles: 2},
	0xF3: {Op: OpISC, Mode: IndirectIndexed, Cycles: 8},
	0xF4: {Op: OpNOP, Mode: ZeroPageX, Cycles: 4},
	0xF5: {Op: OpSBC, Mode: ZeroPageX, Cycles: 4},
	0xF6: {Op: OpINC, Mode: ZeroPageX, Cycles: 6},
	0xF7: {Op: OpISC, Mode: ZeroPageX, Cycles: 6},
	0xF8: {Op: OpSED, Mode: Implicit, Cycles: 2},
	0xF9: {Op: OpSBC, Mode: AbsoluteY, Cycles: 4},
	0xFA: {Op: OpNOP, Mode: Implicit, Cycles: 2},
	0xFB: {Op: OpISC, Mode: AbsoluteY, Cycles: 7},
	0xFC: {Op: OpNOP, Mode: AbsoluteX, Cycles: 4},
	0xFD: {Op: OpSBC, Mode: AbsoluteX, Cycles: 4},
	0xFE: {Op: OpINC, Mode: AbsoluteX, Cycles: 7},
	0xFF: {Op: OpISC, Mode: AbsoluteX, Cycles: 7},}
