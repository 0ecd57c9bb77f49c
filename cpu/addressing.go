package cpu

import (
	"fmt"

	"github.com/jmchacon/nes6502/addr"
	"github.com/jmchacon/nes6502/memory"
)

// Mode tags which of the 13 6502 addressing modes an AddressingMode value
// carries.
type Mode int

// The 13 addressing modes the decoder can produce.
const (
	Implicit Mode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndexedIndirect // (zp,X)
	IndirectIndexed // (zp),Y
)

var modeNames = map[Mode]string{
	Implicit:        "implicit",
	Accumulator:     "accumulator",
	Immediate:       "immediate",
	ZeroPage:        "zeropage",
	ZeroPageX:       "zeropage,x",
	ZeroPageY:       "zeropage,y",
	Relative:        "relative",
	Absolute:        "absolute",
	AbsoluteX:       "absolute,x",
	AbsoluteY:       "absolute,y",
	Indirect:        "indirect",
	IndexedIndirect: "(indirect,x)",
	IndirectIndexed: "(indirect),y",
}

func (m Mode) String() string {
	if n, ok := modeNames[m]; ok {
		return n
	}
	return "unknown"
}

// AddressingMode is a decoded operand: which of the 13 variants, plus
// whichever operand byte(s) the instruction stream carried. Only the field
// relevant to Kind is populated.
type AddressingMode struct {
	Kind   Mode
	Byte   uint8       // ZeroPage*, Immediate, IndexedIndirect, IndirectIndexed operand
	Signed int8        // Relative operand
	Addr   addr.Address // Absolute*, Indirect operand
}

// hasAddress reports whether EffectiveAddress is defined for this mode.
func (a AddressingMode) hasAddress() bool {
	switch a.Kind {
	case Implicit, Accumulator, Immediate:
		return false
	default:
		return true
	}
}

// EffectiveAddress computes the target address per the §4.3 contract. It
// panics for modes with no address (Implicit/Accumulator/Immediate); asking
// for one there is a decoder bug, not a runtime condition.
func (a AddressingMode) EffectiveAddress(bus memory.Bank, r *Registers) addr.Address {
	switch a.Kind {
	case ZeroPage:
		return addr.FromZeroPage(a.Byte)
	case ZeroPageX:
		return addr.FromZeroPage(addr.ZeroPageWrap(a.Byte, r.X))
	case ZeroPageY:
		return addr.FromZeroPage(addr.ZeroPageWrap(a.Byte, r.Y))
	case Relative:
		return r.PC.AddSigned(a.Signed)
	case Absolute:
		return a.Addr
	case AbsoluteX:
		return a.Addr.Add(uint16(r.X))
	case AbsoluteY:
		return a.Addr.Add(uint16(r.Y))
	case Indirect:
		return readIndirectBuggy(bus, a.Addr)
	case IndexedIndirect:
		ptr := addr.ZeroPageWrap(a.Byte, r.X)
		return readPointerZeroPage(bus, ptr)
	case IndirectIndexed:
		base := readPointerZeroPage(bus, a.Byte)
		return base.Add(uint16(r.Y))
	default:
		panic(fmt.Sprintf("EffectiveAddress: mode %s has no address", a.Kind))
	}
}

// readIndirectBuggy reads the 16 bit pointer at ptr reproducing the 6502's
// JMP (indirect) bug: the high byte read does not carry out of the low byte,
// it wraps within the same page.
func readIndirectBuggy(bus memory.Bank, ptr addr.Address) addr.Address {
	low := bus.Read(ptr.Uint16())
	hiAddr := addr.FromBytes(ptr.Low()+1, ptr.High())
	high := bus.Read(hiAddr.Uint16())
	return addr.FromBytes(low, high)
}

// readPointerZeroPage reads a little-endian pointer whose two bytes both
// live in the zero page, wrapping within it.
func readPointerZeroPage(bus memory.Bank, zp uint8) addr.Address {
	low := bus.Read(addr.FromZeroPage(zp).Uint16())
	high := bus.Read(addr.FromZeroPage(zp + 1).Uint16())
	return addr.FromBytes(low, high)
}

// Load returns the operand byte for a, reading through bus where the mode
// requires a memory access.
func (a AddressingMode) Load(bus memory.Bank, r *Registers) uint8 {
	switch a.Kind {
	case Immediate:
		return a.Byte
	case Accumulator:
		return r.A
	default:
		return bus.Read(a.EffectiveAddress(bus, r).Uint16())
	}
}

// Store writes v as the operand for a. Calling this for Immediate or
// Implicit is a decoder bug.
func (a AddressingMode) Store(bus memory.Bank, r *Registers, v uint8) {
	switch a.Kind {
	case Accumulator:
		r.A = v
	case Immediate, Implicit:
		panic(fmt.Sprintf("Store: mode %s is not a storable target", a.Kind))
	default:
		bus.Write(a.EffectiveAddress(bus, r).Uint16(), v)
	}
}
