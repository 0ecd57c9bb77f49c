// Package flags implements the 6502 status register (P) as an opaque byte
// with named-bit accessors, keeping the BREAK/UNUSED masking rules that only
// apply at the stack boundary out of the common case.
package flags

// Flags is the 6502 P register. The zero value has no bits set; callers
// constructing a fresh register should use New, which sets UNUSED per the
// hardware invariant that it always reads as 1.
type Flags uint8

// Bit positions within the status byte.
const (
	Carry Flags = 1 << iota
	Zero
	InterruptDisable
	Decimal
	Break
	Unused
	Overflow
	Negative
)

// New returns a Flags value with UNUSED and INTERRUPT_DISABLE set, the power-on
// state of the P register.
func New() Flags {
	return Unused | InterruptDisable
}

// Set returns f with bit set to 1.
func (f Flags) Set(bit Flags) Flags {
	return f | bit
}

// Clear returns f with bit set to 0.
func (f Flags) Clear(bit Flags) Flags {
	return f &^ bit
}

// Assign returns f with bit set to on.
func (f Flags) Assign(bit Flags, on bool) Flags {
	if on {
		return f.Set(bit)
	}
	return f.Clear(bit)
}

// Test reports whether bit is set.
func (f Flags) Test(bit Flags) bool {
	return f&bit != 0
}

// Byte returns the raw status byte exactly as held in P (UNUSED always 1,
// BREAK reflecting whatever was last assigned to it in-register, though
// nothing in this module assigns BREAK outside of the stack boundary).
func (f Flags) Byte() uint8 {
	return uint8(f)
}

// FromByte reconstructs a live P register from a raw byte, forcing UNUSED on.
// Used when restoring P from the stack (PLP/RTI); callers there are also
// responsible for clearing BREAK per the 6502's PLP/RTI contract.
func FromByte(b uint8) Flags {
	return Flags(b) | Unused
}

// PushByte returns the byte to push to the stack. UNUSED is always forced to
// 1; BREAK is set to brk regardless of its value in the live register (1 for
// PHP/BRK, 0 for a hardware IRQ/NMI push).
func (f Flags) PushByte(brk bool) uint8 {
	v := f | Unused
	if brk {
		v |= Break
	} else {
		v = v.Clear(Break)
	}
	return uint8(v)
}

// ZeroNegativeFrom returns f with ZERO and NEGATIVE set from the 8 bit result
// value v, the common post-ALU-op flag update used by nearly every
// load/arithmetic/shift instruction.
func (f Flags) ZeroNegativeFrom(v uint8) Flags {
	f = f.Assign(Zero, v == 0)
	f = f.Assign(Negative, v&0x80 != 0)
	return f
}
