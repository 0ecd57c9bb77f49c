// Package addr implements 16 bit address arithmetic for the 6502 address
// space: wrapping add/subtract, little-endian byte composition, and the
// bit-masking aliasing used by mirrored memory regions.
package addr

import "fmt"

// Address is a 16 bit value in the 6502 address space. All arithmetic on it
// wraps modulo 2^16, matching the real CPU's program counter and pointer
// math.
type Address uint16

// FromBytes composes an Address from a little-endian low/high pair, the
// on-wire format for every 16 bit value the CPU reads or writes (vectors,
// pointers, JMP/JSR targets).
func FromBytes(low, high uint8) Address {
	return Address(uint16(high)<<8 | uint16(low))
}

// FromZeroPage builds a zero-page Address from a single byte (high byte 0).
func FromZeroPage(b uint8) Address {
	return Address(b)
}

// Low returns the low byte of the address.
func (a Address) Low() uint8 {
	return uint8(a)
}

// High returns the high byte of the address.
func (a Address) High() uint8 {
	return uint8(a >> 8)
}

// Add returns a + n, wrapping modulo 2^16.
func (a Address) Add(n uint16) Address {
	return Address(uint16(a) + n)
}

// AddSigned returns a + n where n is sign-extended first, used for relative
// branch targets.
func (a Address) AddSigned(n int8) Address {
	return Address(uint16(int32(a) + int32(n)))
}

// Alias masks the address to its low n bits, reproducing the NES's
// incomplete address decoding (e.g. 11 bits for RAM, 3 bits for PPU
// registers).
func (a Address) Alias(bits uint) Address {
	mask := uint16(1)<<bits - 1
	return Address(uint16(a) & mask)
}

// SamePage reports whether a and b share the same high byte.
func (a Address) SamePage(b Address) bool {
	return a.High() == b.High()
}

// ZeroPageWrap adds n to the low byte only, wrapping within the zero page.
// This is the rule for ZeroPage,X / ZeroPage,Y and the two pointer-byte
// reads of (zp,X) / (zp),Y.
func ZeroPageWrap(zp, n uint8) uint8 {
	return zp + n
}

// Uint16 returns the address as a plain uint16.
func (a Address) Uint16() uint16 {
	return uint16(a)
}

// String formats the address as four upper-case hex digits in 0xHHHH form.
func (a Address) String() string {
	return fmt.Sprintf("0x%04X", uint16(a))
}
