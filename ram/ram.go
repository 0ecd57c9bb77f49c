// Package ram implements the NES's 2KiB of system RAM, aliased across the
// $0000-$1FFF CPU address window.
package ram

import "github.com/jmchacon/nes6502/memory"

// Size is the physical backing size of NES system RAM. The CPU address
// decoder aliases $0000-$1FFF down to these 2048 bytes by masking to 11 bits.
const Size = 2048

// RAM is the 2KiB system RAM bank. It wraps a memory.New8BitRAMBank bank of
// Size bytes and masks every address to 11 bits itself, so any address in
// $0000-$1FFF (or beyond) aliases onto the 2048 physical bytes.
type RAM struct {
	bank       memory.Bank
	parent     memory.Bank
	databusVal uint8
}

// New constructs the 2KiB NES RAM bank. parent, if non-nil, is returned by
// Parent so memory.LatestDatabusVal can walk up to the outermost bus;
// DatabusVal itself reports only this bank's last transaction.
func New(parent memory.Bank) (*RAM, error) {
	b, err := memory.New8BitRAMBank(Size, parent)
	if err != nil {
		return nil, err
	}
	return &RAM{bank: b, parent: parent}, nil
}

// Read returns the byte at addr & 0x07FF.
func (r *RAM) Read(addr uint16) uint8 {
	val := r.bank.Read(addr & (Size - 1))
	r.databusVal = val
	return val
}

// Write stores val at addr & 0x07FF.
func (r *RAM) Write(addr uint16, val uint8) {
	r.databusVal = val
	r.bank.Write(addr&(Size-1), val)
}

// PowerOn randomizes RAM contents, matching real hardware's undefined SRAM
// state at power-up.
func (r *RAM) PowerOn() {
	r.bank.PowerOn()
}

// Parent returns the bus this RAM bank is mounted in, if any.
func (r *RAM) Parent() memory.Bank {
	return r.parent
}

// DatabusVal returns the last value that moved across this bank.
func (r *RAM) DatabusVal() uint8 {
	return r.databusVal
}
