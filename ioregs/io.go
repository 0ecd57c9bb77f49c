// Package ioregs implements the CPU-visible $4000-$401F I/O window: the
// APU and controller register addresses (stubbed - no sound synthesis, no
// controller input, per scope) and the $4018-$401F disabled region, which
// this module services as open bus.
package ioregs

import "github.com/jmchacon/nes6502/memory"

const (
	base     = 0x4000
	size     = 0x0018 // $4000-$4017 inclusive
	disabledBase = 0x4018
	disabledSize = 0x0008 // $4018-$401F inclusive
)

// Registers is the stubbed APU/controller/OAM-DMA-adjacent register file.
// Every register in $4000-$4017 accepts writes and reads back the last value
// written to it; the $4018-$401F disabled region returns the data-bus latch.
// No register here produces sound or reads a controller, matching the
// explicit exclusion of the APU and controller input from this system.
type Registers struct {
	regs    [size]uint8
	lastBus uint8
	parent  memory.Bank
}

// New constructs the I/O register window. parent, if non-nil, chains
// DatabusVal lookups the way every other memory.Bank implementation in this
// module does.
func New(parent memory.Bank) *Registers {
	return &Registers{parent: parent}
}

// Read services a CPU access anywhere in $4000-$401F. Addresses $4018-$401F
// are not backed by any register and return the last value seen on the
// bus, reproducing open-bus behavior for the disabled region.
func (r *Registers) Read(addr uint16) uint8 {
	if addr >= disabledBase && addr < disabledBase+disabledSize {
		return r.lastBus
	}
	idx := addr - base
	val := r.regs[idx]
	r.lastBus = val
	return val
}

// Write stores val into the addressed register. $4014 (OAM DMA trigger) is
// intercepted by the owning bus before reaching here; if a caller writes it
// anyway it's treated as inert storage, matching every other unused
// register in this window.
func (r *Registers) Write(addr uint16, val uint8) {
	r.lastBus = val
	if addr >= disabledBase && addr < disabledBase+disabledSize {
		return
	}
	idx := addr - base
	r.regs[idx] = val
}

// PowerOn zeros the register file, matching the APU/controller latches'
// documented power-on state closely enough for a stub that never drives
// sound or input.
func (r *Registers) PowerOn() {
	for i := range r.regs {
		r.regs[i] = 0
	}
	r.lastBus = 0
}

// Parent implements memory.Bank.
func (r *Registers) Parent() memory.Bank {
	return r.parent
}

// DatabusVal implements memory.Bank.
func (r *Registers) DatabusVal() uint8 {
	return r.lastBus
}
