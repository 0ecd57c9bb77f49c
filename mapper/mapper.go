// Package mapper implements cartridge mapper views of the CPU and PPU
// address spaces. Only the NROM baseline (iNES mapper 0) is implemented:
// 16 or 32 KiB PRG mapped at $8000, with the 16 KiB variant mirrored to fill
// the $8000-$FFFF window, plus an 8 KiB CHR (ROM or RAM) view for the PPU.
package mapper

import (
	"fmt"
	"math"

	"github.com/jmchacon/nes6502/memory"
	"github.com/jmchacon/nes6502/rom"
)

const (
	cpuWindowBase = 0x8000
	cpuWindowMask = 0x7FFF

	vramSize    = 0x0800
	paletteSize = 0x20
	nametableA  = 0x2000
	nametableB  = 0x2400
	nametableC  = 0x2800
	nametableD  = 0x2C00
	paletteBase = 0x3F00
)

// NROM is the baseline mapper: a read-only PRG view mirrored to fit the CPU
// window, and a CHR view (ROM or RAM) plus the shared nametable VRAM and
// palette RAM that round out the PPU's address space.
type NROM struct {
	prg     []uint8
	prgMask uint16

	chr         []uint8
	chrWritable bool

	vram      [vramSize]uint8
	palette   [paletteSize]uint8
	mirroring rom.Mirroring

	parent     memory.Bank
	databusVal uint8
}

// New builds an NROM mapper from a parsed ROM partition. PRG must be 16KiB
// or 32KiB (mirroring only makes sense for a power-of-two that divides
// evenly into the 32KiB CPU window).
func New(p *rom.Partition, parent memory.Bank) (*NROM, error) {
	size := len(p.PRG)
	if size != 16384 && size != 32768 {
		return nil, fmt.Errorf("mapper: NROM requires 16KiB or 32KiB PRG, got %d bytes", size)
	}
	mask := uint16(cpuWindowMask) >> uint(math.Log2(32768/float64(size)))
	return &NROM{
		prg:         p.PRG,
		prgMask:     mask,
		chr:         p.CHR,
		chrWritable: p.CHRIsRAM,
		mirroring:   p.Mirroring,
		parent:      parent,
	}, nil
}

// Read implements memory.Bank for the CPU-side $8000-$FFFF PRG window.
func (n *NROM) Read(addr uint16) uint8 {
	val := n.prg[addr&n.prgMask]
	n.databusVal = val
	return val
}

// Write is a no-op: NROM PRG is pure ROM, ignoring PRG-RAM per §4.9 (no
// component in this system exercises battery-backed save RAM).
func (n *NROM) Write(addr uint16, val uint8) {
	n.databusVal = val
}

// PowerOn implements memory.Bank; PRG ROM contents never change.
func (n *NROM) PowerOn() {}

// Parent implements memory.Bank.
func (n *NROM) Parent() memory.Bank {
	return n.parent
}

// DatabusVal implements memory.Bank.
func (n *NROM) DatabusVal() uint8 {
	return n.databusVal
}

// ReadPPU services the PPU-side address space: pattern tables (CHR),
// mirrored nametables, and palette RAM with 5-bit aliasing.
func (n *NROM) ReadPPU(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		val := n.chr[addr]
		n.databusVal = val
		return val
	case addr < 0x3F00:
		val := n.vram[n.nametableIndex(addr)]
		n.databusVal = val
		return val
	default:
		val := n.palette[paletteIndex(addr)]
		n.databusVal = val
		return val
	}
}

// WritePPU writes through to CHR RAM (if present), nametable VRAM, or
// palette RAM. Writes to CHR ROM are silently ignored.
func (n *NROM) WritePPU(addr uint16, val uint8) {
	n.databusVal = val
	switch {
	case addr < 0x2000:
		if n.chrWritable {
			n.chr[addr] = val
		}
	case addr < 0x3F00:
		n.vram[n.nametableIndex(addr)] = val
	default:
		n.palette[paletteIndex(addr)] = val
	}
}

// nametableIndex folds a $2000-$3EFF PPU address down to a physical VRAM
// offset according to the cartridge's mirroring mode.
func (n *NROM) nametableIndex(addr uint16) uint16 {
	a := (addr - nametableA) % 0x1000
	table := a / 0x0400
	offset := a % 0x0400
	switch n.mirroring {
	case rom.Vertical:
		return (table%2)*0x0400 + offset
	case rom.SingleScreen:
		return offset
	default: // Horizontal
		return (table/2)*0x0400 + offset
	}
}

// paletteIndex aliases any $3F00-$3FFF address to the 32 physical palette
// bytes, including the NES quirk where $3F10/$3F14/$3F18/$3F1C mirror the
// background color entries at $3F00/$3F04/$3F08/$3F0C.
func paletteIndex(addr uint16) uint16 {
	idx := (addr - paletteBase) % paletteSize
	if idx >= 0x10 && idx%4 == 0 {
		idx -= 0x10
	}
	return idx
}
