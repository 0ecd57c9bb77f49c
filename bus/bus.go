// Package bus composes RAM, the PPU register port, the I/O register window,
// and a cartridge mapper into the single CPU-visible address space, and
// drives the CPU/PPU clock relationship needed to run a program.
package bus

import (
	"github.com/jmchacon/nes6502/cpu"
	"github.com/jmchacon/nes6502/ioregs"
	"github.com/jmchacon/nes6502/mapper"
	"github.com/jmchacon/nes6502/memory"
	"github.com/jmchacon/nes6502/ppu"
	"github.com/jmchacon/nes6502/ram"
	"github.com/jmchacon/nes6502/rom"
)

// Address ranges of the composed map, per the CPU's view of the world.
const (
	ramBase    = 0x0000
	ramTop     = 0x1FFF
	ramAliasBits = 11

	ppuBase    = 0x2000
	ppuTop     = 0x3FFF
	ppuAliasBits = 3

	ioBase = 0x4000
	ioTop  = 0x401F

	oamDMAAddr = 0x4014

	cartBase = 0x4020

	// cpuClockSlowdown is the CPU:PPU tick ratio: the PPU runs 3 times
	// for every 1 CPU cycle.
	cpuClockSlowdown = 3
)

// Def configures a System at construction time.
type Def struct {
	ROM *rom.Partition
}

// System is the fully composed NES address space plus the CPU and PPU it
// drives. It implements memory.Bank so the CPU sees it as an ordinary bus.
type System struct {
	CPU *cpu.Chip
	PPU *ppu.PPU

	ram    *ram.RAM
	io     *ioregs.Registers
	mapper *mapper.NROM

	ppuClock int

	lastBus uint8
}

// New wires up a System from a parsed ROM partition.
func New(def Def) (*System, error) {
	s := &System{}

	r, err := ram.New(nil)
	if err != nil {
		return nil, err
	}
	s.ram = r

	m, err := mapper.New(def.ROM, nil)
	if err != nil {
		return nil, err
	}
	s.mapper = m

	s.PPU = ppu.New(m)
	s.io = ioregs.New(nil)

	c, err := cpu.Init(cpu.ChipDef{Nmi: s.PPU})
	if err != nil {
		return nil, err
	}
	s.CPU = c

	return s, nil
}

// PowerOn resets every component to its power-on state and loads the CPU's
// program counter from the reset vector.
func (s *System) PowerOn() {
	s.ram.PowerOn()
	s.PPU.PowerOn()
	s.io.PowerOn()
	s.mapper.PowerOn()
	s.CPU.Reset(s)
}

// Read implements memory.Bank, routing a CPU address to its backing device
// per the composed memory map.
func (s *System) Read(addr uint16) uint8 {
	var val uint8
	switch {
	case addr <= ramTop:
		val = s.ram.Read(addr & ((1 << ramAliasBits) - 1))
	case addr <= ppuTop:
		val = s.PPU.Read(addr & ((1 << ppuAliasBits) - 1))
	case addr <= ioTop:
		val = s.io.Read(addr)
	default:
		val = s.mapper.Read(addr)
	}
	s.lastBus = val
	return val
}

// Write implements memory.Bank. A write to $4014 triggers OAM DMA: a
// synchronous 256-byte copy from CPU page value<<8 into PPU OAM.
func (s *System) Write(addr uint16, val uint8) {
	s.lastBus = val
	switch {
	case addr <= ramTop:
		s.ram.Write(addr&((1<<ramAliasBits)-1), val)
	case addr == oamDMAAddr:
		s.triggerOAMDMA(val)
	case addr <= ppuTop:
		s.PPU.Write(addr&((1<<ppuAliasBits)-1), val)
	case addr <= ioTop:
		s.io.Write(addr, val)
	default:
		s.mapper.Write(addr, val)
	}
}

// triggerOAMDMA performs the synchronous 256 byte copy from page*256 into
// PPU OAM. Real hardware stalls the CPU for 513-514 cycles doing this; this
// module models it as a single bulk transfer with no intervening yield,
// matching the per-instruction (not per-bus-access) timing granularity used
// elsewhere.
func (s *System) triggerOAMDMA(page uint8) {
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		s.PPU.DMAWrite(s.Read(base + uint16(i)))
	}
}

// Parent implements memory.Bank; System has no parent, it is the outermost
// bus.
func (s *System) Parent() memory.Bank { return nil }

// DatabusVal returns the last value moved across the composed bus.
func (s *System) DatabusVal() uint8 { return s.lastBus }

// Tick advances the system by one CPU cycle, running the PPU 3 times for
// every CPU cycle per the 1:3 clock ratio.
func (s *System) Tick() error {
	for i := 0; i < cpuClockSlowdown; i++ {
		s.PPU.Tick()
	}
	return s.CPU.Tick(s)
}
