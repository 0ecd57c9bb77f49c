package bus

import (
	"testing"

	"github.com/jmchacon/nes6502/rom"
)

func testPartition() *rom.Partition {
	prg := make([]uint8, 32768)
	// Reset vector at $FFFC/$FFFD pointing at $8000.
	prg[0x7FFC] = 0x00
	prg[0x7FFD] = 0x80
	return &rom.Partition{
		PRG:       prg,
		CHR:       make([]uint8, 8192),
		Mirroring: rom.Horizontal,
	}
}

func TestRAMMirroring(t *testing.T) {
	s, err := New(Def{ROM: testPartition()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Write(0x0000, 0x42)
	if got, want := s.Read(0x0800), uint8(0x42); got != want {
		t.Errorf("Read(0x0800) = %#02x, want %#02x (RAM not mirrored)", got, want)
	}
	if got, want := s.Read(0x1800), uint8(0x42); got != want {
		t.Errorf("Read(0x1800) = %#02x, want %#02x (RAM not mirrored)", got, want)
	}
}

func TestPPURegisterMirroring(t *testing.T) {
	s, err := New(Def{ROM: testPartition()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// $200B is $2003 (OAMADDR) mirrored eight registers up (addr & 7).
	s.Write(0x200B, 0x10)
	s.Write(0x2004, 0x99) // OAMDATA, should land at OAM[0x10]
	s.Write(0x200B, 0x10) // OAMADDR again, to read the same slot back
	if got, want := s.Read(0x2004), uint8(0x99); got != want {
		t.Errorf("OAM[0x10] via $200B mirror = %#02x, want %#02x", got, want)
	}
}

func TestOAMDMA(t *testing.T) {
	s, err := New(Def{ROM: testPartition()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 256; i++ {
		s.Write(0x0200+uint16(i), uint8(i))
	}
	s.Write(oamDMAAddr, 0x02)

	for i := 0; i < 256; i++ {
		s.Write(0x2003, uint8(i)) // OAMADDR
		if got, want := s.Read(0x2004), uint8(i); got != want {
			t.Fatalf("OAM[%d] = %#02x, want %#02x after DMA from page 2", i, got, want)
		}
	}
}

func TestIODisabledRegionIsOpenBus(t *testing.T) {
	s, err := New(Def{ROM: testPartition()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Write(0x4000, 0x55)
	if got, want := s.Read(0x401A), uint8(0x55); got != want {
		t.Errorf("Read(0x401A) = %#02x, want %#02x (open bus carrying the last value)", got, want)
	}
}

func TestPowerOnLoadsResetVector(t *testing.T) {
	s, err := New(Def{ROM: testPartition()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.PowerOn()
	if got, want := s.CPU.Registers().PC, uint16(0x8000); got.Uint16() != want {
		t.Errorf("PC after PowerOn = %s, want %#04x", got, want)
	}
}

func TestTickRunsPPUThreeTimesPerCPUCycle(t *testing.T) {
	p := testPartition()
	// JMP $8003 / JMP $8000: keeps the CPU looping inside PRG without
	// touching RAM or trapping while the PPU runs.
	copy(p.PRG, []uint8{0x4C, 0x03, 0x80, 0x4C, 0x00, 0x80})
	s, err := New(Def{ROM: p})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.PowerOn()

	// The PPU reaches scanline 241, dot 1 (vblank set) after exactly
	// 241*341+1 dots. At a 3:1 PPU:CPU tick ratio, that's this many
	// System.Tick calls - if the ratio were anything else, vblank would
	// not yet be (or would already be) set at this exact count.
	const dotsToVBlank = 241*341 + 1
	ticks := dotsToVBlank / cpuClockSlowdown
	for i := 0; i < ticks; i++ {
		if err := s.Tick(); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}
	if got := s.Read(0x2002) & 0x80; got == 0 {
		t.Errorf("vblank not set after %d System.Tick calls at a %d:1 PPU:CPU ratio", ticks, cpuClockSlowdown)
	}
}
