// Package rom parses the iNES ROM container into the minimal partition the
// CPU/PPU core needs: PRG bytes, CHR bytes, and a mirroring mode. It
// deliberately stops there - no CRC verification, no trainer support, no
// mapper database; callers needing full cartridge-database fidelity are
// expected to bring their own loader and construct a Partition directly.
package rom

import "fmt"

// Mirroring is the nametable mirroring mode declared by the cartridge
// header, consumed by the PPU's nametable address translation.
type Mirroring int

// The three mirroring modes a baseline mapper can report.
const (
	Horizontal Mirroring = iota
	Vertical
	SingleScreen
)

const (
	headerSize  = 16
	prgUnitSize = 16384
	chrUnitSize = 8192
	nesMagic0   = 'N'
	nesMagic1   = 'E'
	nesMagic2   = 'S'
	nesMagic3   = 0x1A
)

// Partition is the parsed contents of a .nes file, reduced to what the core
// emulator needs to run a program.
type Partition struct {
	PRG       []uint8
	CHR       []uint8
	Mirroring Mirroring
	Mapper    uint8
	// HasPRGRAM reports whether the header requests battery-backed or
	// work PRG RAM (header flag 6 bit 1). This module doesn't back it
	// with persistence; it's surfaced so a mapper can decide whether to
	// allocate one.
	HasPRGRAM bool
	// CHRIsRAM is true when the header declares zero CHR ROM banks,
	// meaning the cartridge supplies 8KiB of writable CHR RAM instead.
	CHRIsRAM bool
}

// Parse reads an iNES container (header + PRG + optional CHR; trainers are
// skipped, not validated) into a Partition.
func Parse(data []uint8) (*Partition, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("rom: file too short for an iNES header: %d bytes", len(data))
	}
	if data[0] != nesMagic0 || data[1] != nesMagic1 || data[2] != nesMagic2 || data[3] != nesMagic3 {
		return nil, fmt.Errorf("rom: missing NES\\x1A magic")
	}

	prgBanks := int(data[4])
	chrBanks := int(data[5])
	flags6 := data[6]
	flags7 := data[7]

	mirroring := Horizontal
	if flags6&0x01 != 0 {
		mirroring = Vertical
	}
	if flags6&0x08 != 0 {
		mirroring = SingleScreen
	}
	hasTrainer := flags6&0x04 != 0
	hasPRGRAM := flags6&0x02 != 0
	mapper := (flags6 >> 4) | (flags7 & 0xF0)

	offset := headerSize
	if hasTrainer {
		offset += 512
	}

	prgSize := prgBanks * prgUnitSize
	if offset+prgSize > len(data) {
		return nil, fmt.Errorf("rom: PRG region (%d bytes at offset %d) exceeds file length %d", prgSize, offset, len(data))
	}
	prg := data[offset : offset+prgSize]
	offset += prgSize

	var chr []uint8
	chrIsRAM := chrBanks == 0
	if chrIsRAM {
		chr = make([]uint8, chrUnitSize)
	} else {
		chrSize := chrBanks * chrUnitSize
		if offset+chrSize > len(data) {
			return nil, fmt.Errorf("rom: CHR region (%d bytes at offset %d) exceeds file length %d", chrSize, offset, len(data))
		}
		chr = data[offset : offset+chrSize]
	}

	return &Partition{
		PRG:       prg,
		CHR:       chr,
		Mirroring: mirroring,
		Mapper:    mapper,
		HasPRGRAM: hasPRGRAM,
		CHRIsRAM:  chrIsRAM,
	}, nil
}
