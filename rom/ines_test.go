package rom

import "testing"

func makeHeader(prgBanks, chrBanks, flags6, flags7 uint8) []uint8 {
	h := make([]uint8, headerSize)
	h[0], h[1], h[2], h[3] = nesMagic0, nesMagic1, nesMagic2, nesMagic3
	h[4] = prgBanks
	h[5] = chrBanks
	h[6] = flags6
	h[7] = flags7
	return h
}

func TestParseNROMHorizontal(t *testing.T) {
	data := makeHeader(2, 1, 0x00, 0x00)
	data = append(data, make([]uint8, 2*prgUnitSize)...)
	data = append(data, make([]uint8, 1*chrUnitSize)...)

	p, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(p.PRG) != 2*prgUnitSize {
		t.Errorf("PRG length = %d, want %d", len(p.PRG), 2*prgUnitSize)
	}
	if len(p.CHR) != chrUnitSize {
		t.Errorf("CHR length = %d, want %d", len(p.CHR), chrUnitSize)
	}
	if p.Mirroring != Horizontal {
		t.Errorf("Mirroring = %v, want Horizontal", p.Mirroring)
	}
	if p.CHRIsRAM {
		t.Errorf("CHRIsRAM = true, want false")
	}
}

func TestParseVerticalMirroring(t *testing.T) {
	data := makeHeader(1, 1, 0x01, 0x00)
	data = append(data, make([]uint8, prgUnitSize)...)
	data = append(data, make([]uint8, chrUnitSize)...)

	p, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Mirroring != Vertical {
		t.Errorf("Mirroring = %v, want Vertical", p.Mirroring)
	}
}

func TestParseCHRRAMWhenZeroBanks(t *testing.T) {
	data := makeHeader(1, 0, 0x00, 0x00)
	data = append(data, make([]uint8, prgUnitSize)...)

	p, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !p.CHRIsRAM {
		t.Errorf("CHRIsRAM = false, want true for a zero CHR bank header")
	}
	if len(p.CHR) != chrUnitSize {
		t.Errorf("CHR length = %d, want %d allocated for CHR RAM", len(p.CHR), chrUnitSize)
	}
}

func TestParseMapperNumberSpansBothFlagBytes(t *testing.T) {
	// Mapper 0x41: low nibble from flags6 bits 4-7, high nibble from flags7
	// bits 4-7.
	data := makeHeader(1, 1, 0x10, 0x40)
	data = append(data, make([]uint8, prgUnitSize)...)
	data = append(data, make([]uint8, chrUnitSize)...)

	p, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Mapper != 0x41 {
		t.Errorf("Mapper = %#02x, want 0x41", p.Mapper)
	}
}

func TestParseRejectsBadMagic(t *testing.T) {
	data := makeHeader(1, 1, 0, 0)
	data[0] = 'X'
	if _, err := Parse(data); err == nil {
		t.Errorf("Parse accepted a header with bad magic bytes")
	}
}

func TestParseRejectsTruncatedPRG(t *testing.T) {
	data := makeHeader(2, 1, 0, 0)
	// Only append one bank's worth of PRG data despite the header
	// declaring two.
	data = append(data, make([]uint8, prgUnitSize)...)
	if _, err := Parse(data); err == nil {
		t.Errorf("Parse accepted a file shorter than its declared PRG size")
	}
}

func TestParseSkipsTrainer(t *testing.T) {
	data := makeHeader(1, 1, 0x04, 0x00) // bit 2: trainer present
	data = append(data, make([]uint8, 512)...)
	prg := make([]uint8, prgUnitSize)
	prg[0] = 0xEA
	data = append(data, prg...)
	data = append(data, make([]uint8, chrUnitSize)...)

	p, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.PRG[0] != 0xEA {
		t.Errorf("PRG[0] = %#02x, want 0xEA (trainer region not skipped correctly)", p.PRG[0])
	}
}
