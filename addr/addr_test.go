package addr

import "testing"

func TestFromBytes(t *testing.T) {
	if got, want := FromBytes(0x34, 0x12), Address(0x1234); got != want {
		t.Errorf("FromBytes(0x34, 0x12) = %s, want %s", got, want)
	}
}

func TestAddWraps(t *testing.T) {
	if got, want := Address(0xFFFF).Add(1), Address(0x0000); got != want {
		t.Errorf("0xFFFF.Add(1) = %s, want %s", got, want)
	}
}

func TestAddSignedNegative(t *testing.T) {
	if got, want := Address(0x0010).AddSigned(-5), Address(0x000B); got != want {
		t.Errorf("0x0010.AddSigned(-5) = %s, want %s", got, want)
	}
}

func TestAddSignedWrapsBelowZero(t *testing.T) {
	if got, want := Address(0x0000).AddSigned(-1), Address(0xFFFF); got != want {
		t.Errorf("0x0000.AddSigned(-1) = %s, want %s", got, want)
	}
}

func TestAlias(t *testing.T) {
	if got, want := Address(0x1FFF).Alias(11), Address(0x07FF); got != want {
		t.Errorf("0x1FFF.Alias(11) = %s, want %s", got, want)
	}
}

func TestSamePage(t *testing.T) {
	if !Address(0x1200).SamePage(Address(0x12FF)) {
		t.Errorf("0x1200 and 0x12FF should share a page")
	}
	if Address(0x12FF).SamePage(Address(0x1300)) {
		t.Errorf("0x12FF and 0x1300 should not share a page")
	}
}

func TestZeroPageWrap(t *testing.T) {
	if got, want := ZeroPageWrap(0xFF, 0x02), uint8(0x01); got != want {
		t.Errorf("ZeroPageWrap(0xFF, 0x02) = %#02x, want %#02x", got, want)
	}
}
