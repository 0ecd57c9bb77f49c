package flags

import "testing"

func TestNewHasUnusedAndInterruptDisable(t *testing.T) {
	f := New()
	if !f.Test(Unused) || !f.Test(InterruptDisable) {
		t.Errorf("New() = %#02x, want UNUSED and INTERRUPT_DISABLE set", f.Byte())
	}
	if f.Test(Carry) || f.Test(Zero) || f.Test(Negative) {
		t.Errorf("New() = %#02x, want only UNUSED/INTERRUPT_DISABLE set", f.Byte())
	}
}

func TestSetClearAssign(t *testing.T) {
	f := Flags(0)
	f = f.Set(Carry)
	if !f.Test(Carry) {
		t.Fatalf("Carry not set after Set")
	}
	f = f.Clear(Carry)
	if f.Test(Carry) {
		t.Fatalf("Carry still set after Clear")
	}
	f = f.Assign(Overflow, true)
	if !f.Test(Overflow) {
		t.Errorf("Assign(Overflow, true) did not set the bit")
	}
	f = f.Assign(Overflow, false)
	if f.Test(Overflow) {
		t.Errorf("Assign(Overflow, false) did not clear the bit")
	}
}

func TestFromByteForcesUnused(t *testing.T) {
	f := FromByte(0x00)
	if !f.Test(Unused) {
		t.Errorf("FromByte(0x00) did not force UNUSED on")
	}
}

func TestPushByteForcesUnusedAndBreak(t *testing.T) {
	f := Flags(0)
	if got := f.PushByte(true); got&uint8(Unused) == 0 || got&uint8(Break) == 0 {
		t.Errorf("PushByte(true) = %#02x, want both UNUSED and BREAK set", got)
	}
	if got := f.PushByte(false); got&uint8(Break) != 0 {
		t.Errorf("PushByte(false) = %#02x, want BREAK clear (hardware interrupt push)", got)
	}
}

func TestZeroNegativeFrom(t *testing.T) {
	f := Flags(0).ZeroNegativeFrom(0x00)
	if !f.Test(Zero) || f.Test(Negative) {
		t.Errorf("ZeroNegativeFrom(0x00) = %#02x, want ZERO set and NEGATIVE clear", f.Byte())
	}
	f = Flags(0).ZeroNegativeFrom(0x80)
	if f.Test(Zero) || !f.Test(Negative) {
		t.Errorf("ZeroNegativeFrom(0x80) = %#02x, want ZERO clear and NEGATIVE set", f.Byte())
	}
	f = Flags(0).ZeroNegativeFrom(0x01)
	if f.Test(Zero) || f.Test(Negative) {
		t.Errorf("ZeroNegativeFrom(0x01) = %#02x, want both clear", f.Byte())
	}
}
