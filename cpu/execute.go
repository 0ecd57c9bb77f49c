package cpu

import (
	"github.com/jmchacon/nes6502/addr"
	"github.com/jmchacon/nes6502/flags"
	"github.com/jmchacon/nes6502/memory"
)

// execute dispatches a decoded Instruction to its handler. Addressing-mode
// operand resolution (including any page-wrap quirks) lives in
// AddressingMode itself; handlers here only implement the ALU/control-flow
// semantics.
func (c *Chip) execute(bus memory.Bank, inst Instruction) error {
	r := c.reg
	m := inst.Mode

	switch inst.Op {
	case OpADC:
		c.adcCore(m.Load(bus, r))
	case OpSBC:
		c.adcCore(^m.Load(bus, r))
	case OpAND:
		r.A &= m.Load(bus, r)
		r.P = r.P.ZeroNegativeFrom(r.A)
	case OpORA:
		r.A |= m.Load(bus, r)
		r.P = r.P.ZeroNegativeFrom(r.A)
	case OpEOR:
		r.A ^= m.Load(bus, r)
		r.P = r.P.ZeroNegativeFrom(r.A)
	case OpCMP:
		c.compareValues(r.A, m.Load(bus, r))
	case OpCPX:
		c.compareValues(r.X, m.Load(bus, r))
	case OpCPY:
		c.compareValues(r.Y, m.Load(bus, r))
	case OpBIT:
		c.bit(bus, m)
	case OpASL:
		c.asl(bus, m)
	case OpLSR:
		c.lsr(bus, m)
	case OpROL:
		c.rol(bus, m)
	case OpROR:
		c.ror(bus, m)
	case OpINC:
		c.incMem(bus, m)
	case OpDEC:
		c.decMem(bus, m)
	case OpINX:
		r.X++
		r.P = r.P.ZeroNegativeFrom(r.X)
	case OpDEX:
		r.X--
		r.P = r.P.ZeroNegativeFrom(r.X)
	case OpINY:
		r.Y++
		r.P = r.P.ZeroNegativeFrom(r.Y)
	case OpDEY:
		r.Y--
		r.P = r.P.ZeroNegativeFrom(r.Y)

	case OpBCC:
		c.branch(bus, m, !r.P.Test(flags.Carry))
	case OpBCS:
		c.branch(bus, m, r.P.Test(flags.Carry))
	case OpBEQ:
		c.branch(bus, m, r.P.Test(flags.Zero))
	case OpBNE:
		c.branch(bus, m, !r.P.Test(flags.Zero))
	case OpBMI:
		c.branch(bus, m, r.P.Test(flags.Negative))
	case OpBPL:
		c.branch(bus, m, !r.P.Test(flags.Negative))
	case OpBVC:
		c.branch(bus, m, !r.P.Test(flags.Overflow))
	case OpBVS:
		c.branch(bus, m, r.P.Test(flags.Overflow))

	case OpJMP:
		r.PC = m.EffectiveAddress(bus, r)
	case OpJSR:
		target := m.EffectiveAddress(bus, r)
		ret := r.PC.Add(0xFFFF) // PC-1, wrapping
		c.push(bus, ret.High())
		c.push(bus, ret.Low())
		r.PC = target
	case OpRTS:
		low := c.pull(bus)
		high := c.pull(bus)
		r.PC = addr.FromBytes(low, high).Add(1)
	case OpRTI:
		p := c.pull(bus)
		r.P = flags.FromByte(p).Clear(flags.Break)
		low := c.pull(bus)
		high := c.pull(bus)
		r.PC = addr.FromBytes(low, high)
	case OpBRK:
		c.interrupt(bus, IRQVectorLow, true)

	case OpLDA:
		r.A = m.Load(bus, r)
		r.P = r.P.ZeroNegativeFrom(r.A)
	case OpLDX:
		r.X = m.Load(bus, r)
		r.P = r.P.ZeroNegativeFrom(r.X)
	case OpLDY:
		r.Y = m.Load(bus, r)
		r.P = r.P.ZeroNegativeFrom(r.Y)
	case OpSTA:
		m.Store(bus, r, r.A)
	case OpSTX:
		m.Store(bus, r, r.X)
	case OpSTY:
		m.Store(bus, r, r.Y)
	case OpTAX:
		r.X = r.A
		r.P = r.P.ZeroNegativeFrom(r.X)
	case OpTAY:
		r.Y = r.A
		r.P = r.P.ZeroNegativeFrom(r.Y)
	case OpTSX:
		r.X = r.S
		r.P = r.P.ZeroNegativeFrom(r.X)
	case OpTXA:
		r.A = r.X
		r.P = r.P.ZeroNegativeFrom(r.A)
	case OpTXS:
		r.S = r.X
	case OpTYA:
		r.A = r.Y
		r.P = r.P.ZeroNegativeFrom(r.A)

	case OpCLC:
		r.P = r.P.Clear(flags.Carry)
	case OpSEC:
		r.P = r.P.Set(flags.Carry)
	case OpCLD:
		r.P = r.P.Clear(flags.Decimal)
	case OpSED:
		r.P = r.P.Set(flags.Decimal)
	case OpCLI:
		r.P = r.P.Clear(flags.InterruptDisable)
	case OpSEI:
		r.P = r.P.Set(flags.InterruptDisable)
	case OpCLV:
		r.P = r.P.Clear(flags.Overflow)
	case OpPHA:
		c.push(bus, r.A)
	case OpPHP:
		c.push(bus, r.P.PushByte(true))
	case OpPLA:
		r.A = c.pull(bus)
		r.P = r.P.ZeroNegativeFrom(r.A)
	case OpPLP:
		r.P = flags.FromByte(c.pull(bus)).Clear(flags.Break)
	case OpNOP:
		if m.Kind != Implicit {
			m.Load(bus, r) // consume and discard the operand
		}

	// Undocumented operations, each the composition of two documented ones
	// reading the same operand exactly once.
	case OpDCP:
		v := c.decMem(bus, m)
		c.compareValues(r.A, v)
	case OpISC:
		v := c.incMem(bus, m)
		c.adcCore(^v)
	case OpSLO:
		v := c.asl(bus, m)
		r.A |= v
		r.P = r.P.ZeroNegativeFrom(r.A)
	case OpRLA:
		v := c.rol(bus, m)
		r.A &= v
		r.P = r.P.ZeroNegativeFrom(r.A)
	case OpSRE:
		v := c.lsr(bus, m)
		r.A ^= v
		r.P = r.P.ZeroNegativeFrom(r.A)
	case OpRRA:
		v := c.ror(bus, m)
		c.adcCore(v)
	case OpSAX:
		m.Store(bus, r, r.A&r.X)
	case OpLAX:
		v := m.Load(bus, r)
		r.A = v
		r.X = v
		r.P = r.P.ZeroNegativeFrom(v)
	default:
		panic("execute: unhandled op " + inst.Op.String())
	}
	return nil
}

// adcCore implements both ADC and SBC: SBC(A, M, C) == ADC(A, ^M, C), the
// standard two's-complement identity (-M-1 == ^M mod 256).
func (c *Chip) adcCore(m uint8) {
	r := c.reg
	a := r.A
	carryIn := uint16(0)
	if r.P.Test(flags.Carry) {
		carryIn = 1
	}
	sum := uint16(a) + uint16(m) + carryIn
	result := uint8(sum)
	overflow := (uint16(a)^sum)&(uint16(m)^sum)&0x80 != 0
	r.P = r.P.Assign(flags.Carry, sum > 0xFF)
	r.P = r.P.Assign(flags.Overflow, overflow)
	r.P = r.P.ZeroNegativeFrom(result)
	r.A = result
}

// compareValues implements CMP/CPX/CPY: reg-m with CARRY set iff no
// underflow. reg itself is never modified.
func (c *Chip) compareValues(reg, m uint8) {
	r := c.reg
	diff := uint16(reg) - uint16(m)
	r.P = r.P.Assign(flags.Carry, reg >= m)
	r.P = r.P.ZeroNegativeFrom(uint8(diff))
}

func (c *Chip) bit(bus memory.Bank, m AddressingMode) {
	r := c.reg
	v := m.Load(bus, r)
	r.P = r.P.Assign(flags.Zero, r.A&v == 0)
	r.P = r.P.Assign(flags.Overflow, v&0x40 != 0)
	r.P = r.P.Assign(flags.Negative, v&0x80 != 0)
}

func (c *Chip) asl(bus memory.Bank, m AddressingMode) uint8 {
	r := c.reg
	v := m.Load(bus, r)
	carry := v&0x80 != 0
	v <<= 1
	r.P = r.P.Assign(flags.Carry, carry)
	r.P = r.P.ZeroNegativeFrom(v)
	m.Store(bus, r, v)
	return v
}

func (c *Chip) lsr(bus memory.Bank, m AddressingMode) uint8 {
	r := c.reg
	v := m.Load(bus, r)
	carry := v&0x01 != 0
	v >>= 1
	r.P = r.P.Assign(flags.Carry, carry)
	r.P = r.P.ZeroNegativeFrom(v)
	m.Store(bus, r, v)
	return v
}

func (c *Chip) rol(bus memory.Bank, m AddressingMode) uint8 {
	r := c.reg
	v := m.Load(bus, r)
	newCarry := v&0x80 != 0
	oldCarry := uint8(0)
	if r.P.Test(flags.Carry) {
		oldCarry = 1
	}
	v = v<<1 | oldCarry
	r.P = r.P.Assign(flags.Carry, newCarry)
	r.P = r.P.ZeroNegativeFrom(v)
	m.Store(bus, r, v)
	return v
}

func (c *Chip) ror(bus memory.Bank, m AddressingMode) uint8 {
	r := c.reg
	v := m.Load(bus, r)
	newCarry := v&0x01 != 0
	oldCarry := uint8(0)
	if r.P.Test(flags.Carry) {
		oldCarry = 0x80
	}
	v = v>>1 | oldCarry
	r.P = r.P.Assign(flags.Carry, newCarry)
	r.P = r.P.ZeroNegativeFrom(v)
	m.Store(bus, r, v)
	return v
}

func (c *Chip) incMem(bus memory.Bank, m AddressingMode) uint8 {
	r := c.reg
	v := m.Load(bus, r) + 1
	r.P = r.P.ZeroNegativeFrom(v)
	m.Store(bus, r, v)
	return v
}

func (c *Chip) decMem(bus memory.Bank, m AddressingMode) uint8 {
	r := c.reg
	v := m.Load(bus, r) - 1
	r.P = r.P.ZeroNegativeFrom(v)
	m.Store(bus, r, v)
	return v
}

func (c *Chip) branch(bus memory.Bank, m AddressingMode, taken bool) {
	if taken {
		c.reg.PC = m.EffectiveAddress(bus, c.reg)
	}
}

