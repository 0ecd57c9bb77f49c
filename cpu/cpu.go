package cpu

import (
	"fmt"

	"github.com/jmchacon/nes6502/addr"
	"github.com/jmchacon/nes6502/flags"
	"github.com/jmchacon/nes6502/irq"
	"github.com/jmchacon/nes6502/memory"
)

// Interrupt and stack vector addresses, fixed by the 6502 architecture.
const (
	NMIVectorLow    = 0xFFFA
	NMIVectorHigh   = 0xFFFB
	ResetVectorLow  = 0xFFFC
	ResetVectorHigh = 0xFFFD
	IRQVectorLow    = 0xFFFE
	IRQVectorHigh   = 0xFFFF

	StackBase = 0x0100
)

// ChipDef configures a Chip at construction time. Nmi and Irq are optional
// interrupt sources, checked at each instruction boundary exactly as a real
// NMI/IRQ pin would be - in the composed system the PPU is wired as Nmi and
// nothing drives Irq.
type ChipDef struct {
	Nmi irq.Sender
	Irq irq.Sender
}

// Chip is the 6502/2A03 interpreter: register file plus the handful of
// pieces of state (cycle counter, NMI edge latch) that outlive a single
// instruction.
type Chip struct {
	reg *Registers

	nmi     irq.Sender
	nmiPrev bool

	irqLine irq.Sender

	// pendingIRQ/pendingNMI let tests and BRK-adjacent code request an
	// interrupt without wiring a full irq.Sender.
	pendingIRQ bool
	pendingNMI bool

	cycle           uint64
	cyclesRemaining int
}

// Init constructs a Chip in its power-on state. Reset must be called before
// Step to load PC from the reset vector.
func Init(def ChipDef) (*Chip, error) {
	return &Chip{
		reg:     NewRegisters(),
		nmi:     def.Nmi,
		irqLine: def.Irq,
	}, nil
}

// Registers exposes the live register file for inspection (tests, debuggers,
// disassembly annotation). Callers must not mutate it outside of Reset.
func (c *Chip) Registers() *Registers {
	return c.reg
}

// Cycle returns the total number of cycles executed since Reset.
func (c *Chip) Cycle() uint64 {
	return c.cycle
}

// Reset loads PC from the reset vector and establishes the power-on flag and
// stack state. Matches real hardware: 7 cycles elapse, S ends at 0xFD, and
// INTERRUPT_DISABLE is forced on.
func (c *Chip) Reset(bus memory.Bank) {
	c.reg.S = 0xFD
	c.reg.P = c.reg.P.Set(flags.InterruptDisable)
	low := bus.Read(ResetVectorLow)
	high := bus.Read(ResetVectorHigh)
	c.reg.PC = addr.FromBytes(low, high)
	c.cycle = 7
	c.cyclesRemaining = 0
	c.pendingIRQ = false
	c.pendingNMI = false
	c.nmiPrev = false
}

// RequestIRQ raises the maskable interrupt line. The request stays pending
// until a Step finds INTERRUPT_DISABLE clear and services it. Intended for
// tests; production code should instead wire an irq.Sender via
// ChipDef.
func (c *Chip) RequestIRQ() {
	c.pendingIRQ = true
}

// RequestNMI raises the non-maskable interrupt line for one Step's
// evaluation. See RequestIRQ.
func (c *Chip) RequestNMI() {
	c.pendingNMI = true
}

func (c *Chip) nmiRaised() bool {
	if c.pendingNMI {
		return true
	}
	return c.nmi != nil && c.nmi.Raised()
}

func (c *Chip) irqRaised() bool {
	if c.pendingIRQ {
		return true
	}
	return c.irqLine != nil && c.irqLine.Raised()
}

// push writes v to the stack at $0100+S and decrements S, wrapping within
// the stack page.
func (c *Chip) push(bus memory.Bank, v uint8) {
	bus.Write(StackBase+uint16(c.reg.S), v)
	c.reg.S--
}

// pull increments S and reads the byte at $0100+S.
func (c *Chip) pull(bus memory.Bank) uint8 {
	c.reg.S++
	return bus.Read(StackBase + uint16(c.reg.S))
}

// interrupt performs the shared NMI/IRQ/BRK sequence: push PC high/low, push
// flags with BREAK set per brk, set INTERRUPT_DISABLE, load PC from vector.
func (c *Chip) interrupt(bus memory.Bank, vectorLow uint16, brk bool) {
	ret := c.reg.PC
	c.push(bus, ret.High())
	c.push(bus, ret.Low())
	c.push(bus, c.reg.P.PushByte(brk))
	c.reg.P = c.reg.P.Set(flags.InterruptDisable)
	low := bus.Read(vectorLow)
	high := bus.Read(vectorLow + 1)
	c.reg.PC = addr.FromBytes(low, high)
	c.cycle += 7
}

// Step executes exactly one instruction (or services one pending interrupt)
// and returns its cycle cost. A non-nil error is always fatal: the caller
// should stop driving this Chip until the next Reset.
func (c *Chip) Step(bus memory.Bank) (int, error) {
	nmiEdge := c.nmiRaised()
	if nmiEdge && !c.nmiPrev {
		c.pendingNMI = false
		c.nmiPrev = true
		c.interrupt(bus, NMIVectorLow, false)
		return 7, nil
	}
	c.nmiPrev = nmiEdge

	if c.irqRaised() && !c.reg.P.Test(flags.InterruptDisable) {
		c.pendingIRQ = false
		c.interrupt(bus, IRQVectorLow, false)
		return 7, nil
	}

	pc0 := c.reg.PC
	inst, opcode, err := Decode(bus, &c.reg.PC)
	if err != nil {
		return 0, err
	}
	if inst.Op == OpSTP {
		return 0, HaltOpcode{PC: pc0, Opcode: opcode}
	}

	if err := c.execute(bus, inst); err != nil {
		return 0, err
	}
	c.cycle += uint64(inst.Cycles)

	if c.reg.PC == pc0 {
		return int(inst.Cycles), InfiniteLoop{PC: pc0}
	}
	return int(inst.Cycles), nil
}

// Tick advances the Chip by one bus cycle. It calls Step exactly once per
// instruction, on the first of that instruction's cycles, and otherwise
// simply counts down - this is a per-instruction cycle budget, not a
// per-bus-access simulation.
func (c *Chip) Tick(bus memory.Bank) error {
	if c.cyclesRemaining == 0 {
		n, err := c.Step(bus)
		if n > 0 {
			c.cyclesRemaining = n - 1
		}
		if err != nil {
			return err
		}
		return nil
	}
	c.cyclesRemaining--
	return nil
}

func (c *Chip) String() string {
	return fmt.Sprintf("Chip{%s cycle=%d}", c.reg, c.cycle)
}
