package esfm

import "esfm/hwio"

// controlBank exposes the chip's flat timer/config/test registers as
// named hwio.Reg8 fields instead of the opaque byte range the slot and
// key-on registers get from hwio.Manual: unlike those, this corner of
// the register map has no irregular per-channel bit-packing, so it is a
// genuine fit for the teacher's struct-tag reflection idiom. Every
// callback forwards straight into WriteReg/ReadbackReg, so the register
// semantics still live in exactly one place.
type controlBank struct {
	chip *Chip

	Timer1     hwio.Reg8 `hwio:"offset=0x402,rcb,wcb"`
	Timer2     hwio.Reg8 `hwio:"offset=0x403,rcb,wcb"`
	TimerSetup hwio.Reg8 `hwio:"offset=0x404,rcb,wcb"`
	Config     hwio.Reg8 `hwio:"offset=0x408,rcb,wcb"`
	Test       hwio.Reg8 `hwio:"offset=0x501,rcb,wcb"`
}

func (b *controlBank) ReadTimer1(uint8) uint8 { return ReadbackReg(b.chip, timer1Reg) }
func (b *controlBank) WriteTimer1(_, val uint8) { WriteReg(b.chip, timer1Reg, val) }
func (b *controlBank) ReadTimer2(uint8) uint8 { return ReadbackReg(b.chip, timer2Reg) }
func (b *controlBank) WriteTimer2(_, val uint8) { WriteReg(b.chip, timer2Reg, val) }
func (b *controlBank) ReadTimerSetup(uint8) uint8 { return ReadbackReg(b.chip, timerSetupReg) }
func (b *controlBank) WriteTimerSetup(_, val uint8) { WriteReg(b.chip, timerSetupReg, val) }
func (b *controlBank) ReadConfig(uint8) uint8 { return ReadbackReg(b.chip, configReg) }
func (b *controlBank) WriteConfig(_, val uint8) { WriteReg(b.chip, configReg, val) }
func (b *controlBank) ReadTest(uint8) uint8 { return ReadbackReg(b.chip, testReg) }
func (b *controlBank) WriteTest(_, val uint8) { WriteReg(b.chip, testReg, val) }

// NewTable exposes chip on an hwio.Table covering the full native
// register space (0x000-0x7ff), so a host can reach the chip through the
// table's Read8/Write8 (an hwio.BankIO8) instead of calling
// WriteReg/ReadbackReg directly. The 4-port legacy interface is not part
// of this table; NewPortTable exposes it. The timer/config/test
// registers are additionally bound as named hwio.Reg8 fields (see
// controlBank), overriding that range of the bulk Manual mapping so a
// host debugger can introspect those five registers by name.
func NewTable(chip *Chip, name string) *hwio.Table {
	t := hwio.NewTable(name)
	t.MapManual(0x000, &hwio.Manual{
		Name: "esfm-native",
		Size: 0x800,
		ReadCb: func(addr uint16, peek bool) uint8 {
			return ReadbackReg(chip, addr)
		},
		WriteCb: func(addr uint16, val uint8) {
			WriteReg(chip, addr, val)
		},
	})

	bank := &controlBank{chip: chip}
	hwio.MustInitRegs(bank)
	t.MapReg8(timer1Reg, &bank.Timer1)
	t.MapReg8(timer2Reg, &bank.Timer2)
	t.MapReg8(timerSetupReg, &bank.TimerSetup)
	t.MapReg8(configReg, &bank.Config)
	t.MapReg8(testReg, &bank.Test)

	return t
}

// NewPortTable exposes chip's 4-port legacy interface (offset 0-3) as an
// hwio.Manual device, for hosts that address ESFM the way a real ISA
// card would rather than through the flat native register space.
func NewPortTable(chip *Chip, name string) *hwio.Table {
	t := hwio.NewTable(name)
	t.MapManual(0x000, &hwio.Manual{
		Name: "esfm-port",
		Size: 4,
		ReadCb: func(addr uint16, _ bool) uint8 {
			return ReadPort(chip, uint8(addr))
		},
		WriteCb: func(addr uint16, val uint8) {
			WritePort(chip, uint8(addr), val)
		},
	})
	return t
}
