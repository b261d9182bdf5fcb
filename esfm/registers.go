package esfm

import "esfm/log"

const (
	keyOnRegsStart = 18 * 4 * 8 // 0x240
	timer1Reg      = 0x402
	timer2Reg      = 0x403
	timerSetupReg  = 0x404
	configReg      = 0x408
	testReg        = 0x501
)

func slotWrite(slot *Slot, regIdx uint8, data uint8) {
	switch regIdx & 0x07 {
	case 0x00:
		slot.TremoloEn = data&0x80 != 0
		slot.VibratoEn = data&0x40 != 0
		slot.EnvSustaining = data&0x20 != 0
		slot.KSR = data&0x10 != 0
		slot.Mult = data & 0x0f
	case 0x01:
		slot.KSL = data >> 6
		slot.TLevel = data & 0x3f
	case 0x02:
		slot.AttackRate = data >> 4
		slot.DecayRate = data & 0x0f
	case 0x03:
		slot.SustainLvl = data >> 4
		slot.ReleaseRate = data & 0x0f
	case 0x04:
		slot.FNum = (slot.FNum & 0x300) | uint16(data)
		updateKeyscale(slot)
		updateKSLOffset(slot)
	case 0x05:
		slot.EnvDelay = data >> 5
		slot.Block = (data >> 2) & 0x07
		slot.FNum = (slot.FNum & 0xff) | (uint16(data&0x03) << 8)
		updateKeyscale(slot)
		updateKSLOffset(slot)
	case 0x06:
		slot.TremoloDeep = data&0x80 != 0
		slot.VibratoDeep = data&0x40 != 0
		if data&0x20 != 0 {
			slot.OutEnable[0] = -1
		} else {
			slot.OutEnable[0] = 0
		}
		if data&0x10 != 0 {
			slot.OutEnable[1] = -1
		} else {
			slot.OutEnable[1] = 0
		}
		slot.ModInLevel = (data >> 1) & 0x07
	case 0x07:
		slot.OutputLevel = data >> 5
		slot.RhyNoise = (data >> 3) & 0x03
		slot.Waveform = data & 0x07
	}
}

// slotReadback mirrors the register layout of slotWrite. Reading back
// register index 1 also relatches the slot's keyscale-level offset from
// its current FNum and Block, the same recomputation the f_num/block
// writes in slotWrite run.
func slotReadback(slot *Slot, regIdx uint8) uint8 {
	var data uint8
	switch regIdx & 0x07 {
	case 0x00:
		data |= b8(slot.TremoloEn) << 7
		data |= b8(slot.VibratoEn) << 6
		data |= b8(slot.EnvSustaining) << 5
		data |= b8(slot.KSR) << 4
		data |= slot.Mult & 0x0f
	case 0x01:
		data |= slot.KSL << 6
		data |= slot.TLevel & 0x3f
		updateKSLOffset(slot)
	case 0x02:
		data |= slot.AttackRate << 4
		data |= slot.DecayRate & 0x0f
	case 0x03:
		data |= slot.SustainLvl << 4
		data |= slot.ReleaseRate & 0x0f
	case 0x04:
		data = uint8(slot.FNum & 0xff)
	case 0x05:
		data |= slot.EnvDelay << 5
		data |= (slot.Block & 0x07) << 2
		data |= uint8(slot.FNum>>8) & 0x03
	case 0x06:
		data |= b8(slot.TremoloDeep) << 7
		data |= b8(slot.VibratoDeep) << 6
		data |= b8(slot.OutEnable[0] != 0) << 5
		data |= b8(slot.OutEnable[1] != 0) << 4
		data |= (slot.ModInLevel & 0x07) << 1
	case 0x07:
		data |= slot.OutputLevel << 5
		data |= (slot.RhyNoise & 0x03) << 3
		data |= slot.Waveform & 0x07
	}
	return data
}

func b8(cond bool) uint8 {
	if cond {
		return 1
	}
	return 0
}

// WriteReg dispatches a register write in either native or OPL3
// emulation addressing, matching the chip's NativeMode switch.
func WriteReg(chip *Chip, address uint16, data uint8) {
	if chip.NativeMode {
		writeRegNative(chip, address, data)
		return
	}
	writeRegEmu(chip, address, data)
}

// ReadbackReg dispatches a register readback the same way WriteReg
// dispatches writes. Emulation-mode readback is not implemented by the
// hardware this chip is compatible with, and always reads back zero.
func ReadbackReg(chip *Chip, address uint16) uint8 {
	if chip.NativeMode {
		return readbackRegNative(chip, address)
	}
	return 0
}

func writeRegNative(chip *Chip, address uint16, data uint8) {
	address &= 0x7ff

	switch {
	case address < keyOnRegsStart:
		channelIdx := address >> 5
		slotIdx := (address >> 3) & 0x03
		regIdx := uint8(address & 0x07)
		slot := &chip.Channels[channelIdx].Slots[slotIdx]
		slotWrite(slot, regIdx, data)
		log.ModSound.DebugZ("slot register write").
			Int("channel", int(channelIdx)).
			Int("slot", int(slotIdx)).
			Int("reg", int(regIdx)).
			Int("data", int(data)).
			End()

	case address < keyOnRegsStart+16:
		channelIdx := address - keyOnRegsStart
		ch := &chip.Channels[channelIdx]
		ch.KeyOn = data&0x01 != 0
		ch.Emu4opEnable = data&0x02 != 0

	case address < keyOnRegsStart+20:
		// Fixed from the original's `16 + address & 0x01`, which under C
		// operator precedence evaluates as `(16 + address) & 0x01` and
		// never selects channel 17.
		channelIdx := 16 + (address & 0x01)
		secondHalf := address&0x02 != 0
		ch := &chip.Channels[channelIdx]
		if secondHalf {
			ch.KeyOn2 = data&0x01 != 0
			ch.Emu4opEnable2 = data&0x02 != 0
		} else {
			ch.KeyOn = data&0x01 != 0
			ch.Emu4opEnable = data&0x02 != 0
		}

	default:
		switch address & 0x5ff {
		case timer1Reg:
			chip.Timers[0] = data
		case timer2Reg:
			chip.Timers[1] = data
		case timerSetupReg:
			if data&0x80 != 0 {
				chip.TimerOverflow[0] = false
				chip.TimerOverflow[1] = false
				chip.IRQBit = false
			}
			chip.TimerEnable[0] = data&0x01 != 0
			chip.TimerEnable[1] = data&0x02 != 0
			chip.TimerMask[0] = data&0x20 != 0
			chip.TimerMask[1] = data&0x40 != 0
		case configReg:
			chip.KeyscaleMode = data&0x40 != 0
		case testReg:
			chip.TestDistort = data&0x02 != 0
			chip.TestAttenuate = data&0x10 != 0
			chip.TestMute = data&0x40 != 0
		}
	}
}

func readbackRegNative(chip *Chip, address uint16) uint8 {
	var data uint8
	address &= 0x7ff

	switch {
	case address < keyOnRegsStart:
		channelIdx := address >> 5
		slotIdx := (address >> 3) & 0x03
		regIdx := uint8(address & 0x07)
		slot := &chip.Channels[channelIdx].Slots[slotIdx]
		data = slotReadback(slot, regIdx)

	case address < keyOnRegsStart+16:
		channelIdx := address - keyOnRegsStart
		ch := &chip.Channels[channelIdx]
		data |= b8(ch.KeyOn)
		data |= b8(ch.Emu4opEnable) << 1

	case address < keyOnRegsStart+20:
		// Mirrors the write decode's fix below keyOnRegsStart+16: the
		// channel index depends only on the low bit, not both low bits.
		channelIdx := 16 + (address & 0x01)
		secondHalf := address&0x02 != 0
		ch := &chip.Channels[channelIdx]
		if secondHalf {
			data |= b8(ch.KeyOn2)
			data |= b8(ch.Emu4opEnable2) << 1
		} else {
			data |= b8(ch.KeyOn)
			data |= b8(ch.Emu4opEnable) << 1
		}

	default:
		switch address & 0x5ff {
		case timer1Reg:
			data = chip.Timers[0]
		case timer2Reg:
			data = chip.Timers[1]
		case timerSetupReg:
			data |= b8(chip.TimerEnable[0])
			data |= b8(chip.TimerEnable[1]) << 1
			data |= b8(chip.TimerMask[0]) << 5
			data |= b8(chip.TimerMask[1]) << 6
		case configReg:
			data |= b8(chip.KeyscaleMode) << 6
		case testReg:
			data |= b8(chip.TestDistort) << 1
			data |= b8(chip.TestAttenuate) << 4
			data |= b8(chip.TestMute) << 6
		}
	}
	return data
}

// writeRegEmu implements the small slice of the legacy OPL3-compatible
// register map this core exposes: the mode-switch register (0x105) that
// jumps the chip into native addressing, and the keyscale-mode bit of
// register 0x08. Writes to the 4-operator enable register (0x104) and to
// every other emulation-mode register are ignored.
func writeRegEmu(chip *Chip, address uint16, data uint8) {
	high := address&0x100 != 0
	reg := uint8(address & 0xff)

	if reg&0xf0 != 0x00 {
		return
	}
	if high {
		switch reg & 0x0f {
		case 0x04:
			// 4-op channel enable bits: emulation-mode channel pairing
			// is out of scope for this core, which always runs native.
		case 0x05:
			chip.EmuNewMode = data&0x01 != 0
			chip.NativeMode = data&0x80 != 0
		}
	} else {
		if reg&0x0f == 0x08 {
			chip.KeyscaleMode = data&0x40 != 0
		}
	}
}

// WritePort implements the 4-port legacy I/O interface used by hosts
// that address the chip through an index/data register pair instead of
// the flat native register space.
func WritePort(chip *Chip, offset uint8, data uint8) {
	if chip.NativeMode {
		switch offset {
		case 0:
			chip.NativeMode = false
		case 1:
			writeRegNative(chip, chip.addrLatch, data)
		case 2:
			chip.addrLatch = (chip.addrLatch & 0xff00) | uint16(data)
		case 3:
			chip.addrLatch = (chip.addrLatch & 0xff) | (uint16(data) << 8)
		}
		return
	}

	switch offset {
	case 0:
		chip.addrLatch = (chip.addrLatch & 0xff) | (uint16(data) << 8)
	case 1:
		writeRegEmu(chip, chip.addrLatch>>8, data)
	case 2:
		chip.addrLatch = (chip.addrLatch & 0xff00) | uint16(data)
	case 3:
		writeRegEmu(chip, (chip.addrLatch&0xff)|0x100, data)
	}
}

// ReadPort mirrors WritePort's offset layout for status and register
// readback.
func ReadPort(chip *Chip, offset uint8) uint8 {
	var data uint8
	switch offset {
	case 0:
		data |= b8(chip.IRQBit) << 7
		data |= b8(chip.TimerOverflow[0]) << 6
		data |= b8(chip.TimerOverflow[1]) << 5
	case 1:
		if chip.NativeMode {
			data = readbackRegNative(chip, chip.addrLatch)
		}
	}
	return data
}
