package esfm

import "testing"

func TestSlotRegisterRoundTrip(t *testing.T) {
	var chip Chip
	Init(&chip)
	chip.NativeMode = true

	// Channel 3, slot 2: exercise every byte of the per-slot register
	// block through a write followed by a readback.
	base := uint16(3*4*8 + 2*8)
	writes := [8]uint8{0xd3, 0xc7, 0xa5, 0x5a, 0x34, 0x1c, 0x36, 0xea}
	for reg, data := range writes {
		WriteReg(&chip, base+uint16(reg), data)
	}

	for reg, want := range writes {
		got := ReadbackReg(&chip, base+uint16(reg))
		// Every bit of these test bytes belongs to a field slotWrite and
		// slotReadback both define, so the round trip must be exact.
		if got != want {
			t.Errorf("register %d: wrote %#02x, read back %#02x", reg, want, got)
		}
	}
}

func TestChannelKeyOnRegisters(t *testing.T) {
	var chip Chip
	Init(&chip)
	chip.NativeMode = true

	WriteReg(&chip, keyOnRegsStart+5, 0x01)
	if !chip.Channels[5].KeyOn {
		t.Error("channel 5: KeyOn not set after writing its key-on register")
	}
	if chip.Channels[4].KeyOn || chip.Channels[6].KeyOn {
		t.Error("key-on write to channel 5 leaked into a neighboring channel")
	}

	if got := ReadbackReg(&chip, keyOnRegsStart+5); got&0x01 == 0 {
		t.Errorf("readback of channel 5 key-on register = %#02x, want bit 0 set", got)
	}
}

// TestChannel16And17KeyOnSplit exercises the two extra split key-on
// registers at keyOnRegsStart+16/+17, confirming the fixed address
// arithmetic (`16 + (address & 0x01)`) routes each register to its own
// channel instead of colliding on the same index the way the original
// `16 + address & 0x01` would under C precedence.
func TestChannel16And17KeyOnSplit(t *testing.T) {
	anyKeyOn := func(ch *Channel) bool { return ch.KeyOn || ch.KeyOn2 }

	var chip Chip
	Init(&chip)
	chip.NativeMode = true

	reg16 := uint16(keyOnRegsStart + 16)
	reg17 := uint16(keyOnRegsStart + 17)

	WriteReg(&chip, reg16, 0x01)
	if !anyKeyOn(&chip.Channels[16]) {
		t.Error("writing keyOnRegsStart+16 did not key on channel 16")
	}
	if anyKeyOn(&chip.Channels[17]) {
		t.Error("writing keyOnRegsStart+16 leaked a key-on into channel 17")
	}

	WriteReg(&chip, reg17, 0x01)
	if !anyKeyOn(&chip.Channels[17]) {
		t.Error("writing keyOnRegsStart+17 did not key on channel 17")
	}
	if !anyKeyOn(&chip.Channels[16]) {
		t.Error("channel 16's key-on was cleared by writing channel 17's register")
	}
}

// TestChannel16And17KeyOnReadback exercises readbackRegNative's mirror of
// the write-side address arithmetic across all four registers in
// keyOnRegsStart+16..+19: bit 0 of the address picks channel 16 or 17,
// bit 1 picks the first or second half.
func TestChannel16And17KeyOnReadback(t *testing.T) {
	var chip Chip
	Init(&chip)
	chip.NativeMode = true

	for i := uint16(16); i <= 19; i++ {
		WriteReg(&chip, keyOnRegsStart+i, 0x03)
		if got := ReadbackReg(&chip, keyOnRegsStart+i); got&0x03 != 0x03 {
			t.Errorf("register keyOnRegsStart+%d: readback = %#02x, want bits 0,1 set", i, got)
		}
	}

	// Register +16 lands on channel 16's first half (secondHalf false),
	// +18 on its second half: channel 16 gets both flags set.
	if !chip.Channels[16].KeyOn || !chip.Channels[16].KeyOn2 {
		t.Error("channel 16: expected both KeyOn and KeyOn2 set after writing registers +16 and +18")
	}
	// Register +17 lands on channel 17's first half, +19 on its second
	// half: channel 17 gets both flags set too.
	if !chip.Channels[17].KeyOn {
		t.Error("channel 17: expected KeyOn set after writing register +17")
	}
	if !chip.Channels[17].KeyOn2 {
		t.Error("channel 17: expected KeyOn2 set after writing registers +17 and +19")
	}
}

func TestTimerRegisters(t *testing.T) {
	var chip Chip
	Init(&chip)
	chip.NativeMode = true

	WriteReg(&chip, timer1Reg, 0x42)
	WriteReg(&chip, timer2Reg, 0x99)
	if got := ReadbackReg(&chip, timer1Reg); got != 0x42 {
		t.Errorf("timer1 readback = %#02x, want 0x42", got)
	}
	if got := ReadbackReg(&chip, timer2Reg); got != 0x99 {
		t.Errorf("timer2 readback = %#02x, want 0x99", got)
	}

	WriteReg(&chip, timerSetupReg, 0x03) // enable both timers
	if !chip.TimerEnable[0] || !chip.TimerEnable[1] {
		t.Error("timer setup register did not enable both timers")
	}
}

func TestLegacyPortInterface(t *testing.T) {
	var chip Chip
	Init(&chip)
	chip.NativeMode = true

	WritePort(&chip, 2, 0x00) // addr low = 0x00 (channel 0 slot 0 reg 0)
	WritePort(&chip, 3, 0x00) // addr high
	WritePort(&chip, 1, 0x0f) // mult = 15

	if chip.Channels[0].Slots[0].Mult != 0x0f {
		t.Fatalf("Mult = %d after port write, want 15", chip.Channels[0].Slots[0].Mult)
	}

	got := ReadPort(&chip, 1)
	if got&0x0f != 0x0f {
		t.Errorf("port readback = %#02x, want low nibble 0xf", got)
	}
}
