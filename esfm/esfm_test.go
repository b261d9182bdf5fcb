package esfm

import "testing"

func TestInitSilence(t *testing.T) {
	var chip Chip
	Init(&chip)

	for i := 0; i < 100; i++ {
		l, r := GenerateSample(&chip)
		if l != 0 || r != 0 {
			t.Fatalf("sample %d: got (%d, %d), want silence before any key-on", i, l, r)
		}
	}
}

func TestInitWiresBackPointers(t *testing.T) {
	var chip Chip
	Init(&chip)

	for ci := range chip.Channels {
		ch := &chip.Channels[ci]
		if ch.chip != &chip {
			t.Fatalf("channel %d: chip back-pointer not wired", ci)
		}
		for si := range ch.Slots {
			slot := &ch.Slots[si]
			if slot.channel != ch {
				t.Fatalf("channel %d slot %d: channel back-pointer not wired", ci, si)
			}
			if slot.idx != uint8(si) {
				t.Fatalf("channel %d slot %d: idx = %d", ci, si, slot.idx)
			}
			if slot.egState != EGRelease {
				t.Fatalf("channel %d slot %d: initial state = %v, want EGRelease", ci, si, slot.egState)
			}
		}
	}
}

func TestKeyOnProducesNonZeroOutput(t *testing.T) {
	var chip Chip
	Init(&chip)
	chip.NativeMode = true

	// Slot 0 of channel 0: instant attack, no decay, full output level, sine wave.
	WriteReg(&chip, 0x0000, 0x01)       // mult=1
	WriteReg(&chip, 0x0001, 0x00)       // ksl=0, tlevel=0 (max volume)
	WriteReg(&chip, 0x0002, 0xf0)       // attack_rate=15, decay_rate=0
	WriteReg(&chip, 0x0003, 0x00)       // sustain_lvl=0, release_rate=0
	WriteReg(&chip, 0x0004, 0x50)       // f_num low byte
	WriteReg(&chip, 0x0005, 0x04)       // block=1
	WriteReg(&chip, 0x0006, 0x20)       // out_enable[0]
	WriteReg(&chip, 0x0007, 0xe0)       // output_level=7, waveform=0
	WriteReg(&chip, 0x240, 0x01)        // key on channel 0

	sawNonZero := false
	for i := 0; i < 2000; i++ {
		l, _ := GenerateSample(&chip)
		if l != 0 {
			sawNonZero = true
			break
		}
	}
	if !sawNonZero {
		t.Fatal("expected a non-zero sample within the attack phase after key-on")
	}
}

func TestGlobalMuteForcesSilence(t *testing.T) {
	var chip Chip
	Init(&chip)
	chip.NativeMode = true

	WriteReg(&chip, 0x0000, 0x01)
	WriteReg(&chip, 0x0001, 0x00)
	WriteReg(&chip, 0x0002, 0xf0)
	WriteReg(&chip, 0x0003, 0x00)
	WriteReg(&chip, 0x0004, 0x50)
	WriteReg(&chip, 0x0005, 0x04)
	WriteReg(&chip, 0x0006, 0x20)
	WriteReg(&chip, 0x0007, 0xe0)
	WriteReg(&chip, 0x240, 0x01) // key on channel 0

	WriteReg(&chip, testReg, 0x40) // test_mute

	for i := 0; i < 2000; i++ {
		l, r := GenerateSample(&chip)
		if l != 0 || r != 0 {
			t.Fatalf("sample %d: got (%d, %d), want silence with test_mute set", i, l, r)
		}
	}
}

func TestTwoChipsAreDeterministic(t *testing.T) {
	run := func() []int16 {
		var chip Chip
		Init(&chip)
		chip.NativeMode = true
		WriteReg(&chip, 0x0000, 0x01)
		WriteReg(&chip, 0x0001, 0x00)
		WriteReg(&chip, 0x0002, 0xf8)
		WriteReg(&chip, 0x0004, 0x50)
		WriteReg(&chip, 0x0005, 0x04)
		WriteReg(&chip, 0x0006, 0x20)
		WriteReg(&chip, 0x0007, 0xe0)
		WriteReg(&chip, 0x240, 0x01)

		out := make([]int16, 2*512)
		GenerateStream(&chip, out, 512)
		return out
	}

	a := run()
	b := run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d diverged: %d vs %d", i, a[i], b[i])
		}
	}
}
