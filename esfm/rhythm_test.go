package esfm

import "testing"

func TestNonRhythmSlot3IsUnaffectedByNoiseNetwork(t *testing.T) {
	var chip Chip
	Init(&chip)
	ch := &chip.Channels[0]
	ch.Slots[3].RhyNoise = 0
	ch.Slots[3].FNum = 0x123
	ch.Slots[3].Block = 3

	for i := 0; i < 50; i++ {
		before := uint16(ch.Slots[3].phaseAcc>>9) & 0x3ff
		runPhase(&ch.Slots[3])
		if ch.Slots[3].phaseOut != before {
			t.Fatalf("step %d: slot 3 with RhyNoise=0 phaseOut=%#x, want the plain pre-increment phase %#x", i, ch.Slots[3].phaseOut, before)
		}
	}
}

func TestSnarePhaseUsesHiHatBit8AndNoise(t *testing.T) {
	var chip Chip
	Init(&chip)
	ch := &chip.Channels[0]
	ch.Slots[3].RhyNoise = 1
	ch.Slots[3].FNum = 0x200
	ch.Slots[3].Block = 5

	for i := 0; i < 20; i++ {
		runPhase(&ch.Slots[3])
		out := ch.Slots[3].phaseOut
		// The snare formula only ever sets bits 8 and 9.
		if out&^0x300 != 0 {
			t.Fatalf("step %d: snare phaseOut=%#x has bits outside {8,9}", i, out)
		}
	}
}

func TestTopCymbalPhaseAlwaysSetsBit7(t *testing.T) {
	var chip Chip
	Init(&chip)
	ch := &chip.Channels[0]
	ch.Slots[2].FNum = 0x180
	ch.Slots[2].Block = 2
	ch.Slots[3].RhyNoise = 3
	ch.Slots[3].FNum = 0x140
	ch.Slots[3].Block = 4

	for i := 0; i < 20; i++ {
		runPhase(&ch.Slots[2])
		runPhase(&ch.Slots[3])
		if ch.Slots[3].phaseOut&0x80 == 0 {
			t.Fatalf("step %d: top-cymbal phaseOut=%#x missing the always-set bit 7", i, ch.Slots[3].phaseOut)
		}
		if ch.Slots[3].phaseOut&^0x380 != 0 {
			t.Fatalf("step %d: top-cymbal phaseOut=%#x has bits outside {7,8,9}", i, ch.Slots[3].phaseOut)
		}
	}
}
