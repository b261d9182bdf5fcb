package esfm

import "esfm/log"

// Init zeroes chip and wires up the intrinsic modulator-chain and
// key-on references implied by each slot's channel/index. Calling Init
// on an already-initialized chip is equivalent to calling it once: every
// field is reset from scratch, and the wiring below only depends on
// channel/slot position, never on prior state.
func Init(chip *Chip) {
	*chip = Chip{}

	for ci := range chip.Channels {
		ch := &chip.Channels[ci]
		ch.chip = chip
		ch.idx = uint8(ci)

		for si := range ch.Slots {
			slot := &ch.Slots[si]
			slot.channel = ch
			slot.idx = uint8(si)

			slot.egPosition = 0x1ff
			slot.egOutput = 0x1ff
			slot.egState = EGRelease

			slot.OutEnable[0] = -1
			slot.OutEnable[1] = -1
		}
	}

	chip.lfsr = 1

	log.ModCore.DebugZ("chip initialized").End()
}

// GenerateSample advances the chip by exactly one audio sample (at the
// chip's native 49.716kHz rate) and returns the stereo output pair.
func GenerateSample(chip *Chip) (int16, int16) {
	var accL, accR int32

	for ci := range chip.Channels {
		ch := &chip.Channels[ci]
		processChannel(ch)
		accL += ch.Output[0]
		accR += ch.Output[1]
	}

	updateTimers(chip)

	if chip.TestMute {
		return 0, 0
	}

	return clipSample(accL), clipSample(accR)
}

// GenerateStream fills out with n consecutive samples, interleaved L, R.
// The caller must size out to at least 2*n elements; an undersized slice
// is a caller error the core cannot detect.
func GenerateStream(chip *Chip, out []int16, n int) {
	for i := 0; i < n; i++ {
		l, r := GenerateSample(chip)
		out[2*i] = l
		out[2*i+1] = r
	}
}

func clipSample(sample int32) int16 {
	switch {
	case sample > 32767:
		return 32767
	case sample < -32768:
		return -32768
	default:
		return int16(sample)
	}
}
