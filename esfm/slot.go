package esfm

// modInput returns the sample this slot reads as its FM modulation input:
// slot 0 is fed back from its own feedback buffer, slots 1-3 read the
// previous slot's raw output directly (a linear chain, not a connection
// matrix).
func modInput(slot *Slot) int16 {
	if slot.idx == 0 {
		return slot.feedback
	}
	return slot.channel.Slots[slot.idx-1].output
}

// runSlot generates one sample for a slot: combines its own phase with
// any modulation input, looks up the selected waveform, and (if the slot
// has a nonzero output level) mixes the scaled result into the channel's
// stereo accumulator through its output-enable masks.
func runSlot(slot *Slot) {
	phase := int16(slot.phaseOut)
	if slot.ModInLevel != 0 {
		phase += modInput(slot) >> (7 - slot.ModInLevel)
	}

	wavegen := waveforms[slot.Waveform]
	slot.output = wavegen(uint16(phase)&0x3ff, slot.egOutput)

	if slot.OutputLevel != 0 {
		outputValue := slot.output >> (7 - slot.OutputLevel)
		slot.channel.Output[0] += int32(outputValue & slot.OutEnable[0])
		slot.channel.Output[1] += int32(outputValue & slot.OutEnable[1])
	}
}

// calcFeedback updates slot 0's feedback buffer from the running average
// of its last two raw outputs. Only slot 0 ever reads this value back
// (see modInput), but every channel's slot 0 computes it once per sample
// before the slot loop runs.
func calcFeedback(slot *Slot) {
	slot.feedback = (slot.output + slot.prevOutput) >> 2
	slot.prevOutput = slot.output
}
