package esfm

// processChannel generates one sample for all 4 slots of a channel and
// mixes them into the channel's stereo output accumulator. Slot 0's
// feedback is recomputed first since the envelope/phase/slot pipeline
// for slot 0 itself consumes last sample's feedback value, not this
// sample's.
func processChannel(ch *Channel) {
	ch.Output[0] = 0
	ch.Output[1] = 0

	calcFeedback(&ch.Slots[0])

	for i := range ch.Slots {
		slot := &ch.Slots[i]
		runEnvelope(slot)
		runPhase(slot)
		runSlot(slot)
	}
}
