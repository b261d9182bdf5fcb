package esfm

import "esfm/snapshot"

// State captures chip's full register and internal generator state,
// grounded on the teacher's APU.State()/SetState() save-state split.
func State(chip *Chip) *snapshot.Chip {
	var state snapshot.Chip

	state.EgTimer = chip.egTimer
	state.EgTimerOverflow = chip.egTimerOverflow
	state.GlobalTimer = chip.globalTimer
	state.EgTick = chip.egTick
	state.EgClocks = chip.egClocks
	state.Tremolo = chip.tremolo
	state.TremoloPos = chip.tremoloPos
	state.VibratoPos = chip.vibratoPos
	state.Lfsr = chip.lfsr
	state.NativeMode = chip.NativeMode
	state.KeyscaleMode = chip.KeyscaleMode
	state.EmuNewMode = chip.EmuNewMode
	state.TestDistort = chip.TestDistort
	state.TestAttenuate = chip.TestAttenuate
	state.TestMute = chip.TestMute
	state.AddrLatch = chip.addrLatch
	state.Timers = chip.Timers
	state.TimerEnable = chip.TimerEnable
	state.TimerMask = chip.TimerMask
	state.TimerOverflow = chip.TimerOverflow
	state.IRQBit = chip.IRQBit
	state.RmHHBit2, state.RmHHBit3 = chip.rmHHBit2, chip.rmHHBit3
	state.RmHHBit7, state.RmHHBit8 = chip.rmHHBit7, chip.rmHHBit8
	state.RmTCBit3, state.RmTCBit5 = chip.rmTCBit3, chip.rmTCBit5

	for ci := range chip.Channels {
		ch := &chip.Channels[ci]
		sc := &state.Channels[ci]
		sc.KeyOn = ch.KeyOn
		sc.KeyOn2 = ch.KeyOn2
		sc.Emu4opEnable = ch.Emu4opEnable
		sc.Emu4opEnable2 = ch.Emu4opEnable2

		for si := range ch.Slots {
			slotState(&ch.Slots[si], &sc.Slots[si])
		}
	}

	return &state
}

func slotState(slot *Slot, s *snapshot.Slot) {
	s.FNum = slot.FNum
	s.Block = slot.Block
	s.Mult = slot.Mult
	s.TLevel = slot.TLevel
	s.KSL = slot.KSL
	s.KSR = slot.KSR
	s.AttackRate = slot.AttackRate
	s.DecayRate = slot.DecayRate
	s.SustainLvl = slot.SustainLvl
	s.ReleaseRate = slot.ReleaseRate
	s.EnvSustaining = slot.EnvSustaining
	s.Waveform = slot.Waveform
	s.TremoloEn = slot.TremoloEn
	s.TremoloDeep = slot.TremoloDeep
	s.VibratoEn = slot.VibratoEn
	s.VibratoDeep = slot.VibratoDeep
	s.ModInLevel = slot.ModInLevel
	s.OutputLevel = slot.OutputLevel
	s.OutEnable = slot.OutEnable
	s.EnvDelay = slot.EnvDelay
	s.RhyNoise = slot.RhyNoise
	s.EgPosition = slot.egPosition
	s.EgKSLOffset = slot.egKSLOffset
	s.EgOutput = slot.egOutput
	s.Keyscale = slot.keyscale
	s.EgState = uint8(slot.egState)
	s.EgDelayRun = slot.egDelayRun
	s.EgDelayCount = slot.egDelayCount
	s.PhaseAcc = slot.phaseAcc
	s.PhaseOut = slot.phaseOut
	s.PhaseReset = slot.phaseReset
	s.Output = slot.output
	s.PrevOutput = slot.prevOutput
	s.Feedback = slot.feedback
}

// SetState restores chip from a previously captured snapshot.Chip,
// preserving the back-pointers Init wired between channels and slots.
func SetState(chip *Chip, state *snapshot.Chip) {
	chip.egTimer = state.EgTimer
	chip.egTimerOverflow = state.EgTimerOverflow
	chip.globalTimer = state.GlobalTimer
	chip.egTick = state.EgTick
	chip.egClocks = state.EgClocks
	chip.tremolo = state.Tremolo
	chip.tremoloPos = state.TremoloPos
	chip.vibratoPos = state.VibratoPos
	chip.lfsr = state.Lfsr
	chip.NativeMode = state.NativeMode
	chip.KeyscaleMode = state.KeyscaleMode
	chip.EmuNewMode = state.EmuNewMode
	chip.TestDistort = state.TestDistort
	chip.TestAttenuate = state.TestAttenuate
	chip.TestMute = state.TestMute
	chip.addrLatch = state.AddrLatch
	chip.Timers = state.Timers
	chip.TimerEnable = state.TimerEnable
	chip.TimerMask = state.TimerMask
	chip.TimerOverflow = state.TimerOverflow
	chip.IRQBit = state.IRQBit
	chip.rmHHBit2, chip.rmHHBit3 = state.RmHHBit2, state.RmHHBit3
	chip.rmHHBit7, chip.rmHHBit8 = state.RmHHBit7, state.RmHHBit8
	chip.rmTCBit3, chip.rmTCBit5 = state.RmTCBit3, state.RmTCBit5

	for ci := range chip.Channels {
		ch := &chip.Channels[ci]
		sc := &state.Channels[ci]
		ch.KeyOn = sc.KeyOn
		ch.KeyOn2 = sc.KeyOn2
		ch.Emu4opEnable = sc.Emu4opEnable
		ch.Emu4opEnable2 = sc.Emu4opEnable2

		for si := range ch.Slots {
			setSlotState(&ch.Slots[si], &sc.Slots[si])
		}
	}
}

func setSlotState(slot *Slot, s *snapshot.Slot) {
	slot.FNum = s.FNum
	slot.Block = s.Block
	slot.Mult = s.Mult
	slot.TLevel = s.TLevel
	slot.KSL = s.KSL
	slot.KSR = s.KSR
	slot.AttackRate = s.AttackRate
	slot.DecayRate = s.DecayRate
	slot.SustainLvl = s.SustainLvl
	slot.ReleaseRate = s.ReleaseRate
	slot.EnvSustaining = s.EnvSustaining
	slot.Waveform = s.Waveform
	slot.TremoloEn = s.TremoloEn
	slot.TremoloDeep = s.TremoloDeep
	slot.VibratoEn = s.VibratoEn
	slot.VibratoDeep = s.VibratoDeep
	slot.ModInLevel = s.ModInLevel
	slot.OutputLevel = s.OutputLevel
	slot.OutEnable = s.OutEnable
	slot.EnvDelay = s.EnvDelay
	slot.RhyNoise = s.RhyNoise
	slot.egPosition = s.EgPosition
	slot.egKSLOffset = s.EgKSLOffset
	slot.egOutput = s.EgOutput
	slot.keyscale = s.Keyscale
	slot.egState = EGState(s.EgState)
	slot.egDelayRun = s.EgDelayRun
	slot.egDelayCount = s.EgDelayCount
	slot.phaseAcc = s.PhaseAcc
	slot.phaseOut = s.PhaseOut
	slot.phaseReset = s.PhaseReset
	slot.output = s.Output
	slot.prevOutput = s.PrevOutput
	slot.feedback = s.Feedback
}
