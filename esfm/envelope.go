package esfm

// updateKSLOffset recomputes a slot's precomputed keyscale-level
// attenuation seed from FNum and Block. Must be called whenever either
// changes; the KSL field is applied later, in runEnvelope, as a shift of
// this seed.
func updateKSLOffset(slot *Slot) {
	raw := int32(kslROM[slot.FNum>>6])<<2 - int32(8-slot.Block)<<5
	if raw < 0 {
		raw = 0
	}
	slot.egKSLOffset = uint16(raw)
}

// updateKeyscale recomputes a slot's key-scale number: the block/f_num
// derived 4-bit value runEnvelope's KSR rate scaling reads as `ks`. Must
// be called whenever FNum or Block changes.
func updateKeyscale(slot *Slot) {
	slot.keyscale = slot.Block<<1 | uint8(slot.FNum>>9)&1
}

// runEnvelope advances one slot's envelope generator by one sample,
// computing this sample's effective attenuation (egOutput) and stepping
// egPosition through the Attack/Decay/Sustain/Release state machine.
func runEnvelope(slot *Slot) {
	chip := slot.channel.chip

	slot.egOutput = slot.egPosition + uint16(slot.TLevel)<<2 +
		slot.egKSLOffset>>kslShiftTable[slot.KSL]

	if slot.TremoloEn {
		var shift uint8 = 4
		if slot.TremoloDeep {
			shift = 2
		}
		slot.egOutput += uint16(chip.tremolo >> shift)
	}

	keyOn := slotKeyOn(slot)

	var reset bool
	var regRate uint8

	if keyOn && slot.egState == EGRelease {
		if !slot.egDelayRun {
			slot.egDelayRun = true
			if slot.EnvDelay != 0 {
				slot.egDelayCount = 0x100
			} else {
				slot.egDelayCount = 0
			}
		}

		if slot.egDelayCount == 0 {
			slot.egDelayRun = false
			reset = true
			regRate = slot.AttackRate
		} else {
			if chip.globalTimer&(1<<slot.EnvDelay) != 0 {
				slot.egDelayCount--
			}
			regRate = slot.ReleaseRate
		}
	} else {
		switch slot.egState {
		case EGAttack:
			regRate = slot.AttackRate
		case EGDecay:
			regRate = slot.DecayRate
		case EGSustain:
			if !slot.EnvSustaining {
				regRate = slot.ReleaseRate
			}
		case EGRelease:
			regRate = slot.ReleaseRate
		}
	}

	slot.phaseReset = reset

	ksrShift := uint8(2)
	if slot.KSR {
		ksrShift = 0
	}
	ks := slot.keyscale >> ksrShift
	nonzero := regRate != 0
	rate := ks + regRate<<2
	rateHi := rate >> 2
	rateLo := rate & 0x03
	if rateHi&0x10 != 0 {
		rateHi = 0x0f
	}
	egShift := rateHi + chip.egClocks

	var shift uint8
	if nonzero {
		if rateHi < 12 {
			if chip.egTick {
				switch egShift {
				case 12:
					shift = 1
				case 13:
					shift = (rateLo >> 1) & 0x01
				case 14:
					shift = rateLo & 0x01
				}
			}
		} else {
			shift = (rateHi & 0x03) + egIncStepTable[rateLo][chip.globalTimer&0x03]
			if shift&0x04 != 0 {
				shift = 0x03
			}
			if shift == 0 {
				if chip.egTick {
					shift = 1
				}
			}
		}
	}

	egRout := slot.egPosition
	var egInc int32
	var egOff bool

	if reset && rateHi == 0x0f {
		egRout = 0
	}
	if slot.egPosition&0x1f8 == 0x1f8 {
		egOff = true
	}
	if slot.egState != EGAttack && !reset && egOff {
		egRout = 0x1ff
	}

	switch slot.egState {
	case EGAttack:
		if slot.egPosition == 0 {
			slot.egState = EGDecay
		} else if keyOn && shift > 0 && rateHi != 0x0f {
			// The attack curve is the bitwise complement of eg_position
			// shifted down: bits above the 9-bit field are implicitly 1,
			// so shifting pulls 1s into the top of the result rather than
			// zeros (replicates ESFM_envelope_calc's `~eg_position >>
			// (4-shift)` on a wider-than-9-bit unsigned type).
			complement := ^uint32(slot.egPosition)
			egInc = int32((complement >> (4 - shift)) & 0x1ff)
		}
	case EGDecay:
		if slot.egPosition>>4 == uint16(slot.SustainLvl) {
			slot.egState = EGSustain
		} else if !egOff && !reset && shift > 0 {
			egInc = 1 << (shift - 1)
		}
	case EGSustain, EGRelease:
		if !egOff && !reset && shift > 0 {
			egInc = 1 << (shift - 1)
		}
	}

	slot.egPosition = uint16(int32(egRout)+egInc) & 0x1ff

	if reset {
		slot.egState = EGAttack
	}
	if !keyOn {
		slot.egState = EGRelease
		slot.egDelayRun = false
	}
}

// slotKeyOn resolves the key-on bit a slot observes: channels 16/17 route
// slots 2-3 to KeyOn2 instead of KeyOn, per the chip's second-pair wiring.
func slotKeyOn(slot *Slot) bool {
	ch := slot.channel
	if ch.idx >= 16 && slot.idx&0x02 != 0 {
		return ch.KeyOn2
	}
	return ch.KeyOn
}
