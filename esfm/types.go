// Package esfm emulates the core sample-generation pipeline of the ESS
// ESFM sound chip, an enhanced clone of the Yamaha OPL3 FM synthesizer.
//
// Given a sequence of native-mode register writes and one GenerateSample
// call per output sample, a Chip reproduces the chip's stereo 16-bit PCM
// output bit-exactly. The package also decodes native-mode register
// writes and readbacks (WriteReg, ReadbackReg) and the legacy 4-port
// interface; of the OPL3 emulation-mode register map it handles only the
// mode switch and the keyscale-mode bit. Host audio I/O is the caller's
// concern.
package esfm

// EGState is one of the four envelope-generator states a slot cycles
// through over its lifetime.
type EGState uint8

const (
	EGAttack EGState = iota
	EGDecay
	EGSustain
	EGRelease
)

// Channel is one of the chip's 18 FM channels, each owning 4 operator
// slots chained slot0 -> slot1 -> slot2 -> slot3, with slot0 feeding back
// into itself.
type Channel struct {
	Slots [4]Slot

	// Output is the channel's stereo accumulator, cleared and refilled
	// every GenerateSample call.
	Output [2]int32

	KeyOn  bool // drives slots 0-1 (and, on channels 0-15, all 4 slots)
	KeyOn2 bool // drives slots 2-3 on channels 16 and 17 only

	// Emu4opEnable/Emu4opEnable2 are OPL3-compatibility 4-operator enable
	// flags. In native mode all four slots of every channel are always
	// active; these bits are read/write state only.
	Emu4opEnable  bool
	Emu4opEnable2 bool

	chip *Chip
	idx  uint8
}

// Slot is one of the chip's 72 FM operators.
type Slot struct {
	// --- register state (host-writable) ---

	FNum  uint16 // 10 bits
	Block uint8  // 3 bits
	Mult  uint8  // 4 bits

	TLevel uint8 // 6 bits, total attenuation
	KSL    uint8 // 2 bits
	KSR    bool

	AttackRate  uint8 // 4 bits
	DecayRate   uint8 // 4 bits
	SustainLvl  uint8 // 4 bits
	ReleaseRate uint8 // 4 bits

	EnvSustaining bool
	Waveform      uint8 // 3 bits, 0-7

	TremoloEn, TremoloDeep bool
	VibratoEn, VibratoDeep bool

	ModInLevel  uint8 // 3 bits; also the slot-0 feedback level
	OutputLevel uint8 // 3 bits

	// OutEnable stores the per-channel L/R output mask as all-ones or
	// all-zero values, so that the slot generator's gating is a plain
	// bitwise AND (see slot.go).
	OutEnable [2]int16

	EnvDelay uint8 // 3 bits, pre-attack delay exponent
	RhyNoise uint8 // 2 bits, only meaningful on slot index 3

	// --- internal synthesis state ---

	egPosition   uint16 // 9 bits, 0 = full volume, 0x1ff = silent
	egKSLOffset  uint16 // 9 bits, precomputed from f_num/block
	egOutput     uint16 // 10 bits, effective attenuation this sample
	keyscale     uint8  // 4 bits
	egState      EGState
	egDelayRun   bool
	egDelayCount uint16 // 9 bits

	phaseAcc   uint32 // 19 bits
	phaseOut   uint16 // 10 bits
	phaseReset bool

	output     int16 // 12-bit signed
	prevOutput int16 // 12-bit signed
	feedback   int16 // 12-bit signed, average of the last two slot-0 outputs

	channel *Channel
	idx     uint8 // 0-3 within the channel
}

// Chip is the top-level aggregate: 18 channels, the global LFOs and
// timers, and the bits of register state not owned by a slot or channel.
type Chip struct {
	Channels [18]Channel

	// Timers & LFOs, advanced once per sample after all channels run.
	egTimer         uint64 // 36 bits
	egTimerOverflow bool
	globalTimer     uint16 // 10 bits
	egTick          bool
	egClocks        uint8 // 4 bits

	tremolo    uint8
	tremoloPos uint8 // 0..209
	vibratoPos uint8 // 3 bits

	lfsr uint32 // 23 bits, seeded to 1

	// Global mode flags.
	NativeMode   bool
	KeyscaleMode bool
	EmuNewMode   bool

	// Test-register latches. Mute zeroes every channel's contribution to
	// the mix; the others are read/write-stable stubs per spec.
	TestDistort   bool
	TestAttenuate bool
	TestMute      bool

	// Legacy 4-port interface.
	addrLatch uint16

	// FM/OPL timers (distinct from the envelope/global timers above).
	Timers        [2]uint8
	TimerEnable   [2]bool
	TimerMask     [2]bool
	TimerOverflow [2]bool
	IRQBit        bool

	// rhythm phase-mixing scratch, recomputed every sample on slot 3 of a
	// rhythm-enabled channel; kept on the chip because the hi-hat/cymbal
	// formulas read the sibling slot-2 phase alongside their own.
	rmHHBit2, rmHHBit3, rmHHBit7, rmHHBit8 uint8
	rmTCBit3, rmTCBit5                    uint8
}
