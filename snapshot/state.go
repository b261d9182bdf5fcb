// Package snapshot defines plain, msgp-friendly mirrors of esfm.Chip's
// internal state for save/restore, kept separate from the live
// unexported fields it copies from.
package snapshot

//go:generate go tool msgp -tests=false -marshal=false

type Chip struct {
	Channels [18]Channel

	EgTimer         uint64
	EgTimerOverflow bool
	GlobalTimer     uint16
	EgTick          bool
	EgClocks        uint8
	Tremolo         uint8
	TremoloPos      uint8
	VibratoPos      uint8
	Lfsr            uint32

	NativeMode   bool
	KeyscaleMode bool
	EmuNewMode   bool

	TestDistort   bool
	TestAttenuate bool
	TestMute      bool

	AddrLatch uint16

	Timers        [2]uint8
	TimerEnable   [2]bool
	TimerMask     [2]bool
	TimerOverflow [2]bool
	IRQBit        bool

	RmHHBit2, RmHHBit3, RmHHBit7, RmHHBit8 uint8
	RmTCBit3, RmTCBit5                     uint8
}

type Channel struct {
	Slots [4]Slot

	KeyOn         bool
	KeyOn2        bool
	Emu4opEnable  bool
	Emu4opEnable2 bool
}

type Slot struct {
	FNum        uint16
	Block       uint8
	Mult        uint8
	TLevel      uint8
	KSL         uint8
	KSR         bool
	AttackRate  uint8
	DecayRate   uint8
	SustainLvl  uint8
	ReleaseRate uint8

	EnvSustaining bool
	Waveform      uint8
	TremoloEn     bool
	TremoloDeep   bool
	VibratoEn     bool
	VibratoDeep   bool
	ModInLevel    uint8
	OutputLevel   uint8
	OutEnable     [2]int16
	EnvDelay      uint8
	RhyNoise      uint8

	EgPosition   uint16
	EgKSLOffset  uint16
	EgOutput     uint16
	Keyscale     uint8
	EgState      uint8
	EgDelayRun   bool
	EgDelayCount uint16

	PhaseAcc   uint32
	PhaseOut   uint16
	PhaseReset bool

	Output     int16
	PrevOutput int16
	Feedback   int16
}
