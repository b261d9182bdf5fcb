package esfm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"
)

// program is a deterministic sequence of register writes that keys on
// slot 0 of channels 0-3 with different multipliers, pitches and
// waveforms, exercising the envelope, phase and waveform paths together.
func program(chip *Chip) {
	chip.NativeMode = true

	for ch := 0; ch < 4; ch++ {
		base := uint16(ch * 4 * 8)
		WriteReg(chip, base+0, 0x01+uint8(ch))
		WriteReg(chip, base+1, 0x08)
		WriteReg(chip, base+2, 0xf8)
		WriteReg(chip, base+4, 0x20+uint8(ch*16))
		WriteReg(chip, base+5, 0x08)
		WriteReg(chip, base+6, 0x30)
		WriteReg(chip, base+7, uint8(0xc0|ch))
		WriteReg(chip, keyOnRegsStart+uint16(ch), 0x01)
	}
}

// TestConcurrentChipsStayIndependent drives two chips from separate
// goroutines and checks that running them concurrently produces the
// exact same output, and the exact same final state, as running them
// sequentially: each Chip is a self-contained value with no shared
// mutable state across instances.
func TestConcurrentChipsStayIndependent(t *testing.T) {
	const n = 4000

	render := func(chip *Chip) []int16 {
		program(chip)
		out := make([]int16, 2*n)
		GenerateStream(chip, out, n)
		return out
	}

	var chipA, chipB Chip
	Init(&chipA)
	Init(&chipB)

	var g errgroup.Group
	var outA, outB []int16
	g.Go(func() error {
		outA = render(&chipA)
		return nil
	})
	g.Go(func() error {
		outB = render(&chipB)
		return nil
	})
	if err := g.Wait(); err != nil {
		t.Fatalf("errgroup.Wait: %v", err)
	}

	for i := range outA {
		if outA[i] != outB[i] {
			t.Fatalf("sample %d: chipA=%d chipB=%d, want identical streams from identical programs", i, outA[i], outB[i])
		}
	}

	var chipSeq Chip
	Init(&chipSeq)
	outSeq := render(&chipSeq)
	for i := range outSeq {
		if outSeq[i] != outA[i] {
			t.Fatalf("sample %d diverged between concurrent and sequential runs: %d vs %d", i, outA[i], outSeq[i])
		}
	}

	stateA := State(&chipA)
	stateSeq := State(&chipSeq)
	if diff := cmp.Diff(stateSeq, stateA); diff != "" {
		t.Fatalf("final chip state diverged between concurrent and sequential runs:\n%s", diff)
	}
}
