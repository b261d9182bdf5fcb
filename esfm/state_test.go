package esfm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStateRoundTrip(t *testing.T) {
	var chip Chip
	Init(&chip)
	program(&chip)

	out := make([]int16, 2*500)
	GenerateStream(&chip, out, 500)

	snap := State(&chip)

	var restored Chip
	Init(&restored)
	SetState(&restored, snap)

	if diff := cmp.Diff(State(&chip), State(&restored)); diff != "" {
		t.Fatalf("SetState(State(chip)) did not reproduce chip's state:\n%s", diff)
	}

	wantOut := make([]int16, 2*500)
	GenerateStream(&chip, wantOut, 500)
	gotOut := make([]int16, 2*500)
	GenerateStream(&restored, gotOut, 500)
	for i := range wantOut {
		if wantOut[i] != gotOut[i] {
			t.Fatalf("sample %d: original chip continued as %d, restored chip as %d", i, wantOut[i], gotOut[i])
		}
	}
}
