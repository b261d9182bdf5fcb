// Package resample band-limits and rate-converts the chip's native
// sample stream down to an arbitrary host output rate.
package resample

import (
	"github.com/arl/blip"

	"esfm/log"
)

// NativeRate is the chip's own sample rate: one stereo sample per
// generate call, independent of any host playback rate.
const NativeRate = 49716

const maxSamplesPerFrame = 96000/60*4*2 + 64

// Resampler accumulates native-rate deltas into a pair of band-limited
// blip.Buffers and reads them back out at the configured host rate,
// grounded on the teacher's apu/mixer.go Mixer split into left/right
// blip buffers.
type Resampler struct {
	left, right *blip.Buffer

	prevLeft, prevRight int16

	clocksPerFrame int
	outbuf         [maxSamplesPerFrame]int16
}

// New builds a Resampler converting from NativeRate to hostRate.
func New(hostRate int) *Resampler {
	r := &Resampler{
		left:  blip.NewBuffer(maxSamplesPerFrame),
		right: blip.NewBuffer(maxSamplesPerFrame),
	}
	r.SetRate(hostRate)
	log.ModResample.DebugZ("resampler created").Int("host_rate", hostRate).End()
	return r
}

// SetRate reconfigures both channel buffers for a new host rate without
// discarding buffered but not-yet-read samples.
func (r *Resampler) SetRate(hostRate int) {
	r.left.SetRates(NativeRate, float64(hostRate))
	r.right.SetRates(NativeRate, float64(hostRate))
}

// Add feeds one native-rate stereo sample at native sample index t into
// the resampler, as a delta from the previous sample (blip.Buffer
// band-limits by accumulating deltas, not raw levels).
func (r *Resampler) Add(t uint64, left, right int16) {
	if d := int32(left) - int32(r.prevLeft); d != 0 {
		r.left.AddDelta(t, d)
		r.prevLeft = left
	}
	if d := int32(right) - int32(r.prevRight); d != 0 {
		r.right.AddDelta(t, d)
		r.prevRight = right
	}
}

// EndFrame flushes accumulated deltas after clocks native-rate samples
// have been fed via Add, and must be called once per render frame.
func (r *Resampler) EndFrame(clocks int) {
	r.left.EndFrame(clocks)
	r.right.EndFrame(clocks)
}

// ReadSamples drains up to len(out)/2 interleaved stereo frames from the
// resampled output and returns the number of frames written.
func (r *Resampler) ReadSamples(out []int16) int {
	n := r.left.ReadSamples(out, len(out)/2, blip.Stereo)
	r.right.ReadSamples(out[1:], len(out)/2, blip.Stereo)
	return n
}

// Available reports how many resampled stereo frames are ready to read.
func (r *Resampler) Available() int {
	return r.left.SamplesAvailable()
}
