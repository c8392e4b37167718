package spectral

import (
	"math"

	"chirpscope/fix"
)

// twiddle holds a full cycle of sine; the butterflies read cosines out
// of it at a quarter-cycle offset. window is the Hann window applied
// when loading raw samples.
var (
	twiddle [N]fix.Q15
	window  [N]fix.Q15
)

func init() {
	for i := 0; i < N; i++ {
		twiddle[i] = fix.FromFloat(math.Sin(2 * math.Pi * float64(i) / N))
		window[i] = fix.FromFloat(0.5 * (1 - math.Cos(2*math.Pi*float64(i)/N)))
	}
}

// LoadWindowed fills the FFT working buffers from raw 8-bit samples:
// the real part gets the windowed sample value, the imaginary part is
// zeroed. Both slices must have length N.
func LoadWindowed(fr, fi []fix.Q15, samples []byte) {
	for i := 0; i < N && i < len(samples); i++ {
		fr[i] = fix.Mul(fix.FromInt(int32(samples[i])), window[i])
		fi[i] = 0
	}
}
