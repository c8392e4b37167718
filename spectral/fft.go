// Package spectral computes the fixed point spectrum of captured audio:
// an in-place 1024-point FFT with Hann windowing, alpha-max-plus-beta-min
// magnitude estimation and peak bin search.
package spectral

import "chirpscope/fix"

// Transform size. The bit reversal shift assumes indices fit in 16 bits.
const (
	N    = 1024 // samples per transform
	logN = 10

	shiftAmount = 16 - logN

	// SampleRate is the capture rate in Hz; together with N it sets the
	// bin width for frequency conversion.
	SampleRate = 10000
)

// Transform computes the FFT of fr (real) and fi (imaginary) in place.
// Both slices must have length N. Every butterfly stage halves its
// inputs before combining, so the result is scaled down by N relative
// to the textbook transform and intermediate values cannot overflow
// for 8-bit input samples.
func Transform(fr, fi []fix.Q15) {
	bitReverse(fr, fi)

	// Danielson-Lanczos: combine FFTs of length span into length 2*span.
	span := 1
	k := logN - 1
	for span < N {
		step := span << 1
		for m := 0; m < span; m++ {
			t := m << k
			wr := twiddle[t+N/4] >> 1 // cos(2 pi m / step), halved
			wi := (-twiddle[t]) >> 1  // -sin(2 pi m / step), halved
			for i := m; i < N; i += step {
				j := i + span
				tr := fix.Mul(wr, fr[j]) - fix.Mul(wi, fi[j])
				ti := fix.Mul(wr, fi[j]) + fix.Mul(wi, fr[j])
				qr := fr[i] >> 1
				qi := fi[i] >> 1
				fr[j] = qr - tr
				fi[j] = qi - ti
				fr[i] = qr + tr
				fi[i] = qi + ti
			}
		}
		k--
		span = step
	}
}

// bitReverse permutes both buffers into bit-reversed index order. The
// reversal runs on 16-bit values (swap odd/even bits, pairs, nibbles,
// bytes) and shifts down to the logN bits that matter.
func bitReverse(fr, fi []fix.Q15) {
	for m := uint16(1); m < N-1; m++ {
		mr := ((m >> 1) & 0x5555) | ((m & 0x5555) << 1)
		mr = ((mr >> 2) & 0x3333) | ((mr & 0x3333) << 2)
		mr = ((mr >> 4) & 0x0F0F) | ((mr & 0x0F0F) << 4)
		mr = ((mr >> 8) & 0x00FF) | ((mr & 0x00FF) << 8)
		mr >>= shiftAmount
		// Skip pairs that have already been swapped.
		if mr <= m {
			continue
		}
		fr[m], fr[mr] = fr[mr], fr[m]
		fi[m], fi[mr] = fi[mr], fi[m]
	}
}
