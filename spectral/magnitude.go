package spectral

import "chirpscope/fix"

// beta coefficient of the alpha-max-plus-beta-min magnitude estimate.
var magBeta = fix.FromFloat(0.4)

// FirstBin is the lowest bin considered by the peak search; the bins
// below it carry the DC component and its window leakage.
const FirstBin = 5

// Magnitudes collapses the lower half of the spectrum into per-bin
// magnitude estimates, in place in fr. The estimate is
// max(|re|,|im|) + 0.4*min(|re|,|im|), a cheap stand-in for
// sqrt(re*re+im*im). Bins N/2 and above are left untouched.
func Magnitudes(fr, fi []fix.Q15) {
	for i := 0; i < N/2; i++ {
		re := fix.Abs(fr[i])
		im := fix.Abs(fi[i])
		if re >= im {
			fr[i] = re + fix.Mul(im, magBeta)
		} else {
			fr[i] = im + fix.Mul(re, magBeta)
		}
	}
}

// PeakBin returns the index and magnitude of the strongest bin in
// mags[FirstBin:N/2]. Ties keep the lowest index. An all-zero spectrum
// reports bin 0.
func PeakBin(mags []fix.Q15) (bin int, value fix.Q15) {
	for i := FirstBin; i < N/2; i++ {
		if mags[i] > value {
			value = mags[i]
			bin = i
		}
	}
	return bin, value
}

// BinHz converts a bin index to its center frequency in Hz.
func BinHz(bin int) float32 {
	return float32(bin) * (SampleRate / float32(N))
}
