package spectral

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mjibson/go-dsp/fft"

	"chirpscope/fix"
)

func TestTransformZeros(t *testing.T) {
	var fr, fi [N]fix.Q15

	Transform(fr[:], fi[:])

	for i := 0; i < N; i++ {
		if fr[i] != 0 || fi[i] != 0 {
			t.Fatalf("bin %d: (%d, %d), want zeros", i, fr[i], fi[i])
		}
	}
}

func TestTransformImpulseIsFlat(t *testing.T) {
	var fr, fi [N]fix.Q15

	// 128 is divisible by N once scaled, so the per-stage halving loses
	// nothing and every bin must come out exactly equal and real.
	fr[0] = fix.FromInt(128)
	want := fix.FromInt(128) >> logN

	Transform(fr[:], fi[:])

	for i := 0; i < N; i++ {
		if fr[i] != want {
			t.Fatalf("bin %d: re = %d, want %d", i, fr[i], want)
		}
		if fi[i] != 0 {
			t.Fatalf("bin %d: im = %d, want 0", i, fi[i])
		}
	}
}

func TestTransformSinusoidPeaksAtBin(t *testing.T) {
	var fr, fi [N]fix.Q15

	// A mid-scale 8-bit capture of a sinusoid sitting exactly on bin 50
	// (488.28 Hz at 10 kHz / 1024).
	samples := make([]byte, N)
	for i := range samples {
		samples[i] = byte(128 + 120*math.Sin(2*math.Pi*50*float64(i)/N))
	}

	LoadWindowed(fr[:], fi[:], samples)
	Transform(fr[:], fi[:])
	Magnitudes(fr[:], fi[:])

	bin, value := PeakBin(fr[:])
	if bin != 50 {
		t.Fatalf("peak bin = %d (magnitude %d), want 50", bin, value)
	}
	if value == 0 {
		t.Fatal("peak magnitude is zero")
	}
}

func TestTransformAgainstFloatReference(t *testing.T) {
	var fr, fi [N]fix.Q15

	// Two tones plus noise, deterministic.
	rng := rand.New(rand.NewSource(7))
	samples := make([]byte, N)
	for i := range samples {
		s := 128 +
			60*math.Sin(2*math.Pi*50*float64(i)/N) +
			30*math.Sin(2*math.Pi*200*float64(i)/N+1) +
			10*(rng.Float64()*2-1)
		if s < 0 {
			s = 0
		}
		if s > 255 {
			s = 255
		}
		samples[i] = byte(s)
	}

	LoadWindowed(fr[:], fi[:], samples)

	// Feed the reference the exact windowed fixed point input so the
	// comparison isolates transform error.
	in := make([]float64, N)
	for i := range in {
		in[i] = fix.ToFloat(fr[i])
	}
	ref := fft.FFTReal(in)

	Transform(fr[:], fi[:])

	var maxDiff float64
	for k := 0; k < N; k++ {
		// The per-stage halving scales the fixed point result by 1/N.
		dr := math.Abs(fix.ToFloat(fr[k]) - real(ref[k])/N)
		di := math.Abs(fix.ToFloat(fi[k]) - imag(ref[k])/N)
		if dr > maxDiff {
			maxDiff = dr
		}
		if di > maxDiff {
			maxDiff = di
		}
	}
	t.Logf("max deviation from float reference: %g", maxDiff)
	if maxDiff > 0.05 {
		t.Errorf("max deviation %g exceeds 0.05", maxDiff)
	}
}

func TestTransformApproximatelyLinear(t *testing.T) {
	var ar, ai, br, bi, sr, si [N]fix.Q15

	for i := 0; i < N; i++ {
		a := fix.FromFloat(20 * math.Sin(2*math.Pi*10*float64(i)/N))
		b := fix.FromFloat(15 * math.Sin(2*math.Pi*30*float64(i)/N+1))
		ar[i], br[i], sr[i] = a, b, a+b
	}

	Transform(ar[:], ai[:])
	Transform(br[:], bi[:])
	Transform(sr[:], si[:])

	// Truncation makes the paths differ by a few LSBs per stage, not more.
	const tol = 256
	for k := 0; k < N; k++ {
		if d := int32(sr[k] - (ar[k] + br[k])); d < -tol || d > tol {
			t.Fatalf("bin %d: re nonlinearity %d", k, d)
		}
		if d := int32(si[k] - (ai[k] + bi[k])); d < -tol || d > tol {
			t.Fatalf("bin %d: im nonlinearity %d", k, d)
		}
	}
}

func TestBitReverseSelfInverse(t *testing.T) {
	var fr, fi [N]fix.Q15
	for i := 0; i < N; i++ {
		fr[i] = fix.Q15(i)
		fi[i] = fix.Q15(-i)
	}

	bitReverse(fr[:], fi[:])
	bitReverse(fr[:], fi[:])

	for i := 0; i < N; i++ {
		if fr[i] != fix.Q15(i) || fi[i] != fix.Q15(-i) {
			t.Fatalf("index %d not restored: (%d, %d)", i, fr[i], fi[i])
		}
	}
}

func TestBitReversePermutation(t *testing.T) {
	var fr, fi [N]fix.Q15
	for i := 0; i < N; i++ {
		fr[i] = fix.Q15(i)
	}

	bitReverse(fr[:], fi[:])

	tests := []struct {
		idx  int
		want fix.Q15
	}{
		{0, 0},       // palindrome
		{1, 512},     // 0b0000000001 -> 0b1000000000
		{512, 1},     //
		{3, 768},     // 0b0000000011 -> 0b1100000000
		{256, 2},     //
		{1023, 1023}, // all ones
	}
	for _, tt := range tests {
		if fr[tt.idx] != tt.want {
			t.Errorf("fr[%d] = %d, want %d", tt.idx, fr[tt.idx], tt.want)
		}
	}
}
