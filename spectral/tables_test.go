package spectral

import (
	"testing"

	"chirpscope/fix"
)

func TestHannWindowShape(t *testing.T) {
	if window[0] != 0 {
		t.Errorf("window[0] = %d, want 0", window[0])
	}
	if window[N/2] != fix.One {
		t.Errorf("window[N/2] = %d, want %d", window[N/2], fix.One)
	}
	// Even symmetry about the center.
	for i := 1; i < N; i++ {
		a, b := window[i], window[N-i]
		if d := a - b; d < -1 || d > 1 {
			t.Errorf("window asymmetric at %d: %d vs %d", i, a, b)
		}
	}
	// Monotone rise over the first half.
	for i := 1; i <= N/2; i++ {
		if window[i] < window[i-1] {
			t.Errorf("window not monotone at %d: %d < %d", i, window[i], window[i-1])
		}
	}
}

func TestTwiddleQuarterPoints(t *testing.T) {
	tests := []struct {
		idx  int
		want fix.Q15
	}{
		{0, 0},
		{N / 4, fix.One},  // sin(pi/2)
		{N / 2, 0},        // sin(pi)
		{3 * N / 4, -fix.One},
	}
	for _, tt := range tests {
		got := twiddle[tt.idx]
		if d := got - tt.want; d < -1 || d > 1 {
			t.Errorf("twiddle[%d] = %d, want %d", tt.idx, got, tt.want)
		}
	}
}

func TestLoadWindowed(t *testing.T) {
	var fr, fi [N]fix.Q15
	for i := range fi {
		fi[i] = fix.Q15(i) // stale garbage that must be cleared
	}

	samples := make([]byte, N)
	for i := range samples {
		samples[i] = 200
	}

	LoadWindowed(fr[:], fi[:], samples)

	if fr[0] != 0 {
		t.Errorf("fr[0] = %d, want 0 (window endpoint)", fr[0])
	}
	if want := fix.Mul(fix.FromInt(200), window[N/2]); fr[N/2] != want {
		t.Errorf("fr[N/2] = %d, want %d", fr[N/2], want)
	}
	for i := 0; i < N; i++ {
		if fi[i] != 0 {
			t.Fatalf("fi[%d] = %d, want 0", i, fi[i])
		}
	}
}

func TestLoadWindowedShortBuffer(t *testing.T) {
	var fr, fi [N]fix.Q15
	LoadWindowed(fr[:], fi[:], make([]byte, 16)) // must not panic
}
