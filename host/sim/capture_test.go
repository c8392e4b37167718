package sim

import (
	"testing"
	"time"

	"chirpscope/fix"
	"chirpscope/spectral"
)

func TestSignalSourceSinePeaksAtConfiguredBin(t *testing.T) {
	// Bin 50 of the 10 kHz / 1024 point analysis.
	src := NewSignalSource("sine", 488.28125, 0.8)
	src.fill()

	var fr, fi [spectral.N]fix.Q15
	spectral.LoadWindowed(fr[:], fi[:], src.Samples())
	spectral.Transform(fr[:], fi[:])
	spectral.Magnitudes(fr[:], fi[:])

	bin, value := spectral.PeakBin(fr[:])
	if bin != 50 {
		t.Fatalf("peak bin = %d (magnitude %d), want 50", bin, value)
	}
}

func TestSignalSourceLevelsStayInRange(t *testing.T) {
	for _, shape := range []string{"sine", "chirp", "noise"} {
		src := NewSignalSource(shape, 1000, 1.0)
		src.fill()

		min, max := src.buf[0], src.buf[0]
		for _, b := range src.buf {
			if b < min {
				min = b
			}
			if b > max {
				max = b
			}
		}
		if min == max {
			t.Errorf("%s: buffer is flat at %d", shape, min)
		}
	}
}

func TestSignalSourcePhaseContinuity(t *testing.T) {
	src := NewSignalSource("sine", 488.28125, 0.8)
	src.fill()
	last := src.buf[spectral.N-1]
	src.fill()
	first := src.buf[0]

	// One sample step of a bin 50 sine moves at most a quarter of the
	// full swing, so a seam between blocks shows up as a jump.
	diff := int(first) - int(last)
	if diff < 0 {
		diff = -diff
	}
	if diff > 64 {
		t.Errorf("block seam jumps by %d levels", diff)
	}
}

func TestSignalSourceCaptureProtocol(t *testing.T) {
	src := NewSignalSource("sine", 488.28125, 0.8)
	src.Start()

	done := make(chan struct{})
	go func() {
		src.WaitFill()
		src.Rearm()
		src.WaitFill()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("two capture cycles did not complete")
	}
}

func TestCapturePeriod(t *testing.T) {
	if capturePeriod != 102400*time.Microsecond {
		t.Fatalf("capture period = %v, want 102.4ms", capturePeriod)
	}
}
