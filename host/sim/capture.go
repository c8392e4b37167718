package sim

import (
	"math"
	"math/rand"
	"time"

	"chirpscope/spectral"
)

// capturePeriod is how long the hardware takes to fill one block:
// 1024 samples at 10 kHz.
const capturePeriod = time.Duration(spectral.N) * time.Second / spectral.SampleRate

// SignalSource stands in for the microphone capture chain. A
// generator goroutine produces one block per capture period and then
// parks until Rearm, the same single buffer protocol as the DMA ring.
type SignalSource struct {
	shape string
	freq  float64
	amp   float64

	buf    [spectral.N]byte
	filled chan struct{}
	armed  chan struct{}
	phase  float64
	sweep  float64
	rng    *rand.Rand
}

// NewSignalSource builds a generator. Shape is "sine", "chirp" or
// "noise"; amp scales the swing as a fraction of full scale.
func NewSignalSource(shape string, freq, amp float64) *SignalSource {
	return &SignalSource{
		shape:  shape,
		freq:   freq,
		amp:    amp,
		filled: make(chan struct{}, 1),
		armed:  make(chan struct{}, 1),
		rng:    rand.New(rand.NewSource(1)),
	}
}

func (s *SignalSource) Start() {
	go s.run()
}

func (s *SignalSource) run() {
	for {
		time.Sleep(capturePeriod)
		s.fill()
		s.filled <- struct{}{}
		<-s.armed
	}
}

// WaitFill blocks until the current block is complete.
func (s *SignalSource) WaitFill() {
	<-s.filled
}

// Rearm releases the generator to produce the next block.
func (s *SignalSource) Rearm() {
	s.armed <- struct{}{}
}

func (s *SignalSource) Samples() []byte {
	return s.buf[:]
}

func (s *SignalSource) fill() {
	const dt = 1.0 / spectral.SampleRate
	for i := range s.buf {
		var v float64
		switch s.shape {
		case "noise":
			v = s.rng.Float64()*2 - 1
		case "chirp":
			// Sweep a decade centered on the configured frequency
			// over ten seconds of capture time, then wrap.
			f := s.freq * math.Pow(10, s.sweep-0.5)
			s.sweep += dt / 10
			if s.sweep >= 1 {
				s.sweep = 0
			}
			s.phase += 2 * math.Pi * f * dt
			v = math.Sin(s.phase)
		default:
			s.phase += 2 * math.Pi * s.freq * dt
			v = math.Sin(s.phase)
		}
		s.buf[i] = toLevel(v * s.amp)
	}
	// Keep the running phase small across blocks.
	s.phase = math.Mod(s.phase, 2*math.Pi)
}

// toLevel maps [-1, 1] onto the 8-bit range around the ADC midpoint.
func toLevel(v float64) byte {
	level := 128 + 127*v
	if level < 0 {
		level = 0
	}
	if level > 255 {
		level = 255
	}
	return byte(level)
}
