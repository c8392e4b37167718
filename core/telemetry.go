package core

import (
	"math"
	"sync/atomic"
)

// Telemetry is the cross-core state behind the handshake reports. The
// exchange counter is serialized by the handshake protocol itself; the
// spectral fields are single-word atomics written by the analyzer task
// and read best-effort by whichever reporter runs next.
type Telemetry struct {
	exchanges atomic.Uint32
	peakHz    atomic.Uint32 // float32 bits
	fftCount  atomic.Uint32
	isrCore   [2]atomic.Uint32
}

func NewTelemetry() *Telemetry {
	return &Telemetry{}
}

// BumpExchanges increments the handshake counter and returns the new
// value.
func (t *Telemetry) BumpExchanges() uint32 {
	return t.exchanges.Add(1)
}

// Exchanges returns the current handshake count.
func (t *Telemetry) Exchanges() uint32 {
	return t.exchanges.Load()
}

// SetPeakHz publishes the most recent peak frequency.
func (t *Telemetry) SetPeakHz(hz float32) {
	t.peakHz.Store(math.Float32bits(hz))
}

// PeakHz returns the most recent peak frequency.
func (t *Telemetry) PeakHz() float32 {
	return math.Float32frombits(t.peakHz.Load())
}

// BumpFFTCount counts one completed transform.
func (t *Telemetry) BumpFFTCount() {
	t.fftCount.Add(1)
}

// TakeFFTCount returns the transform count accumulated since the last
// call and resets it, so each report shows the rate over its own
// interval.
func (t *Telemetry) TakeFFTCount() uint32 {
	return t.fftCount.Swap(0)
}

// NoteISRCore records which physical core last ran the given voice's
// tick interrupt. Voice is 0 or 1.
func (t *Telemetry) NoteISRCore(voice int, core uint32) {
	t.isrCore[voice].Store(core)
}

// ISRCore returns the core recorded for the given voice.
func (t *Telemetry) ISRCore(voice int) uint32 {
	return t.isrCore[voice].Load()
}
