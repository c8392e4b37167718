// Package sim runs the instrument on a development machine: the same
// voices, handshake and analyzer as the firmware, with the sound card
// standing in for the tone DAC, a signal generator for the
// microphone, and a window for the TFT panel.
package sim

import (
	"sync/atomic"
)

// SimDAC latches the most recent level per channel the way the real
// converter holds its output between writes. Channel A plays on the
// left, channel B on the right.
type SimDAC struct {
	a atomic.Uint32
	b atomic.Uint32
}

// NewSimDAC returns a DAC resting at mid scale on both channels.
func NewSimDAC() *SimDAC {
	d := &SimDAC{}
	d.a.Store(2048)
	d.b.Store(2048)
	return d
}

// Write decodes a command word: bit 15 selects the channel, the low
// 12 bits carry the level.
func (d *SimDAC) Write(word uint16) {
	level := uint32(word & 0x0FFF)
	if word&0x8000 == 0 {
		d.a.Store(level)
	} else {
		d.b.Store(level)
	}
}

// Levels returns the held outputs as signed 16-bit samples.
func (d *SimDAC) Levels() (left, right int16) {
	return toSample(d.a.Load()), toSample(d.b.Load())
}

// toSample recenters a 12-bit level on zero and stretches it over the
// 16-bit range.
func toSample(level uint32) int16 {
	return int16(int32(level)-2048) << 4
}
