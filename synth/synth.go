// Package synth generates the repeating DDS beep played on each core.
// A Voice is ticked at the sample rate from a hardware timer interrupt
// and produces ready-to-send DAC command words.
package synth

import (
	"math"

	"chirpscope/fix"
)

// Timing of the direct digital synthesis path. All of these are in
// units of sample ticks (25 us at 40 kHz).
const (
	SampleRate = 40000 // DDS tick rate in Hz
	ToneHz     = 2300  // beep pitch

	AttackTicks = 3000  // amplitude ramp up
	DecayTicks  = 3000  // amplitude ramp down
	BeepTicks   = 10000 // attack + sustain + decay
	RestTicks   = 40000 // silent gap between beeps
)

// PhaseIncrement advances the 32-bit phase accumulator once per tick.
// Integer form of ToneHz * 2^32 / SampleRate, truncated.
const PhaseIncrement = uint32(ToneHz * (1 << 32) / SampleRate)

// MCP4822 command words: bit 15 selects the channel, bit 13 sets 1x
// gain, bit 12 keeps the output active. The low 12 bits carry the
// sample.
const (
	ChannelA uint16 = 0x3000
	ChannelB uint16 = 0xB000

	dacMid  = 2048 // mid-scale bias for the unipolar 12-bit DAC
	dacMask = 0x0FFF
)

// Envelope parameters. The ramp steps round up so the attack reaches
// MaxAmplitude no later than AttackTicks and the decay reaches zero by
// the end of the beep; Tick clamps at both ends.
const (
	MaxAmplitude fix.Q15 = fix.One
	volumeScale  fix.Q15 = fix.One / 2

	attackStep = (MaxAmplitude + AttackTicks - 1) / AttackTicks
	decayStep  = (MaxAmplitude + DecayTicks - 1) / DecayTicks
)

// SineTable holds one full cycle scaled to +/-2047 for the 12-bit DAC.
// It is indexed by the top 8 bits of the phase accumulator.
var SineTable [256]fix.Q15

func init() {
	n := float64(len(SineTable))
	for i := range SineTable {
		SineTable[i] = fix.FromFloat(2047 * math.Sin(2*math.Pi*float64(i)/n))
	}
}
