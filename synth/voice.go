package synth

import "chirpscope/fix"

// State enumerates the envelope states of a voice.
type State uint8

const (
	StateActive    State = iota // beep in progress
	StateQuiescent              // silent until the next beep
)

// Voice is one DDS beep generator. Each core owns exactly one voice
// and ticks it from its own timer interrupt, so Voice needs no
// locking: all fields are touched from a single interrupt context.
type Voice struct {
	channel uint16 // DAC command bits ORed into every sample
	inc     uint32 // phase step per tick
	phase   uint32 // wrapping phase accumulator
	amp     fix.Q15
	state   State
	ticks   uint32 // ticks elapsed in the current state
}

// NewVoice returns a voice that beeps on the given DAC channel.
// The first beep starts with the first tick.
func NewVoice(channel uint16) *Voice {
	return &Voice{channel: channel, inc: PhaseIncrement}
}

// Tick advances the voice by one sample period. While the beep is
// active it returns the DAC command word for the sample and ok=true.
// While quiescent it returns ok=false and nothing must be written, so
// the DAC holds its last level. Runs in interrupt context: no
// allocation, no blocking, integer math only.
func (v *Voice) Tick() (word uint16, ok bool) {
	if v.state == StateActive {
		v.phase += v.inc
		s := fix.ToInt(fix.Mul(fix.Mul(v.amp, volumeScale), SineTable[v.phase>>24])) + dacMid

		// Ramps run after the sample is formed, so the first tick of
		// a beep goes out at zero amplitude.
		if v.ticks < AttackTicks {
			v.amp += attackStep
			if v.amp > MaxAmplitude {
				v.amp = MaxAmplitude
			}
		} else if v.ticks > BeepTicks-DecayTicks {
			v.amp -= decayStep
			if v.amp < 0 {
				v.amp = 0
			}
		}

		v.ticks++
		if v.ticks == BeepTicks {
			v.state = StateQuiescent
			v.ticks = 0
		}
		return v.channel | uint16(s)&dacMask, true
	}

	v.ticks++
	if v.ticks == RestTicks {
		v.state = StateActive
		v.ticks = 0
		v.amp = 0
	}
	return 0, false
}
