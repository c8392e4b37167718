package synth

import "testing"

func TestPhaseAccumulatorModular(t *testing.T) {
	// Stepping N times by the increment must land exactly where a
	// single step of N*increment (mod 2^32) lands. Checked in integer
	// arithmetic so no float drift can hide an off-by-one.
	steps := []uint32{1, 17, 256, 40000, 100000}

	for _, n := range steps {
		v := NewVoice(ChannelA)
		for i := uint32(0); i < n; i++ {
			v.Tick()
		}
		// The accumulator only advances on active ticks.
		active := activeTicks(n)
		want := active * PhaseIncrement
		if v.phase != want {
			t.Errorf("after %d ticks: phase = %d, want %d", n, v.phase, want)
		}
	}
}

// activeTicks returns how many of the first n ticks fall inside a beep,
// given the 10000-active / 40000-quiescent cycle starting active.
func activeTicks(n uint32) uint32 {
	const cycle = BeepTicks + RestTicks
	full := n / cycle
	rem := n % cycle
	if rem > BeepTicks {
		rem = BeepTicks
	}
	return full*BeepTicks + rem
}

func TestToneScenario2300Hz(t *testing.T) {
	// One nominal second of ticks at 40 kHz. 40000 ticks fit inside the
	// first beep-plus-rest cycle: 10000 are active.
	v := NewVoice(ChannelA)
	for i := 0; i < 40000; i++ {
		v.Tick()
	}
	ticks := uint32(BeepTicks)
	if want := ticks * PhaseIncrement; v.phase != want {
		t.Errorf("phase = %d, want %d", v.phase, want)
	}
}

func TestEnvelopeShape(t *testing.T) {
	v := NewVoice(ChannelB)

	// First sample leaves before any ramping: mid-scale, zero amplitude.
	word, ok := v.Tick()
	if !ok {
		t.Fatal("first tick not active")
	}
	if got := word & 0x0FFF; got != 2048 {
		t.Errorf("first sample = %d, want mid-scale 2048", got)
	}

	// Finish the attack. One tick is already done.
	for i := 1; i < AttackTicks; i++ {
		v.Tick()
	}
	if v.amp != MaxAmplitude {
		t.Errorf("after attack: amp = %d, want %d", v.amp, MaxAmplitude)
	}

	// Sustain holds the amplitude constant.
	for i := AttackTicks; i < BeepTicks-DecayTicks; i++ {
		v.Tick()
		if v.amp != MaxAmplitude {
			t.Fatalf("tick %d: sustain amp = %d, want %d", i, v.amp, MaxAmplitude)
		}
	}

	// Decay never undershoots and ends the beep at zero.
	for i := BeepTicks - DecayTicks; i < BeepTicks; i++ {
		v.Tick()
		if v.amp < 0 {
			t.Fatalf("tick %d: amp went negative: %d", i, v.amp)
		}
	}
	if v.amp != 0 {
		t.Errorf("at end of beep: amp = %d, want 0", v.amp)
	}
	if v.state != StateQuiescent {
		t.Errorf("at end of beep: state = %d, want quiescent", v.state)
	}
}

func TestEnvelopeMonotonicAttack(t *testing.T) {
	v := NewVoice(ChannelA)
	prev := v.amp
	for i := 0; i < AttackTicks; i++ {
		v.Tick()
		if v.amp < prev {
			t.Fatalf("tick %d: amplitude decreased during attack (%d -> %d)", i, prev, v.amp)
		}
		prev = v.amp
	}
}

func TestBeepRestCycle(t *testing.T) {
	v := NewVoice(ChannelA)

	for i := 0; i < BeepTicks; i++ {
		if _, ok := v.Tick(); !ok {
			t.Fatalf("tick %d: expected active", i)
		}
	}
	for i := 0; i < RestTicks; i++ {
		if _, ok := v.Tick(); ok {
			t.Fatalf("quiescent tick %d: unexpected output", i)
		}
	}

	// Next beep starts from silence again.
	word, ok := v.Tick()
	if !ok {
		t.Fatal("expected second beep to start")
	}
	if got := word & 0x0FFF; got != 2048 {
		t.Errorf("second beep first sample = %d, want 2048", got)
	}
}

func TestDACWordPacking(t *testing.T) {
	tests := []struct {
		name    string
		channel uint16
	}{
		{"channel A", ChannelA},
		{"channel B", ChannelB},
	}

	for _, tt := range tests {
		v := NewVoice(tt.channel)
		for i := 0; i < BeepTicks; i++ {
			word, ok := v.Tick()
			if !ok {
				t.Fatalf("%s: tick %d not active", tt.name, i)
			}
			if word&0xF000 != tt.channel {
				t.Fatalf("%s: tick %d: command bits %#04x, want %#04x", tt.name, i, word&0xF000, tt.channel)
			}
			sample := int32(word & 0x0FFF)
			// Half-volume sine around mid-scale stays well inside the
			// 12-bit range.
			if sample < 1024 || sample > 3072 {
				t.Fatalf("%s: tick %d: sample %d out of range", tt.name, i, sample)
			}
		}
	}
}

func TestSineTable(t *testing.T) {
	if SineTable[0] != 0 {
		t.Errorf("SineTable[0] = %d, want 0", SineTable[0])
	}
	// Quarter wave peaks near +2047, three quarters near -2047.
	if got := SineTable[64]; got < 2046<<15 || got > 2047<<15 {
		t.Errorf("SineTable[64] = %d, want ~2047.0 fixed", got)
	}
	if got := SineTable[192]; got > -(2046 << 15) {
		t.Errorf("SineTable[192] = %d, want ~-2047.0 fixed", got)
	}
	// Odd symmetry: table[i] == -table[256-i] within truncation error.
	for i := 1; i < 256; i++ {
		a, b := SineTable[i], SineTable[256-i]
		if d := a + b; d < -2 || d > 2 {
			t.Errorf("symmetry broken at %d: %d vs %d", i, a, b)
		}
	}
}
