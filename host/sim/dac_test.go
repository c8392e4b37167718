package sim

import (
	"testing"

	"chirpscope/synth"
)

func TestSimDACStartsAtMidScale(t *testing.T) {
	d := NewSimDAC()
	left, right := d.Levels()
	if left != 0 || right != 0 {
		t.Fatalf("resting levels = (%d, %d), want silence", left, right)
	}
}

func TestSimDACChannelRouting(t *testing.T) {
	d := NewSimDAC()

	// Channel A word, full scale.
	d.Write(synth.ChannelA | 0x0FFF)
	left, right := d.Levels()
	if left != (4095-2048)<<4 {
		t.Errorf("left = %d, want %d", left, (4095-2048)<<4)
	}
	if right != 0 {
		t.Errorf("right = %d, want untouched 0", right)
	}

	// Channel B word, bottom of scale.
	d.Write(synth.ChannelB | 0x0000)
	left, right = d.Levels()
	if left != (4095-2048)<<4 {
		t.Errorf("left = %d, want held", left)
	}
	if right != -2048<<4 {
		t.Errorf("right = %d, want %d", right, -2048<<4)
	}
}

func TestSimDACHoldsBetweenWrites(t *testing.T) {
	d := NewSimDAC()
	d.Write(synth.ChannelA | 3000)

	want := int16(3000-2048) << 4
	for i := 0; i < 3; i++ {
		if left, _ := d.Levels(); left != want {
			t.Fatalf("read %d: left = %d, want %d", i, left, want)
		}
	}
}

func TestToSample(t *testing.T) {
	tests := []struct {
		level uint32
		want  int16
	}{
		{2048, 0},
		{0, -32768},
		{4095, 32752},
		{2049, 16},
		{2047, -16},
	}
	for _, tt := range tests {
		if got := toSample(tt.level); got != tt.want {
			t.Errorf("toSample(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}
