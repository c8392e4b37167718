package sim

import (
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"chirpscope/core"
	"chirpscope/synth"
)

// frameBytes is one stereo frame of signed 16-bit samples.
const frameBytes = 4

var (
	otoOnce sync.Once
	otoCtx  *oto.Context
	otoErr  error
)

// audioContext opens the sound card once. Oto allows a single context
// per process.
func audioContext() (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   synth.SampleRate,
			ChannelCount: 2,
			Format:       oto.FormatSignedInt16LE,
			BufferSize:   50 * time.Millisecond,
		}
		ctx, ready, err := oto.NewContext(op)
		if err != nil {
			otoErr = fmt.Errorf("failed to open audio device: %w", err)
			return
		}
		<-ready
		otoCtx = ctx
	})
	return otoCtx, otoErr
}

// toneSource feeds the player. Each frame the card pulls ticks both
// voices and samples the DAC, so playback pace is what advances the
// beep cycles, exactly as the sample interrupts do on hardware.
type toneSource struct {
	dac   *SimDAC
	beep  [2]*core.Beeper
	delay [2]int
}

func newToneSource(dac *SimDAC, tel *core.Telemetry) *toneSource {
	t := &toneSource{dac: dac}
	t.beep[0] = core.NewBeeper(synth.NewVoice(synth.ChannelB), 0, tel, func() uint32 { return 0 })
	t.beep[1] = core.NewBeeper(synth.NewVoice(synth.ChannelA), 1, tel, func() uint32 { return 1 })

	// The firmware staggers the two beep cycles by half a second so
	// the tones alternate.
	t.delay[0] = synth.SampleRate / 2
	return t
}

func (t *toneSource) Read(p []byte) (int, error) {
	n := len(p) / frameBytes * frameBytes
	for off := 0; off < n; off += frameBytes {
		for slot, b := range t.beep {
			if t.delay[slot] > 0 {
				t.delay[slot]--
				continue
			}
			b.Tick()
		}
		left, right := t.dac.Levels()
		p[off+0] = byte(left)
		p[off+1] = byte(uint16(left) >> 8)
		p[off+2] = byte(right)
		p[off+3] = byte(uint16(right) >> 8)
	}
	return n, nil
}

// Speaker owns the oto player draining a toneSource.
type Speaker struct {
	player *oto.Player
}

// NewSpeaker opens the sound card and prepares playback of src at the
// given volume.
func NewSpeaker(src *toneSource, volume float64) (*Speaker, error) {
	ctx, err := audioContext()
	if err != nil {
		return nil, err
	}
	p := ctx.NewPlayer(src)
	p.SetVolume(volume)
	return &Speaker{player: p}, nil
}

// Start begins playback. The player pulls from the source on its own
// goroutine from here on.
func (s *Speaker) Start() {
	s.player.Play()
}

// Close stops playback and releases the player.
func (s *Speaker) Close() error {
	return s.player.Close()
}

// hostClock drives voice ticks from wall time when no sound card is
// pacing them. Ticks run in batches, coarse but cycle accurate.
type hostClock struct {
	batch time.Duration
}

func (c *hostClock) StartTicks(fn core.TickFunc) {
	batch := c.batch
	if batch <= 0 {
		batch = 5 * time.Millisecond
	}
	perBatch := int(int64(batch) * synth.SampleRate / int64(time.Second))
	go func() {
		tick := time.NewTicker(batch)
		defer tick.Stop()
		for range tick.C {
			for i := 0; i < perBatch; i++ {
				fn()
			}
		}
	}()
}
