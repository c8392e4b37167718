package sim

import (
	"fmt"
	"os"
	"time"

	"chirpscope/core"
)

// Options configure the simulated rig.
type Options struct {
	// Volume sets sound card playback level in [0, 1]. Zero disables
	// audio and drives the voices from a wall clock timer instead.
	Volume float64

	// Shape, Frequency and Amplitude describe the synthetic
	// microphone signal.
	Shape     string
	Frequency float64
	Amplitude float64

	// Display opens the spectrum window. Scale multiplies the 640x480
	// panel size.
	Display bool
	Scale   int

	// Heartbeat prints a tick to stderr at the LED blink cadence.
	Heartbeat bool
}

// Rig is the whole instrument assembled from host parts. It registers
// the simulated drivers and runs the same tasks the firmware runs.
type Rig struct {
	tel       *core.Telemetry
	tones     *toneSource
	speaker   *Speaker
	screen    *Screen
	ping      *core.Semaphore
	pong      *core.Semaphore
	heartbeat bool

	// Report receives every handshake line. Defaults to stdout.
	Report func(line string)
}

// NewRig registers simulated drivers for the DAC, the capture chain
// and the display, then builds the two voices on top of them.
func NewRig(opts Options) (*Rig, error) {
	r := &Rig{
		tel:  core.NewTelemetry(),
		ping: core.NewSemaphore(1),
		pong: core.NewSemaphore(0),
	}

	dac := NewSimDAC()
	core.SetDAC(dac)
	core.SetCapture(NewSignalSource(opts.Shape, opts.Frequency, opts.Amplitude))
	if opts.Display {
		r.screen = NewScreen(opts.Scale)
		core.SetDisplay(r.screen)
	} else {
		core.SetDisplay(core.NopDisplay{})
	}

	r.tones = newToneSource(dac, r.tel)
	r.heartbeat = opts.Heartbeat

	if opts.Volume > 0 {
		speaker, err := NewSpeaker(r.tones, opts.Volume)
		if err != nil {
			return nil, err
		}
		r.speaker = speaker
	}
	return r, nil
}

// Run starts the reporters and the voices, then hands the calling
// goroutine to the analyzer, or to the window when one is open. It
// only returns when the window closes.
func (r *Rig) Run() error {
	report := r.Report
	if report == nil {
		report = func(line string) { fmt.Println(line) }
	}

	go (&core.Pinger{
		Label:    "Ping: Core 0",
		Voice:    0,
		Own:      r.ping,
		Other:    r.pong,
		Tel:      r.tel,
		Interval: time.Second,
		Report:   report,
	}).Run()
	go (&core.Pinger{
		Label:    "Pong: Core 1",
		Voice:    1,
		Own:      r.pong,
		Other:    r.ping,
		Tel:      r.tel,
		Interval: time.Second,
		Report:   report,
	}).Run()

	if r.heartbeat {
		// Same cadence as the board's LED, one dot per on phase.
		go (&core.Blinker{Set: func(on bool) {
			if on {
				fmt.Fprint(os.Stderr, ".")
			}
		}}).Run()
	}

	if r.speaker != nil {
		r.speaker.Start()
	} else {
		// No sound card pacing, so tick the voices from timers with
		// the same half second stagger the firmware uses.
		var clock core.SampleClock = &hostClock{}
		clock.StartTicks(r.tones.beep[1].Tick)
		go func() {
			time.Sleep(500 * time.Millisecond)
			var late core.SampleClock = &hostClock{}
			late.StartTicks(r.tones.beep[0].Tick)
		}()
	}

	analyzer := core.NewAnalyzer(core.MustCapture(), core.MustDisplay(), r.tel)
	if r.screen != nil {
		go analyzer.Run()
		return r.screen.Run("chirpscope")
	}
	analyzer.Run()
	return nil
}
