//go:build rp2040

package main

import (
	"device/rp"
	"machine"
	"time"

	"chirpscope/core"
	"chirpscope/synth"
)

// State shared by both cores. Core 0 beeps on DAC channel B and runs
// the spectrum task; core 1 beeps on channel A, blinks the LED and
// answers the ping. The reporting tasks pass one token back and forth
// so their lines alternate.
var (
	tel  = core.NewTelemetry()
	ping = core.NewSemaphore(1)
	pong = core.NewSemaphore(0)
)

func coreNum() uint32 {
	return rp.SIO.CPUID.Get()
}

func main() {
	initDAC()
	initCapture()
	initDisplay()

	machine.Core1.Start(core1Main)

	// Offset the two beep cycles so the tones alternate instead of
	// overlapping.
	time.Sleep(500 * time.Millisecond)

	beeper := core.NewBeeper(synth.NewVoice(synth.ChannelB), 0, tel, coreNum)
	var clock core.SampleClock = &alarmClock{alarm: 1}
	clock.StartTicks(beeper.Tick)

	go (&core.Pinger{
		Label: "Ping: Core 0", Voice: 0,
		Own: ping, Other: pong,
		Tel: tel, Interval: time.Second,
	}).Run()

	core.NewAnalyzer(core.MustCapture(), core.MustDisplay(), tel).Run()
}
