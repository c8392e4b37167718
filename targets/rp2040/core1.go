//go:build rp2040

package main

import (
	"machine"
	"time"

	"chirpscope/core"
	"chirpscope/synth"
)

// core1Main is the entry point on the second core.
func core1Main() {
	beeper := core.NewBeeper(synth.NewVoice(synth.ChannelA), 1, tel, coreNum)
	var clock core.SampleClock = &alarmClock{alarm: 2}
	clock.StartTicks(beeper.Tick)

	led := pinLED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	go (&core.Blinker{Set: led.Set}).Run()

	(&core.Pinger{
		Label: "Pong: Core 1", Voice: 1,
		Own: pong, Other: ping,
		Tel: tel, Interval: time.Second,
	}).Run()
}
