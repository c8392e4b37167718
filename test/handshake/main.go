//go:build rp2040

// Hardware validation for the dual-core handshake and the 40 kHz tick.
//
// Flash this instead of the main firmware to check, on real silicon:
// - semaphore ping-pong alternates strictly and counts exchanges
// - each core's alarm interrupt runs on the core that armed it
// - the achieved tick rate sits just under 40 kHz, since the alarm
//   re-arms a full period after the callback returns
// - tick-to-tick jitter stays in single digit microseconds
package main

import (
	"device/rp"
	"machine"
	"runtime/interrupt"
	"sync/atomic"
	"time"

	"chirpscope/core"
)

const (
	tickPeriodUS = 25
	exchangeRuns = 10
)

var (
	tel = core.NewTelemetry()

	ping = core.NewSemaphore(1)
	pong = core.NewSemaphore(0)

	pingSteps atomic.Uint32
	pongSteps atomic.Uint32
	pongDone  atomic.Bool

	tick0Count atomic.Uint32
	tick1Count atomic.Uint32
)

func main() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	// Give the USB console time to enumerate.
	time.Sleep(2 * time.Second)
	println("chirpscope handshake test")

	machine.Core1.Start(core1Test)

	println("")
	println("--- semaphore exchange ---")
	pinger := &core.Pinger{
		Label:    "Ping: Core 0",
		Voice:    0,
		Own:      ping,
		Other:    pong,
		Tel:      tel,
		Interval: 10 * time.Millisecond,
	}
	for i := 0; i < exchangeRuns; i++ {
		pinger.Step()
		pingSteps.Add(1)
	}
	for !pongDone.Load() {
		time.Sleep(time.Millisecond)
	}

	checkCount("exchanges", tel.Exchanges(), 2*exchangeRuns)
	checkCount("ping steps", pingSteps.Load(), exchangeRuns)
	checkCount("pong steps", pongSteps.Load(), exchangeRuns)

	println("")
	println("--- tick interrupts ---")
	startTick0()
	base0 := tick0Count.Load()
	base1 := tick1Count.Load()
	time.Sleep(time.Second)

	rate0 := tick0Count.Load() - base0
	rate1 := tick1Count.Load() - base1
	println("core 0 ticks/s:", rate0)
	println("core 1 ticks/s:", rate1)
	if rate0 > 35000 && rate0 < 40000 {
		println("ok: core 0 rate just under 40 kHz")
	} else {
		println("FAIL: core 0 rate out of range")
	}
	if rate1 > 35000 && rate1 < 40000 {
		println("ok: core 1 rate just under 40 kHz")
	} else {
		println("FAIL: core 1 rate out of range")
	}
	if tel.ISRCore(0) == 0 {
		println("ok: core 0 alarm serviced on core 0")
	} else {
		println("FAIL: core 0 alarm serviced on core", tel.ISRCore(0))
	}
	if tel.ISRCore(1) == 1 {
		println("ok: core 1 alarm serviced on core 1")
	} else {
		println("FAIL: core 1 alarm serviced on core", tel.ISRCore(1))
	}

	println("")
	println("--- tick jitter ---")
	reportJitter()

	println("")
	println("done, blinking")
	for {
		led.Set(!led.Get())
		time.Sleep(250 * time.Millisecond)
	}
}

// core1Test answers the ping side, then brings up this core's tick.
func core1Test() {
	pinger := &core.Pinger{
		Label:    "Pong: Core 1",
		Voice:    1,
		Own:      pong,
		Other:    ping,
		Tel:      tel,
		Interval: 10 * time.Millisecond,
	}
	for i := 0; i < exchangeRuns; i++ {
		pinger.Step()
		pongSteps.Add(1)
	}
	pongDone.Store(true)

	startTick1()
	for {
		time.Sleep(time.Second)
	}
}

func checkCount(name string, got, want uint32) {
	if got == want {
		println("ok:", name, "=", got)
	} else {
		println("FAIL:", name, "=", got, "want", want)
	}
}

// startTick0 arms alarm 1 on this core. The NVIC is per core, so the
// handler runs wherever Enable was called.
func startTick0() {
	irq := interrupt.New(rp.IRQ_TIMER_IRQ_1, tick0Handler)
	rp.TIMER.INTE.SetBits(1 << 1)
	irq.Enable()
	rp.TIMER.ALARM1.Set(rp.TIMER.TIMERAWL.Get() + tickPeriodUS)
}

func startTick1() {
	irq := interrupt.New(rp.IRQ_TIMER_IRQ_2, tick1Handler)
	rp.TIMER.INTE.SetBits(1 << 2)
	irq.Enable()
	rp.TIMER.ALARM2.Set(rp.TIMER.TIMERAWL.Get() + tickPeriodUS)
}

func tick0Handler(interrupt.Interrupt) {
	rp.TIMER.INTR.Set(1 << 1)
	recordDelta(rp.TIMER.TIMERAWL.Get())
	tick0Count.Add(1)
	tel.NoteISRCore(0, rp.SIO.CPUID.Get())
	rp.TIMER.ALARM1.Set(rp.TIMER.TIMERAWL.Get() + tickPeriodUS)
}

func tick1Handler(interrupt.Interrupt) {
	rp.TIMER.INTR.Set(1 << 2)
	tick1Count.Add(1)
	tel.NoteISRCore(1, rp.SIO.CPUID.Get())
	rp.TIMER.ALARM2.Set(rp.TIMER.TIMERAWL.Get() + tickPeriodUS)
}
