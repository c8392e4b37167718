//go:build rp2040

package main

import (
	"device/rp"
	"runtime/interrupt"

	"chirpscope/core"
)

// Synth tick period. The TIMER counts microseconds.
const tickPeriodUS = 25

// alarmClock drives a TickFunc from one of the TIMER's alarm
// comparators. The TinyGo runtime owns alarm 0 for its scheduler, so
// the synth clocks use alarms 1 and 2. The alarm IRQ is enabled on
// whichever core calls StartTicks and fires in that core's interrupt
// context. The next alarm is armed a full period after the callback
// returns.
type alarmClock struct {
	alarm uint8
}

var tickFns [4]core.TickFunc

func (c *alarmClock) StartTicks(fn core.TickFunc) {
	tickFns[c.alarm] = fn

	var irq interrupt.Interrupt
	switch c.alarm {
	case 1:
		irq = interrupt.New(rp.IRQ_TIMER_IRQ_1, timerAlarm1)
	case 2:
		irq = interrupt.New(rp.IRQ_TIMER_IRQ_2, timerAlarm2)
	default:
		panic("timer alarm not available")
	}

	rp.TIMER.INTE.SetBits(1 << c.alarm)
	irq.Enable()
	armAlarm(c.alarm)
}

func timerAlarm1(interrupt.Interrupt) { alarmFired(1) }
func timerAlarm2(interrupt.Interrupt) { alarmFired(2) }

func alarmFired(alarm uint8) {
	// Acknowledge first; INTR is write-1-to-clear.
	rp.TIMER.INTR.Set(1 << alarm)
	if fn := tickFns[alarm]; fn != nil {
		fn()
	}
	armAlarm(alarm)
}

func armAlarm(alarm uint8) {
	t := rp.TIMER.TIMERAWL.Get() + tickPeriodUS
	switch alarm {
	case 1:
		rp.TIMER.ALARM1.Set(t)
	case 2:
		rp.TIMER.ALARM2.Set(t)
	}
}
