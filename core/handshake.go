package core

import "time"

// Pinger is one side of the strict ping-pong between the cores. Each
// side waits on its own semaphore, reports the shared telemetry,
// rests for the interval and only then hands the token to the peer,
// so the two report lines alternate forever. Give exactly one side an
// initial token.
type Pinger struct {
	Label    string            // report prefix, e.g. "Ping: Core 0"
	Voice    int               // telemetry slot this side reports
	Own      *Semaphore        // token that lets this side run
	Other    *Semaphore        // token released to the peer afterwards
	Tel      *Telemetry
	Interval time.Duration     // rest between report and handoff
	Report   func(line string) // nil prints to the default console
}

// Run loops Step forever.
func (p *Pinger) Run() {
	for {
		p.Step()
	}
}

// Step executes one handshake iteration: wait, count, report, rest,
// hand off.
func (p *Pinger) Step() {
	p.Own.Wait()
	n := p.Tel.BumpExchanges()
	line := p.line(n)
	if p.Report != nil {
		p.Report(line)
	} else {
		println(line)
	}
	time.Sleep(p.Interval)
	p.Other.Signal()
}

func (p *Pinger) line(n uint32) string {
	return p.Label + ": " + utoa(n) +
		", ISR core: " + utoa(p.Tel.ISRCore(p.Voice)) +
		", Max F: " + pad(itoa(int(p.Tel.PeakHz())), 5) +
		", FFT count: " + pad(utoa(p.Tel.TakeFFTCount()), 3)
}
