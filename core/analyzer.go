// Package core holds the hardware-independent half of the firmware:
// the task bodies, the handshake between the cores, and the shared
// telemetry they report. Everything hardware-specific sits behind the
// small driver interfaces in the *_hal.go files, registered by the
// target (or the simulator) before the tasks start.
package core

import (
	"time"

	"chirpscope/fix"
	"chirpscope/spectral"
)

// Analyzer owns the capture-transform-display loop. It is the only
// task that talks to the capture source, so its blocking waits never
// stall the beep interrupts or the reporters.
type Analyzer struct {
	src  CaptureSource
	disp Display
	tel  *Telemetry
	view *SpectrumView

	fr [spectral.N]fix.Q15
	fi [spectral.N]fix.Q15
}

func NewAnalyzer(src CaptureSource, disp Display, tel *Telemetry) *Analyzer {
	return &Analyzer{
		src:  src,
		disp: disp,
		tel:  tel,
		view: NewSpectrumView(disp),
	}
}

// Run starts the capture hardware, draws the static screen furniture
// and then processes buffers forever. It never returns.
func (a *Analyzer) Run() {
	a.src.Start()
	a.view.DrawHeader()
	for {
		a.step()
		time.Sleep(10 * time.Microsecond)
	}
}

// step consumes one full capture buffer.
func (a *Analyzer) step() {
	a.src.WaitFill()
	spectral.LoadWindowed(a.fr[:], a.fi[:], a.src.Samples())

	// The windowed copy is done; let the next capture overlap the
	// transform.
	a.src.Rearm()

	spectral.Transform(a.fr[:], a.fi[:])
	a.tel.BumpFFTCount()

	spectral.Magnitudes(a.fr[:], a.fi[:])
	bin, _ := spectral.PeakBin(a.fr[:])
	hz := spectral.BinHz(bin)
	a.tel.SetPeakHz(hz)

	a.view.Draw(a.fr[:spectral.N/2], hz)
}
