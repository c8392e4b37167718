package core

import (
	"chirpscope/fix"
	"chirpscope/spectral"
)

// SpectrumView draws the live spectrum bars and the peak frequency
// readout. The layout follows the original 640x480 screen; on a
// narrower panel it plots every second bin at half the bar scale so
// the full band still fits.
type SpectrumView struct {
	d Display

	left    int16 // x of the first bar column
	top     int16 // top of the bar band, also where erasing starts
	bottom  int16 // bar baseline
	binStep int   // bins advanced per column
	scale   fix.Q15

	freqX, freqY int16
	freqW, freqH int16
}

func NewSpectrumView(d Display) *SpectrumView {
	w, h := d.Size()
	v := &SpectrumView{d: d, bottom: h - 1}
	if w >= 640 {
		v.left, v.top = 59, 50
		v.binStep = 1
		v.scale = fix.FromInt(36)
		v.freqX, v.freqY = 250, 20
		v.freqW, v.freqH = 176, 30
	} else {
		v.left, v.top = 5, 25
		v.binStep = 2
		v.scale = fix.FromInt(18)
		v.freqX, v.freqY = 160, 10
		v.freqW, v.freqH = 100, 16
	}
	return v
}

// DrawHeader paints the static text. Called once before the first
// Draw.
func (v *SpectrumView) DrawHeader() {
	if v.binStep == 1 {
		v.d.Text(65, 0, 1, "chirpscope", White)
		v.d.Text(65, 10, 1, "dual-core DDS + FFT", White)
		v.d.Text(65, 20, 1, "40 kHz synth / 10 kHz capture", White)
		v.d.Text(250, 0, 2, "Max frequency:", White)
	} else {
		v.d.Text(5, 0, 1, "chirpscope", White)
		v.d.Text(5, 10, 1, "40 kHz synth / 10 kHz capture", White)
		v.d.Text(160, 0, 1, "Max frequency:", White)
	}
}

// Draw refreshes the frequency readout and redraws one bar per
// column: erase the column's band, then draw the new bar up from the
// baseline. mags is the lower half of the spectrum.
func (v *SpectrumView) Draw(mags []fix.Q15, peakHz float32) {
	v.d.FillRect(v.freqX, v.freqY, v.freqW, v.freqH, Black)
	v.d.Text(v.freqX, v.freqY, 2, itoa(int(peakHz)), White)

	band := v.bottom - v.top
	x := v.left
	for i := spectral.FirstBin; i < len(mags); i += v.binStep {
		v.d.VLine(x, v.top, band, Black)
		h := int16(fix.ToInt(fix.Mul(mags[i], v.scale)))
		if h > band {
			h = band
		}
		if h > 0 {
			v.d.VLine(x, v.bottom-h, h, White)
		}
		x++
	}
}
