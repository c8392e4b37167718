//go:build rp2040 && i2sdac

package main

import (
	"sync/atomic"

	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/pio/rp2-pio/piolib"

	"chirpscope/core"
	"chirpscope/synth"
)

// Alternate DAC build for boards with an I2S codec instead of the
// MCP4822. The tick interrupts only publish their latest sample; a
// pump goroutine composes stereo frames and lets the blocking
// WriteStereo pace it at the sample rate. Channel A plays left,
// channel B right.
func initDAC() {
	sm, err := pio.PIO0.ClaimStateMachine()
	if err != nil {
		panic(err)
	}
	i2s, err := piolib.NewI2S(sm, pinI2SData, pinI2SClock)
	if err != nil {
		panic(err)
	}
	i2s.SetSampleFrequency(synth.SampleRate)

	d := &i2sDAC{out: i2s}
	core.SetDAC(d)
	go d.pump()
}

type i2sDAC struct {
	out   *piolib.I2S
	left  atomic.Uint32
	right atomic.Uint32
}

func (d *i2sDAC) Write(word uint16) {
	// Center the 12-bit level and scale to 16 bits.
	s := uint32(uint16((int32(word&0x0FFF) - 2048) << 4))
	if word&0x8000 == 0 {
		d.left.Store(s)
	} else {
		d.right.Store(s)
	}
}

func (d *i2sDAC) pump() {
	var buf [32]uint32
	for {
		frame := d.left.Load() | d.right.Load()<<16
		for i := range buf {
			buf[i] = frame
		}
		d.out.WriteStereo(buf[:])
	}
}
