//go:build rp2040

package main

import (
	"device/rp"
	"machine"
	"time"
	"unsafe"

	"chirpscope/core"
	"chirpscope/spectral"
)

// Microphone capture. The ADC free-runs at the capture rate and
// pushes 8-bit conversions into its FIFO; the sample DMA channel
// drains the FIFO into the buffer and stops after a full block. The
// control channel holds only the buffer's start address: triggering
// it rewrites the sample channel's write pointer and chains straight
// into the next block, so re-arming is a single register write.
const (
	sampleChan  = 2
	controlChan = 3

	dreqADC = 36 // DREQ index of the ADC FIFO

	adcClockHz = 48_000_000
)

var (
	captureBuf  [spectral.N]uint8
	captureAddr = uint32(uintptr(unsafe.Pointer(&captureBuf[0])))
)

type dmaCapture struct{}

func initCapture() {
	machine.InitADC()
	adc := machine.ADC{Pin: pinMic}
	if err := adc.Configure(machine.ADCConfig{}); err != nil {
		panic(err)
	}

	// Input 0, FIFO in 8-bit shift mode, DREQ on every sample, one
	// conversion per 4800 clocks.
	rp.ADC.CS.ReplaceBits(0<<rp.ADC_CS_AINSEL_Pos, rp.ADC_CS_AINSEL_Msk, 0)
	rp.ADC.FCS.Set(rp.ADC_FCS_EN | rp.ADC_FCS_DREQ_EN | rp.ADC_FCS_SHIFT |
		1<<rp.ADC_FCS_THRESH_Pos)
	rp.ADC.DIV.Set((adcClockHz/spectral.SampleRate - 1) << rp.ADC_DIV_INT_Pos)

	// Sample channel: FIFO to RAM, byte-wide, paced by the ADC.
	rp.DMA.CH2_READ_ADDR.Set(uint32(uintptr(unsafe.Pointer(&rp.ADC.FIFO))))
	rp.DMA.CH2_WRITE_ADDR.Set(captureAddr)
	rp.DMA.CH2_TRANS_COUNT.Set(spectral.N)
	rp.DMA.CH2_AL1_CTRL.Set(rp.DMA_CH2_CTRL_TRIG_EN_Msk |
		0<<rp.DMA_CH2_CTRL_TRIG_DATA_SIZE_Pos |
		rp.DMA_CH2_CTRL_TRIG_INCR_WRITE_Msk |
		dreqADC<<rp.DMA_CH2_CTRL_TRIG_TREQ_SEL_Pos |
		sampleChan<<rp.DMA_CH2_CTRL_TRIG_CHAIN_TO_Pos) // chain to self: none

	// Control channel: one unpaced 32-bit transfer of the buffer
	// address into the sample channel's plain write register, then
	// chain into the sample channel.
	rp.DMA.CH3_READ_ADDR.Set(uint32(uintptr(unsafe.Pointer(&captureAddr))))
	rp.DMA.CH3_WRITE_ADDR.Set(uint32(uintptr(unsafe.Pointer(&rp.DMA.CH2_WRITE_ADDR))))
	rp.DMA.CH3_TRANS_COUNT.Set(1)
	rp.DMA.CH3_AL1_CTRL.Set(rp.DMA_CH3_CTRL_TRIG_EN_Msk |
		2<<rp.DMA_CH3_CTRL_TRIG_DATA_SIZE_Pos |
		0x3f<<rp.DMA_CH3_CTRL_TRIG_TREQ_SEL_Pos | // permanent request
		sampleChan<<rp.DMA_CH3_CTRL_TRIG_CHAIN_TO_Pos)

	core.SetCapture(dmaCapture{})
}

func (dmaCapture) Start() {
	rp.DMA.MULTI_CHAN_TRIGGER.Set(1 << sampleChan)
	rp.ADC.CS.SetBits(rp.ADC_CS_START_MANY)
}

// WaitFill polls the sample channel with short sleeps instead of
// spinning so the reporter goroutine on this core keeps running.
func (dmaCapture) WaitFill() {
	for rp.DMA.CH2_CTRL_TRIG.HasBits(rp.DMA_CH2_CTRL_TRIG_BUSY_Msk) {
		time.Sleep(500 * time.Microsecond)
	}
}

func (dmaCapture) Rearm() {
	rp.DMA.MULTI_CHAN_TRIGGER.Set(1 << controlChan)
}

func (dmaCapture) Samples() []byte {
	return captureBuf[:]
}
