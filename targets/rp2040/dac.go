//go:build rp2040 && !i2sdac

package main

import (
	"device/rp"
	"machine"

	"chirpscope/core"
)

// MCP4822 on SPI0. Every command word is a 16-bit frame with chip
// select framing each word, which the PL022 does in hardware once the
// CS pin is muxed to the SPI function. TinyGo configures 8-bit frames,
// so the data size field is widened after Configure.
func initDAC() {
	pinDACLDAC.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pinDACLDAC.Low() // latch conversions immediately

	err := machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 20_000_000,
		SCK:       pinDACSCK,
		SDO:       pinDACSDO,
		SDI:       pinDACSDI,
		Mode:      0,
	})
	if err != nil {
		panic(err)
	}
	rp.SPI0.SSPCR0.ReplaceBits(0xF, rp.SPI0_SSPCR0_DSS_Msk, 0)
	pinDACCS.Configure(machine.PinConfig{Mode: machine.PinSPI})

	core.SetDAC(spiDAC{})
}

type spiDAC struct{}

// Write queues one command word. Both cores' tick interrupts call
// this; the eight-deep transmit FIFO gives each 16-bit write a free
// slot at these rates, so no lock is needed.
func (spiDAC) Write(word uint16) {
	for !rp.SPI0.SSPSR.HasBits(rp.SPI0_SSPSR_TNF_Msk) {
	}
	rp.SPI0.SSPDR.Set(uint32(word))
}
