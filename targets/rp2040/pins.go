//go:build rp2040

package main

import "machine"

// Pin assignment. The tone DAC sits on SPI0 with its chip select in
// hardware so every 16-bit frame is framed automatically; the TFT is
// on SPI1 with GPIO control lines; the microphone feeds ADC input 0.
const (
	pinDACSDI  = machine.GPIO4 // unused by the MCP4822, keeps SPI0 RX mapped
	pinDACCS   = machine.GPIO5
	pinDACSCK  = machine.GPIO6
	pinDACSDO  = machine.GPIO7
	pinDACLDAC = machine.GPIO8

	pinTFTSCK = machine.GPIO10
	pinTFTSDO = machine.GPIO11
	pinTFTSDI = machine.GPIO12
	pinTFTDC  = machine.GPIO13
	pinTFTCS  = machine.GPIO14
	pinTFTRST = machine.GPIO15

	// I2S wiring for the alternate DAC build. The clock pin pairs with
	// the next GPIO for the word select line.
	pinI2SData  = machine.GPIO16
	pinI2SClock = machine.GPIO17

	pinLED = machine.LED
	pinMic = machine.ADC0
)
