//go:build rp2040

package main

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ili9341"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"

	"chirpscope/core"
)

// tftDisplay adapts the ILI9341 driver to the calls the spectrum view
// makes.
type tftDisplay struct {
	dev *ili9341.Device
}

func initDisplay() {
	err := machine.SPI1.Configure(machine.SPIConfig{
		Frequency: 24_000_000,
		SCK:       pinTFTSCK,
		SDO:       pinTFTSDO,
		SDI:       pinTFTSDI,
		Mode:      0,
	})
	if err != nil {
		panic(err)
	}

	dev := ili9341.NewSPI(machine.SPI1, pinTFTDC, pinTFTCS, pinTFTRST)
	dev.Configure(ili9341.Config{})
	dev.SetRotation(drivers.Rotation270)
	dev.FillScreen(core.Black)

	core.SetDisplay(&tftDisplay{dev: dev})
}

func (d *tftDisplay) Size() (int16, int16) {
	return d.dev.Size()
}

func (d *tftDisplay) FillRect(x, y, w, h int16, c color.RGBA) {
	d.dev.FillRectangle(x, y, w, h, c)
}

func (d *tftDisplay) VLine(x, y, h int16, c color.RGBA) {
	d.dev.FillRectangle(x, y, 1, h, c)
}

// Text positions by top edge; WriteLine wants the baseline, hence the
// per-font offsets.
func (d *tftDisplay) Text(x, y int16, size uint8, s string, c color.RGBA) {
	if size >= 2 {
		tinyfont.WriteLine(d.dev, &freemono.Bold9pt7b, x, y+14, s, c)
		return
	}
	tinyfont.WriteLine(d.dev, &proggy.TinySZ8pt7b, x, y+7, s, c)
}
