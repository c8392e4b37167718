package core

import "image/color"

// Display is the minimal pixel surface the spectrum view needs.
// Hardware drives a 320x240 TFT, the simulator a 640x480 window.
type Display interface {
	Size() (w, h int16)
	FillRect(x, y, w, h int16, c color.RGBA)
	VLine(x, y, h int16, c color.RGBA)
	Text(x, y int16, size uint8, s string, c color.RGBA)
}

// Colors used by the spectrum view.
var (
	Black = color.RGBA{A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

var displayDriver Display

// SetDisplay is called by target or simulator code to register its driver.
func SetDisplay(d Display) {
	displayDriver = d
}

// MustDisplay returns the configured driver or panics if missing.
func MustDisplay() Display {
	if displayDriver == nil {
		panic("display driver not configured")
	}
	return displayDriver
}

// NopDisplay discards all drawing. Headless setups register it so the
// analyzer can run without a panel attached.
type NopDisplay struct{}

func (NopDisplay) Size() (int16, int16)                                { return 640, 480 }
func (NopDisplay) FillRect(x, y, w, h int16, c color.RGBA)             {}
func (NopDisplay) VLine(x, y, h int16, c color.RGBA)                   {}
func (NopDisplay) Text(x, y int16, size uint8, s string, c color.RGBA) {}
