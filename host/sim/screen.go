package sim

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	screenW = 640
	screenH = 480
)

// Screen is the spectrum window standing in for the TFT panel. The
// analyzer draws into a guarded framebuffer from its own goroutine
// and the game loop uploads it each frame. Labels render in ebiten's
// debug font, so text sizes are advisory here.
type Screen struct {
	scale int

	mu    sync.Mutex
	fb    []byte
	texts map[textKey]string

	frame *ebiten.Image
}

type textKey struct {
	x, y int16
}

// NewScreen allocates the panel framebuffer. Scale multiplies the
// window size without changing the drawing coordinates.
func NewScreen(scale int) *Screen {
	if scale < 1 {
		scale = 1
	}
	s := &Screen{
		scale: scale,
		fb:    make([]byte, screenW*screenH*4),
		texts: make(map[textKey]string),
	}
	for i := 3; i < len(s.fb); i += 4 {
		s.fb[i] = 0xFF
	}
	return s
}

func (s *Screen) Size() (int16, int16) {
	return screenW, screenH
}

func (s *Screen) FillRect(x, y, w, h int16, c color.RGBA) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for yy := int(y); yy < int(y)+int(h); yy++ {
		if yy < 0 || yy >= screenH {
			continue
		}
		row := yy * screenW * 4
		for xx := int(x); xx < int(x)+int(w); xx++ {
			if xx < 0 || xx >= screenW {
				continue
			}
			o := row + xx*4
			s.fb[o+0] = c.R
			s.fb[o+1] = c.G
			s.fb[o+2] = c.B
			s.fb[o+3] = 0xFF
		}
	}
}

func (s *Screen) VLine(x, y, h int16, c color.RGBA) {
	s.FillRect(x, y, 1, h, c)
}

// Text places a label. Labels are keyed by position, so redrawing the
// frequency readout replaces the old value instead of stacking.
func (s *Screen) Text(x, y int16, size uint8, str string, c color.RGBA) {
	s.mu.Lock()
	s.texts[textKey{x, y}] = str
	s.mu.Unlock()
}

func (s *Screen) Update() error {
	return nil
}

func (s *Screen) Draw(screen *ebiten.Image) {
	if s.frame == nil {
		s.frame = ebiten.NewImage(screenW, screenH)
	}

	s.mu.Lock()
	s.frame.WritePixels(s.fb)
	type placed struct {
		x, y int
		s    string
	}
	labels := make([]placed, 0, len(s.texts))
	for k, str := range s.texts {
		labels = append(labels, placed{int(k.x), int(k.y), str})
	}
	s.mu.Unlock()

	screen.DrawImage(s.frame, nil)
	for _, l := range labels {
		ebitenutil.DebugPrintAt(screen, l.s, l.x, l.y)
	}
}

func (s *Screen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

// Run opens the window and blocks until it closes. Ebiten requires
// the game loop to own the main goroutine.
func (s *Screen) Run(title string) error {
	ebiten.SetWindowSize(screenW*s.scale, screenH*s.scale)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(s)
}
