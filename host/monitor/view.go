package monitor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// View renders reports for a terminal. On a tty the summary repaints
// one status line in place; on a pipe each report becomes its own
// line so logs stay greppable.
type View struct {
	out   io.Writer
	width int
	isTTY bool

	last [2]Report
	have [2]bool
}

// NewView builds a view writing to out, probing it for terminal
// capabilities.
func NewView(out io.Writer) *View {
	v := &View{out: out, width: 80}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		v.isTTY = true
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			v.width = w
		}
	}
	return v
}

// Show records a report and repaints the status line. On a terminal
// the peak frequency also renders as a bar over the 0..5 kHz analysis
// range, scaled to the columns left over after the text.
func (v *View) Show(rep Report) {
	slot := rep.Slot()
	v.last[slot] = rep
	v.have[slot] = true

	line := v.status(rep)
	if v.isTTY {
		if cells := v.width - 1 - len(line) - 3; cells >= 8 {
			line += " " + bar(rep.PeakHz, cells)
		}
		fmt.Fprintf(v.out, "\r%-*s", v.width-1, clip(line, v.width-1))
		return
	}
	fmt.Fprintln(v.out, line)
}

// ShowRaw prints an unparsed console line without losing the status
// line underneath it.
func (v *View) ShowRaw(s string) {
	if v.isTTY {
		fmt.Fprintf(v.out, "\r%-*s\n", v.width-1, clip(s, v.width-1))
		return
	}
	fmt.Fprintln(v.out, s)
}

func (v *View) status(rep Report) string {
	line := fmt.Sprintf("%s #%d | peak %d Hz | fft %d | isr", rep.Side, rep.Counter, rep.PeakHz, rep.FFTCount)
	for slot, name := range [2]string{"ping", "pong"} {
		if v.have[slot] {
			line += fmt.Sprintf(" %s:%d", name, v.last[slot].ISRCore)
		}
	}
	return line
}

// bar renders hz as a filled gauge over the analyzable band, half the
// 10 kHz capture rate.
func bar(hz, cells int) string {
	const fullScale = 5000
	fill := hz * cells / fullScale
	if fill < 0 {
		fill = 0
	}
	if fill > cells {
		fill = cells
	}
	return "[" + strings.Repeat("#", fill) + strings.Repeat(" ", cells-fill) + "]"
}

func clip(s string, max int) string {
	if max > 0 && len(s) > max {
		return s[:max]
	}
	return s
}
