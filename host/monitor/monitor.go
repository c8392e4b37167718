// Package monitor parses and renders the handshake reports the
// firmware prints on its console. One report line looks like:
//
//	Ping: Core 0: 3, ISR core: 1, Max F:   488, FFT count:   9
//
// Anything else on the console (boot messages, stack traces) passes
// through unparsed.
package monitor

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Report is one parsed handshake line.
type Report struct {
	Side     string // "Ping" or "Pong"
	Core     int    // core that printed the line
	Counter  uint32 // shared exchange counter at print time
	ISRCore  int    // core that last serviced this voice's sample tick
	PeakHz   int    // latest spectral peak, Hz
	FFTCount int    // transforms completed since the previous report
}

// Slot maps the report to its voice index: Ping is voice 0, Pong is
// voice 1.
func (r Report) Slot() int {
	if r.Side == "Ping" {
		return 0
	}
	return 1
}

var lineRE = regexp.MustCompile(`^(Ping|Pong): Core (\d+): (\d+), ISR core: (\d+), Max F: *(-?\d+), FFT count: *(\d+)$`)

// ParseLine parses a single console line. ok is false for lines that
// are not handshake reports.
func ParseLine(line string) (Report, bool) {
	m := lineRE.FindStringSubmatch(line)
	if m == nil {
		return Report{}, false
	}
	core, _ := strconv.Atoi(m[2])
	counter, _ := strconv.ParseUint(m[3], 10, 32)
	isr, _ := strconv.Atoi(m[4])
	peak, _ := strconv.Atoi(m[5])
	ffts, _ := strconv.Atoi(m[6])
	return Report{
		Side:     m[1],
		Core:     core,
		Counter:  uint32(counter),
		ISRCore:  isr,
		PeakHz:   peak,
		FFTCount: ffts,
	}, true
}

// Monitor splits a console stream into lines and dispatches them.
type Monitor struct {
	// OnReport receives every parsed handshake report.
	OnReport func(Report)

	// OnRaw receives non-empty lines that did not parse. Nil drops
	// them.
	OnRaw func(string)
}

// Run consumes the stream until EOF or a read error. The firmware
// terminates lines with \r\n over USB CDC, so trailing returns are
// stripped before parsing.
func (m *Monitor) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if rep, ok := ParseLine(line); ok {
			if m.OnReport != nil {
				m.OnReport(rep)
			}
			continue
		}
		if m.OnRaw != nil && line != "" {
			m.OnRaw(line)
		}
	}
	return sc.Err()
}
