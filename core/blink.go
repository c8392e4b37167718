package core

import "time"

// Blinker toggles the status LED as a heartbeat for the scheduler on
// whichever core runs it.
type Blinker struct {
	Set      func(on bool)
	Interval time.Duration // 0 means the 62.5 ms default
}

// Run toggles forever. Returns immediately if no LED is wired.
func (b *Blinker) Run() {
	if b.Set == nil {
		return
	}
	iv := b.Interval
	if iv == 0 {
		iv = 62500 * time.Microsecond
	}
	on := false
	for {
		on = !on
		b.Set(on)
		time.Sleep(iv)
	}
}
