package core

// DAC pushes 16-bit command words to the tone DAC. Write is called
// from timer interrupt context on both cores concurrently, so
// implementations must not block or take locks; word-at-a-time
// serialization comes from the hardware FIFO.
type DAC interface {
	Write(word uint16)
}

// Global singleton used by core code.
var dacDriver DAC

// SetDAC is called by target or simulator code to register its driver.
func SetDAC(d DAC) {
	dacDriver = d
}

// MustDAC returns the configured driver or panics if missing.
func MustDAC() DAC {
	if dacDriver == nil {
		panic("DAC driver not configured")
	}
	return dacDriver
}
