package core

// CaptureSource delivers fixed-size blocks of 8-bit samples at the
// capture rate. The protocol is strict: Start begins the first fill,
// WaitFill blocks the calling task until the block is complete, and
// the consumer must finish reading Samples before calling Rearm.
// There is a single buffer, so reading after Rearm races the next
// fill.
type CaptureSource interface {
	Start()
	WaitFill()
	Rearm()
	Samples() []byte
}

var captureDriver CaptureSource

// SetCapture is called by target or simulator code to register its driver.
func SetCapture(c CaptureSource) {
	captureDriver = c
}

// MustCapture returns the configured driver or panics if missing.
func MustCapture() CaptureSource {
	if captureDriver == nil {
		panic("capture driver not configured")
	}
	return captureDriver
}
