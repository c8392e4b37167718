package core

// TickFunc runs once per sample period in interrupt context. It must
// not block or allocate.
type TickFunc func()

// SampleClock fires a TickFunc at the synthesis sample rate. StartTicks
// arms the clock on the calling core. The next tick is scheduled a
// fixed delay after the previous callback returns, so a slow callback
// stretches the period instead of reentering.
type SampleClock interface {
	StartTicks(fn TickFunc)
}
