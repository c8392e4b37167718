//go:build rp2040

package main

import "sync/atomic"

// Tick-to-tick deltas from the core 0 handler. Only the ISR writes
// the sample slots; readers wait for the index to stop moving.
var (
	deltaSamples [2048]uint32
	deltaIndex   atomic.Uint32
	lastStamp    uint32
)

// recordDelta runs inside the tick handler. The first entry has no
// predecessor and is skipped.
func recordDelta(stamp uint32) {
	prev := lastStamp
	lastStamp = stamp
	if prev == 0 {
		return
	}
	i := deltaIndex.Load()
	if i >= uint32(len(deltaSamples)) {
		return
	}
	deltaSamples[i] = stamp - prev
	deltaIndex.Store(i + 1)
}

// reportJitter prints delta statistics once the sample buffer is
// full. The expected delta is the 25 us period plus the handler's own
// run time, so the interesting numbers are the spread, not the mean.
func reportJitter() {
	if deltaIndex.Load() < uint32(len(deltaSamples)) {
		println("jitter: buffer not full, skipping")
		return
	}

	samples := make([]uint32, len(deltaSamples))
	copy(samples, deltaSamples[:])
	sortU32(samples)

	var sum uint64
	for _, d := range samples {
		sum += uint64(d)
	}
	n := len(samples)
	avg := uint32(sum / uint64(n))
	min := samples[0]
	max := samples[n-1]
	p50 := samples[n*50/100]
	p99 := samples[n*99/100]

	println("samples:", n)
	println("min delta:", min, "us")
	println("p50 delta:", p50, "us")
	println("p99 delta:", p99, "us")
	println("max delta:", max, "us")
	println("avg delta:", avg, "us")

	if max-min <= 10 {
		println("ok: jitter within 10 us")
	} else {
		println("FAIL: jitter spread", max-min, "us")
	}
}

// sortU32 is a shell sort; fine for a few thousand entries and free
// of allocation beyond the caller's copy.
func sortU32(a []uint32) {
	for gap := len(a) / 2; gap > 0; gap /= 2 {
		for i := gap; i < len(a); i++ {
			v := a[i]
			j := i
			for j >= gap && a[j-gap] > v {
				a[j] = a[j-gap]
				j -= gap
			}
			a[j] = v
		}
	}
}
