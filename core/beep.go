package core

import "chirpscope/synth"

// Beeper couples one DDS voice to the shared DAC. Tick is the body of
// a core's 40 kHz timer interrupt: it advances the voice, pushes the
// resulting DAC word while the voice is sounding, and records which
// physical core serviced the interrupt.
type Beeper struct {
	voice  *synth.Voice
	index  int
	tel    *Telemetry
	coreID func() uint32
	dac    DAC
}

// NewBeeper builds the tick handler for one voice. The DAC driver must
// be registered before this is called; it is resolved once here so the
// interrupt path stays free of lookups. index selects the telemetry
// slot and coreID reads the physical core number (nil skips that
// bookkeeping).
func NewBeeper(voice *synth.Voice, index int, tel *Telemetry, coreID func() uint32) *Beeper {
	return &Beeper{
		voice:  voice,
		index:  index,
		tel:    tel,
		coreID: coreID,
		dac:    MustDAC(),
	}
}

// Tick runs one sample period. Interrupt context: no blocking, no
// allocation.
func (b *Beeper) Tick() {
	if word, ok := b.voice.Tick(); ok {
		b.dac.Write(word)
	}
	if b.coreID != nil {
		b.tel.NoteISRCore(b.index, b.coreID())
	}
}
