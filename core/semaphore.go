package core

// Semaphore is a counting semaphore for handing control between the
// reporting tasks on the two cores. It wraps a buffered channel so a
// Wait parks the goroutine instead of spinning.
type Semaphore struct {
	tokens chan struct{}
}

// NewSemaphore returns a semaphore holding initial tokens.
func NewSemaphore(initial int) *Semaphore {
	cap := initial
	if cap < 4 {
		cap = 4
	}
	s := &Semaphore{tokens: make(chan struct{}, cap)}
	for i := 0; i < initial; i++ {
		s.tokens <- struct{}{}
	}
	return s
}

// Wait blocks until a token is available and consumes it.
func (s *Semaphore) Wait() {
	<-s.tokens
}

// Signal releases one token, waking one waiter if any.
func (s *Semaphore) Signal() {
	s.tokens <- struct{}{}
}
