package views

import (
	"sync"
	"time"
)

// Slideshow tracks which image in a gallery is visible. The active index
// always starts at zero and wraps modulo the image count. The browser runs
// its own copy of this logic (embedded slideshow.js); this type backs
// server-driven galleries and tests.
type Slideshow struct {
	mu     sync.Mutex
	count  int
	index  int
	ticker *time.Ticker
	done   chan struct{}
}

// NewSlideshow creates a slideshow over count images. A count below one is
// treated as a single static slide.
func NewSlideshow(count int) *Slideshow {
	if count < 1 {
		count = 1
	}
	return &Slideshow{count: count}
}

// Active returns the index of the currently visible slide.
func (s *Slideshow) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Advance moves to the next slide, wrapping to the first after the last.
func (s *Slideshow) Advance() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = (s.index + 1) % s.count
	return s.index
}

// Reset returns the slideshow to the first slide.
func (s *Slideshow) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = 0
}

// Start advances the slideshow every interval and invokes fn with the new
// active index after each step. Calling Start on a running slideshow
// restarts it.
func (s *Slideshow) Start(interval time.Duration, fn func(active int)) {
	s.Stop()

	s.mu.Lock()
	s.ticker = time.NewTicker(interval)
	s.done = make(chan struct{})
	ticker, done := s.ticker, s.done
	s.mu.Unlock()

	go func() {
		for {
			select {
			case <-ticker.C:
				i := s.Advance()
				if fn != nil {
					fn(i)
				}
			case <-done:
				return
			}
		}
	}()
}

// Stop halts automatic advancement. The active index is left as-is.
func (s *Slideshow) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ticker != nil {
		s.ticker.Stop()
		close(s.done)
		s.ticker = nil
		s.done = nil
	}
}
