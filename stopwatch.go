package tin

import "time"

// Stopwatch measures elapsed wall time. The zero value is stopped at zero.
type Stopwatch struct {
	start   time.Time
	elapsed time.Duration
	running bool
}

// NewStopwatch returns a running stopwatch.
func NewStopwatch() *Stopwatch {
	s := &Stopwatch{}
	s.Start()
	return s
}

// Start resumes timing. Starting a running stopwatch does nothing.
func (s *Stopwatch) Start() {
	if s.running {
		return
	}
	s.start = time.Now()
	s.running = true
}

// Stop pauses timing and keeps the accumulated time.
func (s *Stopwatch) Stop() {
	if !s.running {
		return
	}
	s.elapsed += time.Since(s.start)
	s.running = false
}

// Reset zeroes the accumulated time. A running stopwatch keeps running.
func (s *Stopwatch) Reset() {
	s.elapsed = 0
	s.start = time.Now()
}

// Running reports whether the stopwatch is timing.
func (s *Stopwatch) Running() bool { return s.running }

// Elapsed returns the accumulated time.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.elapsed + time.Since(s.start)
	}
	return s.elapsed
}

// Seconds returns Elapsed in seconds.
func (s *Stopwatch) Seconds() float64 {
	return s.Elapsed().Seconds()
}
