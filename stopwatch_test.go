package tin

import (
	"testing"
	"time"
)

func TestStopwatch(t *testing.T) {
	if !NewStopwatch().Running() {
		t.Error("NewStopwatch() is not running")
	}

	var s Stopwatch
	if s.Running() || s.Elapsed() != 0 {
		t.Fatalf("zero stopwatch running=%v elapsed=%v", s.Running(), s.Elapsed())
	}

	s.Start()
	time.Sleep(5 * time.Millisecond)
	if !s.Running() {
		t.Error("Running() = false after Start")
	}
	s.Stop()
	first := s.Elapsed()
	if first < 5*time.Millisecond {
		t.Errorf("Elapsed() = %v, want at least 5ms", first)
	}

	time.Sleep(2 * time.Millisecond)
	if s.Elapsed() != first {
		t.Error("Elapsed changed while stopped")
	}

	s.Start()
	time.Sleep(time.Millisecond)
	s.Stop()
	if s.Elapsed() <= first {
		t.Errorf("Elapsed() = %v, want more than %v after restart", s.Elapsed(), first)
	}
	if s.Seconds() != s.Elapsed().Seconds() {
		t.Error("Seconds() disagrees with Elapsed()")
	}

	s.Reset()
	if s.Running() || s.Elapsed() != 0 {
		t.Errorf("after Reset running=%v elapsed=%v", s.Running(), s.Elapsed())
	}

	s.Start()
	s.Reset()
	if !s.Running() {
		t.Error("Reset stopped a running stopwatch")
	}
}
