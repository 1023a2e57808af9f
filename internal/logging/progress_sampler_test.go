package logging

import "testing"

func TestProgressSamplerBuckets(t *testing.T) {
	s := NewProgressSampler(10)

	if !s.ShouldLog(0, "lookup") {
		t.Fatal("first event should log")
	}
	if s.ShouldLog(3, "lookup") {
		t.Fatal("same bucket should suppress")
	}
	if !s.ShouldLog(12, "lookup") {
		t.Fatal("crossing bucket boundary should log")
	}
	if s.ShouldLog(14, "lookup") {
		t.Fatal("same bucket should suppress")
	}
	if !s.ShouldLog(100, "lookup") {
		t.Fatal("completion should log")
	}
}

func TestProgressSamplerStageChange(t *testing.T) {
	s := NewProgressSampler(10)
	if !s.ShouldLog(42, "lookup") {
		t.Fatal("first event should log")
	}
	if !s.ShouldLog(42, "reconcile") {
		t.Fatal("stage change should log even without bucket change")
	}
	if s.ShouldLog(43, "reconcile") {
		t.Fatal("same stage and bucket should suppress")
	}
}

func TestProgressSamplerUnknownPercent(t *testing.T) {
	s := NewProgressSampler(5)
	if !s.ShouldLog(-1, "detect") {
		t.Fatal("new stage with unknown percent should log")
	}
	if s.ShouldLog(-1, "detect") {
		t.Fatal("repeated unknown percent in same stage should suppress")
	}
}

func TestProgressSamplerReset(t *testing.T) {
	s := NewProgressSampler(10)
	s.ShouldLog(50, "lookup")
	s.Reset()
	if !s.ShouldLog(50, "lookup") {
		t.Fatal("reset should clear suppression state")
	}
}

func TestProgressSamplerNilReceiver(t *testing.T) {
	var s *ProgressSampler
	if !s.ShouldLog(10, "lookup") {
		t.Fatal("nil sampler should always log")
	}
	s.Reset()
}
