package generator

import (
	"bytes"
	"errors"
	"testing"
)

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("no entropy")
}

func TestDetectSource(t *testing.T) {
	if got := DetectSource(nil); got != SourceSecure {
		t.Fatalf("expected secure source on this platform, got %s", got)
	}
	if got := DetectSource(errReader{}); got != SourceFallback {
		t.Fatalf("expected fallback for failing reader, got %s", got)
	}
	if got := DetectSource(bytes.NewReader(nil)); got != SourceFallback {
		t.Fatalf("expected fallback for empty reader, got %s", got)
	}
}

func TestNewSampler(t *testing.T) {
	if _, ok := NewSampler(SourceSecure, nil).(*SecureSampler); !ok {
		t.Fatalf("expected secure sampler")
	}
	if _, ok := NewSampler(SourceFallback, nil).(*FallbackSampler); !ok {
		t.Fatalf("expected fallback sampler")
	}
}

func TestSamplersStayInRange(t *testing.T) {
	samplers := map[string]Sampler{
		"secure":   NewSecureSampler(nil),
		"fallback": NewFallbackSampler(42),
	}
	for name, s := range samplers {
		seen := make(map[int]bool)
		for i := 0; i < 500; i++ {
			v, err := s.Intn(7)
			if err != nil {
				t.Fatalf("%s: Intn: %v", name, err)
			}
			if v < 0 || v >= 7 {
				t.Fatalf("%s: value %d out of range", name, v)
			}
			seen[v] = true
		}
		if len(seen) != 7 {
			t.Fatalf("%s: expected every index to appear, saw %d", name, len(seen))
		}
		if _, err := s.Intn(0); !errors.Is(err, errEmptyRange) {
			t.Fatalf("%s: expected empty range error, got %v", name, err)
		}
	}
}

func TestSecureSamplerReaderError(t *testing.T) {
	if _, err := NewSecureSampler(errReader{}).Intn(10); err == nil {
		t.Fatalf("expected error from failing reader")
	}
}

func TestFallbackSamplerDeterministic(t *testing.T) {
	a := NewFallbackSampler(7)
	b := NewFallbackSampler(7)
	for i := 0; i < 20; i++ {
		x, _ := a.Intn(1000)
		y, _ := b.Intn(1000)
		if x != y {
			t.Fatalf("expected identical sequences for equal seeds")
		}
	}
}
