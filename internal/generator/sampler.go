package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	mrand "math/rand"
	"time"
)

var errEmptyRange = errors.New("sample from empty range")

// Sampler draws uniformly distributed indices in [0, n).
type Sampler interface {
	Intn(n int) (int, error)
}

// Source names the kind of randomness backing a Sampler.
type Source string

// Recognized sources.
const (
	SourceSecure   Source = "secure"
	SourceFallback Source = "fallback"
)

// DetectSource probes r once and reports whether it can back a secure
// sampler. A nil reader means the platform default, crypto/rand.Reader.
func DetectSource(r io.Reader) Source {
	if r == nil {
		r = rand.Reader
	}
	var probe [1]byte
	if _, err := io.ReadFull(r, probe[:]); err != nil {
		return SourceFallback
	}
	return SourceSecure
}

// NewSampler returns the sampler for source. r is only used by the secure
// sampler; nil selects crypto/rand.Reader.
func NewSampler(source Source, r io.Reader) Sampler {
	if source == SourceSecure {
		return NewSecureSampler(r)
	}
	return NewFallbackSampler(time.Now().UnixNano())
}

// SecureSampler samples from a cryptographically secure reader.
type SecureSampler struct {
	r io.Reader
}

// NewSecureSampler wraps r; nil selects crypto/rand.Reader.
func NewSecureSampler(r io.Reader) *SecureSampler {
	if r == nil {
		r = rand.Reader
	}
	return &SecureSampler{r: r}
}

// Intn implements Sampler.
func (s *SecureSampler) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, errEmptyRange
	}
	v, err := rand.Int(s.r, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to read random source: %w", err)
	}
	return int(v.Int64()), nil
}

// FallbackSampler samples from math/rand. It is not suitable for secrets
// and only exists for platforms without a secure source.
type FallbackSampler struct {
	rnd *mrand.Rand
}

// NewFallbackSampler returns a FallbackSampler with the given seed.
func NewFallbackSampler(seed int64) *FallbackSampler {
	return &FallbackSampler{rnd: mrand.New(mrand.NewSource(seed))}
}

// Intn implements Sampler.
func (s *FallbackSampler) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, errEmptyRange
	}
	return s.rnd.Intn(n), nil
}
