// Package entropy estimates passphrase strength from word list sizes.
package entropy

import (
	"math"
	"strconv"

	"github.com/verte-zerg/pass-phrase/internal/model"
)

// GuessesPerSecond is the attacker speed assumed by crack-time estimates.
const GuessesPerSecond = 1000

const (
	minute = 60
	hour   = minute * 60
	day    = hour * 24
	week   = day * 7
	month  = week * 4
	year   = day * 365
)

// Report contains entropy metrics for a set of word lists.
type Report struct {
	Sizes       map[model.Role]int
	PerRoleBits map[model.Role]float64
	TotalBits   float64
	Seconds     float64
	CrackTime   string
}

// NewReport computes the metrics for the three role lists. It depends only
// on the list sizes.
func NewReport(adjectives, nouns, verbs []string) Report {
	sizes := map[model.Role]int{
		model.Adjectives: len(adjectives),
		model.Nouns:      len(nouns),
		model.Verbs:      len(verbs),
	}
	r := Report{
		Sizes:       sizes,
		PerRoleBits: make(map[model.Role]float64, len(sizes)),
	}
	for role, n := range sizes {
		r.PerRoleBits[role] = Bits(n)
	}
	// Entropy accumulates per slot, so adjectives and nouns count twice.
	for _, role := range model.Slots {
		r.TotalBits += r.PerRoleBits[role]
	}
	r.Seconds = CrackSeconds(r.TotalBits)
	r.CrackTime = CrackTime(r.Seconds)
	return r
}

// ForLists is NewReport for loaded word lists.
func ForLists(lists model.WordLists) Report {
	return NewReport(lists.Adjectives, lists.Nouns, lists.Verbs)
}

// SlotBits returns the bits contributed by each slot in template order.
func (r Report) SlotBits() []float64 {
	out := make([]float64, len(model.Slots))
	for i, role := range model.Slots {
		out[i] = r.PerRoleBits[role]
	}
	return out
}

// Bits returns log2 of a list size.
func Bits(size int) float64 {
	if size <= 0 {
		return 0
	}
	return math.Log2(float64(size))
}

// FormatBits prints whole exponents without decimals and everything else
// with two.
func FormatBits(bits float64) string {
	if bits == math.Trunc(bits) {
		return strconv.FormatFloat(bits, 'f', 0, 64)
	}
	return strconv.FormatFloat(bits, 'f', 2, 64)
}

// CrackSeconds estimates a brute-force search over 2^floor(bits) phrases.
func CrackSeconds(bits float64) float64 {
	return math.Pow(2, math.Floor(bits)) / GuessesPerSecond
}

// CrackTime buckets a duration in seconds into a human-readable estimate.
// Each bucket's upper bound is exclusive, so 60 seconds is "less than 5
// minutes".
func CrackTime(seconds float64) string {
	switch {
	case seconds < minute:
		return "less than a minute"
	case seconds < 5*minute:
		return "less than 5 minutes"
	case seconds < 10*minute:
		return "less than 10 minutes"
	case seconds < hour:
		return "less than an hour"
	case seconds < day:
		return "about " + units(seconds, hour) + " hours"
	case seconds < 2*week:
		return "about " + units(seconds, day) + " days"
	case seconds < 8*week:
		return "about " + units(seconds, week) + " weeks"
	case seconds < 2*year:
		return "about " + units(seconds, month) + " months"
	default:
		return "about " + units(seconds, year) + " years"
	}
}

func units(seconds float64, unit float64) string {
	return strconv.FormatFloat(math.Trunc(seconds/unit), 'f', 0, 64)
}
