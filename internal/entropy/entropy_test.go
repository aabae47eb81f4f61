package entropy

import (
	"math"
	"reflect"
	"testing"

	"github.com/verte-zerg/pass-phrase/internal/model"
)

func words(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "w"
	}
	return out
}

func TestNewReportCountsSlots(t *testing.T) {
	r := NewReport(words(1024), words(2048), words(512))
	if r.PerRoleBits[model.Adjectives] != 10 || r.PerRoleBits[model.Nouns] != 11 || r.PerRoleBits[model.Verbs] != 9 {
		t.Fatalf("unexpected per-role bits: %+v", r.PerRoleBits)
	}
	if r.TotalBits != 51 {
		t.Fatalf("expected 51 total bits, got %v", r.TotalBits)
	}
	if r.Sizes[model.Verbs] != 512 {
		t.Fatalf("expected verbs size 512, got %d", r.Sizes[model.Verbs])
	}
	if r.Seconds != math.Pow(2, 51)/1000 {
		t.Fatalf("unexpected seconds: %v", r.Seconds)
	}
}

func TestNewReportIsPure(t *testing.T) {
	a := NewReport(words(300), words(1200), words(77))
	b := NewReport(words(300), words(1200), words(77))
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical reports, got %+v and %+v", a, b)
	}
}

func TestNewReportSingleWordLists(t *testing.T) {
	r := NewReport([]string{"red"}, []string{"fox"}, []string{"jumps"})
	if r.TotalBits != 0 {
		t.Fatalf("expected zero bits, got %v", r.TotalBits)
	}
	if r.CrackTime != "less than a minute" {
		t.Fatalf("unexpected crack time: %q", r.CrackTime)
	}
}

func TestCrackSecondsFloorsBits(t *testing.T) {
	if got := CrackSeconds(16.99); got != 65.536 {
		t.Fatalf("expected 65.536, got %v", got)
	}
	if got := CrackTime(CrackSeconds(16.99)); got != "less than 5 minutes" {
		t.Fatalf("unexpected bucket: %q", got)
	}
}

func TestFormatBits(t *testing.T) {
	cases := []struct {
		size int
		want string
	}{
		{size: 1, want: "0"},
		{size: 2, want: "1"},
		{size: 1024, want: "10"},
		{size: 1000, want: "9.97"},
		{size: 3, want: "1.58"},
	}
	for _, tc := range cases {
		if got := FormatBits(Bits(tc.size)); got != tc.want {
			t.Fatalf("FormatBits(Bits(%d)) = %q, want %q", tc.size, got, tc.want)
		}
	}
}

func TestCrackTimeBuckets(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{seconds: 0, want: "less than a minute"},
		{seconds: 59.9, want: "less than a minute"},
		{seconds: 60, want: "less than 5 minutes"},
		{seconds: 299, want: "less than 5 minutes"},
		{seconds: 300, want: "less than 10 minutes"},
		{seconds: 600, want: "less than an hour"},
		{seconds: 3600, want: "about 1 hours"},
		{seconds: 86399, want: "about 23 hours"},
		{seconds: 86400, want: "about 1 days"},
		{seconds: 1209599, want: "about 13 days"},
		{seconds: 1209600, want: "about 2 weeks"},
		{seconds: 4838400, want: "about 2 months"},
		{seconds: 63071999, want: "about 26 months"},
		{seconds: 63072000, want: "about 2 years"},
		{seconds: math.Pow(2, 60) / 1000, want: "about 36558901 years"},
	}
	for _, tc := range cases {
		if got := CrackTime(tc.seconds); got != tc.want {
			t.Fatalf("CrackTime(%v) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}
