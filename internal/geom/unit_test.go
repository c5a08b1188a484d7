package geom

import "testing"

func TestUnit_RoundTrip(t *testing.T) {
	for _, u := range []Unit{UnitPt, UnitMm, UnitCm, UnitIn} {
		got, ok := ParseUnit(u.String())
		if !ok {
			t.Fatalf("ParseUnit(%q) failed", u.String())
		}
		if got != u {
			t.Errorf("ParseUnit(%q) = %v, want %v", u.String(), got, u)
		}
	}
}

func TestParseUnit_Unknown(t *testing.T) {
	for _, s := range []string{"", "px", "em", "PT"} {
		if _, ok := ParseUnit(s); ok {
			t.Errorf("ParseUnit(%q) unexpectedly succeeded", s)
		}
	}
}
