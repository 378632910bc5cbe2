package dimen

import (
	"testing"

	"github.com/npillmayer/typeset/core"
	"github.com/stretchr/testify/assert"
)

func TestUnits(t *testing.T) {
	if PT.String() != "65536sp" {
		t.Error("a point PT should be 65536 scaled points SP")
	}
	if UnitIN.ToSP(1) != 72*PT {
		t.Errorf("an inch should be 72 points, is %s", UnitIN.ToSP(1))
	}
}

func TestParseDistance(t *testing.T) {
	tests := []struct {
		input string
		want  Dimen
	}{
		{"2.54 cm", 4718592}, // exactly one inch
		{"1in", 4718592},
		{"-3 pt", -196608},
		{"1pc", 12 * 65536},
		{"25.4mm", 4718592},
		{"10sp", 10},
		{"2.54CM", 4718592},
	}
	for _, tc := range tests {
		got, err := ParseDistance(tc.input)
		if err != nil {
			t.Errorf("ParseDistance(%q) returned error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDistance(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestParseDistanceErrors(t *testing.T) {
	_, err := ParseDistance("5")
	if assert.Error(t, err, "distance without unit should not parse") {
		assert.Equal(t, core.EINVALID, core.Code(err))
		assert.Contains(t, core.UserMessage(err), "missing unit")
	}
	_, err = ParseDistance("1km")
	if assert.Error(t, err, "unknown unit should not parse") {
		assert.Contains(t, core.UserMessage(err), "unknown unit km")
	}
	_, err = ParseDistance("pt")
	assert.Error(t, err, "unit without number should not parse")
}

func TestFormatRoundtrip(t *testing.T) {
	dimens := []Dimen{0, 1, -1, PT, -3 * PT, 4718592, 12345678}
	for _, u := range units {
		for _, d := range dimens {
			s := FormatDistance(d, u)
			got, err := ParseDistance(s)
			if err != nil {
				t.Errorf("ParseDistance(%q) returned error: %v", s, err)
				continue
			}
			if got != d {
				t.Errorf("roundtrip %s via %q = %s", d, s, got)
			}
		}
	}
}
