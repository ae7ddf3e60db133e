package ingest

import (
	"testing"

	"harvesta/entities"
)

func TestNormalizeQuality(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Primera Calidad", entities.GradeFirst, true},
		{"primera_calidad", entities.GradeFirst, true},
		{"PRIMERA CALIDAD", entities.GradeFirst, true},
		{"Segunda Calidad", entities.GradeSecond, true},
		{"DESPERDICIO", entities.GradeWaste, true},
		{"desperdicio", entities.GradeWaste, true},
		{"tercera", "tercera", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := NormalizeQuality(c.in)
		if got != c.want || ok != c.ok {
			t.Fatalf("NormalizeQuality(%q) = %q,%v want %q,%v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestNormalizeQualityIdempotent(t *testing.T) {
	inputs := []string{
		"Primera Calidad", "segunda calidad", "DESPERDICIO",
		"primera_calidad", "unknown label", "",
	}
	for _, in := range inputs {
		once, _ := NormalizeQuality(in)
		twice, _ := NormalizeQuality(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
