package ingest

import (
	"strings"

	"harvesta/entities"
)

// NormalizeQuality canonicalizes a free-text quality label: lower-case,
// spaces to underscores, then match against the three canonical grades.
// "Primera Calidad", "primera_calidad" and "PRIMERA CALIDAD" all collapse
// to primera_calidad. Labels outside the three families come back
// unchanged with ok=false, never defaulted.
func NormalizeQuality(label string) (grade string, ok bool) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "_")
	switch n {
	case entities.GradeFirst, entities.GradeSecond, entities.GradeWaste:
		return n, true
	}
	return label, false
}
