package ingest

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"harvesta/entities"
)

// ParseParcel extracts the canonical parcel code from the scanned parcel
// field, which arrives as "<code> -<name>" or "-<name>". The left segment
// wins when present; a string without a dash is used whole.
//
//	"367 -EL CHATO" -> "367"
//	" -LOS ELOTES"  -> "LOS ELOTES"
func ParseParcel(raw string) string {
	s := strings.TrimSpace(raw)
	i := strings.Index(s, "-")
	if i < 0 {
		return s
	}
	if left := strings.TrimSpace(s[:i]); left != "" {
		return left
	}
	return strings.TrimSpace(s[i+1:])
}

// SplitScanCode splits a combined "<cutter>-<box>" scan code. Anything
// other than exactly two non-empty parts is rejected; a malformed scan is
// skipped, never guessed.
func SplitScanCode(code string) (cutter, box string, err error) {
	parts := strings.Split(code, "-")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid scan code format: %q", code)
	}
	cutter = strings.TrimSpace(parts[0])
	box = strings.TrimSpace(parts[1])
	if cutter == "" || box == "" {
		return "", "", fmt.Errorf("invalid scan code format: %q", code)
	}
	return cutter, box, nil
}

// GradeFromCutter derives the quality grade from the sentinel range of the
// cutter field. 98 and 99 are reserved tags for second quality and waste;
// everything else, 97 included, is first quality.
func GradeFromCutter(cutter string) string {
	switch cutter {
	case entities.CutterSecond:
		return entities.GradeSecond
	case entities.CutterWaste:
		return entities.GradeWaste
	}
	return entities.GradeFirst
}

// ParseWeightKg parses a decimal kilogram string, rejecting anything
// non-finite.
func ParseWeightKg(s string) (float64, error) {
	kg, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(kg) || math.IsInf(kg, 0) {
		return 0, fmt.Errorf("invalid weight: %q", s)
	}
	return kg, nil
}

// GramsFromKg converts kilograms to storage grams, rounding half away from
// zero: 2.065 kg -> 2065 g.
func GramsFromKg(kg float64) int {
	return int(math.Round(kg * 1000))
}

// offsetLessISO covers timestamps KoboToolbox reports without a zone
// offset; those are read as UTC.
const offsetLessISO = "2006-01-02T15:04:05"

// ParseFieldTime parses an ISO-8601 timestamp with or without a zone
// offset. Offset-less values are common in provider payloads and must not
// be treated as garbage.
func ParseFieldTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation(offsetLessISO, s, time.UTC)
}

// TimestampOrNow parses an ISO-8601 timestamp, falling back to the current
// time on failure. The fallback is a deliberate lossy policy: a bad field
// timestamp never rejects the record.
func TimestampOrNow(s string) time.Time {
	t, err := ParseFieldTime(s)
	if err != nil {
		return time.Now()
	}
	return t
}

// SplitLocation splits a combined "lat lon" string on whitespace. Fewer
// than two tokens leaves both unset; no numeric validation is done.
func SplitLocation(s string) (lat, lon string) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return "", ""
	}
	return fields[0], fields[1]
}

// DecodeKobo maps one raw KoboToolbox submission to a harvest record, plus
// the representative image reference when the submission carries one. Only
// the first attachment is kept; additional photos in the same submission
// are not persisted.
func DecodeKobo(sub KoboSubmission) (*entities.Harvest, *KoboAttachment, error) {
	cutter, box, err := SplitScanCode(sub.BoxScan)
	if err != nil {
		return nil, nil, err
	}

	parcel := ParseParcel(sub.Parcel)
	if parcel == "" {
		return nil, nil, fmt.Errorf("missing required field: escanea_la_parcela")
	}

	if strings.TrimSpace(sub.BoxWeight) == "" {
		return nil, nil, fmt.Errorf("missing required field: peso_de_la_caja")
	}
	kg, err := ParseWeightKg(sub.BoxWeight)
	if err != nil {
		return nil, nil, err
	}

	lat, lon := SplitLocation(sub.Location)

	status := sub.Status
	if status == "" {
		status = "submitted_via_web"
	}

	extID := sub.ID
	h := &entities.Harvest{
		ExternalID:     &extID,
		Parcel:         parcel,
		BoxWeightGrams: GramsFromKg(kg),
		CutterNumber:   cutter,
		BoxNumber:      box,
		QualityGrade:   GradeFromCutter(cutter),
		Latitude:       lat,
		Longitude:      lon,
		Status:         status,
		SubmissionTime: TimestampOrNow(sub.Start),
		SubmittedBy:    sub.SubmittedBy,
	}

	var att *KoboAttachment
	if len(sub.Attachments) > 0 {
		att = &sub.Attachments[0]
	}
	return h, att, nil
}

// DecodeImport maps one record of a JSON file import to a harvest record.
// The quality label is normalized when recognized; an absent label falls
// back to the sentinel cutter rule.
func DecodeImport(rec ImportRecord) (*entities.Harvest, error) {
	parcel := ParseParcel(rec.Parcel)
	if parcel == "" {
		return nil, fmt.Errorf("missing required field: escanea_la_parcela")
	}
	cutter := strings.TrimSpace(rec.CutterNumber)
	if cutter == "" {
		return nil, fmt.Errorf("missing required field: numero_de_cortadora")
	}
	box := strings.TrimSpace(rec.BoxNumber)
	if box == "" {
		return nil, fmt.Errorf("missing required field: numero_de_caja")
	}
	if rec.BoxWeightKg.String() == "" {
		return nil, fmt.Errorf("missing required field: peso_de_la_caja")
	}
	kg, err := ParseWeightKg(rec.BoxWeightKg.String())
	if err != nil {
		return nil, err
	}

	grade := GradeFromCutter(cutter)
	if label := strings.TrimSpace(rec.QualityLabel); label != "" {
		if canon, ok := NormalizeQuality(label); ok {
			grade = canon
		} else {
			// Unrecognized labels persist as-is; the quality sweep
			// leaves them untouched too.
			grade = label
		}
	}

	return &entities.Harvest{
		Parcel:         parcel,
		BoxWeightGrams: GramsFromKg(kg),
		CutterNumber:   cutter,
		BoxNumber:      box,
		QualityGrade:   grade,
		Status:         "imported_from_file",
		SubmissionTime: TimestampOrNow(rec.Start),
	}, nil
}
