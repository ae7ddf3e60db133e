package ingest

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"harvesta/entities"
)

func TestParseParcel(t *testing.T) {
	cases := []struct{ in, want string }{
		{"367 -EL CHATO", "367"},
		{" -LOS ELOTES", "LOS ELOTES"},
		{"-LOS ELOTES", "LOS ELOTES"},
		{"EL CHATO", "EL CHATO"},
		{"  412 ", "412"},
		{"", ""},
	}
	for _, c := range cases {
		if got := ParseParcel(c.in); got != c.want {
			t.Fatalf("ParseParcel(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSplitScanCode(t *testing.T) {
	cutter, box, err := SplitScanCode("12-345")
	if err != nil || cutter != "12" || box != "345" {
		t.Fatalf("unexpected: %q %q %v", cutter, box, err)
	}
	cutter, box, err = SplitScanCode(" 04 - 001 ")
	if err != nil || cutter != "04" || box != "001" {
		t.Fatalf("unexpected: %q %q %v", cutter, box, err)
	}
	for _, bad := range []string{"", "12", "12-", "-345", "12-34-5", "-"} {
		if _, _, err := SplitScanCode(bad); err == nil {
			t.Fatalf("SplitScanCode(%q) should reject", bad)
		}
	}
}

func TestGradeFromCutter(t *testing.T) {
	if g := GradeFromCutter("98"); g != entities.GradeSecond {
		t.Fatalf("98 -> %q", g)
	}
	if g := GradeFromCutter("99"); g != entities.GradeWaste {
		t.Fatalf("99 -> %q", g)
	}
	for _, n := range []string{"97", "04", "1", "100", "abc"} {
		if g := GradeFromCutter(n); g != entities.GradeFirst {
			t.Fatalf("%q -> %q, want first quality", n, g)
		}
	}
}

func TestGramsFromKg(t *testing.T) {
	if g := GramsFromKg(2.065); g != 2065 {
		t.Fatalf("2.065 kg -> %d g", g)
	}
	if g := GramsFromKg(0.0004); g != 0 {
		t.Fatalf("0.0004 kg -> %d g", g)
	}
	if g := GramsFromKg(12); g != 12000 {
		t.Fatalf("12 kg -> %d g", g)
	}
}

func TestParseWeightKg(t *testing.T) {
	if kg, err := ParseWeightKg("2.065"); err != nil || kg != 2.065 {
		t.Fatalf("unexpected: %v %v", kg, err)
	}
	for _, bad := range []string{"", "abc", "NaN", "Inf", "-Inf"} {
		if _, err := ParseWeightKg(bad); err == nil {
			t.Fatalf("ParseWeightKg(%q) should reject", bad)
		}
	}
}

func TestParseFieldTime(t *testing.T) {
	got, err := ParseFieldTime("2025-10-30T15:10:00")
	if err != nil {
		t.Fatalf("offset-less timestamp should parse: %v", err)
	}
	if want := time.Date(2025, 10, 30, 15, 10, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("parsed %v, want %v", got, want)
	}
	if _, err := ParseFieldTime("not a date"); err == nil {
		t.Fatal("garbage should not parse")
	}
}

func TestTimestampOrNow(t *testing.T) {
	got := TimestampOrNow("2025-10-30T09:02:13.998-06:00")
	want := time.Date(2025, 10, 30, 9, 2, 13, 998000000, time.FixedZone("", -6*3600))
	if !got.Equal(want) {
		t.Fatalf("parsed %v, want %v", got, want)
	}

	// Offset-less field times keep their value instead of collapsing to now.
	got = TimestampOrNow("2025-10-30T15:10:00")
	want = time.Date(2025, 10, 30, 15, 10, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("parsed %v, want %v", got, want)
	}

	// Unparseable timestamps fall back to now instead of rejecting.
	before := time.Now()
	got = TimestampOrNow("not a date")
	if got.Before(before) || got.After(time.Now()) {
		t.Fatalf("fallback time out of range: %v", got)
	}
}

func TestSplitLocation(t *testing.T) {
	lat, lon := SplitLocation("19.4326 -99.1332 2240 10")
	if lat != "19.4326" || lon != "-99.1332" {
		t.Fatalf("unexpected: %q %q", lat, lon)
	}
	lat, lon = SplitLocation("19.4326")
	if lat != "" || lon != "" {
		t.Fatalf("single token should leave both unset: %q %q", lat, lon)
	}
	lat, lon = SplitLocation("")
	if lat != "" || lon != "" {
		t.Fatalf("empty should leave both unset: %q %q", lat, lon)
	}
}

func validSub() KoboSubmission {
	return KoboSubmission{
		ID:             101,
		Start:          "2025-10-30T09:02:13.998-06:00",
		Parcel:         "367 -EL CHATO",
		BoxScan:        "04-123",
		BoxWeight:      "2.065",
		Location:       "19.43 -99.13 2240 10",
		Status:         "submitted_via_web",
		SubmissionTime: "2025-10-30T15:10:00Z",
		SubmittedBy:    "field_user",
		Attachments: []KoboAttachment{
			{Filename: "a.jpg", DownloadLargeURL: "http://x/large", DownloadSmallURL: "http://x/small"},
			{Filename: "b.jpg", DownloadLargeURL: "http://x/large2"},
		},
	}
}

func TestDecodeKobo(t *testing.T) {
	h, att, err := DecodeKobo(validSub())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if h.Parcel != "367" || h.CutterNumber != "04" || h.BoxNumber != "123" {
		t.Fatalf("unexpected fields: %+v", h)
	}
	if h.BoxWeightGrams != 2065 {
		t.Fatalf("grams = %d", h.BoxWeightGrams)
	}
	if h.QualityGrade != entities.GradeFirst {
		t.Fatalf("grade = %q", h.QualityGrade)
	}
	if h.Latitude != "19.43" || h.Longitude != "-99.13" {
		t.Fatalf("location: %q %q", h.Latitude, h.Longitude)
	}
	if h.ExternalID == nil || *h.ExternalID != 101 {
		t.Fatalf("external id: %v", h.ExternalID)
	}
	// Only the first attachment is kept.
	if att == nil || att.Filename != "a.jpg" {
		t.Fatalf("attachment: %+v", att)
	}
}

func TestDecodeKoboSentinelGrades(t *testing.T) {
	sub := validSub()
	sub.BoxScan = "98-200"
	h, _, err := DecodeKobo(sub)
	if err != nil || h.QualityGrade != entities.GradeSecond {
		t.Fatalf("98 scan: %+v %v", h, err)
	}
	sub.BoxScan = "99-201"
	h, _, err = DecodeKobo(sub)
	if err != nil || h.QualityGrade != entities.GradeWaste {
		t.Fatalf("99 scan: %+v %v", h, err)
	}
	sub.BoxScan = "97-202"
	h, _, err = DecodeKobo(sub)
	if err != nil || h.QualityGrade != entities.GradeFirst {
		t.Fatalf("97 scan: %+v %v", h, err)
	}
}

func TestDecodeKoboRejections(t *testing.T) {
	sub := validSub()
	sub.BoxScan = "0401123"
	if _, _, err := DecodeKobo(sub); err == nil || !strings.Contains(err.Error(), "scan code") {
		t.Fatalf("expected scan code rejection, got %v", err)
	}

	sub = validSub()
	sub.Parcel = "  "
	if _, _, err := DecodeKobo(sub); err == nil || !strings.Contains(err.Error(), "escanea_la_parcela") {
		t.Fatalf("expected missing parcel, got %v", err)
	}

	sub = validSub()
	sub.BoxWeight = "heavy"
	if _, _, err := DecodeKobo(sub); err == nil || !strings.Contains(err.Error(), "invalid weight") {
		t.Fatalf("expected invalid weight, got %v", err)
	}

	sub = validSub()
	sub.BoxWeight = ""
	if _, _, err := DecodeKobo(sub); err == nil || !strings.Contains(err.Error(), "peso_de_la_caja") {
		t.Fatalf("expected missing weight, got %v", err)
	}
}

func TestDecodeImport(t *testing.T) {
	rec := ImportRecord{
		Parcel:       "367 -EL CHATO",
		BoxWeightKg:  json.Number("3.5"),
		CutterNumber: "04",
		BoxNumber:    "77",
		QualityLabel: "Primera Calidad",
	}
	h, err := DecodeImport(rec)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if h.Parcel != "367" || h.BoxWeightGrams != 3500 || h.QualityGrade != entities.GradeFirst {
		t.Fatalf("unexpected: %+v", h)
	}

	// Absent label falls back to the sentinel cutter rule.
	rec.QualityLabel = ""
	rec.CutterNumber = "99"
	h, err = DecodeImport(rec)
	if err != nil || h.QualityGrade != entities.GradeWaste {
		t.Fatalf("fallback grade: %+v %v", h, err)
	}

	// Unrecognized labels persist as-is.
	rec.QualityLabel = "tercera"
	h, err = DecodeImport(rec)
	if err != nil || h.QualityGrade != "tercera" {
		t.Fatalf("unrecognized label: %+v %v", h, err)
	}

	for _, rec := range []ImportRecord{
		{BoxWeightKg: json.Number("1"), CutterNumber: "04", BoxNumber: "1"},
		{Parcel: "367", CutterNumber: "04", BoxNumber: "1"},
		{Parcel: "367", BoxWeightKg: json.Number("1"), BoxNumber: "1"},
		{Parcel: "367", BoxWeightKg: json.Number("1"), CutterNumber: "04"},
	} {
		if _, err := DecodeImport(rec); err == nil {
			t.Fatalf("expected missing-field rejection for %+v", rec)
		}
	}
}
