package maintenance

import (
	"testing"
	"time"

	"harvesta/database"
	"harvesta/entities"

	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return db
}

func seedHarvest(t *testing.T, db *gorm.DB, grams int, grade string) uint {
	t.Helper()
	h := entities.Harvest{
		Parcel: "367", BoxWeightGrams: grams, CutterNumber: "04",
		BoxNumber: "1", QualityGrade: grade, SubmissionTime: time.Now(),
	}
	if err := db.Create(&h).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	return h.ID
}

func TestFilterWeights(t *testing.T) {
	db := testDB(t)
	seedHarvest(t, db, 2000, entities.GradeFirst)   // keep
	seedHarvest(t, db, 50000, entities.GradeFirst)  // keep: exactly 50 kg
	seedHarvest(t, db, 50001, entities.GradeFirst)  // remove
	seedHarvest(t, db, 0, entities.GradeFirst)      // remove
	seedHarvest(t, db, -100, entities.GradeFirst)   // remove

	jobs := New(db)
	removed, err := jobs.FilterWeights()
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if removed != 3 {
		t.Fatalf("removed %d, want 3", removed)
	}

	var count int64
	db.Model(&entities.Harvest{}).Count(&count)
	if count != 2 {
		t.Fatalf("left %d rows", count)
	}

	// Idempotent: a second run deletes nothing.
	removed, err = jobs.FilterWeights()
	if err != nil || removed != 0 {
		t.Fatalf("rerun removed %d err %v", removed, err)
	}
}

func TestNormalizeGrades(t *testing.T) {
	db := testDB(t)
	seedHarvest(t, db, 1000, "Primera Calidad")
	seedHarvest(t, db, 1000, "SEGUNDA CALIDAD")
	seedHarvest(t, db, 1000, "Desperdicio")
	seedHarvest(t, db, 1000, entities.GradeFirst) // already canonical
	seedHarvest(t, db, 1000, "tercera")           // unrecognized, untouched

	jobs := New(db)
	updated, err := jobs.NormalizeGrades()
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if updated != 3 {
		t.Fatalf("updated %d, want 3", updated)
	}

	var grades []string
	db.Model(&entities.Harvest{}).Order("id ASC").Pluck("quality_grade", &grades)
	want := []string{
		entities.GradeFirst, entities.GradeSecond, entities.GradeWaste,
		entities.GradeFirst, "tercera",
	}
	for i := range want {
		if grades[i] != want[i] {
			t.Fatalf("row %d: %q want %q", i, grades[i], want[i])
		}
	}

	updated, err = jobs.NormalizeGrades()
	if err != nil || updated != 0 {
		t.Fatalf("rerun updated %d err %v", updated, err)
	}
}

func TestRemoveOrphanAttachments(t *testing.T) {
	db := testDB(t)
	live := seedHarvest(t, db, 1000, entities.GradeFirst)

	for _, hid := range []uint{live, 9998, 9999} {
		a := entities.HarvestAttachment{HarvestID: hid, Filename: "f.jpg"}
		if err := db.Create(&a).Error; err != nil {
			t.Fatalf("seed attachment: %v", err)
		}
	}

	jobs := New(db)
	rep, err := jobs.RemoveOrphanAttachments()
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if rep.Before != 2 || rep.Removed != 2 || rep.After != 1 {
		t.Fatalf("report = %+v", rep)
	}

	rep, err = jobs.RemoveOrphanAttachments()
	if err != nil || rep.Removed != 0 || rep.After != 1 {
		t.Fatalf("rerun report = %+v err %v", rep, err)
	}
}
