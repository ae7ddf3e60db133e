package serviceImp

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"harvesta/database"
	"harvesta/entities"
	activityRepoImp "harvesta/pkg/activity/repositoryImp"
	attachRepoImp "harvesta/pkg/attachment/repositoryImp"
	harvestRepoImp "harvesta/pkg/harvest/repositoryImp"
	"harvesta/pkg/ingest"
	"harvesta/pkg/kobo"
	koboRepoImp "harvesta/pkg/kobo/repositoryImp"
)

func TestSyncEndToEnd(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":[
			{"_id":7,"start":"2025-10-30T09:02:13.998-06:00",
			 "escanea_la_parcela":"367 -EL CHATO","escanea_la_caja":"04-123",
			 "peso_de_la_caja":"2.065","tu_ubicacion":"19.43 -99.13",
			 "_status":"submitted_via_web","_submission_time":"2025-10-30T15:10:00Z",
			 "_submitted_by":"field_user",
			 "_attachments":[{"filename":"a.jpg","download_large_url":"http://x/l","download_small_url":"http://x/s"}]},
			{"_id":8,"escanea_la_caja":"garbage","peso_de_la_caja":"1.0",
			 "escanea_la_parcela":"367","_submission_time":"2025-10-30T15:11:00Z"}
		]}`)
	}))
	defer ts.Close()

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	repo := koboRepoImp.New(db)
	if err := repo.Save(ts.URL, "asset1", "tok"); err != nil {
		t.Fatalf("save config: %v", err)
	}

	runner := ingest.NewRunner(
		harvestRepoImp.New(db), attachRepoImp.New(db), activityRepoImp.New(db),
	)
	svc := New(repo, runner, kobo.Config{})

	rep, err := svc.Sync(100, "op1")
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if rep.Success != 1 || rep.Skipped != 1 || rep.Failed != 0 {
		t.Fatalf("report = %+v", rep)
	}

	var h entities.Harvest
	if err := db.First(&h).Error; err != nil {
		t.Fatalf("harvest row: %v", err)
	}
	if h.Parcel != "367" || h.BoxWeightGrams != 2065 || h.CutterNumber != "04" {
		t.Fatalf("harvest = %+v", h)
	}
	var att entities.HarvestAttachment
	if err := db.First(&att).Error; err != nil {
		t.Fatalf("attachment row: %v", err)
	}
	if att.HarvestID != h.ID || att.SmallURL != "http://x/s" {
		t.Fatalf("attachment = %+v", att)
	}

	cfg, _ := repo.Get()
	if cfg.LastSyncTime == nil {
		t.Fatal("last sync time should advance")
	}
}

func TestSyncMissingToken(t *testing.T) {
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	runner := ingest.NewRunner(harvestRepoImp.New(db), nil, nil)
	svc := New(koboRepoImp.New(db), runner, kobo.Config{APIURL: "http://example.invalid"})

	_, err = svc.Sync(10, "op1")
	if err == nil || !strings.Contains(err.Error(), "token") {
		t.Fatalf("expected token precondition failure, got %v", err)
	}
}
