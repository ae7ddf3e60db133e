package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"harvesta/config"
	"harvesta/database"
	"harvesta/router"

	activityCtrlImp "harvesta/pkg/activity/controllerImp"
	activityRepoImp "harvesta/pkg/activity/repositoryImp"
	attachCtrlImp "harvesta/pkg/attachment/controllerImp"
	attachRepoImp "harvesta/pkg/attachment/repositoryImp"
	cutterCtrlImp "harvesta/pkg/cutter/controllerImp"
	cutterRepoImp "harvesta/pkg/cutter/repositoryImp"
	harvestCtrlImp "harvesta/pkg/harvest/controllerImp"
	harvestRepoImp "harvesta/pkg/harvest/repositoryImp"
	healthCtrlImp "harvesta/pkg/health/controllerImp"
	importCtrlImp "harvesta/pkg/ingest/controllerImp"
	koboCtrlImp "harvesta/pkg/kobo/controllerImp"
	koboRepoImp "harvesta/pkg/kobo/repositoryImp"
	koboSvc "harvesta/pkg/kobo/serviceImp"
	maintCtrlImp "harvesta/pkg/maintenance/controllerImp"
	reportCtrlImp "harvesta/pkg/report/controllerImp"

	"harvesta/pkg/ingest"
	"harvesta/pkg/kobo"
	"harvesta/pkg/maintenance"
	"harvesta/pkg/storage"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Repos
	harvestRepo := harvestRepoImp.New(db)
	attachRepo := attachRepoImp.New(db)
	cutterRepo := cutterRepoImp.New(db)
	activityRepo := activityRepoImp.New(db)
	koboRepo := koboRepoImp.New(db)

	// 4) Ingestion runner + sync service
	runner := ingest.NewRunner(harvestRepo, attachRepo, activityRepo)
	syncSvc := koboSvc.New(koboRepo, runner, kobo.Config{
		APIURL:  cfg.KoboAPIURL,
		AssetID: cfg.KoboAssetID,
		Token:   cfg.KoboAPIToken,
	})

	// 5) Object store for uploaded images
	store := storage.NewFS(cfg.UploadDir, cfg.PublicBase)

	// 6) Controllers
	harvestCtrl := harvestCtrlImp.New(harvestRepo, attachRepo, cutterRepo, activityRepo)
	attachCtrl := attachCtrlImp.New(attachRepo, store, activityRepo)
	cutterCtrl := cutterCtrlImp.New(cutterRepo, activityRepo)
	importCtrl := importCtrlImp.New(runner)
	koboCtrl := koboCtrlImp.New(syncSvc)
	maintCtrl := maintCtrlImp.New(maintenance.New(db), activityRepo)
	activityCtrl := activityCtrlImp.New(activityRepo)
	reportCtrl := reportCtrlImp.New(harvestRepo, cutterRepo)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Static(cfg.PublicBase, cfg.UploadDir)

	r := router.New(
		e,
		harvestCtrl,
		attachCtrl,
		cutterCtrl,
		importCtrl,
		koboCtrl,
		maintCtrl,
		activityCtrl,
		reportCtrl,
		healthCtrl,
	)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
