package router

import (
	"github.com/labstack/echo/v4"

	activityCtrlImp "harvesta/pkg/activity/controllerImp"
	attachCtrlImp "harvesta/pkg/attachment/controllerImp"
	cutterCtrlImp "harvesta/pkg/cutter/controllerImp"
	harvestCtrlImp "harvesta/pkg/harvest/controllerImp"
	healthCtrlImp "harvesta/pkg/health/controllerImp"
	importCtrlImp "harvesta/pkg/ingest/controllerImp"
	koboCtrlImp "harvesta/pkg/kobo/controllerImp"
	maintCtrlImp "harvesta/pkg/maintenance/controllerImp"
	reportCtrlImp "harvesta/pkg/report/controllerImp"

	"harvesta/pkg/middleware"
)

func New(
	e *echo.Echo,
	harvestCtrl *harvestCtrlImp.HarvestCtrl,
	attachCtrl *attachCtrlImp.AttachmentCtrl,
	cutterCtrl *cutterCtrlImp.CutterCtrl,
	importCtrl *importCtrlImp.ImportCtrl,
	koboCtrl *koboCtrlImp.KoboCtrl,
	maintCtrl *maintCtrlImp.MaintenanceCtrl,
	activityCtrl *activityCtrlImp.ActivityCtrl,
	reportCtrl *reportCtrlImp.ReportCtrl,
	healthCtrl *healthCtrlImp.HealthCtrl,
) *echo.Echo {
	e.Use(middleware.CurrentUser())

	edit := middleware.RequireRole("editor", "admin")
	admin := middleware.RequireRole("admin")

	e.GET("/health", healthCtrl.Health)

	e.GET("/harvests", harvestCtrl.List)
	e.GET("/harvests/stats", harvestCtrl.Stats)
	e.GET("/harvests/:id", harvestCtrl.Get)
	e.POST("/harvests", harvestCtrl.Create, edit)
	e.PATCH("/harvests/:id", harvestCtrl.Update, edit)
	e.DELETE("/harvests/:id", harvestCtrl.Delete, admin)

	e.GET("/harvests/:id/attachments", attachCtrl.ListByHarvest)
	e.POST("/attachments", attachCtrl.Upload, edit)
	e.DELETE("/attachments/:id", attachCtrl.Delete, admin)

	e.GET("/cutters", cutterCtrl.List)
	e.GET("/cutters/top", harvestCtrl.TopCutters)
	e.PUT("/cutters/:number", cutterCtrl.Upsert, edit)
	e.DELETE("/cutters/:number", cutterCtrl.Delete, admin)

	e.POST("/import", importCtrl.Import, edit)

	e.GET("/kobo/config", koboCtrl.GetConfig, admin)
	e.POST("/kobo/config", koboCtrl.SaveConfig, admin)
	e.GET("/kobo/test", koboCtrl.TestConnection, admin)
	e.POST("/kobo/sync", koboCtrl.Sync, edit)

	e.POST("/maintenance/weights", maintCtrl.FilterWeights, admin)
	e.POST("/maintenance/grades", maintCtrl.NormalizeGrades, admin)
	e.POST("/maintenance/orphans", maintCtrl.RemoveOrphans, admin)

	e.GET("/logs", activityCtrl.List, admin)
	e.GET("/reports/harvests.xlsx", reportCtrl.Export)

	return e
}
