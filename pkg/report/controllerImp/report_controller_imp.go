package controllerImp

import (
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	cutRepo "harvesta/pkg/cutter/repository"
	"harvesta/pkg/harvest/repository"
	"harvesta/pkg/report"
)

type ReportCtrl struct {
	harvests repository.HarvestRepository
	cutters  cutRepo.CutterRepository
}

func New(harvests repository.HarvestRepository, cutters cutRepo.CutterRepository) *ReportCtrl {
	return &ReportCtrl{harvests: harvests, cutters: cutters}
}

// Export streams the aggregation rollups as an .xlsx download.
func (h *ReportCtrl) Export(c echo.Context) error {
	var f repository.ListFilter
	if v := c.QueryParam("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			f.From = &t
		}
	}
	if v := c.QueryParam("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			f.To = &t
		}
	}

	stats, err := h.harvests.Stats(f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	byGrade, err := h.harvests.ByGrade(f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	byParcel, err := h.harvests.ByParcel(f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	cutters, err := h.harvests.TopCutters(10)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	names, err := h.cutters.NameMap()
	if err != nil {
		// The export still ships, just without display names.
		log.Printf("[report] cutter name map: %v", err)
	}
	for i := range cutters {
		cutters[i].CustomName = names[cutters[i].CutterNumber]
	}

	wb, err := report.BuildWorkbook(stats, byGrade, byParcel, cutters)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	c.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="harvest_report.xlsx"`)
	c.Response().WriteHeader(http.StatusOK)
	_, err = wb.WriteTo(c.Response())
	return err
}
