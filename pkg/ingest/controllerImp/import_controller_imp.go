package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"harvesta/pkg/ingest"
	"harvesta/pkg/middleware"
)

// Per-record errors in the response are capped.
const maxDisplayedErrors = 20

type ImportCtrl struct {
	runner *ingest.Runner
}

func New(runner *ingest.Runner) *ImportCtrl { return &ImportCtrl{runner: runner} }

// Import ingests a JSON array of file-import records. The response always
// carries the full attempted/succeeded/skipped/failed accounting, even
// when every record fails.
func (h *ImportCtrl) Import(c echo.Context) error {
	var recs []ingest.ImportRecord
	if err := c.Bind(&recs); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "expected a JSON array of records"})
	}

	rep := h.runner.RunImport(recs, middleware.UID(c))
	return c.JSON(http.StatusOK, echo.Map{
		"success": rep.Success,
		"failed":  rep.Failed,
		"skipped": rep.Skipped,
		"errors":  rep.TruncatedErrors(maxDisplayedErrors),
	})
}
