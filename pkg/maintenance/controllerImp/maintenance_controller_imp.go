package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"harvesta/entities"
	actRepo "harvesta/pkg/activity/repository"
	"harvesta/pkg/maintenance"
	"harvesta/pkg/middleware"
)

type MaintenanceCtrl struct {
	jobs     *maintenance.Jobs
	activity actRepo.ActivityRepository
}

func New(jobs *maintenance.Jobs, activity actRepo.ActivityRepository) *MaintenanceCtrl {
	return &MaintenanceCtrl{jobs: jobs, activity: activity}
}

func (h *MaintenanceCtrl) FilterWeights(c echo.Context) error {
	removed, err := h.jobs.FilterWeights()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	h.activity.Log(&entities.ActivityLog{
		UserID: middleware.UID(c), Action: "filter_weights", ResourceType: "harvest",
	})
	return c.JSON(http.StatusOK, echo.Map{"removed": removed})
}

func (h *MaintenanceCtrl) NormalizeGrades(c echo.Context) error {
	updated, err := h.jobs.NormalizeGrades()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	h.activity.Log(&entities.ActivityLog{
		UserID: middleware.UID(c), Action: "normalize_grades", ResourceType: "harvest",
	})
	return c.JSON(http.StatusOK, echo.Map{"updated": updated})
}

func (h *MaintenanceCtrl) RemoveOrphans(c echo.Context) error {
	rep, err := h.jobs.RemoveOrphanAttachments()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	h.activity.Log(&entities.ActivityLog{
		UserID: middleware.UID(c), Action: "remove_orphan_attachments", ResourceType: "attachment",
	})
	return c.JSON(http.StatusOK, rep)
}
