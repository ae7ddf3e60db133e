package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"harvesta/entities"
	actRepo "harvesta/pkg/activity/repository"
	"harvesta/pkg/cutter/repository"
	"harvesta/pkg/middleware"
)

type CutterCtrl struct {
	repo     repository.CutterRepository
	activity actRepo.ActivityRepository
}

func New(repo repository.CutterRepository, activity actRepo.ActivityRepository) *CutterCtrl {
	return &CutterCtrl{repo: repo, activity: activity}
}

func (h *CutterCtrl) List(c echo.Context) error {
	out, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CutterCtrl) Upsert(c echo.Context) error {
	number := c.Param("number")
	var body struct {
		CustomName string `json:"custom_name"`
		IsActive   *bool  `json:"is_active"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if err := h.repo.Upsert(number, body.CustomName, body.IsActive); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	h.activity.Log(&entities.ActivityLog{
		UserID: middleware.UID(c), Action: "upsert_cutter", ResourceType: "cutter",
	})
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *CutterCtrl) Delete(c echo.Context) error {
	if err := h.repo.Delete(c.Param("number")); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	h.activity.Log(&entities.ActivityLog{
		UserID: middleware.UID(c), Action: "delete_cutter", ResourceType: "cutter",
	})
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
