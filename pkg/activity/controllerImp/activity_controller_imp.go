package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"harvesta/pkg/activity/repository"
)

type ActivityCtrl struct {
	repo repository.ActivityRepository
}

func New(repo repository.ActivityRepository) *ActivityCtrl { return &ActivityCtrl{repo: repo} }

func (h *ActivityCtrl) List(c echo.Context) error {
	limit := 100
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	out, err := h.repo.List(limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
