package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"harvesta/pkg/kobo/serviceImp"
	"harvesta/pkg/middleware"
)

const maxDisplayedErrors = 20

type KoboCtrl struct {
	s *serviceImp.SyncService
}

func New(s *serviceImp.SyncService) *KoboCtrl { return &KoboCtrl{s: s} }

func (h *KoboCtrl) GetConfig(c echo.Context) error {
	cfg, lastSync, err := h.s.GetConfig()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"api_url":        cfg.APIURL,
		"asset_id":       cfg.AssetID,
		"has_token":      cfg.Token != "",
		"last_sync_time": lastSync,
	})
}

func (h *KoboCtrl) SaveConfig(c echo.Context) error {
	var body struct {
		APIURL   string `json:"api_url"`
		AssetID  string `json:"asset_id"`
		APIToken string `json:"api_token"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if err := h.s.SaveConfig(body.APIURL, body.AssetID, body.APIToken); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *KoboCtrl) TestConnection(c echo.Context) error {
	if err := h.s.TestConnection(); err != nil {
		return c.JSON(http.StatusOK, echo.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "connection ok"})
}

// Sync runs one synchronous import from KoboToolbox. Batch-level failures
// (config, network, auth) surface verbatim; per-record issues come back
// inside the report.
func (h *KoboCtrl) Sync(c echo.Context) error {
	var body struct {
		Limit int `json:"limit"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if body.Limit <= 0 {
		body.Limit = 100
	}

	rep, err := h.s.Sync(body.Limit, middleware.UID(c))
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": rep.Success,
		"failed":  rep.Failed,
		"skipped": rep.Skipped,
		"errors":  rep.TruncatedErrors(maxDisplayedErrors),
	})
}
