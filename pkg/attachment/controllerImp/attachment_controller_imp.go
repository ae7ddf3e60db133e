package controllerImp

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"harvesta/entities"
	actRepo "harvesta/pkg/activity/repository"
	"harvesta/pkg/attachment/repository"
	"harvesta/pkg/middleware"
	"harvesta/pkg/storage"
)

type AttachmentCtrl struct {
	repo     repository.AttachmentRepository
	store    storage.Store
	activity actRepo.ActivityRepository
}

func New(repo repository.AttachmentRepository, store storage.Store, activity actRepo.ActivityRepository) *AttachmentCtrl {
	return &AttachmentCtrl{repo: repo, store: store, activity: activity}
}

type uploadBody struct {
	HarvestID uint   `json:"harvest_id"`
	Filename  string `json:"filename"`
	Data      string `json:"data"` // base64
	Mimetype  string `json:"mimetype"`
}

func (h *AttachmentCtrl) Upload(c echo.Context) error {
	var in uploadBody
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if in.HarvestID == 0 || in.Filename == "" || in.Data == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "harvest_id, filename and data are required"})
	}
	raw, err := base64.StdEncoding.DecodeString(in.Data)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid base64 data"})
	}

	// Image resizing is an external transform; until it is wired the small
	// rendition reuses the original bytes.
	now := time.Now().UnixMilli()
	largeKey := fmt.Sprintf("harvests/%d/large/%d-%s", in.HarvestID, now, in.Filename)
	smallKey := fmt.Sprintf("harvests/%d/small/%d-%s", in.HarvestID, now, in.Filename)

	largeURL, err := h.store.Put(largeKey, raw, in.Mimetype)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	smallURL, err := h.store.Put(smallKey, raw, in.Mimetype)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	a := &entities.HarvestAttachment{
		HarvestID:      in.HarvestID,
		Filename:       in.Filename,
		Mimetype:       in.Mimetype,
		LargeURL:       largeURL,
		SmallURL:       smallURL,
		LocalLargePath: largeKey,
		LocalSmallPath: smallKey,
	}
	if err := h.repo.Create(a); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	h.activity.Log(&entities.ActivityLog{
		UserID: middleware.UID(c), Action: "upload_attachment",
		ResourceType: "attachment", ResourceID: a.ID,
	})
	return c.JSON(http.StatusCreated, echo.Map{"id": a.ID, "large_url": largeURL, "small_url": smallURL})
}

func (h *AttachmentCtrl) ListByHarvest(c echo.Context) error {
	hid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	out, err := h.repo.ByHarvest(uint(hid))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AttachmentCtrl) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.repo.SoftDelete(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	h.activity.Log(&entities.ActivityLog{
		UserID: middleware.UID(c), Action: "delete_attachment",
		ResourceType: "attachment", ResourceID: uint(id),
	})
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
