package controllerImp

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"harvesta/entities"
	actRepo "harvesta/pkg/activity/repository"
	attRepo "harvesta/pkg/attachment/repository"
	cutRepo "harvesta/pkg/cutter/repository"
	"harvesta/pkg/harvest/repository"
	"harvesta/pkg/ingest"
	"harvesta/pkg/middleware"
)

type HarvestCtrl struct {
	repo        repository.HarvestRepository
	attachments attRepo.AttachmentRepository
	cutters     cutRepo.CutterRepository
	activity    actRepo.ActivityRepository
}

func New(
	repo repository.HarvestRepository,
	attachments attRepo.AttachmentRepository,
	cutters cutRepo.CutterRepository,
	activity actRepo.ActivityRepository,
) *HarvestCtrl {
	return &HarvestCtrl{repo: repo, attachments: attachments, cutters: cutters, activity: activity}
}

func parseFilter(c echo.Context) repository.ListFilter {
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
	f.Parcel = c.QueryParam("parcel")
	f.Grade = c.QueryParam("grade")
	return f
}

func (h *HarvestCtrl) List(c echo.Context) error {
	out, err := h.repo.List(parseFilter(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *HarvestCtrl) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	row, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "harvest not found"})
	}
	atts, err := h.attachments.ByHarvest(row.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"harvest": row, "attachments": atts})
}

type createBody struct {
	Parcel       string  `json:"parcel"`
	BoxWeightKg  float64 `json:"box_weight_kg"`
	CutterNumber string  `json:"cutter_number"`
	BoxNumber    string  `json:"box_number"`
	QualityGrade string  `json:"quality_grade"`
	Latitude     string  `json:"latitude"`
	Longitude    string  `json:"longitude"`
}

func (h *HarvestCtrl) Create(c echo.Context) error {
	var in createBody
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if in.Parcel == "" || in.CutterNumber == "" || in.BoxNumber == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "parcel, cutter_number and box_number are required"})
	}
	if in.BoxWeightKg <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "box_weight_kg must be positive"})
	}
	grade, ok := ingest.NormalizeQuality(in.QualityGrade)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid quality grade"})
	}

	row := &entities.Harvest{
		Parcel:         in.Parcel,
		BoxWeightGrams: ingest.GramsFromKg(in.BoxWeightKg),
		CutterNumber:   in.CutterNumber,
		BoxNumber:      in.BoxNumber,
		QualityGrade:   grade,
		Latitude:       in.Latitude,
		Longitude:      in.Longitude,
		Status:         "submitted_via_web",
		SubmissionTime: time.Now(),
		SubmittedBy:    middleware.UID(c),
	}
	if err := h.repo.Create(row); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	h.activity.Log(&entities.ActivityLog{
		UserID: middleware.UID(c), Action: "create_harvest",
		ResourceType: "harvest", ResourceID: row.ID,
	})
	return c.JSON(http.StatusCreated, row)
}

type patchBody struct {
	Parcel       *string  `json:"parcel"`
	BoxWeightKg  *float64 `json:"box_weight_kg"`
	CutterNumber *string  `json:"cutter_number"`
	BoxNumber    *string  `json:"box_number"`
	QualityGrade *string  `json:"quality_grade"`
	Latitude     *string  `json:"latitude"`
	Longitude    *string  `json:"longitude"`
}

func (h *HarvestCtrl) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var in patchBody
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}

	fields := map[string]any{}
	if in.Parcel != nil {
		fields["parcel"] = *in.Parcel
	}
	if in.BoxWeightKg != nil {
		fields["box_weight_grams"] = ingest.GramsFromKg(*in.BoxWeightKg)
	}
	if in.CutterNumber != nil {
		fields["cutter_number"] = *in.CutterNumber
	}
	if in.BoxNumber != nil {
		fields["box_number"] = *in.BoxNumber
	}
	if in.QualityGrade != nil {
		grade, ok := ingest.NormalizeQuality(*in.QualityGrade)
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid quality grade"})
		}
		fields["quality_grade"] = grade
	}
	if in.Latitude != nil {
		fields["latitude"] = *in.Latitude
	}
	if in.Longitude != nil {
		fields["longitude"] = *in.Longitude
	}
	if len(fields) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "nothing to update"})
	}

	if err := h.repo.Update(uint(id), fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "harvest not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	h.activity.Log(&entities.ActivityLog{
		UserID: middleware.UID(c), Action: "update_harvest",
		ResourceType: "harvest", ResourceID: uint(id),
	})
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *HarvestCtrl) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "harvest not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	h.activity.Log(&entities.ActivityLog{
		UserID: middleware.UID(c), Action: "delete_harvest",
		ResourceType: "harvest", ResourceID: uint(id),
	})
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *HarvestCtrl) Stats(c echo.Context) error {
	f := parseFilter(c)
	general, err := h.repo.Stats(f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	byGrade, err := h.repo.ByGrade(f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	byParcel, err := h.repo.ByParcel(f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"general":   general,
		"by_grade":  byGrade,
		"by_parcel": byParcel,
	})
}

func (h *HarvestCtrl) TopCutters(c echo.Context) error {
	limit := 5
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	stats, err := h.repo.TopCutters(limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	names, err := h.cutters.NameMap()
	if err != nil {
		log.Printf("[harvest] cutter name map: %v", err)
	}
	for i := range stats {
		stats[i].CustomName = names[stats[i].CutterNumber]
	}
	return c.JSON(http.StatusOK, stats)
}
