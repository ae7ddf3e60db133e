package repository

import (
	"time"

	"harvesta/entities"
)

type ListFilter struct {
	From   *time.Time
	To     *time.Time
	Parcel string
	Grade  string
}

// ListedHarvest adds the first small image URL for the mosaic view.
type ListedHarvest struct {
	entities.Harvest
	ThumbnailURL string `json:"thumbnail_url"`
}

type Stats struct {
	TotalBoxes int64   `json:"total_boxes"`
	TotalGrams int64   `json:"total_grams"`
	AvgGrams   float64 `json:"avg_grams"`
}

type GradeStat struct {
	Grade      string `json:"grade"`
	Count      int64  `json:"count"`
	TotalGrams int64  `json:"total_grams"`
}

type ParcelStat struct {
	Parcel     string `json:"parcel"`
	Count      int64  `json:"count"`
	TotalGrams int64  `json:"total_grams"`
}

type CutterStat struct {
	CutterNumber string  `json:"cutter_number"`
	CustomName   string  `json:"custom_name"`
	Count        int64   `json:"count"`
	TotalGrams   int64   `json:"total_grams"`
	AvgGrams     float64 `json:"avg_grams"`
}

type HarvestRepository interface {
	Create(h *entities.Harvest) error
	FindByID(id uint) (*entities.Harvest, error)
	List(f ListFilter) ([]ListedHarvest, error)
	Update(id uint, fields map[string]any) error
	Delete(id uint) error

	Stats(f ListFilter) (Stats, error)
	ByGrade(f ListFilter) ([]GradeStat, error)
	ByParcel(f ListFilter) ([]ParcelStat, error)
	// TopCutters ranks real cutters by total weight; the sentinel
	// numbers 97/98/99 are excluded since they tag grades, not people.
	TopCutters(limit int) ([]CutterStat, error)
}
