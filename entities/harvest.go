package entities

import "time"

// Canonical quality grades. Every persisted harvest carries one of these
// after normalization; raw label variants never survive ingestion.
const (
	GradeFirst  = "primera_calidad"
	GradeSecond = "segunda_calidad"
	GradeWaste  = "desperdicio"
)

// Sentinel cutter numbers. These do not identify a real cutter: the field
// devices reuse the cutter slot to tag incomplete/second/waste boxes.
const (
	CutterIncomplete = "97"
	CutterSecond     = "98"
	CutterWaste      = "99"
)

type Harvest struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ExternalID     *int64    `gorm:"index" json:"external_id"`
	Parcel         string    `gorm:"size:100;index" json:"parcel"`
	BoxWeightGrams int       `json:"box_weight_grams"` // kg * 1000, rounded
	CutterNumber   string    `gorm:"size:50;index" json:"cutter_number"`
	BoxNumber      string    `gorm:"size:50" json:"box_number"`
	QualityGrade   string    `gorm:"size:50;index" json:"quality_grade"`
	Latitude       string    `gorm:"size:20" json:"latitude"`
	Longitude      string    `gorm:"size:20" json:"longitude"`
	Status         string    `gorm:"size:50" json:"status"` // submitted_via_web|submitted_via_api|...
	SubmissionTime time.Time `gorm:"index" json:"submission_time"`
	SubmittedBy    string    `gorm:"size:100" json:"submitted_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
