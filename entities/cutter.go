package entities

import "time"

// CutterConfig is a display-name override for a cutter number. Purely
// cosmetic; sentinel numbers (97/98/99) may carry a label here but the
// label never changes how the decoder grades their boxes.
type CutterConfig struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CutterNumber string    `gorm:"size:50;uniqueIndex" json:"cutter_number"`
	CustomName   string    `gorm:"size:100" json:"custom_name"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
