package entities

import "time"

// HarvestAttachment is owned by exactly one Harvest. Normal deletion paths
// soft-delete via IsDeleted; only the orphan cleanup job removes rows
// physically, and only when the parent harvest is gone.
type HarvestAttachment struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	HarvestID      uint      `gorm:"index" json:"harvest_id"`
	Filename       string    `gorm:"size:255" json:"filename"`
	Mimetype       string    `gorm:"size:100" json:"mimetype"`
	OriginalURL    string    `json:"original_url"`
	LargeURL       string    `json:"large_url"`
	SmallURL       string    `json:"small_url"`
	LocalLargePath string    `gorm:"size:500" json:"local_large_path"`
	LocalSmallPath string    `gorm:"size:500" json:"local_small_path"`
	UID            string    `gorm:"size:100" json:"uid"`
	IsDeleted      bool      `gorm:"index" json:"is_deleted"`
	CreatedAt      time.Time `json:"created_at"`
}
