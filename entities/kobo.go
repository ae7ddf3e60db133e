package entities

import "time"

// KoboConfig holds the KoboToolbox API credentials plus the watermark of
// the last successful sync. A single logical row.
type KoboConfig struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	APIURL       string     `gorm:"size:255" json:"api_url"`
	AssetID      string     `gorm:"size:100" json:"asset_id"`
	APIToken     string     `json:"api_token"`
	LastSyncTime *time.Time `json:"last_sync_time"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
