package entities

import "time"

// ActivityLog is the audit trail: logins, edits, batch imports and syncs.
type ActivityLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       string    `gorm:"size:100;index" json:"user_id"`
	Action       string    `gorm:"size:100" json:"action"` // create_harvest, sync_kobo, import_file, ...
	ResourceType string    `gorm:"size:50" json:"resource_type"`
	ResourceID   uint      `json:"resource_id"`
	Details      string    `gorm:"type:text" json:"details"` // JSON text
	CreatedAt    time.Time `json:"created_at"`
}
