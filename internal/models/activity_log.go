package models

import "time"

// ActivityLog is one persisted audit event. Rows are written by the
// audit consumer, never by business services directly.
type ActivityLog struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Action     string    `json:"action" gorm:"index;type:varchar(100)"`
	EntityType string    `json:"entity_type" gorm:"type:varchar(100)"`
	EntityID   string    `json:"entity_id" gorm:"type:varchar(36)"`
	UserID     string    `json:"user_id" gorm:"type:varchar(36)"`
	SessionID  string    `json:"session_id" gorm:"type:varchar(100)"`
	Details    string    `json:"details" gorm:"type:text"` // JSON-encoded event payload
	CreatedAt  time.Time `json:"created_at"`
}
