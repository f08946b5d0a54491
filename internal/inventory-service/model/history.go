package model

import "time"

// History is one audit entry capturing a single field-level change on a
// server. Entries are append-only and deleted only when their server is
// deleted.
type History struct {
	ID        string `gorm:"default:(-)"`
	ServerID  string
	Field     string
	OldValue  string
	NewValue  string
	Timestamp time.Time
	User      string `gorm:"column:user_text"`
}

func (History) TableName() string {
	return "server_history"
}
