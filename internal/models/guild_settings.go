package models

import (
	"time"
)

// GuildSettings holds per-guild configuration
type GuildSettings struct {
	// GuildID is the Discord guild these settings belong to
	GuildID string `gorm:"primaryKey"`

	// Prefix starts text commands in this guild
	Prefix string `gorm:"not null;default:'?'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName keeps the table name stable regardless of gorm naming strategy
func (GuildSettings) TableName() string {
	return "settings"
}
