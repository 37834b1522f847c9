package models

import "time"

type Tool struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_tools_name_version" json:"name"`
	Version   string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_tools_name_version" json:"version"`
	Type      string    `gorm:"type:varchar(100);not null" json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
