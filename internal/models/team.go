package models

import "time"

type Team struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Domain    string    `gorm:"type:varchar(255);not null" json:"domain"`
	Project   string    `gorm:"type:varchar(255);not null" json:"project"`
	LeadName  string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"lead_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
