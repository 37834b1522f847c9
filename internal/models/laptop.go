package models

import "time"

// Laptop is owned by exactly one employee. Detached laptops are flagged as
// deleted and kept for audit.
type Laptop struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Model     string    `gorm:"type:varchar(255);not null" json:"model"`
	Brand     string    `gorm:"type:varchar(255);not null" json:"brand"`
	OS        string    `gorm:"column:os;type:varchar(100);not null" json:"os"`
	IsDeleted bool      `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
