package models

import (
	"time"
)

type Employee struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	DOB         time.Time `gorm:"column:dob;type:date" json:"dob"`
	Email       string    `gorm:"type:varchar(255);not null;index" json:"email"`
	Role        string    `gorm:"type:varchar(100);not null" json:"role"`
	PhoneNumber int64     `gorm:"not null;index" json:"phone_number"`
	IsDeleted   bool      `gorm:"not null;index" json:"-"`
	LaptopID    *uint64   `gorm:"uniqueIndex" json:"laptop_id"`
	TeamID      *uint64   `gorm:"index" json:"team_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Laptop *Laptop `gorm:"foreignKey:LaptopID" json:"laptop,omitempty"`
	Team   *Team   `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	Tools  []Tool  `gorm:"many2many:employee_tools" json:"tools,omitempty"`
}
