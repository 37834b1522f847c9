package repository

import (
	"github.com/yukikurage/employee-management-api/internal/models"
	"gorm.io/gorm"
)

// GormLaptopRepository is a GORM implementation of LaptopRepository
type GormLaptopRepository struct {
	db *gorm.DB
}

// NewLaptopRepository creates a new LaptopRepository
func NewLaptopRepository(db *gorm.DB) LaptopRepository {
	return &GormLaptopRepository{db: db}
}

// Update overwrites the descriptive fields of a laptop in place
func (r *GormLaptopRepository) Update(laptop *models.Laptop) error {
	return r.db.Model(&models.Laptop{}).
		Where("id = ?", laptop.ID).
		Updates(map[string]interface{}{
			"model": laptop.Model,
			"brand": laptop.Brand,
			"os":    laptop.OS,
		}).Error
}
