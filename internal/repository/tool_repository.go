package repository

import (
	"errors"

	"github.com/yukikurage/employee-management-api/internal/models"
	"gorm.io/gorm"
)

// GormToolRepository is a GORM implementation of ToolRepository
type GormToolRepository struct {
	db *gorm.DB
}

// NewToolRepository creates a new ToolRepository
func NewToolRepository(db *gorm.DB) ToolRepository {
	return &GormToolRepository{db: db}
}

func (r *GormToolRepository) FindOrCreateByNameAndVersion(tool *models.Tool) (*models.Tool, error) {
	existing, err := r.findByNameAndVersion(tool.Name, tool.Version)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := r.db.Create(tool).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.findByNameAndVersion(tool.Name, tool.Version)
		}
		return nil, err
	}
	return tool, nil
}

func (r *GormToolRepository) findByNameAndVersion(name, version string) (*models.Tool, error) {
	var tool models.Tool
	if err := r.db.Where("name = ? AND version = ?", name, version).First(&tool).Error; err != nil {
		return nil, err
	}
	return &tool, nil
}
