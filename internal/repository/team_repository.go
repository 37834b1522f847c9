package repository

import (
	"errors"

	"github.com/yukikurage/employee-management-api/internal/models"
	"gorm.io/gorm"
)

// GormTeamRepository is a GORM implementation of TeamRepository
type GormTeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &GormTeamRepository{db: db}
}

// FindOrCreateByLeadName returns the existing team for the lead name unchanged.
// A concurrent insert that wins the unique index is re-read.
func (r *GormTeamRepository) FindOrCreateByLeadName(team *models.Team) (*models.Team, error) {
	existing, err := r.findByLeadName(team.LeadName)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := r.db.Create(team).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.findByLeadName(team.LeadName)
		}
		return nil, err
	}
	return team, nil
}

func (r *GormTeamRepository) findByLeadName(leadName string) (*models.Team, error) {
	var team models.Team
	if err := r.db.Where("lead_name = ?", leadName).First(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}
