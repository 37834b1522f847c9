package dto

import "github.com/yukikurage/employee-management-api/internal/models"

type TeamDTO struct {
	ID       uint64 `json:"id"`
	Domain   string `json:"domain" binding:"notblank,max=255"`
	Project  string `json:"project" binding:"notblank,max=255"`
	LeadName string `json:"leadName" binding:"required,max=255,personname"`
}

func ToTeamDTO(team models.Team) TeamDTO {
	return TeamDTO{
		ID:       team.ID,
		Domain:   team.Domain,
		Project:  team.Project,
		LeadName: team.LeadName,
	}
}

// ToTeamDTOPtr returns nil for a nil team
func ToTeamDTOPtr(team *models.Team) *TeamDTO {
	if team == nil {
		return nil
	}
	d := ToTeamDTO(*team)
	return &d
}

func ToTeamModel(d TeamDTO) models.Team {
	return models.Team{
		Domain:   d.Domain,
		Project:  d.Project,
		LeadName: d.LeadName,
	}
}
