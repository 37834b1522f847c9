package dto

import "github.com/yukikurage/employee-management-api/internal/models"

type ToolDTO struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name" binding:"notblank,max=255"`
	Version string `json:"version" binding:"required,max=50,semver"`
	Type    string `json:"type" binding:"notblank,max=100"`
}

func ToToolDTO(tool models.Tool) ToolDTO {
	return ToolDTO{
		ID:      tool.ID,
		Name:    tool.Name,
		Version: tool.Version,
		Type:    tool.Type,
	}
}

// ToToolDTOs returns nil when no tools are loaded
func ToToolDTOs(tools []models.Tool) []ToolDTO {
	if tools == nil {
		return nil
	}
	dtos := make([]ToolDTO, len(tools))
	for i, tool := range tools {
		dtos[i] = ToToolDTO(tool)
	}
	return dtos
}

func ToToolModel(d ToolDTO) models.Tool {
	return models.Tool{
		Name:    d.Name,
		Version: d.Version,
		Type:    d.Type,
	}
}
