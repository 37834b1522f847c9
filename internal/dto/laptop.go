package dto

import "github.com/yukikurage/employee-management-api/internal/models"

type LaptopDTO struct {
	ID    uint64 `json:"id"`
	Model string `json:"model" binding:"notblank,max=255"`
	Brand string `json:"brand" binding:"notblank,max=255"`
	OS    string `json:"os" binding:"notblank,max=100"`
}

func ToLaptopDTO(laptop models.Laptop) LaptopDTO {
	return LaptopDTO{
		ID:    laptop.ID,
		Model: laptop.Model,
		Brand: laptop.Brand,
		OS:    laptop.OS,
	}
}

// ToLaptopDTOPtr returns nil for a nil laptop
func ToLaptopDTOPtr(laptop *models.Laptop) *LaptopDTO {
	if laptop == nil {
		return nil
	}
	d := ToLaptopDTO(*laptop)
	return &d
}

func ToLaptopModel(d LaptopDTO) models.Laptop {
	return models.Laptop{
		Model: d.Model,
		Brand: d.Brand,
		OS:    d.OS,
	}
}
