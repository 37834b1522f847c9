package dto

import (
	"time"

	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/validation"
)

// EmployeeDTO is the public listing view of an employee
type EmployeeDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	PhoneNumber int64  `json:"phoneNumber"`
}

// EmployeeWriteDTO carries the scalar fields of an employee. It is both the
// create/update request body and their response.
type EmployeeWriteDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name" binding:"required,max=255,personname"`
	DOB         string `json:"dob" binding:"required,datetime=2006-01-02,pastdate"`
	Email       string `json:"email" binding:"required,max=255,email"`
	Role        string `json:"role" binding:"notblank,max=100"`
	PhoneNumber int64  `json:"phoneNumber" binding:"required,min=1000000000,max=9999999999"`
}

// EmployeeDetailDTO is the full view of an employee with its relations
type EmployeeDetailDTO struct {
	EmployeeWriteDTO
	Laptop *LaptopDTO `json:"laptop"`
	Team   *TeamDTO   `json:"team"`
	Tools  []ToolDTO  `json:"tools"`
}

// ToEmployeeDTO converts an employee to its public DTO
func ToEmployeeDTO(employee models.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:          employee.ID,
		Name:        employee.Name,
		Email:       employee.Email,
		Role:        employee.Role,
		PhoneNumber: employee.PhoneNumber,
	}
}

// ToEmployeeDTOs converts a list of employees to public DTOs
func ToEmployeeDTOs(employees []models.Employee) []EmployeeDTO {
	dtos := make([]EmployeeDTO, len(employees))
	for i, employee := range employees {
		dtos[i] = ToEmployeeDTO(employee)
	}
	return dtos
}

// ToEmployeeWriteDTO converts an employee to its write DTO
func ToEmployeeWriteDTO(employee models.Employee) EmployeeWriteDTO {
	return EmployeeWriteDTO{
		ID:          employee.ID,
		Name:        employee.Name,
		DOB:         formatDate(employee.DOB),
		Email:       employee.Email,
		Role:        employee.Role,
		PhoneNumber: employee.PhoneNumber,
	}
}

// ToEmployeeDetailDTO converts an employee and its loaded relations
func ToEmployeeDetailDTO(employee models.Employee) EmployeeDetailDTO {
	return EmployeeDetailDTO{
		EmployeeWriteDTO: ToEmployeeWriteDTO(employee),
		Laptop:           ToLaptopDTOPtr(employee.Laptop),
		Team:             ToTeamDTOPtr(employee.Team),
		Tools:            ToToolDTOs(employee.Tools),
	}
}

// ToEmployeeModel converts a bound write DTO to a model. The date has been
// checked by binding; an unparsable one yields the zero time.
func ToEmployeeModel(d EmployeeWriteDTO) models.Employee {
	dob, _ := time.Parse(validation.DateLayout, d.DOB)
	return models.Employee{
		ID:          d.ID,
		Name:        d.Name,
		DOB:         dob,
		Email:       d.Email,
		Role:        d.Role,
		PhoneNumber: d.PhoneNumber,
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(validation.DateLayout)
}
