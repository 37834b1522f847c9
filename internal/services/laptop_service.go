package services

import (
	"errors"

	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/repository"
	"gorm.io/gorm"
)

// LaptopService manages the laptop owned by an employee
type LaptopService struct {
	employeeRepo repository.EmployeeRepository
	laptopRepo   repository.LaptopRepository
}

// NewLaptopService creates a new LaptopService
func NewLaptopService(employeeRepo repository.EmployeeRepository, laptopRepo repository.LaptopRepository) *LaptopService {
	return &LaptopService{
		employeeRepo: employeeRepo,
		laptopRepo:   laptopRepo,
	}
}

func (s *LaptopService) ownedLaptop(employeeID uint64) (*models.Laptop, error) {
	employee, err := findActiveEmployee(s.employeeRepo, employeeID)
	if err != nil {
		return nil, err
	}
	if employee.Laptop == nil {
		return nil, fail("employee", employeeID, apierrors.NotFoundf("No laptop found for employee %d", employeeID))
	}
	return employee.Laptop, nil
}

// AddLaptop assigns a new laptop to an employee that has none
func (s *LaptopService) AddLaptop(employeeID uint64, laptop *models.Laptop) (*models.Laptop, error) {
	employee, err := findActiveEmployee(s.employeeRepo, employeeID)
	if err != nil {
		return nil, err
	}
	if employee.LaptopID != nil {
		return nil, fail("employee", employeeID, apierrors.Conflictf("Employee %d already has a laptop", employeeID))
	}

	laptop.ID = 0
	laptop.IsDeleted = false
	if err := s.employeeRepo.AttachLaptop(employeeID, laptop); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fail("employee", employeeID, apierrors.Conflictf("Employee %d already has a laptop", employeeID))
		}
		return nil, internalf("employee", employeeID, err, "failed to add laptop")
	}
	return laptop, nil
}

// GetLaptop returns the laptop owned by the employee
func (s *LaptopService) GetLaptop(employeeID uint64) (*models.Laptop, error) {
	return s.ownedLaptop(employeeID)
}

// UpdateLaptop overwrites the owned laptop's fields in place
func (s *LaptopService) UpdateLaptop(employeeID uint64, laptop *models.Laptop) (*models.Laptop, error) {
	current, err := s.ownedLaptop(employeeID)
	if err != nil {
		return nil, err
	}

	current.Model = laptop.Model
	current.Brand = laptop.Brand
	current.OS = laptop.OS
	if err := s.laptopRepo.Update(current); err != nil {
		return nil, internalf("laptop", current.ID, err, "failed to update laptop of employee %d", employeeID)
	}
	return current, nil
}

// RemoveLaptop marks the owned laptop deleted and detaches it
func (s *LaptopService) RemoveLaptop(employeeID uint64) error {
	current, err := s.ownedLaptop(employeeID)
	if err != nil {
		return err
	}

	if err := s.employeeRepo.DetachLaptop(employeeID, current.ID); err != nil {
		return internalf("laptop", current.ID, err, "failed to remove laptop of employee %d", employeeID)
	}
	return nil
}
