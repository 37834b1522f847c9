package services

import (
	"errors"

	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/repository"
	"github.com/yukikurage/employee-management-api/internal/utils"
	"gorm.io/gorm"
)

// EmployeeService handles employee business logic
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
	}
}

func employeeConflict(id uint64) error {
	return fail("employee", id, apierrors.Conflictf("Employee with this phone number or email already exists"))
}

// AddEmployee persists a new employee. Phone number and email must not be
// used by another active employee.
func (s *EmployeeService) AddEmployee(employee *models.Employee) (*models.Employee, error) {
	employee.ID = 0
	employee.IsDeleted = false

	exists, err := s.employeeRepo.ExistsActiveByPhoneOrEmail(employee.PhoneNumber, employee.Email, 0)
	if err != nil {
		return nil, internalf("employee", 0, err, "failed to check employee uniqueness")
	}
	if exists {
		return nil, employeeConflict(0)
	}

	if err := s.employeeRepo.Create(employee); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, employeeConflict(0)
		}
		return nil, internalf("employee", 0, err, "failed to create employee")
	}

	return employee, nil
}

// GetEmployee returns an active employee with its laptop, team and tools
func (s *EmployeeService) GetEmployee(id uint64) (*models.Employee, error) {
	return findActiveEmployee(s.employeeRepo, id)
}

// ListEmployees returns one page of active employees ordered by id
func (s *EmployeeService) ListEmployees(params utils.PaginationParams) ([]models.Employee, error) {
	employees, err := s.employeeRepo.ListActive(params)
	if err != nil {
		return nil, internalf("employee", 0, err, "failed to list employees (page %d, size %d)", params.Page, params.Limit)
	}
	return employees, nil
}

// UpdateEmployee overwrites the scalar fields of an active employee
func (s *EmployeeService) UpdateEmployee(employee *models.Employee) (*models.Employee, error) {
	existing, err := findActiveEmployee(s.employeeRepo, employee.ID)
	if err != nil {
		return nil, err
	}

	exists, err := s.employeeRepo.ExistsActiveByPhoneOrEmail(employee.PhoneNumber, employee.Email, employee.ID)
	if err != nil {
		return nil, internalf("employee", employee.ID, err, "failed to check employee uniqueness")
	}
	if exists {
		return nil, employeeConflict(employee.ID)
	}

	if err := s.employeeRepo.UpdateFields(employee); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, employeeConflict(employee.ID)
		}
		return nil, internalf("employee", employee.ID, err, "failed to update employee")
	}

	existing.Name = employee.Name
	existing.DOB = employee.DOB
	existing.Email = employee.Email
	existing.Role = employee.Role
	existing.PhoneNumber = employee.PhoneNumber
	return existing, nil
}

// RemoveEmployee soft-deletes an active employee and its laptop
func (s *EmployeeService) RemoveEmployee(id uint64) error {
	if _, err := findActiveEmployee(s.employeeRepo, id); err != nil {
		return err
	}

	if err := s.employeeRepo.SoftDelete(id); err != nil {
		return internalf("employee", id, err, "failed to delete employee")
	}
	return nil
}
