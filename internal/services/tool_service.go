package services

import (
	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/repository"
)

// ToolService manages the tools associated with an employee
type ToolService struct {
	employeeRepo repository.EmployeeRepository
	toolRepo     repository.ToolRepository
}

// NewToolService creates a new ToolService
func NewToolService(employeeRepo repository.EmployeeRepository, toolRepo repository.ToolRepository) *ToolService {
	return &ToolService{
		employeeRepo: employeeRepo,
		toolRepo:     toolRepo,
	}
}

func (s *ToolService) heldTools(employeeID uint64) ([]models.Tool, error) {
	employee, err := findActiveEmployee(s.employeeRepo, employeeID)
	if err != nil {
		return nil, err
	}
	if len(employee.Tools) == 0 {
		return nil, fail("employee", employeeID, apierrors.NotFoundf("No tools found for employee %d", employeeID))
	}
	return employee.Tools, nil
}

// AddTool associates the tool with the given name and version, creating it
// first if needed. Adding a tool the employee already holds is a no-op.
func (s *ToolService) AddTool(employeeID uint64, tool *models.Tool) (*models.Tool, error) {
	if _, err := findActiveEmployee(s.employeeRepo, employeeID); err != nil {
		return nil, err
	}

	tool.ID = 0
	resolved, err := s.toolRepo.FindOrCreateByNameAndVersion(tool)
	if err != nil {
		return nil, internalf("employee", employeeID, err, "failed to resolve tool %s %s", tool.Name, tool.Version)
	}

	if err := s.employeeRepo.AddTool(employeeID, resolved); err != nil {
		return nil, internalf("employee", employeeID, err, "failed to add tool %d", resolved.ID)
	}
	return resolved, nil
}

// GetTools returns the employee's tools
func (s *ToolService) GetTools(employeeID uint64) ([]models.Tool, error) {
	return s.heldTools(employeeID)
}

// RemoveTools detaches every tool from the employee
func (s *ToolService) RemoveTools(employeeID uint64) error {
	if _, err := s.heldTools(employeeID); err != nil {
		return err
	}

	if err := s.employeeRepo.ClearTools(employeeID); err != nil {
		return internalf("employee", employeeID, err, "failed to remove tools")
	}
	return nil
}
