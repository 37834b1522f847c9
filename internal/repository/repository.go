package repository

import (
	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/utils"
)

// EmployeeRepository defines the interface for employee data access.
// Reads only ever return employees whose soft-delete flag is unset.
type EmployeeRepository interface {
	// Create inserts the employee's scalar fields
	Create(employee *models.Employee) error

	// FindActiveByID finds an active employee with Laptop, Team and Tools loaded
	FindActiveByID(id uint64) (*models.Employee, error)

	// ListActive lists active employees ordered by id
	ListActive(params utils.PaginationParams) ([]models.Employee, error)

	// ExistsActiveByPhoneOrEmail reports whether an active employee other
	// than excludeID already uses the phone number or the email
	ExistsActiveByPhoneOrEmail(phoneNumber int64, email string, excludeID uint64) (bool, error)

	// UpdateFields overwrites the scalar fields of an employee
	UpdateFields(employee *models.Employee) error

	// SoftDelete flags the employee and its laptop as deleted
	SoftDelete(id uint64) error

	// AttachLaptop creates the laptop and points the employee at it
	AttachLaptop(employeeID uint64, laptop *models.Laptop) error

	// DetachLaptop flags the laptop as deleted and clears the reference
	DetachLaptop(employeeID, laptopID uint64) error

	// SetTeam points the employee at a team, or clears it when teamID is nil
	SetTeam(employeeID uint64, teamID *uint64) error

	// AddTool associates a tool with the employee
	AddTool(employeeID uint64, tool *models.Tool) error

	// ClearTools removes every tool association of the employee
	ClearTools(employeeID uint64) error
}

// LaptopRepository defines the interface for laptop data access
type LaptopRepository interface {
	// Update overwrites model, brand and os of an existing laptop
	Update(laptop *models.Laptop) error
}

// TeamRepository defines the interface for team data access
type TeamRepository interface {
	// FindOrCreateByLeadName returns the team led by team.LeadName, creating
	// it from team when none exists
	FindOrCreateByLeadName(team *models.Team) (*models.Team, error)
}

// ToolRepository defines the interface for tool data access
type ToolRepository interface {
	// FindOrCreateByNameAndVersion returns the tool with the same name and
	// version, creating it from tool when none exists
	FindOrCreateByNameAndVersion(tool *models.Tool) (*models.Tool, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}
