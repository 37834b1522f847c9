package services

import (
	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/repository"
)

// TeamService manages the team an employee belongs to. Teams are shared and
// deduplicated by lead name.
type TeamService struct {
	employeeRepo repository.EmployeeRepository
	teamRepo     repository.TeamRepository
}

// NewTeamService creates a new TeamService
func NewTeamService(employeeRepo repository.EmployeeRepository, teamRepo repository.TeamRepository) *TeamService {
	return &TeamService{
		employeeRepo: employeeRepo,
		teamRepo:     teamRepo,
	}
}

func (s *TeamService) currentTeam(employeeID uint64) (*models.Team, error) {
	employee, err := findActiveEmployee(s.employeeRepo, employeeID)
	if err != nil {
		return nil, err
	}
	if employee.Team == nil {
		return nil, fail("employee", employeeID, apierrors.NotFoundf("No team found for employee %d", employeeID))
	}
	return employee.Team, nil
}

func (s *TeamService) assign(employeeID uint64, team *models.Team) (*models.Team, error) {
	team.ID = 0
	resolved, err := s.teamRepo.FindOrCreateByLeadName(team)
	if err != nil {
		return nil, internalf("employee", employeeID, err, "failed to resolve team led by %s", team.LeadName)
	}

	if err := s.employeeRepo.SetTeam(employeeID, &resolved.ID); err != nil {
		return nil, internalf("employee", employeeID, err, "failed to assign team %d", resolved.ID)
	}
	return resolved, nil
}

// AddTeam joins an employee without a team to the team led by team.LeadName
func (s *TeamService) AddTeam(employeeID uint64, team *models.Team) (*models.Team, error) {
	employee, err := findActiveEmployee(s.employeeRepo, employeeID)
	if err != nil {
		return nil, err
	}
	if employee.TeamID != nil {
		return nil, fail("employee", employeeID, apierrors.Conflictf("Employee %d already has a team", employeeID))
	}
	return s.assign(employeeID, team)
}

// GetTeam returns the employee's team
func (s *TeamService) GetTeam(employeeID uint64) (*models.Team, error) {
	return s.currentTeam(employeeID)
}

// UpdateTeam moves the employee to the team led by team.LeadName
func (s *TeamService) UpdateTeam(employeeID uint64, team *models.Team) (*models.Team, error) {
	if _, err := s.currentTeam(employeeID); err != nil {
		return nil, err
	}
	return s.assign(employeeID, team)
}

// RemoveTeam detaches the employee; the team itself is kept
func (s *TeamService) RemoveTeam(employeeID uint64) error {
	if _, err := s.currentTeam(employeeID); err != nil {
		return err
	}

	if err := s.employeeRepo.SetTeam(employeeID, nil); err != nil {
		return internalf("employee", employeeID, err, "failed to remove team")
	}
	return nil
}
