package services

import (
	"testing"
	"time"

	"github.com/yukikurage/employee-management-api/internal/auth"
	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/repository"
	"github.com/yukikurage/employee-management-api/internal/testutil"
	"gorm.io/gorm"
)

type servicesTestEnv struct {
	db        *gorm.DB
	auth      *AuthService
	employees *EmployeeService
	laptops   *LaptopService
	teams     *TeamService
	tools     *ToolService
}

func setupServicesTestEnv(t *testing.T) servicesTestEnv {
	t.Helper()

	db := testutil.NewSQLiteDB(t)
	employeeRepo := repository.NewEmployeeRepository(db)

	return servicesTestEnv{
		db:        db,
		auth:      NewAuthService(repository.NewUserRepository(db), auth.NewTokenManager([]byte("test-secret"), 20*time.Minute)),
		employees: NewEmployeeService(employeeRepo),
		laptops:   NewLaptopService(employeeRepo, repository.NewLaptopRepository(db)),
		teams:     NewTeamService(employeeRepo, repository.NewTeamRepository(db)),
		tools:     NewToolService(employeeRepo, repository.NewToolRepository(db)),
	}
}

func newEmployee(name, email string, phone int64) *models.Employee {
	return &models.Employee{
		Name:        name,
		DOB:         time.Date(1990, time.January, 2, 0, 0, 0, 0, time.UTC),
		Email:       email,
		Role:        "Engineer",
		PhoneNumber: phone,
	}
}
