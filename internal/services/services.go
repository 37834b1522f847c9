package services

import (
	"errors"
	"fmt"
	"log"
	"math"

	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/repository"
	"gorm.io/gorm"
)

// fail logs a classified failure against the entity it concerns.
func fail(entity string, id uint64, err *apierrors.Error) error {
	log.Printf("%s %d: %s: %v", entity, id, err.Kind, err)
	return err
}

func internalf(entity string, id uint64, err error, format string, args ...interface{}) error {
	return fail(entity, id, apierrors.Internal(fmt.Sprintf(format, args...), err))
}

// findActiveEmployee loads a non-deleted employee with its relations. Ids
// above the signed 64-bit range cannot be stored, so they are never found.
func findActiveEmployee(repo repository.EmployeeRepository, id uint64) (*models.Employee, error) {
	if id > math.MaxInt64 {
		return nil, fail("employee", id, apierrors.NotFoundf("Employee with id %d not found", id))
	}
	employee, err := repo.FindActiveByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fail("employee", id, apierrors.NotFoundf("Employee with id %d not found", id))
		}
		return nil, internalf("employee", id, err, "failed to load employee")
	}
	return employee, nil
}
