package services

import (
	"errors"
	"math"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/repository"
	"github.com/yukikurage/employee-management-api/internal/testutil"
	"github.com/yukikurage/employee-management-api/internal/utils"
)

func TestEmployeeService_AddAndGet(t *testing.T) {
	env := setupServicesTestEnv(t)

	created, err := env.employees.AddEmployee(newEmployee("Ada Lovelace", "ada@example.com", 9876543210))
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	var stored models.Employee
	require.NoError(t, env.db.First(&stored, created.ID).Error)
	assert.Equal(t, "ada@example.com", stored.Email)

	got, err := env.employees.GetEmployee(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Nil(t, got.Laptop)
	assert.Nil(t, got.Team)
	assert.Empty(t, got.Tools)
}

func TestEmployeeService_AddConflicts(t *testing.T) {
	env := setupServicesTestEnv(t)

	_, err := env.employees.AddEmployee(newEmployee("Ada", "ada@example.com", 9876543210))
	require.NoError(t, err)

	_, err = env.employees.AddEmployee(newEmployee("Bob", "bob@example.com", 9876543210))
	assert.Equal(t, apierrors.KindConflict, apierrors.KindOf(err))

	_, err = env.employees.AddEmployee(newEmployee("Bob", "ada@example.com", 1234567890))
	assert.Equal(t, apierrors.KindConflict, apierrors.KindOf(err))
}

func TestEmployeeService_SoftDeletedValuesCanBeReused(t *testing.T) {
	env := setupServicesTestEnv(t)

	first, err := env.employees.AddEmployee(newEmployee("Ada", "ada@example.com", 9876543210))
	require.NoError(t, err)
	require.NoError(t, env.employees.RemoveEmployee(first.ID))

	second, err := env.employees.AddEmployee(newEmployee("Ada", "ada@example.com", 9876543210))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestEmployeeService_GetMissing(t *testing.T) {
	env := setupServicesTestEnv(t)

	_, err := env.employees.GetEmployee(1)
	assert.Equal(t, apierrors.KindNotFound, apierrors.KindOf(err))
}

func TestEmployeeService_IDPastSignedRangeIsNotFound(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	service := NewEmployeeService(repository.NewEmployeeRepository(db))

	_, err := service.GetEmployee(math.MaxInt64 + 1)
	assert.Equal(t, apierrors.KindNotFound, apierrors.KindOf(err))

	update := newEmployee("Ada Lovelace", "ada@example.com", 9876543210)
	update.ID = math.MaxUint64
	_, err = service.UpdateEmployee(update)
	assert.Equal(t, apierrors.KindNotFound, apierrors.KindOf(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeService_RemoveIsSoft(t *testing.T) {
	env := setupServicesTestEnv(t)

	created, err := env.employees.AddEmployee(newEmployee("Ada", "ada@example.com", 9876543210))
	require.NoError(t, err)
	_, err = env.laptops.AddLaptop(created.ID, &models.Laptop{Model: "XPS 13", Brand: "Dell", OS: "Linux"})
	require.NoError(t, err)

	require.NoError(t, env.employees.RemoveEmployee(created.ID))

	var stored models.Employee
	require.NoError(t, env.db.First(&stored, created.ID).Error)
	assert.True(t, stored.IsDeleted)

	var laptop models.Laptop
	require.NoError(t, env.db.First(&laptop, *stored.LaptopID).Error)
	assert.True(t, laptop.IsDeleted)

	_, err = env.employees.GetEmployee(created.ID)
	assert.Equal(t, apierrors.KindNotFound, apierrors.KindOf(err))

	err = env.employees.RemoveEmployee(created.ID)
	assert.Equal(t, apierrors.KindNotFound, apierrors.KindOf(err))

	list, err := env.employees.ListEmployees(utils.NewPaginationParams(0, 10))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEmployeeService_ListPages(t *testing.T) {
	env := setupServicesTestEnv(t)

	for i := int64(0); i < 5; i++ {
		_, err := env.employees.AddEmployee(newEmployee("Emp", "emp"+string(rune('a'+i))+"@example.com", 9000000000+i))
		require.NoError(t, err)
	}

	page0, err := env.employees.ListEmployees(utils.NewPaginationParams(0, 2))
	require.NoError(t, err)
	require.Len(t, page0, 2)
	assert.Less(t, page0[0].ID, page0[1].ID)

	page2, err := env.employees.ListEmployees(utils.NewPaginationParams(2, 2))
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "empe@example.com", page2[0].Email)

	page9, err := env.employees.ListEmployees(utils.NewPaginationParams(9, 2))
	require.NoError(t, err)
	assert.Empty(t, page9)
}

func TestEmployeeService_Update(t *testing.T) {
	env := setupServicesTestEnv(t)

	ada, err := env.employees.AddEmployee(newEmployee("Ada", "ada@example.com", 9876543210))
	require.NoError(t, err)
	_, err = env.employees.AddEmployee(newEmployee("Bob", "bob@example.com", 1234567890))
	require.NoError(t, err)

	update := newEmployee("Ada King", "ada@example.com", 9876543210)
	update.ID = ada.ID
	update.Role = "Manager"
	updated, err := env.employees.UpdateEmployee(update)
	require.NoError(t, err)
	assert.Equal(t, "Ada King", updated.Name)

	got, err := env.employees.GetEmployee(ada.ID)
	require.NoError(t, err)
	assert.Equal(t, "Manager", got.Role)

	clash := newEmployee("Ada", "bob@example.com", 9876543210)
	clash.ID = ada.ID
	_, err = env.employees.UpdateEmployee(clash)
	assert.Equal(t, apierrors.KindConflict, apierrors.KindOf(err))

	missing := newEmployee("Nobody", "nobody@example.com", 5555555555)
	missing.ID = 999
	_, err = env.employees.UpdateEmployee(missing)
	assert.Equal(t, apierrors.KindNotFound, apierrors.KindOf(err))
}

func TestEmployeeService_StorageFailureIsInternal(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	service := NewEmployeeService(repository.NewEmployeeRepository(db))

	mock.ExpectQuery(`SELECT \* FROM "employees"`).
		WillReturnError(errors.New("connection refused"))

	_, err := service.GetEmployee(3)
	require.Error(t, err)
	assert.Equal(t, apierrors.KindInternal, apierrors.KindOf(err))
	assert.ErrorContains(t, err, "connection refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeService_ListFailureIsInternal(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	service := NewEmployeeService(repository.NewEmployeeRepository(db))

	mock.ExpectQuery(`SELECT \* FROM "employees" WHERE is_deleted = \$1 ORDER BY id ASC LIMIT`).
		WillReturnError(errors.New("timeout"))

	_, err := service.ListEmployees(utils.NewPaginationParams(0, 10))
	assert.Equal(t, apierrors.KindInternal, apierrors.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeService_ListEmptyTable(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	service := NewEmployeeService(repository.NewEmployeeRepository(db))

	mock.ExpectQuery(`SELECT \* FROM "employees"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	employees, err := service.ListEmployees(utils.NewPaginationParams(0, 10))
	require.NoError(t, err)
	assert.Empty(t, employees)
	assert.NotNil(t, employees)
}
