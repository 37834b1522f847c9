package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/testutil"
	"gorm.io/gorm"
)

func sampleEmployee(email string, phone int64) *models.Employee {
	return &models.Employee{
		Name:        "Ada",
		DOB:         time.Date(1990, time.January, 2, 0, 0, 0, 0, time.UTC),
		Email:       email,
		Role:        "Engineer",
		PhoneNumber: phone,
	}
}

func TestEmployeeRepository_ActiveUniqueIndexes(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewEmployeeRepository(db)

	first := sampleEmployee("ada@example.com", 9876543210)
	require.NoError(t, repo.Create(first))

	err := repo.Create(sampleEmployee("ada@example.com", 1111111111))
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	require.NoError(t, repo.SoftDelete(first.ID))
	assert.NoError(t, repo.Create(sampleEmployee("ada@example.com", 9876543210)))
}

func TestEmployeeRepository_ExistsActiveExcludesSelf(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewEmployeeRepository(db)

	employee := sampleEmployee("ada@example.com", 9876543210)
	require.NoError(t, repo.Create(employee))

	exists, err := repo.ExistsActiveByPhoneOrEmail(9876543210, "other@example.com", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsActiveByPhoneOrEmail(9876543210, "ada@example.com", employee.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTeamRepository_FindOrCreate(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewTeamRepository(db)

	created, err := repo.FindOrCreateByLeadName(&models.Team{Domain: "Payments", Project: "Ledger", LeadName: "Grace Hopper"})
	require.NoError(t, err)

	found, err := repo.FindOrCreateByLeadName(&models.Team{Domain: "Other", Project: "Other", LeadName: "Grace Hopper"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Payments", found.Domain)
}

func TestTeamRepository_LosesInsertRace(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewTeamRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "teams" WHERE lead_name = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "teams"`).
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()
	mock.ExpectQuery(`SELECT \* FROM "teams" WHERE lead_name = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "domain", "project", "lead_name"}).
			AddRow(5, "Payments", "Ledger", "Grace Hopper"))

	team, err := repo.FindOrCreateByLeadName(&models.Team{Domain: "Other", Project: "Other", LeadName: "Grace Hopper"})
	require.NoError(t, err)
	assert.Equal(t, uint64(5), team.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToolRepository_FindOrCreate(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewToolRepository(db)

	created, err := repo.FindOrCreateByNameAndVersion(&models.Tool{Name: "Go", Version: "1.23.0", Type: "language"})
	require.NoError(t, err)

	same, err := repo.FindOrCreateByNameAndVersion(&models.Tool{Name: "Go", Version: "1.23.0", Type: "language"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, same.ID)

	other, err := repo.FindOrCreateByNameAndVersion(&models.Tool{Name: "Go", Version: "1.24.0", Type: "language"})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, other.ID)
}

func TestToolRepository_StorageError(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewToolRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "tools"`).WillReturnError(errors.New("connection reset"))

	_, err := repo.FindOrCreateByNameAndVersion(&models.Tool{Name: "Go", Version: "1.23.0", Type: "language"})
	assert.ErrorContains(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UniqueUsername(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(&models.User{Username: "a@gmail.com", PasswordHash: "x"}))
	err := repo.Create(&models.User{Username: "a@gmail.com", PasswordHash: "y"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	user, err := repo.FindByUsername("a@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, "x", user.PasswordHash)
}
