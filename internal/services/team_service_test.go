package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
	"github.com/yukikurage/employee-management-api/internal/models"
)

func TestTeamService_SharedByLeadName(t *testing.T) {
	env := setupServicesTestEnv(t)
	ada, err := env.employees.AddEmployee(newEmployee("Ada", "ada@example.com", 9876543210))
	require.NoError(t, err)
	bob, err := env.employees.AddEmployee(newEmployee("Bob", "bob@example.com", 1234567890))
	require.NoError(t, err)

	first, err := env.teams.AddTeam(ada.ID, &models.Team{Domain: "Payments", Project: "Ledger", LeadName: "Grace Hopper"})
	require.NoError(t, err)
	second, err := env.teams.AddTeam(bob.ID, &models.Team{Domain: "Other", Project: "Other", LeadName: "Grace Hopper"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Payments", second.Domain)

	var count int64
	require.NoError(t, env.db.Model(&models.Team{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestTeamService_Lifecycle(t *testing.T) {
	env := setupServicesTestEnv(t)
	employee, err := env.employees.AddEmployee(newEmployee("Ada", "ada@example.com", 9876543210))
	require.NoError(t, err)

	_, err = env.teams.GetTeam(employee.ID)
	assert.Equal(t, apierrors.KindNotFound, apierrors.KindOf(err))
	_, err = env.teams.UpdateTeam(employee.ID, &models.Team{Domain: "D", Project: "P", LeadName: "Alan Turing"})
	assert.Equal(t, apierrors.KindNotFound, apierrors.KindOf(err))

	team, err := env.teams.AddTeam(employee.ID, &models.Team{Domain: "Payments", Project: "Ledger", LeadName: "Grace Hopper"})
	require.NoError(t, err)

	_, err = env.teams.AddTeam(employee.ID, &models.Team{Domain: "D", Project: "P", LeadName: "Alan Turing"})
	assert.Equal(t, apierrors.KindConflict, apierrors.KindOf(err))

	moved, err := env.teams.UpdateTeam(employee.ID, &models.Team{Domain: "Search", Project: "Index", LeadName: "Alan Turing"})
	require.NoError(t, err)
	assert.NotEqual(t, team.ID, moved.ID)

	got, err := env.teams.GetTeam(employee.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alan Turing", got.LeadName)

	require.NoError(t, env.teams.RemoveTeam(employee.ID))
	_, err = env.teams.GetTeam(employee.ID)
	assert.Equal(t, apierrors.KindNotFound, apierrors.KindOf(err))

	var count int64
	require.NoError(t, env.db.Model(&models.Team{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
