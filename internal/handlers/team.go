package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/employee-management-api/internal/dto"
	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
	"github.com/yukikurage/employee-management-api/internal/services"
)

// TeamHandler serves /v1/employees/:id/teams
type TeamHandler struct {
	teamService *services.TeamService
}

// NewTeamHandler creates a new TeamHandler
func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// AddTeam handles POST /v1/employees/:id/teams
func (h *TeamHandler) AddTeam(c *gin.Context) {
	employeeID, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.TeamDTO
	if !bindJSON(c, &req) {
		return
	}

	team := dto.ToTeamModel(req)
	created, err := h.teamService.AddTeam(employeeID, &team)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTeamDTO(*created))
}

// GetTeam handles GET /v1/employees/:id/teams
func (h *TeamHandler) GetTeam(c *gin.Context) {
	employeeID, ok := idParam(c)
	if !ok {
		return
	}

	team, err := h.teamService.GetTeam(employeeID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamDTO(*team))
}

// UpdateTeam handles PUT /v1/employees/:id/teams
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	employeeID, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.TeamDTO
	if !bindJSON(c, &req) {
		return
	}

	team := dto.ToTeamModel(req)
	updated, err := h.teamService.UpdateTeam(employeeID, &team)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamDTO(*updated))
}

// DeleteTeam handles DELETE /v1/employees/:id/teams
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	employeeID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.teamService.RemoveTeam(employeeID); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
